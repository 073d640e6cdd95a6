package tags

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalize_TrimsAndFiltersLength(t *testing.T) {
	got := Canonicalize([]string{"  groceries  ", "xx", "a-very-long-tag-over-twenty-chars"})

	assert.Equal(t, []string{"groceries"}, got)
}

func TestCanonicalize_DedupesCaseInsensitively(t *testing.T) {
	got := Canonicalize([]string{"  tag", "TAG", "ta"})

	assert.Equal(t, []string{"tag"}, got)
}

func TestCanonicalize_KeepsFirstCasing(t *testing.T) {
	got := Canonicalize([]string{"Rent", "rent", "RENT"})

	assert.Equal(t, []string{"Rent"}, got)
}

func TestCanonicalize_Idempotent(t *testing.T) {
	once := Canonicalize([]string{" Groceries ", "groceries", "Rent", "xx"})
	twice := Canonicalize(once)

	assert.Equal(t, once, twice)
}

func TestCanonicalize_EmptyInput(t *testing.T) {
	assert.Empty(t, Canonicalize(nil))
	assert.Empty(t, Canonicalize([]string{"", "  ", "ab"}))
}

func TestCanonicalize_BoundaryLengths(t *testing.T) {
	got := Canonicalize([]string{"abc", "ab", "12345678901234567890", "123456789012345678901"})

	assert.Equal(t, []string{"abc", "12345678901234567890"}, got)
}

func TestResolveAgainstVocabulary_VocabularyCasingWins(t *testing.T) {
	got := ResolveAgainstVocabulary([]string{"OLDTAG"}, []string{"oldTag"})

	assert.Equal(t, []string{"oldTag"}, got)
}

func TestResolveAgainstVocabulary_DropsUnknownTags(t *testing.T) {
	got := ResolveAgainstVocabulary([]string{"groceries", "unknown"}, []string{"Groceries", "Rent"})

	assert.Equal(t, []string{"Groceries"}, got)
}

func TestResolveAgainstVocabulary_EachMatchAtMostOnce(t *testing.T) {
	got := ResolveAgainstVocabulary([]string{"rent", "RENT"}, []string{"Rent"})

	assert.Equal(t, []string{"Rent"}, got)
}

func TestResolveAgainstVocabulary_NoMatches(t *testing.T) {
	got := ResolveAgainstVocabulary([]string{"groceries"}, []string{"Rent"})

	assert.Empty(t, got)
}
