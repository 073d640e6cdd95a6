package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagList_ValueWrapsWithSeparators(t *testing.T) {
	value, err := TagList{"food", "rent"}.Value()

	assert.NoError(t, err)
	assert.Equal(t, "|food|rent|", value)
}

func TestTagList_ValueEmpty(t *testing.T) {
	value, err := TagList{}.Value()

	assert.NoError(t, err)
	assert.Equal(t, "", value)
}

func TestTagList_ValueRejectsSeparatorInTag(t *testing.T) {
	_, err := TagList{"bad|tag"}.Value()

	assert.Error(t, err)
}

func TestTagList_ScanString(t *testing.T) {
	var list TagList
	err := list.Scan("|food|rent|")

	assert.NoError(t, err)
	assert.Equal(t, TagList{"food", "rent"}, list)
}

func TestTagList_ScanBytes(t *testing.T) {
	var list TagList
	err := list.Scan([]byte("|food|"))

	assert.NoError(t, err)
	assert.Equal(t, TagList{"food"}, list)
}

func TestTagList_ScanEmpty(t *testing.T) {
	var list TagList
	err := list.Scan("")

	assert.NoError(t, err)
	assert.Nil(t, list)
}

func TestTagList_ScanNil(t *testing.T) {
	list := TagList{"stale"}
	err := list.Scan(nil)

	assert.NoError(t, err)
	assert.Nil(t, list)
}

func TestTagList_ContainsIsCaseInsensitive(t *testing.T) {
	list := TagList{"Food", "Rent"}

	assert.True(t, list.Contains("food"))
	assert.True(t, list.Contains("RENT"))
	assert.False(t, list.Contains("travel"))
}

func TestTagList_ContainsAll(t *testing.T) {
	list := TagList{"Food", "Rent", "Travel"}

	assert.True(t, list.ContainsAll([]string{"food", "rent"}))
	assert.False(t, list.ContainsAll([]string{"food", "unknown"}))
}

func TestTagList_ContainsAny(t *testing.T) {
	list := TagList{"Food"}

	assert.True(t, list.ContainsAny([]string{"unknown", "food"}))
	assert.False(t, list.ContainsAny([]string{"rent", "travel"}))
}
