package query

import (
	"testing"

	"expense-tracker/internal/models"

	"github.com/stretchr/testify/assert"
)

func record(id string) models.Record {
	return models.Record{ID: models.RecordID(id)}
}

func recordIDs(records []models.Record) []string {
	ids := make([]string, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.ID.String())
	}
	return ids
}

func TestMergeByID_EmptySecondaryReturnsPrimary(t *testing.T) {
	primary := []models.Record{record("c"), record("b"), record("a")}

	merged := mergeByID(primary, nil)

	assert.Equal(t, []string{"c", "b", "a"}, recordIDs(merged))
}

func TestMergeByID_SecondaryOnlyEntriesAppended(t *testing.T) {
	primary := []models.Record{record("d"), record("b")}
	secondary := []models.Record{record("e"), record("a")}

	merged := mergeByID(primary, secondary)

	assert.Equal(t, []string{"d", "b", "e", "a"}, recordIDs(merged))
}

func TestMergeByID_DuplicatesKeepPrimaryPosition(t *testing.T) {
	primary := []models.Record{record("d"), record("c"), record("b")}
	secondary := []models.Record{record("e"), record("c"), record("a")}

	merged := mergeByID(primary, secondary)

	assert.Equal(t, []string{"d", "c", "b", "e", "a"}, recordIDs(merged))
}

func TestMergeByID_EmptyPrimary(t *testing.T) {
	secondary := []models.Record{record("b"), record("a")}

	merged := mergeByID(nil, secondary)

	assert.Equal(t, []string{"b", "a"}, recordIDs(merged))
}
