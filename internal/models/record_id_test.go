package models

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewRecordID_WellFormed(t *testing.T) {
	id := NewRecordID()

	assert.Len(t, id.String(), RecordIDLength)
	assert.True(t, IsValidRecordID(id.String()))
	assert.False(t, id.IsZero())
}

func TestNewRecordIDAt_LexicographicOrderIsCreationOrder(t *testing.T) {
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	ids := []string{
		NewRecordIDAt(base.Add(2 * time.Hour)).String(),
		NewRecordIDAt(base).String(),
		NewRecordIDAt(base.Add(time.Hour)).String(),
	}

	sorted := append([]string(nil), ids...)
	sort.Strings(sorted)

	assert.Equal(t, []string{ids[1], ids[2], ids[0]}, sorted)
}

func TestNewRecordID_Unique(t *testing.T) {
	now := time.Now()
	seen := make(map[RecordID]struct{})
	for i := 0; i < 100; i++ {
		id := NewRecordIDAt(now)
		_, dup := seen[id]
		assert.False(t, dup)
		seen[id] = struct{}{}
	}
}

func TestIsValidRecordID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid lowercase hex", "68b0000000000000aaaaaaaa", true},
		{"too short", "68b0000000000000aaaaaa", false},
		{"too long", "68b0000000000000aaaaaaaa00", false},
		{"non-hex characters", "68g0000000000000aaaaaaaa", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidRecordID(tt.input))
		})
	}
}
