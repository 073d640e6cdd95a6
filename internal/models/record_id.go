package models

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// RecordIDLength is the length of the canonical string form of a RecordID
const RecordIDLength = 24

// RecordID is an opaque record identifier. The canonical string form starts
// with the hex-encoded creation time, so lexicographic order on identifiers
// is creation order. The engine relies on this when it asks the store for
// results in descending identifier order (most recently created first).
type RecordID string

// NewRecordID generates a new identifier for a record created now
func NewRecordID() RecordID {
	return NewRecordIDAt(time.Now())
}

// NewRecordIDAt generates an identifier with the given creation instant.
// Exposed for tests that need deterministic ordering.
func NewRecordIDAt(t time.Time) RecordID {
	var random [8]byte
	if _, err := rand.Read(random[:]); err != nil {
		// crypto/rand does not fail on supported platforms
		panic(fmt.Sprintf("record id entropy unavailable: %v", err))
	}

	return RecordID(fmt.Sprintf("%08x%s", uint32(t.Unix()), hex.EncodeToString(random[:])))
}

// String returns the canonical string form
func (id RecordID) String() string {
	return string(id)
}

// IsZero reports whether the identifier is unset
func (id RecordID) IsZero() bool {
	return id == ""
}

// IsValidRecordID checks that a string is a well-formed identifier
func IsValidRecordID(s string) bool {
	if len(s) != RecordIDLength {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}
