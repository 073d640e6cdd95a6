package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

const tagListSeparator = "|"

// TagList stores a list of tags in a single text column. The encoded form is
// separator-wrapped ("|food|rent|") so a single tag can be matched with one
// LIKE expression when lowering membership predicates to SQL.
type TagList []string

// Value implements driver.Valuer
func (l TagList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "", nil
	}

	for _, tag := range l {
		if strings.Contains(tag, tagListSeparator) {
			return nil, fmt.Errorf("tag %q contains reserved separator %q", tag, tagListSeparator)
		}
	}

	return tagListSeparator + strings.Join(l, tagListSeparator) + tagListSeparator, nil
}

// Scan implements sql.Scanner
func (l *TagList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}

	var encoded string
	switch v := value.(type) {
	case string:
		encoded = v
	case []byte:
		encoded = string(v)
	default:
		return fmt.Errorf("cannot scan %T into TagList", value)
	}

	trimmed := strings.Trim(encoded, tagListSeparator)
	if trimmed == "" {
		*l = nil
		return nil
	}

	*l = strings.Split(trimmed, tagListSeparator)
	return nil
}

// Contains reports whether the tag is in the list, compared case-insensitively
func (l TagList) Contains(tag string) bool {
	for _, t := range l {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// ContainsAll reports whether every given tag is in the list
func (l TagList) ContainsAll(tags []string) bool {
	for _, tag := range tags {
		if !l.Contains(tag) {
			return false
		}
	}
	return true
}

// ContainsAny reports whether at least one of the given tags is in the list
func (l TagList) ContainsAny(tags []string) bool {
	for _, tag := range tags {
		if l.Contains(tag) {
			return true
		}
	}
	return false
}
