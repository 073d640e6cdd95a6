package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FilterCriteria contains the filtering options for record queries. Bound
// fields are pointers so an absent bound is distinguishable from a zero
// value; an absent bound contributes nothing to the combined query.
type FilterCriteria struct {
	IDStart     *RecordID
	IDEnd       *RecordID
	DateStart   *time.Time
	DateEnd     *time.Time
	AmountStart *decimal.Decimal
	AmountEnd   *decimal.Decimal

	// Type is ANY, DEBIT or CREDIT; ANY means no type constraint
	Type string

	// Tags are raw tag strings; TagsType governs whether matches must carry
	// all resolved tags or at least one of them
	Tags     []string
	TagsType string

	// Description is a free-text fragment searched over record descriptions
	Description string

	// Mode is the top-level combination across all per-field predicates
	Mode string
}

// HasTags reports whether any raw tags were supplied
func (c *FilterCriteria) HasTags() bool {
	return len(c.Tags) > 0
}

// HasDescription reports whether a text-search fragment was supplied
func (c *FilterCriteria) HasDescription() bool {
	return c.Description != ""
}
