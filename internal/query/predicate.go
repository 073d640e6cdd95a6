// Package query turns partially-specified filter criteria into an abstract
// predicate tree plus an execution plan against a record store. The tree is
// storage-agnostic; a repository adapter lowers it onto the actual store.
package query

// Field identifies a record field a predicate applies to
type Field string

const (
	FieldID     Field = "id"
	FieldDate   Field = "date"
	FieldAmount Field = "amount"
	FieldType   Field = "type"
)

// Predicate is one node of the abstract predicate tree
type Predicate interface {
	isPredicate()
}

// And matches records satisfying every child predicate
type And struct {
	Predicates []Predicate
}

// Or matches records satisfying at least one child predicate
type Or struct {
	Predicates []Predicate
}

// Range matches records whose field value lies in the inclusive interval
// [Start, End]. A nil bound leaves that side open.
type Range struct {
	Field Field
	Start interface{}
	End   interface{}
}

// Equals matches records whose field value equals Value exactly
type Equals struct {
	Field Field
	Value interface{}
}

// HasAllTags matches records carrying every listed tag
type HasAllTags struct {
	Tags []string
}

// HasAnyTags matches records carrying at least one listed tag
type HasAnyTags struct {
	Tags []string
}

// TextSearch matches records whose description contains the fragment,
// compared case-insensitively
type TextSearch struct {
	Fragment string
}

func (And) isPredicate()        {}
func (Or) isPredicate()         {}
func (Range) isPredicate()      {}
func (Equals) isPredicate()     {}
func (HasAllTags) isPredicate() {}
func (HasAnyTags) isPredicate() {}
func (TextSearch) isPredicate() {}

// Sort is the ordering a store execution must return records in
type Sort struct {
	Field      Field
	Descending bool
}

// NewestFirst sorts by descending record identifier. Identifiers are
// creation-ordered, so this is reverse creation order; every execution the
// planner issues requests it as part of the filtering contract.
func NewestFirst() Sort {
	return Sort{Field: FieldID, Descending: true}
}
