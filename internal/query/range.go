package query

import "fmt"

// BuildRange turns two optional bounds into a predicate for the given field:
// both bounds absent yields nil (the field contributes nothing), equal bounds
// collapse to an exact match, unequal bounds give an inclusive double-bounded
// range, and a single bound gives a one-sided range. Bounds are compared by
// their canonical string form. Ordering of the bounds is not checked here;
// that happens during criteria validation so it can be reported as a field
// error instead of silently producing an empty range.
func BuildRange[T fmt.Stringer](field Field, start, end *T) Predicate {
	switch {
	case start != nil && end != nil:
		if (*start).String() == (*end).String() {
			return Equals{Field: field, Value: *start}
		}
		return Range{Field: field, Start: *start, End: *end}
	case start != nil:
		return Range{Field: field, Start: *start}
	case end != nil:
		return Range{Field: field, End: *end}
	default:
		return nil
	}
}
