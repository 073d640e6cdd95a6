package query

import (
	"errors"
	"log/slog"
	"time"

	apperrors "expense-tracker/internal/errors"
	"expense-tracker/internal/models"
	"expense-tracker/internal/tags"
	"expense-tracker/internal/validation"

	"github.com/google/uuid"
)

var (
	// ErrNoValidTags is returned when supplied tags resolve to nothing
	// against the owner's tag vocabulary
	ErrNoValidTags = errors.New("no valid tags")

	// ErrNoCriteria is returned when the criteria contain no usable
	// predicate and no description. It is detected before any store I/O.
	ErrNoCriteria = errors.New("no filter criteria given")
)

// VocabularySource loads a user's current tag vocabulary. Whether the user
// exists at all is the caller's concern and must be checked before filtering.
type VocabularySource interface {
	LoadVocabulary(ownerID uuid.UUID) ([]string, error)
}

// RecordStore executes one predicate against an owner's records and returns
// the matches in the requested order
type RecordStore interface {
	QueryRecords(ownerID uuid.UUID, predicate Predicate, sort Sort) ([]models.Record, error)
}

// Plan is the resolved execution strategy for one filter request: at most
// two store executions plus the ordering each must honor. Text is non-nil
// only in ANY mode with a description, where the store cannot combine a
// full-text predicate with a disjunction of other predicate types in a
// single query and the results are unioned instead.
type Plan struct {
	Primary Predicate
	Text    Predicate
	Sort    Sort
}

// Planner resolves filter criteria into plans and runs them. It is stateless
// and request-scoped; both collaborators are injected, never looked up from
// ambient state.
type Planner struct {
	vocab  VocabularySource
	store  RecordStore
	logger *slog.Logger
}

// NewPlanner creates a planner over the given collaborators
func NewPlanner(vocab VocabularySource, store RecordStore) *Planner {
	return &Planner{
		vocab:  vocab,
		store:  store,
		logger: slog.Default(),
	}
}

// Resolve validates the criteria and assembles the execution plan. No store
// I/O happens here; every validation-class failure is raised before the
// first query runs.
//
// Returned errors: *errors.ValidationError with the full field error list,
// ErrNoValidTags, or ErrNoCriteria.
func (p *Planner) Resolve(criteria *models.FilterCriteria, vocabulary []string) (*Plan, error) {
	if errs := validation.ValidateCriteria(criteria, time.Now()); len(errs) > 0 {
		return nil, apperrors.NewValidationError(errs...)
	}

	var resolved []string
	if criteria.HasTags() {
		resolved = tags.ResolveAgainstVocabulary(tags.Canonicalize(criteria.Tags), vocabulary)
		if len(resolved) == 0 {
			return nil, ErrNoValidTags
		}
	}

	predicates := make([]Predicate, 0, 5)

	if pred := BuildRange(FieldID, criteria.IDStart, criteria.IDEnd); pred != nil {
		predicates = append(predicates, pred)
	}
	if pred := BuildRange(FieldDate, criteria.DateStart, criteria.DateEnd); pred != nil {
		predicates = append(predicates, pred)
	}
	if pred := BuildRange(FieldAmount, criteria.AmountStart, criteria.AmountEnd); pred != nil {
		predicates = append(predicates, pred)
	}

	if criteria.Type != "" && criteria.Type != models.TypeCriteriaAny {
		predicates = append(predicates, Equals{Field: FieldType, Value: criteria.Type})
	}

	if len(resolved) > 0 {
		if criteria.TagsType == models.FilterModeAll {
			predicates = append(predicates, HasAllTags{Tags: resolved})
		} else {
			predicates = append(predicates, HasAnyTags{Tags: resolved})
		}
	}

	if len(predicates) == 0 && !criteria.HasDescription() {
		return nil, ErrNoCriteria
	}

	plan := &Plan{Sort: NewestFirst()}

	if criteria.Mode == models.FilterModeAll {
		combined := predicates
		if criteria.HasDescription() {
			combined = append(combined, TextSearch{Fragment: criteria.Description})
		}
		plan.Primary = conjoin(combined)
		return plan, nil
	}

	if len(predicates) > 0 {
		plan.Primary = disjoin(predicates)
	}
	if criteria.HasDescription() {
		plan.Text = TextSearch{Fragment: criteria.Description}
	}

	return plan, nil
}

// FilterRecords resolves the criteria against the owner's vocabulary and
// executes the plan. With two executions the second is only attempted after
// the first succeeds; a store failure aborts immediately with no partial
// results.
func (p *Planner) FilterRecords(ownerID uuid.UUID, criteria *models.FilterCriteria) ([]models.Record, error) {
	vocabulary, err := p.vocab.LoadVocabulary(ownerID)
	if err != nil {
		return nil, err
	}

	plan, err := p.Resolve(criteria, vocabulary)
	if err != nil {
		return nil, err
	}

	var primary []models.Record
	if plan.Primary != nil {
		primary, err = p.store.QueryRecords(ownerID, plan.Primary, plan.Sort)
		if err != nil {
			return nil, err
		}
	}

	if plan.Text == nil {
		return primary, nil
	}

	text, err := p.store.QueryRecords(ownerID, plan.Text, plan.Sort)
	if err != nil {
		return nil, err
	}

	if plan.Primary == nil {
		return text, nil
	}

	p.logger.Debug("merging filter sub-results",
		slog.Int("primary", len(primary)),
		slog.Int("text", len(text)),
	)

	return mergeByID(primary, text), nil
}

// conjoin wraps multiple predicates in an And; a single predicate stands alone
func conjoin(predicates []Predicate) Predicate {
	if len(predicates) == 1 {
		return predicates[0]
	}
	return And{Predicates: predicates}
}

// disjoin wraps multiple predicates in an Or; a single predicate stands alone
func disjoin(predicates []Predicate) Predicate {
	if len(predicates) == 1 {
		return predicates[0]
	}
	return Or{Predicates: predicates}
}
