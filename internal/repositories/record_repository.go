package repositories

import (
	"errors"
	"fmt"
	"strings"

	"expense-tracker/internal/models"
	"expense-tracker/internal/query"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound = errors.New("record not found")
)

// recordRepository implements RecordRepositoryInterface. It also acts as the
// store adapter for the filter planner, lowering abstract predicate trees to
// SQL where clauses.
type recordRepository struct {
	db *gorm.DB
}

// NewRecordRepository creates a new record repository
func NewRecordRepository(db *gorm.DB) RecordRepositoryInterface {
	return &recordRepository{
		db: db,
	}
}

// Create creates a new record
func (r *recordRepository) Create(record *models.Record) error {
	if err := r.db.Create(record).Error; err != nil {
		return fmt.Errorf("failed to create record: %w", err)
	}
	return nil
}

// GetByID retrieves a record by ID
func (r *recordRepository) GetByID(id models.RecordID) (*models.Record, error) {
	var record models.Record
	if err := r.db.Where("id = ?", string(id)).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get record: %w", err)
	}
	return &record, nil
}

// Update saves changes to an existing record
func (r *recordRepository) Update(record *models.Record) error {
	result := r.db.Model(record).Select("date", "amount", "type", "tags", "description", "updated_at").Updates(record)
	if result.Error != nil {
		return fmt.Errorf("failed to update record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// Delete removes a record
func (r *recordRepository) Delete(id models.RecordID) error {
	result := r.db.Where("id = ?", string(id)).Delete(&models.Record{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// ListByUserID retrieves all of a user's records, most recently created first
func (r *recordRepository) ListByUserID(userID uuid.UUID) ([]models.Record, error) {
	var records []models.Record
	if err := r.db.Where("user_id = ?", userID).
		Order("id DESC").
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	return records, nil
}

// DeleteByUserID removes all records owned by a user
func (r *recordRepository) DeleteByUserID(userID uuid.UUID) error {
	if err := r.db.Where("user_id = ?", userID).Delete(&models.Record{}).Error; err != nil {
		return fmt.Errorf("failed to delete user records: %w", err)
	}
	return nil
}

// QueryRecords lowers the predicate tree to a where clause and executes it
// against the owner's records in the requested order
func (r *recordRepository) QueryRecords(ownerID uuid.UUID, predicate query.Predicate, sort query.Sort) ([]models.Record, error) {
	clause, args, err := lowerPredicate(predicate)
	if err != nil {
		return nil, err
	}

	q := r.db.Where("user_id = ?", ownerID)
	if clause != "" {
		q = q.Where(clause, args...)
	}

	var records []models.Record
	if err := q.Order(orderClause(sort)).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	return records, nil
}

// RenameTag replaces a tag on every record of the user that carries it
func (r *recordRepository) RenameTag(userID uuid.UUID, oldTag, newTag string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		records, err := recordsWithTag(tx, userID, oldTag)
		if err != nil {
			return err
		}

		for i := range records {
			record := &records[i]
			for j, tag := range record.Tags {
				if strings.EqualFold(tag, oldTag) {
					record.Tags[j] = newTag
				}
			}
			if err := tx.Model(record).Update("tags", record.Tags).Error; err != nil {
				return fmt.Errorf("failed to rename tag on record %s: %w", record.ID, err)
			}
		}
		return nil
	})
}

// RemoveTag strips a tag from every record of the user that carries it
func (r *recordRepository) RemoveTag(userID uuid.UUID, tag string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		records, err := recordsWithTag(tx, userID, tag)
		if err != nil {
			return err
		}

		for i := range records {
			record := &records[i]
			kept := make(models.TagList, 0, len(record.Tags))
			for _, t := range record.Tags {
				if !strings.EqualFold(t, tag) {
					kept = append(kept, t)
				}
			}
			if err := tx.Model(record).Update("tags", kept).Error; err != nil {
				return fmt.Errorf("failed to remove tag from record %s: %w", record.ID, err)
			}
		}
		return nil
	})
}

func recordsWithTag(tx *gorm.DB, userID uuid.UUID, tag string) ([]models.Record, error) {
	var records []models.Record
	if err := tx.Where("user_id = ? AND LOWER(tags) LIKE ?", userID, tagPattern(tag)).
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to find records with tag: %w", err)
	}
	return records, nil
}

// Predicate lowering

// columnFor maps predicate fields to their column names
func columnFor(field query.Field) (string, error) {
	switch field {
	case query.FieldID:
		return "id", nil
	case query.FieldDate:
		return "date", nil
	case query.FieldAmount:
		return "amount", nil
	case query.FieldType:
		return "type", nil
	default:
		return "", fmt.Errorf("unknown predicate field %q", field)
	}
}

// lowerPredicate converts an abstract predicate into a SQL condition plus
// bind arguments. Tag membership and text search both lower to LIKE over
// lowercased columns; tags are stored separator-wrapped so a single LIKE
// matches one whole tag.
func lowerPredicate(p query.Predicate) (string, []interface{}, error) {
	switch node := p.(type) {
	case query.And:
		return lowerComposite(node.Predicates, " AND ")

	case query.Or:
		return lowerComposite(node.Predicates, " OR ")

	case query.Range:
		column, err := columnFor(node.Field)
		if err != nil {
			return "", nil, err
		}
		switch {
		case node.Start != nil && node.End != nil:
			return fmt.Sprintf("(%s >= ? AND %s <= ?)", column, column),
				[]interface{}{bindValue(node.Start), bindValue(node.End)}, nil
		case node.Start != nil:
			return fmt.Sprintf("%s >= ?", column), []interface{}{bindValue(node.Start)}, nil
		case node.End != nil:
			return fmt.Sprintf("%s <= ?", column), []interface{}{bindValue(node.End)}, nil
		default:
			return "", nil, fmt.Errorf("range predicate on %q has no bounds", node.Field)
		}

	case query.Equals:
		column, err := columnFor(node.Field)
		if err != nil {
			return "", nil, err
		}
		return fmt.Sprintf("%s = ?", column), []interface{}{bindValue(node.Value)}, nil

	case query.HasAllTags:
		return lowerTagMembership(node.Tags, " AND ")

	case query.HasAnyTags:
		return lowerTagMembership(node.Tags, " OR ")

	case query.TextSearch:
		return "LOWER(description) LIKE ?",
			[]interface{}{"%" + strings.ToLower(node.Fragment) + "%"}, nil

	default:
		return "", nil, fmt.Errorf("unsupported predicate %T", p)
	}
}

func lowerComposite(predicates []query.Predicate, op string) (string, []interface{}, error) {
	if len(predicates) == 0 {
		return "", nil, errors.New("empty composite predicate")
	}

	clauses := make([]string, 0, len(predicates))
	var args []interface{}

	for _, child := range predicates {
		clause, childArgs, err := lowerPredicate(child)
		if err != nil {
			return "", nil, err
		}
		clauses = append(clauses, "("+clause+")")
		args = append(args, childArgs...)
	}

	return strings.Join(clauses, op), args, nil
}

func lowerTagMembership(tags []string, op string) (string, []interface{}, error) {
	if len(tags) == 0 {
		return "", nil, errors.New("empty tag membership predicate")
	}

	clauses := make([]string, 0, len(tags))
	args := make([]interface{}, 0, len(tags))

	for _, tag := range tags {
		clauses = append(clauses, "LOWER(tags) LIKE ?")
		args = append(args, tagPattern(tag))
	}

	return strings.Join(clauses, op), args, nil
}

// tagPattern builds the LIKE pattern matching one whole tag inside the
// separator-wrapped encoded tag column
func tagPattern(tag string) string {
	return "%|" + strings.ToLower(tag) + "|%"
}

// bindValue unwraps domain types that the SQL driver cannot bind directly
func bindValue(v interface{}) interface{} {
	if id, ok := v.(models.RecordID); ok {
		return string(id)
	}
	return v
}

func orderClause(sort query.Sort) string {
	column, err := columnFor(sort.Field)
	if err != nil {
		column = "id"
	}
	if sort.Descending {
		return column + " DESC"
	}
	return column + " ASC"
}
