package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	RecordTypeDebit  = "DEBIT"
	RecordTypeCredit = "CREDIT"

	// TypeCriteriaAny matches both record types when filtering
	TypeCriteriaAny = "ANY"

	// Filter combination modes, used both for the tag membership predicate
	// and for the top-level combination across per-field predicates
	FilterModeAll = "ALL"
	FilterModeAny = "ANY"
)

var (
	ErrInvalidRecordType = errors.New("invalid record type")
	ErrInvalidAmount     = errors.New("record amount must be positive")
)

// Record is a single dated debit or credit owned by one user
type Record struct {
	ID          RecordID        `gorm:"type:varchar(24);primary_key" json:"id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Date        time.Time       `gorm:"not null" json:"date"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Type        string          `gorm:"type:varchar(10);not null" json:"type"`
	Tags        TagList         `gorm:"type:text" json:"tags"`
	Description string          `gorm:"type:text;not null" json:"description"`

	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`

	// Associations
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate hook for Record
func (r *Record) BeforeCreate(tx *gorm.DB) error {
	if r.ID.IsZero() {
		r.ID = NewRecordID()
	}

	// Set timestamps if not already set (for tests)
	now := time.Now()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	if r.UpdatedAt.IsZero() {
		r.UpdatedAt = now
	}

	return r.Validate()
}

// BeforeUpdate hook for Record
func (r *Record) BeforeUpdate(tx *gorm.DB) error {
	r.UpdatedAt = time.Now()
	return r.Validate()
}

// Validate validates the record fields
func (r *Record) Validate() error {
	if r.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if !IsValidRecordType(r.Type) {
		return ErrInvalidRecordType
	}

	if r.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if r.Date.IsZero() {
		return errors.New("record date is required")
	}

	return nil
}

// IsDebit returns true for debit records
func (r *Record) IsDebit() bool {
	return r.Type == RecordTypeDebit
}

// IsCredit returns true for credit records
func (r *Record) IsCredit() bool {
	return r.Type == RecordTypeCredit
}

// TableName returns the table name for Record
func (r *Record) TableName() string {
	return "records"
}

// IsValidRecordType checks if the record type is valid
func IsValidRecordType(recordType string) bool {
	switch recordType {
	case RecordTypeDebit, RecordTypeCredit:
		return true
	default:
		return false
	}
}

// IsValidTypeCriteria checks if a filter type criteria is valid
func IsValidTypeCriteria(criteria string) bool {
	switch criteria {
	case TypeCriteriaAny, RecordTypeDebit, RecordTypeCredit:
		return true
	default:
		return false
	}
}

// IsValidFilterMode checks if a filter combination mode is valid
func IsValidFilterMode(mode string) bool {
	switch mode {
	case FilterModeAll, FilterModeAny:
		return true
	default:
		return false
	}
}
