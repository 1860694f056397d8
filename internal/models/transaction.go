package models

import "time"

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction represents an income or expense entry. Amount holds the
// unsigned decimal magnitude as entered by the user; the sign is derived
// from Type at aggregation time. Entries whose amount does not parse are
// skipped by the net-profit fold rather than treated as errors.
type Transaction struct {
	Base
	UserID   string          `gorm:"type:uuid;not null;index" json:"user_id"`
	Type     TransactionType `gorm:"not null" json:"type"`
	Amount   string          `gorm:"not null" json:"amount"`
	Category string          `gorm:"not null" json:"category"`
	Date     time.Time       `gorm:"not null" json:"date"`
}
