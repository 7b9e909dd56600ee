package domain

import (
	"time" // Transaction timestamps

	"github.com/shopspring/decimal" // Currency-precision amounts
)

// TxType is the direction of a transaction
type TxType string

// Supported transaction types
const (
	TxDebit  TxType = "DEBIT"  // Money out
	TxCredit TxType = "CREDIT" // Money in
)

// TxStatus is the processing state of a transaction.
// Any value may be written at any time; no transition rules are enforced.
type TxStatus string

// Supported transaction statuses
const (
	TxPending   TxStatus = "PENDING"   // Awaiting processing
	TxCompleted TxStatus = "COMPLETED" // Processed successfully
	TxFailed    TxStatus = "FAILED"    // Processing failed
)

// Transaction Model
type Transaction struct {
	ID              uint            `gorm:"primaryKey" json:"id"`                      // Primary key
	TransactionID   string          `gorm:"not null" json:"transactionId"`             // Business code, e.g. TXN001 or generated TXN-XXXXXXXX
	Description     string          `gorm:"not null" json:"description"`               // Human-readable description
	Amount          decimal.Decimal `gorm:"type:decimal(19,2);not null" json:"amount"` // Amount with currency precision
	Type            TxType          `gorm:"type:varchar(16);not null" json:"type"`     // DEBIT or CREDIT
	Status          TxStatus        `gorm:"type:varchar(16);not null" json:"status"`   // PENDING, COMPLETED or FAILED
	TransactionDate time.Time       `gorm:"not null" json:"transactionDate"`           // When the transaction occurred
	Category        string          `gorm:"not null" json:"category"`                  // Free-form category label
	Reference       *string         `json:"reference"`                                 // Optional external reference code
}
