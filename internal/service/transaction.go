package service

import (
	"errors"  // Error wrapping and comparison
	"strings" // Uppercasing generated codes
	"time"    // Default transaction timestamps

	"finance_tracker/internal/domain" // Importing domain models

	"github.com/google/uuid" // Random token for generated codes
	"gorm.io/gorm"           // GORM ORM library
)

// txnIDPrefix is the prefix of generated business transaction codes
const txnIDPrefix = "TXN-"

// TransactionService implements transaction CRUD and attribute filters
type TransactionService struct {
	db *gorm.DB // Database handle
}

// NewTransactionService creates a transaction service on top of db
func NewTransactionService(db *gorm.DB) *TransactionService {
	return &TransactionService{db: db}
}

// Create persists a new transaction. A missing business code gets a
// generated one and a zero date is stamped with the current time.
func (s *TransactionService) Create(txn *domain.Transaction) (*domain.Transaction, error) {
	// Generate business code if not provided
	if txn.TransactionID == "" {
		txn.TransactionID = generateTransactionID()
	}
	// Stamp current time if no date was provided
	if txn.TransactionDate.IsZero() {
		txn.TransactionDate = time.Now()
	}
	if err := s.db.Create(txn).Error; err != nil {
		return nil, err // Storage failure
	}
	return txn, nil // Return the stored record
}

// GetAll returns every transaction ordered by date, newest first
func (s *TransactionService) GetAll() ([]domain.Transaction, error) {
	var txns []domain.Transaction
	err := s.db.Order("transaction_date desc").Find(&txns).Error
	return txns, err
}

// GetByID returns the transaction with the given id, or ErrNotFound
func (s *TransactionService) GetByID(id uint) (*domain.Transaction, error) {
	var txn domain.Transaction
	if err := s.db.First(&txn, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound // Translate to service error
		}
		return nil, err
	}
	return &txn, nil
}

// GetByStatus returns all transactions with the given status
func (s *TransactionService) GetByStatus(status domain.TxStatus) ([]domain.Transaction, error) {
	var txns []domain.Transaction
	err := s.db.Where("status = ?", status).Find(&txns).Error
	return txns, err
}

// GetByType returns all transactions with the given type
func (s *TransactionService) GetByType(txType domain.TxType) ([]domain.Transaction, error) {
	var txns []domain.Transaction
	err := s.db.Where("type = ?", txType).Find(&txns).Error
	return txns, err
}

// GetByCategory returns all transactions with the given category
func (s *TransactionService) GetByCategory(category string) ([]domain.Transaction, error) {
	var txns []domain.Transaction
	err := s.db.Where("category = ?", category).Find(&txns).Error
	return txns, err
}

// Update overwrites the mutable fields of an existing transaction.
// The business code and date are immutable on this path.
func (s *TransactionService) Update(id uint, details *domain.Transaction) (*domain.Transaction, error) {
	txn, err := s.GetByID(id) // Fails with ErrNotFound if absent
	if err != nil {
		return nil, err
	}
	txn.Description = details.Description // Overwrite description
	txn.Amount = details.Amount           // Overwrite amount
	txn.Type = details.Type               // Overwrite type
	txn.Status = details.Status           // Overwrite status
	txn.Category = details.Category       // Overwrite category
	txn.Reference = details.Reference     // Overwrite reference
	if err := s.db.Save(txn).Error; err != nil {
		return nil, err // Storage failure
	}
	return txn, nil
}

// UpdateStatus overwrites only the status of an existing transaction.
// No transition rules apply; any status may replace any other.
func (s *TransactionService) UpdateStatus(id uint, status domain.TxStatus) (*domain.Transaction, error) {
	txn, err := s.GetByID(id) // Fails with ErrNotFound if absent
	if err != nil {
		return nil, err
	}
	txn.Status = status // Overwrite status only
	if err := s.db.Save(txn).Error; err != nil {
		return nil, err // Storage failure
	}
	return txn, nil
}

// Delete removes the transaction with the given id, or fails with ErrNotFound
func (s *TransactionService) Delete(id uint) error {
	res := s.db.Delete(&domain.Transaction{}, id)
	if res.Error != nil {
		return res.Error // Storage failure
	}
	if res.RowsAffected == 0 {
		return ErrNotFound // Nothing was deleted
	}
	return nil
}

// generateTransactionID builds a fresh business code: the fixed prefix
// plus the first 8 characters of a random UUID, uppercased
func generateTransactionID() string {
	return txnIDPrefix + strings.ToUpper(uuid.NewString()[:8])
}
