// Package seed loads the sample fixture data on first run.
package seed

import (
	"math/rand" // Scattering fixture dates
	"time"      // Fixture timestamps

	"finance_tracker/internal/domain" // Importing domain models

	"github.com/shopspring/decimal" // Fixture amounts
	"github.com/sirupsen/logrus"    // Logging library
	"golang.org/x/crypto/bcrypt"    // Password hashing
	"gorm.io/gorm"                  // GORM ORM library
)

// Run loads the sample users and transactions. It is idempotent: each
// store is only seeded when it holds no rows, so repeated invocations
// (or restarts) never duplicate the fixtures.
func Run(db *gorm.DB) error {
	if err := seedUsers(db); err != nil {
		return err
	}
	return seedTransactions(db)
}

// seedUsers inserts the three sample accounts when the users table is empty
func seedUsers(db *gorm.DB) error {
	var count int64
	if err := db.Model(&domain.User{}).Count(&count).Error; err != nil {
		return err // Storage failure
	}
	if count > 0 {
		return nil // Already seeded
	}
	users := []domain.User{
		{Username: "admin", Password: mustHash("admin123"), FullName: "Admin User", Email: "admin@payan.com", Role: domain.RoleAdmin, Enabled: true},
		{Username: "user1", Password: mustHash("password123"), FullName: "John Doe", Email: "john.doe@example.com", Role: domain.RoleUser, Enabled: true},
		{Username: "user2", Password: mustHash("password123"), FullName: "Jane Smith", Email: "jane.smith@example.com", Role: domain.RoleUser, Enabled: true},
	}
	if err := db.Create(&users).Error; err != nil {
		return err // Storage failure
	}
	logrus.WithField("count", len(users)).Info("Sample users loaded")
	return nil
}

// seedTransactions inserts the fifteen sample transactions when the
// transactions table is empty
func seedTransactions(db *gorm.DB) error {
	var count int64
	if err := db.Model(&domain.Transaction{}).Count(&count).Error; err != nil {
		return err // Storage failure
	}
	if count > 0 {
		return nil // Already seeded
	}
	txns := []domain.Transaction{
		fixture("TXN001", "Salary Deposit", "5000.00", domain.TxCredit, domain.TxCompleted, "Salary", ref("SAL-2024-01")),
		fixture("TXN002", "Grocery Shopping", "150.50", domain.TxDebit, domain.TxCompleted, "Food & Dining", ref("GRC-2024-01")),
		fixture("TXN003", "Electric Bill Payment", "80.00", domain.TxDebit, domain.TxCompleted, "Utilities", ref("BILL-2024-01")),
		fixture("TXN004", "Freelance Project Payment", "1200.00", domain.TxCredit, domain.TxCompleted, "Income", ref("FRL-2024-01")),
		fixture("TXN005", "Online Shopping - Electronics", "450.00", domain.TxDebit, domain.TxCompleted, "Shopping", ref("AMZ-2024-01")),
		fixture("TXN006", "Restaurant Dinner", "85.75", domain.TxDebit, domain.TxCompleted, "Food & Dining", ref("REST-2024-01")),
		fixture("TXN007", "Bank Interest Credit", "25.50", domain.TxCredit, domain.TxCompleted, "Interest", ref("INT-2024-01")),
		fixture("TXN008", "Gym Membership", "60.00", domain.TxDebit, domain.TxPending, "Health & Fitness", nil),
		fixture("TXN009", "Insurance Premium", "200.00", domain.TxDebit, domain.TxCompleted, "Insurance", ref("INS-2024-01")),
		fixture("TXN010", "Stock Dividend", "150.00", domain.TxCredit, domain.TxCompleted, "Investment", ref("DIV-2024-01")),
		fixture("TXN011", "Car Fuel", "65.00", domain.TxDebit, domain.TxCompleted, "Transportation", ref("FUEL-2024-01")),
		fixture("TXN012", "Mobile Recharge", "30.00", domain.TxDebit, domain.TxFailed, "Utilities", nil),
		fixture("TXN013", "Rent Payment", "1500.00", domain.TxDebit, domain.TxCompleted, "Housing", ref("RENT-2024-01")),
		fixture("TXN014", "Refund - Online Order", "75.00", domain.TxCredit, domain.TxPending, "Refund", nil),
		fixture("TXN015", "Coffee Shop", "12.50", domain.TxDebit, domain.TxCompleted, "Food & Dining", ref("CAFE-2024-01")),
	}
	if err := db.Create(&txns).Error; err != nil {
		return err // Storage failure
	}
	logrus.WithField("count", len(txns)).Info("Sample transactions loaded")
	return nil
}

// fixture builds one sample transaction with a date scattered over the
// last 30 days
func fixture(code, description, amount string, txType domain.TxType, status domain.TxStatus, category string, reference *string) domain.Transaction {
	daysAgo := rand.Intn(30)  // Random day within the last month
	hoursAgo := rand.Intn(24) // Random hour within that day
	return domain.Transaction{
		TransactionID:   code,                                                                 // Fixture business code
		Description:     description,                                                          // Fixture description
		Amount:          decimal.RequireFromString(amount),                                    // Fixture amount
		Type:            txType,                                                               // Fixture type
		Status:          status,                                                               // Fixture status
		TransactionDate: time.Now().AddDate(0, 0, -daysAgo).Add(-time.Duration(hoursAgo) * time.Hour), // Scattered date
		Category:        category,                                                             // Fixture category
		Reference:       reference,                                                            // Optional reference
	}
}

// ref returns a pointer to a reference code literal
func ref(s string) *string {
	return &s
}

// mustHash bcrypt-hashes a fixture password; fixture input cannot fail
func mustHash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logrus.Fatalf("failed to hash fixture password: %v", err)
	}
	return string(hash)
}
