package models

import "time"

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Category sets allowed per transaction type. The two sets are disjoint.
var (
	IncomeCategories = []string{
		"salary", "freelance", "investment", "business", "gift", "other_income",
	}
	ExpenseCategories = []string{
		"food", "transportation", "entertainment", "shopping", "bills",
		"healthcare", "education", "travel", "other_expense",
	}
)

// Transaction is a single income or expense record.
// Amounts are stored in cents to avoid float rounding.
type Transaction struct {
	ID          uint            `gorm:"primaryKey"`
	UserID      uint            `gorm:"index:idx_tx_user_date;index:idx_tx_user_type;not null"`
	Type        TransactionType `gorm:"size:16;index:idx_tx_user_type;not null"`
	Category    string          `gorm:"size:32;not null"`
	AmountCents int64           `gorm:"not null"`
	Description string          `gorm:"size:200;not null"`
	Date        time.Time       `gorm:"index:idx_tx_user_date;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CategoriesFor returns the allowed category set for a transaction type,
// or nil for an unknown type.
func CategoriesFor(t TransactionType) []string {
	switch t {
	case TypeIncome:
		return IncomeCategories
	case TypeExpense:
		return ExpenseCategories
	}
	return nil
}
