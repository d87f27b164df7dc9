package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"finance-tracker/internal/models"

	"gorm.io/gorm"
)

// TransactionFilter holds the optional exact-match list filters.
type TransactionFilter struct {
	Type     models.TransactionType
	Category string
}

// transactionSortColumns whitelists the sortable fields.
var transactionSortColumns = map[string]string{
	"date":      "date",
	"amount":    "amount_cents",
	"category":  "category",
	"type":      "type",
	"createdAt": "created_at",
}

// Transactions provides access to transaction records. All operations
// are scoped to a single owner.
type Transactions struct {
	db *gorm.DB
}

func NewTransactions(db *gorm.DB) *Transactions {
	return &Transactions{db: db}
}

// List returns one page of the owner's transactions plus the total
// count under the same filter.
func (s *Transactions) List(ctx context.Context, userID uint, f TransactionFilter, q Query) ([]models.Transaction, int64, error) {
	base := s.db.WithContext(ctx).Model(&models.Transaction{}).Where("user_id = ?", userID)
	if f.Type != "" {
		base = base.Where("type = ?", f.Type)
	}
	if f.Category != "" {
		base = base.Where("category = ?", f.Category)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count transactions: %w", err)
	}

	var items []models.Transaction
	err := base.Session(&gorm.Session{}).
		Order(q.OrderClause(transactionSortColumns, "date")).
		Offset(q.Offset()).
		Limit(q.Limit).
		Find(&items).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list transactions: %w", err)
	}
	return items, total, nil
}

// ListAll returns every transaction of the owner, newest first. Used by
// the export endpoints.
func (s *Transactions) ListAll(ctx context.Context, userID uint) ([]models.Transaction, error) {
	var items []models.Transaction
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("list all transactions: %w", err)
	}
	return items, nil
}

// Get fetches a transaction by id regardless of owner. The caller is
// responsible for the ownership check so that it can distinguish a
// missing record from a foreign one.
func (s *Transactions) Get(ctx context.Context, id uint) (*models.Transaction, error) {
	var t models.Transaction
	err := s.db.WithContext(ctx).First(&t, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return &t, nil
}

func (s *Transactions) Create(ctx context.Context, t *models.Transaction) error {
	if err := s.db.WithContext(ctx).Create(t).Error; err != nil {
		return fmt.Errorf("create transaction: %w", err)
	}
	return nil
}

// Update writes the mutable fields of t, scoped to its owner. Zero rows
// affected means the record vanished between check and write and is
// reported as ErrNotFound.
func (s *Transactions) Update(ctx context.Context, t *models.Transaction) error {
	res := s.db.WithContext(ctx).Model(&models.Transaction{}).
		Where("id = ? AND user_id = ?", t.ID, t.UserID).
		Select("type", "category", "amount_cents", "description", "date").
		Updates(t)
	if res.Error != nil {
		return fmt.Errorf("update transaction: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a transaction, scoped to its owner. Deleting an absent
// record returns ErrNotFound on every call.
func (s *Transactions) Delete(ctx context.Context, userID, id uint) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Transaction{})
	if res.Error != nil {
		return fmt.Errorf("delete transaction: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// TransactionStats aggregates the owner's transactions inside a period
// window, grouped by type. Absent groups stay zero.
type TransactionStats struct {
	IncomeCents  int64
	ExpenseCents int64
	IncomeCount  int64
	ExpenseCount int64
}

// Stats sums amounts and counts per type over [start, end].
func (s *Transactions) Stats(ctx context.Context, userID uint, start, end time.Time) (TransactionStats, error) {
	var rows []struct {
		Type  models.TransactionType
		Total int64
		N     int64
	}
	err := s.db.WithContext(ctx).Model(&models.Transaction{}).
		Select("type, COALESCE(SUM(amount_cents), 0) AS total, COUNT(*) AS n").
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Group("type").
		Scan(&rows).Error
	if err != nil {
		return TransactionStats{}, fmt.Errorf("transaction stats: %w", err)
	}

	var st TransactionStats
	for _, r := range rows {
		switch r.Type {
		case models.TypeIncome:
			st.IncomeCents = r.Total
			st.IncomeCount = r.N
		case models.TypeExpense:
			st.ExpenseCents = r.Total
			st.ExpenseCount = r.N
		}
	}
	return st, nil
}
