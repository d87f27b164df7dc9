package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"finance-tracker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedTransactions(t *testing.T, s *Transactions, userID uint, n int) {
	t.Helper()
	ctx := context.Background()
	base := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		err := s.Create(ctx, &models.Transaction{
			UserID:      userID,
			Type:        models.TypeExpense,
			Category:    "food",
			AmountCents: int64((i + 1) * 100),
			Description: fmt.Sprintf("purchase %d", i+1),
			Date:        base.AddDate(0, 0, i),
		})
		require.NoError(t, err)
	}
}

func TestTransactionsList_Pagination(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "alice@example.com")
	s := NewTransactions(db)
	ctx := context.Background()

	seedTransactions(t, s, user.ID, 25)

	q := Query{Page: 1, Limit: 10, SortBy: "date", SortOrder: "desc"}
	items, total, err := s.List(ctx, user.ID, TransactionFilter{}, q)
	require.NoError(t, err)
	assert.EqualValues(t, 25, total)
	assert.Len(t, items, 10)

	q.Page = 3
	items, total, err = s.List(ctx, user.ID, TransactionFilter{}, q)
	require.NoError(t, err)
	assert.EqualValues(t, 25, total)
	assert.Len(t, items, 5, "page 3 of 25 with limit 10 holds the last 5")
}

func TestTransactionsList_SortAscByAmount(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "alice@example.com")
	s := NewTransactions(db)
	ctx := context.Background()

	seedTransactions(t, s, user.ID, 8)

	q := Query{Page: 1, Limit: 10, SortBy: "amount", SortOrder: "asc"}
	items, _, err := s.List(ctx, user.ID, TransactionFilter{}, q)
	require.NoError(t, err)
	require.NotEmpty(t, items)

	for i := 1; i < len(items); i++ {
		assert.LessOrEqual(t, items[i-1].AmountCents, items[i].AmountCents,
			"amounts must be non-decreasing")
	}
}

func TestTransactionsList_Filters(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "alice@example.com")
	s := NewTransactions(db)
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, &models.Transaction{
		UserID: user.ID, Type: models.TypeIncome, Category: "salary",
		AmountCents: 500000, Description: "pay", Date: time.Now(),
	}))
	require.NoError(t, s.Create(ctx, &models.Transaction{
		UserID: user.ID, Type: models.TypeExpense, Category: "food",
		AmountCents: 2500, Description: "lunch", Date: time.Now(),
	}))

	q := Query{Page: 1, Limit: 10, SortBy: "date", SortOrder: "desc"}

	items, total, err := s.List(ctx, user.ID, TransactionFilter{Type: models.TypeIncome}, q)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, items, 1)
	assert.Equal(t, "salary", items[0].Category)

	_, total, err = s.List(ctx, user.ID, TransactionFilter{Category: "food"}, q)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)

	// filters never leak other users' records
	other := newTestUser(t, db, "bob@example.com")
	_, total, err = s.List(ctx, other.ID, TransactionFilter{}, q)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestTransactionsStats_RoundTrip(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "alice@example.com")
	s := NewTransactions(db)
	ctx := context.Background()

	now := time.Now()
	require.NoError(t, s.Create(ctx, &models.Transaction{
		UserID: user.ID, Type: models.TypeIncome, Category: "salary",
		AmountCents: 100000, Description: "salary", Date: now,
	}))
	require.NoError(t, s.Create(ctx, &models.Transaction{
		UserID: user.ID, Type: models.TypeExpense, Category: "bills",
		AmountCents: 40000, Description: "rent", Date: now,
	}))

	start, end := PeriodWindow(PeriodMonth, now)
	st, err := s.Stats(ctx, user.ID, start, end)
	require.NoError(t, err)

	assert.EqualValues(t, 100000, st.IncomeCents)
	assert.EqualValues(t, 40000, st.ExpenseCents)
	assert.EqualValues(t, 1, st.IncomeCount)
	assert.EqualValues(t, 1, st.ExpenseCount)
	assert.EqualValues(t, 60000, st.IncomeCents-st.ExpenseCents)
}

func TestTransactionsStats_EmptyGroupsAreZero(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "alice@example.com")
	s := NewTransactions(db)
	ctx := context.Background()

	now := time.Now()
	require.NoError(t, s.Create(ctx, &models.Transaction{
		UserID: user.ID, Type: models.TypeIncome, Category: "gift",
		AmountCents: 5000, Description: "gift", Date: now,
	}))

	start, end := PeriodWindow(PeriodMonth, now)
	st, err := s.Stats(ctx, user.ID, start, end)
	require.NoError(t, err)

	assert.EqualValues(t, 5000, st.IncomeCents)
	assert.Zero(t, st.ExpenseCents)
	assert.Zero(t, st.ExpenseCount)
}

func TestTransactionsStats_RespectsWindow(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "alice@example.com")
	s := NewTransactions(db)
	ctx := context.Background()

	now := time.Now()
	require.NoError(t, s.Create(ctx, &models.Transaction{
		UserID: user.ID, Type: models.TypeExpense, Category: "food",
		AmountCents: 1000, Description: "old", Date: now.AddDate(-1, 0, 0),
	}))

	start, end := PeriodWindow(PeriodYear, now)
	st, err := s.Stats(ctx, user.ID, start, end)
	require.NoError(t, err)
	assert.Zero(t, st.ExpenseCents, "last year's records are outside the year window")
}

func TestTransactionsUpdate_OwnerScoped(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "alice@example.com")
	s := NewTransactions(db)
	ctx := context.Background()

	tx := &models.Transaction{
		UserID: user.ID, Type: models.TypeExpense, Category: "food",
		AmountCents: 1000, Description: "lunch", Date: time.Now(),
	}
	require.NoError(t, s.Create(ctx, tx))

	tx.AmountCents = 2000
	require.NoError(t, s.Update(ctx, tx))

	got, err := s.Get(ctx, tx.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2000, got.AmountCents)

	// a write under the wrong owner touches nothing
	foreign := *got
	foreign.UserID = user.ID + 1
	foreign.AmountCents = 9999
	assert.ErrorIs(t, s.Update(ctx, &foreign), ErrNotFound)
}

func TestTransactionsDelete_Idempotent(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "alice@example.com")
	s := NewTransactions(db)
	ctx := context.Background()

	tx := &models.Transaction{
		UserID: user.ID, Type: models.TypeExpense, Category: "food",
		AmountCents: 1000, Description: "lunch", Date: time.Now(),
	}
	require.NoError(t, s.Create(ctx, tx))

	require.NoError(t, s.Delete(ctx, user.ID, tx.ID))
	assert.ErrorIs(t, s.Delete(ctx, user.ID, tx.ID), ErrNotFound,
		"second delete reports NotFound with no side effect")

	_, err := s.Get(ctx, tx.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
