package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"finance-tracker/internal/models"
	"finance-tracker/internal/store"
	"finance-tracker/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// TransactionHandler serves the transaction resource.
type TransactionHandler struct {
	Store    *store.Transactions
	Defaults store.Query
	MaxLimit int
	Log      *logrus.Logger
}

func NewTransactionHandler(s *store.Transactions, defaultLimit, maxLimit int, log *logrus.Logger) *TransactionHandler {
	return &TransactionHandler{
		Store: s,
		Defaults: store.Query{
			Page:      1,
			Limit:     defaultLimit,
			SortBy:    "date",
			SortOrder: "desc",
		},
		MaxLimit: maxLimit,
		Log:      log,
	}
}

type createTransactionReq struct {
	Type        string `json:"type" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Amount      string `json:"amount" binding:"required"`
	Description string `json:"description" binding:"required"`
	Date        string `json:"date"`
}

type updateTransactionReq struct {
	Type        *string `json:"type"`
	Category    *string `json:"category"`
	Amount      *string `json:"amount"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
}

type transactionResp struct {
	ID          uint      `json:"id"`
	Type        string    `json:"type"`
	Category    string    `json:"category"`
	AmountCents int64     `json:"amount_cents"`
	Amount      string    `json:"amount"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}

func toTransactionResp(t *models.Transaction) transactionResp {
	return transactionResp{
		ID:          t.ID,
		Type:        string(t.Type),
		Category:    t.Category,
		AmountCents: t.AmountCents,
		Amount:      util.FormatCents(t.AmountCents),
		Description: t.Description,
		Date:        t.Date,
		CreatedAt:   t.CreatedAt,
	}
}

// validateTransaction checks the full entity state so that partial
// updates cannot leave a category that contradicts the type.
func validateTransaction(t *models.Transaction) map[string]string {
	errs := map[string]string{}
	categories := models.CategoriesFor(t.Type)
	if categories == nil {
		errs["type"] = "Type must be income or expense"
	} else if !util.InSet(t.Category, categories) {
		errs["category"] = "Category is not valid for this transaction type"
	}
	if t.AmountCents < 1 {
		errs["amount"] = "Amount must be greater than 0"
	}
	if t.Description == "" {
		errs["description"] = "Please add a description"
	} else if len(t.Description) > 200 {
		errs["description"] = "Description cannot be more than 200 characters"
	}
	return errs
}

// List returns one page of the caller's transactions.
// GET /api/transactions?page&limit&type&category&sortBy&sortOrder
func (h *TransactionHandler) List(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	q := parseListQuery(c).Normalize(h.Defaults, h.MaxLimit)
	filter := store.TransactionFilter{
		Type:     models.TransactionType(c.Query("type")),
		Category: c.Query("category"),
	}

	items, total, err := h.Store.List(c.Request.Context(), user.ID, filter, q)
	if err != nil {
		h.Log.WithError(err).Error("list transactions")
		util.Error(c, http.StatusInternalServerError, "Server error")
		return
	}

	resp := make([]transactionResp, 0, len(items))
	for i := range items {
		resp = append(resp, toTransactionResp(&items[i]))
	}

	util.Success(c, http.StatusOK, util.Response{
		"count":      len(resp),
		"total":      total,
		"data":       resp,
		"pagination": pagination(q, total),
	})
}

// Get returns a single transaction after the ownership check.
// GET /api/transactions/:id
func (h *TransactionHandler) Get(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	t, err := h.Store.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			util.Error(c, http.StatusNotFound, "Transaction not found")
		} else {
			h.Log.WithError(err).Error("get transaction")
			util.Error(c, http.StatusInternalServerError, "Server error")
		}
		return
	}
	if t.UserID != user.ID {
		util.Error(c, http.StatusForbidden, "Not authorized to access this transaction")
		return
	}

	util.Success(c, http.StatusOK, util.Response{
		"data": toTransactionResp(t),
	})
}

// Create validates and persists a new transaction for the caller.
// POST /api/transactions
func (h *TransactionHandler) Create(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	var req createTransactionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Please provide type, category, amount and description")
		return
	}

	errs := map[string]string{}
	amountCents, err := util.ParseAmount(req.Amount)
	if err != nil {
		errs["amount"] = "Please add a valid amount"
	}

	date := time.Now()
	if req.Date != "" {
		date, err = util.ParseDate(req.Date)
		if err != nil {
			errs["date"] = "Please add a valid date"
		}
	}

	t := models.Transaction{
		UserID:      user.ID,
		Type:        models.TransactionType(req.Type),
		Category:    strings.TrimSpace(req.Category),
		AmountCents: amountCents,
		Description: strings.TrimSpace(req.Description),
		Date:        date,
	}
	for field, msg := range validateTransaction(&t) {
		if _, seen := errs[field]; !seen {
			errs[field] = msg
		}
	}
	if len(errs) > 0 {
		util.Invalid(c, errs)
		return
	}

	if err := h.Store.Create(c.Request.Context(), &t); err != nil {
		h.Log.WithError(err).Error("create transaction")
		util.Error(c, http.StatusInternalServerError, "Server error")
		return
	}

	util.Success(c, http.StatusCreated, util.Response{
		"data": toTransactionResp(&t),
	})
}

// Update applies a partial update after the ownership check. The write
// itself is owner-scoped; if the record vanished in between, the store
// reports NotFound.
// PUT /api/transactions/:id
func (h *TransactionHandler) Update(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req updateTransactionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	t, err := h.Store.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			util.Error(c, http.StatusNotFound, "Transaction not found")
		} else {
			h.Log.WithError(err).Error("get transaction")
			util.Error(c, http.StatusInternalServerError, "Server error")
		}
		return
	}
	if t.UserID != user.ID {
		util.Error(c, http.StatusForbidden, "Not authorized to update this transaction")
		return
	}

	errs := map[string]string{}
	if req.Type != nil {
		t.Type = models.TransactionType(*req.Type)
	}
	if req.Category != nil {
		t.Category = strings.TrimSpace(*req.Category)
	}
	if req.Amount != nil {
		cents, err := util.ParseAmount(*req.Amount)
		if err != nil {
			errs["amount"] = "Please add a valid amount"
		} else {
			t.AmountCents = cents
		}
	}
	if req.Description != nil {
		t.Description = strings.TrimSpace(*req.Description)
	}
	if req.Date != nil {
		date, err := util.ParseDate(*req.Date)
		if err != nil {
			errs["date"] = "Please add a valid date"
		} else {
			t.Date = date
		}
	}
	for field, msg := range validateTransaction(t) {
		if _, seen := errs[field]; !seen {
			errs[field] = msg
		}
	}
	if len(errs) > 0 {
		util.Invalid(c, errs)
		return
	}

	if err := h.Store.Update(c.Request.Context(), t); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			util.Error(c, http.StatusNotFound, "Transaction not found")
		} else {
			h.Log.WithError(err).Error("update transaction")
			util.Error(c, http.StatusInternalServerError, "Server error")
		}
		return
	}

	util.Success(c, http.StatusOK, util.Response{
		"data": toTransactionResp(t),
	})
}

// Delete removes a transaction after the ownership check. Repeated
// deletes of the same id keep returning NotFound.
// DELETE /api/transactions/:id
func (h *TransactionHandler) Delete(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	t, err := h.Store.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			util.Error(c, http.StatusNotFound, "Transaction not found")
		} else {
			h.Log.WithError(err).Error("get transaction")
			util.Error(c, http.StatusInternalServerError, "Server error")
		}
		return
	}
	if t.UserID != user.ID {
		util.Error(c, http.StatusForbidden, "Not authorized to delete this transaction")
		return
	}

	if err := h.Store.Delete(c.Request.Context(), user.ID, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			util.Error(c, http.StatusNotFound, "Transaction not found")
		} else {
			h.Log.WithError(err).Error("delete transaction")
			util.Error(c, http.StatusInternalServerError, "Server error")
		}
		return
	}

	util.Success(c, http.StatusOK, util.Response{
		"data": gin.H{},
	})
}

// Stats aggregates the caller's transactions over a period window.
// GET /api/transactions/stats?period=week|month|year
func (h *TransactionHandler) Stats(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	period := c.DefaultQuery("period", store.PeriodMonth)
	switch period {
	case store.PeriodWeek, store.PeriodMonth, store.PeriodYear:
	default:
		period = store.PeriodMonth
	}
	start, end := store.PeriodWindow(period, time.Now())

	st, err := h.Store.Stats(c.Request.Context(), user.ID, start, end)
	if err != nil {
		h.Log.WithError(err).Error("transaction stats")
		util.Error(c, http.StatusInternalServerError, "Server error")
		return
	}

	balance := st.IncomeCents - st.ExpenseCents
	util.Success(c, http.StatusOK, util.Response{
		"data": gin.H{
			"income":        util.FormatCents(st.IncomeCents),
			"income_cents":  st.IncomeCents,
			"expense":       util.FormatCents(st.ExpenseCents),
			"expense_cents": st.ExpenseCents,
			"balance":       util.FormatCents(balance),
			"balance_cents": balance,
			"income_count":  st.IncomeCount,
			"expense_count": st.ExpenseCount,
			"period":        period,
			"start_date":    start,
			"end_date":      end,
		},
	})
}
