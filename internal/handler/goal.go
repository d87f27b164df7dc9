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

// GoalHandler serves the savings-goal resource.
type GoalHandler struct {
	Store    *store.Goals
	Defaults store.Query
	MaxLimit int
	Log      *logrus.Logger
}

func NewGoalHandler(s *store.Goals, defaultLimit, maxLimit int, log *logrus.Logger) *GoalHandler {
	return &GoalHandler{
		Store: s,
		Defaults: store.Query{
			Page:      1,
			Limit:     defaultLimit,
			SortBy:    "deadline",
			SortOrder: "asc",
		},
		MaxLimit: maxLimit,
		Log:      log,
	}
}

type createGoalReq struct {
	Title         string `json:"title" binding:"required"`
	TargetAmount  string `json:"target_amount" binding:"required"`
	CurrentAmount string `json:"current_amount"`
	Deadline      string `json:"deadline" binding:"required"`
	Category      string `json:"category" binding:"required"`
	Priority      string `json:"priority"`
	Notes         string `json:"notes"`
}

type updateGoalReq struct {
	Title         *string `json:"title"`
	TargetAmount  *string `json:"target_amount"`
	CurrentAmount *string `json:"current_amount"`
	Deadline      *string `json:"deadline"`
	Category      *string `json:"category"`
	Priority      *string `json:"priority"`
	Notes         *string `json:"notes"`
}

type goalResp struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	TargetCents   int64     `json:"target_cents"`
	TargetAmount  string    `json:"target_amount"`
	CurrentCents  int64     `json:"current_cents"`
	CurrentAmount string    `json:"current_amount"`
	Deadline      time.Time `json:"deadline"`
	Category      string    `json:"category"`
	Priority      string    `json:"priority"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func toGoalResp(g *models.Goal) goalResp {
	return goalResp{
		ID:            g.ID,
		Title:         g.Title,
		TargetCents:   g.TargetCents,
		TargetAmount:  util.FormatCents(g.TargetCents),
		CurrentCents:  g.CurrentCents,
		CurrentAmount: util.FormatCents(g.CurrentCents),
		Deadline:      g.Deadline,
		Category:      g.Category,
		Priority:      string(g.Priority),
		Notes:         g.Notes,
		CreatedAt:     g.CreatedAt,
	}
}

// validateGoal checks the full entity state. CurrentCents may exceed
// TargetCents; progress above 100% is allowed.
func validateGoal(g *models.Goal) map[string]string {
	errs := map[string]string{}
	if g.Title == "" {
		errs["title"] = "Please add a goal title"
	} else if len(g.Title) > 100 {
		errs["title"] = "Title cannot be more than 100 characters"
	}
	if g.TargetCents < 100 {
		errs["target_amount"] = "Target amount must be at least 1"
	}
	if g.CurrentCents < 0 {
		errs["current_amount"] = "Current amount cannot be negative"
	}
	if g.Deadline.IsZero() {
		errs["deadline"] = "Please add a deadline"
	}
	if !util.InSet(g.Category, models.GoalCategories) {
		errs["category"] = "Please add a valid category"
	}
	switch g.Priority {
	case models.PriorityHigh, models.PriorityMedium, models.PriorityLow:
	default:
		errs["priority"] = "Priority must be High, Medium or Low"
	}
	if len(g.Notes) > 500 {
		errs["notes"] = "Notes cannot be more than 500 characters"
	}
	return errs
}

// List returns one page of the caller's goals.
// GET /api/goals?page&limit&category&priority&sortBy&sortOrder
func (h *GoalHandler) List(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	q := parseListQuery(c).Normalize(h.Defaults, h.MaxLimit)
	filter := store.GoalFilter{
		Category: c.Query("category"),
		Priority: models.GoalPriority(c.Query("priority")),
	}

	items, total, err := h.Store.List(c.Request.Context(), user.ID, filter, q)
	if err != nil {
		h.Log.WithError(err).Error("list goals")
		util.Error(c, http.StatusInternalServerError, "Server error")
		return
	}

	resp := make([]goalResp, 0, len(items))
	for i := range items {
		resp = append(resp, toGoalResp(&items[i]))
	}

	util.Success(c, http.StatusOK, util.Response{
		"count":      len(resp),
		"total":      total,
		"data":       resp,
		"pagination": pagination(q, total),
	})
}

// Get returns a single goal after the ownership check.
// GET /api/goals/:id
func (h *GoalHandler) Get(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	g, err := h.Store.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			util.Error(c, http.StatusNotFound, "Goal not found")
		} else {
			h.Log.WithError(err).Error("get goal")
			util.Error(c, http.StatusInternalServerError, "Server error")
		}
		return
	}
	if g.UserID != user.ID {
		util.Error(c, http.StatusForbidden, "Not authorized to access this goal")
		return
	}

	util.Success(c, http.StatusOK, util.Response{
		"data": toGoalResp(g),
	})
}

// Create validates and persists a new goal for the caller.
// POST /api/goals
func (h *GoalHandler) Create(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	var req createGoalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Please provide title, target amount, deadline and category")
		return
	}

	errs := map[string]string{}
	targetCents, err := util.ParseAmount(req.TargetAmount)
	if err != nil {
		errs["target_amount"] = "Please add a valid target amount"
	}

	var currentCents int64
	if req.CurrentAmount != "" {
		currentCents, err = util.ParseAmount(req.CurrentAmount)
		if err != nil {
			errs["current_amount"] = "Please add a valid current amount"
		}
	}

	var deadline time.Time
	deadline, err = util.ParseDate(req.Deadline)
	if err != nil {
		errs["deadline"] = "Please add a valid deadline"
	}

	priority := models.GoalPriority(req.Priority)
	if req.Priority == "" {
		priority = models.PriorityMedium
	}

	g := models.Goal{
		UserID:       user.ID,
		Title:        strings.TrimSpace(req.Title),
		TargetCents:  targetCents,
		CurrentCents: currentCents,
		Deadline:     deadline,
		Category:     strings.TrimSpace(req.Category),
		Priority:     priority,
		Notes:        strings.TrimSpace(req.Notes),
	}
	for field, msg := range validateGoal(&g) {
		if _, seen := errs[field]; !seen {
			errs[field] = msg
		}
	}
	if len(errs) > 0 {
		util.Invalid(c, errs)
		return
	}

	if err := h.Store.Create(c.Request.Context(), &g); err != nil {
		h.Log.WithError(err).Error("create goal")
		util.Error(c, http.StatusInternalServerError, "Server error")
		return
	}

	util.Success(c, http.StatusCreated, util.Response{
		"data": toGoalResp(&g),
	})
}

// Update applies a partial update after the ownership check; the write
// is owner-scoped and reports NotFound if the record vanished.
// PUT /api/goals/:id
func (h *GoalHandler) Update(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req updateGoalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	g, err := h.Store.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			util.Error(c, http.StatusNotFound, "Goal not found")
		} else {
			h.Log.WithError(err).Error("get goal")
			util.Error(c, http.StatusInternalServerError, "Server error")
		}
		return
	}
	if g.UserID != user.ID {
		util.Error(c, http.StatusForbidden, "Not authorized to update this goal")
		return
	}

	errs := map[string]string{}
	if req.Title != nil {
		g.Title = strings.TrimSpace(*req.Title)
	}
	if req.TargetAmount != nil {
		cents, err := util.ParseAmount(*req.TargetAmount)
		if err != nil {
			errs["target_amount"] = "Please add a valid target amount"
		} else {
			g.TargetCents = cents
		}
	}
	if req.CurrentAmount != nil {
		cents, err := util.ParseAmount(*req.CurrentAmount)
		if err != nil {
			errs["current_amount"] = "Please add a valid current amount"
		} else {
			g.CurrentCents = cents
		}
	}
	if req.Deadline != nil {
		deadline, err := util.ParseDate(*req.Deadline)
		if err != nil {
			errs["deadline"] = "Please add a valid deadline"
		} else {
			g.Deadline = deadline
		}
	}
	if req.Category != nil {
		g.Category = strings.TrimSpace(*req.Category)
	}
	if req.Priority != nil {
		g.Priority = models.GoalPriority(*req.Priority)
	}
	if req.Notes != nil {
		g.Notes = strings.TrimSpace(*req.Notes)
	}
	for field, msg := range validateGoal(g) {
		if _, seen := errs[field]; !seen {
			errs[field] = msg
		}
	}
	if len(errs) > 0 {
		util.Invalid(c, errs)
		return
	}

	if err := h.Store.Update(c.Request.Context(), g); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			util.Error(c, http.StatusNotFound, "Goal not found")
		} else {
			h.Log.WithError(err).Error("update goal")
			util.Error(c, http.StatusInternalServerError, "Server error")
		}
		return
	}

	util.Success(c, http.StatusOK, util.Response{
		"data": toGoalResp(g),
	})
}

// Delete removes a goal after the ownership check.
// DELETE /api/goals/:id
func (h *GoalHandler) Delete(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	g, err := h.Store.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			util.Error(c, http.StatusNotFound, "Goal not found")
		} else {
			h.Log.WithError(err).Error("get goal")
			util.Error(c, http.StatusInternalServerError, "Server error")
		}
		return
	}
	if g.UserID != user.ID {
		util.Error(c, http.StatusForbidden, "Not authorized to delete this goal")
		return
	}

	if err := h.Store.Delete(c.Request.Context(), user.ID, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			util.Error(c, http.StatusNotFound, "Goal not found")
		} else {
			h.Log.WithError(err).Error("delete goal")
			util.Error(c, http.StatusInternalServerError, "Server error")
		}
		return
	}

	util.Success(c, http.StatusOK, util.Response{
		"data": gin.H{},
	})
}

// Stats aggregates all goals of the caller.
// GET /api/goals/stats
func (h *GoalHandler) Stats(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	st, err := h.Store.Stats(c.Request.Context(), user.ID)
	if err != nil {
		h.Log.WithError(err).Error("goal stats")
		util.Error(c, http.StatusInternalServerError, "Server error")
		return
	}

	util.Success(c, http.StatusOK, util.Response{
		"data": gin.H{
			"total_goals":          st.TotalGoals,
			"total_target_amount":  util.FormatCents(st.TargetCents),
			"total_target_cents":   st.TargetCents,
			"total_current_amount": util.FormatCents(st.CurrentCents),
			"total_current_cents":  st.CurrentCents,
			"avg_completion":       st.AvgCompletion,
		},
	})
}
