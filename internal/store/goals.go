package store

import (
	"context"
	"errors"
	"fmt"

	"finance-tracker/internal/models"

	"gorm.io/gorm"
)

// GoalFilter holds the optional exact-match list filters.
type GoalFilter struct {
	Category string
	Priority models.GoalPriority
}

var goalSortColumns = map[string]string{
	"deadline":      "deadline",
	"targetAmount":  "target_cents",
	"currentAmount": "current_cents",
	"title":         "title",
	"category":      "category",
	"priority":      "priority",
	"createdAt":     "created_at",
}

// Goals provides access to savings goals. All operations are scoped to
// a single owner.
type Goals struct {
	db *gorm.DB
}

func NewGoals(db *gorm.DB) *Goals {
	return &Goals{db: db}
}

// List returns one page of the owner's goals plus the total count under
// the same filter.
func (s *Goals) List(ctx context.Context, userID uint, f GoalFilter, q Query) ([]models.Goal, int64, error) {
	base := s.db.WithContext(ctx).Model(&models.Goal{}).Where("user_id = ?", userID)
	if f.Category != "" {
		base = base.Where("category = ?", f.Category)
	}
	if f.Priority != "" {
		base = base.Where("priority = ?", f.Priority)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count goals: %w", err)
	}

	var items []models.Goal
	err := base.Session(&gorm.Session{}).
		Order(q.OrderClause(goalSortColumns, "deadline")).
		Offset(q.Offset()).
		Limit(q.Limit).
		Find(&items).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list goals: %w", err)
	}
	return items, total, nil
}

// Get fetches a goal by id regardless of owner; the caller performs the
// ownership check.
func (s *Goals) Get(ctx context.Context, id uint) (*models.Goal, error) {
	var g models.Goal
	err := s.db.WithContext(ctx).First(&g, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get goal: %w", err)
	}
	return &g, nil
}

func (s *Goals) Create(ctx context.Context, g *models.Goal) error {
	if err := s.db.WithContext(ctx).Create(g).Error; err != nil {
		return fmt.Errorf("create goal: %w", err)
	}
	return nil
}

// Update writes the mutable fields of g, scoped to its owner. Zero rows
// affected is reported as ErrNotFound.
func (s *Goals) Update(ctx context.Context, g *models.Goal) error {
	res := s.db.WithContext(ctx).Model(&models.Goal{}).
		Where("id = ? AND user_id = ?", g.ID, g.UserID).
		Select("title", "target_cents", "current_cents", "deadline", "category", "priority", "notes").
		Updates(g)
	if res.Error != nil {
		return fmt.Errorf("update goal: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a goal, scoped to its owner.
func (s *Goals) Delete(ctx context.Context, userID, id uint) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Goal{})
	if res.Error != nil {
		return fmt.Errorf("delete goal: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// GoalStats aggregates all goals of one owner. AvgCompletion is the
// mean of each goal's current/target ratio, not the ratio of the sums.
type GoalStats struct {
	TotalGoals    int64
	TargetCents   int64
	CurrentCents  int64
	AvgCompletion float64
}

// Stats computes goal totals for the owner. Rows with a zero target are
// excluded from the completion average via NULLIF so they cannot divide
// by zero. No goals yields all-zero stats.
func (s *Goals) Stats(ctx context.Context, userID uint) (GoalStats, error) {
	var row struct {
		TotalGoals    int64
		TargetCents   int64
		CurrentCents  int64
		AvgCompletion float64
	}
	err := s.db.WithContext(ctx).Model(&models.Goal{}).
		Select(`COUNT(*) AS total_goals,
			COALESCE(SUM(target_cents), 0) AS target_cents,
			COALESCE(SUM(current_cents), 0) AS current_cents,
			COALESCE(AVG(CAST(current_cents AS REAL) / NULLIF(target_cents, 0)), 0) AS avg_completion`).
		Where("user_id = ?", userID).
		Scan(&row).Error
	if err != nil {
		return GoalStats{}, fmt.Errorf("goal stats: %w", err)
	}
	return GoalStats(row), nil
}
