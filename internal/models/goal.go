package models

import "time"

// GoalPriority is the urgency level of a savings goal.
type GoalPriority string

const (
	PriorityHigh   GoalPriority = "High"
	PriorityMedium GoalPriority = "Medium"
	PriorityLow    GoalPriority = "Low"
)

// GoalCategories is the fixed set of goal categories.
var GoalCategories = []string{
	"Savings", "Investment", "Purchase", "Debt", "Travel", "Education", "Other",
}

// Goal is a savings target owned by a single user. CurrentCents may
// exceed TargetCents; progress above 100% is a display concern.
type Goal struct {
	ID           uint         `gorm:"primaryKey"`
	UserID       uint         `gorm:"index:idx_goal_user_deadline;index:idx_goal_user_category;not null"`
	Title        string       `gorm:"size:100;not null"`
	TargetCents  int64        `gorm:"not null"`
	CurrentCents int64        `gorm:"not null;default:0"`
	Deadline     time.Time    `gorm:"index:idx_goal_user_deadline;not null"`
	Category     string       `gorm:"size:32;index:idx_goal_user_category;not null"`
	Priority     GoalPriority `gorm:"size:8;not null;default:Medium"`
	Notes        string       `gorm:"size:500"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
