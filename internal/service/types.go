// Package service defines the backend-agnostic interface for the remote
// task store.
package service

// Task statuses.
const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
	StatusBlocked    = "blocked"
)

// Statuses lists the valid task statuses in selector order.
var Statuses = []string{StatusPending, StatusInProgress, StatusCompleted, StatusBlocked}

// ValidStatus reports whether s is one of the four task statuses.
func ValidStatus(s string) bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

// Categories lists the valid task categories.
var Categories = []string{
	"witness",
	"legal",
	"relationship",
	"petition",
	"highlevel",
	"negotiation",
	"pressure",
	"investigation",
}

// ValidCategory reports whether c is one of the task categories.
func ValidCategory(c string) bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

// Task represents a single task row.
// Optional fields are nil when the stored column is null.
type Task struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Priority       int      `json:"priority"` // 1..3, 1 is highest
	Details        *string  `json:"details"`
	Executor       []string `json:"executor"`
	Target         []string `json:"target"`
	ExpectedResult *string  `json:"expected_result"`
	DueDate        *string  `json:"due_date"`
	Category       *string  `json:"category"`
	Risks          *string  `json:"risks"`
	Status         string   `json:"status"`
}

// Person represents a person row. Name is the sole join key against
// Task.Executor/Target: plain case-sensitive string equality, no
// referential integrity.
type Person struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
