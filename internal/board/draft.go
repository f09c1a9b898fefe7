package board

import (
	"fmt"
	"strings"
	"time"

	"taskboard/internal/service"
)

// Draft holds the unnormalized fields of a task being created: executor
// and target as raw comma-separated text, optional fields as empty
// strings rather than nulls.
type Draft struct {
	Title          string
	Priority       int
	Details        string
	Executor       string
	Target         string
	ExpectedResult string
	DueDate        string
	Category       string
}

// NewDraft returns a draft with the form's initial defaults.
func NewDraft() Draft {
	return Draft{Priority: 1, Category: "witness"}
}

// Blank reports whether the draft has no usable title. Blank drafts are
// never submitted.
func (d Draft) Blank() bool {
	return strings.TrimSpace(d.Title) == ""
}

// Build normalizes the draft into a task row: names split from the raw
// comma-separated text, empty optionals mapped to null, a synthesized id,
// status pending and no risks.
func (d Draft) Build(epochMillis int64) service.Task {
	return service.Task{
		ID:             fmt.Sprintf("custom-%d", epochMillis),
		Title:          d.Title,
		Priority:       d.Priority,
		Details:        optional(d.Details),
		Executor:       SplitNames(d.Executor),
		Target:         SplitNames(d.Target),
		ExpectedResult: optional(d.ExpectedResult),
		DueDate:        optional(d.DueDate),
		Category:       optional(d.Category),
		Risks:          nil,
		Status:         service.StatusPending,
	}
}

// SplitNames splits raw comma-separated text into a name list: split on
// ",", trim whitespace, drop empty segments, preserve order.
func SplitNames(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		name := strings.TrimSpace(part)
		if name != "" {
			out = append(out, name)
		}
	}
	return out
}

// optional maps empty text to null.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// nowMillis is stubbed in tests for deterministic ids.
var nowMillis = func() int64 {
	return time.Now().UnixMilli()
}
