package board

import "taskboard/internal/service"

// Recommendation messages. First matching rule wins.
const (
	RecommendUrgent  = "🔥 High priority urgent task! Recommend immediate execution and close follow-up."
	RecommendRisk    = "⚠️ This task has risks. Recommend creating contingency plan and careful execution."
	RecommendWitness = "💡 Recommend gentle communication, build trust, avoid pressure that could backfire."
	RecommendLegal   = "📋 Recommend consulting professional lawyer to ensure process compliance and effectiveness."
	RecommendDefault = "📌 Proceed as planned, report progress regularly."
)

// Recommend maps a task to its canned guidance string. The rules are
// ordered and the first match wins: a priority-1 task due on the first
// project date gets the urgent message even when it also carries risks.
func Recommend(t service.Task, firstDate string) string {
	if t.Priority == 1 && t.DueDate != nil && firstDate != "" && *t.DueDate == firstDate {
		return RecommendUrgent
	}
	if t.Risks != nil && *t.Risks != "" {
		return RecommendRisk
	}
	if t.Category != nil && *t.Category == "witness" {
		return RecommendWitness
	}
	if t.Category != nil && *t.Category == "legal" {
		return RecommendLegal
	}
	return RecommendDefault
}
