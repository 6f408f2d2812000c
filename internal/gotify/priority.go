package gotify

import "strings"

// DefaultPriority is used when the envelope carries no recognized severity.
const DefaultPriority = 5

// PriorityFromSeverity maps an envelope severity to a Gotify priority.
// Matching is case-insensitive; unrecognized values fall back to
// DefaultPriority.
func PriorityFromSeverity(severity string) int {
	switch strings.ToLower(strings.TrimSpace(severity)) {
	case "low":
		return 2
	case "normal", "medium":
		return DefaultPriority
	case "high":
		return 8
	case "critical":
		return 10
	default:
		return DefaultPriority
	}
}
