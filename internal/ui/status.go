package ui

import "github.com/charmbracelet/lipgloss"

// Status icons
const (
	IconSuccess = "●"
	IconPending = "◐"
	IconFailure = "✗"
	IconNeutral = "○"
)

// Status pairs an icon with a styled label for rendering check and
// merge-readiness states.
type Status struct {
	Icon  string
	Label string
	Style lipgloss.Style
}

// Render returns the styled icon and label
func (s Status) Render() string {
	return s.Style.Render(s.Icon + " " + s.Label)
}

// CheckStatus returns a Status for a commit status state
func CheckStatus(state string) Status {
	switch state {
	case "success":
		return Status{Icon: IconSuccess, Label: "success", Style: StateSuccessStyle}
	case "pending":
		return Status{Icon: IconPending, Label: "pending", Style: StatePendingStyle}
	case "failure", "error":
		return Status{Icon: IconFailure, Label: state, Style: StateFailureStyle}
	default:
		return Status{Icon: IconNeutral, Label: state, Style: StateNeutralStyle}
	}
}

// MergeStateStatus returns a Status for a PR's mergeable state
func MergeStateStatus(state string) Status {
	switch state {
	case "clean":
		return Status{Icon: IconSuccess, Label: "clean", Style: StateSuccessStyle}
	case "unstable", "unknown":
		return Status{Icon: IconPending, Label: state, Style: StatePendingStyle}
	case "blocked", "dirty":
		return Status{Icon: IconFailure, Label: state, Style: StateFailureStyle}
	default:
		return Status{Icon: IconNeutral, Label: state, Style: StateNeutralStyle}
	}
}
