package domain

// IntentType classifies what the shell user wants to do.
type IntentType int

const (
	IntentUnknown IntentType = iota
	IntentReport
	IntentMenu
	IntentTally          // payload: cuisine tag
	IntentServe          // payload: dish name
	IntentReleaseBelow   // payload: prep time threshold
	IntentReleaseCuisine // payload: cuisine tag
	IntentAdjust         // payload: dietary flags
	IntentHistory
	IntentHelp
	IntentQuit
)

// String returns a human-readable intent type.
func (i IntentType) String() string {
	switch i {
	case IntentReport:
		return "report"
	case IntentMenu:
		return "menu"
	case IntentTally:
		return "tally"
	case IntentServe:
		return "serve"
	case IntentReleaseBelow:
		return "release_below"
	case IntentReleaseCuisine:
		return "release_cuisine"
	case IntentAdjust:
		return "adjust"
	case IntentHistory:
		return "history"
	case IntentHelp:
		return "help"
	case IntentQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Intent represents a parsed user action.
type Intent struct {
	Type    IntentType
	Payload string // optional argument, e.g. dish name for serve
}
