package domain

import "strings"

// Phase is the lifecycle state of a contest.
type Phase string

const (
	PhaseBefore   Phase = "before"
	PhaseCoding   Phase = "coding"
	PhaseFinished Phase = "finished"
	PhaseUnknown  Phase = "unknown"
)

// ParsePhase maps a platform phase string to a Phase, case-insensitively.
func ParsePhase(value string) Phase {
	switch strings.ToLower(value) {
	case "before":
		return PhaseBefore
	case "coding":
		return PhaseCoding
	case "finished":
		return PhaseFinished
	default:
		return PhaseUnknown
	}
}

func (p Phase) String() string {
	return string(p)
}
