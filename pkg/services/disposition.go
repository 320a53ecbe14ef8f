package services

import (
	"lead-gateway/pkg/config"
	"lead-gateway/pkg/models"
)

// Disposition says what a flow should do with a side-effect outcome.
type Disposition int

const (
	Succeeded Disposition = iota
	// FailedIgnorable is logged and otherwise dropped.
	FailedIgnorable
	// FailedFatal fails the request.
	FailedFatal
)

func (d Disposition) String() string {
	switch d {
	case Succeeded:
		return "succeeded"
	case FailedIgnorable:
		return "failed_ignorable"
	case FailedFatal:
		return "failed_fatal"
	default:
		return "unknown"
	}
}

// Classify maps a notification outcome onto a disposition under policy.
// Only the strict policy turns a failed outcome into a fatal one.
func Classify(outcome models.Outcome, policy string) Disposition {
	if outcome.Success {
		return Succeeded
	}
	if policy == config.NotifyPolicyStrict {
		return FailedFatal
	}
	return FailedIgnorable
}
