package submit

import "fmt"

// Step is a position in the wizard.
type Step int

const (
	StepBasicInfo Step = iota
	StepPlatform
	StepMedia
	StepMarketplace
	StepReview
)

// StepCount is the number of wizard steps.
const StepCount = int(StepReview) + 1

var stepNames = [StepCount]string{"Basic Info", "Platform", "Media", "Marketplace", "Review"}

// String returns the step's display name.
func (s Step) String() string {
	if s < StepBasicInfo || s > StepReview {
		return fmt.Sprintf("Step(%d)", int(s))
	}
	return stepNames[s]
}

// StepNames lists the display names in order.
func StepNames() []string {
	return append([]string(nil), stepNames[:]...)
}

// Sequencer tracks the current step. The index never leaves
// [StepBasicInfo, StepReview] and no validation gates a move.
type Sequencer struct {
	current Step
}

// Current returns the active step.
func (s *Sequencer) Current() Step { return s.current }

// Advance moves one step forward. It reports false and does nothing at the
// review step, where finalizing replaces advancing.
func (s *Sequencer) Advance() bool {
	if s.current >= StepReview {
		return false
	}
	s.current++
	return true
}

// Retreat moves one step back. It reports false and does nothing at the
// first step.
func (s *Sequencer) Retreat() bool {
	if s.current <= StepBasicInfo {
		return false
	}
	s.current--
	return true
}

// AtReview reports whether the terminal step is active.
func (s *Sequencer) AtReview() bool { return s.current == StepReview }

// Reset returns to the first step.
func (s *Sequencer) Reset() { s.current = StepBasicInfo }

// Progress renders "Step 2 of 5: Platform".
func (s *Sequencer) Progress() string {
	return fmt.Sprintf("Step %d of %d: %s", int(s.current)+1, StepCount, s.current)
}
