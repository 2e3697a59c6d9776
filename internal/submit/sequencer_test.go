package submit

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequencer_Bounds(t *testing.T) {
	var s Sequencer
	assert.Equal(t, StepBasicInfo, s.Current())

	assert.False(t, s.Retreat(), "retreat at first step is a no-op")
	assert.Equal(t, StepBasicInfo, s.Current())

	for i := 0; i < 4; i++ {
		assert.True(t, s.Advance())
	}
	assert.Equal(t, StepReview, s.Current())
	assert.True(t, s.AtReview())

	assert.False(t, s.Advance(), "advance at review is a no-op")
	assert.Equal(t, StepReview, s.Current())
}

func TestSequencer_RandomWalkStaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	var s Sequencer
	for i := 0; i < 1000; i++ {
		if rng.Intn(2) == 0 {
			s.Advance()
		} else {
			s.Retreat()
		}
		cur := s.Current()
		if cur < StepBasicInfo || cur > StepReview {
			t.Fatalf("step %d out of range after %d moves", cur, i+1)
		}
	}
}

func TestSequencer_ResetAndProgress(t *testing.T) {
	var s Sequencer
	s.Advance()
	assert.Equal(t, "Step 2 of 5: Platform", s.Progress())

	s.Reset()
	assert.Equal(t, "Step 1 of 5: Basic Info", s.Progress())
}

func TestStepNames(t *testing.T) {
	assert.Equal(t, []string{"Basic Info", "Platform", "Media", "Marketplace", "Review"}, StepNames())
	assert.Equal(t, "Step(9)", Step(9).String())

	names := StepNames()
	names[0] = "changed"
	assert.Equal(t, "Basic Info", StepBasicInfo.String())
}
