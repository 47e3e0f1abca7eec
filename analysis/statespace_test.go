package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aethonholdings/aethon-arion-pipeline/analysis/record"
)

// ticks builds a snapshot sequence from per-tick agent state vectors.
func ticks(states ...[]int) []record.Snapshot {
	snapshots := make([]record.Snapshot, len(states))
	for i, s := range states {
		snapshots[i] = record.Snapshot{ClockTick: i, AgentStates: s}
	}
	return snapshots
}

func TestNewStateSpace_NilInput_ZeroAgents(t *testing.T) {
	// GIVEN no snapshot sequence at all
	ss := NewStateSpace(nil)

	// THEN construction succeeds with zero agents and zero length
	if ss.AgentCount() != 0 {
		t.Errorf("expected 0 agents, got %d", ss.AgentCount())
	}
	if ss.Length() != 0 {
		t.Errorf("expected 0 ticks, got %d", ss.Length())
	}
}

func TestNewStateSpace_EmptyInput_ZeroAgents(t *testing.T) {
	ss := NewStateSpace([]record.Snapshot{})
	assert.Equal(t, 0, ss.AgentCount())
}

func TestNewStateSpace_FirstSnapshotWithoutAgentStates_ZeroAgents(t *testing.T) {
	// GIVEN a first snapshot that carries board data but no agent states
	ss := NewStateSpace([]record.Snapshot{{Board: []float64{1, 2}}})

	// THEN the agent count stays zero rather than raising
	assert.Equal(t, 0, ss.AgentCount())
}

func TestNewStateSpace_AgentCountFromFirstSnapshot(t *testing.T) {
	ss := NewStateSpace(ticks([]int{0, 1, 2}))
	assert.Equal(t, 3, ss.AgentCount())
}

func TestAgentStateProbabilities_SingleTick_IdentityRows(t *testing.T) {
	// GIVEN one tick where each agent sits in its own state
	ss := NewStateSpace(ticks([]int{0, 1, 2}))

	// WHEN probabilities are computed over three named states
	probs := ss.AgentStateProbabilities([]string{"idle", "working", "reporting"})

	// THEN each agent's true state carries all the mass
	want := [][]float64{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
	assert.Equal(t, want, probs)
}

func TestAgentStateProbabilities_OutOfRangeIndexDropped(t *testing.T) {
	// GIVEN an agent whose state index exceeds the named-state range
	ss := NewStateSpace(ticks([]int{0, 5, 1}))

	// WHEN probabilities are computed over three named states
	probs := ss.AgentStateProbabilities([]string{"a", "b", "c"})

	// THEN no mass appears anywhere in the out-of-range agent's row
	assert.Equal(t, []float64{0, 0, 0}, probs[1])
	// AND the valid agents are unaffected
	assert.Equal(t, []float64{1, 0, 0}, probs[0])
	assert.Equal(t, []float64{0, 1, 0}, probs[2])
}

func TestAgentStateProbabilities_InvalidIndexRowSumsBelowOne(t *testing.T) {
	// GIVEN two ticks where agent 2's second state index 10 is invalid
	ss := NewStateSpace(ticks([]int{0, 0, 0}, []int{1, 1, 10}))

	// WHEN probabilities are computed over two named states
	probs := ss.AgentStateProbabilities([]string{"a", "b"})

	// THEN normalization is by tick count, not by valid observations
	assert.Equal(t, []float64{0.5, 0.5}, probs[0])
	assert.Equal(t, []float64{0.5, 0.5}, probs[1])
	assert.Equal(t, []float64{0.5, 0}, probs[2])
}

func TestAgentStateProbabilities_NegativeIndexDropped(t *testing.T) {
	ss := NewStateSpace(ticks([]int{-1, 0}))
	probs := ss.AgentStateProbabilities([]string{"a", "b"})
	assert.Equal(t, []float64{0, 0}, probs[0])
	assert.Equal(t, []float64{1, 0}, probs[1])
}

func TestAgentStateProbabilities_DegenerateShapes(t *testing.T) {
	degenerate := [][]float64{{}}

	// no state names
	ss := NewStateSpace(ticks([]int{0, 1}))
	assert.Equal(t, degenerate, ss.AgentStateProbabilities(nil))

	// no snapshots
	empty := NewStateSpace(nil)
	assert.Equal(t, degenerate, empty.AgentStateProbabilities([]string{"a"}))
}

func TestAgentStates_TransposesToAgentMajor(t *testing.T) {
	// GIVEN three ticks of two agents
	ss := NewStateSpace(ticks([]int{0, 3}, []int{1, 4}, []int{2, 5}))

	// WHEN the raw series are extracted
	series := ss.AgentStates()

	// THEN each agent gets its own time series, unfiltered
	assert.Equal(t, [][]int{{0, 1, 2}, {3, 4, 5}}, series)
}

func TestAgentStates_InvalidIndicesPassThrough(t *testing.T) {
	ss := NewStateSpace(ticks([]int{-1, 99}))
	assert.Equal(t, [][]int{{-1}, {99}}, ss.AgentStates())
}

func TestAgentStateAverage_MeansOverTicks(t *testing.T) {
	// GIVEN two ticks
	ss := NewStateSpace(ticks([]int{0, 1}, []int{2, 3}))

	// THEN each agent's average is the mean of its raw indices
	assert.Equal(t, []float64{1, 2}, ss.AgentStateAverage())
}

func TestAgentStateAverage_EmptyTrajectory_ZeroVector(t *testing.T) {
	ss := NewStateSpace(nil)
	assert.Equal(t, []float64{}, ss.AgentStateAverage())
}

func TestAgentStateCoordinationMatrix_PairwiseMatchFractions(t *testing.T) {
	// GIVEN two ticks where the agents agree on the first only
	ss := NewStateSpace(ticks([]int{0, 0}, []int{0, 1}))

	// WHEN the coordination matrix is computed
	matrix := ss.AgentStateCoordinationMatrix()

	// THEN the diagonal is 1 and the off-diagonal is the match fraction
	assert.Equal(t, 1.0, matrix[0][0])
	assert.Equal(t, 1.0, matrix[1][1])
	assert.Equal(t, 0.5, matrix[0][1])
	assert.Equal(t, 0.5, matrix[1][0])
}

func TestAgentStateCoordinationMatrix_SymmetricWithUnitDiagonal(t *testing.T) {
	ss := NewStateSpace(ticks([]int{0, 1, 0}, []int{2, 2, 2}, []int{1, 1, 0}))
	matrix := ss.AgentStateCoordinationMatrix()
	for a := range matrix {
		assert.Equal(t, 1.0, matrix[a][a], "diagonal must be 1")
		for b := range matrix[a] {
			assert.Equal(t, matrix[b][a], matrix[a][b], "matrix must be symmetric")
		}
	}
}

func TestAgentStateCoordinationMatrix_EmptyTrajectory_ZeroMatrix(t *testing.T) {
	// GIVEN an empty trajectory
	ss := NewStateSpace(nil)

	// THEN the division-by-zero guard yields an empty zero matrix
	assert.Equal(t, [][]float64{}, ss.AgentStateCoordinationMatrix())
}

func TestStateSpace_ShortLaterSnapshot_NoPanic(t *testing.T) {
	// GIVEN a later snapshot with fewer agent states than the first
	ss := NewStateSpace(ticks([]int{0, 1, 2}, []int{0}))

	// THEN every query degrades instead of panicking
	assert.NotPanics(t, func() {
		ss.AgentStateProbabilities([]string{"a", "b", "c"})
		ss.AgentStates()
		ss.AgentStateAverage()
		ss.AgentStateCoordinationMatrix()
	})

	// AND the missing observations simply count as zero
	assert.Equal(t, []float64{0, 0.5, 1}, ss.AgentStateAverage())
}
