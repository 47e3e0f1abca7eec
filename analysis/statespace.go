package analysis

import (
	"github.com/aethonholdings/aethon-arion-pipeline/analysis/record"
)

// StateSpace owns the ordered snapshot sequence of one simulation run and
// answers temporal and agent-level statistics over it.
//
// Construction never fails: a nil or empty snapshot sequence produces a
// valid analyzer with zero agents, and every query degrades to an
// empty/zero result instead of raising. The snapshots are frozen at
// construction; all queries are pure reads.
type StateSpace struct {
	snapshots  []record.Snapshot
	agentCount int
}

// NewStateSpace wraps a run's snapshot sequence. The agent count is fixed
// from the first snapshot's agent states (zero when the sequence is empty
// or the first snapshot carries none); later snapshots are assumed
// consistent and are not cross-checked.
func NewStateSpace(snapshots []record.Snapshot) *StateSpace {
	ss := &StateSpace{snapshots: snapshots}
	if len(snapshots) > 0 {
		ss.agentCount = len(snapshots[0].AgentStates)
	}
	return ss
}

// AgentCount returns the number of agents fixed at construction.
func (ss *StateSpace) AgentCount() int { return ss.agentCount }

// Length returns the number of ticks in the trajectory.
func (ss *StateSpace) Length() int { return len(ss.snapshots) }

// AgentStateProbabilities returns, per agent, the fraction of ticks spent
// in each named state. State indices outside [0, len(stateNames)) are
// dropped without raising, so a row may sum to less than 1 when invalid
// indices were observed. Cells are normalized by trajectory length, not by
// the count of valid observations. Returns a single empty row when there
// are no state names or no snapshots.
func (ss *StateSpace) AgentStateProbabilities(stateNames []string) [][]float64 {
	if len(stateNames) == 0 || len(ss.snapshots) == 0 {
		return [][]float64{{}}
	}
	probs := ZeroMatrix(ss.agentCount, len(stateNames))
	for _, snap := range ss.snapshots {
		for agent := 0; agent < ss.agentCount && agent < len(snap.AgentStates); agent++ {
			state := snap.AgentStates[agent]
			if state < 0 || state >= len(stateNames) {
				continue // out-of-range index: drop
			}
			probs[agent][state]++
		}
	}
	ticks := float64(len(ss.snapshots))
	for agent := range probs {
		for state := range probs[agent] {
			probs[agent][state] /= ticks
		}
	}
	return probs
}

// AgentStates transposes the snapshot-major data into one time series per
// agent. Raw indices pass through unfiltered, invalid or not.
func (ss *StateSpace) AgentStates() [][]int {
	series := ZeroIntMatrix(ss.agentCount, len(ss.snapshots))
	for tick, snap := range ss.snapshots {
		for agent := 0; agent < ss.agentCount && agent < len(snap.AgentStates); agent++ {
			series[agent][tick] = snap.AgentStates[agent]
		}
	}
	return series
}

// AgentStateAverage returns the arithmetic mean of each agent's raw state
// index over all ticks. Zero vector when the trajectory is empty.
func (ss *StateSpace) AgentStateAverage() []float64 {
	averages := ZeroVector(ss.agentCount)
	if len(ss.snapshots) == 0 {
		return averages
	}
	for _, snap := range ss.snapshots {
		for agent := 0; agent < ss.agentCount && agent < len(snap.AgentStates); agent++ {
			averages[agent] += float64(snap.AgentStates[agent])
		}
	}
	ticks := float64(len(ss.snapshots))
	for agent := range averages {
		averages[agent] /= ticks
	}
	return averages
}

// AgentStateCoordinationMatrix returns, for every agent pair, the fraction
// of ticks during which both agents held the same state index. Symmetric;
// the diagonal is 1 for any non-empty trajectory since an agent always
// matches itself. Zero matrix when the trajectory is empty — the early
// return guards the division by trajectory length.
func (ss *StateSpace) AgentStateCoordinationMatrix() [][]float64 {
	matrix := ZeroMatrix(ss.agentCount, ss.agentCount)
	if len(ss.snapshots) == 0 {
		return matrix
	}
	for _, snap := range ss.snapshots {
		for a := 0; a < ss.agentCount && a < len(snap.AgentStates); a++ {
			for b := a; b < ss.agentCount && b < len(snap.AgentStates); b++ {
				if snap.AgentStates[a] == snap.AgentStates[b] {
					matrix[a][b]++
					if a != b {
						matrix[b][a]++
					}
				}
			}
		}
	}
	ticks := float64(len(ss.snapshots))
	for a := range matrix {
		for b := range matrix[a] {
			matrix[a][b] /= ticks
		}
	}
	return matrix
}
