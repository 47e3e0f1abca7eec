// Package record holds the data contracts exchanged with the arion
// simulation engine. This package has no dependencies on analysis/ — it
// stores pure data types plus the batch-file reader.
package record

// Snapshot captures one clock tick's complete state for a single run.
// AgentStates holds one index per agent into an externally defined
// named-state enumeration; the analysis layer treats the indices as opaque
// small integers.
type Snapshot struct {
	ClockTick      int           `yaml:"clockTick" json:"clockTick"`
	Board          []float64     `yaml:"board" json:"board"`
	AgentStates    []int         `yaml:"agentStates" json:"agentStates"`
	Plant          []float64     `yaml:"plant" json:"plant"`
	Reporting      []float64     `yaml:"reporting" json:"reporting"`
	PriorityTensor [][][]float64 `yaml:"priorityTensor" json:"priorityTensor"`
}

// Result is the final-state record of one completed run.
// Performance is nil when the engine did not report a score; StateSpace is
// nil when the run was exported without its trajectory. Snapshot order in
// StateSpace is temporal order.
type Result struct {
	RunID          string        `yaml:"runId" json:"runId"`
	Board          []float64     `yaml:"board" json:"board"`
	AgentStates    []int         `yaml:"agentStates" json:"agentStates"`
	Plant          []float64     `yaml:"plant" json:"plant"`
	Reporting      []float64     `yaml:"reporting" json:"reporting"`
	PriorityTensor [][][]float64 `yaml:"priorityTensor" json:"priorityTensor"`
	Performance    *float64      `yaml:"performance" json:"performance"`
	StateSpace     []Snapshot    `yaml:"stateSpace" json:"stateSpace"`
}
