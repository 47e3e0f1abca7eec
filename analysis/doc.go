// Package analysis provides the post-run statistics core of the arion
// pipeline.
//
// # Reading Guide
//
// Two analyzers, both built once from frozen data and queried repeatedly:
//   - statespace.go: StateSpace — temporal and agent-level statistics over
//     one run's snapshot trajectory
//   - resultset.go: ResultSet — quantized-state entropy and performance
//     statistics across a batch of runs
//
// Input data contracts live in analysis/record, a leaf package of plain
// types plus the YAML batch reader.
//
// Neither analyzer ever raises on malformed, missing, or boundary-case
// input; every such case degrades to a documented empty, zero, or nil
// result. Each guard is an explicit branch with its own test.
package analysis
