// Package sim simulates a de-identified Medicare Advantage population split
// into intervention and control arms and reduces it to program-level KPIs.
//
// # Reading Guide
//
// Start with these three files to understand the pipeline:
//   - cohort.go: member synthesis and group assignment
//   - adherence.go: day-level coverage draws and the PDC adherence flag
//   - admission.go: hospitalization draws correlated with adherence
//
// The remaining stages are pure arithmetic:
//   - metrics.go: per-group KPIs (adherence rate, admissions per 1,000) and
//     the avoided-admissions cost impact
//   - export.go: the fixed JSON document the dashboard consumes
//
// # Reproducibility
//
// Every random draw comes from a named sub-stream of a PartitionedRNG
// (rng.go) derived from one master seed. Stages draw in a fixed order, so a
// (config, seed) pair pins down the entire record set and the output
// document byte for byte.
package sim
