// Package metrics provides observers that summarize a run into single
// scalar values: energy drift, momentum drift, orbital extent. Metrics
// are attached to a simulator and sampled after every step.
package metrics
