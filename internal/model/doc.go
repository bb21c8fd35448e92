// Package model defines the core data structures shared across webrecon.
// It contains the target and result types produced by the probe pipeline
// and the aggregate report structures consumed by the report writers.
package model
