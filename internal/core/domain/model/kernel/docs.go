// Package kernel contains shared value objects used across the domain model.
//
// It provides the UUID identifier wrapper used by all aggregates and the Actor
// value object that carries the authenticated caller's identity and role into
// every mutating operation. Both are immutable and must be created through
// their constructor functions; zero values fail validation.
package kernel
