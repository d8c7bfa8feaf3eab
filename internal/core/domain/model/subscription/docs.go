// Package subscription provides the read model for customer subscriptions and
// the delivery frequency arithmetic the schedule generator depends on.
//
// Subscriptions are owned by an external collaborator; this engine only reads
// them to derive due delivery dates over a horizon. Frequency.IsDueOn is the
// single source of truth for the due-date rules, including the month-end clamp
// for Monthly subscriptions.
package subscription
