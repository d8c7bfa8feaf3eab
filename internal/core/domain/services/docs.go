// Package services provides domain services that implement business logic
// spanning multiple domain entities in the delivery engine.
//
// The package includes:
//   - ScheduleCalendar: computes the due delivery dates a subscription implies
//     over a generation horizon
//
// Domain services are pure: persistence and transaction concerns stay in the
// application layer's command handlers.
package services
