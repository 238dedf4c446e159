// Package services provides domain services that orchestrate business logic
// spanning multiple aggregates.
//
// The package includes:
//   - NotificationFanout: decides the recipients and channels of the
//     notifications produced by consolidation and delivery events
package services
