// Package delivery provides the Delivery aggregate: the driver-side execution
// record of a consolidation run. It tracks the start/end lifecycle, the
// current driver position and the full trail of location pings.
//
// Key business rules:
//   - A delivery starts out assigned to a driver and a single consolidation
//   - A delivery can only be started once and only while it is assigned
//   - Location updates and completion are only accepted while in progress
package delivery
