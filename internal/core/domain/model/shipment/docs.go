// Package shipment contains the Shipment aggregate root: the package lifecycle
// state machine, the append-only tracking timeline, and the service tier and
// priority attributes.
//
// The aggregate enforces the core invariants of the domain:
//   - status changes only through the closed transition table in Status
//   - terminal statuses (delivered, returned, cancelled) permit no further transitions
//   - the timeline is ordered by timestamp ascending, and its newest event
//     always carries the current status
//   - repeating the current status is an idempotent no-op, so duplicate
//     webhook-style calls are harmless
//
// The package deliberately knows nothing about storage or transport; the
// aggregate receives and returns plain domain values, and repositories
// reconstruct it via RestoreShipment.
package shipment
