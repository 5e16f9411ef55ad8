// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the courier back-office. It implements
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - CourierAssignmentService: matches shipments to couriers and enforces
//     courier availability rules
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
