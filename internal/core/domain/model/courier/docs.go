// Package courier provides the Courier aggregate root for the back-office:
// courier identity and contact details, the availability status used by the
// assignment service, the vehicle descriptor, and rolling delivery stats.
//
// Key business rules:
//   - Couriers must have a valid unique identifier and contact details
//   - Only couriers that are not offline may be assigned shipments
//   - A courier never owns shipments; shipments hold a weak reference back,
//     and workload is derived by a reverse lookup at read time
//   - Delivery stats (total deliveries, rating, monthly earnings) are rolling
//     values updated as deliveries complete
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package courier
