// Package kernel provides core domain primitives and utilities for the courier
// back-office. It implements fundamental building blocks following Domain-Driven
// Design principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Money: A fixed-point monetary value object with rounding applied only at the boundary
//   - Contact: A value object for the sender/recipient name, phone, and address triple
//   - Dimensions: A value object for package length, width, and height
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
//
// The package follows Domain-Driven Design best practices, providing rich domain
// behavior and encapsulation of implementation details.
package kernel
