// Package order provides domain entities and business logic for order lifecycle
// management in the fulfillment system. It owns the canonical status enumeration,
// the alias table for upstream status vocabularies, and the transition graph.
//
// The package includes:
//   - Status: the closed canonical enumeration of lifecycle states
//   - NormalizeStatus / CanTransition / Transition / NextStatuses /
//     IsTerminal / IsCancellable: the state machine operations over raw strings
//   - Order: the aggregate root carrying identity and current status
//   - StatusChange: the immutable audit record of one executed transition
//
// Key business rules:
//   - Raw status strings are resolved at the boundary; internal logic
//     operates only on canonical statuses
//   - Legal transitions form a directed graph: a single forward chain from
//     pending to delivered, cancellation exits up to out_for_delivery, and
//     refund edges from cancelled and failed
//   - Delivered and refunded are terminal; nothing leaves a terminal status
//   - The machine is stateless and side-effect free; callers persist results
//     and must serialize per-order read-modify-write cycles themselves
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
