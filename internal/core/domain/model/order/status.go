package order

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery order.
// It is the closed canonical enumeration used internally; raw strings
// received from upstream systems are resolved to a Status through
// NormalizeStatus before any transition logic runs.
//
// The transition rules themselves live in transitions.go as an explicit
// directed graph rather than conditionals, so the rule set is data that
// can be inspected and tested as a whole.
//
// Forward chain:
//
//	Pending -> Confirmed -> Preparing -> SearchingRider -> RiderAssigned
//	  -> OnWayToPickup -> ReachedPickup -> PickedUp -> OutForDelivery
//	  -> ReachedDelivery -> Delivered
//
// Every transient state up to and including OutForDelivery also has a
// side exit to Cancelled. Cancelled and Failed each have a single edge
// to Refunded. Delivered and Refunded are terminal. Failed has no
// inbound edge here; it is written by the payment collaborator and
// only leaves via Refunded.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	Pending

	// Confirmed indicates the restaurant accepted the order.
	Confirmed

	// Preparing indicates the order is being prepared.
	Preparing

	// SearchingRider indicates the platform is looking for a rider.
	SearchingRider

	// RiderAssigned indicates a rider accepted the delivery.
	RiderAssigned

	// OnWayToPickup indicates the rider is heading to the pickup point.
	OnWayToPickup

	// ReachedPickup indicates the rider arrived at the pickup point.
	ReachedPickup

	// PickedUp indicates the rider collected the order.
	PickedUp

	// OutForDelivery indicates the rider is heading to the customer.
	OutForDelivery

	// ReachedDelivery indicates the rider arrived at the drop-off point.
	ReachedDelivery

	// Delivered indicates the order reached the customer.
	// This is a terminal state with no further transitions allowed.
	Delivered

	// Cancelled indicates the order was cancelled before delivery.
	// A cancelled order may still be refunded.
	Cancelled

	// Failed indicates payment or fulfillment failed upstream.
	// The state machine never produces Failed itself; it arrives from
	// persistence after an upstream collaborator writes it.
	Failed

	// Refunded indicates the customer got their money back.
	// This is a terminal state with no further transitions allowed.
	Refunded
)

// getStatusStrings returns a map of Status values to their canonical
// lowercase names. All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "unknown",
		Pending:         "pending",
		Confirmed:       "confirmed",
		Preparing:       "preparing",
		SearchingRider:  "searching_rider",
		RiderAssigned:   "rider_assigned",
		OnWayToPickup:   "on_way_to_pickup",
		ReachedPickup:   "reached_pickup",
		PickedUp:        "picked_up",
		OutForDelivery:  "out_for_delivery",
		ReachedDelivery: "reached_delivery",
		Delivered:       "delivered",
		Cancelled:       "cancelled",
		Failed:          "failed",
		Refunded:        "refunded",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and lookup.
func getValidStatusStrings() map[Status]string {
	m := getStatusStrings()
	delete(m, Unknown)
	return m
}

// getStatusAliases returns the static alias table mapping non-canonical
// vocabulary used by upstream systems (legacy backend, delivery partners,
// courier webhooks) to canonical statuses. The table is configuration
// data fixed at compile time and never mutated at runtime.
func getStatusAliases() map[string]Status {
	return map[string]Status{
		"processing":  Preparing,
		"pickup_done": PickedUp,
		"canceled":    Cancelled,
		"handover":    ReachedPickup,
		"accepted":    Confirmed,
		"created":     Pending,
	}
}

// NormalizeStatus resolves a raw status string to its canonical Status.
// The input is trimmed and lowercased, then matched against canonical
// names first and the alias table second.
//
// Returns:
//   - (status, true) when the input resolves to a canonical status
//   - (Unknown, false) when the input is not recognized
//
// Unrecognized input is not an error here: callers that need to reject
// it decide how, which keeps NormalizeStatus usable as a cheap guard at
// system boundaries.
//
// Example:
//
//	status, ok := order.NormalizeStatus("Accepted")
//	// status == order.Confirmed, ok == true
func NormalizeStatus(raw string) (Status, bool) {
	name := strings.ToLower(strings.TrimSpace(raw))

	for status, canonical := range getValidStatusStrings() {
		if canonical == name {
			return status, true
		}
	}

	if status, ok := getStatusAliases()[name]; ok {
		return status, true
	}

	return Unknown, false
}

// Validate checks if the Status value is valid.
//
// Valid statuses are the fourteen canonical lifecycle states.
// Unknown (0) and any other values are invalid.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the canonical lowercase name of the status.
//
// Returns:
//   - the canonical name (e.g. "out_for_delivery") for valid statuses
//   - "unknown" for invalid status values
//
// The canonical name round-trips through NormalizeStatus and is the
// representation stored in persistence and exposed over the API.
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
