package order

// getStatusGraph returns the full transition rule set as an adjacency map.
// Every legal transition is an edge in this graph; transition logic never
// compares statuses outside of it.
//
// Edge order is part of the contract: the forward-chain edge comes first,
// then the cancellation edge, then the refund edge. NextStatuses preserves
// this order.
//
// Structural invariants of the graph:
//   - every non-terminal status has at least one outgoing edge
//   - no edge points back to an earlier forward-chain status
//   - no self loops
//   - terminal statuses (Delivered, Refunded) have zero outgoing edges
func getStatusGraph() map[Status][]Status {
	return map[Status][]Status{
		Pending:         {Confirmed, Cancelled},
		Confirmed:       {Preparing, Cancelled},
		Preparing:       {SearchingRider, Cancelled},
		SearchingRider:  {RiderAssigned, Cancelled},
		RiderAssigned:   {OnWayToPickup, Cancelled},
		OnWayToPickup:   {ReachedPickup, Cancelled},
		ReachedPickup:   {PickedUp, Cancelled},
		PickedUp:        {OutForDelivery, Cancelled},
		OutForDelivery:  {ReachedDelivery, Cancelled},
		ReachedDelivery: {Delivered},
		Delivered:       {},
		Cancelled:       {Refunded},
		Failed:          {Refunded},
		Refunded:        {},
	}
}

// NextStatuses returns every status reachable from s in one legal
// transition, in declaration order: forward-chain edge first, then the
// cancellation edge, then the refund edge.
//
// Terminal and invalid statuses have no outgoing edges, so the result
// is empty for both.
func (s Status) NextStatuses() []Status {
	edges := getStatusGraph()[s]
	out := make([]Status, len(edges))
	copy(out, edges)
	return out
}

// CanTransitionTo reports whether the edge (s, to) exists in the
// transition graph. Self transitions, transitions out of terminal
// statuses, and transitions involving invalid statuses are all false.
func (s Status) CanTransitionTo(to Status) bool {
	for _, next := range getStatusGraph()[s] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status closes the order lifecycle.
// A status is terminal when it is valid and has no outgoing edges,
// which holds exactly for Delivered and Refunded. Cancelled and Failed
// are not terminal: both still permit a refund.
func (s Status) IsTerminal() bool {
	if s.Validate() != nil {
		return false
	}
	return len(getStatusGraph()[s]) == 0
}

// IsCancellable reports whether the status has an outgoing edge to
// Cancelled. Every transient status up to and including OutForDelivery
// is cancellable; ReachedDelivery and later are not.
func (s Status) IsCancellable() bool {
	return s.CanTransitionTo(Cancelled)
}

// CanTransition reports whether the transition described by two raw
// status strings is legal. Both strings are resolved via NormalizeStatus;
// if either is unrecognized the transition is never legal and the result
// is false.
//
// CanTransition deliberately never returns an error: it collapses unknown
// input and missing edges into false so callers can use it as a cheap
// guard without error handling.
func CanTransition(rawFrom, rawTo string) bool {
	from, ok := NormalizeStatus(rawFrom)
	if !ok {
		return false
	}

	to, ok := NormalizeStatus(rawTo)
	if !ok {
		return false
	}

	return from.CanTransitionTo(to)
}

// Transition validates and executes a status transition for the order
// identified by orderNumber. The number is used only for error reporting
// and traceability; this function holds no per-order state and performs
// no I/O.
//
// Returns:
//   - the canonical target status on success; the caller persists it
//   - *InvalidStatusError if either raw string fails to normalize
//   - *IllegalTransitionError if both normalize but no edge connects them
//
// Transition is pure given its inputs: calling it twice with the same
// arguments yields the same result or the same error both times.
//
// Example:
//
//	status, err := order.Transition(42, "accepted", "preparing")
//	// status == order.Preparing, err == nil
func Transition(orderNumber int64, rawFrom, rawTo string) (Status, error) {
	from, ok := NormalizeStatus(rawFrom)
	if !ok {
		return Unknown, NewInvalidStatusError(orderNumber, rawFrom)
	}

	to, ok := NormalizeStatus(rawTo)
	if !ok {
		return Unknown, NewInvalidStatusError(orderNumber, rawTo)
	}

	if !from.CanTransitionTo(to) {
		return Unknown, NewIllegalTransitionError(orderNumber, from, to)
	}

	return to, nil
}

// NextStatuses resolves a raw status string and returns its legal
// successor statuses in declaration order. Unrecognized input and
// terminal statuses both yield an empty sequence.
func NextStatuses(raw string) []Status {
	status, ok := NormalizeStatus(raw)
	if !ok {
		return []Status{}
	}
	return status.NextStatuses()
}

// IsTerminal resolves a raw status string and reports whether it is
// terminal. Unrecognized input is treated as "not terminal" rather than
// an error, matching upstream behavior.
func IsTerminal(raw string) bool {
	status, ok := NormalizeStatus(raw)
	return ok && status.IsTerminal()
}

// IsCancellable resolves a raw status string and reports whether a
// transition to Cancelled is legal from it. Unrecognized input is
// treated as "not cancellable" rather than an error.
func IsCancellable(raw string) bool {
	status, ok := NormalizeStatus(raw)
	return ok && status.IsCancellable()
}
