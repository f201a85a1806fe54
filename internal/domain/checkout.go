package domain

// CheckoutState represents where a checkout attempt sits in the
// age-verification flow.
type CheckoutState string

const (
	// Idle - no checkout in progress
	CheckoutStateIdle CheckoutState = "IDLE"
	// Evaluating - checkout requested, cart being classified
	CheckoutStateEvaluating CheckoutState = "EVALUATING"
	// AwaitingVerification - cart holds restricted items, birth date required
	CheckoutStateAwaitingVerification CheckoutState = "AWAITING_VERIFICATION"
	// Approved - checkout may finalize with the captured snapshot
	CheckoutStateApproved CheckoutState = "APPROVED"
	// Rejected - verification failed; user may resubmit a date or cancel
	CheckoutStateRejected CheckoutState = "REJECTED"
	// Cancelled - user backed out; cart left untouched
	CheckoutStateCancelled CheckoutState = "CANCELLED"
)

// IsValid checks if the checkout state is valid
func (s CheckoutState) IsValid() bool {
	switch s {
	case CheckoutStateIdle,
		CheckoutStateEvaluating,
		CheckoutStateAwaitingVerification,
		CheckoutStateApproved,
		CheckoutStateRejected,
		CheckoutStateCancelled:
		return true
	default:
		return false
	}
}

// CanTransitionTo checks if a state transition is valid
func (s CheckoutState) CanTransitionTo(newState CheckoutState) bool {
	switch s {
	case CheckoutStateIdle:
		return newState == CheckoutStateEvaluating
	case CheckoutStateEvaluating:
		return newState == CheckoutStateApproved ||
			newState == CheckoutStateAwaitingVerification
	case CheckoutStateAwaitingVerification:
		return newState == CheckoutStateApproved ||
			newState == CheckoutStateRejected ||
			newState == CheckoutStateCancelled
	case CheckoutStateRejected:
		// Retry loops back through verification; cancel abandons.
		return newState == CheckoutStateAwaitingVerification ||
			newState == CheckoutStateApproved ||
			newState == CheckoutStateCancelled
	case CheckoutStateApproved, CheckoutStateCancelled:
		// Terminal until the gate is reset to Idle by the caller.
		return newState == CheckoutStateIdle
	default:
		return false
	}
}
