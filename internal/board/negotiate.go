package board

import "math"

// negotiationFloorRatio is the lowest fraction of the listed rate the broker
// will settle at.
const negotiationFloorRatio = 0.90

// negotiationCeilingRatio is the highest fraction of the listed rate the
// broker will accept before countering.
const negotiationCeilingRatio = 1.11

// NegotiationResult reports the outcome of evaluating one counter-offer.
type NegotiationResult struct {
	Accepted   bool
	FinalOffer float64
}

// Negotiate applies the two-sided acceptance rule to a listed rate and a
// carrier counter-offer. Counter-offers at or below the ceiling are accepted,
// clamped up to the floor; anything above the ceiling is rejected with a
// midpoint counter capped at the ceiling. The function is pure: round counts
// and history are the caller's concern.
//
// Inputs must be positive; the HTTP validation layer enforces that before
// this function is reached.
func Negotiate(listedRate, counterOffer float64) NegotiationResult {
	floor := negotiationFloorRatio * listedRate
	ceiling := negotiationCeilingRatio * listedRate

	if counterOffer <= ceiling {
		return NegotiationResult{
			Accepted:   true,
			FinalOffer: roundCents(math.Max(floor, counterOffer)),
		}
	}
	midpoint := (listedRate + counterOffer) / 2
	return NegotiationResult{
		Accepted:   false,
		FinalOffer: roundCents(math.Min(ceiling, midpoint)),
	}
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
