package types

import (
	ibctm "github.com/cosmos/ibc-go/v8/modules/light-clients/07-tendermint"
)

// Fraction represents a Tendermint trust threshold (e.g. 1/3). It is
// ibc-go's own 07-tendermint Fraction type, compared field-wise by the
// public-input validators.
type Fraction = ibctm.Fraction

// NewFraction builds a Fraction from its numerator and denominator.
func NewFraction(numerator, denominator uint64) Fraction {
	return Fraction{Numerator: numerator, Denominator: denominator}
}

// FractionEqual reports whether two trust-level fractions have identical
// numerator and denominator. The spec forbids cross-multiplication
// equivalence (e.g. 1/3 vs 2/6): both components must match exactly.
func FractionEqual(a, b Fraction) bool {
	return a.Numerator == b.Numerator && a.Denominator == b.Denominator
}
