package ynab

// The API expresses every monetary value in milliunits: one thousandth of
// the budget's currency unit, so $12.34 travels as 12340. All exported
// types in this package carry decimal amounts instead and convert at the
// wire boundary.

// FromMilliunits converts a milliunit amount to a decimal currency amount.
func FromMilliunits(m int64) float64 {
	return float64(m) / 1000
}

// ToMilliunits converts a decimal currency amount to milliunits. The
// fractional remainder beyond a tenth of a cent is truncated toward zero,
// not rounded, matching how writes have always been encoded.
func ToMilliunits(amount float64) int64 {
	return int64(amount * 1000)
}
