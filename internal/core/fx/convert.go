package fx

// ToDisplay converts a canonical EUR amount into the display currency whose
// EUR rate is given. A non-positive rate means the table is degenerate for
// that currency and the amount passes through unchanged.
func ToDisplay(amountEUR, rate float64) float64 {
	if rate <= 0 {
		return amountEUR
	}
	return amountEUR * rate
}

// ToEUR converts a display-currency amount back to canonical EUR. Guarded the
// same way as ToDisplay so a zero rate never divides.
func ToEUR(amount, rate float64) float64 {
	if rate <= 0 {
		return amount
	}
	return amount / rate
}
