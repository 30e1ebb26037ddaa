package domain

// UnitSystem selects how surface areas are rendered. It has no effect on
// stored values, which are always square meters.
type UnitSystem string

const (
	UnitMetric   UnitSystem = "metric"
	UnitImperial UnitSystem = "imperial"
)

// ParseUnitSystem validates a raw string against the closed unit-system set.
func ParseUnitSystem(raw string) (UnitSystem, bool) {
	switch UnitSystem(raw) {
	case UnitMetric:
		return UnitMetric, true
	case UnitImperial:
		return UnitImperial, true
	}
	return "", false
}
