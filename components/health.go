package components

import "github.com/yohamta/donburi"

// HealthData is fractional: zone damage is applied in sub-point steps.
type HealthData struct {
	Current float64
	Max     float64
}

// Fraction returns Current/Max clamped to [0, 1].
func (h *HealthData) Fraction() float64 {
	if h.Max <= 0 || h.Current <= 0 {
		return 0
	}
	if h.Current >= h.Max {
		return 1
	}
	return h.Current / h.Max
}

var Health = donburi.NewComponentType[HealthData]()
