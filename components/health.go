package components

import "github.com/yohamta/donburi"

// HealthData may go negative; death is decided on the first crossing to zero or below.
type HealthData struct {
	Current int
	Max     int
}

// Heal adds amount, never exceeding Max.
func (h *HealthData) Heal(amount int) {
	h.Current += amount
	if h.Current > h.Max {
		h.Current = h.Max
	}
}

// Dead reports whether health has reached zero or below.
func (h *HealthData) Dead() bool {
	return h.Current <= 0
}

var Health = donburi.NewComponentType[HealthData]()
