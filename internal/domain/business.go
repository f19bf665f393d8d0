package domain

import "github.com/rheareserve/booking-service/pkg/types"

// Business represents a tenant offering services (a barbershop, a salon, ...)
type Business struct {
	ID   int64
	Name string
}

// BusinessHours represents the weekly opening window of a business for one
// weekday. At most one active row per weekday is expected; inactive rows are
// ignored by the availability engine.
type BusinessHours struct {
	ID         int64
	BusinessID int64
	Weekday    Weekday
	OpenTime   types.TimeString
	CloseTime  types.TimeString
	Active     bool
}

// IsUsable returns true if the row describes a valid open window
func (h *BusinessHours) IsUsable() bool {
	return h.Active && h.OpenTime.IsBefore(h.CloseTime)
}
