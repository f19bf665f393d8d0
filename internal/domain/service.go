package domain

// Service represents a bookable offering with a fixed duration.
// DurationMinutes is the canonical candidate-block length for this service.
type Service struct {
	ID              int64
	BusinessID      int64
	Name            string
	DurationMinutes int
	Price           float64
}
