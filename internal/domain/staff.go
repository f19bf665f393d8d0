package domain

import "github.com/rheareserve/booking-service/pkg/types"

// Staff represents a person affiliated with a business who can be booked.
// The booking flow always resolves the staff row server-side from
// (business_id, staff_id); caller-provided pairs are never trusted.
type Staff struct {
	ID         int64
	BusinessID int64
	UserID     int64 // ID учетной записи сотрудника
	Name       string
}

// StaffAvailability represents one weekly working window of a staff member.
// Several rows may exist for the same staff/weekday; each row produces its
// own candidate blocks independently (rows are not merged).
type StaffAvailability struct {
	ID         int64
	StaffID    int64
	BusinessID int64
	Weekday    Weekday
	StartTime  types.TimeString
	EndTime    types.TimeString
	Available  bool
}

// IsUsable returns true if the row describes a valid working window
func (a *StaffAvailability) IsUsable() bool {
	return a.Available && a.StartTime.IsBefore(a.EndTime)
}
