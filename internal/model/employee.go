package model

// Employee is a PTO-eligible team member.
type Employee struct {
	ID          string
	Name        string
	Team        string
	ManagerID   string
	AccrualDays float64 // Currently available PTO days
}
