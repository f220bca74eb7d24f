package entities

import "time"

type Dumpster struct {
	ID             int64
	Name           string
	Status         DumpsterStatusType
	CurrentOrderID *int64
	Address        *string
	Latitude       *float64
	Longitude      *float64
	LastAssignedAt *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type DumpsterStatusType string

const (
	DumpsterAvailable    DumpsterStatusType = "available"
	DumpsterInUse        DumpsterStatusType = "in_use"
	DumpsterMaintenance  DumpsterStatusType = "maintenance"
	DumpsterOutOfService DumpsterStatusType = "out_of_service"
)

func (s DumpsterStatusType) String() string {
	return string(s)
}

type DumpsterModify struct {
	ID     *int64
	Name   *string
	Status *DumpsterStatusType
}

// Coordinates is the geocoded position of an assigned dumpster.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// DumpsterAssignment is the result of coupling a dumpster to an order.
type DumpsterAssignment struct {
	DumpsterID   int64
	DumpsterName string
	OrderID      int64
	Address      string
	AssignedAt   time.Time
}

// DumpsterRelease is the result of decoupling a dumpster from an order.
type DumpsterRelease struct {
	DumpsterID   int64
	DumpsterName string
	OrderID      int64
	Status       string
}
