package dumpster

import "time"

type DumpsterDB struct {
	ID             int64
	Name           string
	Status         string
	CurrentOrderID *int64
	Address        *string
	Latitude       *float64
	Longitude      *float64
	LastAssignedAt *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type DumpsterModifyDB struct {
	ID     *int64
	Name   *string
	Status *string
}
