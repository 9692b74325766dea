package model

import "time"

// TableState describes occupancy of a dining table.
type TableState string

const (
	TableStateFree     TableState = "Free"
	TableStateOccupied TableState = "Occupied"
	TableStateReserved TableState = "Reserved"
)

// Valid reports whether the state is one of the known occupancy states.
func (s TableState) Valid() bool {
	switch s {
	case TableStateFree, TableStateOccupied, TableStateReserved:
		return true
	}
	return false
}

// Table describes a physical seating unit.
type Table struct {
	ID        int64
	Number    int
	Capacity  int
	Location  string
	State     TableState
	CreatedAt time.Time
}

// Limits for table attributes.
const (
	MinTableNumber    = 1
	MaxTableNumber    = 999
	MinTableCapacity  = 1
	MaxTableCapacity  = 20
	MaxLocationLength = 50
)

// TablePatch carries a full-update request for a table.
type TablePatch struct {
	Number   int
	Capacity int
	Location string
	State    TableState
}

// TableStats aggregates table counts by occupancy state.
type TableStats struct {
	Total    int
	Free     int
	Occupied int
	Reserved int
}
