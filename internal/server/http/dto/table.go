package dto

import "time"

// CreateTableRequest describes a new table payload.
type CreateTableRequest struct {
	Number   int    `json:"number"`
	Capacity int    `json:"capacity"`
	Location string `json:"location,omitempty"`
}

// UpdateTableRequest is a full table patch. Servers are only allowed to
// change the state; the rest is ignored for them.
type UpdateTableRequest struct {
	Number   int    `json:"number"`
	Capacity int    `json:"capacity"`
	Location string `json:"location,omitempty"`
	State    string `json:"state"`
}

// TableResponse is the public view of a table.
type TableResponse struct {
	ID        int64     `json:"id"`
	Number    int       `json:"number"`
	Capacity  int       `json:"capacity"`
	Location  string    `json:"location,omitempty"`
	State     string    `json:"state"`
	CreatedAt time.Time `json:"created_at"`
}

// TableStatsResponse aggregates table counts by state.
type TableStatsResponse struct {
	Total    int `json:"total"`
	Free     int `json:"free"`
	Occupied int `json:"occupied"`
	Reserved int `json:"reserved"`
}
