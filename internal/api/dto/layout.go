package dto

import "time"

type LayoutRecordResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ListLayoutsResponse struct {
	Layouts []LayoutRecordResponse `json:"layouts"`
}
