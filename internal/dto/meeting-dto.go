package dto

import "time"

type MeetingCreateRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	MeetingDate *time.Time `json:"meeting_date,omitempty"`
}

type MeetingUpdateRequest struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	MeetingDate *time.Time `json:"meeting_date,omitempty"`
	MeetingLink *string    `json:"meeting_link,omitempty"`
	Status      *string    `json:"status,omitempty"`
}
