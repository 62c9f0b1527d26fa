package dto

import (
	"time"

	"github.com/ninebox-labs/talent_review_app/internal/core/domain"
)

// EventResponse is the API representation of one active event, for the UI's
// "what changed" display. Kind-irrelevant fields are omitted.
type EventResponse struct {
	Kind          string    `json:"kind"`
	EmployeeID    int64     `json:"employeeID"`
	Performance   string    `json:"performance,omitempty"`
	Potential     string    `json:"potential,omitempty"`
	DonutPosition int       `json:"donutPosition,omitempty"`
	FlagKey       string    `json:"flagKey,omitempty"`
	RecordedAt    time.Time `json:"recordedAt"`
}

// ListEventsResponse wraps the active event list.
type ListEventsResponse struct {
	Events []EventResponse `json:"events"`
}

// ToEventResponse converts a domain event to its API representation.
func ToEventResponse(evt domain.ReviewEvent) EventResponse {
	return EventResponse{
		Kind:          string(evt.Kind),
		EmployeeID:    evt.EmployeeID,
		Performance:   string(evt.Performance),
		Potential:     string(evt.Potential),
		DonutPosition: evt.DonutPosition,
		FlagKey:       evt.FlagKey,
		RecordedAt:    evt.RecordedAt,
	}
}

// ToEventResponses converts a slice of domain events.
func ToEventResponses(events []domain.ReviewEvent) []EventResponse {
	out := make([]EventResponse, len(events))
	for i, evt := range events {
		out[i] = ToEventResponse(evt)
	}
	return out
}
