package dto

import (
	"github.com/ninebox-labs/talent_review_app/internal/core/domain"
)

// MoveEmployeeRequest defines the payload for a grid move.
type MoveEmployeeRequest struct {
	Performance string `json:"performance" binding:"required,reviewlevel"`
	Potential   string `json:"potential" binding:"required,reviewlevel"`
}

// MoveEmployeeDonutRequest defines the payload for a donut move.
type MoveEmployeeDonutRequest struct {
	DonutPosition int `json:"donutPosition" binding:"required,min=1,max=9"`
}

// UpdateFlagsRequest replaces an employee's flag set wholesale. An empty
// list clears every flag.
type UpdateFlagsRequest struct {
	Flags []string `json:"flags" binding:"omitempty,dive,flagkey"`
}

// UpdateEmployeeFieldsRequest defines the fields with no event semantics.
// Pointers distinguish omitted fields from zero values.
type UpdateEmployeeFieldsRequest struct {
	Notes *string `json:"notes"`
}

// EmployeeResponse is the API representation of one employee's current
// state.
type EmployeeResponse struct {
	EmployeeID        int64    `json:"employeeID"`
	Name              string   `json:"name"`
	Title             string   `json:"title"`
	Function          string   `json:"function"`
	Location          string   `json:"location"`
	Manager           string   `json:"manager"`
	Performance       string   `json:"performance"`
	Potential         string   `json:"potential"`
	GridPosition      int      `json:"gridPosition"`
	DonutPosition     int      `json:"donutPosition"`
	Flags             []string `json:"flags"`
	Notes             string   `json:"notes"`
	ModifiedInSession bool     `json:"modifiedInSession"`
}

// ToEmployeeResponse converts a domain employee to its API representation.
func ToEmployeeResponse(e *domain.Employee) EmployeeResponse {
	flags := e.Flags
	if flags == nil {
		flags = []string{}
	}
	return EmployeeResponse{
		EmployeeID:        e.EmployeeID,
		Name:              e.Name,
		Title:             e.Title,
		Function:          e.Function,
		Location:          e.Location,
		Manager:           e.Manager,
		Performance:       string(e.Performance),
		Potential:         string(e.Potential),
		GridPosition:      e.GridPosition,
		DonutPosition:     e.DonutPosition,
		Flags:             flags,
		Notes:             e.Notes,
		ModifiedInSession: e.ModifiedInSession,
	}
}
