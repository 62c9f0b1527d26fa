package dto

import (
	"time"

	"github.com/ninebox-labs/talent_review_app/internal/core/domain"
)

// ImportedEmployee is one roster member as handed over by the import
// collaborator at session creation.
type ImportedEmployee struct {
	EmployeeID  int64    `json:"employeeID" binding:"required,gt=0"`
	Name        string   `json:"name" binding:"required"`
	Title       string   `json:"title"`
	Function    string   `json:"function"`
	Location    string   `json:"location"`
	Manager     string   `json:"manager"`
	Performance string   `json:"performance" binding:"required,reviewlevel"`
	Potential   string   `json:"potential" binding:"required,reviewlevel"`
	Flags       []string `json:"flags" binding:"omitempty,dive,flagkey"`
	Notes       string   `json:"notes"`
}

// SourceFileMetadata carries the display name and storage path of the
// uploaded source file.
type SourceFileMetadata struct {
	OriginalFilename string `json:"originalFilename" binding:"required"`
	// SourcePath is where the import collaborator parked the raw file.
	// When present it is copied into the uploads area; when absent the
	// session is created with export disabled.
	SourcePath string `json:"sourcePath"`
	SheetName  string `json:"sheetName"`
}

// CreateSessionRequest defines the payload for creating a session.
type CreateSessionRequest struct {
	Employees []ImportedEmployee `json:"employees" binding:"required,min=1,dive"`
	File      SourceFileMetadata `json:"file" binding:"required"`
}

// CreateSessionResponse returns the identifier of the freshly created
// session.
type CreateSessionResponse struct {
	SessionID string `json:"sessionID"`
}

// DeleteSessionResponse reports whether a session actually existed.
type DeleteSessionResponse struct {
	Deleted bool `json:"deleted"`
}

// SessionResponse is the full session view returned to the UI.
type SessionResponse struct {
	UserID           string             `json:"userID"`
	SessionID        string             `json:"sessionID"`
	CreatedAt        time.Time          `json:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt"`
	OriginalFilename string             `json:"originalFilename"`
	SheetName        string             `json:"sheetName"`
	ExportDisabled   bool               `json:"exportDisabled"`
	Employees        []EmployeeResponse `json:"employees"`
	Events           []EventResponse    `json:"events"`
}

// ToSessionResponse converts a domain session to its API representation.
// Only the current working copies of the employees are exposed; the
// original snapshot stays internal.
func ToSessionResponse(s *domain.Session) SessionResponse {
	employees := make([]EmployeeResponse, len(s.CurrentEmployees))
	for i, e := range s.CurrentEmployees {
		employees[i] = ToEmployeeResponse(&e)
	}
	return SessionResponse{
		UserID:           s.UserID,
		SessionID:        s.SessionID,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
		OriginalFilename: s.FileMetadata.OriginalFilename,
		SheetName:        s.FileMetadata.SheetName,
		ExportDisabled:   s.ExportDisabled,
		Employees:        employees,
		Events:           ToEventResponses(s.Events.Active()),
	}
}
