package domain

import "time"

// FileMetadata describes the uploaded source file a session was created
// from. The stored path points into the uploads area and is needed to
// regenerate exports from the untouched source.
type FileMetadata struct {
	OriginalFilename string `json:"originalFilename"`
	OriginalFilePath string `json:"originalFilePath"`
	SheetName        string `json:"sheetName"`
}

// Session is the aggregate root for one user's review session. Exactly one
// session exists per user id. OriginalEmployees is the immutable snapshot
// taken at creation; CurrentEmployees is the working copy mutations apply
// to. Both collections hold the same employee id set for the life of the
// session: employees are never added or removed mid-session, only mutated.
type Session struct {
	UserID            string       `json:"userID"`
	SessionID         string       `json:"sessionID"`
	CreatedAt         time.Time    `json:"createdAt"`
	UpdatedAt         time.Time    `json:"updatedAt"`
	FileMetadata      FileMetadata `json:"fileMetadata"`
	OriginalEmployees []Employee   `json:"originalEmployees"`
	CurrentEmployees  []Employee   `json:"currentEmployees"`
	Events            EventLedger  `json:"-"`
	// ExportDisabled is runtime-only and never persisted. It is set during
	// restore when the stored source file no longer exists: the session
	// stays mutable but export is off.
	ExportDisabled bool `json:"-"`
}

// Clone returns a deep copy of the session.
func (s *Session) Clone() *Session {
	c := *s
	c.OriginalEmployees = make([]Employee, len(s.OriginalEmployees))
	for i, e := range s.OriginalEmployees {
		c.OriginalEmployees[i] = e.Clone()
	}
	c.CurrentEmployees = make([]Employee, len(s.CurrentEmployees))
	for i, e := range s.CurrentEmployees {
		c.CurrentEmployees[i] = e.Clone()
	}
	c.Events = s.Events.Clone()
	return &c
}

// CurrentEmployee returns a pointer into CurrentEmployees for the given id,
// or nil if the id is not part of the session.
func (s *Session) CurrentEmployee(employeeID int64) *Employee {
	for i := range s.CurrentEmployees {
		if s.CurrentEmployees[i].EmployeeID == employeeID {
			return &s.CurrentEmployees[i]
		}
	}
	return nil
}

// OriginalEmployee returns the baseline snapshot for the given id, or nil.
func (s *Session) OriginalEmployee(employeeID int64) *Employee {
	for i := range s.OriginalEmployees {
		if s.OriginalEmployees[i].EmployeeID == employeeID {
			return &s.OriginalEmployees[i]
		}
	}
	return nil
}
