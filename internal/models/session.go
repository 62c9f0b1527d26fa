package models

import "time"

// ReviewSession is the persisted record for one session: one row per user
// id, scalar columns for every session attribute plus JSONB blobs for the
// employee collections and the event ledger. The blobs hold the JSON
// encodings produced by the mapping package; the repository never looks
// inside them.
type ReviewSession struct {
	UserID            string    `json:"userID" db:"user_id"`
	SessionID         string    `json:"sessionID" db:"session_id"`
	OriginalFilename  string    `json:"originalFilename" db:"original_filename"`
	OriginalFilePath  string    `json:"originalFilePath" db:"original_file_path"`
	SheetName         string    `json:"sheetName" db:"sheet_name"`
	CreatedAt         time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time `json:"updatedAt" db:"updated_at"`
	OriginalEmployees []byte    `json:"originalEmployees" db:"original_employees"`
	CurrentEmployees  []byte    `json:"currentEmployees" db:"current_employees"`
	Events            []byte    `json:"events" db:"events"`
}
