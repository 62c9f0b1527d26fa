package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/ninebox-labs/talent_review_app/internal/apperrors"
	"github.com/ninebox-labs/talent_review_app/internal/core/domain"
	"github.com/ninebox-labs/talent_review_app/internal/models"
)

// ToSessionModel converts an in-memory session into its persisted record.
// Enumerated fields serialize to their stable string tags and timestamps are
// normalized to UTC, so the encoding does not depend on the writing
// process's locale or library version. Fails with a serialization error when
// an event references an employee missing from either collection; that
// breaks the session invariant and is treated as fatal for the record.
func ToSessionModel(s domain.Session) (models.ReviewSession, error) {
	events := s.Events.Active()
	if err := checkEventReferences(s, events); err != nil {
		return models.ReviewSession{}, err
	}

	originals, err := json.Marshal(s.OriginalEmployees)
	if err != nil {
		return models.ReviewSession{}, apperrors.NewSerializationError("failed to encode original employees", err)
	}
	currents, err := json.Marshal(s.CurrentEmployees)
	if err != nil {
		return models.ReviewSession{}, apperrors.NewSerializationError("failed to encode current employees", err)
	}
	eventBlob, err := json.Marshal(events)
	if err != nil {
		return models.ReviewSession{}, apperrors.NewSerializationError("failed to encode events", err)
	}

	return models.ReviewSession{
		UserID:            s.UserID,
		SessionID:         s.SessionID,
		OriginalFilename:  s.FileMetadata.OriginalFilename,
		OriginalFilePath:  s.FileMetadata.OriginalFilePath,
		SheetName:         s.FileMetadata.SheetName,
		CreatedAt:         s.CreatedAt.UTC(),
		UpdatedAt:         s.UpdatedAt.UTC(),
		OriginalEmployees: originals,
		CurrentEmployees:  currents,
		Events:            eventBlob,
	}, nil
}

// ToSessionDomain rebuilds a session from its persisted record. Derived
// state (ModifiedInSession) is recomputed from the restored ledger rather
// than trusted from the blob.
func ToSessionDomain(rec models.ReviewSession) (*domain.Session, error) {
	var originals []domain.Employee
	if err := json.Unmarshal(rec.OriginalEmployees, &originals); err != nil {
		return nil, apperrors.NewSerializationError("failed to decode original employees for user "+rec.UserID, err)
	}
	var currents []domain.Employee
	if err := json.Unmarshal(rec.CurrentEmployees, &currents); err != nil {
		return nil, apperrors.NewSerializationError("failed to decode current employees for user "+rec.UserID, err)
	}
	var events []domain.ReviewEvent
	if err := json.Unmarshal(rec.Events, &events); err != nil {
		return nil, apperrors.NewSerializationError("failed to decode events for user "+rec.UserID, err)
	}

	s := &domain.Session{
		UserID:    rec.UserID,
		SessionID: rec.SessionID,
		CreatedAt: rec.CreatedAt.UTC(),
		UpdatedAt: rec.UpdatedAt.UTC(),
		FileMetadata: domain.FileMetadata{
			OriginalFilename: rec.OriginalFilename,
			OriginalFilePath: rec.OriginalFilePath,
			SheetName:        rec.SheetName,
		},
		OriginalEmployees: originals,
		CurrentEmployees:  currents,
		Events:            domain.NewEventLedger(events),
	}

	if err := checkEventReferences(*s, events); err != nil {
		return nil, err
	}

	for i := range s.CurrentEmployees {
		s.CurrentEmployees[i].ModifiedInSession = s.Events.HasEventsFor(s.CurrentEmployees[i].EmployeeID)
	}
	return s, nil
}

// checkEventReferences verifies that every event targets an employee present
// in both the original and current collections.
func checkEventReferences(s domain.Session, events []domain.ReviewEvent) error {
	for _, evt := range events {
		if s.OriginalEmployee(evt.EmployeeID) == nil || s.CurrentEmployee(evt.EmployeeID) == nil {
			return apperrors.NewSerializationError(
				fmt.Sprintf("event %s references unknown employee %d in session for user %s", evt.Kind, evt.EmployeeID, s.UserID),
				nil,
			)
		}
	}
	return nil
}
