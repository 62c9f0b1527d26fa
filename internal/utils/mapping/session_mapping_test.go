package mapping_test

import (
	"testing"
	"time"

	"github.com/ninebox-labs/talent_review_app/internal/apperrors"
	"github.com/ninebox-labs/talent_review_app/internal/core/domain"
	"github.com/ninebox-labs/talent_review_app/internal/utils/mapping"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSession() domain.Session {
	alice := domain.Employee{
		EmployeeID:    1,
		Name:          "Alice Chen",
		Title:         "Staff Engineer",
		Function:      "Engineering",
		Location:      "Berlin",
		Manager:       "Dana Reyes",
		Performance:   domain.LevelHigh,
		Potential:     domain.LevelMedium,
		GridPosition:  domain.GridPositionFor(domain.LevelHigh, domain.LevelMedium),
		DonutPosition: domain.DonutCenter,
		Flags:         []string{"key_talent"},
		Notes:         "strong quarter",
	}
	bob := domain.Employee{
		EmployeeID:    2,
		Name:          "Bob Okafor",
		Performance:   domain.LevelLow,
		Potential:     domain.LevelLow,
		GridPosition:  domain.GridPositionFor(domain.LevelLow, domain.LevelLow),
		DonutPosition: domain.DonutCenter,
		Flags:         []string{},
	}

	current := []domain.Employee{alice.Clone(), bob.Clone()}
	current[1].Performance = domain.LevelMedium
	current[1].Potential = domain.LevelHigh
	current[1].GridPosition = domain.GridPositionFor(domain.LevelMedium, domain.LevelHigh)
	current[1].ModifiedInSession = true

	ledger := domain.NewEventLedger(nil)
	ledger.Track(domain.NewGridMoveEvent(2, domain.LevelMedium, domain.LevelHigh), bob)

	created := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	return domain.Session{
		UserID:    "reviewer-7",
		SessionID: "a2b9c1d4-0000-4000-8000-000000000001",
		CreatedAt: created,
		UpdatedAt: created.Add(20 * time.Minute),
		FileMetadata: domain.FileMetadata{
			OriginalFilename: "q1_roster.xlsx",
			OriginalFilePath: "uploads/a2b9c1d4/q1_roster.xlsx",
			SheetName:        "EMEA",
		},
		OriginalEmployees: []domain.Employee{alice, bob},
		CurrentEmployees:  current,
		Events:            ledger,
	}
}

func TestSessionMapping_RoundTrip(t *testing.T) {
	src := sampleSession()

	rec, err := mapping.ToSessionModel(src)
	require.NoError(t, err)
	assert.Equal(t, src.UserID, rec.UserID)
	assert.Equal(t, src.SessionID, rec.SessionID)
	assert.Equal(t, "q1_roster.xlsx", rec.OriginalFilename)
	assert.Equal(t, "EMEA", rec.SheetName)

	restored, err := mapping.ToSessionDomain(rec)
	require.NoError(t, err)

	assert.Equal(t, src.UserID, restored.UserID)
	assert.Equal(t, src.SessionID, restored.SessionID)
	assert.Equal(t, src.FileMetadata, restored.FileMetadata)
	assert.True(t, src.CreatedAt.Equal(restored.CreatedAt))
	assert.True(t, src.UpdatedAt.Equal(restored.UpdatedAt))
	assert.Equal(t, src.OriginalEmployees, restored.OriginalEmployees)
	assert.Equal(t, src.CurrentEmployees, restored.CurrentEmployees)
	assert.Equal(t, src.Events.Active(), restored.Events.Active())
	assert.False(t, restored.ExportDisabled, "runtime degraded flag is never persisted")
}

func TestSessionMapping_ModifiedFlagRecomputedOnRestore(t *testing.T) {
	src := sampleSession()
	// Corrupt the derived flag before persisting; restore must not trust it.
	src.CurrentEmployees[0].ModifiedInSession = true
	src.CurrentEmployees[1].ModifiedInSession = false

	rec, err := mapping.ToSessionModel(src)
	require.NoError(t, err)

	restored, err := mapping.ToSessionDomain(rec)
	require.NoError(t, err)
	assert.False(t, restored.CurrentEmployees[0].ModifiedInSession)
	assert.True(t, restored.CurrentEmployees[1].ModifiedInSession)
}

func TestSessionMapping_RejectsDanglingEventReference(t *testing.T) {
	src := sampleSession()
	ledger := domain.NewEventLedger([]domain.ReviewEvent{
		domain.NewDonutMoveEvent(777, 3),
	})
	src.Events = ledger

	_, err := mapping.ToSessionModel(src)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrSerialization)
}

func TestSessionMapping_RestoreRejectsMalformedBlob(t *testing.T) {
	src := sampleSession()
	rec, err := mapping.ToSessionModel(src)
	require.NoError(t, err)

	rec.Events = []byte(`{not json`)
	_, err = mapping.ToSessionDomain(rec)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrSerialization)
}

func TestSessionMapping_RestoreRejectsDanglingEvent(t *testing.T) {
	src := sampleSession()
	rec, err := mapping.ToSessionModel(src)
	require.NoError(t, err)

	rec.Events = []byte(`[{"kind":"GRID_MOVE","employeeID":777,"performance":"HIGH","potential":"HIGH","recordedAt":"2026-03-14T10:00:00Z"}]`)
	_, err = mapping.ToSessionDomain(rec)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrSerialization)
}
