package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ninebox-labs/talent_review_app/internal/apperrors"
	"github.com/ninebox-labs/talent_review_app/internal/core/domain"
	portsrepo "github.com/ninebox-labs/talent_review_app/internal/core/ports/repositories"
	portssvc "github.com/ninebox-labs/talent_review_app/internal/core/ports/services"
	"github.com/ninebox-labs/talent_review_app/internal/dto"
	"github.com/ninebox-labs/talent_review_app/internal/utils/mapping"
)

const defaultStorageTimeout = 5 * time.Second

// sessionService owns the in-memory session table and is the only component
// allowed to mutate a Session. Every mutation runs under the service mutex,
// applies to a clone of the session, persists the clone, and only then swaps
// it into the table: a failed persist leaves memory exactly as it was, so
// memory never diverges from the last successfully stored state.
type sessionService struct {
	BaseService
	sessionRepo    portsrepo.SessionRepositoryFacade
	uploadStore    portsrepo.UploadStoreFacade
	storageTimeout time.Duration

	// mu serializes all access to sessions. A single lock over the whole
	// table is enough for a single-local-user tool and keeps the
	// read-modify-persist sequence free of lost updates.
	mu       sync.Mutex
	sessions map[string]*domain.Session
}

// SessionServiceOption is a functional option for configuring the session
// service.
type SessionServiceOption func(*sessionService)

// WithUploadStore adds the uploads-area dependency.
func WithUploadStore(store portsrepo.UploadStoreFacade) SessionServiceOption {
	return func(s *sessionService) {
		s.uploadStore = store
	}
}

// WithStorageTimeout overrides the per-operation durable store timeout.
func WithStorageTimeout(d time.Duration) SessionServiceOption {
	return func(s *sessionService) {
		if d > 0 {
			s.storageTimeout = d
		}
	}
}

// NewSessionService creates a new session service with the provided options.
func NewSessionService(repo portsrepo.SessionRepositoryFacade, options ...SessionServiceOption) portssvc.SessionSvcFacade {
	svc := &sessionService{
		sessionRepo:    repo,
		storageTimeout: defaultStorageTimeout,
		sessions:       make(map[string]*domain.Session),
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure sessionService implements the SessionSvcFacade interface
var _ portssvc.SessionSvcFacade = (*sessionService)(nil)

// RestoreAll loads every stored session record into the in-memory table. It
// runs once at startup, before any request is accepted. A record that fails
// to deserialize is logged and skipped; it never prevents the remaining
// sessions from restoring.
func (s *sessionService) RestoreAll(ctx context.Context) (int, int, error) {
	storeCtx, cancel := context.WithTimeout(ctx, s.storageTimeout)
	defer cancel()
	recs, err := s.sessionRepo.FindAllSessions(storeCtx)
	if err != nil {
		return 0, 0, apperrors.NewStorageError("failed to read stored sessions", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	restored, failed := 0, 0
	for _, rec := range recs {
		sess, err := mapping.ToSessionDomain(rec)
		if err != nil {
			failed++
			s.LogError(ctx, err, "Skipping corrupted session record",
				slog.String("user_id", rec.UserID))
			continue
		}
		if sess.FileMetadata.OriginalFilePath == "" ||
			(s.uploadStore != nil && !s.uploadStore.Exists(sess.FileMetadata.OriginalFilePath)) {
			// Source file gone: the session stays fully mutable but export
			// can no longer regenerate from the original upload.
			sess.ExportDisabled = true
			s.LogWarn(ctx, "Session restored in degraded mode, source file missing",
				slog.String("user_id", sess.UserID),
				slog.String("path", sess.FileMetadata.OriginalFilePath))
		}
		s.sessions[sess.UserID] = sess
		restored++
	}

	s.LogInfo(ctx, "Session restoration finished",
		slog.Int("restored", restored),
		slog.Int("failed", failed))
	return restored, failed, nil
}

func (s *sessionService) CreateSession(ctx context.Context, userID string, req dto.CreateSessionRequest, replace bool) (*domain.Session, error) {
	employees, err := buildEmployees(req.Employees)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	previous, exists := s.sessions[userID]
	if exists && !replace {
		return nil, apperrors.NewConflictError("a session already exists for user " + userID)
	}

	now := time.Now().UTC()
	sessionID := uuid.NewString()

	meta := domain.FileMetadata{
		OriginalFilename: req.File.OriginalFilename,
		SheetName:        req.File.SheetName,
	}
	exportDisabled := true
	if req.File.SourcePath != "" && s.uploadStore != nil {
		storedPath, err := s.uploadStore.StoreFromPath(sessionID, req.File.OriginalFilename, req.File.SourcePath)
		if err != nil {
			return nil, apperrors.NewStorageError("failed to retain source file", err)
		}
		meta.OriginalFilePath = storedPath
		exportDisabled = false
	}

	originals := make([]domain.Employee, len(employees))
	for i, e := range employees {
		originals[i] = e.Clone()
	}

	sess := &domain.Session{
		UserID:            userID,
		SessionID:         sessionID,
		CreatedAt:         now,
		UpdatedAt:         now,
		FileMetadata:      meta,
		OriginalEmployees: originals,
		CurrentEmployees:  employees,
		Events:            domain.NewEventLedger(nil),
		ExportDisabled:    exportDisabled,
	}

	if err := s.persist(ctx, sess); err != nil {
		if s.uploadStore != nil && meta.OriginalFilePath != "" {
			if rmErr := s.uploadStore.RemoveAll(sessionID); rmErr != nil {
				s.LogWarn(ctx, "Failed to clean uploads after aborted create",
					slog.String("session_id", sessionID),
					slog.String("error", rmErr.Error()))
			}
		}
		return nil, err
	}

	s.sessions[userID] = sess
	if exists && s.uploadStore != nil && previous.SessionID != sessionID {
		if rmErr := s.uploadStore.RemoveAll(previous.SessionID); rmErr != nil {
			s.LogWarn(ctx, "Failed to remove uploads of replaced session",
				slog.String("session_id", previous.SessionID),
				slog.String("error", rmErr.Error()))
		}
	}

	s.LogInfo(ctx, "Session created",
		slog.String("user_id", userID),
		slog.String("session_id", sessionID),
		slog.Int("employees", len(employees)),
		slog.Bool("replaced", exists))
	return sess.Clone(), nil
}

func (s *sessionService) MoveEmployee(ctx context.Context, userID string, employeeID int64, performance, potential domain.Level) (*domain.Employee, error) {
	if !performance.IsValid() || !potential.IsValid() {
		return nil, apperrors.NewValidationFailedError(
			fmt.Sprintf("invalid performance/potential pair (%q, %q)", performance, potential))
	}
	return s.applyAndPersist(ctx, userID, employeeID, func(work *domain.Session, emp, orig *domain.Employee) {
		emp.Performance = performance
		emp.Potential = potential
		emp.GridPosition = domain.GridPositionFor(performance, potential)
		work.Events.Track(domain.NewGridMoveEvent(employeeID, performance, potential), *orig)
	})
}

func (s *sessionService) MoveEmployeeDonut(ctx context.Context, userID string, employeeID int64, donutPosition int) (*domain.Employee, error) {
	if donutPosition < 1 || donutPosition > 9 {
		return nil, apperrors.NewValidationFailedError(
			fmt.Sprintf("donut position %d outside 1-9", donutPosition))
	}
	return s.applyAndPersist(ctx, userID, employeeID, func(work *domain.Session, emp, orig *domain.Employee) {
		emp.DonutPosition = donutPosition
		work.Events.Track(domain.NewDonutMoveEvent(employeeID, donutPosition), *orig)
	})
}

func (s *sessionService) UpdateFlags(ctx context.Context, userID string, employeeID int64, flags []string) (*domain.Employee, error) {
	for _, f := range flags {
		if !domain.IsKnownFlagKey(f) {
			return nil, apperrors.NewValidationFailedError("unknown flag key " + f)
		}
	}
	newSet := domain.NormalizeFlags(flags)
	return s.applyAndPersist(ctx, userID, employeeID, func(work *domain.Session, emp, orig *domain.Employee) {
		// The diff is against the CURRENT flag set, not the baseline: only
		// the flags this call actually toggles produce track calls. The
		// ledger's net-zero rule then decides what stays active relative to
		// baseline.
		current := make(map[string]struct{}, len(emp.Flags))
		for _, f := range emp.Flags {
			current[f] = struct{}{}
		}
		requested := make(map[string]struct{}, len(newSet))
		for _, f := range newSet {
			requested[f] = struct{}{}
			if _, had := current[f]; !had {
				work.Events.Track(domain.NewFlagAddEvent(employeeID, f), *orig)
			}
		}
		for _, f := range emp.Flags {
			if _, still := requested[f]; !still {
				work.Events.Track(domain.NewFlagRemoveEvent(employeeID, f), *orig)
			}
		}
		emp.Flags = newSet
	})
}

func (s *sessionService) UpdateFields(ctx context.Context, userID string, employeeID int64, req dto.UpdateEmployeeFieldsRequest) (*domain.Employee, error) {
	return s.applyAndPersist(ctx, userID, employeeID, func(work *domain.Session, emp, orig *domain.Employee) {
		// No event semantics here: notes edits never make an employee count
		// as modified on their own.
		if req.Notes != nil {
			emp.Notes = *req.Notes
		}
	})
}

func (s *sessionService) DeleteSession(ctx context.Context, userID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, inMemory := s.sessions[userID]

	storeCtx, cancel := context.WithTimeout(ctx, s.storageTimeout)
	defer cancel()
	inStore, err := s.sessionRepo.DeleteSession(storeCtx, userID)
	if err != nil {
		// Keep the in-memory copy: memory and store must not diverge.
		return false, apperrors.NewStorageError("failed to delete session for user "+userID, err)
	}

	if inMemory {
		delete(s.sessions, userID)
		if s.uploadStore != nil {
			if rmErr := s.uploadStore.RemoveAll(sess.SessionID); rmErr != nil {
				s.LogWarn(ctx, "Failed to remove uploads of deleted session",
					slog.String("session_id", sess.SessionID),
					slog.String("error", rmErr.Error()))
			}
		}
		s.LogInfo(ctx, "Session deleted", slog.String("user_id", userID))
	}
	return inMemory || inStore, nil
}

func (s *sessionService) GetSession(ctx context.Context, userID string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[userID]
	if !ok {
		return nil, apperrors.NewNotFoundError("no session for user " + userID)
	}
	return sess.Clone(), nil
}

func (s *sessionService) ListEvents(ctx context.Context, userID string) ([]domain.ReviewEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[userID]
	if !ok {
		return nil, apperrors.NewNotFoundError("no session for user " + userID)
	}
	return sess.Events.Active(), nil
}

// applyAndPersist runs one employee mutation end-to-end under the service
// mutex: clone the session, apply the change, recompute the derived modified
// flag, persist, and only then swap the clone in. mutate receives pointers
// into the clone's current collection plus the baseline snapshot.
func (s *sessionService) applyAndPersist(ctx context.Context, userID string, employeeID int64, mutate func(work *domain.Session, emp, orig *domain.Employee)) (*domain.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[userID]
	if !ok {
		return nil, apperrors.NewNotFoundError("no session for user " + userID)
	}

	work := sess.Clone()
	emp := work.CurrentEmployee(employeeID)
	orig := work.OriginalEmployee(employeeID)
	if emp == nil || orig == nil {
		return nil, apperrors.NewNotFoundError(
			fmt.Sprintf("employee %d not in session for user %s", employeeID, userID))
	}

	mutate(work, emp, orig)
	emp.ModifiedInSession = work.Events.HasEventsFor(employeeID)
	work.UpdatedAt = time.Now().UTC()

	if err := s.persist(ctx, work); err != nil {
		return nil, err
	}

	s.sessions[userID] = work
	result := emp.Clone()
	return &result, nil
}

// persist serializes the session and writes it through to the durable store
// under the storage timeout. The caller decides what to do with memory based
// on the result.
func (s *sessionService) persist(ctx context.Context, sess *domain.Session) error {
	rec, err := mapping.ToSessionModel(*sess)
	if err != nil {
		return err
	}
	storeCtx, cancel := context.WithTimeout(ctx, s.storageTimeout)
	defer cancel()
	if err := s.sessionRepo.SaveSession(storeCtx, rec); err != nil {
		return apperrors.NewStorageError("failed to persist session for user "+sess.UserID, err)
	}
	return nil
}

// buildEmployees converts imported employees into domain form, assigning
// grid positions from the static table and parking everyone at the donut
// center.
func buildEmployees(imported []dto.ImportedEmployee) ([]domain.Employee, error) {
	seen := make(map[int64]struct{}, len(imported))
	employees := make([]domain.Employee, 0, len(imported))
	for _, in := range imported {
		if _, dup := seen[in.EmployeeID]; dup {
			return nil, apperrors.NewValidationFailedError(
				fmt.Sprintf("duplicate employee id %d in import", in.EmployeeID))
		}
		seen[in.EmployeeID] = struct{}{}

		performance := domain.Level(in.Performance)
		potential := domain.Level(in.Potential)
		if !performance.IsValid() || !potential.IsValid() {
			return nil, apperrors.NewValidationFailedError(
				fmt.Sprintf("invalid performance/potential pair (%q, %q) for employee %d", in.Performance, in.Potential, in.EmployeeID))
		}
		for _, f := range in.Flags {
			if !domain.IsKnownFlagKey(f) {
				return nil, apperrors.NewValidationFailedError(
					fmt.Sprintf("unknown flag key %s for employee %d", f, in.EmployeeID))
			}
		}

		employees = append(employees, domain.Employee{
			EmployeeID:    in.EmployeeID,
			Name:          in.Name,
			Title:         in.Title,
			Function:      in.Function,
			Location:      in.Location,
			Manager:       in.Manager,
			Performance:   performance,
			Potential:     potential,
			GridPosition:  domain.GridPositionFor(performance, potential),
			DonutPosition: domain.DonutCenter,
			Flags:         domain.NormalizeFlags(in.Flags),
			Notes:         in.Notes,
		})
	}
	return employees, nil
}
