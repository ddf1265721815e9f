package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"emi-calculator/domain"
	"emi-calculator/format"
	"emi-calculator/repository"
)

// SessionService runs form sessions on behalf of remote clients. Each call
// loads the session, applies one event and stores it back; calls on the same
// session are serialized. Every access saves the session again so its TTL
// counts from the last use.
type SessionService struct {
	repo   repository.SessionRepository
	logger *zap.Logger
	newID  func() string
	locks  *sessionLocks
}

func NewSessionService(repo repository.SessionRepository, logger *zap.Logger) *SessionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionService{
		repo:   repo,
		logger: logger,
		newID:  func() string { return uuid.NewString() },
		locks:  newSessionLocks(),
	}
}

// Create starts a session at the default inputs.
func (s *SessionService) Create(ctx context.Context) (domain.SessionView, error) {
	id := s.newID()
	form := NewFormSession()
	if err := s.repo.Save(ctx, id, form.Snapshot()); err != nil {
		return domain.SessionView{}, fmt.Errorf("create session: %w", err)
	}
	s.logger.Info("session created", zap.String("session_id", id))
	return View(id, form), nil
}

func (s *SessionService) Get(ctx context.Context, id string) (domain.SessionView, error) {
	unlock := s.locks.lock(id)
	defer unlock()

	form, err := s.load(ctx, id)
	if err != nil {
		return domain.SessionView{}, err
	}
	if err := s.save(ctx, id, form); err != nil {
		return domain.SessionView{}, err
	}
	return View(id, form), nil
}

// ChangeInput applies a value coming from one control of a field. Values
// that do not parse leave the inputs untouched.
func (s *SessionService) ChangeInput(
	ctx context.Context,
	id string,
	field domain.Field,
	control domain.Control,
	raw string,
) (domain.SessionView, error) {
	unlock := s.locks.lock(id)
	defer unlock()

	form, err := s.load(ctx, id)
	if err != nil {
		return domain.SessionView{}, err
	}

	changed, err := form.Apply(field, control, raw)
	if err != nil {
		return domain.SessionView{}, err
	}
	if err := s.save(ctx, id, form); err != nil {
		return domain.SessionView{}, err
	}

	s.logger.Debug("session input changed",
		zap.String("session_id", id),
		zap.String("field", string(field)),
		zap.String("control", string(control)),
		zap.String("raw", raw),
		zap.Bool("changed", changed),
	)
	return View(id, form), nil
}

func (s *SessionService) Reset(ctx context.Context, id string) (domain.SessionView, error) {
	unlock := s.locks.lock(id)
	defer unlock()

	form, err := s.load(ctx, id)
	if err != nil {
		return domain.SessionView{}, err
	}
	form.Reset()
	if err := s.save(ctx, id, form); err != nil {
		return domain.SessionView{}, err
	}
	return View(id, form), nil
}

func (s *SessionService) Delete(ctx context.Context, id string) error {
	unlock := s.locks.lock(id)
	defer unlock()

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("session ended", zap.String("session_id", id))
	return nil
}

func (s *SessionService) load(ctx context.Context, id string) (*FormSession, error) {
	inputs, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return RestoreFormSession(inputs), nil
}

func (s *SessionService) save(ctx context.Context, id string, form *FormSession) error {
	if err := s.repo.Save(ctx, id, form.Snapshot()); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// View renders the current state of a form for clients.
func View(id string, form *FormSession) domain.SessionView {
	return domain.SessionView{
		ID:       id,
		Inputs:   form.Inputs(),
		Controls: form.Controls(),
		Result:   form.Result(),
		Panel:    format.NewPanel(form.Inputs(), form.Result()),
	}
}
