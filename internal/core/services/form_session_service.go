package services

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/kvrsharma/shivaratri-event-forms/internal/config"
	"github.com/kvrsharma/shivaratri-event-forms/internal/core/domain"
	"github.com/kvrsharma/shivaratri-event-forms/internal/core/ports/out"
	fss "github.com/kvrsharma/shivaratri-event-forms/internal/core/services/form_session_service"
)

// formSession - одна открытая форма. Мутации выполняются под mu,
// поэтому каждая атомарна относительно одного обновления состояния.
type formSession struct {
	mu    sync.Mutex
	state domain.SessionState

	// Последнее значение addressLine1, установленное автодополнением
	lastResolvedLine1 string
}

type FormSessionService struct {
	registryPort out.RegistryPort
	placesPort   out.PlaceLookupPort
	cachePort    out.CachePort
	logger       out.LoggerPort
	cfg          *config.Config

	mu       sync.RWMutex
	sessions map[uuid.UUID]*formSession
}

func NewFormSessionService(
	registryPort out.RegistryPort,
	placesPort out.PlaceLookupPort,
	cachePort out.CachePort,
	cfg *config.Config,
	logger out.LoggerPort,
) *FormSessionService {
	return &FormSessionService{
		registryPort: registryPort,
		placesPort:   placesPort,
		cachePort:    cachePort,
		cfg:          cfg,
		logger:       logger.WithModule("FormSessionService"),
		sessions:     make(map[uuid.UUID]*formSession),
	}
}

func (s *FormSessionService) OpenRegistration(ctx context.Context) (*domain.SessionState, error) {
	return s.openSession(domain.FlowRegistration), nil
}

func (s *FormSessionService) OpenBooking(ctx context.Context) (*domain.SessionState, error) {
	return s.openSession(domain.FlowBooking), nil
}

func (s *FormSessionService) openSession(flow domain.Flow) *domain.SessionState {
	sess := &formSession{
		state: domain.SessionState{
			ID:     uuid.New(),
			Flow:   flow,
			Status: domain.SessionStatusEditing,
			Fields: domain.NewFieldSet(flow),
		},
	}
	if flow == domain.FlowBooking {
		sess.state.Step = domain.BookingStepPhone
	}

	sess.mu.Lock()
	s.refresh(sess)
	projection := s.project(sess)
	sess.mu.Unlock()

	s.mu.Lock()
	s.sessions[sess.state.ID] = sess
	s.mu.Unlock()

	s.logger.Info("session.opened", out.LogFields{
		"sessionId": sess.state.ID,
		"flow":      flow,
	})

	return projection
}

func (s *FormSessionService) GetSession(ctx context.Context, sessionID uuid.UUID) (*domain.SessionState, error) {
	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return s.project(sess), nil
}

func (s *FormSessionService) CloseSession(ctx context.Context, sessionID uuid.UUID) error {
	s.mu.Lock()
	_, exists := s.sessions[sessionID]
	delete(s.sessions, sessionID)
	s.mu.Unlock()

	if !exists {
		return ErrSessionNotFound
	}

	s.logger.Info("session.closed", out.LogFields{
		"sessionId": sessionID,
	})
	return nil
}

// DismissSuccess - явное закрытие подтверждения после успешной отправки.
// Сессия вместе с FieldSet выбрасывается, новая форма начинается с нуля.
func (s *FormSessionService) DismissSuccess(ctx context.Context, sessionID uuid.UUID) error {
	sess, err := s.getSession(sessionID)
	if err != nil {
		return err
	}

	sess.mu.Lock()
	status := sess.state.Status
	sess.mu.Unlock()

	if status != domain.SessionStatusSubmittedSuccess {
		return ErrWrongStep
	}

	return s.CloseSession(ctx, sessionID)
}

func (s *FormSessionService) getSession(sessionID uuid.UUID) (*formSession, error) {
	s.mu.RLock()
	sess, exists := s.sessions[sessionID]
	s.mu.RUnlock()

	if !exists {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// mutate выполняет одну мутацию под блокировкой сессии: проверяет, что
// сессия редактируема, применяет изменение и пересчитывает производное
// состояние. Ошибка отправки снимается первой же правкой.
func (s *FormSessionService) mutate(sessionID uuid.UUID, apply func(sess *formSession) error) (*domain.SessionState, error) {
	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	switch sess.state.Status {
	case domain.SessionStatusSubmitting, domain.SessionStatusSubmittedSuccess:
		return nil, ErrSessionBusy
	case domain.SessionStatusSubmittedError:
		sess.state.Status = domain.SessionStatusEditing
		sess.state.ErrorMessage = ""
		sess.state.Result = nil
	}

	if err := apply(sess); err != nil {
		return nil, err
	}

	s.refresh(sess)
	return s.project(sess), nil
}

// refresh пересчитывает все производное состояние после мутации:
// синхронизацию ростера, дерево ошибок и готовность к отправке
func (s *FormSessionService) refresh(sess *formSession) {
	st := &sess.state

	fss.SyncMembers(&st.Fields, st.Flow)
	if st.ViewDate != "" && !st.Fields.HasDate(st.ViewDate) {
		st.ViewDate = ""
	}

	st.Errors = fss.Validate(st.Fields, st.Flow, s.cfg.Event.Dates)
	st.Valid = st.Errors.Empty()
	st.CanSubmit = st.Valid && st.Status == domain.SessionStatusEditing

	if st.Flow == domain.FlowBooking {
		st.UnitPrice = s.cfg.Event.UnitPrice
		quantity := st.Fields.RudrakshaQuantity
		if quantity < domain.MinRudrakshaQuantity {
			quantity = domain.MinRudrakshaQuantity
		}
		st.TotalAmount = st.UnitPrice * quantity

		st.CanSubmit = st.CanSubmit &&
			st.Step == domain.BookingStepDetails &&
			st.PhoneVerified &&
			st.TermsAccepted
	}
}

// project отдает наружу копию состояния, внутренние срезы и карты
// не разделяются с вызывающим
func (s *FormSessionService) project(sess *formSession) *domain.SessionState {
	projection := sess.state
	projection.Fields = copyFieldSet(sess.state.Fields)
	return &projection
}

func copyFieldSet(fs domain.FieldSet) domain.FieldSet {
	copied := fs
	copied.Members = append([]domain.Member{}, fs.Members...)
	copied.PreferredDates = append([]string{}, fs.PreferredDates...)
	copied.PreferredTimeSlots = make(map[string][]string, len(fs.PreferredTimeSlots))
	for dateKey, slotIDs := range fs.PreferredTimeSlots {
		copied.PreferredTimeSlots[dateKey] = append([]string{}, slotIDs...)
	}
	return copied
}
