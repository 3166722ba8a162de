package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/guttosm/dispatch-service/internal/composition"
	"github.com/guttosm/dispatch-service/internal/domain/model"
	"github.com/guttosm/dispatch-service/internal/logger"
	"github.com/guttosm/dispatch-service/internal/metrics"
	"github.com/guttosm/dispatch-service/internal/repository"
)

// Warning codes attached to session views.
const (
	WarningDraftRestoreFailed = "draft_restore_failed"
	WarningDraftSyncFailed    = "draft_sync_failed"
)

const maxSessionIDLength = 128

var (
	// ErrRepositoryNotConfigured is returned when the backing store is not configured.
	ErrRepositoryNotConfigured = errors.New("repository not configured")
	// ErrInvalidSessionID is returned for an empty or oversized session id.
	ErrInvalidSessionID = errors.New("invalid session id")
	// ErrInvalidQuantity is returned for a quantity below one.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)

// VehicleLocker reserves a vehicle across service replicas while an order is
// appended.
type VehicleLocker interface {
	Lock(ctx context.Context, vehicleID string) (func(context.Context) error, error)
}

// SessionView is what an operator sees of their composition.
type SessionView struct {
	SessionID        string
	State            composition.State
	VehicleID        string
	Vehicle          *model.Vehicle
	VehicleKnown     bool
	VehicleAvailable bool
	HeldBy           string
	Items            []model.LineItem
	Pending          model.LineItem
	Totals           model.Totals
	Capacity         *composition.CapacityReport
	Warnings         []string
}

// CompositionService runs operator sessions.
type CompositionService interface {
	View(ctx context.Context, sessionID string) (SessionView, error)
	SelectVehicle(ctx context.Context, sessionID, vehicleID string) (SessionView, error)
	SetPending(ctx context.Context, sessionID, sku string, quantity int) (SessionView, error)
	AddItem(ctx context.Context, sessionID, sku string, quantity int) (SessionView, error)
	IncrementItem(ctx context.Context, sessionID string, index int) (SessionView, error)
	DecrementItem(ctx context.Context, sessionID string, index int) (SessionView, error)
	RemoveItem(ctx context.Context, sessionID string, index int) (SessionView, error)
	Confirm(ctx context.Context, sessionID string) (model.Order, error)
	Discard(ctx context.Context, sessionID string) error
}

// CompositionOption configures the composition service.
type CompositionOption func(*CompositionServiceImpl)

// WithVehicleLocker serialises confirmation per vehicle through locker.
func WithVehicleLocker(locker VehicleLocker) CompositionOption {
	return func(s *CompositionServiceImpl) {
		s.locker = locker
	}
}

// WithRegistryConfig sizes the session registry.
func WithRegistryConfig(cfg RegistryConfig) CompositionOption {
	return func(s *CompositionServiceImpl) {
		s.registryCfg = cfg
	}
}

// WithSessionOptions adds options applied to every new session.
func WithSessionOptions(opts ...composition.Option) CompositionOption {
	return func(s *CompositionServiceImpl) {
		s.sessionOpts = append(s.sessionOpts, opts...)
	}
}

// WithRestoreTimeout bounds the draft read made when a session is first used.
func WithRestoreTimeout(d time.Duration) CompositionOption {
	return func(s *CompositionServiceImpl) {
		s.restoreTimeout = d
	}
}

// CompositionServiceImpl implements CompositionService.
type CompositionServiceImpl struct {
	view           *composition.View
	orders         repository.OrdersRepositoryInterface
	drafts         *DraftSyncer
	locker         VehicleLocker
	registry       *SessionRegistry
	registryCfg    RegistryConfig
	sessionOpts    []composition.Option
	restoreTimeout time.Duration
}

// NewCompositionService creates the session manager. drafts may be nil, in
// which case compositions live only in memory.
func NewCompositionService(view *composition.View, orders repository.OrdersRepositoryInterface, drafts *DraftSyncer, opts ...CompositionOption) *CompositionServiceImpl {
	s := &CompositionServiceImpl{
		view:           view,
		orders:         orders,
		drafts:         drafts,
		registryCfg:    DefaultRegistryConfig(),
		restoreTimeout: 2 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registry = NewSessionRegistry(s.registryCfg, s.newSession)
	return s
}

func (s *CompositionServiceImpl) newSession(id string) *composition.Session {
	opts := append([]composition.Option{}, s.sessionOpts...)
	if s.drafts != nil {
		opts = append(opts, composition.WithPublisher(s.drafts))
	}
	return composition.NewSession(id, s.view, opts...)
}

// Stop ends background registry work.
func (s *CompositionServiceImpl) Stop() {
	s.registry.Stop()
}

// Sessions returns the number of sessions held in memory.
func (s *CompositionServiceImpl) Sessions() int {
	return s.registry.Len()
}

func (s *CompositionServiceImpl) View(ctx context.Context, sessionID string) (SessionView, error) {
	return s.withSession(ctx, sessionID, func(*composition.Session) error { return nil })
}

func (s *CompositionServiceImpl) SelectVehicle(ctx context.Context, sessionID, vehicleID string) (SessionView, error) {
	return s.withSession(ctx, sessionID, func(sess *composition.Session) error {
		sess.SelectVehicle(vehicleID)
		return nil
	})
}

func (s *CompositionServiceImpl) SetPending(ctx context.Context, sessionID, sku string, quantity int) (SessionView, error) {
	return s.withSession(ctx, sessionID, func(sess *composition.Session) error {
		sess.SetPending(sku, quantity)
		return nil
	})
}

// AddItem appends sku, or the pending item when sku is blank.
func (s *CompositionServiceImpl) AddItem(ctx context.Context, sessionID, sku string, quantity int) (SessionView, error) {
	return s.withSession(ctx, sessionID, func(sess *composition.Session) error {
		if strings.TrimSpace(sku) == "" {
			return sess.AddPending()
		}
		return sess.AddItem(sku, quantity)
	})
}

func (s *CompositionServiceImpl) IncrementItem(ctx context.Context, sessionID string, index int) (SessionView, error) {
	return s.withSession(ctx, sessionID, func(sess *composition.Session) error {
		return sess.Increment(index)
	})
}

func (s *CompositionServiceImpl) DecrementItem(ctx context.Context, sessionID string, index int) (SessionView, error) {
	return s.withSession(ctx, sessionID, func(sess *composition.Session) error {
		return sess.Decrement(index)
	})
}

func (s *CompositionServiceImpl) RemoveItem(ctx context.Context, sessionID string, index int) (SessionView, error) {
	return s.withSession(ctx, sessionID, func(sess *composition.Session) error {
		return sess.Remove(index)
	})
}

// Confirm freezes the session's composition into an order.
func (s *CompositionServiceImpl) Confirm(ctx context.Context, sessionID string) (model.Order, error) {
	var order model.Order
	_, err := s.withSession(ctx, sessionID, func(sess *composition.Session) error {
		release, err := s.reserve(ctx, sess)
		if err != nil {
			return err
		}
		defer release()

		order, err = sess.Confirm(ctx, s.orders)
		return err
	})

	if err != nil {
		s.recordConfirmFailure(sessionID, err)
		return model.Order{}, err
	}

	report, known := s.utilisation(order)
	metrics.RecordOrderConfirmed(report.WeightPct, report.VolumePct, known)
	logger.FromContext(ctx).Info().
		Str("session_id", sessionID).
		Str("order_id", order.ID).
		Str("vehicle_id", order.VehicleID).
		Int("items", len(order.Items)).
		Msg("Order confirmed")
	return order, nil
}

// Discard abandons the session's composition. The session stays registered
// and empty, so a draft delete still in flight cannot bring it back.
func (s *CompositionServiceImpl) Discard(ctx context.Context, sessionID string) error {
	_, err := s.withSession(ctx, sessionID, func(sess *composition.Session) error {
		sess.Discard()
		return nil
	})
	return err
}

// withSession runs fn with exclusive access to the session and describes the
// session afterwards. The view is returned even when fn fails.
func (s *CompositionServiceImpl) withSession(ctx context.Context, sessionID string, fn func(*composition.Session) error) (SessionView, error) {
	id := normaliseSessionID(sessionID)
	if id == "" || len(id) > maxSessionIDLength {
		return SessionView{}, ErrInvalidSessionID
	}

	entry := s.registry.acquire(id)
	entry.mu.Lock()
	defer entry.mu.Unlock()

	if !entry.restored {
		s.restore(ctx, id, entry)
	}
	err := fn(entry.session)

	view := s.describe(entry.session)
	view.Warnings = append(view.Warnings, entry.warnings...)
	entry.warnings = nil
	if s.drafts != nil && s.drafts.LastError(id) != nil {
		view.Warnings = append(view.Warnings, WarningDraftSyncFailed)
	}
	return view, err
}

// restore loads the mirrored draft into a fresh session. A failed read leaves
// the session empty and is reported once as a warning.
func (s *CompositionServiceImpl) restore(ctx context.Context, id string, entry *sessionEntry) {
	entry.restored = true
	if s.drafts == nil {
		return
	}

	loadCtx, cancel := context.WithTimeout(ctx, s.restoreTimeout)
	defer cancel()

	draft, found, err := s.drafts.Load(loadCtx, id)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("session_id", id).Msg("Failed to restore composition draft")
		entry.warnings = append(entry.warnings, WarningDraftRestoreFailed)
		return
	}
	if found {
		entry.session.Restore(draft)
	}
}

// reserve takes the cross-replica vehicle lock when the session is ready to
// confirm. Lock infrastructure failures do not block confirmation; the
// store's conditional insert still rejects a second order for the vehicle.
func (s *CompositionServiceImpl) reserve(ctx context.Context, sess *composition.Session) (func(), error) {
	noop := func() {}
	if s.locker == nil || sess.State() != composition.StateReadyToConfirm {
		return noop, nil
	}

	unlock, err := s.locker.Lock(ctx, sess.VehicleID())
	if errors.Is(err, repository.ErrVehicleLocked) {
		return noop, &composition.ValidationError{Reason: composition.ReasonVehicleUnavailable}
	}
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("session_id", sess.ID()).Str("vehicle_id", sess.VehicleID()).
			Msg("Vehicle lock unavailable, relying on conditional insert")
		return noop, nil
	}

	return func() {
		releaseCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := unlock(releaseCtx); err != nil {
			log := logger.Logger()
			log.Warn().Err(err).Str("vehicle_id", sess.VehicleID()).Msg("Failed to release vehicle lock")
		}
	}, nil
}

func (s *CompositionServiceImpl) recordConfirmFailure(sessionID string, err error) {
	log := logger.Logger()
	var validation *composition.ValidationError
	switch {
	case errors.As(err, &validation):
		metrics.RecordRejection(string(validation.Reason))
		log.Info().Str("session_id", sessionID).Str("reason", string(validation.Reason)).Msg("Confirm rejected")
	case errors.Is(err, composition.ErrCollaboratorUnavailable):
		metrics.RecordRejection("collaborator_unavailable")
		log.Warn().Err(err).Str("session_id", sessionID).Msg("Confirm failed, order store unavailable")
	}
}

func (s *CompositionServiceImpl) utilisation(order model.Order) (composition.CapacityReport, bool) {
	v, ok := s.view.Catalog().Vehicle(order.VehicleID)
	if !ok {
		return composition.CapacityReport{}, false
	}
	return composition.EvaluateVehicle(v, order.Totals()), true
}

func (s *CompositionServiceImpl) describe(sess *composition.Session) SessionView {
	c := sess.Composition()
	view := SessionView{
		SessionID:        sess.ID(),
		State:            sess.State(),
		VehicleID:        c.VehicleID,
		VehicleAvailable: sess.VehicleAvailable(),
		Items:            c.Items,
		Pending:          c.Pending,
		Totals:           sess.Totals(),
	}

	if holder, held := composition.HolderOf(c.VehicleID, s.view.Current().OpenOrders); held {
		view.HeldBy = holder.ID
	}
	if v, ok := sess.Vehicle(); ok {
		view.VehicleKnown = true
		if view.VehicleAvailable {
			view.Vehicle = &v
		}
	}
	if report, ok := sess.Capacity(); ok {
		view.Capacity = &report
	}
	return view
}

func normaliseSessionID(id string) string {
	return strings.TrimSpace(id)
}
