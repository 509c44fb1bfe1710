package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	leadserrors "radar/internal/leads/errors"
	"radar/internal/leads/events"
	"radar/internal/leads/filter"
	"radar/internal/leads/normalizer"
	"radar/internal/leads/paginator"
	"radar/internal/leads/repository"
	"radar/internal/leads/session"
	"radar/internal/leads/validator"
	"radar/pkg/config"
	apperrors "radar/pkg/errors"
	"radar/pkg/model"
)

const leadDataResource = "Lead data"

type LeadService interface {
	Load(ctx context.Context) error
	Ready() bool
	Options(ctx context.Context, city string) (*model.Options, error)
	StartSession(ctx context.Context, criteria *model.FilterCriteria) (*model.BrowseResult, error)
	Current(ctx context.Context, id string) (*model.BrowseResult, error)
	ApplyFilter(ctx context.Context, id string, criteria model.FilterCriteria) (*model.BrowseResult, error)
	Next(ctx context.Context, id string) (*model.BrowseResult, error)
	Previous(ctx context.Context, id string) (*model.BrowseResult, error)
	EndSession(ctx context.Context, id string) error
}

type leadService struct {
	source    repository.LeadSource
	store     session.Store
	views     *ViewBuilder
	validator *validator.CriteriaValidator
	publisher events.Publisher
	cfg       *config.Config

	// nil until a load succeeds with at least one lead
	leads atomic.Pointer[[]model.Lead]
	now   func() time.Time
}

func NewLeadService(
	source repository.LeadSource,
	store session.Store,
	views *ViewBuilder,
	validator *validator.CriteriaValidator,
	publisher events.Publisher,
	cfg *config.Config,
) LeadService {
	return &leadService{
		source:    source,
		store:     store,
		views:     views,
		validator: validator,
		publisher: publisher,
		cfg:       cfg,
		now:       time.Now,
	}
}

// Load reads and normalizes the whole source. Any failure, or a source
// without rows, leaves the service in the no-data state.
func (s *leadService) Load(ctx context.Context) error {
	start := s.now()

	rows, err := s.source.Load(ctx)
	if err != nil {
		s.leads.Store(nil)
		s.cfg.Log.Error("Failed to load leads",
			"source", s.source.Name(),
			"error", err,
		)
		return fmt.Errorf("%w: %w", leadserrors.ErrNoData, err)
	}

	leads := normalizer.Normalize(rows)
	if len(leads) == 0 {
		s.leads.Store(nil)
		s.cfg.Log.Warn("Lead source has no rows", "source", s.source.Name())
		return leadserrors.ErrNoData
	}

	s.leads.Store(&leads)
	s.cfg.Log.Info("Leads loaded",
		"source", s.source.Name(),
		"count", len(leads),
		"duration_ms", s.now().Sub(start).Milliseconds(),
	)
	return nil
}

func (s *leadService) Ready() bool {
	return s.leads.Load() != nil
}

func (s *leadService) dataset() ([]model.Lead, error) {
	p := s.leads.Load()
	if p == nil {
		return nil, apperrors.Unavailable(leadDataResource)
	}
	return *p, nil
}

func (s *leadService) Options(ctx context.Context, city string) (*model.Options, error) {
	leads, err := s.dataset()
	if err != nil {
		return nil, err
	}

	city = strings.TrimSpace(city)
	return &model.Options{
		Cities:        filter.Cities(leads),
		Neighborhoods: filter.Neighborhoods(leads, city),
		MinScore:      model.MinScore,
		MaxScore:      model.MaxScore,
		DefaultScore:  s.cfg.DefaultMinScore,
		TotalLeads:    len(leads),
	}, nil
}

func (s *leadService) StartSession(ctx context.Context, criteria *model.FilterCriteria) (*model.BrowseResult, error) {
	leads, err := s.dataset()
	if err != nil {
		return nil, err
	}

	c := s.defaultCriteria()
	if criteria != nil {
		c = *criteria
	}
	if err := s.checkCriteria(&c); err != nil {
		return nil, err
	}

	sess := s.store.Create(c)
	result, sess := s.render(leads, sess)
	if err := s.store.Save(sess); err != nil {
		return nil, s.sessionError(err, sess.ID)
	}

	s.cfg.Log.Info("Browsing session started",
		"session_id", sess.ID,
		"min_score", c.MinScore,
		"city", c.City,
		"neighborhood", c.Neighborhood,
		"total_records", result.Page.TotalRecords,
	)
	s.publish(ctx, events.SessionStarted, result)
	return result, nil
}

func (s *leadService) Current(ctx context.Context, id string) (*model.BrowseResult, error) {
	return s.mutate(ctx, id, "", func(sess *model.Session, _ paginator.Window) {})
}

// ApplyFilter replaces the criteria. The page index is kept unless the new
// set has no such page, in which case render resets it to the first page.
func (s *leadService) ApplyFilter(ctx context.Context, id string, criteria model.FilterCriteria) (*model.BrowseResult, error) {
	if err := s.checkCriteria(&criteria); err != nil {
		return nil, err
	}
	return s.mutate(ctx, id, events.FilterApplied, func(sess *model.Session, _ paginator.Window) {
		sess.Criteria = criteria
	})
}

func (s *leadService) Next(ctx context.Context, id string) (*model.BrowseResult, error) {
	return s.mutate(ctx, id, events.PageChanged, func(sess *model.Session, w paginator.Window) {
		sess.PageIndex = paginator.Next(w.Index, w.TotalPages)
	})
}

func (s *leadService) Previous(ctx context.Context, id string) (*model.BrowseResult, error) {
	return s.mutate(ctx, id, events.PageChanged, func(sess *model.Session, w paginator.Window) {
		sess.PageIndex = paginator.Previous(w.Index)
	})
}

func (s *leadService) EndSession(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("Session ID cannot be empty")
	}

	sess, err := s.store.Get(id)
	if err != nil {
		return s.sessionError(err, id)
	}
	if err := s.store.Delete(id); err != nil {
		return s.sessionError(err, id)
	}

	s.cfg.Log.Info("Browsing session ended", "session_id", id)
	s.emit(ctx, events.SessionEvent{
		Type:       events.SessionEnded,
		SessionID:  id,
		Criteria:   sess.Criteria,
		PageIndex:  sess.PageIndex,
		OccurredAt: s.now(),
	})
	return nil
}

// mutate loads the session, corrects its index against the current filtered
// set, applies change, then recomputes the page from scratch and saves.
func (s *leadService) mutate(
	ctx context.Context,
	id string,
	eventType string,
	change func(sess *model.Session, w paginator.Window),
) (*model.BrowseResult, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Session ID cannot be empty")
	}

	leads, err := s.dataset()
	if err != nil {
		return nil, err
	}

	sess, err := s.store.Get(id)
	if err != nil {
		return nil, s.sessionError(err, id)
	}

	matched := filter.Apply(leads, sess.Criteria)
	window := paginator.Compute(len(matched), sess.PageIndex, s.cfg.PageSize)
	sess.PageIndex = window.Index
	change(&sess, window)

	result, sess := s.render(leads, sess)
	if err := s.store.Save(sess); err != nil {
		return nil, s.sessionError(err, id)
	}

	if eventType != "" {
		s.cfg.Log.Debug("Browsing session updated",
			"session_id", id,
			"event", eventType,
			"page_index", sess.PageIndex,
			"total_records", result.Page.TotalRecords,
		)
		s.publish(ctx, eventType, result)
	}
	return result, nil
}

// render runs filter, paginate and view building for the session and
// returns the session with its page index corrected.
func (s *leadService) render(leads []model.Lead, sess model.Session) (*model.BrowseResult, model.Session) {
	matched := filter.Apply(leads, sess.Criteria)
	window := paginator.Compute(len(matched), sess.PageIndex, s.cfg.PageSize)
	sess.PageIndex = window.Index

	page := model.Page{
		Leads:          s.views.Build(paginator.Slice(matched, window)),
		Index:          window.Index,
		CurrentPage:    window.CurrentPage(),
		TotalPages:     window.TotalPages,
		TotalRecords:   window.Total,
		HasPrevious:    window.HasPrevious(),
		HasNext:        window.HasNext(),
		ShowNavigation: window.ShowNavigation(),
	}

	return &model.BrowseResult{
		SessionID: sess.ID,
		Criteria:  sess.Criteria,
		Page:      page,
	}, sess
}

func (s *leadService) defaultCriteria() model.FilterCriteria {
	return model.FilterCriteria{MinScore: s.cfg.DefaultMinScore}
}

func (s *leadService) checkCriteria(c *model.FilterCriteria) error {
	c.City = strings.TrimSpace(c.City)
	c.Neighborhood = strings.TrimSpace(c.Neighborhood)

	if c.Neighborhood != "" && c.City == "" {
		return apperrors.InvalidInput("Neighborhood filter requires a city")
	}

	if err := s.validator.Validate(*c); err != nil {
		s.cfg.Log.Warn("Filter criteria validation failed", "error", err)

		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return apperrors.Validation("Filter criteria validation failed", verrs.Details())
		}
		return apperrors.Validation("Filter criteria validation failed", map[string]any{
			"error": err.Error(),
		})
	}
	return nil
}

func (s *leadService) sessionError(err error, id string) error {
	if errors.Is(err, leadserrors.ErrSessionNotFound) {
		return apperrors.NotFoundWithID("Session", id)
	}
	s.cfg.Log.Error("Session store failure", "session_id", id, "error", err)
	return apperrors.Internal("Failed to access session", err)
}

func (s *leadService) publish(ctx context.Context, eventType string, result *model.BrowseResult) {
	s.emit(ctx, events.SessionEvent{
		Type:         eventType,
		SessionID:    result.SessionID,
		Criteria:     result.Criteria,
		PageIndex:    result.Page.Index,
		TotalRecords: result.Page.TotalRecords,
		OccurredAt:   s.now(),
	})
}

// emit never fails the request; publish errors are only logged.
func (s *leadService) emit(ctx context.Context, event events.SessionEvent) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.cfg.Log.Warn("Failed to publish session event",
			"session_id", event.SessionID,
			"event", event.Type,
			"error", err,
		)
	}
}
