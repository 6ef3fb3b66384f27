package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SscSPs/profit_first_app/internal/apperrors"
	"github.com/SscSPs/profit_first_app/internal/core/domain"
	portsrepo "github.com/SscSPs/profit_first_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/profit_first_app/internal/core/ports/services"
	"github.com/SscSPs/profit_first_app/internal/utils/cadence"
)

// cadenceService implements the CadenceSvcFacade interface
type cadenceService struct {
	BaseService
	cadenceRepo portsrepo.CadenceRepositoryFacade
	now         func() time.Time
}

// CadenceServiceOption is a functional option for configuring the cadence service
type CadenceServiceOption func(*cadenceService)

// WithCadenceAuthorizer adds the authorizer consulted before every read or write
func WithCadenceAuthorizer(authorizer portssvc.WorkspaceAuthorizerSvc) CadenceServiceOption {
	return func(s *cadenceService) {
		s.WorkspaceAuthorizer = authorizer
	}
}

// WithClock replaces time.Now, which decides "today" for the default cadence
func WithClock(now func() time.Time) CadenceServiceOption {
	return func(s *cadenceService) {
		s.now = now
	}
}

// NewCadenceService creates a new cadence service with the provided options
func NewCadenceService(repo portsrepo.CadenceRepositoryFacade, options ...CadenceServiceOption) portssvc.CadenceSvcFacade {
	svc := &cadenceService{
		cadenceRepo: repo,
		now:         time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure cadenceService implements the CadenceSvcFacade interface
var _ portssvc.CadenceSvcFacade = (*cadenceService)(nil)

func (s *cadenceService) GetCadence(ctx context.Context, companyID string, userID string) (*domain.CadenceSettings, error) {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.ActionView); err != nil {
		return nil, err
	}
	return s.current(ctx, companyID)
}

// current loads stored settings or falls back to the default cadence.
func (s *cadenceService) current(ctx context.Context, companyID string) (*domain.CadenceSettings, error) {
	settings, err := s.cadenceRepo.FindCadenceByCompanyID(ctx, companyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			def := cadence.Default(companyID, s.now())
			s.LogDebug(ctx, "No cadence stored, using default",
				slog.String("company_id", companyID))
			return &def, nil
		}
		s.LogError(ctx, err, "Failed to load cadence settings",
			slog.String("company_id", companyID))
		return nil, err
	}
	return settings, nil
}

// UpdateCadence normalizes input as an edit of the stored settings and saves it.
func (s *cadenceService) UpdateCadence(ctx context.Context, companyID string, input domain.CadenceInput, userID string) (*domain.CadenceSettings, error) {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.ActionEdit); err != nil {
		return nil, err
	}

	stored, err := s.current(ctx, companyID)
	if err != nil {
		return nil, err
	}

	settings, err := cadence.Apply(*stored, input)
	if err != nil {
		s.LogDebug(ctx, "Cadence input rejected",
			slog.String("company_id", companyID),
			slog.String("error", err.Error()))
		return nil, err
	}
	settings.CompanyID = companyID

	saved, err := s.cadenceRepo.UpsertCadence(ctx, settings)
	if err != nil {
		s.LogError(ctx, err, "Failed to save cadence settings",
			slog.String("company_id", companyID))
		return nil, err
	}

	s.LogInfo(ctx, "Cadence updated successfully",
		slog.String("company_id", companyID),
		slog.String("cadence", string(saved.Cadence)),
		slog.String("next_allocation_date", saved.NextAllocationDate))
	return saved, nil
}

func (s *cadenceService) AdvanceNextAllocationDate(ctx context.Context, companyID string, now time.Time, userID string) (*domain.CadenceSettings, error) {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.ActionEdit); err != nil {
		return nil, err
	}

	settings, err := s.current(ctx, companyID)
	if err != nil {
		return nil, err
	}

	base := now
	stored, err := settings.NextDate()
	if err != nil {
		return nil, apperrors.NewValidationFailedError("stored next allocation date is not a valid date")
	}
	if stored.After(base) {
		base = stored
	}

	next, err := cadence.NextRunAfter(*settings, base)
	if err != nil {
		return nil, err
	}

	previous := settings.NextAllocationDate
	settings.CompanyID = companyID
	settings.NextAllocationDate = next.Format(domain.DateLayout)

	saved, err := s.cadenceRepo.UpsertCadence(ctx, *settings)
	if err != nil {
		s.LogError(ctx, err, "Failed to advance next allocation date",
			slog.String("company_id", companyID))
		return nil, err
	}

	s.LogInfo(ctx, "Next allocation date advanced",
		slog.String("company_id", companyID),
		slog.String("from", previous),
		slog.String("to", saved.NextAllocationDate))
	return saved, nil
}
