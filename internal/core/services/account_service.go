package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/SscSPs/profit_first_app/internal/apperrors"
	"github.com/SscSPs/profit_first_app/internal/core/domain"
	portsrepo "github.com/SscSPs/profit_first_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/profit_first_app/internal/core/ports/services"
	"github.com/SscSPs/profit_first_app/internal/utils/allocation"
	"github.com/google/uuid"
)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	limits      allocation.Limits
	validator   allocation.Validator
	newID       func() string
}

// AccountServiceOption is a functional option for configuring the account service
type AccountServiceOption func(*accountService)

// WithWorkspaceAuthorizer adds the authorizer consulted before every read or write
func WithWorkspaceAuthorizer(authorizer portssvc.WorkspaceAuthorizerSvc) AccountServiceOption {
	return func(s *accountService) {
		s.WorkspaceAuthorizer = authorizer
	}
}

// WithLimits overrides the custom account ceilings
func WithLimits(limits allocation.Limits) AccountServiceOption {
	return func(s *accountService) {
		s.limits = limits
	}
}

// WithThresholds overrides the validator constants
func WithThresholds(t allocation.Thresholds) AccountServiceOption {
	return func(s *accountService) {
		s.validator = allocation.NewValidator(t)
	}
}

// WithIDGenerator replaces uuid generation for new accounts
func WithIDGenerator(newID func() string) AccountServiceOption {
	return func(s *accountService) {
		s.newID = newID
	}
}

// NewAccountService creates a new account service with the provided options
func NewAccountService(repo portsrepo.AccountRepositoryFacade, options ...AccountServiceOption) portssvc.AccountSvcFacade {
	svc := &accountService{
		accountRepo: repo,
		limits:      allocation.DefaultLimits(),
		validator:   allocation.NewValidator(allocation.DefaultThresholds()),
		newID:       uuid.NewString,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure accountService implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) ListAccounts(ctx context.Context, companyID string, userID string) ([]domain.Account, error) {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.ActionView); err != nil {
		return nil, err
	}
	return s.listActive(ctx, companyID)
}

// listActive returns the active accounts of a company in display order.
func (s *accountService) listActive(ctx context.Context, companyID string) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccountsByCompany(ctx, companyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts",
			slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to list accounts for company %s: %w", companyID, err)
	}

	active := make([]domain.Account, 0, len(accounts))
	for _, acc := range accounts {
		if acc.IsActive {
			active = append(active, acc)
		}
	}

	s.LogDebug(ctx, "Accounts listed successfully",
		slog.Int("count", len(active)),
		slog.String("company_id", companyID))
	return allocation.SortForDisplay(active), nil
}

func (s *accountService) ValidateAllocations(ctx context.Context, group domain.AccountGroup, accounts []domain.Account) (allocation.Result, error) {
	res, err := s.validator.Validate(accounts, group)
	recordValidation(group, res, err)
	if err != nil {
		s.LogDebug(ctx, "Allocation set rejected",
			slog.String("group", string(group)),
			slog.String("error", err.Error()))
		return res, err
	}
	s.LogDebug(ctx, "Allocation set validated",
		slog.String("group", string(group)),
		slog.String("total_percent", res.TotalPercent.String()),
		slog.Bool("is_valid", res.IsValid),
		slog.Bool("warning", res.Warning))
	return res, nil
}

func recordValidation(group domain.AccountGroup, res allocation.Result, err error) {
	outcome := "valid"
	switch {
	case err != nil:
		outcome = "rejected"
	case !res.IsValid:
		outcome = "invalid"
	case res.Warning:
		outcome = "warning"
	}
	validationOutcomes.WithLabelValues(string(group), outcome).Inc()
}

func (s *accountService) SaveAllocations(ctx context.Context, companyID string, group domain.AccountGroup, changes domain.AllocationChangeSet, userID string) ([]domain.Account, error) {
	if !group.AllowsCustomAccounts() {
		return nil, apperrors.NewValidationFailedError(
			fmt.Sprintf("allocations can only be saved for the main and direct_cost groups, not %q", group))
	}
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.ActionEdit); err != nil {
		return nil, err
	}

	existing, err := s.accountRepo.ListAccountsByCompany(ctx, companyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load accounts before save",
			slog.String("company_id", companyID))
		return nil, err
	}
	byID := make(map[string]domain.Account, len(existing))
	for _, acc := range existing {
		byID[acc.ID()] = acc
	}

	removed := make(map[string]bool, len(changes.RemovedIDs))
	for _, id := range changes.RemovedIDs {
		acc, ok := byID[id]
		if !ok || acc.Group != group {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("account %s not found in the %s group", id, group))
		}
		if !acc.IsCustom() {
			return nil, apperrors.NewValidationFailedError(
				fmt.Sprintf("%s is a fixed account and cannot be removed.", acc.Name))
		}
		removed[id] = true
	}

	upserts := make([]domain.Account, 0, len(changes.Accounts))
	mentioned := make(map[string]bool, len(changes.Accounts))
	for _, incoming := range changes.Accounts {
		acc, err := s.prepareAccount(companyID, group, incoming, byID)
		if err != nil {
			return nil, err
		}
		if acc.IsPersisted() {
			if removed[acc.ID()] {
				return nil, apperrors.NewValidationFailedError(
					fmt.Sprintf("account %s cannot be saved and removed at the same time", acc.ID()))
			}
			mentioned[acc.ID()] = true
		}
		upserts = append(upserts, acc)
	}

	// the group as it will look after the save
	resulting := append([]domain.Account(nil), upserts...)
	for _, acc := range existing {
		if acc.Group == group && acc.IsActive && !mentioned[acc.ID()] && !removed[acc.ID()] {
			resulting = append(resulting, acc)
		}
	}

	res, err := s.ValidateAllocations(ctx, group, resulting)
	if err != nil {
		return nil, err
	}
	if !res.IsValid {
		return nil, apperrors.NewValidationFailedError(res.Reason)
	}
	if err := s.limits.CheckCustomCapacity(resulting, group); err != nil {
		return nil, err
	}
	if res.Warning && !changes.ConfirmWarning {
		return nil, apperrors.NewConflictError(res.WarningMessage + " Confirm the allocations to save them anyway.")
	}

	for i := range upserts {
		if !upserts[i].IsPersisted() {
			id := s.newID()
			upserts[i].AccountID = &id
		}
	}
	removedIDs := make([]string, 0, len(removed))
	for id := range removed {
		removedIDs = append(removedIDs, id)
	}
	slices.Sort(removedIDs)

	if err := s.accountRepo.SaveAllocations(ctx, companyID, upserts, removedIDs); err != nil {
		s.LogError(ctx, err, "Failed to save allocations",
			slog.String("company_id", companyID),
			slog.String("group", string(group)))
		return nil, err
	}

	s.LogInfo(ctx, "Allocations saved successfully",
		slog.String("company_id", companyID),
		slog.String("group", string(group)),
		slog.Int("upserted", len(upserts)),
		slog.Int("deactivated", len(removedIDs)),
		slog.String("total_percent", res.TotalPercent.String()))

	return s.listActive(ctx, companyID)
}

// prepareAccount normalizes one submitted account: fixed accounts keep their
// blueprint name, percentages are clamped and rounded, names are trimmed.
func (s *accountService) prepareAccount(companyID string, group domain.AccountGroup, acc domain.Account, existing map[string]domain.Account) (domain.Account, error) {
	if !acc.Type.IsValid() {
		return acc, apperrors.NewValidationFailedError(fmt.Sprintf("unknown account type %q", acc.Type))
	}
	if acc.Group != "" && acc.Group != group {
		return acc, apperrors.NewValidationFailedError(
			fmt.Sprintf("account %q belongs to the %s group, not %s", acc.Name, acc.Group, group))
	}
	acc.CompanyID = companyID
	acc.Group = group
	acc.IsActive = true
	acc.AllocationPercent = allocation.RoundPercent(allocation.ClampPercent(acc.AllocationPercent))
	acc.Name = strings.TrimSpace(acc.Name)

	if acc.IsCustom() {
		if acc.Description == "" && !acc.IsPersisted() {
			acc.Description = allocation.DefaultCustomDescription(group)
		}
	} else {
		tpl, ok := domain.LookupTemplate(acc.Type)
		if !ok || tpl.Group != group {
			return acc, apperrors.NewValidationFailedError(
				fmt.Sprintf("%s accounts cannot be saved in the %s group", acc.Type, group))
		}
		acc.Name = tpl.Label
		acc.Description = tpl.Description
		acc.CustomPosition = nil
	}

	if acc.IsPersisted() {
		prev, ok := existing[acc.ID()]
		if !ok {
			return acc, apperrors.NewNotFoundError(fmt.Sprintf("account %s not found", acc.ID()))
		}
		if prev.Type != acc.Type {
			return acc, apperrors.NewValidationFailedError(
				fmt.Sprintf("account %s cannot change type from %s to %s", acc.ID(), prev.Type, acc.Type))
		}
		if acc.IsCustom() && acc.Description == "" {
			acc.Description = prev.Description
		}
	}
	return acc, nil
}

func (s *accountService) NextCustomAccount(ctx context.Context, companyID string, group domain.AccountGroup, userID string) (*domain.Account, error) {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.ActionEdit); err != nil {
		return nil, err
	}

	accounts, err := s.accountRepo.ListAccountsByCompany(ctx, companyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load accounts for custom account",
			slog.String("company_id", companyID))
		return nil, err
	}

	acc, err := s.limits.NextCustomAccount(group, accounts)
	if err != nil {
		s.LogDebug(ctx, "Custom account not available",
			slog.String("company_id", companyID),
			slog.String("group", string(group)),
			slog.String("error", err.Error()))
		return nil, err
	}
	acc.CompanyID = companyID
	return &acc, nil
}

func (s *accountService) InitializeCompanyAccounts(ctx context.Context, companyID string, userID string) ([]domain.Account, error) {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.ActionEdit); err != nil {
		return nil, err
	}

	existing, err := s.accountRepo.ListAccountsByCompany(ctx, companyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load accounts for initialization",
			slog.String("company_id", companyID))
		return nil, err
	}

	missing := allocation.MissingFixedAccounts(companyID, existing)
	if len(missing) == 0 {
		s.LogDebug(ctx, "Company accounts already initialized",
			slog.String("company_id", companyID))
		return []domain.Account{}, nil
	}
	for i := range missing {
		id := s.newID()
		missing[i].AccountID = &id
	}

	created, err := s.accountRepo.UpsertAccounts(ctx, missing)
	if err != nil {
		s.LogError(ctx, err, "Failed to create blueprint accounts",
			slog.String("company_id", companyID))
		return nil, err
	}

	s.LogInfo(ctx, "Blueprint accounts created",
		slog.String("company_id", companyID),
		slog.Int("count", len(created)))
	return created, nil
}
