package services

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/SscSPs/profit_first_app/internal/apperrors"
	"github.com/SscSPs/profit_first_app/internal/core/domain"
	portsrepo "github.com/SscSPs/profit_first_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/profit_first_app/internal/core/ports/services"
	"go.uber.org/multierr"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Messages recorded in WorkspaceResult.Errors, one per failing lookup.
const (
	msgCompanyMembershipsFailed = "Unable to load company memberships."
	msgAssignedCompaniesFailed  = "Unable to load assigned companies."
	msgFirmMembershipsFailed    = "Unable to load firm memberships."
	msgFirmCompaniesFailed      = "Unable to load companies for your firm memberships."
	msgDemoCompaniesFailed      = "Unable to load demo workspaces."
)

const unknownDateLabel = "—"

// workspaceService implements the WorkspaceSvcFacade interface
type workspaceService struct {
	BaseService
	workspaceRepo portsrepo.WorkspaceRepositoryFacade
}

// NewWorkspaceService creates a new workspace service with the provided dependencies
func NewWorkspaceService(workspaceRepo portsrepo.WorkspaceRepositoryFacade) portssvc.WorkspaceSvcFacade {
	return &workspaceService{
		workspaceRepo: workspaceRepo,
	}
}

// Ensure workspaceService implements the WorkspaceSvcFacade interface
var _ portssvc.WorkspaceSvcFacade = (*workspaceService)(nil)

// mergeAccessLevel keeps the level already known for a company and only
// falls back to the incoming one when there was none.
func mergeAccessLevel(existing, incoming *domain.PlatformRole) *domain.PlatformRole {
	if existing != nil {
		return existing
	}
	return incoming
}

// formatActiveSince renders a month and year such as "January 2023".
func formatActiveSince(t *time.Time) string {
	if t == nil || t.IsZero() {
		return unknownDateLabel
	}
	return t.Format("January 2006")
}

func toWorkspace(c domain.Company, access *domain.PlatformRole) domain.Workspace {
	wsType := domain.WorkspaceClient
	if c.IsDemo {
		wsType = domain.WorkspaceDemo
	}
	return domain.Workspace{
		ID:          c.CompanyID,
		Name:        c.Name,
		Type:        wsType,
		ActiveSince: formatActiveSince(c.ActiveSince),
		AccessLevel: access,
		Description: c.Description,
		FirmID:      c.FirmID,
	}
}

// workspaceSet is an insertion ordered map of workspaces keyed by company id.
type workspaceSet struct {
	order []string
	byID  map[string]domain.Workspace
}

func newWorkspaceSet() *workspaceSet {
	return &workspaceSet{byID: make(map[string]domain.Workspace)}
}

// upsert stores ws, refreshing the descriptive fields of an existing entry
// while its access level wins over the incoming one.
func (s *workspaceSet) upsert(ws domain.Workspace) {
	existing, ok := s.byID[ws.ID]
	if !ok {
		s.order = append(s.order, ws.ID)
		s.byID[ws.ID] = ws
		return
	}
	ws.AccessLevel = mergeAccessLevel(existing.AccessLevel, ws.AccessLevel)
	s.byID[ws.ID] = ws
}

func (s *workspaceSet) retain(keep map[string]bool) {
	order := s.order[:0]
	for _, id := range s.order {
		if keep[id] {
			order = append(order, id)
			continue
		}
		delete(s.byID, id)
	}
	s.order = order
}

// sorted lists the workspaces by name, ignoring case.
func (s *workspaceSet) sorted() []domain.Workspace {
	out := make([]domain.Workspace, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	col := collate.New(language.English, collate.IgnoreCase)
	slices.SortStableFunc(out, func(a, b domain.Workspace) int {
		return col.CompareString(a.Name, b.Name)
	})
	return out
}

// resolution accumulates the state of one ResolveWorkspaces call.
type resolution struct {
	assigned *workspaceSet
	demos    *workspaceSet

	membershipAccess map[string]domain.PlatformRole
	firmAccess       map[string]domain.PlatformRole
	ownedCompanyIDs  map[string]bool
	restricted       bool

	messages []string
	failures error
}

func (r *resolution) place(c domain.Company, access *domain.PlatformRole) {
	ws := toWorkspace(c, access)
	if c.IsDemo {
		r.demos.upsert(ws)
		return
	}
	r.assigned.upsert(ws)
}

// accessFor is the direct membership level when present, else the firm role.
func (r *resolution) accessFor(c domain.Company) *domain.PlatformRole {
	if role, ok := r.membershipAccess[c.CompanyID]; ok {
		return &role
	}
	if role, ok := r.firmAccess[c.FirmKey()]; ok {
		return &role
	}
	return nil
}

func (s *workspaceService) recordFailure(ctx context.Context, r *resolution, step, message, userID string, err error) {
	s.LogError(ctx, err, message,
		slog.String("user_id", userID),
		slog.String("step", step))
	workspaceLookupFailures.WithLabelValues(step).Inc()
	r.messages = append(r.messages, message)
	r.failures = multierr.Append(r.failures, apperrors.NewLookupError(message, err))
}

// ResolveWorkspaces merges direct company memberships, firm memberships and
// the platform demo catalog into the workspaces userID may act on.
func (s *workspaceService) ResolveWorkspaces(ctx context.Context, userID string, expectedRole *domain.PlatformRole) domain.WorkspaceResult {
	r := &resolution{
		assigned:         newWorkspaceSet(),
		demos:            newWorkspaceSet(),
		membershipAccess: make(map[string]domain.PlatformRole),
		firmAccess:       make(map[string]domain.PlatformRole),
		ownedCompanyIDs:  make(map[string]bool),
	}

	if userID != "" {
		r.restricted = expectedRole != nil && *expectedRole == domain.RoleCompanyOwner
		s.resolveMemberships(ctx, r, userID)
		if !r.restricted {
			s.resolveFirms(ctx, r, userID)
		}
	}

	if !r.restricted {
		s.resolveDemos(ctx, r, userID)
	}

	if r.restricted && len(r.ownedCompanyIDs) > 0 {
		r.assigned.retain(r.ownedCompanyIDs)
		r.demos.retain(r.ownedCompanyIDs)
	}

	result := domain.WorkspaceResult{
		Assigned: r.assigned.sorted(),
		Demos:    r.demos.sorted(),
		Errors:   r.messages,
	}
	if result.Errors == nil {
		result.Errors = []string{}
	}

	if r.failures != nil {
		s.LogWarn(ctx, "Workspaces resolved with lookup failures",
			slog.String("user_id", userID),
			slog.Int("failures", len(multierr.Errors(r.failures))),
			slog.String("error", r.failures.Error()))
	} else {
		s.LogDebug(ctx, "Workspaces resolved",
			slog.String("user_id", userID),
			slog.Int("assigned", len(result.Assigned)),
			slog.Int("demos", len(result.Demos)),
			slog.Bool("restricted", r.restricted))
	}
	return result
}

func (s *workspaceService) resolveMemberships(ctx context.Context, r *resolution, userID string) {
	memberships, err := s.workspaceRepo.ListCompanyMembershipsByUser(ctx, userID)
	if err != nil {
		s.recordFailure(ctx, r, "company_memberships", msgCompanyMembershipsFailed, userID, err)
		memberships = nil
	}

	roles := make(map[domain.PlatformRole]bool)
	var companyIDs []string
	for _, m := range memberships {
		if _, seen := r.membershipAccess[m.CompanyID]; !seen {
			companyIDs = append(companyIDs, m.CompanyID)
		}
		r.membershipAccess[m.CompanyID] = m.AccessLevel
		roles[m.AccessLevel] = true
		if m.AccessLevel == domain.RoleCompanyOwner {
			r.ownedCompanyIDs[m.CompanyID] = true
		}
	}
	if len(roles) > 0 {
		r.restricted = len(roles) == 1 && roles[domain.RoleCompanyOwner]
	}

	if len(companyIDs) == 0 {
		return
	}
	companies, err := s.workspaceRepo.ListCompaniesByIDs(ctx, companyIDs)
	if err != nil {
		s.recordFailure(ctx, r, "assigned_companies", msgAssignedCompaniesFailed, userID, err)
		return
	}
	for _, c := range companies {
		role := r.membershipAccess[c.CompanyID]
		r.place(c, &role)
	}
}

func (s *workspaceService) resolveFirms(ctx context.Context, r *resolution, userID string) {
	firmMemberships, err := s.workspaceRepo.ListFirmMembershipsByUser(ctx, userID)
	if err != nil {
		s.recordFailure(ctx, r, "firm_memberships", msgFirmMembershipsFailed, userID, err)
		return
	}

	var firmIDs []string
	for _, m := range firmMemberships {
		if _, seen := r.firmAccess[m.FirmID]; !seen {
			firmIDs = append(firmIDs, m.FirmID)
		}
		r.firmAccess[m.FirmID] = m.Role
	}
	if len(firmIDs) == 0 {
		return
	}

	companies, err := s.workspaceRepo.ListCompaniesByFirmIDs(ctx, firmIDs)
	if err != nil {
		s.recordFailure(ctx, r, "firm_companies", msgFirmCompaniesFailed, userID, err)
		return
	}
	for _, c := range companies {
		r.place(c, r.accessFor(c))
	}
}

func (s *workspaceService) resolveDemos(ctx context.Context, r *resolution, userID string) {
	companies, err := s.workspaceRepo.ListDemoCompanies(ctx)
	if err != nil {
		s.recordFailure(ctx, r, "demo_companies", msgDemoCompaniesFailed, userID, err)
		return
	}
	for _, c := range companies {
		r.demos.upsert(toWorkspace(c, r.accessFor(c)))
	}
}

// AuthorizeCompanyAction checks action against the workspaces visible to userID.
// Demo workspaces without a membership are open to everyone; elsewhere edits
// need a role that can change allocations.
func (s *workspaceService) AuthorizeCompanyAction(ctx context.Context, userID, companyID string, action domain.WorkspaceAction) (*domain.Workspace, error) {
	resolved := s.ResolveWorkspaces(ctx, userID, nil)
	ws, ok := resolved.Find(companyID)
	if !ok {
		if len(resolved.Errors) > 0 {
			return nil, apperrors.NewLookupError(resolved.Errors[0], nil)
		}
		s.LogDebug(ctx, "Company not visible to user",
			slog.String("user_id", userID),
			slog.String("company_id", companyID))
		return nil, apperrors.NewNotFoundError("company " + companyID + " not found")
	}

	switch action {
	case domain.ActionView:
		return &ws, nil
	case domain.ActionEdit:
		if ws.AccessLevel == nil {
			if ws.IsDemo() {
				return &ws, nil
			}
			return nil, s.forbid(ctx, userID, companyID, "no access level")
		}
		if !ws.AccessLevel.CanEditAllocations() {
			return nil, s.forbid(ctx, userID, companyID, string(*ws.AccessLevel))
		}
		return &ws, nil
	}
	return nil, apperrors.NewValidationFailedError("unknown workspace action " + string(action))
}

func (s *workspaceService) forbid(ctx context.Context, userID, companyID, reason string) error {
	err := apperrors.NewForbiddenError("Your role has read-only access to this company.")
	s.LogWarn(ctx, "Edit denied",
		slog.String("user_id", userID),
		slog.String("company_id", companyID),
		slog.String("reason", reason))
	return err
}
