package services

import (
	portsrepo "github.com/SscSPs/profit_first_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/profit_first_app/internal/core/ports/services"
	"github.com/SscSPs/profit_first_app/internal/platform/config"
	"github.com/SscSPs/profit_first_app/internal/utils/allocation"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Workspace service first since the others authorize through it
	container.Workspace = NewWorkspaceService(repos.WorkspaceRepo)

	limits := allocation.Limits{
		MaxCustomMain:       cfg.MaxCustomMainAccounts,
		MaxCustomDirectCost: cfg.MaxCustomDirectCostAccounts,
	}
	thresholds := allocation.DefaultThresholds()
	thresholds.DirectCostWarningFloor = cfg.DirectCostWarningPercent

	container.Account = NewAccountService(
		repos.AccountRepo,
		WithWorkspaceAuthorizer(container.Workspace),
		WithLimits(limits),
		WithThresholds(thresholds),
	)
	container.Cadence = NewCadenceService(
		repos.CadenceRepo,
		WithCadenceAuthorizer(container.Workspace),
	)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.AccountSvcFacade   = (*accountService)(nil)
	_ portssvc.CadenceSvcFacade   = (*cadenceService)(nil)
	_ portssvc.WorkspaceSvcFacade = (*workspaceService)(nil)
)
