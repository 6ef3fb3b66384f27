package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/profit_first_app/internal/apperrors"
	"github.com/SscSPs/profit_first_app/internal/core/domain"
	portssvc "github.com/SscSPs/profit_first_app/internal/core/ports/services"
	"github.com/SscSPs/profit_first_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests related to Profit First accounts.
type accountHandler struct {
	accountService   portssvc.AccountSvcFacade
	workspaceService portssvc.WorkspaceAuthorizerSvc
}

func newAccountHandler(as portssvc.AccountSvcFacade, ws portssvc.WorkspaceAuthorizerSvc) *accountHandler {
	return &accountHandler{
		accountService:   as,
		workspaceService: ws,
	}
}

// RegisterAccountRoutes registers the account routes on a company scoped group.
func RegisterAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade, workspaceService portssvc.WorkspaceAuthorizerSvc) {
	h := newAccountHandler(accountService, workspaceService)

	accounts := rg.Group("/accounts")
	{
		accounts.GET("", h.listAccounts)
		accounts.POST("/validate", h.validateAllocations)
		accounts.POST("/initialize", h.initializeAccounts)
		accounts.PUT("/:group", h.saveAllocations)
		accounts.POST("/:group/custom", h.nextCustomAccount)
	}
}

// listAccounts handles GET /accounts.
// Returns the active accounts in display order with each group's validation result.
func (h *accountHandler) listAccounts(c *gin.Context) {
	scope, ok := resolveScope(c)
	if !ok {
		return
	}
	scope.logger.Info("Received request to list accounts")

	accounts, err := h.accountService.ListAccounts(c.Request.Context(), scope.companyID, scope.userID)
	if err != nil {
		handleServiceError(c, scope.logger, err, "Failed to list accounts")
		return
	}
	c.JSON(http.StatusOK, dto.ToListAccountsResponse(accounts))
}

// validateAllocations handles POST /accounts/validate.
// Checks a proposed group without saving it. A rule
// violation is a normal outcome reported in the body, not an error status.
func (h *accountHandler) validateAllocations(c *gin.Context) {
	scope, ok := resolveScope(c)
	if !ok {
		return
	}

	var req dto.ValidateAllocationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, scope.logger, err)
		return
	}

	if _, err := h.workspaceService.AuthorizeCompanyAction(c.Request.Context(), scope.userID, scope.companyID, domain.ActionView); err != nil {
		handleServiceError(c, scope.logger, err, "Caller may not view company")
		return
	}

	res, err := h.accountService.ValidateAllocations(c.Request.Context(), req.Group, req.ToDomainAccounts(scope.companyID))
	if err != nil && !errors.Is(err, apperrors.ErrValidation) {
		handleServiceError(c, scope.logger, err, "Failed to validate allocations")
		return
	}
	c.JSON(http.StatusOK, dto.ToAllocationResultResponse(res))
}

// saveAllocations handles PUT /accounts/:group.
// Upserts the submitted accounts and deactivates removedIds in one transaction.
// An unconfirmed direct cost warning answers 409.
func (h *accountHandler) saveAllocations(c *gin.Context) {
	scope, ok := resolveScope(c)
	if !ok {
		return
	}
	group, ok := bindGroup(c, scope.logger)
	if !ok {
		return
	}

	var req dto.SaveAllocationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, scope.logger, err)
		return
	}

	logger := scope.logger.With(slog.String("group", string(group)))
	logger.Info("Received request to save allocations",
		slog.Int("account_count", len(req.Accounts)),
		slog.Int("removed_count", len(req.RemovedIDs)))

	accounts, err := h.accountService.SaveAllocations(c.Request.Context(), scope.companyID, group,
		req.ToChangeSet(scope.companyID, group), scope.userID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to save allocations")
		return
	}
	c.JSON(http.StatusOK, dto.ToListAccountsResponse(accounts))
}

// nextCustomAccount handles POST /accounts/:group/custom.
// Returns the unsaved custom account the dashboard adds next.
func (h *accountHandler) nextCustomAccount(c *gin.Context) {
	scope, ok := resolveScope(c)
	if !ok {
		return
	}
	group, ok := bindGroup(c, scope.logger)
	if !ok {
		return
	}

	account, err := h.accountService.NextCustomAccount(c.Request.Context(), scope.companyID, group, scope.userID)
	if err != nil {
		handleServiceError(c, scope.logger, err, "Failed to build custom account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(*account))
}

// initializeAccounts handles POST /accounts/initialize.
// Creates the missing required blueprint accounts; 201 when any were created.
func (h *accountHandler) initializeAccounts(c *gin.Context) {
	scope, ok := resolveScope(c)
	if !ok {
		return
	}
	scope.logger.Info("Received request to initialize accounts")

	created, err := h.accountService.InitializeCompanyAccounts(c.Request.Context(), scope.companyID, scope.userID)
	if err != nil {
		handleServiceError(c, scope.logger, err, "Failed to initialize accounts")
		return
	}

	resp := make([]dto.AccountResponse, 0, len(created))
	for _, acc := range created {
		resp = append(resp, dto.ToAccountResponse(acc))
	}
	status := http.StatusOK
	if len(created) > 0 {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"created": resp})
}

// bindGroup reads the :group path segment, answering 400 when it is unknown.
func bindGroup(c *gin.Context, logger *slog.Logger) (domain.AccountGroup, bool) {
	group, err := domain.ParseAccountGroup(c.Param("group"))
	if err != nil {
		logger.Warn("Invalid account group in path", slog.String("group", c.Param("group")))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return "", false
	}
	return group, true
}
