package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/profit_first_app/internal/core/domain"
	portssvc "github.com/SscSPs/profit_first_app/internal/core/ports/services"
	"github.com/SscSPs/profit_first_app/internal/dto"
	"github.com/SscSPs/profit_first_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// workspaceHandler serves the workspace picker and the static catalogs.
type workspaceHandler struct {
	workspaceService portssvc.WorkspaceResolverSvc
}

func newWorkspaceHandler(ws portssvc.WorkspaceResolverSvc) *workspaceHandler {
	return &workspaceHandler{workspaceService: ws}
}

// RegisterWorkspaceRoutes registers the workspace routes on rg. The caller
// decides which auth middleware guards the group.
func RegisterWorkspaceRoutes(rg *gin.RouterGroup, workspaceService portssvc.WorkspaceResolverSvc) {
	h := newWorkspaceHandler(workspaceService)

	rg.GET("/workspaces", h.listWorkspaces)
	rg.GET("/roles", h.listRoles)
	rg.GET("/blueprint", h.getBlueprint)
}

// listWorkspaces resolves the companies the caller can open. Anonymous
// callers get the demo workspaces only. Partial lookup failures still answer
// 200 with the messages in errors.
func (h *workspaceHandler) listWorkspaces(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListWorkspacesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		handleBindError(c, logger, err)
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	logger = logger.With(slog.String("user_id", userID))
	logger.Info("Received request to list workspaces")

	result := h.workspaceService.ResolveWorkspaces(c.Request.Context(), userID, params.Role())
	if len(result.Errors) > 0 {
		logger.Warn("Workspaces resolved with errors", slog.Int("error_count", len(result.Errors)))
	}
	c.JSON(http.StatusOK, dto.ToListWorkspacesResponse(result))
}

// listRoles handles GET /roles.
func (h *workspaceHandler) listRoles(c *gin.Context) {
	c.JSON(http.StatusOK, dto.RolesResponse{Roles: domain.RoleDefinitions()})
}

// getBlueprint handles GET /blueprint.
// Lists the fixed account templates in blueprint order.
func (h *workspaceHandler) getBlueprint(c *gin.Context) {
	c.JSON(http.StatusOK, dto.BlueprintResponse{Accounts: domain.Blueprint()})
}
