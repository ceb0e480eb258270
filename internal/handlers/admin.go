// internal/handlers/admin.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/launchpad-backend/internal/i18n"
	"github.com/javajoker/launchpad-backend/internal/services"
	"github.com/javajoker/launchpad-backend/internal/utils"
)

type AdminHandler struct {
	auditService *services.AuditService
}

// NewAdminHandler accepts a nil service when the audit trail is disabled.
func NewAdminHandler(auditService *services.AuditService) *AdminHandler {
	return &AdminHandler{auditService: auditService}
}

// GET /admin/audit
func (h *AdminHandler) GetAuditLogs(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	if h.auditService == nil {
		utils.ErrorResponse(c, http.StatusServiceUnavailable, "AUDIT_DISABLED", i18n.T(lang, i18n.KeyAuditDisabled), nil)
		return
	}

	filter := services.AuditFilter{
		PaginationParams: utils.GetPaginationParams(c),
		ProductID:        c.Query("product_id"),
	}

	entries, total, err := h.auditService.List(c.Request.Context(), filter)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.PaginatedResponse(c, utils.CreatePaginationResult(entries, total, filter.PaginationParams))
}
