package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/dispatch-service/internal/domain/dto"
	"github.com/guttosm/dispatch-service/internal/domain/model"
	"github.com/guttosm/dispatch-service/internal/i18n"
	"github.com/guttosm/dispatch-service/internal/service"
)

const (
	defaultAuditLimit = 100
	maxAuditLimit     = 1000
)

// AuditHandler serves the audit trail.
type AuditHandler struct {
	audit service.AuditService
}

// NewAuditHandler creates a new AuditHandler instance.
func NewAuditHandler(audit service.AuditService) *AuditHandler {
	return &AuditHandler{audit: audit}
}

// ListAudit handles GET /api/audit requests.
//
// @Summary      Query audit trail
// @Description  Returns audit entries, newest first, filtered by order, session, action and time range.
// @Tags         Audit
// @Produce      json
// @Param        order_id query string false "Order id"
// @Param        session_id query string false "Operator session id"
// @Param        action query string false "Action type" Enums(confirm, adjust_quantity, step_quantity, cancel, discard, http_error)
// @Param        start query string false "RFC 3339 lower bound"
// @Param        end query string false "RFC 3339 upper bound"
// @Param        limit query int false "Maximum entries (default 100, max 1000)"
// @Success      200 {object} dto.SuccessResponse{data=dto.AuditListResponse} "Audit entries"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid filter"
// @Failure      503 {object} dto.ErrorResponse "Audit store unavailable"
// @Security     ApiKeyAuth
// @Router       /api/audit [get]
func (h *AuditHandler) ListAudit(c *gin.Context) {
	builder := NewResponseBuilder(c)

	query, ok := auditQuery(c)
	if !ok {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, nil)
		return
	}

	entries, err := h.audit.Query(c.Request.Context(), query)
	if err != nil {
		builder.Fail(err)
		return
	}
	total, err := h.audit.Count(c.Request.Context(), query)
	if err != nil {
		builder.Fail(err)
		return
	}
	if entries == nil {
		entries = []model.AuditEntry{}
	}
	builder.SuccessOK(dto.AuditListResponse{Entries: entries, Total: total})
}

func auditQuery(c *gin.Context) (model.AuditQuery, bool) {
	q := model.AuditQuery{
		OrderID:    c.Query("order_id"),
		SessionID:  c.Query("session_id"),
		ActionType: c.Query("action"),
		Limit:      defaultAuditLimit,
	}

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			return q, false
		}
		q.Limit = min(limit, maxAuditLimit)
	}
	for param, dst := range map[string]**time.Time{"start": &q.StartTime, "end": &q.EndTime} {
		raw := c.Query(param)
		if raw == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return q, false
		}
		*dst = &t
	}
	return q, true
}
