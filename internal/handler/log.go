package handler

import (
	"net/http"
	"time"

	"finance-tracker/internal/store"
	"finance-tracker/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// LogHandler serves the caller's audit trail.
type LogHandler struct {
	Store    *store.Logs
	Defaults store.Query
	MaxLimit int
	Log      *logrus.Logger
}

func NewLogHandler(s *store.Logs, defaultLimit, maxLimit int, log *logrus.Logger) *LogHandler {
	return &LogHandler{
		Store:    s,
		Defaults: store.Query{Page: 1, Limit: defaultLimit},
		MaxLimit: maxLimit,
		Log:      log,
	}
}

type auditLogResp struct {
	ID        uint      `json:"id"`
	Method    string    `json:"method"`
	Path      string    `json:"path"`
	Action    string    `json:"action"`
	IP        string    `json:"ip"`
	UserAgent string    `json:"user_agent"`
	CreatedAt time.Time `json:"created_at"`
}

// List returns one page of the caller's audit records, newest first.
// GET /api/logs?page&limit
func (h *LogHandler) List(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	q := parseListQuery(c).Normalize(h.Defaults, h.MaxLimit)

	items, total, err := h.Store.List(c.Request.Context(), user.ID, q)
	if err != nil {
		h.Log.WithError(err).Error("list audit logs")
		util.Error(c, http.StatusInternalServerError, "Server error")
		return
	}

	resp := make([]auditLogResp, 0, len(items))
	for _, l := range items {
		resp = append(resp, auditLogResp{
			ID:        l.ID,
			Method:    l.Method,
			Path:      l.Path,
			Action:    l.Action,
			IP:        l.IP,
			UserAgent: l.UserAgent,
			CreatedAt: l.CreatedAt,
		})
	}

	util.Success(c, http.StatusOK, util.Response{
		"count":      len(resp),
		"total":      total,
		"data":       resp,
		"pagination": pagination(q, total),
	})
}
