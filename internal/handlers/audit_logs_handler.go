package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/medsched/hospital-scheduler/internal/httperr"
	"github.com/medsched/hospital-scheduler/internal/infra/cache"
	"github.com/medsched/hospital-scheduler/internal/middleware"
	"github.com/medsched/hospital-scheduler/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	db     *gorm.DB
	emails *cache.EmailResolver
}

func NewAuditLogsHandler(db *gorm.DB, emails *cache.EmailResolver) *AuditLogsHandler {
	return &AuditLogsHandler{db: db, emails: emails}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	caller := middleware.Caller(c)
	if !caller.CanViewAuditLogs() {
		httperr.Forbidden(c, "forbidden", "Audit logs are restricted.")
		return
	}

	action := c.Query("action")
	table := c.Query("table")
	fromStr := c.Query("from")
	toStr := c.Query("to")

	pageStr := c.DefaultQuery("page", "1")
	limitStr := c.DefaultQuery("limit", "50")

	page, _ := strconv.Atoi(pageStr)
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(limitStr)
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	offset := (page - 1) * limit

	// --------------------------------------------------
	// Optional filters
	// --------------------------------------------------

	q := h.db.Model(&models.AuditLog{})

	if action != "" {
		q = q.Where("action = ?", action)
	}

	if table != "" {
		q = q.Where("table_name = ?", table)
	}

	if fromStr != "" {
		if from, err := time.Parse("2006-01-02", fromStr); err == nil {
			q = q.Where("created_at >= ?", from)
		}
	}

	if toStr != "" {
		if to, err := time.Parse("2006-01-02", toStr); err == nil {
			q = q.Where("created_at <= ?", to.Add(24*time.Hour))
		}
	}

	// --------------------------------------------------
	// Total + page
	// --------------------------------------------------

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "audit_count_failed", "Could not count audit logs.")
		return
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error; err != nil {

		httperr.Internal(c, "audit_list_failed", "Could not load audit logs.")
		return
	}

	// --------------------------------------------------
	// Actor emails (not denormalized into the log rows)
	// --------------------------------------------------

	ids := make([]string, 0, len(logs))
	for _, l := range logs {
		if l.UserID != nil {
			ids = append(ids, *l.UserID)
		}
	}
	emails := h.emails.Resolve(c.Request.Context(), ids)

	c.JSON(200, gin.H{
		"page":        page,
		"limit":       limit,
		"total":       total,
		"logs":        logs,
		"user_emails": emails,
	})
}
