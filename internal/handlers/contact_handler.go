package handlers

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/medsched/hospital-scheduler/internal/httperr"
	"github.com/medsched/hospital-scheduler/internal/mailer"
	"github.com/medsched/hospital-scheduler/internal/validators"
)

// ContactHandler relays contact-form submissions to the external
// email function.
type ContactHandler struct {
	mailer *mailer.Client
}

func NewContactHandler(m *mailer.Client) *ContactHandler {
	return &ContactHandler{mailer: m}
}

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

func (h *ContactHandler) Send(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if !validators.IsEmailDomainValid(req.Email) {
		httperr.BadRequest(c, "invalid_email_domain", "The e-mail domain does not look valid.")
		return
	}

	err := h.mailer.Send(c.Request.Context(), mailer.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		log.Println("contact relay failed:", err)
		httperr.Write(c, 502, "failed_to_send_message", "Could not send the message.")
		return
	}

	c.JSON(200, gin.H{"status": "sent"})
}
