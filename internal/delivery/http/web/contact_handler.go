package web

import (
	"errors"
	"net/http"

	"go-hr-website/internal/delivery/http/response"
	"go-hr-website/internal/domain"
	"go-hr-website/internal/usecase"
	"go-hr-website/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact page and its message form
func NewContactHandler(r gin.IRouter, contactUC domain.ContactUsecase, limiter gin.HandlerFunc) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	r.GET("/contact", handler.ShowContact)
	r.POST("/contact", limiter, handler.SubmitContact)
}

func (h *ContactHandler) ShowContact(c *gin.Context) {
	h.render(c, http.StatusOK, domain.ContactRequest{}, "", "")
}

// SubmitContact sends a message through the contact form
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactRequest
	if err := c.ShouldBind(&req); err != nil {
		if response.WantsJSON(c) {
			c.Error(apperror.BadRequest("Please fill in every field with a valid email address"))
			return
		}
		h.render(c, http.StatusUnprocessableEntity, req, "", "Please fill in every field with a valid email address.")
		return
	}

	if err := h.contactUC.SendContactMessage(c.Request.Context(), &req); err != nil {
		if errors.Is(err, usecase.ErrContactUnavailable) {
			c.Error(apperror.Unavailable("Contact service temporarily unavailable", err))
			return
		}
		c.Error(apperror.New(http.StatusInternalServerError, "Failed to send message. Please try again later.", err))
		return
	}

	const sent = "Your message has been sent successfully!"
	if response.WantsJSON(c) {
		response.Success(c, http.StatusOK, sent, nil)
		return
	}
	h.render(c, http.StatusOK, domain.ContactRequest{}, sent, "")
}

func (h *ContactHandler) render(c *gin.Context, status int, req domain.ContactRequest, success, failure string) {
	c.HTML(status, "contact.html", pageData(c, "Contact", gin.H{
		"Address":       contactAddress,
		"Phone":         contactPhone,
		"Email":         contactEmail,
		"FormAvailable": h.contactUC.Available(),
		"Form":          req,
		"Success":       success,
		"Failure":       failure,
	}))
}
