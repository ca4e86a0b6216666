package web

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"go-hr-website/internal/delivery/http/middleware"
	"go-hr-website/internal/delivery/http/response"
	"go-hr-website/internal/domain"
	"go-hr-website/pkg/apperror"
	"go-hr-website/pkg/security"

	"github.com/gin-gonic/gin"
)

type CareerHandler struct {
	careerUC            domain.CareerUsecase
	maxResumeBytes      int64
	notificationTimeout time.Duration
}

// NewCareerHandler registers the career form routes
func NewCareerHandler(r gin.IRouter, careerUC domain.CareerUsecase, limiter gin.HandlerFunc, maxResumeBytes int64, notificationTimeout time.Duration) {
	handler := &CareerHandler{
		careerUC:            careerUC,
		maxResumeBytes:      maxResumeBytes,
		notificationTimeout: notificationTimeout,
	}

	r.GET("/career", handler.ShowForm)
	r.POST("/career", limiter, handler.SubmitApplication)
	r.POST("/career/field", handler.UpdateField)
	r.POST("/career/resume", handler.UpdateResume)
	r.POST("/career/notification/dismiss", handler.DismissNotification)
}

// careerView is the JSON shape of a form state
type careerView struct {
	Values       map[string]string   `json:"values"`
	Resume       string              `json:"resume,omitempty"`
	Errors       map[string]string   `json:"errors"`
	Submitting   bool                `json:"submitting"`
	ButtonLabel  string              `json:"button_label"`
	Notification domain.Notification `json:"notification"`
}

func newCareerView(s domain.CareerFormState) careerView {
	return careerView{
		Values:       s.Values,
		Resume:       s.ResumeName,
		Errors:       s.Errors,
		Submitting:   s.Submitting,
		ButtonLabel:  s.ButtonLabel(),
		Notification: s.Notification,
	}
}

// fieldUpdate is the body of a live validation request
type fieldUpdate struct {
	Field string `form:"field" json:"field" binding:"required"`
	Value string `form:"value" json:"value"`
}

func (h *CareerHandler) ShowForm(c *gin.Context) {
	state := h.careerUC.View(sessionID(c))
	if response.WantsJSON(c) {
		response.Success(c, http.StatusOK, "Career form", newCareerView(state))
		return
	}
	c.HTML(http.StatusOK, "career.html", pageData(c, "Career", gin.H{
		"Intro":          careerIntro,
		"State":          state,
		"Accept":         strings.Join(security.AllowedExtensions(), ","),
		"MaxResumeMB":    h.maxResumeBytes >> 20,
		"NotificationMS": h.notificationTimeout.Milliseconds(),
	}))
}

// UpdateField stores one field value and returns the field errors
func (h *CareerHandler) UpdateField(c *gin.Context) {
	var req fieldUpdate
	if err := c.ShouldBind(&req); err != nil {
		c.Error(apperror.BadRequest("field is required"))
		return
	}

	errs, err := h.careerUC.SetField(sessionID(c), req.Field, req.Value)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Field updated", gin.H{"errors": errs})
}

// UpdateResume checks a resume as soon as it is picked and returns the field errors
func (h *CareerHandler) UpdateResume(c *gin.Context) {
	fh, err := c.FormFile(domain.FieldResume)
	if err != nil {
		c.Error(apperror.BadRequest("resume is required"))
		return
	}
	file, err := readResume(fh, h.maxResumeBytes)
	if err != nil {
		c.Error(apperror.BadRequest("The resume could not be read"))
		return
	}

	sid := sessionID(c)
	if err := h.careerUC.AttachResume(c.Request.Context(), sid, file); err != nil && !isValidation(err) {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Resume updated", gin.H{"errors": h.careerUC.View(sid).Errors})
}

// SubmitApplication receives the multipart career form and sends it on
func (h *CareerHandler) SubmitApplication(c *gin.Context) {
	sid := sessionID(c)

	for _, field := range domain.TextFields {
		if _, err := h.careerUC.SetField(sid, field, c.PostForm(field)); err != nil {
			c.Error(err)
			return
		}
	}

	fh, err := c.FormFile(domain.FieldResume)
	switch {
	case err == nil:
		file, err := readResume(fh, h.maxResumeBytes)
		if err != nil {
			c.Error(apperror.BadRequest("The resume could not be read"))
			return
		}
		// A refused file is recorded on the form and surfaces with the
		// other field errors when Submit validates.
		if err := h.careerUC.AttachResume(c.Request.Context(), sid, file); err != nil && !isValidation(err) {
			c.Error(err)
			return
		}
	case !errors.Is(err, http.ErrMissingFile):
		c.Error(apperror.BadRequest("Invalid upload"))
		return
	}

	// The upload runs to completion even if the browser goes away.
	ctx := context.WithoutCancel(c.Request.Context())
	state, err := h.careerUC.Submit(ctx, sid)
	if err != nil {
		if isValidation(err) && !response.WantsJSON(c) {
			c.Redirect(http.StatusSeeOther, "/career")
			return
		}
		c.Error(err)
		return
	}

	if response.WantsJSON(c) {
		response.Success(c, http.StatusOK, state.Notification.Message, newCareerView(state))
		return
	}
	c.Redirect(http.StatusSeeOther, "/career")
}

// DismissNotification hides the status message before its timeout
func (h *CareerHandler) DismissNotification(c *gin.Context) {
	h.careerUC.DismissNotification(sessionID(c))
	if response.WantsJSON(c) {
		response.Success(c, http.StatusOK, "Notification dismissed", nil)
		return
	}
	c.Redirect(http.StatusSeeOther, "/career")
}

func readResume(fh *multipart.FileHeader, maxBytes int64) (*domain.ResumeFile, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open resume: %w", err)
	}
	defer f.Close()

	// One byte past the limit is enough for the inspector to refuse it.
	data, err := io.ReadAll(io.LimitReader(f, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read resume: %w", err)
	}
	return &domain.ResumeFile{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func isValidation(err error) bool {
	var appErr *apperror.AppError
	return errors.As(err, &appErr) && appErr.Code == http.StatusUnprocessableEntity
}

func sessionID(c *gin.Context) string {
	return c.GetString(middleware.SessionIDKey)
}
