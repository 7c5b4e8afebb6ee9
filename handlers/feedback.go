package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salonhq/models"
	"salonhq/services/feedback"
	"salonhq/utils"
)

// FeedbackHandler serves the public feedback form and the admin views.
type FeedbackHandler struct {
	Svc feedback.FeedbackService
}

// NewFeedbackHandler constructs a FeedbackHandler.
func NewFeedbackHandler(svc feedback.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{Svc: svc}
}

// SubmitFeedbackHandler accepts a public feedback submission.
func (h *FeedbackHandler) SubmitFeedbackHandler(c *gin.Context) {
	var input models.Feedback
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid feedback payload", err.Error())
		return
	}
	id, err := h.Svc.Submit(c.Request.Context(), input)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to submit feedback", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// ListFeedbackHandler returns all feedback, newest first.
func (h *FeedbackHandler) ListFeedbackHandler(c *gin.Context) {
	all, err := h.Svc.List(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list feedback", err.Error())
		return
	}
	c.JSON(http.StatusOK, all)
}

// FeedbackSummaryHandler returns the aggregate rating and happiness index.
func (h *FeedbackHandler) FeedbackSummaryHandler(c *gin.Context) {
	stats, err := h.Svc.Summary(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to summarize feedback", err.Error())
		return
	}
	c.JSON(http.StatusOK, stats)
}
