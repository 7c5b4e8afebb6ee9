package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"salonhq/config"
	"salonhq/models"
	"salonhq/services/billing"
	"salonhq/utils"
)

// BillingHandler serves the admin billing endpoints.
type BillingHandler struct {
	Svc billing.BillingService
}

// NewBillingHandler constructs a BillingHandler.
func NewBillingHandler(svc billing.BillingService) *BillingHandler {
	return &BillingHandler{Svc: svc}
}

// CreateBillHandler stores a manually entered bill and returns its WhatsApp
// message link alongside the id.
func (h *BillingHandler) CreateBillHandler(c *gin.Context) {
	var input models.Bill
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid bill payload", err.Error())
		return
	}
	id, err := h.Svc.CreateBill(c.Request.Context(), input)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to create bill", err.Error())
		return
	}
	stored, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusCreated, gin.H{"id": id})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"id":           id,
		"whatsappLink": billing.BillMessageLink(*stored, config.AppConfig.BillBaseURL),
	})
}

func (h *BillingHandler) ListBillsHandler(c *gin.Context) {
	bills, err := h.Svc.List(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list bills", err.Error())
		return
	}
	c.JSON(http.StatusOK, bills)
}

func (h *BillingHandler) GetBillHandler(c *gin.Context) {
	bill, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "bill not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch bill", err.Error())
		return
	}
	c.JSON(http.StatusOK, bill)
}

func (h *BillingHandler) MarkBillPaidHandler(c *gin.Context) {
	if err := h.Svc.MarkPaid(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "bill not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to update bill", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": models.BillStatusPaid})
}

// BillPDFHandler streams the bill as a printable PDF.
func (h *BillingHandler) BillPDFHandler(c *gin.Context) {
	id := c.Param("id")
	data, err := h.Svc.RenderPDF(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "bill not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to render bill", err.Error())
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=bill-%s.pdf", id))
	c.Data(http.StatusOK, "application/pdf", data)
}
