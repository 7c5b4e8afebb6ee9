package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	staffRepo "salonhq/database/repository/staff"
	"salonhq/models"
	"salonhq/utils"
)

// StaffHandler serves the admin staff endpoints. Staff management is plain
// CRUD plus a balance adjustment, so the handler works on the repository
// directly.
type StaffHandler struct {
	Repo staffRepo.StaffRepository
}

// NewStaffHandler constructs a StaffHandler.
func NewStaffHandler(repo staffRepo.StaffRepository) *StaffHandler {
	return &StaffHandler{Repo: repo}
}

func (h *StaffHandler) ListStaffHandler(c *gin.Context) {
	staff, err := h.Repo.GetAll(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list staff", err.Error())
		return
	}
	c.JSON(http.StatusOK, staff)
}

func (h *StaffHandler) CreateStaffHandler(c *gin.Context) {
	var input models.Staff
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid staff payload", err.Error())
		return
	}
	if input.Name == "" {
		utils.JSONError(c, http.StatusBadRequest, "staff name is required", "")
		return
	}
	id, err := h.Repo.Create(c.Request.Context(), input)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create staff member", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// UpdateStaffBalanceHandler adjusts a staff member's running balance by a
// signed delta (tips, advances, settlements).
func (h *StaffHandler) UpdateStaffBalanceHandler(c *gin.Context) {
	var input struct {
		Delta float64 `json:"delta"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid balance payload", err.Error())
		return
	}
	if err := h.Repo.UpdateBalance(c.Request.Context(), c.Param("id"), input.Delta); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "staff member not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to update balance", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}

func (h *StaffHandler) DeleteStaffHandler(c *gin.Context) {
	if err := h.Repo.DeleteByID(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "staff member not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete staff member", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
