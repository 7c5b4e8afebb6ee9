package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"salonhq/models"
	"salonhq/services/catalog"
	"salonhq/utils"
)

// CatalogHandler serves the service catalog, both the public menu and the
// admin management endpoints.
type CatalogHandler struct {
	Svc catalog.CatalogService
}

// NewCatalogHandler constructs a CatalogHandler.
func NewCatalogHandler(svc catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{Svc: svc}
}

// ListServicesHandler returns the full service menu. Public.
func (h *CatalogHandler) ListServicesHandler(c *gin.Context) {
	services, err := h.Svc.List(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list services", err.Error())
		return
	}
	c.JSON(http.StatusOK, services)
}

func (h *CatalogHandler) GetServiceHandler(c *gin.Context) {
	svc, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "service not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch service", err.Error())
		return
	}
	c.JSON(http.StatusOK, svc)
}

func (h *CatalogHandler) CreateServiceHandler(c *gin.Context) {
	var input models.Service
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid service payload", err.Error())
		return
	}
	id, err := h.Svc.Create(c.Request.Context(), input)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to create service", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *CatalogHandler) UpdateServiceHandler(c *gin.Context) {
	var input models.Service
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid service payload", err.Error())
		return
	}
	if err := h.Svc.Update(c.Request.Context(), c.Param("id"), input); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "service not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to update service", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}

func (h *CatalogHandler) DeleteServiceHandler(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "service not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete service", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
