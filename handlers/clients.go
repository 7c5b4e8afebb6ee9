package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"salonhq/models"
	"salonhq/services/client"
	"salonhq/utils"
)

// ClientHandler serves the admin client endpoints.
type ClientHandler struct {
	Svc client.ClientService
}

// NewClientHandler constructs a ClientHandler.
func NewClientHandler(svc client.ClientService) *ClientHandler {
	return &ClientHandler{Svc: svc}
}

// ListClientsHandler returns the raw stored client records.
func (h *ClientHandler) ListClientsHandler(c *gin.Context) {
	clients, err := h.Svc.List(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list clients", err.Error())
		return
	}
	c.JSON(http.StatusOK, clients)
}

// ListMergedClientsHandler returns the deduplicated view, one entry per
// normalized phone number. This is what the admin client screen renders.
func (h *ClientHandler) ListMergedClientsHandler(c *gin.Context) {
	merged, err := h.Svc.ListMerged(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to merge clients", err.Error())
		return
	}
	c.JSON(http.StatusOK, merged)
}

func (h *ClientHandler) GetClientHandler(c *gin.Context) {
	cl, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "client not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch client", err.Error())
		return
	}
	c.JSON(http.StatusOK, cl)
}

func (h *ClientHandler) CreateClientHandler(c *gin.Context) {
	var input models.Client
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid client payload", err.Error())
		return
	}
	id, err := h.Svc.Create(c.Request.Context(), input)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to create client", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *ClientHandler) UpdateClientHandler(c *gin.Context) {
	var input models.Client
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid client payload", err.Error())
		return
	}
	if err := h.Svc.Update(c.Request.Context(), c.Param("id"), input); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "client not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to update client", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}

func (h *ClientHandler) DeleteClientHandler(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "client not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete client", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
