package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	productRepo "salonhq/database/repository/product"
	"salonhq/models"
	"salonhq/utils"
)

// ProductHandler serves the admin inventory endpoints, working directly on
// the repository.
type ProductHandler struct {
	Repo productRepo.ProductRepository
}

// NewProductHandler constructs a ProductHandler.
func NewProductHandler(repo productRepo.ProductRepository) *ProductHandler {
	return &ProductHandler{Repo: repo}
}

// ListProductsHandler returns inventory with each item's low-stock flag.
func (h *ProductHandler) ListProductsHandler(c *gin.Context) {
	products, err := h.Repo.GetAll(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list products", err.Error())
		return
	}

	type productView struct {
		models.Product
		LowStock bool `json:"lowStock"`
	}
	views := make([]productView, 0, len(products))
	for i := range products {
		views = append(views, productView{Product: products[i], LowStock: products[i].LowStock()})
	}
	c.JSON(http.StatusOK, views)
}

func (h *ProductHandler) CreateProductHandler(c *gin.Context) {
	var input models.Product
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid product payload", err.Error())
		return
	}
	if input.Name == "" {
		utils.JSONError(c, http.StatusBadRequest, "product name is required", "")
		return
	}
	id, err := h.Repo.Create(c.Request.Context(), input)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create product", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// UpdateProductQuantityHandler sets a product's stock level after a recount
// or restock.
func (h *ProductHandler) UpdateProductQuantityHandler(c *gin.Context) {
	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid quantity payload", err.Error())
		return
	}
	if input.Quantity < 0 {
		utils.JSONError(c, http.StatusBadRequest, "quantity cannot be negative", "")
		return
	}
	if err := h.Repo.UpdateQuantity(c.Request.Context(), c.Param("id"), input.Quantity); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "product not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to update quantity", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}

func (h *ProductHandler) DeleteProductHandler(c *gin.Context) {
	if err := h.Repo.DeleteByID(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "product not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete product", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
