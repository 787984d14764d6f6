package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/edevyatkin/shop-api/internal/events"
	"github.com/edevyatkin/shop-api/internal/models"
	"github.com/edevyatkin/shop-api/internal/validation"
)

type ProductHandler struct {
	DB       *gorm.DB
	Producer *events.Producer
}

func (h *ProductHandler) publish(c echo.Context, event map[string]interface{}) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, "product_events", fmt.Sprint(event["productID"]), event); err != nil {
		c.Logger().Errorf("Kafka publish error: %v", err)
	}
}

func (h *ProductHandler) GetProducts(c echo.Context) error {
	var products []models.Product
	if err := h.DB.Order("id ASC").Find(&products).Error; err != nil {
		return persistError(c, err)
	}
	return c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req struct {
		Slug        string  `json:"slug"`
		Name        string  `json:"name"`
		Price       float64 `json:"price"`
		Description string  `json:"description"`
		ImageAlt    string  `json:"image_alt"`
		ImageURL    string  `json:"image_url"`
	}
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, CodeValidation, err.Error())
	}

	if missing := validation.FirstMissing(
		validation.String("slug", req.Slug),
		validation.String("name", req.Name),
		validation.Number("price", req.Price),
		validation.String("description", req.Description),
		validation.String("image_alt", req.ImageAlt),
		validation.String("image_url", req.ImageURL),
	); missing != "" {
		return validationError(c, missing)
	}

	product := models.Product{
		Slug:        req.Slug,
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		ImageAlt:    req.ImageAlt,
		ImageURL:    req.ImageURL,
	}
	if err := h.DB.Create(&product).Error; err != nil {
		return persistError(c, err)
	}

	h.publish(c, map[string]interface{}{
		"type":      "product_created",
		"productID": product.ID,
		"name":      product.Name,
	})

	return c.JSON(http.StatusCreated, MessageResponse{
		Message: fmt.Sprintf("The product %s was created successfully", product.Name),
	})
}
