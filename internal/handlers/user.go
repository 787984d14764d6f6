package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/edevyatkin/shop-api/internal/events"
	"github.com/edevyatkin/shop-api/internal/hash"
	"github.com/edevyatkin/shop-api/internal/models"
	"github.com/edevyatkin/shop-api/internal/validation"
)

type UserHandler struct {
	DB       *gorm.DB
	Producer *events.Producer
}

func (h *UserHandler) publish(c echo.Context, event map[string]interface{}) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, "user_events", fmt.Sprint(event["userID"]), event); err != nil {
		c.Logger().Errorf("Kafka publish error: %v", err)
	}
}

func (h *UserHandler) GetUsers(c echo.Context) error {
	var users []models.User
	if err := h.DB.Order("id ASC").Find(&users).Error; err != nil {
		return persistError(c, err)
	}
	return c.JSON(http.StatusOK, users)
}

func (h *UserHandler) CreateUser(c echo.Context) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, CodeValidation, err.Error())
	}

	if missing := validation.FirstMissing(
		validation.String("e-mail", req.Email),
		validation.String("password", req.Password),
	); missing != "" {
		return validationError(c, missing)
	}

	hashed, err := hash.HashPassword(req.Password)
	if err != nil {
		return internalError(c, err)
	}

	user := models.User{Email: req.Email, Password: hashed}
	if err := h.DB.Create(&user).Error; err != nil {
		return persistError(c, err)
	}

	h.publish(c, map[string]interface{}{
		"type":   "user_created",
		"userID": user.ID,
		"email":  user.Email,
	})

	return c.JSON(http.StatusCreated, MessageResponse{
		Message: fmt.Sprintf("The user %s was created successfully", user.Email),
	})
}

func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		// a non-numeric id can never match a row
		return notFound(c, "User not found")
	}

	var req struct {
		Email string `json:"email"`
	}
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, CodeValidation, err.Error())
	}

	var user models.User
	if err := h.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "User not found")
		}
		return persistError(c, err)
	}

	// existence is checked before the body, so a missing id wins over
	// a missing e-mail
	if missing := validation.FirstMissing(validation.String("e-mail", req.Email)); missing != "" {
		return validationError(c, missing)
	}

	user.Email = req.Email
	if err := h.DB.Save(&user).Error; err != nil {
		return persistError(c, err)
	}

	h.publish(c, map[string]interface{}{
		"type":   "user_updated",
		"userID": user.ID,
		"email":  user.Email,
	})

	return c.JSON(http.StatusOK, user)
}

func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return notFound(c, "User not found")
	}

	var user models.User
	if err := h.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "User not found")
		}
		return persistError(c, err)
	}

	res := h.DB.Delete(&models.User{}, id)
	if res.Error != nil {
		return persistError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound(c, "User not found")
	}

	h.publish(c, map[string]interface{}{
		"type":   "user_deleted",
		"userID": user.ID,
		"email":  user.Email,
	})

	return c.JSON(http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("The user %s was deleted successfully", user.Email),
	})
}
