package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	domainagg "github.com/yungbote/restaurants-backend/internal/domain/aggregates"
	domain "github.com/yungbote/restaurants-backend/internal/domain/restaurants"
	"github.com/yungbote/restaurants-backend/internal/http/response"
	"github.com/yungbote/restaurants-backend/internal/modules/restaurants/validation"
	"github.com/yungbote/restaurants-backend/internal/platform/ctxutil"
	"github.com/yungbote/restaurants-backend/internal/platform/logger"
	"github.com/yungbote/restaurants-backend/internal/services"
)

type RestaurantHandler struct {
	log         *logger.Logger
	restaurants services.RestaurantService
	validator   *validation.Validator
}

func NewRestaurantHandler(log *logger.Logger, restaurants services.RestaurantService, validator *validation.Validator) *RestaurantHandler {
	if validator == nil {
		validator = validation.New()
	}
	return &RestaurantHandler{
		log:         log.With("handler", "RestaurantHandler"),
		restaurants: restaurants,
		validator:   validator,
	}
}

// GET /api/restaurants
func (h *RestaurantHandler) List(c *gin.Context) {
	views, err := h.restaurants.ListAll(c.Request.Context())
	if err != nil {
		h.log.Error("list restaurants failed", append(ctxutil.LogFields(c.Request.Context()), "error", err)...)
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, views)
}

// GET /api/restaurants/:id
func (h *RestaurantHandler) Get(c *gin.Context) {
	id, ok := parseRestaurantID(c)
	if !ok {
		return
	}
	view, err := h.restaurants.GetByID(c.Request.Context(), id)
	if err != nil {
		h.log.Error("get restaurant failed", append(ctxutil.LogFields(c.Request.Context()), "restaurant_id", id, "error", err)...)
		response.RespondAPIError(c, err)
		return
	}
	if view == nil {
		response.RespondAPIError(c, domainagg.NotFound("Restaurant.GetByID", "Restaurant", id))
		return
	}
	response.RespondOK(c, view)
}

// POST /api/restaurants
func (h *RestaurantHandler) Create(c *gin.Context) {
	in, ok := h.bindInput(c)
	if !ok {
		return
	}
	id, err := h.restaurants.Create(c.Request.Context(), in)
	if err != nil {
		h.log.Error("create restaurant failed", append(ctxutil.LogFields(c.Request.Context()), "error", err)...)
		response.RespondOperationFailed(c, "An error occurred while creating the restaurant", err)
		return
	}
	c.Header("Location", fmt.Sprintf("/api/restaurants/%d", id))
	c.JSON(http.StatusCreated, id)
}

// PUT /api/restaurants/:id
func (h *RestaurantHandler) Update(c *gin.Context) {
	id, ok := parseRestaurantID(c)
	if !ok {
		return
	}
	in, ok := h.bindInput(c)
	if !ok {
		return
	}
	if err := h.restaurants.Update(c.Request.Context(), id, in); err != nil {
		h.writeFailure(c, "An error occurred while updating the restaurant", id, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DELETE /api/restaurants/:id
func (h *RestaurantHandler) Delete(c *gin.Context) {
	id, ok := parseRestaurantID(c)
	if !ok {
		return
	}
	if err := h.restaurants.Delete(c.Request.Context(), id); err != nil {
		h.writeFailure(c, "An error occurred while deleting the restaurant", id, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *RestaurantHandler) writeFailure(c *gin.Context, message string, id uint, err error) {
	if domainagg.IsNotFound(err) {
		response.RespondAPIError(c, err)
		return
	}
	h.log.Error(message, append(ctxutil.LogFields(c.Request.Context()), "restaurant_id", id, "error", err)...)
	response.RespondOperationFailed(c, message, err)
}

// bindInput decodes and validates the request body, writing a 400 on failure.
func (h *RestaurantHandler) bindInput(c *gin.Context) (domain.CreateRestaurantInput, bool) {
	var in domain.CreateRestaurantInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return in, false
	}
	if violations := h.validator.ValidateRestaurantInput(in); len(violations) > 0 {
		response.RespondErrorDetails(c, http.StatusBadRequest, string(violations.Code()), violations, violations.ByField())
		return in, false
	}
	return in, true
}

func parseRestaurantID(c *gin.Context) (uint, bool) {
	raw := strings.TrimSpace(c.Param("id"))
	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			err = fmt.Errorf("restaurant id %q is out of range", raw)
		} else {
			err = fmt.Errorf("restaurant id %q is not a number", raw)
		}
		response.RespondError(c, http.StatusBadRequest, "invalid_restaurant_id", err)
		return 0, false
	}
	return uint(id), true
}
