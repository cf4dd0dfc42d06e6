package api

import (
	"net/http"

	reqdto "foodshare/internal/handler/dto/request"
	resdto "foodshare/internal/handler/dto/response"
	"foodshare/internal/handler/middleware"
	"foodshare/internal/pkg/errs"
	"foodshare/internal/usecase/commands"
	"foodshare/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DonationHandler struct {
	commands commands.DonationCommands
	queries  queries.DonationQueries
}

func NewDonationHandler(cmds commands.DonationCommands, qs queries.DonationQueries) *DonationHandler {
	return &DonationHandler{
		commands: cmds,
		queries:  qs,
	}
}

// @Summary Create donation
// @Description Publish a new food donation listing
// @Tags donations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateDonationRequest true "Donation request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /donations [post]
func (h *DonationHandler) CreateDonation(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateDonationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.commands.Create(c.Request.Context(), req.ToInput(), userID)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrDonationValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Donation validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary List donations
// @Description List donations with optional food type and status filters
// @Tags donations
// @Produce json
// @Param food_type query string false "Food type filter"
// @Param status query string false "Status filter"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} resdto.DonationResponse
// @Router /donations [get]
func (h *DonationHandler) ListDonations(c *gin.Context) {
	var filter queries.DonationFilter
	if foodType := c.Query("food_type"); foodType != "" {
		filter.FoodType = &foodType
	}
	if status := c.Query("status"); status != "" {
		filter.Status = &status
	}
	filter.Limit = int32(queryInt(c, "limit", 10))
	filter.Offset = int32(queryInt(c, "offset", 0))

	views, err := h.queries.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromDonationViews(views))
}

// @Summary Get donation
// @Description Get donation by ID
// @Tags donations
// @Produce json
// @Param id path string true "Donation ID"
// @Success 200 {object} resdto.DonationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /donations/{id} [get]
func (h *DonationHandler) GetDonation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid donation ID format",
		})
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrDonationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Donation not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromDonationView(view))
}

// @Summary List own donations
// @Description List donations published by the current user
// @Tags donations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.DonationResponse
// @Failure 401 {object} map[string]string
// @Router /donations/mine [get]
func (h *DonationHandler) ListMyDonations(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.queries.ListByDonor(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromDonationViews(views))
}

// @Summary List reserved donations
// @Description List donations currently reserved by the current user
// @Tags donations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.DonationResponse
// @Failure 401 {object} map[string]string
// @Router /donations/reserved [get]
func (h *DonationHandler) ListReservedDonations(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.queries.ListReservedBy(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromDonationViews(views))
}

// @Summary Reserve donation
// @Description Reserve the whole remaining quantity of a donation and open a pickup order
// @Tags donations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Donation ID"
// @Success 201 {object} resdto.ReservedResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /donations/{id}/reserve [post]
func (h *DonationHandler) ReserveDonation(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid donation ID format",
		})
		return
	}

	orderID, err := h.commands.Reserve(c.Request.Context(), id, userID)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrDonationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Donation not found",
			})
		case errs.Is(err, commands.ErrOwnDonation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Cannot reserve your own donation",
			})
		case errs.Is(err, commands.ErrDonationNotAvailable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Donation is not available",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.ReservedResponse{OrderID: orderID})
}

// @Summary Confirm pickup
// @Description Mark a reserved donation as picked up by the reserving user
// @Tags donations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Donation ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /donations/{id}/pickup [post]
func (h *DonationHandler) ConfirmPickup(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid donation ID format",
		})
		return
	}

	if err := h.commands.ConfirmPickup(c.Request.Context(), id, userID); err != nil {
		switch {
		case errs.Is(err, commands.ErrDonationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Donation not found",
			})
		case errs.Is(err, commands.ErrDonationNotReserved):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Donation must be reserved first",
			})
		case errs.Is(err, commands.ErrNotAuthorized):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Donation is reserved by a different user",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Pickup confirmed"})
}

// @Summary Delete donation
// @Description Delete a donation; only the donor or an admin may delete
// @Tags donations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Donation ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /donations/{id} [delete]
func (h *DonationHandler) DeleteDonation(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	role, _ := middleware.GetUserRole(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid donation ID format",
		})
		return
	}

	if err := h.commands.Delete(c.Request.Context(), id, userID, role); err != nil {
		switch {
		case errs.Is(err, commands.ErrDonationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Donation not found",
			})
		case errs.Is(err, commands.ErrNotAuthorized):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Not authorized to delete this donation",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Donation deleted"})
}
