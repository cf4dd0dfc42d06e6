package api

import (
	"net/http"

	reqdto "foodshare/internal/handler/dto/request"
	resdto "foodshare/internal/handler/dto/response"
	"foodshare/internal/pkg/errs"
	"foodshare/internal/usecase/commands"
	"foodshare/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PerishableHandler struct {
	commands commands.PerishableCommands
	queries  queries.PerishableQueries
}

func NewPerishableHandler(cmds commands.PerishableCommands, qs queries.PerishableQueries) *PerishableHandler {
	return &PerishableHandler{
		commands: cmds,
		queries:  qs,
	}
}

// @Summary Create perishable item
// @Description Register a time-critical donation; shelf life is estimated at creation
// @Tags perishables
// @Accept json
// @Produce json
// @Param request body reqdto.CreatePerishableRequest true "Perishable item request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /perishables [post]
func (h *PerishableHandler) CreatePerishable(c *gin.Context) {
	var req reqdto.CreatePerishableRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.commands.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrPerishableValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Perishable item validation failed",
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

// @Summary List perishable items
// @Description List active perishable items, most urgent first, annotated with remaining time
// @Tags perishables
// @Produce json
// @Success 200 {array} resdto.PerishableResponse
// @Router /perishables [get]
func (h *PerishableHandler) ListPerishables(c *gin.Context) {
	views, err := h.queries.ListActive(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromPerishableViews(views))
}

// @Summary Get perishable item
// @Description Get perishable item by ID with remaining time annotation
// @Tags perishables
// @Produce json
// @Param id path string true "Perishable item ID"
// @Success 200 {object} resdto.PerishableResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /perishables/{id} [get]
func (h *PerishableHandler) GetPerishable(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid perishable item ID format",
		})
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrPerishableNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Perishable item not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPerishableView(view))
}
