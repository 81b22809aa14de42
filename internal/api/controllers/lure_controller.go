package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"lure/internal/models/request_models"
	"lure/internal/services"
	"lure/pkg/utils"
)

type LureController struct {
	lureService services.LureServiceInterface
	production  bool
}

func NewLureController(lureService services.LureServiceInterface, production bool) *LureController {
	return &LureController{lureService: lureService, production: production}
}

// GenerateLure godoc
// @Summary Generate travel options for a vibe
// @Description Returns up to 3 normalized travel options plus curated guide tips
// @Tags Lure
// @Accept json
// @Produce json
// @Param request body request_models.LureRequest true "Lure payload"
// @Success 200 {object} response_models.LureResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/lure [post]
func (l *LureController) GenerateLure(c *gin.Context) {
	var req request_models.LureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if strings.TrimSpace(req.Vibe) == "" {
		utils.RespondError(c, http.StatusBadRequest, "Missing 'vibe' in request body")
		return
	}

	resp, err := l.lureService.GenerateLures(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err, l.production)
		return
	}

	c.JSON(http.StatusOK, resp)
}
