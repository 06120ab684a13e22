package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"careerpath/api/http/presenter"
	"careerpath/pkg/recommend"
)

type RecommendHandler struct {
	uc  recommend.UseCase
	log *zap.Logger
}

func NewRecommendHandler(uc recommend.UseCase, log *zap.Logger) *RecommendHandler {
	return &RecommendHandler{uc: uc, log: log}
}

type recommendRequest struct {
	Skills    []string `json:"skills"`
	Interests []string `json:"interests"`
}

// @Summary Generate career recommendations
// @Description Asks the model to pick careers from the catalog for the given skills and interests. The reply preserves the model's preference order.
// @Tags    recommend
// @Accept  json
// @Produce json
// @Param   input body recommendRequest true "Skills and interests"
// @Success 200 {array} career.Career
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 502 {object} presenter.ErrorResponse
// @Router  /recommend [post]
func (h *RecommendHandler) Recommend(c *fiber.Ctx) error {
	var req recommendRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON body")
	}
	res, err := h.uc.Recommend(c.Context(), req.Skills, req.Interests)
	if err != nil {
		var ve recommend.ErrValidation
		if errors.As(err, &ve) {
			return presenter.Error(c, http.StatusBadRequest, "Skills and interests are required.")
		}
		if errors.Is(err, recommend.ErrUpstreamParse) || errors.Is(err, recommend.ErrUpstreamCall) {
			h.log.Error("recommendation upstream failure", zap.Error(err))
			return presenter.Error(c, http.StatusBadGateway, "Error generating recommendations")
		}
		h.log.Error("recommendation failure", zap.Error(err))
		return presenter.Error(c, http.StatusInternalServerError, "Error generating recommendations")
	}
	return presenter.JSON(c, http.StatusOK, res)
}
