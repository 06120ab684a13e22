package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"careerpath/api/http/presenter"
	"careerpath/pkg/career"
)

type CareerHandler struct {
	uc career.UseCase
}

func NewCareerHandler(uc career.UseCase) *CareerHandler { return &CareerHandler{uc: uc} }

// @Summary List the career catalog
// @Tags    careers
// @Produce json
// @Success 200 {array} career.Career
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /careers [get]
func (h *CareerHandler) List(c *fiber.Ctx) error {
	res, err := h.uc.List(c.Context())
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "Error fetching careers")
	}
	if res == nil {
		res = []career.Career{}
	}
	return presenter.JSON(c, http.StatusOK, res)
}
