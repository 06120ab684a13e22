package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"careerpath/api/http/presenter"
	"careerpath/pkg/profile"
)

type ProfileHandler struct {
	uc profile.UseCase
}

func NewProfileHandler(uc profile.UseCase) *ProfileHandler { return &ProfileHandler{uc: uc} }

type upsertProfileRequest struct {
	Name      string   `json:"name"`
	Education string   `json:"education"`
	Skills    []string `json:"skills"`
	Interests []string `json:"interests"`
}

// @Summary Fetch a profile by name
// @Description Returns the stored profile. 404 means the user is new, not an error.
// @Tags    profile
// @Produce json
// @Param   name path string true "Profile name"
// @Success 200 {object} profile.Profile
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /profile/{name} [get]
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	name, err := unescapeParam(c, "name")
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid name")
	}
	p, err := h.uc.GetByName(c.Context(), name)
	if err != nil {
		var ve profile.ErrValidation
		if errors.As(err, &ve) {
			return presenter.Error(c, http.StatusBadRequest, ve.Error())
		}
		if errors.Is(err, profile.ErrNotFound) {
			// expected branch for first-time users
			return presenter.Error(c, http.StatusNotFound, "User not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "Error saving or fetching profile")
	}
	return presenter.JSON(c, http.StatusOK, p)
}

// @Summary Create or update a profile
// @Description Upserts by name: creates on first save, fully replaces all fields after.
// @Tags    profile
// @Accept  json
// @Produce json
// @Param   input body upsertProfileRequest true "Profile data"
// @Success 200 {object} profile.Profile
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /profile [post]
func (h *ProfileHandler) Upsert(c *fiber.Ctx) error {
	var req upsertProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON body")
	}
	p, err := h.uc.Upsert(c.Context(), profile.Profile{
		Name:      req.Name,
		Education: req.Education,
		Skills:    req.Skills,
		Interests: req.Interests,
	})
	if err != nil {
		var ve profile.ErrValidation
		if errors.As(err, &ve) {
			return presenter.Error(c, http.StatusBadRequest, ve.Error())
		}
		return presenter.Error(c, http.StatusInternalServerError, "Error saving or fetching profile")
	}
	return presenter.JSON(c, http.StatusOK, p)
}
