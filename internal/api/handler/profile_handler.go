package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/devconnector/devconnector-api/internal/api/metrics"
	"github.com/devconnector/devconnector-api/internal/core/domain"
	"github.com/devconnector/devconnector-api/internal/core/ports"
)

// ProfileHandler serves /api/profile.
type ProfileHandler struct {
	service ports.ProfileService
}

func NewProfileHandler(service ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// Me handles GET /api/profile/me.
//
// @Summary      Get the current user's profile
// @Tags         profile
// @Produce      json
// @Security     TokenAuth
// @Success      200  {object}  domain.Profile
// @Failure      404  {object}  msgResponse
// @Router       /api/profile/me [get]
func (h *ProfileHandler) Me(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	p, err := h.service.GetMine(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// Upsert handles POST /api/profile.
//
// @Summary      Create or update the current user's profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        body  body      profileRequest  true  "Profile fields; skills is comma-separated"
// @Success      200   {object}  domain.Profile
// @Failure      400   {object}  errorsResponse
// @Router       /api/profile [post]
func (h *ProfileHandler) Upsert(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req profileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	p, err := h.service.Upsert(c.Request().Context(), userID, toProfileUpdate(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// List handles GET /api/profile.
//
// @Summary      List all profiles
// @Tags         profile
// @Produce      json
// @Success      200  {array}   domain.Profile
// @Failure      500  {object}  msgResponse
// @Router       /api/profile [get]
func (h *ProfileHandler) List(c echo.Context) error {
	profiles, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profiles)
}

// GetByUser handles GET /api/profile/user/:user_id.
//
// @Summary      Get a profile by user ID
// @Tags         profile
// @Produce      json
// @Param        user_id  path      string  true  "User ID"
// @Success      200      {object}  domain.Profile
// @Failure      404      {object}  msgResponse
// @Router       /api/profile/user/{user_id} [get]
func (h *ProfileHandler) GetByUser(c echo.Context) error {
	p, err := h.service.GetByUserID(c.Request().Context(), c.Param("user_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// Delete handles DELETE /api/profile.
//
// @Summary      Delete the current user, their profile and posts
// @Tags         profile
// @Produce      json
// @Security     TokenAuth
// @Success      200  {object}  msgResponse
// @Failure      500  {object}  msgResponse
// @Router       /api/profile [delete]
func (h *ProfileHandler) Delete(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteAccount(c.Request().Context(), userID); err != nil {
		return err
	}

	metrics.AccountsDeletedTotal.Inc()
	return c.JSON(http.StatusOK, msgResponse{Msg: "User deleted"})
}

// AddExperience handles PUT /api/profile/experience.
//
// @Summary      Add an experience entry
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        body  body      experienceRequest  true  "Experience; dates as YYYY-MM-DD or RFC3339"
// @Success      200   {object}  domain.Profile
// @Failure      400   {object}  errorsResponse
// @Failure      404   {object}  msgResponse
// @Router       /api/profile/experience [put]
func (h *ProfileHandler) AddExperience(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req experienceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	in, err := toExperienceInput(req)
	if err != nil {
		return err
	}

	p, err := h.service.AddExperience(c.Request().Context(), userID, in)
	if err != nil {
		return err
	}

	metrics.ProfileEntriesTotal.WithLabelValues("experience", "add").Inc()
	return c.JSON(http.StatusOK, p)
}

// RemoveExperience handles DELETE /api/profile/experience/:exp_id.
//
// @Summary      Remove an experience entry
// @Tags         profile
// @Produce      json
// @Security     TokenAuth
// @Param        exp_id  path      string  true  "Experience ID"
// @Success      200     {object}  domain.Profile
// @Failure      404     {object}  msgResponse
// @Router       /api/profile/experience/{exp_id} [delete]
func (h *ProfileHandler) RemoveExperience(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	p, err := h.service.RemoveExperience(c.Request().Context(), userID, c.Param("exp_id"))
	if err != nil {
		return err
	}

	metrics.ProfileEntriesTotal.WithLabelValues("experience", "remove").Inc()
	return c.JSON(http.StatusOK, p)
}

// AddEducation handles PUT /api/profile/education.
//
// @Summary      Add an education entry
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        body  body      educationRequest  true  "Education; dates as YYYY-MM-DD or RFC3339"
// @Success      200   {object}  domain.Profile
// @Failure      400   {object}  errorsResponse
// @Failure      404   {object}  msgResponse
// @Router       /api/profile/education [put]
func (h *ProfileHandler) AddEducation(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req educationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	in, err := toEducationInput(req)
	if err != nil {
		return err
	}

	p, err := h.service.AddEducation(c.Request().Context(), userID, in)
	if err != nil {
		return err
	}

	metrics.ProfileEntriesTotal.WithLabelValues("education", "add").Inc()
	return c.JSON(http.StatusOK, p)
}

// RemoveEducation handles DELETE /api/profile/education/:edu_id.
//
// @Summary      Remove an education entry
// @Tags         profile
// @Produce      json
// @Security     TokenAuth
// @Param        edu_id  path      string  true  "Education ID"
// @Success      200     {object}  domain.Profile
// @Failure      404     {object}  msgResponse
// @Router       /api/profile/education/{edu_id} [delete]
func (h *ProfileHandler) RemoveEducation(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	p, err := h.service.RemoveEducation(c.Request().Context(), userID, c.Param("edu_id"))
	if err != nil {
		return err
	}

	metrics.ProfileEntriesTotal.WithLabelValues("education", "remove").Inc()
	return c.JSON(http.StatusOK, p)
}

// GitHubRepos handles GET /api/profile/github/:username.
//
// @Summary      List a GitHub user's repositories
// @Tags         profile
// @Produce      json
// @Param        username  path      string  true  "GitHub username"
// @Success      200       {array}   domain.Repo
// @Failure      404       {object}  msgResponse
// @Router       /api/profile/github/{username} [get]
func (h *ProfileHandler) GitHubRepos(c echo.Context) error {
	repos, err := h.service.GitHubRepos(c.Request().Context(), c.Param("username"))
	if err != nil {
		if errors.Is(err, domain.ErrGitHubProfileNotFound) {
			metrics.GitHubLookupsTotal.WithLabelValues("not_found").Inc()
		}
		return err
	}

	metrics.GitHubLookupsTotal.WithLabelValues("found").Inc()
	return c.JSON(http.StatusOK, repos)
}
