package handler

import "github.com/devconnector/devconnector-api/internal/core/domain"

// msgResponse is the {"msg": "..."} envelope used for confirmations and errors.
type msgResponse struct {
	Msg string `json:"msg"`
}

// errorsResponse lists validation failures.
type errorsResponse struct {
	Errors []domain.FieldError `json:"errors"`
}

// --- Auth ---

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"min=6"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// --- Profile ---

type profileRequest struct {
	Company        string `json:"company"`
	Website        string `json:"website"`
	Location       string `json:"location"`
	Bio            string `json:"bio"`
	Status         string `json:"status"         validate:"required"`
	GitHubUsername string `json:"githubusername"`
	Skills         string `json:"skills"         validate:"required"`
	YouTube        string `json:"youtube"`
	Twitter        string `json:"twitter"`
	Facebook       string `json:"facebook"`
	LinkedIn       string `json:"linkedin"`
	Instagram      string `json:"instagram"`
}

type experienceRequest struct {
	Title       string `json:"title"       validate:"required"`
	Company     string `json:"company"     validate:"required"`
	Location    string `json:"location"`
	From        string `json:"from"        validate:"required"`
	To          string `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

type educationRequest struct {
	School       string `json:"school"       validate:"required"`
	Degree       string `json:"degree"       validate:"required"`
	FieldOfStudy string `json:"fieldofstudy" validate:"required"`
	From         string `json:"from"         validate:"required"`
	To           string `json:"to"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}

// --- Posts ---

type postRequest struct {
	Text string `json:"text" validate:"required"`
}

type commentRequest struct {
	Text string `json:"text" validate:"required"`
}
