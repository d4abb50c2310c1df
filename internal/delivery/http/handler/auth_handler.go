package handler

import (
	"encoding/json"
	"net/http"

	"clinic-portal/internal/converter"
	"clinic-portal/internal/delivery/dto"
	"clinic-portal/internal/delivery/http/middleware"
	"clinic-portal/internal/usecase"
	"clinic-portal/pkg/apperror"
	"clinic-portal/pkg/response"
	"clinic-portal/pkg/validator"
)

type AuthHandler struct {
	identityUsecase usecase.IdentityUsecase
	validator       *validator.CustomValidator
}

func NewAuthHandler(identityUsecase usecase.IdentityUsecase, validator *validator.CustomValidator) *AuthHandler {
	return &AuthHandler{
		identityUsecase: identityUsecase,
		validator:       validator,
	}
}

// Login resolves an identifier and role into a session
// @Summary Sign in
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	resp, err := h.identityUsecase.Login(r.Context(), &req)
	if err != nil {
		switch apperror.KindOf(err) {
		case apperror.KindNotFound, apperror.KindNameLookupFailed:
			response.Error(w, http.StatusUnauthorized, "Login failed: "+apperror.MessageOf(err), string(apperror.KindOf(err)))
		default:
			writeError(w, err)
		}
		return
	}

	response.Success(w, http.StatusOK, "Login successful", resp)
}

// Register creates a patient and signs them in
// @Summary Register as a patient
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.PatientRequest true "Patient details"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.PatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	resp, err := h.identityUsecase.RegisterPatient(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Registration successful", resp)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Session not found")
		return
	}

	if err := h.identityUsecase.Logout(r.Context(), session); err != nil {
		response.InternalServerError(w, "Failed to logout")
		return
	}

	response.Success(w, http.StatusOK, "Logged out successfully", nil)
}

func (h *AuthHandler) GetCurrentIdentity(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Session not found")
		return
	}

	response.Success(w, http.StatusOK, "Identity retrieved successfully", converter.IdentityToResponse(&session.Identity))
}
