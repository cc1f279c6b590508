package handler

import (
	"errors"
	"net/http"

	"github.com/avolkov/mediatheca/data/dto"
	"github.com/avolkov/mediatheca/service"
)

func (h *Handler) signupUserHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody dto.SignupRequestBody
	err := h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	user, err := h.service.SignupUser(requestBody.Username, requestBody.Email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"user": user}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

func (h *Handler) createAccessTokenHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody dto.CreateAccessTokenRequestBody
	err := h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	token, err := h.service.CreateAccessToken(requestBody.Username, requestBody.ConfirmationCode)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		case errors.Is(err, service.ErrInvalidCredentials):
			h.invalidConfirmationCodeResponse(w, r)
		case errors.Is(err, service.ErrEditConflict):
			h.editConflictResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"access_token": token}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}
