package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/avolkov/mediatheca/data"
	"github.com/avolkov/mediatheca/data/dto"
	"github.com/avolkov/mediatheca/internal/validator"
	"github.com/avolkov/mediatheca/service"
)

func (h *Handler) listUsersHandler(w http.ResponseWriter, r *http.Request) {
	var qs dto.QsListUsers
	v := validator.New()
	query := r.URL.Query()
	qs.Filters.Page = h.readInt(query, "page", 1, v)
	qs.Filters.PageSize = h.readInt(query, "page_size", 20, v)
	qs.Filters.Sort = h.readString(query, "sort", "username")
	qs.Filters.SortSafeList = []string{"id", "username", "-id", "-username"}
	users, metadata, err := h.service.ListUsers(qs.Filters)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"users": users, "metadata": metadata}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

func (h *Handler) createUserHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody dto.CreateUserRequestBody
	err := h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	user, err := h.service.CreateUser(requestBody.Username, requestBody.Email, requestBody.FirstName, requestBody.LastName, requestBody.Bio, requestBody.Role)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/v1/users/%s", user.Username))
	err = h.encodeJSON(w, http.StatusCreated, envelope{"user": user}, headers)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

func (h *Handler) showUserHandler(w http.ResponseWriter, r *http.Request) {
	caller := h.contextGetUser(r)
	username := h.readSlugParam(r, "username")
	if username == "me" {
		username = caller.Username
	} else if !data.Permitted(caller, data.ActionModify, data.ResourceUser, 0) {
		h.notPermittedResponse(w, r)
		return
	}
	user, err := h.service.ShowUser(username)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
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

func (h *Handler) updateUserHandler(w http.ResponseWriter, r *http.Request) {
	caller := h.contextGetUser(r)
	username := h.readSlugParam(r, "username")
	var requestBody dto.UpdateUserRequestBody
	err := h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	var user *data.User
	if username == "me" {
		user, err = h.service.UpdateProfile(caller, requestBody.Email, requestBody.FirstName, requestBody.LastName, requestBody.Bio, requestBody.Role)
	} else {
		if !data.Permitted(caller, data.ActionModify, data.ResourceUser, 0) {
			h.notPermittedResponse(w, r)
			return
		}
		user, err = h.service.UpdateUser(username, requestBody.Email, requestBody.FirstName, requestBody.LastName, requestBody.Bio, requestBody.Role)
	}
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		case errors.Is(err, service.ErrEditConflict):
			h.editConflictResponse(w, r)
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

func (h *Handler) deleteUserHandler(w http.ResponseWriter, r *http.Request) {
	username := h.readSlugParam(r, "username")
	// An account cannot delete itself through the "me" alias.
	if username == "me" {
		h.notPermittedResponse(w, r)
		return
	}
	err := h.service.DeleteUser(username)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"message": "user successfully deleted"}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}
