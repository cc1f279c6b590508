package handler

import (
	"context"
	"net/http"

	"github.com/avolkov/mediatheca/data"
)

// contextKey is a custom key type which prevents name collisions with
// context keys set by external packages.
type contextKey string

// userContextKey is the key for getting and setting the authenticated user
// in the request context.
const userContextKey = contextKey("user")

// contextSetUser returns a new copy of the request with the provided User
// struct added to the context.
func (h *Handler) contextSetUser(r *http.Request, user *data.User) *http.Request {
	ctx := context.WithValue(r.Context(), userContextKey, user)
	return r.WithContext(ctx)
}

// contextGetUser retrieves the User struct from the request context. A
// missing user is firmly an 'unexpected' error since the authenticate
// middleware always sets one.
func (h *Handler) contextGetUser(r *http.Request) *data.User {
	user, ok := r.Context().Value(userContextKey).(*data.User)
	if !ok {
		panic("missing user value in request context")
	}
	return user
}
