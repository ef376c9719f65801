package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"retrorank/internal/models"
)

func (h *Handlers) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.Service.Auth.Signup(r.Context(), req)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeSuccess(w, result, http.StatusCreated)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.Service.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeSuccess(w, result, http.StatusOK)
}

func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Auth.Logout(r.Context()); err != nil {
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, map[string]bool{"success": true}, http.StatusOK)
}

// Session reports whether a session is active and for whom. Checking also
// clears an expired session.
func (h *Handlers) Session(w http.ResponseWriter, r *http.Request) {
	valid := h.Service.IsSessionValid()

	resp := map[string]any{"valid": valid}
	if valid {
		userID, err := h.Service.CurrentUserID()
		if err != nil && !errors.Is(err, models.ErrUnauthenticated) {
			writeDomainError(w, err)
			return
		}
		resp["userId"] = userID
	}

	writeSuccess(w, resp, http.StatusOK)
}
