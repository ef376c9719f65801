package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"retrorank/internal/models"
)

func (h *Handlers) ListComments(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	comments, err := h.Service.Comment.ListByPost(r.Context(), postID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	if comments == nil {
		comments = []models.Comment{}
	}
	writeSuccess(w, comments, http.StatusOK)
}

func (h *Handlers) CreateComment(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	var req models.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	comment, err := h.Service.Comment.Create(r.Context(), postID, req)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeSuccess(w, comment, http.StatusCreated)
}

func (h *Handlers) DeleteComment(w http.ResponseWriter, r *http.Request) {
	commentID := mux.Vars(r)["id"]

	if err := h.Service.Comment.Delete(r.Context(), commentID); err != nil {
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, map[string]bool{"success": true}, http.StatusOK)
}
