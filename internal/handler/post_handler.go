package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"retrorank/internal/models"
)

func (h *Handlers) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.Service.Post.List(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, posts, http.StatusOK)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	post, err := h.Service.Post.GetByID(r.Context(), postID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, post, http.StatusOK)
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	post, err := h.Service.Post.Create(r.Context(), req)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeSuccess(w, post, http.StatusCreated)
}

func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	var req models.UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	post, err := h.Service.Post.Update(r.Context(), postID, req)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeSuccess(w, post, http.StatusOK)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	if err := h.Service.Post.Delete(r.Context(), postID); err != nil {
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, map[string]bool{"success": true}, http.StatusOK)
}

func (h *Handlers) LikePost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	post, err := h.Service.Reaction.Like(r.Context(), postID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, post, http.StatusOK)
}

func (h *Handlers) DislikePost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	post, err := h.Service.Reaction.Dislike(r.Context(), postID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeSuccess(w, post, http.StatusOK)
}
