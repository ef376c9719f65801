package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"retrorank/internal/config"
	"retrorank/internal/service"
)

type Handlers struct {
	Service  *service.Service
	Cfg      *config.Config
	Validate *validator.Validate
}

func NewHandlers(svc *service.Service, cfg *config.Config) *Handlers {
	return &Handlers{
		Service:  svc,
		Cfg:      cfg,
		Validate: validator.New(),
	}
}

// Routes builds the API router.
func (h *Handlers) Routes() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/auth/signup", h.Signup).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", h.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", h.Logout).Methods(http.MethodPost)
	api.HandleFunc("/auth/session", h.Session).Methods(http.MethodGet)

	api.HandleFunc("/posts", h.ListPosts).Methods(http.MethodGet)
	api.HandleFunc("/posts", h.CreatePost).Methods(http.MethodPost)
	api.HandleFunc("/posts/{id}", h.GetPost).Methods(http.MethodGet)
	api.HandleFunc("/posts/{id}", h.UpdatePost).Methods(http.MethodPut)
	api.HandleFunc("/posts/{id}", h.DeletePost).Methods(http.MethodDelete)
	api.HandleFunc("/posts/{id}/like", h.LikePost).Methods(http.MethodPost)
	api.HandleFunc("/posts/{id}/dislike", h.DislikePost).Methods(http.MethodPost)

	api.HandleFunc("/posts/{id}/comments", h.ListComments).Methods(http.MethodGet)
	api.HandleFunc("/posts/{id}/comments", h.CreateComment).Methods(http.MethodPost)
	api.HandleFunc("/comments/{id}", h.DeleteComment).Methods(http.MethodDelete)

	return r
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, map[string]string{"status": "ok"}, http.StatusOK)
}
