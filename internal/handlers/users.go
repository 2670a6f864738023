package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"userdir-backend/internal/models"
	"userdir-backend/internal/repository"
	"userdir-backend/internal/validation"
)

type UserHandler struct {
	repo            repository.UserRepository
	defaultPageSize int
	maxPageSize     int
}

func NewUserHandler(repo repository.UserRepository, defaultPageSize, maxPageSize int) *UserHandler {
	return &UserHandler{
		repo:            repo,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}

type ListUsersResponse struct {
	Users      []models.User `json:"users"`
	Total      int           `json:"total"`
	Page       int           `json:"page"`
	TotalPages int           `json:"totalPages"`
	Q          string        `json:"q"`
}

// --- GET /api/users ---

func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	opts := h.parseListOptions(r)

	users, total, err := h.repo.List(r.Context(), opts)
	if err != nil {
		log.Printf("Error listing users: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + opts.Limit - 1) / opts.Limit
	}

	writeJSON(w, http.StatusOK, ListUsersResponse{
		Users:      users,
		Total:      total,
		Page:       opts.Page,
		TotalPages: totalPages,
		Q:          opts.Query,
	})
}

// --- GET /api/users/{id} ---

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseUserID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "user not found")
			return
		}
		log.Printf("Error getting user %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// --- POST /api/users ---

func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	normalized, ok := h.readPayload(w, r)
	if !ok {
		return
	}

	exists, err := h.repo.EmailExists(r.Context(), normalized.Email, 0)
	if err != nil {
		log.Printf("Error checking email uniqueness: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if exists {
		writeError(w, http.StatusBadRequest, "email already exists")
		return
	}

	user := normalized.User(0)
	if err := h.repo.Create(r.Context(), &user); err != nil {
		log.Printf("Error creating user: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

// --- PUT /api/users/{id} ---

func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseUserID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	normalized, ok := h.readPayload(w, r)
	if !ok {
		return
	}

	// A record is always unique relative to itself, so its own id is
	// excluded from the conflict check.
	exists, err := h.repo.EmailExists(r.Context(), normalized.Email, id)
	if err != nil {
		log.Printf("Error checking email uniqueness: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if exists {
		writeError(w, http.StatusBadRequest, "email already exists")
		return
	}

	user := normalized.User(id)
	if err := h.repo.Update(r.Context(), &user); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "user not found")
			return
		}
		log.Printf("Error updating user %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// --- DELETE /api/users/{id} ---

func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseUserID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "user not found")
			return
		}
		log.Printf("Error deleting user %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// readPayload validates and normalizes the request body, writing the 400
// itself when the payload is unusable. The bool reports whether the handler
// should continue.
func (h *UserHandler) readPayload(w http.ResponseWriter, r *http.Request) (validation.Normalized, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return validation.Normalized{}, false
	}

	payload, fieldErrs := validation.ValidatePayload(body)
	if fieldErrs != nil {
		writeError(w, http.StatusBadRequest, fieldErrs.Message())
		return validation.Normalized{}, false
	}

	normalized, err := payload.Normalize()
	if err != nil {
		writeError(w, http.StatusBadRequest, "dob must be a valid calendar date")
		return validation.Normalized{}, false
	}
	return normalized, true
}
