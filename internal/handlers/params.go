package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"userdir-backend/internal/repository"
)

var (
	ErrIDMissing = errors.New("user id is required")
	ErrIDInvalid = errors.New("user id must be a non-negative integer")
)

// parseUserID converts a raw route parameter into a validated id:
// whitespace is trimmed, an empty parameter is "missing", and anything that
// is not a non-negative integer (negative, fractional, non-numeric) is
// "invalid". Callers map both to a 400.
func parseUserID(param string) (int, error) {
	param = strings.TrimSpace(param)
	if param == "" {
		return 0, ErrIDMissing
	}
	id, err := strconv.Atoi(param)
	if err != nil || id < 0 {
		return 0, ErrIDInvalid
	}
	return id, nil
}

// parseListOptions reads page, limit and q from the query string. Unlike the
// id parameter these are lenient: junk values fall back to defaults and limit
// is clamped to the configured maximum instead of erroring.
func (h *UserHandler) parseListOptions(r *http.Request) repository.ListOptions {
	query := r.URL.Query()

	page := 1
	if v, err := strconv.Atoi(query.Get("page")); err == nil && v > 1 {
		page = v
	}

	limit := h.defaultPageSize
	if v, err := strconv.Atoi(query.Get("limit")); err == nil && v >= 1 {
		limit = v
		if limit > h.maxPageSize {
			limit = h.maxPageSize
		}
	}

	return repository.ListOptions{
		Query: strings.TrimSpace(query.Get("q")),
		Page:  page,
		Limit: limit,
	}
}
