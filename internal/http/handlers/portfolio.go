package handlers

import (
	"net/http"

	"github.com/phungtienthanh/portfolio-api/internal/http/response"
	"github.com/phungtienthanh/portfolio-api/internal/portfolio"
)

// Projects handles GET /api/projects.
func (h *Handlers) Projects(w http.ResponseWriter, r *http.Request) {
	response.WriteJSON(w, http.StatusOK, portfolio.Projects())
}

// Timeline handles GET /api/timeline.
func (h *Handlers) Timeline(w http.ResponseWriter, r *http.Request) {
	response.WriteJSON(w, http.StatusOK, portfolio.Timeline())
}
