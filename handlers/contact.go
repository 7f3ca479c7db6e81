package handlers

import (
	"net/http"

	"github.com/vishaldubey2210/portfolio/models"
	"github.com/vishaldubey2210/portfolio/pkg"
	"github.com/vishaldubey2210/portfolio/services"
)

type ContactHandler struct {
	contactService services.ContactService
}

func NewContactHandler(contactService services.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// Submit godoc
// POST /api/contact
// Body: { "name", "email", "subject"?, "message" }
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.ContactRequest
	if err := decodeJSON(w, r, &req); err != nil {
		pkg.Error(w, err, "")
		return
	}

	if err := h.contactService.Submit(r.Context(), &req); err != nil {
		pkg.Error(w, err, "Failed to send message")
		return
	}
	pkg.Message(w, http.StatusOK, "Thank you for reaching out! I will get back to you soon.")
}
