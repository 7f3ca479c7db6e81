package handlers

import (
	"net/http"

	"github.com/vishaldubey2210/portfolio/models"
	"github.com/vishaldubey2210/portfolio/pkg"
	"github.com/vishaldubey2210/portfolio/services"
)

type CertificationHandler struct {
	certService services.CertificationService
}

func NewCertificationHandler(certService services.CertificationService) *CertificationHandler {
	return &CertificationHandler{certService: certService}
}

// List godoc
// GET /api/certifications, GET /api/admin/certifications
func (h *CertificationHandler) List(w http.ResponseWriter, r *http.Request) {
	certs, err := h.certService.List(r.Context())
	if err != nil {
		pkg.Error(w, err, "Failed to load certifications")
		return
	}
	pkg.JSON(w, http.StatusOK, pkg.Fields{"certifications": certs})
}

// Create godoc
// POST /api/admin/certifications
func (h *CertificationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCertificationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		pkg.Error(w, err, "")
		return
	}

	if _, err := h.certService.Create(r.Context(), &req); err != nil {
		pkg.Error(w, err, "Failed to add certification")
		return
	}
	pkg.Message(w, http.StatusOK, "Certification added successfully!")
}

// Delete godoc
// DELETE /api/admin/certifications?id=N
func (h *CertificationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := queryID(r)
	if err != nil {
		pkg.Error(w, err, "")
		return
	}

	if err := h.certService.Delete(r.Context(), id); err != nil {
		pkg.Error(w, err, "Failed to delete certification")
		return
	}
	pkg.Message(w, http.StatusOK, "Certification deleted successfully!")
}
