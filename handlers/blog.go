package handlers

import (
	"net/http"

	"github.com/vishaldubey2210/portfolio/models"
	"github.com/vishaldubey2210/portfolio/pkg"
	"github.com/vishaldubey2210/portfolio/services"
)

type BlogHandler struct {
	blogService services.BlogService
}

func NewBlogHandler(blogService services.BlogService) *BlogHandler {
	return &BlogHandler{blogService: blogService}
}

// List godoc
// GET /api/blogs, GET /api/admin/blogs
func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.blogService.List(r.Context())
	if err != nil {
		pkg.Error(w, err, "Failed to load blog posts")
		return
	}
	pkg.JSON(w, http.StatusOK, pkg.Fields{"blogs": posts})
}

// Get godoc
// GET /api/blogs/{slug}
func (h *BlogHandler) Get(w http.ResponseWriter, r *http.Request) {
	post, err := h.blogService.GetBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		pkg.Error(w, err, "Failed to load blog post")
		return
	}
	pkg.JSON(w, http.StatusOK, pkg.Fields{"blog": post})
}

// Create godoc
// POST /api/admin/blogs
func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateBlogRequest
	if err := decodeJSON(w, r, &req); err != nil {
		pkg.Error(w, err, "")
		return
	}

	if _, err := h.blogService.Create(r.Context(), &req); err != nil {
		pkg.Error(w, err, "Failed to publish blog post")
		return
	}
	pkg.Message(w, http.StatusOK, "Blog post published successfully!")
}

// Delete godoc
// DELETE /api/admin/blogs?id=N
func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := queryID(r)
	if err != nil {
		pkg.Error(w, err, "")
		return
	}

	if err := h.blogService.Delete(r.Context(), id); err != nil {
		pkg.Error(w, err, "Failed to delete blog post")
		return
	}
	pkg.Message(w, http.StatusOK, "Blog post deleted successfully!")
}
