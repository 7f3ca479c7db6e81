package models

import (
	"strings"
	"time"

	"github.com/vishaldubey2210/portfolio/pkg/validate"
)

// BlogPost is a published article.
type BlogPost struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Excerpt     string    `json:"excerpt"`
	Content     string    `json:"content"`
	Author      string    `json:"author"`
	Tags        []string  `json:"tags"`
	PublishedAt time.Time `json:"publishedAt"`
}

// CreateBlogRequest is the body of POST /api/admin/blogs.
type CreateBlogRequest struct {
	Title   string   `json:"title" validate:"required"`
	Slug    string   `json:"slug"`
	Excerpt string   `json:"excerpt" validate:"required"`
	Content string   `json:"content" validate:"required"`
	Tags    []string `json:"tags"`
}

var blogMessages = validate.Messages{
	"": "Title, excerpt and content are required",
}

// Validate checks the required fields.
func (r *CreateBlogRequest) Validate() error {
	return validate.Struct(r, blogMessages)
}

// Slugify derives a slug from a title: lower case, spaces become hyphens.
// Nothing else is stripped.
func Slugify(title string) string {
	return strings.ReplaceAll(strings.ToLower(title), " ", "-")
}
