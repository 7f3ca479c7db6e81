package models

// Stats is the admin dashboard snapshot.
type Stats struct {
	TotalProjects       int   `json:"totalProjects"`
	TotalBlogs          int   `json:"totalBlogs"`
	TotalCertifications int   `json:"totalCertifications"`
	TotalUsers          int   `json:"totalUsers"`
	TotalMessages       int   `json:"totalMessages"`
	ActiveVisitors      int64 `json:"activeVisitors"`
}
