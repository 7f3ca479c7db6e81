package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/vishaldubey2210/portfolio/models"
)

// VisitorCounter reports the live visitor count. The ws hub implements it.
type VisitorCounter interface {
	ActiveVisitors() int64
}

// Counter is any repository that can count its rows.
type Counter interface {
	Count(ctx context.Context) (int, error)
}

// StatsService builds the dashboard snapshot. Nothing is cached.
type StatsService interface {
	Get(ctx context.Context) (*models.Stats, error)
}

// StatsSources groups the row counters the snapshot reads.
type StatsSources struct {
	Projects       Counter
	Blogs          Counter
	Certifications Counter
	Users          Counter
	Messages       Counter
}

type statsService struct {
	src      StatsSources
	visitors VisitorCounter
}

func NewStatsService(src StatsSources, visitors VisitorCounter) StatsService {
	return &statsService{src: src, visitors: visitors}
}

// Get runs the table counts concurrently; the first failure cancels the rest.
func (s *statsService) Get(ctx context.Context) (*models.Stats, error) {
	stats := &models.Stats{}
	g, ctx := errgroup.WithContext(ctx)

	count := func(c Counter, dst *int) {
		g.Go(func() error {
			n, err := c.Count(ctx)
			if err != nil {
				return err
			}
			*dst = n
			return nil
		})
	}

	count(s.src.Projects, &stats.TotalProjects)
	count(s.src.Blogs, &stats.TotalBlogs)
	count(s.src.Certifications, &stats.TotalCertifications)
	count(s.src.Users, &stats.TotalUsers)
	count(s.src.Messages, &stats.TotalMessages)

	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats.ActiveVisitors = s.visitors.ActiveVisitors()
	return stats, nil
}
