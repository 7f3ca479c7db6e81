package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vishaldubey2210/portfolio/database"
)

// tagTable describes one of the ordered tag join tables.
type tagTable struct {
	name  string // project_tags
	owner string // project_id
}

var (
	projectTags = tagTable{name: "project_tags", owner: "project_id"}
	blogTags    = tagTable{name: "blog_tags", owner: "blog_id"}
)

// insert writes tags for ownerID in list order.
func (t tagTable) insert(ctx context.Context, tx *sql.Tx, ownerID int64, tags []string) error {
	if len(tags) == 0 {
		return nil
	}
	stmt, err := tx.PrepareContext(ctx,
		fmt.Sprintf("INSERT INTO %s (%s, position, tag) VALUES (?, ?, ?)", t.name, t.owner))
	if err != nil {
		return fmt.Errorf("failed to prepare %s insert: %w", t.name, err)
	}
	defer stmt.Close()

	for i, tag := range tags {
		if _, err := stmt.ExecContext(ctx, ownerID, i, tag); err != nil {
			return fmt.Errorf("failed to insert %s: %w", t.name, err)
		}
	}
	return nil
}

// all loads every tag list keyed by owner id. Owners without tags are absent.
func (t tagTable) all(ctx context.Context, db database.TxQuerier) (map[int64][]string, error) {
	rows, err := db.QueryContext(ctx,
		fmt.Sprintf("SELECT %s, tag FROM %s ORDER BY %s, position", t.owner, t.name, t.owner))
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", t.name, err)
	}
	defer rows.Close()

	out := make(map[int64][]string)
	for rows.Next() {
		var id int64
		var tag string
		if err := rows.Scan(&id, &tag); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", t.name, err)
		}
		out[id] = append(out[id], tag)
	}
	return out, rows.Err()
}

// forOwner loads the tags of a single owner.
func (t tagTable) forOwner(ctx context.Context, db database.TxQuerier, ownerID int64) ([]string, error) {
	rows, err := db.QueryContext(ctx,
		fmt.Sprintf("SELECT tag FROM %s WHERE %s = ? ORDER BY position", t.name, t.owner), ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", t.name, err)
	}
	defer rows.Close()

	tags := []string{}
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", t.name, err)
		}
		tags = append(tags, tag)
	}
	return tags, rows.Err()
}

func tagsOrEmpty(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
