package postgres

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/careerpath-labs/career-compass/internal/domain"
)

// SavedItemRepo tracks careers and courses a user bookmarked.
type SavedItemRepo struct{ Pool PgxPool }

// NewSavedItemRepo constructs a SavedItemRepo with the given pool.
func NewSavedItemRepo(p PgxPool) *SavedItemRepo { return &SavedItemRepo{Pool: p} }

// SaveCareer bookmarks a career for the user. Saving twice is a no-op.
func (r *SavedItemRepo) SaveCareer(ctx domain.Context, userID, careerID string) error {
	return r.save(ctx, "saved_careers", "career_id", userID, careerID)
}

// UnsaveCareer removes a career bookmark.
func (r *SavedItemRepo) UnsaveCareer(ctx domain.Context, userID, careerID string) error {
	return r.unsave(ctx, "saved_careers", "career_id", userID, careerID)
}

// SavedCareerIDs lists the career ids the user bookmarked.
func (r *SavedItemRepo) SavedCareerIDs(ctx domain.Context, userID string) ([]string, error) {
	return r.ids(ctx, "saved_careers", "career_id", userID)
}

// SaveCourse bookmarks a course for the user. Saving twice is a no-op.
func (r *SavedItemRepo) SaveCourse(ctx domain.Context, userID, courseID string) error {
	return r.save(ctx, "saved_courses", "course_id", userID, courseID)
}

// UnsaveCourse removes a course bookmark.
func (r *SavedItemRepo) UnsaveCourse(ctx domain.Context, userID, courseID string) error {
	return r.unsave(ctx, "saved_courses", "course_id", userID, courseID)
}

// SavedCourseIDs lists the course ids the user bookmarked.
func (r *SavedItemRepo) SavedCourseIDs(ctx domain.Context, userID string) ([]string, error) {
	return r.ids(ctx, "saved_courses", "course_id", userID)
}

func (r *SavedItemRepo) save(ctx domain.Context, table, col, userID, itemID string) error {
	tracer := otel.Tracer("repo.saved")
	ctx, span := tracer.Start(ctx, table+".Save")
	defer span.End()
	span.SetAttributes(
		attribute.String("db.system", "postgresql"),
		attribute.String("db.operation", "INSERT"),
		attribute.String("db.sql.table", table),
	)
	q := fmt.Sprintf(`INSERT INTO %s (user_id, %s) VALUES ($1,$2) ON CONFLICT DO NOTHING`, table, col)
	if _, err := r.Pool.Exec(ctx, q, userID, itemID); err != nil {
		return fmt.Errorf("op=saved.save table=%s: %w", table, err)
	}
	return nil
}

func (r *SavedItemRepo) unsave(ctx domain.Context, table, col, userID, itemID string) error {
	tracer := otel.Tracer("repo.saved")
	ctx, span := tracer.Start(ctx, table+".Unsave")
	defer span.End()
	span.SetAttributes(
		attribute.String("db.system", "postgresql"),
		attribute.String("db.operation", "DELETE"),
		attribute.String("db.sql.table", table),
	)
	q := fmt.Sprintf(`DELETE FROM %s WHERE user_id=$1 AND %s=$2`, table, col)
	if _, err := r.Pool.Exec(ctx, q, userID, itemID); err != nil {
		return fmt.Errorf("op=saved.unsave table=%s: %w", table, err)
	}
	return nil
}

func (r *SavedItemRepo) ids(ctx domain.Context, table, col, userID string) ([]string, error) {
	tracer := otel.Tracer("repo.saved")
	ctx, span := tracer.Start(ctx, table+".List")
	defer span.End()
	span.SetAttributes(
		attribute.String("db.system", "postgresql"),
		attribute.String("db.operation", "SELECT"),
		attribute.String("db.sql.table", table),
	)
	q := fmt.Sprintf(`SELECT %s FROM %s WHERE user_id=$1`, col, table)
	rows, err := r.Pool.Query(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("op=saved.list table=%s: %w", table, err)
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("op=saved.list.scan table=%s: %w", table, err)
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("op=saved.list.rows table=%s: %w", table, err)
	}
	return out, nil
}
