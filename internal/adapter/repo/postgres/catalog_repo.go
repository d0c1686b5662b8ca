package postgres

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/careerpath-labs/career-compass/internal/domain"
)

// CareerRepo reads the career catalog, newest entries first.
type CareerRepo struct{ Pool PgxPool }

// NewCareerRepo constructs a CareerRepo with the given pool.
func NewCareerRepo(p PgxPool) *CareerRepo { return &CareerRepo{Pool: p} }

// List returns the full career catalog ordered by creation time descending.
func (r *CareerRepo) List(ctx domain.Context) ([]domain.Career, error) {
	tracer := otel.Tracer("repo.careers")
	ctx, span := tracer.Start(ctx, "careers.List")
	defer span.End()
	span.SetAttributes(
		attribute.String("db.system", "postgresql"),
		attribute.String("db.operation", "SELECT"),
		attribute.String("db.sql.table", "careers"),
	)
	q := `SELECT id, title, description, required_skills, interests, created_at
		FROM careers ORDER BY created_at DESC`
	rows, err := r.Pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("op=career.list: %w", err)
	}
	defer rows.Close()
	var out []domain.Career
	for rows.Next() {
		var c domain.Career
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.RequiredSkills, &c.Interests, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("op=career.list.scan: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("op=career.list.rows: %w", err)
	}
	return out, nil
}

// CourseRepo reads the course catalog, newest entries first.
type CourseRepo struct{ Pool PgxPool }

// NewCourseRepo constructs a CourseRepo with the given pool.
func NewCourseRepo(p PgxPool) *CourseRepo { return &CourseRepo{Pool: p} }

// List returns the full course catalog ordered by creation time descending.
func (r *CourseRepo) List(ctx domain.Context) ([]domain.Course, error) {
	tracer := otel.Tracer("repo.courses")
	ctx, span := tracer.Start(ctx, "courses.List")
	defer span.End()
	span.SetAttributes(
		attribute.String("db.system", "postgresql"),
		attribute.String("db.operation", "SELECT"),
		attribute.String("db.sql.table", "courses"),
	)
	q := `SELECT id, title, description, level, skills_gained, created_at
		FROM courses ORDER BY created_at DESC`
	rows, err := r.Pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("op=course.list: %w", err)
	}
	defer rows.Close()
	var out []domain.Course
	for rows.Next() {
		var c domain.Course
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.Level, &c.SkillsGained, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("op=course.list.scan: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("op=course.list.rows: %w", err)
	}
	return out, nil
}

// Insert adds a career catalog entry; used by the seeder.
func (r *CareerRepo) Insert(ctx domain.Context, c domain.Career) error {
	q := `INSERT INTO careers (id, title, description, required_skills, interests, created_at)
		VALUES ($1,$2,$3,$4,$5,$6) ON CONFLICT (id) DO NOTHING`
	if _, err := r.Pool.Exec(ctx, q, c.ID, c.Title, c.Description, c.RequiredSkills, c.Interests, c.CreatedAt); err != nil {
		return fmt.Errorf("op=career.insert: %w", err)
	}
	return nil
}

// Insert adds a course catalog entry; used by the seeder.
func (r *CourseRepo) Insert(ctx domain.Context, c domain.Course) error {
	q := `INSERT INTO courses (id, title, description, level, skills_gained, created_at)
		VALUES ($1,$2,$3,$4,$5,$6) ON CONFLICT (id) DO NOTHING`
	if _, err := r.Pool.Exec(ctx, q, c.ID, c.Title, c.Description, c.Level, c.SkillsGained, c.CreatedAt); err != nil {
		return fmt.Errorf("op=course.insert: %w", err)
	}
	return nil
}
