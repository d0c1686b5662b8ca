package postgres

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/careerpath-labs/career-compass/internal/domain"
)

// ResumeRepo stores extracted resume text per user.
type ResumeRepo struct{ Pool PgxPool }

// NewResumeRepo constructs a ResumeRepo with the given pool.
func NewResumeRepo(p PgxPool) *ResumeRepo { return &ResumeRepo{Pool: p} }

// Create stores a new resume and returns its id (generates one if empty).
func (r *ResumeRepo) Create(ctx domain.Context, res domain.Resume) (string, error) {
	tracer := otel.Tracer("repo.resumes")
	ctx, span := tracer.Start(ctx, "resumes.Create")
	defer span.End()
	span.SetAttributes(
		attribute.String("db.system", "postgresql"),
		attribute.String("db.operation", "INSERT"),
		attribute.String("db.sql.table", "resumes"),
	)
	id := res.ID
	if id == "" {
		id = uuid.New().String()
	}
	q := `INSERT INTO resumes (id, user_id, filename, text, created_at) VALUES ($1,$2,$3,$4,$5)`
	if _, err := r.Pool.Exec(ctx, q, id, res.UserID, res.Filename, res.Text, time.Now().UTC()); err != nil {
		return "", fmt.Errorf("op=resume.create: %w", err)
	}
	return id, nil
}

// GetByUserID loads the user's most recent resume or domain.ErrNotFound.
func (r *ResumeRepo) GetByUserID(ctx domain.Context, userID string) (domain.Resume, error) {
	tracer := otel.Tracer("repo.resumes")
	ctx, span := tracer.Start(ctx, "resumes.GetByUserID")
	defer span.End()
	span.SetAttributes(
		attribute.String("db.system", "postgresql"),
		attribute.String("db.operation", "SELECT"),
		attribute.String("db.sql.table", "resumes"),
	)
	q := `SELECT id, user_id, filename, text, created_at FROM resumes
		WHERE user_id=$1 ORDER BY created_at DESC LIMIT 1`
	row := r.Pool.QueryRow(ctx, q, userID)
	var res domain.Resume
	if err := row.Scan(&res.ID, &res.UserID, &res.Filename, &res.Text, &res.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Resume{}, fmt.Errorf("%w: resume for user %s", domain.ErrNotFound, userID)
		}
		return domain.Resume{}, fmt.Errorf("op=resume.get: %w", err)
	}
	return res, nil
}
