package postgres

import (
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/careerpath-labs/career-compass/internal/domain"
)

// AssessmentRepo persists assessments keyed by user id. Submitting again
// overwrites the whole row.
type AssessmentRepo struct{ Pool PgxPool }

// NewAssessmentRepo constructs an AssessmentRepo with the given pool.
func NewAssessmentRepo(p PgxPool) *AssessmentRepo { return &AssessmentRepo{Pool: p} }

// Upsert stores or fully replaces the user's assessment.
func (r *AssessmentRepo) Upsert(ctx domain.Context, a domain.Assessment) error {
	tracer := otel.Tracer("repo.assessments")
	ctx, span := tracer.Start(ctx, "assessments.Upsert")
	defer span.End()
	span.SetAttributes(
		attribute.String("db.system", "postgresql"),
		attribute.String("db.operation", "UPSERT"),
		attribute.String("db.sql.table", "assessments"),
	)
	q := `INSERT INTO assessments
		(user_id, skills, interests, education_level, education_field, education_gpa,
		 work_environment, work_style, salary_preference, location_preference, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		ON CONFLICT (user_id) DO UPDATE SET
		 skills=EXCLUDED.skills, interests=EXCLUDED.interests,
		 education_level=EXCLUDED.education_level, education_field=EXCLUDED.education_field,
		 education_gpa=EXCLUDED.education_gpa, work_environment=EXCLUDED.work_environment,
		 work_style=EXCLUDED.work_style, salary_preference=EXCLUDED.salary_preference,
		 location_preference=EXCLUDED.location_preference, updated_at=EXCLUDED.updated_at`
	_, err := r.Pool.Exec(ctx, q,
		a.UserID, a.Skills, a.Interests,
		a.Education.Level, a.Education.Field, a.Education.GPA,
		a.Preferences.WorkEnvironment, a.Preferences.WorkStyle,
		a.Preferences.Salary, a.Preferences.Location, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("op=assessment.upsert: %w", err)
	}
	return nil
}

// GetByUserID loads the user's assessment or returns domain.ErrNotFound.
func (r *AssessmentRepo) GetByUserID(ctx domain.Context, userID string) (domain.Assessment, error) {
	tracer := otel.Tracer("repo.assessments")
	ctx, span := tracer.Start(ctx, "assessments.GetByUserID")
	defer span.End()
	span.SetAttributes(
		attribute.String("db.system", "postgresql"),
		attribute.String("db.operation", "SELECT"),
		attribute.String("db.sql.table", "assessments"),
	)
	q := `SELECT user_id, skills, interests, education_level, education_field, education_gpa,
		work_environment, work_style, salary_preference, location_preference, updated_at
		FROM assessments WHERE user_id=$1`
	row := r.Pool.QueryRow(ctx, q, userID)
	var a domain.Assessment
	err := row.Scan(&a.UserID, &a.Skills, &a.Interests,
		&a.Education.Level, &a.Education.Field, &a.Education.GPA,
		&a.Preferences.WorkEnvironment, &a.Preferences.WorkStyle,
		&a.Preferences.Salary, &a.Preferences.Location, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Assessment{}, fmt.Errorf("%w: assessment for user %s", domain.ErrNotFound, userID)
		}
		return domain.Assessment{}, fmt.Errorf("op=assessment.get: %w", err)
	}
	return a, nil
}

// Delete resets the user's assessment. Deleting a missing row is not an error.
func (r *AssessmentRepo) Delete(ctx domain.Context, userID string) error {
	tracer := otel.Tracer("repo.assessments")
	ctx, span := tracer.Start(ctx, "assessments.Delete")
	defer span.End()
	span.SetAttributes(
		attribute.String("db.system", "postgresql"),
		attribute.String("db.operation", "DELETE"),
		attribute.String("db.sql.table", "assessments"),
	)
	if _, err := r.Pool.Exec(ctx, `DELETE FROM assessments WHERE user_id=$1`, userID); err != nil {
		return fmt.Errorf("op=assessment.delete: %w", err)
	}
	return nil
}
