package postgres

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/careerpath-labs/career-compass/internal/domain"
)

// ConversationRepo stores chat exchanges for later context and retention.
type ConversationRepo struct{ Pool PgxPool }

// NewConversationRepo constructs a ConversationRepo with the given pool.
func NewConversationRepo(p PgxPool) *ConversationRepo { return &ConversationRepo{Pool: p} }

// Append stores one message and returns its id (generated when empty).
func (r *ConversationRepo) Append(ctx domain.Context, m domain.Message) (string, error) {
	tracer := otel.Tracer("repo.conversations")
	ctx, span := tracer.Start(ctx, "conversations.Append")
	defer span.End()
	span.SetAttributes(
		attribute.String("db.system", "postgresql"),
		attribute.String("db.operation", "INSERT"),
		attribute.String("db.sql.table", "conversations"),
	)
	id := m.ID
	if id == "" {
		id = uuid.New().String()
	}
	created := m.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	}
	q := `INSERT INTO conversations (id, user_id, role, content, created_at) VALUES ($1,$2,$3,$4,$5)`
	if _, err := r.Pool.Exec(ctx, q, id, m.UserID, m.Role, m.Content, created); err != nil {
		return "", fmt.Errorf("op=conversation.append: %w", err)
	}
	return id, nil
}

// History returns the user's most recent messages in chronological order.
func (r *ConversationRepo) History(ctx domain.Context, userID string, limit int) ([]domain.Message, error) {
	tracer := otel.Tracer("repo.conversations")
	ctx, span := tracer.Start(ctx, "conversations.History")
	defer span.End()
	span.SetAttributes(
		attribute.String("db.system", "postgresql"),
		attribute.String("db.operation", "SELECT"),
		attribute.String("db.sql.table", "conversations"),
	)
	q := `SELECT id, user_id, role, content, created_at FROM (
		SELECT id, user_id, role, content, created_at FROM conversations
		WHERE user_id=$1 ORDER BY created_at DESC LIMIT $2
	) recent ORDER BY created_at ASC`
	rows, err := r.Pool.Query(ctx, q, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("op=conversation.history: %w", err)
	}
	defer rows.Close()
	var out []domain.Message
	for rows.Next() {
		var m domain.Message
		if err := rows.Scan(&m.ID, &m.UserID, &m.Role, &m.Content, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("op=conversation.history.scan: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("op=conversation.history.rows: %w", err)
	}
	return out, nil
}
