package postgres

import (
	"context"
	"database/sql"

	"mypets-voice/internal/domain/conversations"
)

// TurnsRepo es append-only: no expone update ni delete.
type TurnsRepo struct {
	db *sql.DB
}

func NewTurnsRepo(db *sql.DB) *TurnsRepo {
	return &TurnsRepo{db: db}
}

func (r *TurnsRepo) Append(ctx context.Context, t conversations.Turn) (conversations.Turn, error) {
	id, err := insertReturningID(ctx, r.db, `
		INSERT INTO conversation_turns (
			persona_id, user_message, generated_reply, created_at
		) VALUES ($1,$2,$3,$4)
		RETURNING id
	`,
		t.PersonaID,
		t.UserMessage,
		t.GeneratedReply,
		t.CreatedAt,
	)
	if err != nil {
		return conversations.Turn{}, err
	}

	t.ID = id
	return t, nil
}

// ListByPersona trae los últimos `limit` turnos y los devuelve del más viejo al más nuevo.
func (r *TurnsRepo) ListByPersona(ctx context.Context, personaID int64, limit int) ([]conversations.Turn, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, persona_id, user_message, generated_reply, created_at
		FROM (
			SELECT id, persona_id, user_message, generated_reply, created_at
			FROM conversation_turns
			WHERE persona_id = $1
			ORDER BY id DESC
			LIMIT $2
		) last
		ORDER BY id ASC
	`, personaID, conversations.NormalizeLimit(limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]conversations.Turn, 0)
	for rows.Next() {
		var t conversations.Turn
		if err := rows.Scan(
			&t.ID,
			&t.PersonaID,
			&t.UserMessage,
			&t.GeneratedReply,
			&t.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, t)
	}

	return out, rows.Err()
}
