package postgres

import (
	"context"
	"database/sql"

	"mypets-voice/internal/domain/diaries"
)

type DiariesRepo struct {
	db *sql.DB
}

func NewDiariesRepo(db *sql.DB) *DiariesRepo {
	return &DiariesRepo{db: db}
}

func (r *DiariesRepo) Create(ctx context.Context, e diaries.Entry) (diaries.Entry, error) {
	id, err := insertReturningID(ctx, r.db, `
		INSERT INTO diary_entries (
			persona_id,
			title, content, weather,
			visibility, like_count,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING id
	`,
		e.PersonaID,
		e.Title,
		e.Content,
		e.Weather,
		string(e.Visibility),
		e.LikeCount,
		e.CreatedAt,
		e.UpdatedAt,
	)
	if err != nil {
		return diaries.Entry{}, err
	}

	e.ID = id
	return e, nil
}

func (r *DiariesRepo) ListByPersona(ctx context.Context, personaID int64, limit int) ([]diaries.Entry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, persona_id,
			title, content, weather,
			visibility, like_count,
			created_at, updated_at
		FROM diary_entries
		WHERE persona_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`, personaID, diaries.NormalizeLimit(limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]diaries.Entry, 0)
	for rows.Next() {
		var e diaries.Entry
		var vis string
		if err := rows.Scan(
			&e.ID,
			&e.PersonaID,
			&e.Title,
			&e.Content,
			&e.Weather,
			&vis,
			&e.LikeCount,
			&e.CreatedAt,
			&e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		e.Visibility = diaries.Visibility(vis)
		out = append(out, e)
	}

	return out, rows.Err()
}
