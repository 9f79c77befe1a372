package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"mypets-voice/internal/domain/healthrecords"
)

type HealthRecordsRepo struct {
	db *sql.DB
}

func NewHealthRecordsRepo(db *sql.DB) *HealthRecordsRepo {
	return &HealthRecordsRepo{db: db}
}

func (r *HealthRecordsRepo) Create(ctx context.Context, rec healthrecords.Record) (healthrecords.Record, error) {
	id, err := insertReturningID(ctx, r.db, `
		INSERT INTO health_records (
			persona_id,
			type, title, description,
			record_date, created_at
		) VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id
	`,
		rec.PersonaID,
		string(rec.Type),
		rec.Title,
		rec.Description,
		rec.RecordDate,
		rec.CreatedAt,
	)
	if err != nil {
		return healthrecords.Record{}, err
	}

	rec.ID = id
	return rec, nil
}

func (r *HealthRecordsRepo) ListByPersona(ctx context.Context, personaID int64, filter healthrecords.ListFilter) ([]healthrecords.Record, error) {
	where := []string{"persona_id = $1"}
	args := []any{personaID}

	if len(filter.Types) > 0 {
		ph := make([]string, 0, len(filter.Types))
		for _, t := range filter.Types {
			args = append(args, string(t))
			ph = append(ph, fmt.Sprintf("$%d", len(args)))
		}
		where = append(where, "type IN ("+strings.Join(ph, ",")+")")
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		where = append(where, fmt.Sprintf("record_date >= $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		where = append(where, fmt.Sprintf("record_date <= $%d", len(args)))
	}

	args = append(args, healthrecords.NormalizeLimit(filter.Limit))
	query := fmt.Sprintf(`
		SELECT
			id, persona_id,
			type, title, description,
			record_date, created_at
		FROM health_records
		WHERE %s
		ORDER BY created_at DESC, id DESC
		LIMIT $%d
	`, strings.Join(where, " AND "), len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]healthrecords.Record, 0)
	for rows.Next() {
		var rec healthrecords.Record
		var typ string
		if err := rows.Scan(
			&rec.ID,
			&rec.PersonaID,
			&typ,
			&rec.Title,
			&rec.Description,
			&rec.RecordDate,
			&rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		rec.Type = healthrecords.RecordType(typ)
		rec.RecordDate = healthrecords.DateOnly(rec.RecordDate)
		out = append(out, rec)
	}
	return out, rows.Err()
}
