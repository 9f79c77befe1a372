package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"mypets-voice/internal/domain/personas"
)

type PersonasRepo struct {
	db *sql.DB
}

func NewPersonasRepo(db *sql.DB) *PersonasRepo {
	return &PersonasRepo{db: db}
}

const personaColumns = `
	id, owner_account_id,
	name, species, breed, gender, neutered,
	personality, speaking_style, user_nickname,
	likes, dislikes, habits,
	characteristics, family_info, other_info,
	created_at, updated_at`

func (r *PersonasRepo) Create(ctx context.Context, p personas.Persona) (personas.Persona, error) {
	id, err := insertReturningID(ctx, r.db, `
		INSERT INTO personas (
			owner_account_id,
			name, species, breed, gender, neutered,
			personality, speaking_style, user_nickname,
			likes, dislikes, habits,
			characteristics, family_info, other_info,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
		RETURNING id
	`,
		p.OwnerAccountID,
		p.Name,
		p.Species,
		p.Breed,
		p.Gender,
		p.Neutered,
		p.Personality,
		p.SpeakingStyle,
		p.UserNickname,
		p.Likes,
		p.Dislikes,
		p.Habits,
		p.Characteristics,
		p.FamilyInfo,
		p.OtherInfo,
		p.CreatedAt,
		p.UpdatedAt,
	)
	if err != nil {
		return personas.Persona{}, err
	}

	p.ID = id
	return p, nil
}

func (r *PersonasRepo) GetByID(ctx context.Context, id int64) (personas.Persona, error) {
	if id <= 0 {
		return personas.Persona{}, personas.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT`+personaColumns+` FROM personas WHERE id = $1`, id)

	p, err := scanPersona(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return personas.Persona{}, personas.ErrNotFound
		}
		return personas.Persona{}, err
	}
	return p, nil
}

func (r *PersonasRepo) ListByOwner(ctx context.Context, ownerAccountID string) ([]personas.Persona, error) {
	ownerAccountID = strings.TrimSpace(ownerAccountID)
	if ownerAccountID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `SELECT`+personaColumns+`
		FROM personas
		WHERE owner_account_id = $1
		ORDER BY id ASC
	`, ownerAccountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]personas.Persona, 0)
	for rows.Next() {
		p, err := scanPersona(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, rows.Err()
}

// rowScanner cubre *sql.Row y *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPersona(s rowScanner) (personas.Persona, error) {
	var p personas.Persona
	err := s.Scan(
		&p.ID,
		&p.OwnerAccountID,
		&p.Name,
		&p.Species,
		&p.Breed,
		&p.Gender,
		&p.Neutered,
		&p.Personality,
		&p.SpeakingStyle,
		&p.UserNickname,
		&p.Likes,
		&p.Dislikes,
		&p.Habits,
		&p.Characteristics,
		&p.FamilyInfo,
		&p.OtherInfo,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}
