package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"mypets-voice/internal/domain/conversations"

	"github.com/redis/go-redis/v9"
)

const DefaultPrefix = "mypets"

// TurnsRepo guarda el log de chat en Redis.
// Keys: "{prefix}:turns:seq" para los IDs y "{prefix}:persona:{id}:turns" (lista, RPUSH).
type TurnsRepo struct {
	client redis.UniversalClient
	prefix string
}

func NewTurnsRepo(client redis.UniversalClient, prefix string) *TurnsRepo {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &TurnsRepo{client: client, prefix: prefix}
}

type turnRecord struct {
	ID             int64     `json:"id"`
	PersonaID      int64     `json:"persona_id"`
	UserMessage    string    `json:"user_message"`
	GeneratedReply string    `json:"generated_reply"`
	CreatedAt      time.Time `json:"created_at"`
}

func (r *TurnsRepo) seqKey() string {
	return r.prefix + ":turns:seq"
}

func (r *TurnsRepo) listKey(personaID int64) string {
	return fmt.Sprintf("%s:persona:%d:turns", r.prefix, personaID)
}

// Append asigna el ID con INCR y agrega el turno con un único RPUSH.
// Si el RPUSH falla el ID queda salteado, pero no queda un turno a medias.
func (r *TurnsRepo) Append(ctx context.Context, t conversations.Turn) (conversations.Turn, error) {
	if t.PersonaID <= 0 {
		return conversations.Turn{}, errors.New("turn persona id required")
	}

	id, err := r.client.Incr(ctx, r.seqKey()).Result()
	if err != nil {
		return conversations.Turn{}, fmt.Errorf("allocate turn id: %w", err)
	}
	t.ID = id

	payload, err := json.Marshal(turnRecord{
		ID:             t.ID,
		PersonaID:      t.PersonaID,
		UserMessage:    t.UserMessage,
		GeneratedReply: t.GeneratedReply,
		CreatedAt:      t.CreatedAt.UTC(),
	})
	if err != nil {
		return conversations.Turn{}, err
	}

	if err := r.client.RPush(ctx, r.listKey(t.PersonaID), payload).Err(); err != nil {
		return conversations.Turn{}, fmt.Errorf("push turn: %w", err)
	}
	return t, nil
}

func (r *TurnsRepo) ListByPersona(ctx context.Context, personaID int64, limit int) ([]conversations.Turn, error) {
	limit = conversations.NormalizeLimit(limit)

	raw, err := r.client.LRange(ctx, r.listKey(personaID), int64(-limit), -1).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []conversations.Turn{}, nil
		}
		return nil, err
	}

	out := make([]conversations.Turn, 0, len(raw))
	for _, item := range raw {
		var rec turnRecord
		if err := json.Unmarshal([]byte(item), &rec); err != nil {
			return nil, fmt.Errorf("decode turn: %w", err)
		}
		out = append(out, conversations.Turn{
			ID:             rec.ID,
			PersonaID:      rec.PersonaID,
			UserMessage:    rec.UserMessage,
			GeneratedReply: rec.GeneratedReply,
			CreatedAt:      rec.CreatedAt,
		})
	}
	return out, nil
}

// Ping sirve para el health check al arrancar.
func Ping(ctx context.Context, client redis.UniversalClient) error {
	return client.Ping(ctx).Err()
}
