package conversations

import "time"

// Turn es un intercambio mensaje/respuesta. Inmutable una vez creado.
type Turn struct {
	ID        int64
	PersonaID int64

	UserMessage    string
	GeneratedReply string

	CreatedAt time.Time
}
