package personas

import "time"

// Persona es la identidad conversacional de una mascota.
// Un owner (cuenta) tiene N personas; cada persona tiene un único owner.
type Persona struct {
	ID             int64
	OwnerAccountID string

	// Identidad
	Name     string
	Species  string // dog, cat, ...
	Breed    string
	Gender   string
	Neutered bool

	// Campos para el chat. Vacío = no definido.
	Personality   string
	SpeakingStyle string
	UserNickname  string // cómo la mascota llama al owner
	Likes         string
	Dislikes      string
	Habits        string

	Characteristics string
	FamilyInfo      string
	OtherInfo       string

	CreatedAt time.Time
	UpdatedAt time.Time
}
