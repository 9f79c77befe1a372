// Package prompts arma las instrucciones que se mandan al generador de texto
// a partir de la persona de la mascota. Funciones puras: misma entrada, mismo prompt.
package prompts

import (
	"strings"

	"mypets-voice/internal/domain/personas"
)

// DefaultNickname es cómo la mascota llama al owner si no se definió apodo.
const DefaultNickname = "owner"

// Prompt es la instrucción de sistema + el contenido a enviar como "user".
type Prompt struct {
	System string
	User   string
}

const conversationRules = `Talk with your owner from your own point of view as this pet.
Always answer in the first person, as the pet, never as an assistant.
Keep a friendly, affectionate tone, and be playful and cute now and then.`

const diaryRules = `Write today's diary entry based on what happened today.
Look back on the day from your own point of view as this pet, in the first person,
expressing your feelings and thoughts. Use a warm, cute writing style.`

// ComposeConversationPrompt arma el prompt para responder un mensaje del owner.
// Los campos vacíos se omiten; el apodo del owner siempre aparece.
func ComposeConversationPrompt(p personas.Persona, userMessage string) Prompt {
	var b strings.Builder

	b.WriteString(identityLine(p))
	b.WriteString("\n")

	writeField(&b, "Personality", p.Personality)
	writeField(&b, "Speaking style", p.SpeakingStyle)
	writeField(&b, "What you call your owner", nickname(p))
	writeField(&b, "Likes", p.Likes)
	writeField(&b, "Dislikes", p.Dislikes)
	writeField(&b, "Habits", p.Habits)
	writeField(&b, "Characteristics", p.Characteristics)
	writeField(&b, "Family", p.FamilyInfo)
	writeField(&b, "Other details", p.OtherInfo)

	b.WriteString("\n")
	b.WriteString(conversationRules)

	return Prompt{
		System: b.String(),
		User:   userMessage,
	}
}

// ComposeDiaryPrompt arma el prompt para el diario del día.
// weather y daySummary van tal cual en el contenido de usuario.
func ComposeDiaryPrompt(p personas.Persona, daySummary, weather string) Prompt {
	var sys strings.Builder
	sys.WriteString(identityLine(p))
	sys.WriteString("\n\n")
	sys.WriteString(diaryRules)

	var user strings.Builder
	user.WriteString("Today's weather: ")
	user.WriteString(weather)
	user.WriteString("\nWhat happened today: ")
	user.WriteString(daySummary)
	user.WriteString("\n\nPlease write the diary entry based on this.")

	return Prompt{
		System: sys.String(),
		User:   user.String(),
	}
}

// identityLine: "You are Rex, a dog (Labrador)."
// Los valores van tal cual; TrimSpace solo decide si están vacíos.
func identityLine(p personas.Persona) string {
	var b strings.Builder
	b.WriteString("You are ")
	b.WriteString(p.Name)

	if !blank(p.Species) {
		b.WriteString(", a ")
		b.WriteString(p.Species)
	}
	if !blank(p.Breed) {
		b.WriteString(" (")
		b.WriteString(p.Breed)
		b.WriteString(")")
	}
	b.WriteString(".")
	return b.String()
}

func nickname(p personas.Persona) string {
	if !blank(p.UserNickname) {
		return p.UserNickname
	}
	return DefaultNickname
}

func writeField(b *strings.Builder, label, value string) {
	if blank(value) {
		return
	}
	b.WriteString(label)
	b.WriteString(": ")
	b.WriteString(value)
	b.WriteString("\n")
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
