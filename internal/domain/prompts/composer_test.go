package prompts

import (
	"strings"
	"testing"

	"mypets-voice/internal/domain/personas"
)

func rex() personas.Persona {
	return personas.Persona{
		ID:            1,
		Name:          "Rex",
		Species:       "dog",
		Breed:         "Labrador",
		Personality:   "playful",
		SpeakingStyle: "energetic",
		UserNickname:  "big buddy",
		Likes:         "balls",
		Dislikes:      "baths",
		Habits:        "barks at mail",
	}
}

func TestComposeConversationPrompt_EmbedsAllFieldsInOrder(t *testing.T) {
	p := rex()
	got := ComposeConversationPrompt(p, "how was your day")

	ordered := []string{
		"Rex", "dog", "Labrador",
		p.Personality, p.SpeakingStyle, p.UserNickname,
		p.Likes, p.Dislikes, p.Habits,
	}

	pos := 0
	for _, v := range ordered {
		i := strings.Index(got.System[pos:], v)
		if i < 0 {
			t.Fatalf("system instruction missing %q (or out of order):\n%s", v, got.System)
		}
		pos += i + len(v)
	}

	if got.User != "how was your day" {
		t.Fatalf("user content=%q", got.User)
	}
	if !strings.Contains(got.System, "first person") || !strings.Contains(got.System, "affectionate") {
		t.Fatalf("missing as-the-pet instructions:\n%s", got.System)
	}
}

func TestComposeConversationPrompt_NicknameFallback(t *testing.T) {
	p := rex()
	p.UserNickname = ""

	got := ComposeConversationPrompt(p, "hi")
	if !strings.Contains(got.System, "What you call your owner: "+DefaultNickname+"\n") {
		t.Fatalf("expected fallback nickname line:\n%s", got.System)
	}
	for _, artifact := range []string{": \n", "<nil>", "%!", "{}", "None"} {
		if strings.Contains(got.System, artifact) {
			t.Fatalf("found placeholder artifact %q:\n%s", artifact, got.System)
		}
	}
}

func TestComposeConversationPrompt_MinimalPersona(t *testing.T) {
	p := personas.Persona{Name: "Nabi", Species: "cat"}

	got := ComposeConversationPrompt(p, "")
	if !strings.HasPrefix(got.System, "You are Nabi, a cat.\n") {
		t.Fatalf("unexpected identity line:\n%s", got.System)
	}
	if strings.Contains(got.System, "Personality") || strings.Contains(got.System, "Likes") {
		t.Fatalf("empty fields must be omitted:\n%s", got.System)
	}
	if strings.Contains(got.System, "()") || strings.Contains(got.System, ": \n") {
		t.Fatalf("empty placeholder artifact:\n%s", got.System)
	}
	if got.User != "" {
		t.Fatalf("empty message should stay empty, got %q", got.User)
	}
}

func TestComposeConversationPrompt_Deterministic(t *testing.T) {
	a := ComposeConversationPrompt(rex(), "hello")
	b := ComposeConversationPrompt(rex(), "hello")
	if a != b {
		t.Fatalf("prompt is not deterministic")
	}
}

func TestComposeDiaryPrompt(t *testing.T) {
	got := ComposeDiaryPrompt(rex(), "went to the park and met a corgi", "rainy")

	if !strings.HasPrefix(got.System, "You are Rex, a dog (Labrador).") {
		t.Fatalf("unexpected identity line:\n%s", got.System)
	}
	if !strings.Contains(got.System, "diary") || !strings.Contains(got.System, "first person") || !strings.Contains(got.System, "warm") {
		t.Fatalf("missing diary instructions:\n%s", got.System)
	}
	if !strings.Contains(got.User, "rainy") || !strings.Contains(got.User, "went to the park and met a corgi") {
		t.Fatalf("user content must embed weather and summary verbatim:\n%s", got.User)
	}

	empty := ComposeDiaryPrompt(rex(), "", "")
	if empty.System == "" || empty.User == "" {
		t.Fatalf("empty summary must still produce a well-formed prompt")
	}
}

func TestComposeConversationPrompt_EmbedsValuesVerbatim(t *testing.T) {
	p := personas.Persona{
		Name:          " Rex",
		Species:       "dog ",
		Breed:         "  Labrador",
		Personality:   "\tplayful  ",
		SpeakingStyle: "energetic\n",
		UserNickname:  " big buddy ",
		Likes:         "balls ",
	}

	got := ComposeConversationPrompt(p, "hi")
	for _, v := range []string{p.Name, p.Species, p.Breed, p.Personality, p.SpeakingStyle, p.UserNickname, p.Likes} {
		if !strings.Contains(got.System, v) {
			t.Fatalf("system instruction missing literal %q:\n%s", v, got.System)
		}
	}

	diary := ComposeDiaryPrompt(p, "park", "rainy")
	for _, v := range []string{p.Name, p.Species, p.Breed} {
		if !strings.Contains(diary.System, v) {
			t.Fatalf("diary instruction missing literal %q:\n%s", v, diary.System)
		}
	}
}

func TestComposeConversationPrompt_BlankFieldsOmitted(t *testing.T) {
	p := personas.Persona{Name: "Nabi", Species: "cat", Breed: "   ", Personality: " \t ", UserNickname: "  "}

	got := ComposeConversationPrompt(p, "hi")
	if !strings.HasPrefix(got.System, "You are Nabi, a cat.\n") {
		t.Fatalf("blank breed must be omitted:\n%s", got.System)
	}
	if strings.Contains(got.System, "Personality") {
		t.Fatalf("blank personality must be omitted:\n%s", got.System)
	}
	if !strings.Contains(got.System, "What you call your owner: "+DefaultNickname+"\n") {
		t.Fatalf("blank nickname must fall back:\n%s", got.System)
	}
}
