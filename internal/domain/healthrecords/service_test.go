package healthrecords

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"mypets-voice/internal/domain/personas"
)

type testRepo struct {
	mu     sync.Mutex
	nextID int64
	items  []Record
}

func (r *testRepo) Create(ctx context.Context, rec Record) (Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	rec.ID = r.nextID
	r.items = append(r.items, rec)
	return rec, nil
}

func (r *testRepo) ListByPersona(ctx context.Context, personaID int64, filter ListFilter) ([]Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Record, 0)
	for _, rec := range r.items {
		if rec.PersonaID == personaID && filter.Matches(rec) {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

type testPersonas map[int64]personas.Persona

func (t testPersonas) GetPersona(ctx context.Context, id int64, account string) (personas.Persona, error) {
	p, ok := t[id]
	if !ok {
		return personas.Persona{}, personas.ErrNotFound
	}
	if p.OwnerAccountID != account {
		return personas.Persona{}, personas.ErrForbidden
	}
	return p, nil
}

func newTestService() (*Service, *testRepo) {
	repo := &testRepo{}
	svc := NewService(repo, testPersonas{
		1: {ID: 1, OwnerAccountID: "owner-1", Name: "Rex", Species: "dog"},
	})
	svc.now = func() time.Time { return time.Date(2026, 4, 10, 9, 30, 0, 0, time.UTC) }
	return svc, repo
}

func TestCreate_NormalizesAndStores(t *testing.T) {
	svc, repo := newTestService()

	rec, err := svc.Create(context.Background(), 1, "owner-1", CreateInput{
		Type:        " Allergy ",
		Title:       "  Chicken allergy ",
		Description: " itchy skin ",
		RecordDate:  time.Date(2026, 3, 2, 18, 45, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if rec.ID == 0 || rec.PersonaID != 1 {
		t.Fatalf("unexpected ids: %+v", rec)
	}
	if rec.Type != TypeAllergy || rec.Title != "Chicken allergy" || rec.Description != "itchy skin" {
		t.Fatalf("fields not normalized: %+v", rec)
	}
	if !rec.RecordDate.Equal(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("record date must be date-only, got %v", rec.RecordDate)
	}
	if !rec.CreatedAt.Equal(time.Date(2026, 4, 10, 9, 30, 0, 0, time.UTC)) {
		t.Fatalf("CreatedAt=%v", rec.CreatedAt)
	}
	if len(repo.items) != 1 {
		t.Fatalf("expected one stored record, got %d", len(repo.items))
	}
}

func TestCreate_InvalidInput(t *testing.T) {
	svc, repo := newTestService()
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	cases := map[string]CreateInput{
		"missing type": {Title: "x", RecordDate: date},
		"long type":    {Type: RecordType(strings.Repeat("a", MaxTypeLen+1)), Title: "x", RecordDate: date},
		"blank title":  {Type: TypeVaccine, Title: "  ", RecordDate: date},
		"long title":   {Type: TypeVaccine, Title: strings.Repeat("t", MaxTitleLen+1), RecordDate: date},
		"missing date": {Type: TypeVaccine, Title: "Rabies"},
	}
	for name, in := range cases {
		if _, err := svc.Create(context.Background(), 1, "owner-1", in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", name, err)
		}
	}
	if len(repo.items) != 0 {
		t.Fatalf("invalid input must not be stored")
	}
}

func TestCreateAndList_OwnerOnly(t *testing.T) {
	svc, repo := newTestService()
	in := CreateInput{Type: TypeVaccine, Title: "Rabies", RecordDate: time.Now()}

	if _, err := svc.Create(context.Background(), 1, "intruder", in); !errors.Is(err, personas.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := svc.Create(context.Background(), 42, "owner-1", in); !errors.Is(err, personas.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.ListByPersona(context.Background(), 1, "intruder", ListFilter{}); !errors.Is(err, personas.ErrForbidden) {
		t.Fatalf("expected ErrForbidden on list, got %v", err)
	}
	if len(repo.items) != 0 {
		t.Fatalf("rejected requests must not store anything")
	}
}

func TestListByPersona_NewestFirstAndFilters(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	day := func(d int) time.Time { return time.Date(2026, 1, d, 0, 0, 0, 0, time.UTC) }
	for _, in := range []CreateInput{
		{Type: TypeVaccine, Title: "Rabies", RecordDate: day(5)},
		{Type: TypeAllergy, Title: "Chicken", RecordDate: day(10)},
		{Type: TypeCheckup, Title: "Yearly", RecordDate: day(20)},
	} {
		if _, err := svc.Create(ctx, 1, "owner-1", in); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	all, err := svc.ListByPersona(ctx, 1, "owner-1", ListFilter{})
	if err != nil {
		t.Fatalf("ListByPersona: %v", err)
	}
	if len(all) != 3 || all[0].Title != "Yearly" || all[2].Title != "Rabies" {
		t.Fatalf("expected newest first, got %+v", all)
	}

	vaccines, _ := svc.ListByPersona(ctx, 1, "owner-1", ListFilter{Types: []RecordType{TypeVaccine}})
	if len(vaccines) != 1 || vaccines[0].Title != "Rabies" {
		t.Fatalf("type filter: %+v", vaccines)
	}

	from, to := day(6), day(10)
	ranged, _ := svc.ListByPersona(ctx, 1, "owner-1", ListFilter{From: &from, To: &to})
	if len(ranged) != 1 || ranged[0].Title != "Chicken" {
		t.Fatalf("date range filter (inclusive): %+v", ranged)
	}

	limited, _ := svc.ListByPersona(ctx, 1, "owner-1", ListFilter{Limit: 2})
	if len(limited) != 2 {
		t.Fatalf("limit: got %d", len(limited))
	}

	if _, err := svc.ListByPersona(ctx, 1, "owner-1", ListFilter{From: &to, To: &from}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("inverted range must be invalid, got %v", err)
	}
}
