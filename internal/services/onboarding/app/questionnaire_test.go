package app

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/louisbranch/careerpath/internal/services/onboarding/order"
	"github.com/louisbranch/careerpath/internal/services/onboarding/riasec"
	"github.com/louisbranch/careerpath/internal/services/onboarding/storage"
	"github.com/louisbranch/careerpath/internal/services/onboarding/storage/memory"
)

func TestPresentFirstVisitUsesSeededShuffle(t *testing.T) {
	t.Parallel()

	q := NewQuestionnaire(memory.New(), Config{AllowShuffle: true})
	got := q.Present(context.Background(), "user123")

	want := []string{"s10", "s1", "s7", "s11", "s3", "s6", "s4", "s12", "s9", "s5", "s2", "s8"}
	if diff := cmp.Diff(want, riasec.IDs(got.Scenarios)); diff != "" {
		t.Fatalf("scenario order mismatch (-want +got):\n%s", diff)
	}
	if got.Source != order.SourceShuffled || !got.Persisted {
		t.Fatalf("presentation = %s persisted=%v, want shuffled and persisted", got.Source, got.Persisted)
	}
	if got.Version != order.DefaultVersion {
		t.Fatalf("version = %q, want %q", got.Version, order.DefaultVersion)
	}
}

func TestPresentKeepsOptionShuffleIndependentOfOrder(t *testing.T) {
	t.Parallel()

	q := NewQuestionnaire(memory.New(), Config{AllowShuffle: true})
	presented := q.Scenarios(context.Background(), "user123")
	built := riasec.Build("user123", false)
	byID := make(map[string]riasec.Scenario, len(built))
	for _, sc := range built {
		byID[sc.ID] = sc
	}
	for _, sc := range presented {
		if diff := cmp.Diff(byID[sc.ID], sc); diff != "" {
			t.Fatalf("%s mismatch (-built +presented):\n%s", sc.ID, diff)
		}
	}
}

func TestPresentIsStableAcrossVisits(t *testing.T) {
	t.Parallel()

	store := memory.New()
	first := NewQuestionnaire(store, Config{AllowShuffle: true}).Present(context.Background(), "u1")
	second := NewQuestionnaire(store, Config{AllowShuffle: true}).Present(context.Background(), "u1")
	if diff := cmp.Diff(first.Scenarios, second.Scenarios); diff != "" {
		t.Fatalf("scenarios differ (-first +second):\n%s", diff)
	}
	if second.Source != order.SourceReconciled {
		t.Fatalf("second source = %s, want %s", second.Source, order.SourceReconciled)
	}
}

func TestPresentAppendsNewCatalogScenarios(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := memory.New()
	before := NewQuestionnaire(store, Config{AllowShuffle: true}).Present(ctx, "u1")

	extended, err := riasec.Extend(riasec.DefaultCatalog(), []riasec.Template{{
		ID:   "s_new",
		Text: "A new question",
		Options: []riasec.OptionTemplate{
			{Text: "a", Scores: riasec.Vector(riasec.Social, "")},
			{Text: "b", Scores: riasec.Vector(riasec.Realistic, "")},
		},
	}})
	if err != nil {
		t.Fatalf("extend catalog: %v", err)
	}
	after := NewQuestionnaire(store, Config{AllowShuffle: true, Catalog: extended}).Present(ctx, "u1")

	want := append(riasec.IDs(before.Scenarios), "s_new")
	if diff := cmp.Diff(want, riasec.IDs(after.Scenarios)); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestPresentWithoutShuffleUsesCatalogOrder(t *testing.T) {
	t.Parallel()

	got := NewQuestionnaire(nil, Config{}).Present(context.Background(), "u1")
	want := []string{"s1", "s2", "s3", "s4", "s5", "s6", "s7", "s8", "s9", "s10", "s11", "s12"}
	if diff := cmp.Diff(want, riasec.IDs(got.Scenarios)); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
	if got.Persisted {
		t.Fatal("expected nothing persisted without storage")
	}
}

func TestOrderAndReset(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := memory.New()
	q := NewQuestionnaire(store, Config{Version: "v7"})

	if _, err := q.Order(ctx, "u1"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("order before resolve error = %v, want %v", err, storage.ErrNotFound)
	}
	presented := q.Present(ctx, "u1")
	ids, err := q.Order(ctx, "u1")
	if err != nil {
		t.Fatalf("order: %v", err)
	}
	if diff := cmp.Diff(riasec.IDs(presented.Scenarios), ids); diff != "" {
		t.Fatalf("persisted order mismatch (-presented +stored):\n%s", diff)
	}
	if _, err := store.GetItem(ctx, "riasec_scenarios_order_v7_u1"); err != nil {
		t.Fatalf("expected versioned key: %v", err)
	}

	if err := q.Reset(ctx, "u1"); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if _, err := q.Order(ctx, "u1"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("order after reset error = %v, want %v", err, storage.ErrNotFound)
	}
}

func TestOrderReportsCorruptValue(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := memory.New()
	if err := store.SetItem(ctx, order.StorageKey("u1", "v1"), "not json"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := NewQuestionnaire(store, Config{}).Order(ctx, "u1"); err == nil {
		t.Fatal("expected corrupt order error")
	}
}

func TestScore(t *testing.T) {
	t.Parallel()

	q := NewQuestionnaire(nil, Config{})
	answers, err := q.Score("user123", map[string]string{"s1": "s1:o1"})
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if got := answers.HollandCode(1); got != "S" {
		t.Fatalf("holland code = %q, want S", got)
	}
}
