package events

import (
	"context"
	"errors"
	"strings"
	"testing"

	"startgg-results/internal/domain"
	"startgg-results/internal/providers"
	"startgg-results/internal/providers/fixture"
	"startgg-results/internal/query"
	"startgg-results/internal/testutil"
)

func newService(exec providers.Executor) *Service {
	deps, _ := testutil.NewDeps(exec)
	return NewService(deps)
}

func TestEntrantsKeepsPlacementsAndTags(t *testing.T) {
	svc := newService(fixture.New())

	got, ok, err := svc.Entrants(context.Background(), "900001", 1)
	if err != nil || !ok {
		t.Fatalf("expected standings, got ok=%v err=%v", ok, err)
	}
	if len(got) != 7 {
		t.Fatalf("expected 7 standings, got %d", len(got))
	}
	if got[0].Placement != 1 || got[0].Entrant.Tag != "Hungrybox" {
		t.Fatalf("unexpected first standing %+v", got[0])
	}
}

func TestEntrantsLogsAndCountsSkips(t *testing.T) {
	deps, logs := testutil.NewDeps(fixture.New())
	svc := NewService(deps)

	if _, _, err := svc.Entrants(context.Background(), "900001", 1); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if got := deps.Metrics.Snapshot(string(query.EventEntrants)).SkippedItems; got != 3 {
		t.Fatalf("expected 3 skipped items recorded, got %d", got)
	}
	if strings.Count(logs.String(), "dropped malformed item") != 3 {
		t.Fatalf("expected a warning per skipped item, got %s", logs.String())
	}
}

func TestAllEntrantsStopsAtEmptyPage(t *testing.T) {
	exec := fixture.New()
	svc := newService(exec)

	got, ok, err := svc.AllEntrants(context.Background(), "900001", 0)
	if err != nil || !ok {
		t.Fatalf("expected standings, got ok=%v err=%v", ok, err)
	}
	if len(got) != 7 {
		t.Fatalf("expected a single page of 7 standings, got %d", len(got))
	}
	if exec.Calls(string(query.EventEntrants)) != 2 {
		t.Fatalf("expected second page to end iteration, got %d calls", exec.Calls(string(query.EventEntrants)))
	}
}

func TestAllEntrantsRespectsPageLimit(t *testing.T) {
	exec := fixture.New()
	svc := newService(exec)

	if _, _, err := svc.AllEntrants(context.Background(), "900001", 1); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if exec.Calls(string(query.EventEntrants)) != 1 {
		t.Fatalf("expected a single request, got %d", exec.Calls(string(query.EventEntrants)))
	}
}

func TestAllEntrantsAbsentEvent(t *testing.T) {
	exec := fixture.New().WithResponse(string(query.EventEntrants), `{"data":{"event":null}}`)
	svc := newService(exec)

	got, ok, err := svc.AllEntrants(context.Background(), "1", 0)
	if err != nil || ok || got != nil {
		t.Fatalf("expected absent event, got %v ok=%v err=%v", got, ok, err)
	}
}

func TestSetsAndLightweightResults(t *testing.T) {
	svc := newService(fixture.New())
	ctx := context.Background()

	sets, ok, err := svc.Sets(ctx, "900001", 1)
	if err != nil || !ok || len(sets) != 3 {
		t.Fatalf("expected 3 sets, got %d ok=%v err=%v", len(sets), ok, err)
	}
	results, ok, err := svc.LightweightResults(ctx, "900001", 1)
	if err != nil || !ok || len(results) != 9 {
		t.Fatalf("expected 9 results, got %d ok=%v err=%v", len(results), ok, err)
	}
}

func TestEntrantIDPrefersExactName(t *testing.T) {
	svc := newService(fixture.New())

	id, ok, err := svc.EntrantID(context.Background(), "900001", "hungrybox")
	if err != nil || !ok || id != "5001" {
		t.Fatalf("expected tag match 5001, got %q ok=%v err=%v", id, ok, err)
	}
	id, ok, _ = svc.EntrantID(context.Background(), "900001", "hungrybox fan")
	if !ok || id != "5011" {
		t.Fatalf("expected raw name match 5011, got %q", id)
	}
}

func TestPlayerID(t *testing.T) {
	svc := newService(fixture.New())

	id, ok, err := svc.PlayerID(context.Background(), "900001", "HUNGRYBOX")
	if err != nil || !ok || id != "1004" {
		t.Fatalf("expected player 1004, got %q ok=%v err=%v", id, ok, err)
	}
	if _, ok, _ := svc.PlayerID(context.Background(), "900001", "Zain"); ok {
		t.Fatalf("expected unmatched tag to be absent")
	}
}

func TestHeadToHead(t *testing.T) {
	rec := &testutil.RecordingExecutor{Next: fixture.New()}
	svc := newService(rec)

	sets, ok, err := svc.HeadToHead(context.Background(), "900001", "Hungrybox", "mang0")
	if err != nil || !ok {
		t.Fatalf("expected sets, got ok=%v err=%v", ok, err)
	}
	if len(sets) != 2 {
		t.Fatalf("expected 2 sets against Mang0, got %d", len(sets))
	}
	for _, set := range sets {
		if !set.Involves("Mang0") {
			t.Fatalf("unexpected set %+v", set)
		}
	}
	names := rec.Names()
	if len(names) != 2 || names[0] != query.EventEntrantID || names[1] != query.EventEntrantSets {
		t.Fatalf("expected sequential resolve then fetch, got %v", names)
	}
	if rec.Requests()[1].Variables["entrantId"] != "5001" {
		t.Fatalf("expected resolved entrant id, got %v", rec.Requests()[1].Variables)
	}
}

func TestHeadToHeadStopsWhenEntrantUnknown(t *testing.T) {
	exec := fixture.New().WithResponse(string(query.EventEntrantID), `{"data":{"event":{"entrants":{"nodes":[]}}}}`)
	svc := newService(exec)

	_, ok, err := svc.HeadToHead(context.Background(), "900001", "nobody", "mang0")
	if err != nil || ok {
		t.Fatalf("expected absence, got ok=%v err=%v", ok, err)
	}
	if exec.Calls(string(query.EventEntrantSets)) != 0 {
		t.Fatalf("expected no set lookup")
	}
}

func TestBrackets(t *testing.T) {
	svc := newService(fixture.New())
	ctx := context.Background()

	entrants, ok, err := svc.BracketEntrants(ctx, "2002", 1)
	if err != nil || !ok || len(entrants) != 3 {
		t.Fatalf("expected 3 bracket entrants, got %d ok=%v err=%v", len(entrants), ok, err)
	}
	bracket, ok, err := svc.BracketSets(ctx, "2002", 1)
	if err != nil || !ok || bracket.PhaseName != "Top 8" || len(bracket.Sets) != 2 {
		t.Fatalf("unexpected bracket %+v ok=%v err=%v", bracket, ok, err)
	}
}

func TestProtocolErrorsSurface(t *testing.T) {
	exec := fixture.New().WithResponse(string(query.EventSets), `{"data":null,"errors":[{"message":"Event not found"}]}`)
	svc := newService(exec)

	_, ok, err := svc.Sets(context.Background(), "0", 1)
	var perr *providers.ProtocolError
	if !errors.As(err, &perr) || ok {
		t.Fatalf("expected protocol error, got %v", err)
	}
	if len(perr.Messages) != 1 || perr.Messages[0] != "Event not found" {
		t.Fatalf("expected original messages, got %+v", perr.Messages)
	}
}

func TestPageVarsClampsPage(t *testing.T) {
	vars := pageVars(-3, "eventId", domain.ID("1").String())
	if vars["page"] != query.FirstPage || vars["eventId"] != "1" {
		t.Fatalf("unexpected vars %v", vars)
	}
}
