package players

import (
	"context"
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

func TestProfileSlug(t *testing.T) {
	cases := map[string]string{
		"a1b2c3d4":        "user/a1b2c3d4",
		" user/a1b2c3d4 ": "user/a1b2c3d4",
		"user/x":          "user/x",
	}
	for in, want := range cases {
		if got := ProfileSlug(in); got != want {
			t.Fatalf("ProfileSlug(%q) expected %q, got %q", in, want, got)
		}
	}
}

func TestLookupIDAddsPrefix(t *testing.T) {
	rec := &testutil.RecordingExecutor{Next: fixture.New()}
	svc := newService(rec)

	id, ok, err := svc.LookupID(context.Background(), "a1b2c3d4")
	if err != nil || !ok || id != "1000" {
		t.Fatalf("expected player 1000, got %q ok=%v err=%v", id, ok, err)
	}
	if rec.Requests()[0].Variables["discriminatorSlug"] != "user/a1b2c3d4" {
		t.Fatalf("expected prefixed slug, got %v", rec.Requests()[0].Variables)
	}
}

func TestInfoAndBySlug(t *testing.T) {
	svc := newService(fixture.New())
	ctx := context.Background()

	info, ok, err := svc.Info(ctx, "1000")
	if err != nil || !ok || info.Tag != "Mang0" || len(info.Rankings) != 1 {
		t.Fatalf("unexpected info %+v ok=%v err=%v", info, ok, err)
	}
	player, ok, err := svc.BySlug(ctx, "a1b2c3d4")
	if err != nil || !ok || player.Profile == nil || player.Profile.Name != "Joseph Marquez" {
		t.Fatalf("unexpected player %+v ok=%v err=%v", player, ok, err)
	}
}

func TestRecentPlacementsResolvesThenFetches(t *testing.T) {
	rec := &testutil.RecordingExecutor{Next: fixture.New()}
	svc := newService(rec)

	got, ok, err := svc.RecentPlacements(context.Background(), "a1b2c3d4", "1")
	if err != nil || !ok {
		t.Fatalf("expected placements, got ok=%v err=%v", ok, err)
	}
	if len(got.Placements) != 4 || got.Placements[0].ID != "70001" {
		t.Fatalf("unexpected placements %+v", got.Placements)
	}
	names := rec.Names()
	if len(names) != 2 || names[0] != query.PlayerLookupID || names[1] != query.PlayerRecentPlacements {
		t.Fatalf("expected lookup then fetch, got %v", names)
	}
	if rec.Requests()[1].Variables["gameID"] != "1" {
		t.Fatalf("expected game filter, got %v", rec.Requests()[1].Variables)
	}
}

func TestRecentPlacementsWithoutGameOmitsFilter(t *testing.T) {
	rec := &testutil.RecordingExecutor{Next: fixture.New()}
	svc := newService(rec)

	if _, _, err := svc.RecentPlacements(context.Background(), "a1b2c3d4", ""); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if _, has := rec.Requests()[1].Variables["gameID"]; has {
		t.Fatalf("expected no game filter, got %v", rec.Requests()[1].Variables)
	}
}

func TestRecentPlacementsUnknownProfile(t *testing.T) {
	exec := fixture.New().WithResponse(string(query.PlayerLookupID), `{"data":{"user":null}}`)
	svc := newService(exec)

	_, ok, err := svc.RecentPlacements(context.Background(), "nobody", "1")
	if err != nil || ok {
		t.Fatalf("expected absence, got ok=%v err=%v", ok, err)
	}
	if exec.Calls(string(query.PlayerRecentPlacements)) != 0 {
		t.Fatalf("expected no placement fetch for unknown profile")
	}
}

func TestTournaments(t *testing.T) {
	svc := newService(fixture.New())

	got, ok, err := svc.Tournaments(context.Background(), "1000", 0)
	if err != nil || !ok || len(got) != 2 {
		t.Fatalf("unexpected tournaments %+v ok=%v err=%v", got, ok, err)
	}
}

func TestSetsBindsFilters(t *testing.T) {
	rec := &testutil.RecordingExecutor{Next: fixture.New()}
	svc := newService(rec)
	offline := false

	got, ok, err := svc.Sets(context.Background(), "1000", []domain.ID{"900001"}, &offline)
	if err != nil || !ok || len(got.Sets) != 1 {
		t.Fatalf("unexpected sets %+v ok=%v err=%v", got, ok, err)
	}
	vars := rec.Requests()[0].Variables
	ids, _ := vars["eventIds"].([]string)
	if len(ids) != 1 || ids[0] != "900001" || vars["isOnline"] != false {
		t.Fatalf("unexpected variables %v", vars)
	}

	if _, _, err := svc.Sets(context.Background(), "1000", nil, nil); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	vars = rec.Requests()[1].Variables
	if _, has := vars["eventIds"]; has {
		t.Fatalf("expected no event filter, got %v", vars)
	}
	if _, has := vars["isOnline"]; has {
		t.Fatalf("expected no online filter, got %v", vars)
	}
}

func TestRecentSetsUsesMostRecentEvent(t *testing.T) {
	rec := &testutil.RecordingExecutor{Next: fixture.New()}
	svc := newService(rec)

	got, ok, err := svc.RecentSets(context.Background(), "a1b2c3d4", "1")
	if err != nil || !ok || got.PlayerID != "1000" {
		t.Fatalf("unexpected sets %+v ok=%v err=%v", got, ok, err)
	}
	names := rec.Names()
	if len(names) != 3 || names[2] != query.PlayerSets {
		t.Fatalf("expected lookup, placements then sets, got %v", names)
	}
	vars := rec.Requests()[2].Variables
	if vars["playerId"] != "1000" || vars["isOnline"] != false {
		t.Fatalf("unexpected variables %v", vars)
	}
	if ids, _ := vars["eventIds"].([]string); len(ids) != 1 || ids[0] != "900001" {
		t.Fatalf("expected most recent event, got %v", vars["eventIds"])
	}
}
