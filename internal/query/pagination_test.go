package query

import "testing"

func TestPerPageVariesByQuery(t *testing.T) {
	cases := map[Name]int{
		EventSets:               18,
		EventEntrants:           25,
		EventLightweightResults: 64,
		EventEntrantSets:        16,
		TournamentsByCountry:    32,
		TournamentsByOwner:      25,
		PlayerSets:              15,
		TournamentShow:          0,
		"Unknown":               0,
	}
	for name, expected := range cases {
		if got := PerPage(name); got != expected {
			t.Fatalf("PerPage(%s) expected %d, got %d", name, expected, got)
		}
	}
}

func TestPageIteration(t *testing.T) {
	p := PageOf(EventEntrants, 0)
	if p.Number != FirstPage || p.PerPage != 25 {
		t.Fatalf("unexpected first page %+v", p)
	}
	next := p.Next()
	if next.Number != 2 || next.PerPage != 25 {
		t.Fatalf("unexpected next page %+v", next)
	}
	if p.Done(25) {
		t.Fatal("full page should not end iteration")
	}
	if p.Done(3) {
		t.Fatal("short page should not end iteration on its own")
	}
	if !p.Done(0) {
		t.Fatal("empty page should end iteration")
	}
}
