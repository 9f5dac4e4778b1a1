package domain

import (
	"testing"
	"time"
)

func TestCanonicalTagKeepsLastSegment(t *testing.T) {
	cases := map[string]string{
		"Mang0":                 "Mang0",
		"C9 | Mang0":            "Mang0",
		"Team | Sponsor | Zain": "Zain",
		"":                      "",
		"NoSpace|Tag":           "NoSpace|Tag",
	}
	for input, expected := range cases {
		if got := CanonicalTag(input); got != expected {
			t.Fatalf("CanonicalTag(%q) expected %q, got %q", input, expected, got)
		}
	}
}

func TestSlugTail(t *testing.T) {
	cases := map[string]string{
		"tournament/genesis-9/event/melee-singles": "melee-singles",
		"melee-singles":         "melee-singles",
		"tournament/genesis-9/": "genesis-9",
		"":                      "",
	}
	for input, expected := range cases {
		if got := SlugTail(input); got != expected {
			t.Fatalf("SlugTail(%q) expected %q, got %q", input, expected, got)
		}
	}
}

func TestMergeAuthorizationsDeduplicatesByTypeAndUsername(t *testing.T) {
	a := []Authorization{
		{Type: "TWITTER", Username: "mang0", URL: "https://twitter.com/mang0"},
		{Type: "TWITCH", Username: "mang0"},
	}
	b := []Authorization{
		{Type: "TWITTER", Username: "mang0", URL: "https://x.com/mang0"},
		{Type: "DISCORD", Username: "mang0#0001"},
		{Type: "twitch", Username: "mang0"},
	}

	merged := MergeAuthorizations(a, b)

	if len(merged) != 3 {
		t.Fatalf("expected union of 3 authorizations, got %d: %+v", len(merged), merged)
	}
	if merged[0].URL != "https://twitter.com/mang0" {
		t.Fatalf("expected first occurrence to win, got %+v", merged[0])
	}
	if merged[2].Type != "DISCORD" {
		t.Fatalf("expected discord appended last, got %+v", merged[2])
	}
}

func TestMergeAuthorizationsHandlesEmptyInputs(t *testing.T) {
	if got := MergeAuthorizations(nil, nil); len(got) != 0 {
		t.Fatalf("expected empty merge, got %+v", got)
	}
}

func TestSortMostRecentFirstIsStable(t *testing.T) {
	at := func(sec int64) *EventRef {
		return &EventRef{StartAt: time.Unix(sec, 0).UTC()}
	}
	standings := []Standing{
		{Placement: 1, Event: at(5)},
		{Placement: 2, Event: at(3)},
		{Placement: 3, Event: at(5)},
		{Placement: 4, Event: at(1)},
	}

	SortMostRecentFirst(standings)

	got := []int{}
	for _, s := range standings {
		got = append(got, s.Placement)
	}
	expected := []int{1, 3, 2, 4}
	for i := range expected {
		if got[i] != expected[i] {
			t.Fatalf("expected order %v, got %v", expected, got)
		}
	}
}

func TestSortMostRecentFirstPutsUnknownTimesLast(t *testing.T) {
	standings := []Standing{
		{Placement: 1},
		{Placement: 2, Event: &EventRef{StartAt: time.Unix(10, 0)}},
	}
	SortMostRecentFirst(standings)
	if standings[0].Placement != 2 {
		t.Fatalf("expected dated standing first, got %+v", standings)
	}
}

func TestTop(t *testing.T) {
	standings := make([]Standing, 10)
	if got := Top(standings, 8); len(got) != 8 {
		t.Fatalf("expected 8 standings, got %d", len(got))
	}
	if got := Top(standings[:3], 8); len(got) != 3 {
		t.Fatalf("expected short list untouched, got %d", len(got))
	}
	if got := Top(standings, 0); len(got) != 10 {
		t.Fatalf("expected non-positive n to keep all, got %d", len(got))
	}
}

func TestSetInvolvesMatchesRawNameOrTag(t *testing.T) {
	set := Set{Slots: [2]Slot{
		{Entrant: NewEntrant("1", "C9 | Mang0")},
		{Entrant: NewEntrant("2", "Zain")},
	}}
	if !set.Involves("mang0") {
		t.Fatal("expected canonical tag match")
	}
	if !set.Involves("c9 | mang0") {
		t.Fatal("expected raw name match")
	}
	if set.Involves("Hbox") {
		t.Fatal("expected no match for absent entrant")
	}
}

func TestProfileURLPrefersSlug(t *testing.T) {
	if got := (Profile{Slug: "user/abc", Discriminator: "abc"}).ProfileURL(); got != "https://start.gg/user/abc" {
		t.Fatalf("unexpected profile url %s", got)
	}
	if got := (Profile{Discriminator: "abc"}).ProfileURL(); got != "start.gg/user/abc" {
		t.Fatalf("unexpected discriminator url %s", got)
	}
	if got := (Profile{}).ProfileURL(); got != "" {
		t.Fatalf("expected empty url, got %s", got)
	}
}

func TestSlotScored(t *testing.T) {
	if (Slot{Score: UnscoredSentinel}).Scored() {
		t.Fatal("sentinel slot should not be scored")
	}
	if !(Slot{Score: 0}).Scored() {
		t.Fatal("zero score is a real score")
	}
}
