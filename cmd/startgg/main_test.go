package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"startgg-results/internal/domain"
	"startgg-results/internal/providers/startgg"
	"startgg-results/internal/teststubs"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// execute runs the command tree against the fixture provider.
func execute(t *testing.T, c *cli, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("LOG_LEVEL", "warn")

	var stdout, stderr bytes.Buffer
	root := newRootCommand(c)
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--provider", "fixture", "--env-file", filepath.Join(t.TempDir(), "missing.env")}, args...))
	err := root.ExecuteContext(context.Background())
	c.close()
	return stdout.String(), stderr.String(), err
}

func TestTournamentShow(t *testing.T) {
	out, _, err := execute(t, &cli{}, "tournament", "show", "genesis-9")
	require.NoError(t, err)

	var got domain.Tournament
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Genesis 9", got.Name)
}

func TestTournamentShowYAML(t *testing.T) {
	out, _, err := execute(t, &cli{}, "-o", "yaml", "tournament", "show", "genesis-9")
	require.NoError(t, err)
	assert.Contains(t, out, "name: Genesis 9")
}

func TestUnsupportedOutputFormat(t *testing.T) {
	_, _, err := execute(t, &cli{}, "-o", "xml", "tournament", "show", "genesis-9")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}

func TestTournamentEventsAndBrackets(t *testing.T) {
	out, _, err := execute(t, &cli{}, "tournament", "events", "genesis-9")
	require.NoError(t, err)
	var evs []domain.Event
	require.NoError(t, json.Unmarshal([]byte(out), &evs))
	assert.Len(t, evs, 3)

	out, _, err = execute(t, &cli{}, "tournament", "brackets", "genesis-9", "ultimate-singles")
	require.NoError(t, err)
	var brackets domain.EventBrackets
	require.NoError(t, json.Unmarshal([]byte(out), &brackets))
	assert.Equal(t, "Ultimate Singles", brackets.EventName)
}

func TestTournamentResultsExports(t *testing.T) {
	stub := &teststubs.StubExporter{}
	csvPath := filepath.Join(t.TempDir(), "top.csv")

	out, _, err := execute(t, &cli{exporter: stub}, "tournament", "results", "genesis-9", "--top", "2", "--csv", csvPath)
	require.NoError(t, err)

	assert.Equal(t, 1, stub.Calls)
	assert.Equal(t, csvPath, stub.Targets.CSV)
	assert.Empty(t, stub.Targets.JSON)
	require.Len(t, stub.Written, 3)
	for _, r := range stub.Written {
		assert.Len(t, r.Standings, 2)
		assert.Equal(t, 9, r.Total)
	}

	var printed []domain.EventResults
	require.NoError(t, json.Unmarshal([]byte(out), &printed))
	assert.Len(t, printed, 3)
}

func TestTournamentResultsExportFailure(t *testing.T) {
	stub := &teststubs.StubExporter{Err: errors.New("disk full")}
	_, _, err := execute(t, &cli{exporter: stub}, "tournament", "results", "genesis-9")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestEventEntrants(t *testing.T) {
	out, _, err := execute(t, &cli{}, "event", "entrants", "genesis-9", "melee-singles")
	require.NoError(t, err)

	var got []domain.Standing
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Len(t, got, 7)
	assert.Equal(t, 1, got[0].Placement)
}

func TestEventEntrantsAllPages(t *testing.T) {
	out, _, err := execute(t, &cli{}, "event", "entrants", "genesis-9", "melee-singles", "--all")
	require.NoError(t, err)

	var got []domain.Standing
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Len(t, got, 7)
}

func TestEventUnknownSlug(t *testing.T) {
	_, _, err := execute(t, &cli{}, "event", "sets", "genesis-9", "crew-battle")
	require.Error(t, err)
	assert.ErrorIs(t, err, errNotFound)
}

func TestEventHeadToHead(t *testing.T) {
	out, _, err := execute(t, &cli{}, "event", "h2h", "genesis-9", "melee-singles", "hungrybox", "mang0")
	require.NoError(t, err)

	var got []domain.Set
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Len(t, got, 2)
}

func TestPlayerResults(t *testing.T) {
	out, _, err := execute(t, &cli{}, "player", "results", "a1b2c3d4", "--game", "1")
	require.NoError(t, err)

	var got domain.PlayerPlacements
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Len(t, got.Placements, 4)
}

func TestPlayerTournaments(t *testing.T) {
	out, _, err := execute(t, &cli{}, "player", "tournaments", "a1b2c3d4")
	require.NoError(t, err)

	var got []domain.Tournament
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Len(t, got, 2)
}

func TestSearchTournamentsByCountry(t *testing.T) {
	out, _, err := execute(t, &cli{}, "search", "tournaments", "--country", "us")
	require.NoError(t, err)

	var got []domain.Tournament
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.NotEmpty(t, got)
}

func TestSearchTournamentsRequiresFilter(t *testing.T) {
	_, _, err := execute(t, &cli{}, "search", "tournaments")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--owner")
}

func TestSearchEventsByGameName(t *testing.T) {
	out, _, err := execute(t, &cli{}, "search", "events", "--game", "super smash bros. melee", "--min-entrants", "100")
	require.NoError(t, err)

	var got []domain.EventListing
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, domain.ID("920001"), got[0].EventID)
}

func TestSearchRejectsBadDate(t *testing.T) {
	_, _, err := execute(t, &cli{}, "search", "events", "--game", "1", "--after", "yesterday")
	require.Error(t, err)
}

func TestStartGGProviderNeedsKey(t *testing.T) {
	t.Setenv("KEY", "")
	c := &cli{}
	root := newRootCommand(c)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--provider", "startgg", "--env-file", filepath.Join(t.TempDir(), "missing.env"), "tournament", "show", "genesis-9"})

	err := root.ExecuteContext(context.Background())
	assert.ErrorIs(t, err, startgg.ErrMissingAPIKey)
	c.close()
}

func TestEnvFileSelectsProvider(t *testing.T) {
	envPath := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(envPath, []byte("STARTGG_PROVIDER=fixture\n"), 0o600))
	t.Setenv("STARTGG_PROVIDER", "")
	require.NoError(t, os.Unsetenv("STARTGG_PROVIDER"))
	t.Setenv("METRICS_ENABLED", "false")

	var stdout bytes.Buffer
	c := &cli{}
	root := newRootCommand(c)
	root.SetOut(&stdout)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--env-file", envPath, "tournament", "owner", "genesis-9"})
	defer c.close()

	require.NoError(t, root.ExecuteContext(context.Background()))
	assert.Contains(t, stdout.String(), "Sami")
}

func TestIsNumeric(t *testing.T) {
	assert.True(t, isNumeric("1386"))
	assert.False(t, isNumeric(""))
	assert.False(t, isNumeric("melee"))
}
