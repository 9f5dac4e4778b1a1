package startgg

import (
	"bytes"
	"encoding/json"
	"strconv"

	"startgg-results/internal/domain"
)

// Wire types mirror the field selections of the query catalogue. Every field
// the API may omit or null is a pointer or a slice and is checked once by the
// normalizers.

// flexID accepts ids serialized as JSON numbers or strings.
type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	if i, err := n.Int64(); err == nil {
		*f = flexID(strconv.FormatInt(i, 10))
		return nil
	}
	*f = flexID(n.String())
	return nil
}

func idOf(f *flexID) domain.ID {
	if f == nil {
		return ""
	}
	return domain.ID(*f)
}

// list decodes a JSON array one element at a time. An element of the wrong
// shape is held as nil with its decode error, so it is skipped on its own
// instead of failing the whole payload.
type list[T any] struct {
	items []*T
	errs  map[int]error
}

func (l *list[T]) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	l.items = make([]*T, len(raw))
	l.errs = nil
	for i, r := range raw {
		var v *T
		if err := json.Unmarshal(r, &v); err != nil {
			if l.errs == nil {
				l.errs = make(map[int]error)
			}
			l.errs[i] = err
			continue
		}
		l.items[i] = v
	}
	return nil
}

// why explains a nil element: its decode error, or "null".
func (l list[T]) why(i int) string {
	if err, ok := l.errs[i]; ok {
		return err.Error()
	}
	return "null"
}

type connection[T any] struct {
	Nodes list[T] `json:"nodes"`
}

func nodesOf[T any](c *connection[T]) list[T] {
	if c == nil {
		return list[T]{}
	}
	return c.Nodes
}

type wireLocation struct {
	Country *string `json:"country"`
	State   *string `json:"state"`
	City    *string `json:"city"`
}

type wireAuthorization struct {
	Type             *string `json:"type"`
	ExternalUsername *string `json:"externalUsername"`
	URL              *string `json:"url"`
}

type wireVideogame struct {
	ID          *flexID `json:"id"`
	Name        *string `json:"name"`
	DisplayName *string `json:"displayName"`
}

type wirePhase struct {
	Name *string `json:"name"`
}

type wirePhaseGroup struct {
	ID    *flexID               `json:"id"`
	Phase *wirePhase            `json:"phase"`
	Seeds *connection[wireSeed] `json:"seeds"`
	Sets  *connection[wireSet]  `json:"sets"`
}

type wireOwner struct {
	ID     *flexID     `json:"id"`
	Name   *string     `json:"name"`
	Player *wirePlayer `json:"player"`
}

type wireTournament struct {
	ID           *flexID                      `json:"id"`
	Name         *string                      `json:"name"`
	Slug         *string                      `json:"slug"`
	CountryCode  *string                      `json:"countryCode"`
	AddrState    *string                      `json:"addrState"`
	City         *string                      `json:"city"`
	StartAt      *int64                       `json:"startAt"`
	EndAt        *int64                       `json:"endAt"`
	NumAttendees *int                         `json:"numAttendees"`
	IsOnline     *bool                        `json:"isOnline"`
	Owner        *wireOwner                   `json:"owner"`
	Events       list[wireEvent]              `json:"events"`
	Participants *connection[wireParticipant] `json:"participants"`
}

type wireEvent struct {
	ID          *flexID                   `json:"id"`
	Name        *string                   `json:"name"`
	Slug        *string                   `json:"slug"`
	NumEntrants *int                      `json:"numEntrants"`
	StartAt     *int64                    `json:"startAt"`
	IsOnline    *bool                     `json:"isOnline"`
	Videogame   *wireVideogame            `json:"videogame"`
	PhaseGroups []*wirePhaseGroup         `json:"phaseGroups"`
	Tournament  *wireTournament           `json:"tournament"`
	Sets        *connection[wireSet]      `json:"sets"`
	Standings   *connection[wireStanding] `json:"standings"`
	Entrants    *connection[wireEntrant]  `json:"entrants"`
}

type wireEntrantRef struct {
	ID *flexID `json:"id"`
}

type wireParticipant struct {
	ID       *flexID           `json:"id"`
	GamerTag *string           `json:"gamerTag"`
	Player   *wirePlayer       `json:"player"`
	User     *wireUser         `json:"user"`
	Entrants []*wireEntrantRef `json:"entrants"`
}

type wireSeed struct {
	SeedNum   *int         `json:"seedNum"`
	Placement *int         `json:"placement"`
	Entrant   *wireEntrant `json:"entrant"`
}

type wireEntrant struct {
	ID           *flexID               `json:"id"`
	Name         *string               `json:"name"`
	Participants list[wireParticipant] `json:"participants"`
	Seeds        []*wireSeed           `json:"seeds"`
	Event        *wireEvent            `json:"event"`
}

type wireScore struct {
	Value *float64 `json:"value"`
}

type wireStats struct {
	Score *wireScore `json:"score"`
}

type wireStanding struct {
	ID        *flexID      `json:"id"`
	Placement *int         `json:"placement"`
	Entrant   *wireEntrant `json:"entrant"`
	Stats     *wireStats   `json:"stats"`
}

type wireSelection struct {
	SelectionValue *flexID         `json:"selectionValue"`
	Entrant        *wireEntrantRef `json:"entrant"`
}

type wireGame struct {
	WinnerID   *flexID          `json:"winnerId"`
	Selections []*wireSelection `json:"selections"`
}

type wireSlot struct {
	Standing *wireStanding `json:"standing"`
	Entrant  *wireEntrant  `json:"entrant"`
}

type wireSet struct {
	ID            *flexID         `json:"id"`
	FullRoundText *string         `json:"fullRoundText"`
	DisplayScore  *string         `json:"displayScore"`
	WinnerID      *flexID         `json:"winnerId"`
	CompletedAt   *int64          `json:"completedAt"`
	Games         []*wireGame     `json:"games"`
	Slots         list[wireSlot]  `json:"slots"`
	PhaseGroup    *wirePhaseGroup `json:"phaseGroup"`
	Event         *wireEvent      `json:"event"`
}

type wireRanking struct {
	Title *string `json:"title"`
	Rank  *int    `json:"rank"`
}

type wirePlayer struct {
	ID              *flexID              `json:"id"`
	GamerTag        *string              `json:"gamerTag"`
	Prefix          *string              `json:"prefix"`
	User            *wireUser            `json:"user"`
	Rankings        []*wireRanking       `json:"rankings"`
	RecentStandings list[wireStanding]   `json:"recentStandings"`
	Sets            *connection[wireSet] `json:"sets"`
}

type wireUser struct {
	ID             *flexID                     `json:"id"`
	Name           *string                     `json:"name"`
	Bio            *string                     `json:"bio"`
	GenderPronoun  *string                     `json:"genderPronoun"`
	Discriminator  *string                     `json:"discriminator"`
	Slug           *string                     `json:"slug"`
	Location       *wireLocation               `json:"location"`
	Authorizations []*wireAuthorization        `json:"authorizations"`
	Player         *wirePlayer                 `json:"player"`
	Events         *connection[wireEvent]      `json:"events"`
	Tournaments    *connection[wireTournament] `json:"tournaments"`
}

// Root payloads, one per catalogue root field.

type tournamentData struct {
	Tournament *wireTournament `json:"tournament"`
}

type tournamentsData struct {
	Tournaments *connection[wireTournament] `json:"tournaments"`
}

type videogamesData struct {
	Videogames *connection[wireVideogame] `json:"videogames"`
}

type eventData struct {
	Event *wireEvent `json:"event"`
}

type phaseGroupData struct {
	PhaseGroup *wirePhaseGroup `json:"phaseGroup"`
}

type playerData struct {
	Player *wirePlayer `json:"player"`
}

type userData struct {
	User *wireUser `json:"user"`
}
