package domain

// NoSeed marks an entrant without a seed.
const NoSeed = -1

// PlayerRef is a participant of an entrant. ID is empty when the participant
// has no linked player.
type PlayerRef struct {
	ID        ID     `json:"playerId,omitempty" yaml:"playerId,omitempty"`
	Tag       string `json:"playerTag,omitempty" yaml:"playerTag,omitempty"`
	EntrantID ID     `json:"entrantId,omitempty" yaml:"entrantId,omitempty"`
}

// Entrant is a competitor or team registered for one event.
// Name is the raw display name; Tag is its canonical last segment.
type Entrant struct {
	ID      ID          `json:"id" yaml:"id"`
	Name    string      `json:"name" yaml:"name"`
	Tag     string      `json:"tag" yaml:"tag"`
	Seed    int         `json:"seed,omitempty" yaml:"seed,omitempty"`
	Players []PlayerRef `json:"players,omitempty" yaml:"players,omitempty"`
}

// NewEntrant builds an entrant with its canonical tag derived from name.
func NewEntrant(id ID, name string) Entrant {
	return Entrant{ID: id, Name: name, Tag: CanonicalTag(name), Seed: NoSeed}
}
