package query

// Query names. Every name has exactly one contract in the catalogue and one
// normalizer operation in the startgg provider.
const (
	TournamentShow             Name = "TournamentShow"
	TournamentShowWithBrackets Name = "TournamentShowWithBrackets"
	TournamentEvents           Name = "TournamentEvents"
	TournamentEventID          Name = "TournamentEventID"
	TournamentEventBrackets    Name = "TournamentEventBrackets"
	TournamentOwner            Name = "TournamentOwner"
	TournamentPlayersBySponsor Name = "TournamentPlayersBySponsor"
	TournamentsByOwner         Name = "TournamentsByOwner"
	TournamentsByCountry       Name = "TournamentsByCountry"
	TournamentsByState         Name = "TournamentsByState"
	TournamentsByRadius        Name = "TournamentsByRadius"
	TournamentsByVideogame     Name = "TournamentsByVideogame"
	EventsByGameSize           Name = "EventsByGameSize"
	VideogameID                Name = "VideogameID"
	EventEntrantID             Name = "EventEntrantID"
	EventPlayerID              Name = "EventPlayerID"
	EventSets                  Name = "EventSets"
	EventEntrants              Name = "EventEntrants"
	EventLightweightResults    Name = "EventLightweightResults"
	EventEntrantSets           Name = "EventEntrantSets"
	BracketEntrants            Name = "BracketEntrants"
	BracketSets                Name = "BracketSets"
	PlayerInfo                 Name = "PlayerInfo"
	PlayerBySlug               Name = "PlayerBySlug"
	PlayerLookupID             Name = "PlayerLookupID"
	PlayerRecentPlacements     Name = "PlayerRecentPlacements"
	PlayerTournaments          Name = "PlayerTournaments"
	PlayerSets                 Name = "PlayerSets"
)

// Page sizes enforced per endpoint.
const (
	perPageEventSets       = 18
	perPageEventEntrants   = 25
	perPageLightweight     = 64
	perPageEntrantSets     = 16
	perPageTournamentList  = 32
	perPageOwnerList       = 25
	perPageVideogameList   = 25
	perPageBracket         = 32
	perPagePlayerTourneys  = 64
	perPagePlayerSets      = 15
	perPageEntrantSearch   = 32
	recentStandingsLimit   = 20
	profileRecentEventSize = 10
)

const tournamentListFields = `
      id
      name
      slug
      numAttendees
      countryCode
      addrState
      city
      startAt
      endAt
      isOnline`

const setSlotFields = `
        slots {
          standing {
            placement
            stats {
              score {
                value
              }
            }
          }
          entrant {
            id
            name
            participants {
              entrants {
                id
              }
              player {
                id
                gamerTag
              }
            }
          }
        }`

const authorizationFields = `
        authorizations(types: [TWITTER, TWITCH, DISCORD]) {
          type
          externalUsername
          url
        }`

var catalogue = map[Name]Contract{
	TournamentShow: {
		Name:     TournamentShow,
		Required: []string{"tourneySlug"},
		Root:     "tournament",
		Document: `query TournamentShow($tourneySlug: String!) {
  tournament(slug: $tourneySlug) {
    id
    name
    slug
    countryCode
    addrState
    city
    startAt
    endAt
    numAttendees
    isOnline
    owner {
      id
      name
    }
  }
}`,
	},
	TournamentShowWithBrackets: {
		Name:     TournamentShowWithBrackets,
		Required: []string{"tourneySlug"},
		Root:     "tournament",
		Document: `query TournamentShowWithBrackets($tourneySlug: String!) {
  tournament(slug: $tourneySlug) {
    id
    name
    slug
    countryCode
    addrState
    city
    startAt
    endAt
    numAttendees
    isOnline
    events {
      id
      name
      slug
      numEntrants
      phaseGroups {
        id
      }
    }
  }
}`,
	},
	TournamentEvents: {
		Name:     TournamentEvents,
		Required: []string{"tourneySlug"},
		Root:     "tournament",
		Document: `query TournamentEvents($tourneySlug: String!) {
  tournament(slug: $tourneySlug) {
    id
    events {
      id
      name
      slug
      numEntrants
      startAt
      isOnline
      videogame {
        id
        name
      }
    }
  }
}`,
	},
	TournamentEventID: {
		Name:     TournamentEventID,
		Required: []string{"tourneySlug"},
		Root:     "tournament",
		Document: `query TournamentEventID($tourneySlug: String!) {
  tournament(slug: $tourneySlug) {
    events {
      id
      slug
    }
  }
}`,
	},
	TournamentEventBrackets: {
		Name:     TournamentEventBrackets,
		Required: []string{"tourneySlug"},
		Root:     "tournament",
		Document: `query TournamentEventBrackets($tourneySlug: String!) {
  tournament(slug: $tourneySlug) {
    events {
      name
      slug
      phaseGroups {
        id
      }
    }
  }
}`,
	},
	TournamentOwner: {
		Name:     TournamentOwner,
		Required: []string{"tourneySlug"},
		Root:     "tournament",
		Document: `query TournamentOwner($tourneySlug: String!) {
  tournament(slug: $tourneySlug) {
    id
    name
    owner {
      id
      player {
        gamerTag
      }
    }
  }
}`,
	},
	TournamentPlayersBySponsor: {
		Name:     TournamentPlayersBySponsor,
		Required: []string{"slug", "sponsor"},
		Root:     "tournament",
		Document: `query TournamentPlayersBySponsor($slug: String!, $sponsor: String!) {
  tournament(slug: $slug) {
    participants(query: {
      filter: {
        search: {
          fieldsToSearch: ["prefix"],
          searchString: $sponsor
        }
      }
    }) {
      nodes {
        id
        gamerTag
        user {
          name
          location {
            country
            state
            city
          }
          player {
            id
          }
        }
      }
    }
  }
}`,
	},
	TournamentsByOwner: {
		Name:     TournamentsByOwner,
		Required: []string{"ownerId", "page"},
		PerPage:  perPageOwnerList,
		Root:     "tournaments",
		Document: `query TournamentsByOwner($ownerId: ID!, $page: Int!) {
  tournaments(query: {
    perPage: 25
    page: $page
    filter: { ownerId: $ownerId }
  }) {
    nodes {` + tournamentListFields + `
    }
  }
}`,
	},
	TournamentsByCountry: {
		Name:     TournamentsByCountry,
		Required: []string{"countryCode", "page"},
		PerPage:  perPageTournamentList,
		Root:     "tournaments",
		Document: `query TournamentsByCountry($countryCode: String!, $page: Int!) {
  tournaments(query: {
    perPage: 32
    page: $page
    sortBy: "startAt desc"
    filter: { countryCode: $countryCode }
  }) {
    nodes {` + tournamentListFields + `
    }
  }
}`,
	},
	TournamentsByState: {
		Name:     TournamentsByState,
		Required: []string{"state", "page"},
		PerPage:  perPageTournamentList,
		Root:     "tournaments",
		Document: `query TournamentsByState($state: String!, $page: Int!) {
  tournaments(query: {
    perPage: 32
    page: $page
    filter: { addrState: $state }
  }) {
    nodes {` + tournamentListFields + `
    }
  }
}`,
	},
	TournamentsByRadius: {
		Name:     TournamentsByRadius,
		Required: []string{"coordinates", "radius", "page"},
		PerPage:  perPageTournamentList,
		Root:     "tournaments",
		Document: `query TournamentsByRadius($page: Int, $coordinates: String!, $radius: String!) {
  tournaments(query: {
    page: $page
    perPage: 32
    filter: {
      location: {
        distanceFrom: $coordinates,
        distance: $radius
      }
    }
  }) {
    nodes {` + tournamentListFields + `
    }
  }
}`,
	},
	TournamentsByVideogame: {
		Name:     TournamentsByVideogame,
		Required: []string{"videogameId", "page", "after", "before"},
		PerPage:  perPageVideogameList,
		Root:     "tournaments",
		Document: `query TournamentsByVideogame($videogameId: ID!, $page: Int!, $after: Timestamp!, $before: Timestamp!) {
  tournaments(query: {
    page: $page
    perPage: 25
    sortBy: "startAt asc"
    filter: {
      past: false
      videogameIds: [$videogameId]
      afterDate: $after
      beforeDate: $before
    }
  }) {
    nodes {` + tournamentListFields + `
      events {
        id
        name
        numEntrants
        videogame {
          id
          name
        }
      }
    }
  }
}`,
	},
	EventsByGameSize: {
		Name:     EventsByGameSize,
		Required: []string{"videogameId", "page", "after", "before"},
		PerPage:  perPageTournamentList,
		Root:     "tournaments",
		Document: `query EventsByGameSize($page: Int!, $videogameId: [ID!], $after: Timestamp!, $before: Timestamp!) {
  tournaments(query: {
    perPage: 32
    page: $page
    sortBy: "startAt asc"
    filter: {
      past: false
      videogameIds: $videogameId
      afterDate: $after
      beforeDate: $before
    }
  }) {
    nodes {
      id
      name
      slug
      isOnline
      startAt
      endAt
      events {
        id
        name
        numEntrants
        videogame {
          id
        }
      }
    }
  }
}`,
	},
	VideogameID: {
		Name:     VideogameID,
		Required: []string{"name"},
		Root:     "videogames",
		Document: `query VideogameID($name: String!) {
  videogames(query: { filter: { name: $name } }) {
    nodes {
      id
      name
    }
  }
}`,
	},
	EventEntrantID: {
		Name:     EventEntrantID,
		Required: []string{"eventId", "name"},
		PerPage:  perPageEntrantSearch,
		Root:     "event",
		Document: `query EventEntrantID($eventId: ID!, $name: String!) {
  event(id: $eventId) {
    entrants(query: {
      page: 1
      perPage: 32
      filter: { name: $name }
    }) {
      nodes {
        id
        name
      }
    }
  }
}`,
	},
	EventPlayerID: {
		Name:     EventPlayerID,
		Required: []string{"eventId", "name"},
		PerPage:  perPageEntrantSearch,
		Root:     "event",
		Document: `query EventPlayerID($eventId: ID!, $name: String!) {
  event(id: $eventId) {
    entrants(query: {
      page: 1
      perPage: 32
      filter: { name: $name }
    }) {
      nodes {
        participants {
          gamerTag
          player {
            id
          }
        }
      }
    }
  }
}`,
	},
	EventSets: {
		Name:     EventSets,
		Required: []string{"eventId", "page"},
		PerPage:  perPageEventSets,
		Root:     "event",
		Document: `query EventSets($eventId: ID!, $page: Int!) {
  event(id: $eventId) {
    id
    name
    tournament {
      id
      name
    }
    sets(page: $page, perPage: 18, sortType: STANDARD) {
      nodes {
        id
        fullRoundText
        games {
          winnerId
          selections {
            selectionValue
            entrant {
              id
            }
          }
        }` + setSlotFields + `
        phaseGroup {
          id
          phase {
            name
          }
        }
      }
    }
  }
}`,
	},
	EventEntrants: {
		Name:     EventEntrants,
		Required: []string{"eventId", "page"},
		PerPage:  perPageEventEntrants,
		Root:     "event",
		Document: `query EventEntrants($eventId: ID!, $page: Int!) {
  event(id: $eventId) {
    id
    name
    standings(query: { perPage: 25, page: $page }) {
      nodes {
        placement
        entrant {
          id
          name
          participants {
            player {
              id
              gamerTag
            }
          }
          seeds {
            seedNum
          }
        }
      }
    }
  }
}`,
	},
	EventLightweightResults: {
		Name:     EventLightweightResults,
		Required: []string{"eventId", "page"},
		PerPage:  perPageLightweight,
		Root:     "event",
		Document: `query EventLightweightResults($eventId: ID!, $page: Int!) {
  event(id: $eventId) {
    standings(query: { perPage: 64, page: $page }) {
      nodes {
        placement
        entrant {
          id
          name
          participants {
            user {` + authorizationFields + `
            }
            player {
              gamerTag
              user {` + authorizationFields + `
              }
            }
          }
        }
      }
    }
  }
}`,
	},
	EventEntrantSets: {
		Name:     EventEntrantSets,
		Required: []string{"eventId", "entrantId", "page"},
		PerPage:  perPageEntrantSets,
		Root:     "event",
		Document: `query EventEntrantSets($eventId: ID!, $entrantId: ID!, $page: Int!) {
  event(id: $eventId) {
    sets(
      page: $page
      perPage: 16
      filters: { entrantIds: [$entrantId] }
    ) {
      nodes {
        id
        fullRoundText` + setSlotFields + `
        phaseGroup {
          id
        }
      }
    }
  }
}`,
	},
	BracketEntrants: {
		Name:     BracketEntrants,
		Required: []string{"phaseGroupId", "page"},
		PerPage:  perPageBracket,
		Root:     "phaseGroup",
		Document: `query BracketEntrants($phaseGroupId: ID!, $page: Int!) {
  phaseGroup(id: $phaseGroupId) {
    id
    phase {
      name
    }
    seeds(query: { page: $page, perPage: 32 }) {
      nodes {
        seedNum
        placement
        entrant {
          id
          name
          participants {
            player {
              id
              gamerTag
            }
          }
        }
      }
    }
  }
}`,
	},
	BracketSets: {
		Name:     BracketSets,
		Required: []string{"phaseGroupId", "page"},
		PerPage:  perPageBracket,
		Root:     "phaseGroup",
		Document: `query BracketSets($phaseGroupId: ID!, $page: Int!) {
  phaseGroup(id: $phaseGroupId) {
    id
    phase {
      name
    }
    sets(page: $page, perPage: 32) {
      nodes {
        id
        fullRoundText` + setSlotFields + `
      }
    }
  }
}`,
	},
	PlayerInfo: {
		Name:     PlayerInfo,
		Required: []string{"playerId"},
		Root:     "player",
		Document: `query PlayerInfo($playerId: ID!) {
  player(id: $playerId) {
    id
    gamerTag
    prefix
    user {
      id
      name
      genderPronoun
      discriminator
      slug` + authorizationFields + `
      location {
        country
        state
        city
      }
    }
    rankings(videogameId: 1) {
      title
      rank
    }
  }
}`,
	},
	PlayerBySlug: {
		Name:     PlayerBySlug,
		Required: []string{"discriminatorSlug"},
		Root:     "user",
		Document: `query PlayerBySlug($discriminatorSlug: String!) {
  user(slug: $discriminatorSlug) {
    id
    name
    bio
    genderPronoun
    discriminator
    slug
    player {
      id
      gamerTag
      prefix
    }
    location {
      country
      state
      city
    }` + authorizationFields + `
    events(query: { page: 1, perPage: 10 }) {
      nodes {
        id
        name
        slug
        numEntrants
        startAt
        videogame {
          id
          name
        }
      }
    }
  }
}`,
	},
	PlayerLookupID: {
		Name:     PlayerLookupID,
		Required: []string{"discriminatorSlug"},
		Root:     "user",
		Document: `query PlayerLookupID($discriminatorSlug: String!) {
  user(slug: $discriminatorSlug) {
    player {
      id
    }
  }
}`,
	},
	PlayerRecentPlacements: {
		Name:     PlayerRecentPlacements,
		Required: []string{"slug"},
		Optional: []string{"gameID"},
		Root:     "user",
		Document: `query PlayerRecentPlacements($slug: String!, $gameID: ID) {
  user(slug: $slug) {
    id
    name
    discriminator
    slug
    location {
      city
      state
      country
    }` + authorizationFields + `
    player {
      id
      prefix
      gamerTag
      user {
        name` + authorizationFields + `
      }
      recentStandings(videogameId: $gameID, limit: 20) {
        id
        placement
        entrant {
          id
          name
          event {
            id
            name
            slug
            isOnline
            numEntrants
            startAt
            videogame {
              id
              displayName
            }
            tournament {
              id
              name
              slug
            }
          }
        }
      }
    }
  }
}`,
	},
	PlayerTournaments: {
		Name:     PlayerTournaments,
		Required: []string{"playerId", "page"},
		PerPage:  perPagePlayerTourneys,
		Root:     "player",
		Document: `query PlayerTournaments($playerId: ID!, $page: Int!) {
  player(id: $playerId) {
    user {
      tournaments(query: { perPage: 64, page: $page }) {
        nodes {
          id
          name
          slug
          numAttendees
          countryCode
          startAt
        }
      }
    }
  }
}`,
	},
	PlayerSets: {
		Name:     PlayerSets,
		Required: []string{"playerId"},
		Optional: []string{"isOnline", "eventIds"},
		PerPage:  perPagePlayerSets,
		Root:     "player",
		Document: `query PlayerSets($playerId: ID!, $isOnline: Boolean, $eventIds: [ID]) {
  player(id: $playerId) {
    id
    gamerTag
    user {
      slug
    }
    sets(perPage: 15, page: 1, filters: { isEventOnline: $isOnline, eventIds: $eventIds }) {
      nodes {
        id
        fullRoundText
        displayScore
        winnerId
        completedAt
        slots(includeByes: true) {
          entrant {
            id
            name
          }
          standing {
            placement
            stats {
              score {
                value
              }
            }
          }
        }
        event {
          id
          name
          numEntrants
          isOnline
          tournament {
            id
            name
            slug
            startAt
          }
        }
      }
    }
  }
}`,
	},
}

// RecentStandingsLimit is the number of standings returned by PlayerRecentPlacements.
const RecentStandingsLimit = recentStandingsLimit

// ProfileRecentEvents is the number of events returned by PlayerBySlug.
const ProfileRecentEvents = profileRecentEventSize
