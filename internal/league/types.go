package league

import "time"

// Position is a player's role in the squad. COACH is a roster entry that
// never accrues match statistics.
type Position string

const (
	GK    Position = "GK"
	DEF   Position = "DEF"
	MID   Position = "MID"
	FWD   Position = "FWD"
	COACH Position = "COACH"
)

// Valid reports whether p is one of the known positions.
func (p Position) Valid() bool {
	switch p {
	case GK, DEF, MID, FWD, COACH:
		return true
	}
	return false
}

// Player is one roster entry plus its accumulated season statistics.
// Statistics are never written field-by-field: they are produced by
// BuildBaseRoster and adjusted only through the edit overlay.
type Player struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Number        int       `json:"number"`
	Position      Position  `json:"position"`
	MatchesPlayed int       `json:"matches_played"`
	Goals         int       `json:"goals"`
	Assists       int       `json:"assists"`
	CleanSheets   int       `json:"clean_sheets"`
	TotalPoints   int       `json:"total_points"`
	AverageRating float64   `json:"average_rating"`
	Form          []float64 `json:"form"`
}

// RecentForm returns the last n ratings of the player's form. The full
// form sequence stays the source of truth for AverageRating.
func (p Player) RecentForm(n int) []float64 {
	if len(p.Form) <= n {
		return p.Form
	}
	return p.Form[len(p.Form)-n:]
}

// PlayerPerformance is one player's stat line in exactly one match.
type PlayerPerformance struct {
	PlayerID      string  `json:"player_id"`
	Minutes       int     `json:"minutes"`
	Goals         int     `json:"goals"`
	Assists       int     `json:"assists"`
	Rating        float64 `json:"rating"`
	YellowCard    bool    `json:"yellow_card"`
	RedCard       bool    `json:"red_card"`
	ManOfTheMatch bool    `json:"man_of_the_match"`
}

// MatchRecord is one played match. Immutable once saved; the result
// (win/draw/loss) is always derived from the scores.
type MatchRecord struct {
	ID            string              `json:"id"`
	Date          time.Time           `json:"date"`
	Opponent      string              `json:"opponent"`
	MyScore       int                 `json:"my_score"`
	OpponentScore int                 `json:"opponent_score"`
	Performances  []PlayerPerformance `json:"performances"`
}

// TeamConfig carries the team's display identity. Not part of any
// computation, but persisted and served alongside the roster.
type TeamConfig struct {
	Name           string `json:"name"`
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
}

// LeagueStats is the season record derived from match history.
type LeagueStats struct {
	Played       int      `json:"played"`
	Won          int      `json:"won"`
	Drawn        int      `json:"drawn"`
	Lost         int      `json:"lost"`
	GoalsFor     int      `json:"goals_for"`
	GoalsAgainst int      `json:"goals_against"`
	Points       int      `json:"points"`
	Form         []string `json:"form"`
}

// TeamBalance holds total fantasy points grouped by outfield position.
type TeamBalance struct {
	GK  int `json:"gk"`
	DEF int `json:"def"`
	MID int `json:"mid"`
	FWD int `json:"fwd"`
}
