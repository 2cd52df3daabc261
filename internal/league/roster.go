package league

// DefaultTeamConfig is the team identity used until the manager saves one.
func DefaultTeamConfig() TeamConfig {
	return TeamConfig{
		Name:           "My Team",
		PrimaryColor:   "#4f46e5",
		SecondaryColor: "#10b981",
	}
}

// DefaultOpponents are suggested opponent names for match entry.
var DefaultOpponents = []string{
	"Thunder FC", "Real Vibe", "Atletico Coding", "Dynamo Data",
	"Sporting Server", "Inter Interface", "Rapid React",
}

// DefaultRoster returns the fixed initial squad. Custom players added at
// runtime are merged with these before aggregation.
func DefaultRoster() []Player {
	return []Player{
		{ID: "1", Name: "Ignacio", Number: 1, Position: COACH},
		{ID: "2", Name: "Juanpe", Number: 14, Position: GK},
		{ID: "3", Name: "Luengo", Number: 23, Position: DEF},
		{ID: "4", Name: "Hugo", Number: 19, Position: DEF},
		{ID: "5", Name: "Mayor", Number: 92, Position: DEF},
		{ID: "6", Name: "Mateo", Number: 9, Position: DEF},
		{ID: "7", Name: "Manu", Number: 17, Position: DEF},
		{ID: "8", Name: "Vici", Number: 4, Position: DEF},
		{ID: "9", Name: "Paradela", Number: 3, Position: DEF},
		{ID: "10", Name: "Guilleto", Number: 51, Position: MID},
		{ID: "11", Name: "Jorpa", Number: 74, Position: MID},
		{ID: "12", Name: "Rentero", Number: 22, Position: MID},
		{ID: "13", Name: "Guille", Number: 10, Position: MID},
		{ID: "14", Name: "Garmendia", Number: 18, Position: MID},
		{ID: "15", Name: "Frabian Menor", Number: 7, Position: MID},
		{ID: "16", Name: "Guerre", Number: 8, Position: MID},
		{ID: "17", Name: "Daniel", Number: 15, Position: FWD},
		{ID: "18", Name: "Pons", Number: 44, Position: FWD},
	}
}
