package league

import (
	"reflect"
	"testing"
	"time"
)

func testRoster() []Player {
	return []Player{
		{ID: "gk", Name: "Keeper", Number: 1, Position: GK},
		{ID: "d1", Name: "Back", Number: 4, Position: DEF},
		{ID: "m1", Name: "Engine", Number: 8, Position: MID},
		{ID: "f1", Name: "Striker", Number: 9, Position: FWD},
	}
}

func day(d int) time.Time {
	return time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildBaseRoster_Accumulates(t *testing.T) {
	history := []MatchRecord{
		{
			ID: "m1", Date: day(1), Opponent: "Thunder FC", MyScore: 2, OpponentScore: 0,
			Performances: []PlayerPerformance{
				{PlayerID: "f1", Minutes: 90, Goals: 2, Rating: 8.0},
				{PlayerID: "d1", Minutes: 90, Rating: 7.0},
			},
		},
		{
			ID: "m2", Date: day(8), Opponent: "Real Vibe", MyScore: 1, OpponentScore: 1,
			Performances: []PlayerPerformance{
				{PlayerID: "f1", Minutes: 45, Assists: 1, Rating: 6.0},
			},
		},
	}

	roster := BuildBaseRoster(testRoster(), nil, history)

	striker := findPlayer(t, roster, "f1")
	if striker.MatchesPlayed != 2 {
		t.Errorf("MatchesPlayed = %d, want 2", striker.MatchesPlayed)
	}
	if striker.Goals != 2 || striker.Assists != 1 {
		t.Errorf("Goals/Assists = %d/%d, want 2/1", striker.Goals, striker.Assists)
	}
	// Match 1: 2 + 8 + 2 (rating 8.0) = 12. Match 2: 1 + 3 = 4.
	if striker.TotalPoints != 16 {
		t.Errorf("TotalPoints = %d, want 16", striker.TotalPoints)
	}

	back := findPlayer(t, roster, "d1")
	if back.CleanSheets != 1 {
		t.Errorf("CleanSheets = %d, want 1", back.CleanSheets)
	}
	// 2 appearance + 4 clean sheet + 1 (rating 7.0)
	if back.TotalPoints != 7 {
		t.Errorf("TotalPoints = %d, want 7", back.TotalPoints)
	}
}

func TestBuildBaseRoster_AverageIsMeanOfFullForm(t *testing.T) {
	history := []MatchRecord{
		matchWithRatings(day(1), "m1", 8.0),
		matchWithRatings(day(8), "m1", 6.0),
		matchWithRatings(day(15), "m1", 7.0),
	}

	roster := BuildBaseRoster(testRoster(), nil, history)
	engine := findPlayer(t, roster, "m1")

	if len(engine.Form) != 3 {
		t.Fatalf("Form length = %d, want 3", len(engine.Form))
	}
	if engine.AverageRating != 7.0 {
		t.Errorf("AverageRating = %v, want 7.0 (mean of all ratings)", engine.AverageRating)
	}
}

func TestBuildBaseRoster_EmptyFormAveragesZero(t *testing.T) {
	roster := BuildBaseRoster(testRoster(), nil, nil)
	for _, p := range roster {
		if p.AverageRating != 0 {
			t.Errorf("player %s AverageRating = %v, want 0 with no matches", p.ID, p.AverageRating)
		}
		if len(p.Form) != 0 {
			t.Errorf("player %s Form = %v, want empty", p.ID, p.Form)
		}
	}
}

func TestBuildBaseRoster_Deterministic(t *testing.T) {
	history := []MatchRecord{
		matchWithRatings(day(1), "f1", 7.5),
		matchWithRatings(day(8), "d1", 6.5),
	}
	custom := []Player{{ID: "c1", Name: "Trialist", Number: 99, Position: MID}}

	first := BuildBaseRoster(testRoster(), custom, history)
	second := BuildBaseRoster(testRoster(), custom, history)

	if !reflect.DeepEqual(first, second) {
		t.Error("two aggregations over identical inputs differ")
	}
}

func TestBuildBaseRoster_ResetsPriorStats(t *testing.T) {
	seeded := testRoster()
	seeded[0].Goals = 50
	seeded[0].TotalPoints = 500
	seeded[0].Form = []float64{9, 9, 9}

	roster := BuildBaseRoster(seeded, nil, nil)
	keeper := findPlayer(t, roster, "gk")

	if keeper.Goals != 0 || keeper.TotalPoints != 0 || len(keeper.Form) != 0 {
		t.Errorf("stats not reset before fold: %+v", keeper)
	}
}

func TestBuildBaseRoster_UnknownPlayerSkipped(t *testing.T) {
	history := []MatchRecord{
		{
			ID: "m1", Date: day(1), MyScore: 1, OpponentScore: 0,
			Performances: []PlayerPerformance{
				{PlayerID: "ghost", Minutes: 90, Goals: 3, Rating: 9.5},
			},
		},
	}

	roster := BuildBaseRoster(testRoster(), nil, history)
	for _, p := range roster {
		if p.MatchesPlayed != 0 || p.TotalPoints != 0 {
			t.Errorf("player %s accrued stats from an unmatched performance", p.ID)
		}
	}
}

func TestBuildBaseRoster_IncludesCustomPlayers(t *testing.T) {
	custom := []Player{{ID: "c1", Name: "Trialist", Number: 99, Position: FWD}}
	history := []MatchRecord{
		{
			ID: "m1", Date: day(1), MyScore: 1, OpponentScore: 2,
			Performances: []PlayerPerformance{
				{PlayerID: "c1", Minutes: 90, Goals: 1, Rating: 7.0},
			},
		},
	}

	roster := BuildBaseRoster(testRoster(), custom, history)
	trialist := findPlayer(t, roster, "c1")
	if trialist.Goals != 1 {
		t.Errorf("custom player Goals = %d, want 1", trialist.Goals)
	}
}

func matchWithRatings(date time.Time, playerID string, rating float64) MatchRecord {
	return MatchRecord{
		ID: "m-" + date.Format("0102"), Date: date, MyScore: 1, OpponentScore: 1,
		Performances: []PlayerPerformance{
			{PlayerID: playerID, Minutes: 90, Rating: rating},
		},
	}
}

func findPlayer(t *testing.T, roster []Player, id string) Player {
	t.Helper()
	for _, p := range roster {
		if p.ID == id {
			return p
		}
	}
	t.Fatalf("player %s not in roster", id)
	return Player{}
}
