package league

// BuildBaseRoster folds the full match history into a fresh roster of
// accumulated statistics. The result is the "base" roster: computed purely
// from (initial ∪ custom) players and history, before any manual edits.
//
// The fold is deterministic and has no hidden state: identical inputs
// always produce identical output, so callers may recompute at will.
// Performances referencing an unknown player id are skipped.
func BuildBaseRoster(initial, custom []Player, history []MatchRecord) []Player {
	roster := make([]Player, 0, len(initial)+len(custom))
	index := make(map[string]int, len(initial)+len(custom))

	for _, p := range append(append([]Player{}, initial...), custom...) {
		p.MatchesPlayed = 0
		p.Goals = 0
		p.Assists = 0
		p.CleanSheets = 0
		p.TotalPoints = 0
		p.AverageRating = 0
		p.Form = nil

		index[p.ID] = len(roster)
		roster = append(roster, p)
	}

	for _, match := range history {
		for _, perf := range match.Performances {
			i, ok := index[perf.PlayerID]
			if !ok {
				continue
			}
			player := &roster[i]

			player.MatchesPlayed++
			player.Goals += perf.Goals
			player.Assists += perf.Assists
			player.TotalPoints += Score(player.Position, perf, match.OpponentScore)
			if KeptCleanSheet(player.Position, perf, match.OpponentScore) {
				player.CleanSheets++
			}

			// Average covers the whole form history; "last 5" is a
			// display slice, never a separate average.
			player.Form = append(player.Form, perf.Rating)
			player.AverageRating = meanOf(player.Form)
		}
	}

	return roster
}

func meanOf(ratings []float64) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0.0
	for _, r := range ratings {
		sum += r
	}
	return sum / float64(len(ratings))
}
