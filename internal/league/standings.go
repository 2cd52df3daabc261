package league

import "sort"

// FormWindow is how many recent results make up the displayed form run.
const FormWindow = 5

// ComputeLeagueStats folds the match history into the season record.
// Matches are sorted by date before folding so the form sequence reads
// chronologically regardless of insertion order.
func ComputeLeagueStats(history []MatchRecord) LeagueStats {
	matches := make([]MatchRecord, len(history))
	copy(matches, history)
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Date.Before(matches[j].Date)
	})

	stats := LeagueStats{Form: []string{}}
	for _, m := range matches {
		stats.Played++
		stats.GoalsFor += m.MyScore
		stats.GoalsAgainst += m.OpponentScore

		switch {
		case m.MyScore > m.OpponentScore:
			stats.Won++
			stats.Points += 3
			stats.Form = append(stats.Form, "W")
		case m.MyScore == m.OpponentScore:
			stats.Drawn++
			stats.Points++
			stats.Form = append(stats.Form, "D")
		default:
			stats.Lost++
			stats.Form = append(stats.Form, "L")
		}
	}

	if len(stats.Form) > FormWindow {
		stats.Form = stats.Form[len(stats.Form)-FormWindow:]
	}
	return stats
}

// ComputeTeamBalance sums total fantasy points per position over the
// final roster. COACH entries are excluded entirely.
func ComputeTeamBalance(roster []Player) TeamBalance {
	var balance TeamBalance
	for _, p := range roster {
		switch p.Position {
		case GK:
			balance.GK += p.TotalPoints
		case DEF:
			balance.DEF += p.TotalPoints
		case MID:
			balance.MID += p.TotalPoints
		case FWD:
			balance.FWD += p.TotalPoints
		}
	}
	return balance
}
