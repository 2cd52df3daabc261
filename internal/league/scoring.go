package league

// Score computes the fantasy points for one performance in one match.
// The steps and their order are fixed; changing them would silently
// re-score every saved season.
//
//  1. +1 for any appearance, +1 more for 60+ minutes
//  2. goals ×4 (FWD), ×5 (MID), ×6 (DEF/GK)
//  3. assists ×3
//  4. +4 clean sheet for DEF/GK with 60+ minutes and opponent held to 0
//  5. −1 yellow card, −3 red card
//  6. rating bonus, highest band only: +3 (≥8.5), +2 (≥7.5), +1 (≥6.5)
//  7. +5 man of the match
func Score(pos Position, perf PlayerPerformance, opponentScore int) int {
	points := 0

	if perf.Minutes > 0 {
		points++
	}
	if perf.Minutes >= 60 {
		points++
	}

	switch pos {
	case FWD:
		points += perf.Goals * 4
	case MID:
		points += perf.Goals * 5
	default:
		points += perf.Goals * 6
	}

	points += perf.Assists * 3

	if KeptCleanSheet(pos, perf, opponentScore) {
		points += 4
	}

	if perf.YellowCard {
		points--
	}
	if perf.RedCard {
		points -= 3
	}

	switch {
	case perf.Rating >= 8.5:
		points += 3
	case perf.Rating >= 7.5:
		points += 2
	case perf.Rating >= 6.5:
		points++
	}

	if perf.ManOfTheMatch {
		points += 5
	}

	return points
}

// KeptCleanSheet reports whether the performance earns clean-sheet credit:
// a defensive player on the pitch for 60+ minutes while the opponent was
// held scoreless. The same condition gates both the +4 bonus and the
// CleanSheets counter.
func KeptCleanSheet(pos Position, perf PlayerPerformance, opponentScore int) bool {
	return (pos == DEF || pos == GK) && opponentScore == 0 && perf.Minutes >= 60
}
