package league

// PlayerEdit holds a manager's manual corrections for one player.
// Identity fields (name, number, position) are stored as direct overrides;
// statistical fields are stored as signed offsets against the computed
// base value at the moment the edit was made. Storing offsets instead of
// absolutes keeps an edit meaningful after later matches move the base.
type PlayerEdit struct {
	Name     *string   `json:"name,omitempty"`
	Number   *int      `json:"number,omitempty"`
	Position *Position `json:"position,omitempty"`

	MatchesOffset     int `json:"matches_offset,omitempty"`
	GoalsOffset       int `json:"goals_offset,omitempty"`
	AssistsOffset     int `json:"assists_offset,omitempty"`
	CleanSheetsOffset int `json:"clean_sheets_offset,omitempty"`
	PointsOffset      int `json:"points_offset,omitempty"`
}

// EditSet maps player id to that player's pending edit.
type EditSet map[string]PlayerEdit

// PlayerUpdate is a partial desired state for one player. Nil fields are
// untouched; set statistical fields are the values the manager wants to
// see on the final roster.
type PlayerUpdate struct {
	Name     *string   `json:"name,omitempty"`
	Number   *int      `json:"number,omitempty"`
	Position *Position `json:"position,omitempty"`

	MatchesPlayed *int `json:"matches_played,omitempty"`
	Goals         *int `json:"goals,omitempty"`
	Assists       *int `json:"assists,omitempty"`
	CleanSheets   *int `json:"clean_sheets,omitempty"`
	TotalPoints   *int `json:"total_points,omitempty"`
}

// RecordEdit returns a copy of edits with upd folded in for playerID.
// Offsets are always computed against base — the current computed roster,
// not a previously edited view — so repeated edits never compound.
// An id with no base player is a no-op.
func RecordEdit(edits EditSet, playerID string, upd PlayerUpdate, base []Player) EditSet {
	var basePlayer *Player
	for i := range base {
		if base[i].ID == playerID {
			basePlayer = &base[i]
			break
		}
	}
	if basePlayer == nil {
		return edits
	}

	next := make(EditSet, len(edits)+1)
	for id, e := range edits {
		next[id] = e
	}
	edit := next[playerID]

	if upd.Name != nil {
		edit.Name = upd.Name
	}
	if upd.Number != nil {
		edit.Number = upd.Number
	}
	if upd.Position != nil {
		edit.Position = upd.Position
	}

	if upd.MatchesPlayed != nil {
		edit.MatchesOffset = *upd.MatchesPlayed - basePlayer.MatchesPlayed
	}
	if upd.Goals != nil {
		edit.GoalsOffset = *upd.Goals - basePlayer.Goals
	}
	if upd.Assists != nil {
		edit.AssistsOffset = *upd.Assists - basePlayer.Assists
	}
	if upd.CleanSheets != nil {
		edit.CleanSheetsOffset = *upd.CleanSheets - basePlayer.CleanSheets
	}
	if upd.TotalPoints != nil {
		edit.PointsOffset = *upd.TotalPoints - basePlayer.TotalPoints
	}

	next[playerID] = edit
	return next
}

// ApplyEdits merges the edit overlay onto the base roster and returns the
// final roster shown to the user. Base players without an edit pass
// through unchanged; edits for unknown ids are ignored.
func ApplyEdits(base []Player, edits EditSet) []Player {
	final := make([]Player, len(base))
	for i, player := range base {
		edit, ok := edits[player.ID]
		if !ok {
			final[i] = player
			continue
		}

		if edit.Name != nil {
			player.Name = *edit.Name
		}
		if edit.Number != nil {
			player.Number = *edit.Number
		}
		if edit.Position != nil {
			player.Position = *edit.Position
		}
		player.MatchesPlayed += edit.MatchesOffset
		player.Goals += edit.GoalsOffset
		player.Assists += edit.AssistsOffset
		player.CleanSheets += edit.CleanSheetsOffset
		player.TotalPoints += edit.PointsOffset

		final[i] = player
	}
	return final
}
