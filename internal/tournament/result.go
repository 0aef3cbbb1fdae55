package tournament

import (
	"cmp"
	"slices"

	"github.com/rocketscienceinc/santorini-backend/internal/entity"
)

// Result - ranking of a finished series. Immutable once built.
type Result struct {
	results      []entity.PlayerResult
	disqualified map[entity.PlayerID]struct{}
	seeding      []entity.PlayerID
	games        int
	forfeited    int
}

// Build - ranks players in order of first appearance in the outcomes.
func Build(outcomes []entity.GameOutcome) *Result {
	return BuildSeeded(nil, outcomes)
}

// BuildSeeded - tallies wins and disqualifications. Aborted games are ignored. Players
// disqualified in any game are dropped from the ranking. Ties keep the seeding order; players missing from the seeding
// follow in order of first appearance.
func BuildSeeded(seeding []entity.PlayerID, outcomes []entity.GameOutcome) *Result {
	order := make([]entity.PlayerID, 0, len(seeding))
	seen := make(map[entity.PlayerID]struct{}, len(seeding))

	add := func(id entity.PlayerID) {
		if id == "" {
			return
		}

		if _, ok := seen[id]; ok {
			return
		}

		seen[id] = struct{}{}
		order = append(order, id)
	}

	for _, id := range seeding {
		add(id)
	}

	outcomes = slices.DeleteFunc(slices.Clone(outcomes), func(outcome entity.GameOutcome) bool {
		return outcome.Aborted
	})

	wins := make(map[entity.PlayerID]int)
	disqualified := make(map[entity.PlayerID]struct{})

	for _, outcome := range outcomes {
		add(outcome.Players[0])
		add(outcome.Players[1])

		if outcome.Disqualified != "" {
			disqualified[outcome.Disqualified] = struct{}{}
		}

		if outcome.Winner != "" {
			wins[outcome.Winner]++
		}
	}

	results := make([]entity.PlayerResult, 0, len(order))
	for _, id := range order {
		if _, ok := disqualified[id]; ok {
			continue
		}

		results = append(results, entity.PlayerResult{PlayerID: id, Wins: wins[id]})
	}

	slices.SortStableFunc(results, func(a, b entity.PlayerResult) int {
		return cmp.Compare(b.Wins, a.Wins)
	})

	forfeited := 0
	for _, outcome := range outcomes {
		if _, ok := disqualified[outcome.Winner]; ok || outcome.Winner == "" {
			forfeited++
		}
	}

	return &Result{
		results:      results,
		disqualified: disqualified,
		seeding:      order,
		games:        len(outcomes),
		forfeited:    forfeited,
	}
}

// PlayerResults - ranked players, most wins first.
func (that *Result) PlayerResults() []entity.PlayerResult {
	return slices.Clone(that.results)
}

func (that *Result) DisqualifiedPlayerIDs() map[entity.PlayerID]struct{} {
	disqualified := make(map[entity.PlayerID]struct{}, len(that.disqualified))
	for id := range that.disqualified {
		disqualified[id] = struct{}{}
	}

	return disqualified
}

// DisqualifiedList - disqualified players in seeding order.
func (that *Result) DisqualifiedList() []entity.PlayerID {
	var list []entity.PlayerID

	for _, id := range that.seeding {
		if that.IsDisqualified(id) {
			list = append(list, id)
		}
	}

	return list
}

func (that *Result) IsDisqualified(id entity.PlayerID) bool {
	_, ok := that.disqualified[id]
	return ok
}

// Games - number of outcomes the result was built from.
func (that *Result) Games() int {
	return that.games
}

// Forfeited - games whose win does not count towards the ranking.
func (that *Result) Forfeited() int {
	return that.forfeited
}

func (that *Result) Standings(tournamentID string) entity.Standings {
	return entity.Standings{
		TournamentID: tournamentID,
		Results:      that.PlayerResults(),
		Disqualified: that.DisqualifiedList(),
	}
}
