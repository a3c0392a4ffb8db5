package model

import "sort"

// PlayerRecord is a player's running tally across completed matches.
type PlayerRecord struct {
	Name   string `json:"name"`
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
}

// Ratio is wins over games played.
func (r PlayerRecord) Ratio() float64 {
	played := r.Wins + r.Losses
	if played == 0 {
		played = 1
	}
	return float64(r.Wins) / float64(played)
}

// Standings tallies a win for each player of the winning pair and a loss
// for each player of the losing pair, over every completed match, ranked
// by win ratio best first. Upcoming and ongoing matches don't count.
func Standings(matches []Match) []PlayerRecord {
	tally := map[string]*PlayerRecord{}
	rec := func(name string) *PlayerRecord {
		r, ok := tally[name]
		if !ok {
			r = &PlayerRecord{Name: name}
			tally[name] = r
		}
		return r
	}
	for _, m := range matches {
		if m.Status != StatusCompleted {
			continue
		}
		winners, losers := m.TeamOne, m.TeamTwo
		if m.Winner == WinnerTeamTwo {
			winners, losers = m.TeamTwo, m.TeamOne
		}
		for _, p := range winners {
			rec(p).Wins++
		}
		for _, p := range losers {
			rec(p).Losses++
		}
	}
	out := make([]PlayerRecord, 0, len(tally))
	for _, r := range tally {
		out = append(out, *r)
	}
	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := out[i].Ratio(), out[j].Ratio()
		if ri != rj {
			return ri > rj
		}
		if out[i].Wins != out[j].Wins {
			return out[i].Wins > out[j].Wins
		}
		return out[i].Name < out[j].Name
	})
	return out
}
