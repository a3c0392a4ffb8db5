package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func played(teamOne, teamTwo [2]string, w Winner) Match {
	m := New(teamOne, teamTwo, "2026-08-30", "doubles")
	if err := m.Start(); err != nil {
		panic(err)
	}
	if err := m.Finish(w, "21-10, 21-12"); err != nil {
		panic(err)
	}
	return m
}

func TestStandings(t *testing.T) {
	matches := []Match{
		played([2]string{"Ann", "Ben"}, [2]string{"Cara", "Dev"}, WinnerTeamOne),
		played([2]string{"Ann", "Cara"}, [2]string{"Ben", "Dev"}, WinnerTeamOne),
		// still pending, must not count
		New([2]string{"Ann", "Ben"}, [2]string{"Cara", "Dev"}, "", ""),
	}

	ranks := Standings(matches)
	require.Len(t, ranks, 4)

	// Ann won both, Dev lost both
	assert.Equal(t, PlayerRecord{Name: "Ann", Wins: 2, Losses: 0}, ranks[0])
	assert.Equal(t, PlayerRecord{Name: "Dev", Wins: 0, Losses: 2}, ranks[3])
	assert.InDelta(t, 1.0, ranks[0].Ratio(), 1e-9)

	// Ben and Cara each split; ties break by name
	assert.Equal(t, "Ben", ranks[1].Name)
	assert.Equal(t, "Cara", ranks[2].Name)
	assert.InDelta(t, 0.5, ranks[1].Ratio(), 1e-9)
}

func TestStandingsEmpty(t *testing.T) {
	assert.Empty(t, Standings(nil))
	assert.Empty(t, Standings([]Match{New([2]string{"A", "B"}, [2]string{"C", "D"}, "", "")}))
}

func TestRatioNoGames(t *testing.T) {
	assert.Zero(t, PlayerRecord{Name: "Ann"}.Ratio())
}
