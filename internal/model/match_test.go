package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	m := New([2]string{"Ann", "Ben"}, [2]string{"Cara", "Dev"}, "", "")
	assert.NotEmpty(t, m.ID)
	assert.Equal(t, StatusUpcoming, m.Status)
	assert.Equal(t, "mixed doubles", m.GameType)
	assert.NotEmpty(t, m.Date)
	assert.Equal(t, "Ann & Ben vs Cara & Dev", m.Versus())
}

func TestLifecycle(t *testing.T) {
	m := New([2]string{"Ann", "Ben"}, [2]string{"Cara", "Dev"}, "2026-08-30", "doubles")

	require.NoError(t, m.Start())
	assert.Equal(t, StatusOngoing, m.Status)
	assert.ErrorIs(t, m.Start(), ErrNotUpcoming)

	require.NoError(t, m.Finish(WinnerTeamTwo, "19-21, 18-21"))
	assert.Equal(t, StatusCompleted, m.Status)
	assert.Equal(t, WinnerTeamTwo, m.Winner)
	assert.Equal(t, "Well Fought Match!", m.Remark)
	assert.ErrorIs(t, m.Finish(WinnerTeamOne, "x"), ErrNotOngoing)
}

func TestFinishRequiresOngoing(t *testing.T) {
	m := New([2]string{"Ann", "Ben"}, [2]string{"Cara", "Dev"}, "", "")
	assert.ErrorIs(t, m.Finish(WinnerTeamOne, "21-1"), ErrNotOngoing)
}

func TestRemark(t *testing.T) {
	tests := []struct {
		name  string
		score string
		want  string
	}{
		{"close single game", "21-19", "Nice Close Game!"},
		{"exactly two apart", "21-19, 20-20", "Nice Close Game!"},
		{"well fought", "21-17, 15-16", "Well Fought Match!"},
		{"exactly five apart", "21-16", "Well Fought Match!"},
		{"decisive", "21-5, 21-7", "Decisive Victory!"},
		{"three games close", "21-15, 15-21, 21-19", "Nice Close Game!"},
		{"empty", "", ""},
		{"one number", "21", ""},
		{"odd count", "21-15, 21", ""},
		{"no digits", "forfeit", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Remark(tt.score))
		})
	}
}
