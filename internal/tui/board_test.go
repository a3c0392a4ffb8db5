package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courtside/internal/model"
	"courtside/internal/page"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, b board, msg tea.Msg) board {
	t.Helper()
	next, _ := b.Update(msg)
	nb, ok := next.(board)
	require.True(t, ok)
	return nb
}

func fixture() []model.Match {
	a := model.New([2]string{"Ann", "Ben"}, [2]string{"Cara", "Dev"}, "2026-08-29", "mixed doubles")
	b := model.New([2]string{"Eli", "Fay"}, [2]string{"Gus", "Hana"}, "2026-08-30", "doubles")
	return []model.Match{a, b}
}

func TestMenuToggleParity(t *testing.T) {
	b := newBoard(fixture(), false)
	require.False(t, b.menuOpen())

	for n := 1; n <= 5; n++ {
		b = press(t, b, keyRunes("m"))
		want := n%2 == 1
		require.Equal(t, want, b.menuOpen(), "after %d presses", n)
		// toggle and menu always agree
		require.Equal(t, b.menu.HasClass(page.ClassActive), b.toggle.HasClass(page.ClassActive))
	}

	b = press(t, b, keyRunes("m")) // even again
	assert.NotContains(t, b.View(), "Rankings")
	b = press(t, b, keyRunes("m"))
	assert.Contains(t, b.View(), "Rankings")
}

func TestStartDeclinedThenAccepted(t *testing.T) {
	b := newBoard(fixture(), false)

	b = press(t, b, keyRunes("s"))
	require.True(t, b.confirming)
	assert.Contains(t, b.View(), page.StartConfirmText)

	// decline: nothing changes
	b = press(t, b, keyRunes("n"))
	assert.False(t, b.confirming)
	assert.Equal(t, model.StatusUpcoming, b.matches[0].Status)
	assert.False(t, b.changed)

	// accept: match goes live
	b = press(t, b, keyRunes("s"))
	require.True(t, b.confirming)
	b = press(t, b, keyRunes("y"))
	assert.False(t, b.confirming)
	assert.Equal(t, model.StatusOngoing, b.matches[0].Status)
	assert.True(t, b.changed)
}

func TestConfirmSwallowsOtherKeys(t *testing.T) {
	b := newBoard(fixture(), false)
	b = press(t, b, keyRunes("s"))
	require.True(t, b.confirming)

	b = press(t, b, keyRunes("m")) // must not reach the nav toggle
	assert.True(t, b.confirming)
	assert.False(t, b.menuOpen())
}

func TestCancelRemovesMatch(t *testing.T) {
	b := newBoard(fixture(), false)
	b = press(t, b, tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, 1, b.cursor)

	b = press(t, b, keyRunes("c"))
	require.True(t, b.confirming)
	assert.Contains(t, b.View(), page.CancelConfirmText)

	b = press(t, b, keyRunes("y"))
	require.Len(t, b.matches, 1)
	assert.Equal(t, "Ann & Ben vs Cara & Dev", b.matches[0].Versus())
	assert.Equal(t, 0, b.cursor)
	assert.True(t, b.changed)
}

func TestStartOnlyFromUpcoming(t *testing.T) {
	ms := fixture()
	require.NoError(t, ms[0].Start())
	b := newBoard(ms, false)

	b = press(t, b, keyRunes("s"))
	assert.False(t, b.confirming, "no prompt for a non-upcoming match")
	assert.False(t, b.changed)
}

func TestReadOnlyBoard(t *testing.T) {
	b := newBoard(fixture(), true)

	b = press(t, b, keyRunes("s"))
	assert.False(t, b.confirming)
	assert.False(t, b.changed)
	assert.Contains(t, b.status, "read-only")

	// navigation still works
	b = press(t, b, keyRunes("m"))
	assert.True(t, b.menuOpen())
}

func TestFinishFlow(t *testing.T) {
	ms := fixture()
	require.NoError(t, ms[0].Start())
	b := newBoard(ms, false)

	b = press(t, b, keyRunes("f"))
	require.True(t, b.scoring)

	// empty score is rejected
	b = press(t, b, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, b.scoring)
	assert.NotEmpty(t, b.scoreErr)

	b = press(t, b, keyRunes("21-15, 21-19"))
	b = press(t, b, tea.KeyMsg{Type: tea.KeyEnter})
	require.False(t, b.scoring)
	require.True(t, b.pickingWinner)

	b = press(t, b, keyRunes("1"))
	assert.Equal(t, model.StatusCompleted, b.matches[0].Status)
	assert.Equal(t, model.WinnerTeamOne, b.matches[0].Winner)
	assert.Equal(t, "21-15, 21-19", b.matches[0].Score)
	assert.Equal(t, "Decisive Victory!", b.matches[0].Remark)
	assert.True(t, b.changed)
}

func TestRankingsOverlay(t *testing.T) {
	ms := fixture()
	require.NoError(t, ms[0].Start())
	require.NoError(t, ms[0].Finish(model.WinnerTeamOne, "21-5, 21-7"))
	b := newBoard(ms, false)

	b = press(t, b, keyRunes("r"))
	require.True(t, b.showRankings)
	view := b.View()
	assert.Contains(t, view, "Rankings")
	assert.Contains(t, view, "Ann")
	assert.Contains(t, view, "1-0")

	// overlay swallows action keys
	b = press(t, b, keyRunes("s"))
	assert.False(t, b.confirming)
	require.True(t, b.showRankings)

	b = press(t, b, keyRunes("r"))
	assert.False(t, b.showRankings)
}

func TestRankingsOverlayEmpty(t *testing.T) {
	b := newBoard(fixture(), true) // works read-only too
	b = press(t, b, keyRunes("r"))
	assert.Contains(t, b.View(), "no results yet")
}

func TestFinishRequiresOngoing(t *testing.T) {
	b := newBoard(fixture(), false)
	b = press(t, b, keyRunes("f"))
	assert.False(t, b.scoring)
	assert.Contains(t, b.status, "ongoing")
}
