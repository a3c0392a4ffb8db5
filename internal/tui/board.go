// Package tui hosts the interactive match-day board. The board's screen is
// a page document: the nav toggle, the mobile menu and every match button
// are elements carrying marker classes, and key presses become clicks
// dispatched through the page bindings.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"courtside/internal/model"
	"courtside/internal/page"
)

type action int

const (
	actionNone action = iota
	actionStart
	actionCancel
)

// row holds the page buttons belonging to one match.
type row struct {
	start  *page.Element
	cancel *page.Element
}

type board struct {
	doc    *page.Document
	rc     *page.ReplayConfirm
	toggle *page.Element
	menu   *page.Element

	matches []model.Match
	rows    []row
	cursor  int

	changed  bool
	readOnly bool
	status   string // transient hint under the list

	// Confirm prompt: blocking from the page's point of view. While a
	// click is suspended every key except y/n is swallowed.
	confirming bool
	pendingEl  *page.Element
	pendingAct action
	pendingIdx int

	// Rankings overlay, fed from completed matches.
	showRankings bool

	// Finish flow: score entry, then winner pick.
	scoring       bool
	pickingWinner bool
	score         string
	scoreErr      string
	ti            textinput.Model

	width, height int
}

func newBoard(matches []model.Match, readOnly bool) board {
	doc := page.NewDocument()
	rc := page.NewReplayConfirm()
	doc.Confirm = rc.Ask

	toggle := doc.CreateElement("button", page.IDNavToggle)
	menu := doc.CreateElement("nav", page.IDMobileMenu)
	page.Bind(doc)

	b := board{
		doc:      doc,
		rc:       rc,
		toggle:   toggle,
		menu:     menu,
		matches:  matches,
		readOnly: readOnly,
	}
	// Buttons are created after Bind on purpose; the delegated
	// interceptor covers them regardless.
	for range matches {
		b.rows = append(b.rows, row{
			start:  doc.CreateElement("button", "", page.ClassStartMatch),
			cancel: doc.CreateElement("button", "", page.ClassCancelMatch),
		})
	}

	b.ti = textinput.New()
	b.ti.Prompt = "> "
	b.ti.Placeholder = "21-15, 15-21, 21-19"
	b.ti.CharLimit = 100
	return b
}

// Run starts the board and reports the final matches and whether anything
// changed; the caller persists.
func Run(matches []model.Match, readOnly bool) ([]model.Match, bool, error) {
	p := tea.NewProgram(newBoard(matches, readOnly), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return nil, false, err
	}
	fb, ok := final.(board)
	if !ok {
		return matches, false, nil
	}
	return fb.matches, fb.changed, nil
}

func (b board) Init() tea.Cmd { return nil }

func (b board) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		b.width, b.height = ws.Width, ws.Height
		return b, nil
	}

	// confirm prompt swallows everything but an answer
	if b.confirming {
		if k, ok := msg.(tea.KeyMsg); ok {
			switch k.String() {
			case "y", "Y", "enter":
				return b.resolveConfirm(true)
			case "n", "N", "esc":
				return b.resolveConfirm(false)
			}
		}
		return b, nil
	}

	// score entry mode
	if b.scoring {
		var cmd tea.Cmd
		if k, ok := msg.(tea.KeyMsg); ok {
			switch k.String() {
			case "enter":
				score := strings.TrimSpace(b.ti.Value())
				if score == "" {
					b.scoreErr = "Score cannot be empty"
					return b, nil
				}
				b.score = score
				b.scoreErr = ""
				b.ti.SetValue("")
				b.ti.Blur()
				b.scoring = false
				b.pickingWinner = true
				return b, nil
			case "esc":
				b.scoring = false
				b.scoreErr = ""
				b.ti.SetValue("")
				b.ti.Blur()
				return b, nil
			}
		}
		b.ti, cmd = b.ti.Update(msg)
		return b, cmd
	}

	// rankings overlay
	if b.showRankings {
		if k, ok := msg.(tea.KeyMsg); ok {
			switch k.String() {
			case "r", "esc", "q":
				b.showRankings = false
			}
		}
		return b, nil
	}

	// winner pick mode
	if b.pickingWinner {
		if k, ok := msg.(tea.KeyMsg); ok {
			switch k.String() {
			case "1":
				return b.finish(model.WinnerTeamOne)
			case "2":
				return b.finish(model.WinnerTeamTwo)
			case "esc":
				b.pickingWinner = false
				b.score = ""
				return b, nil
			}
		}
		return b, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		b.status = ""
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return b, tea.Quit
		case "m":
			b.doc.Click(b.toggle)
			return b, nil
		case "up", "k":
			if b.cursor > 0 {
				b.cursor--
			}
			return b, nil
		case "down", "j":
			if b.cursor < len(b.matches)-1 {
				b.cursor++
			}
			return b, nil
		case "r":
			b.showRankings = true
			return b, nil
		case "s":
			return b.activate(actionStart)
		case "c":
			return b.activate(actionCancel)
		case "f":
			if b.readOnly {
				b.status = "read-only: log in as admin to manage matches"
				return b, nil
			}
			if len(b.matches) == 0 || b.matches[b.cursor].Status != model.StatusOngoing {
				b.status = "only an ongoing match can be finished"
				return b, nil
			}
			b.scoring = true
			b.ti.SetValue("")
			b.ti.Focus()
			return b, nil
		}
	}
	return b, nil
}

// activate clicks the selected match's start or cancel button.
func (b board) activate(act action) (tea.Model, tea.Cmd) {
	if b.readOnly {
		b.status = "read-only: log in as admin to manage matches"
		return b, nil
	}
	if len(b.matches) == 0 {
		return b, nil
	}
	i := b.cursor
	var el *page.Element
	switch act {
	case actionStart:
		if b.matches[i].Status != model.StatusUpcoming {
			b.status = "only an upcoming match can start"
			return b, nil
		}
		el = b.rows[i].start
	case actionCancel:
		el = b.rows[i].cancel
	default:
		return b, nil
	}
	b.rc.Restart()
	return b.dispatch(el, act, i)
}

func (b board) dispatch(el *page.Element, act action, i int) (tea.Model, tea.Cmd) {
	switch b.doc.Click(el) {
	case page.ClickSuspended:
		b.confirming = true
		b.pendingEl, b.pendingAct, b.pendingIdx = el, act, i
	case page.ClickProceeded:
		b = b.apply(act, i)
	case page.ClickPrevented:
		b.status = "nothing changed"
	}
	return b, nil
}

func (b board) resolveConfirm(yes bool) (tea.Model, tea.Cmd) {
	b.confirming = false
	b.rc.Answer(yes)
	return b.dispatch(b.pendingEl, b.pendingAct, b.pendingIdx)
}

// apply performs the default action of a click that went through.
func (b board) apply(act action, i int) board {
	switch act {
	case actionStart:
		if err := b.matches[i].Start(); err != nil {
			b.status = err.Error()
			return b
		}
		b.changed = true
		b.status = "match started"
	case actionCancel:
		b.doc.Remove(b.rows[i].start)
		b.doc.Remove(b.rows[i].cancel)
		b.matches = append(b.matches[:i], b.matches[i+1:]...)
		b.rows = append(b.rows[:i], b.rows[i+1:]...)
		if b.cursor >= len(b.matches) && b.cursor > 0 {
			b.cursor--
		}
		b.changed = true
		b.status = "match cancelled"
	}
	return b
}

func (b board) finish(w model.Winner) (tea.Model, tea.Cmd) {
	b.pickingWinner = false
	if err := b.matches[b.cursor].Finish(w, b.score); err != nil {
		b.status = err.Error()
	} else {
		b.changed = true
		b.status = "result recorded: " + b.matches[b.cursor].Remark
	}
	b.score = ""
	return b, nil
}

func (b board) menuOpen() bool {
	// derived from the page, never tracked separately
	return b.menu.HasClass(page.ClassActive)
}

func (b board) View() string {
	var sb strings.Builder

	head := titleStyle.Render("COURTSIDE") + mutedStyle.Render(" · match day")
	glyph := mutedStyle.Render(toggleGlyph)
	if b.toggle.HasClass(page.ClassActive) {
		glyph = selectedStyle.Render(toggleGlyph)
	}
	sb.WriteString(head + "  " + glyph + "\n")

	if b.menuOpen() {
		sb.WriteString(accentStyle.Render("Home   Dashboard   Rankings   Log out") + "\n")
	}
	sb.WriteString("\n")

	if len(b.matches) == 0 {
		sb.WriteString(mutedStyle.Render("no matches scheduled") + "\n")
	}
	for i, m := range b.matches {
		prefix := "  "
		if i == b.cursor {
			prefix = selectedStyle.Render("> ")
		}
		sb.WriteString(prefix + matchLine(m) + "\n")
	}

	if b.status != "" {
		sb.WriteString("\n" + mutedStyle.Render(b.status) + "\n")
	}

	help := "↑/↓ move · m menu · s start · c cancel · f finish · r rankings · q quit"
	if b.readOnly {
		help = "↑/↓ move · m menu · r rankings · q quit (read-only)"
	}
	sb.WriteString("\n" + helpStyle.Render(help))

	content := panelString(strings.TrimRight(sb.String(), "\n"))

	switch {
	case b.showRankings:
		ranks := model.Standings(b.matches)
		var rb strings.Builder
		rb.WriteString(titleStyle.Render("Rankings"))
		if len(ranks) == 0 {
			rb.WriteString("\n" + mutedStyle.Render("no results yet"))
		}
		for i, r := range ranks {
			rb.WriteString(fmt.Sprintf("\n%2d. %s %s %s", i+1, r.Name,
				mutedStyle.Render(fmt.Sprintf("%d-%d", r.Wins, r.Losses)),
				accentStyle.Render(fmt.Sprintf("%3.0f%%", r.Ratio()*100))))
		}
		rb.WriteString("\n" + helpStyle.Render("r to close"))
		content += "\n" + panelString(rb.String())
	case b.confirming:
		modal := titleStyle.Render("Confirm") + "\n" +
			b.rc.Message() + "\n" +
			helpStyle.Render("[y] yes   [n] no")
		content += "\n" + modalString(modal)
	case b.scoring:
		title := "Final score"
		if b.scoreErr != "" {
			title += " — " + errorStyle.Render(b.scoreErr)
		}
		content += "\n" + panelString(title+"\n"+b.ti.View())
	case b.pickingWinner:
		m := b.matches[b.cursor]
		pick := titleStyle.Render("Winner?") + "\n" +
			fmt.Sprintf("[1] %s & %s   [2] %s & %s",
				m.TeamOne[0], m.TeamOne[1], m.TeamTwo[0], m.TeamTwo[1]) + "\n" +
			helpStyle.Render("esc to go back")
		content += "\n" + modalString(pick)
	}
	return content
}

func matchLine(m model.Match) string {
	var sym, text string
	switch m.Status {
	case model.StatusOngoing:
		sym = pendingStyle.Render("▶")
		text = m.Versus()
	case model.StatusCompleted:
		sym = successStyle.Render("✔")
		text = doneStyle.Render(m.Versus())
	default:
		sym = mutedStyle.Render("•")
		text = m.Versus()
	}
	line := fmt.Sprintf("%s %s %s", sym, text, mutedStyle.Render(m.Date+" · "+m.GameType))
	if m.Status == model.StatusCompleted && m.Score != "" {
		line += " " + mutedStyle.Render(m.Score)
		if m.Remark != "" {
			line += " " + accentStyle.Render(m.Remark)
		}
	}
	return line
}
