package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"

	"courtside/internal/model"
	"courtside/internal/page"
	"courtside/internal/session"
	"courtside/internal/store/jsonstore"
	"courtside/internal/tui"
	"courtside/internal/ui"
)

// Options tune output behavior from root flags.
type Options struct {
	Group bool // list grouped by status
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	if len(args) == 0 {
		PrintHelp()
		return 2
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0

	case "board":
		return doBoard()

	case "ls":
		return doList(opt)

	case "rankings":
		return doRankings()

	case "add":
		if len(a) != 4 && len(a) != 5 {
			ui.Fail("usage: courtside add <a1> <a2> <b1> <b2> [date]")
			return 2
		}
		date := ""
		if len(a) == 5 {
			date = a[4]
		}
		return doAdd([2]string{a[0], a[1]}, [2]string{a[2], a[3]}, date)

	case "start":
		n, code := indexArg("start", a)
		if code != 0 {
			return code
		}
		return doStart(n)

	case "cancel":
		n, code := indexArg("cancel", a)
		if code != 0 {
			return code
		}
		return doCancel(n)

	case "finish":
		if len(a) < 3 {
			ui.Fail("usage: courtside finish <index> <team1|team2> <score...>")
			return 2
		}
		n, err := strconv.Atoi(a[0])
		if err != nil {
			ui.Fail("finish: not a number: " + a[0])
			return 2
		}
		var winner model.Winner
		switch a[1] {
		case "team1":
			winner = model.WinnerTeamOne
		case "team2":
			winner = model.WinnerTeamTwo
		default:
			ui.Fail("finish: winner must be team1 or team2")
			return 2
		}
		return doFinish(n, winner, strings.Join(a[2:], " "))

	case "auth":
		if len(a) == 0 {
			ui.Fail("usage: courtside auth <login|logout|status|whoami>")
			return 2
		}
		switch a[0] {
		case "login":
			if len(a) < 2 || len(a) > 3 {
				ui.Fail("usage: courtside auth login <user> [role]")
				return 2
			}
			role := ""
			if len(a) == 3 {
				role = a[2]
			}
			return doAuthLogin(a[1], role)
		case "logout":
			return doAuthLogout()
		case "status":
			return doAuthStatus()
		case "whoami":
			return doAuthWhoAmI()
		default:
			ui.Fail("usage: courtside auth <login|logout|status|whoami>")
			return 2
		}
	}

	ui.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(os.Stderr)
	PrintHelp()
	return 2
}

func PrintHelp() {
	fmt.Printf(`courtside - match day console

Usage:
  courtside <subcommand> [args]

Subcommands:
  board                               Interactive board (read-only without an admin login)
  ls                                  List matches
  rankings                            Player standings from completed matches
  add <a1> <a2> <b1> <b2> [date]      Schedule a match (admin)
  start <index>                       Start match at 1-based index (admin, confirms)
  cancel <index>                      Cancel match at 1-based index (admin, confirms)
  finish <index> <team1|team2> <score...>  Record a result (admin)
  auth <login|logout|status|whoami>   Local session

Examples:
  courtside auth login robin admin
  courtside add Ann Ben Cara Dev 2026-08-30
  courtside start 1
  courtside finish 1 team1 "21-15, 21-19"
`)
}

func indexArg(cmd string, a []string) (int, int) {
	if len(a) != 1 {
		ui.Fail("usage: courtside " + cmd + " <index>")
		return 0, 2
	}
	n, err := strconv.Atoi(a[0])
	if err != nil {
		ui.Fail(cmd + ": not a number: " + a[0])
		return 0, 2
	}
	return n, 0
}

// confirmPrompt is the CLI's blocking confirm primitive: execution really
// does stop here until the user answers.
func confirmPrompt(message string) bool {
	p := promptui.Prompt{Label: message, IsConfirm: true}
	_, err := p.Run()
	return err == nil
}

// clickThrough routes an action through the page bindings, the same path
// the board takes. The button is created after Bind: delegation keeps the
// interceptor correct for elements that appear later.
func clickThrough(markerClass string) bool {
	doc := page.NewDocument()
	doc.Confirm = confirmPrompt
	page.Bind(doc)
	btn := doc.CreateElement("button", "", markerClass)
	return doc.Click(btn) == page.ClickProceeded
}

func requireAdmin() bool {
	s, err := session.Current()
	if err != nil {
		ui.Fail("session: " + err.Error())
		return false
	}
	if !s.IsAdmin() {
		ui.Fail("admin login required")
		fmt.Fprintln(os.Stderr, ui.C("\033[90m", "Hint: run `courtside auth login <user> admin`"))
		return false
	}
	return true
}

// -------------- subcommand impls ----------------

func doBoard() int {
	s, err := session.Current()
	if err != nil {
		ui.Fail("session: " + err.Error())
		return 1
	}
	matches, err := jsonstore.Load()
	if err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}
	out, changed, err := tui.Run(matches, !s.IsAdmin())
	if err != nil {
		ui.Fail("board: " + err.Error())
		return 1
	}
	if changed {
		if err := jsonstore.Save(out); err != nil {
			ui.Fail("save: " + err.Error())
			return 1
		}
		ui.OK("saved")
	}
	return 0
}

func doList(opt Options) int {
	matches, err := jsonstore.Load()
	if err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}

	up, live, done := stats(matches)
	header := fmt.Sprintf("%s %d  %s %d  %s %d",
		ui.C(ui.Current().Pending, ui.Current().SymLive), live,
		ui.C(ui.Current().Muted, ui.Current().SymUpcoming), up,
		ui.C(ui.Current().Success, ui.Current().SymDone), done,
	)

	var lines []string
	lines = append(lines, header)
	lines = append(lines, ui.C(ui.Current().Muted, ui.ProgressBar(done, len(matches), 28)))
	lines = append(lines, "")

	if opt.Group {
		lines = append(lines, groupLines(matches)...)
	} else {
		lines = append(lines, flatLines(matches)...)
	}
	lines = append(lines, "")
	lines = append(lines, ui.C(ui.Current().Muted, "Tip: run `courtside board` for the interactive view"))
	ui.TitledPanel("Matches", lines)
	return 0
}

func doRankings() int {
	matches, err := jsonstore.Load()
	if err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}
	ranks := model.Standings(matches)
	var lines []string
	if len(ranks) == 0 {
		lines = append(lines, ui.C(ui.Current().Muted, "no results yet"))
	}
	for i, r := range ranks {
		lines = append(lines, fmt.Sprintf("%s %s %s %s",
			ui.C("\033[2m", fmt.Sprintf("%2d.", i+1)),
			r.Name,
			ui.C(ui.Current().Muted, fmt.Sprintf("%d-%d", r.Wins, r.Losses)),
			ui.C(ui.Current().Accent, fmt.Sprintf("%3.0f%%", r.Ratio()*100)),
		))
	}
	ui.TitledPanel("Rankings", lines)
	return 0
}

func doAdd(teamOne, teamTwo [2]string, date string) int {
	if !requireAdmin() {
		return 1
	}
	matches, err := jsonstore.Load()
	if err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}
	m := model.New(teamOne, teamTwo, date, "")
	matches = append(matches, m)
	if err := jsonstore.Save(matches); err != nil {
		ui.Fail("save: " + err.Error())
		return 1
	}
	ui.OK("scheduled " + m.Versus())
	return 0
}

func doStart(userIndex int) int {
	if !requireAdmin() {
		return 1
	}
	matches, err := jsonstore.Load()
	if err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}
	i, code := boundsCheck(userIndex, len(matches))
	if code != 0 {
		return code
	}
	if !clickThrough(page.ClassStartMatch) {
		fmt.Println(ui.C(ui.Current().Muted, "left as is"))
		return 0
	}
	if err := matches[i].Start(); err != nil {
		if errors.Is(err, model.ErrNotUpcoming) {
			ui.Fail("start: match is " + string(matches[i].Status))
			return 1
		}
		ui.Fail("start: " + err.Error())
		return 1
	}
	if err := jsonstore.Save(matches); err != nil {
		ui.Fail("save: " + err.Error())
		return 1
	}
	ui.OK("match started")
	return 0
}

func doCancel(userIndex int) int {
	if !requireAdmin() {
		return 1
	}
	matches, err := jsonstore.Load()
	if err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}
	i, code := boundsCheck(userIndex, len(matches))
	if code != 0 {
		return code
	}
	if !clickThrough(page.ClassCancelMatch) {
		fmt.Println(ui.C(ui.Current().Muted, "left as is"))
		return 0
	}
	matches = append(matches[:i], matches[i+1:]...)
	if err := jsonstore.Save(matches); err != nil {
		ui.Fail("save: " + err.Error())
		return 1
	}
	ui.OK("match cancelled")
	return 0
}

func doFinish(userIndex int, winner model.Winner, score string) int {
	if !requireAdmin() {
		return 1
	}
	matches, err := jsonstore.Load()
	if err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}
	i, code := boundsCheck(userIndex, len(matches))
	if code != 0 {
		return code
	}
	if err := matches[i].Finish(winner, score); err != nil {
		ui.Fail("finish: " + err.Error())
		return 1
	}
	if err := jsonstore.Save(matches); err != nil {
		ui.Fail("save: " + err.Error())
		return 1
	}
	if matches[i].Remark != "" {
		ui.OK("result recorded — " + matches[i].Remark)
	} else {
		ui.OK("result recorded")
	}
	return 0
}

func boundsCheck(userIndex, have int) (int, int) {
	if userIndex < 1 || userIndex > have {
		ui.Fail(fmt.Sprintf("index out of range: have %d, got %d", have, userIndex))
		fmt.Fprintln(os.Stderr, ui.C("\033[90m", "Hint: run `courtside ls` to see valid indexes"))
		return 0, 2
	}
	return userIndex - 1, 0
}

// -------------- auth subcommands ----------------

func doAuthLogin(user, role string) int {
	if err := session.Login(user, role); err != nil {
		ui.Fail("login: " + err.Error())
		return 1
	}
	ui.OK("logged in as " + user)
	return 0
}

func doAuthLogout() int {
	s, _ := session.Current()
	if s != nil && s.Source == "env" {
		ui.OK("session is provided by COURTSIDE_USER env var (nothing to delete)")
		return 0
	}
	if err := session.Logout(); err != nil {
		ui.Fail("logout: " + err.Error())
		return 1
	}
	ui.OK("logged out")
	return 0
}

func doAuthStatus() int {
	s, _ := session.Current()
	if s == nil {
		fmt.Println(ui.C(ui.Current().Muted, "not logged in"))
		fmt.Println("Run: courtside auth login <user>")
		return 0
	}
	fmt.Printf("source: %s\n", s.Source)
	fmt.Printf("role: %s\n", s.Role)
	fmt.Println("env override: COURTSIDE_USER")
	return 0
}

func doAuthWhoAmI() int {
	s, _ := session.Current()
	if s == nil {
		ui.Fail("not logged in. Run: courtside auth login <user>")
		return 2
	}
	fmt.Printf("%s (%s)\n", s.User, s.Role)
	return 0
}

// -------------- rendering helpers --------------

func stats(matches []model.Match) (upcoming, live, done int) {
	for _, m := range matches {
		switch m.Status {
		case model.StatusOngoing:
			live++
		case model.StatusCompleted:
			done++
		default:
			upcoming++
		}
	}
	return
}

func flatLines(matches []model.Match) []string {
	if len(matches) == 0 {
		return []string{ui.C(ui.Current().Muted, "no matches")}
	}
	out := make([]string, 0, len(matches))
	for i, m := range matches {
		out = append(out, matchLine(i, m))
	}
	return out
}

func matchLine(i int, m model.Match) string {
	idx := fmt.Sprintf("%2d.", i+1)
	t := ui.Current()
	var sym, color string
	switch m.Status {
	case model.StatusOngoing:
		sym, color = t.SymLive, t.Pending
	case model.StatusCompleted:
		sym, color = t.SymDone, t.Success
	default:
		sym, color = t.SymUpcoming, t.Muted
	}
	line := fmt.Sprintf("%s %s %s %s",
		ui.C("\033[2m", idx), ui.C(color, sym), m.Versus(),
		ui.C(t.Muted, m.Date+" · "+m.GameType))
	if m.Status == model.StatusCompleted && m.Score != "" {
		line += " " + ui.C(t.Muted, m.Score)
		if m.Remark != "" {
			line += " " + ui.C(t.Accent, m.Remark)
		}
	}
	return line
}

func groupLines(matches []model.Match) []string {
	byStatus := map[model.Status][]model.Match{}
	for _, m := range matches {
		byStatus[m.Status] = append(byStatus[m.Status], m)
	}
	var lines []string
	for _, group := range []struct {
		label  string
		status model.Status
	}{
		{"Live", model.StatusOngoing},
		{"Upcoming", model.StatusUpcoming},
		{"Completed", model.StatusCompleted},
	} {
		lines = append(lines, ui.C(ui.Current().Accent, group.label))
		ms := byStatus[group.status]
		if len(ms) == 0 {
			lines = append(lines, ui.C(ui.Current().Muted, "(none)"))
		} else {
			for i, m := range ms {
				lines = append(lines, matchLine(i, m))
			}
		}
		lines = append(lines, "")
	}
	if len(lines) > 0 {
		lines = lines[:len(lines)-1]
	}
	return lines
}
