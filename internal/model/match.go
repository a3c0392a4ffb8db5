package model

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Status is a match's lifecycle stage. Cancelled matches are removed from
// the store rather than kept in a terminal state.
type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusOngoing   Status = "ongoing"
	StatusCompleted Status = "completed"
)

// Winner identifies the winning pair.
type Winner string

const (
	WinnerTeamOne Winner = "team_one"
	WinnerTeamTwo Winner = "team_two"
)

var (
	ErrNotUpcoming = errors.New("match is not upcoming")
	ErrNotOngoing  = errors.New("match is not ongoing")
)

// Match is a doubles match between two pairs.
type Match struct {
	ID       string    `json:"id"`
	TeamOne  [2]string `json:"team_one"`
	TeamTwo  [2]string `json:"team_two"`
	Date     string    `json:"date"`
	GameType string    `json:"game_type"`
	Status   Status    `json:"status"`
	Winner   Winner    `json:"winner_team,omitempty"`
	Score    string    `json:"score,omitempty"`
	Remark   string    `json:"remark,omitempty"`
}

func New(teamOne, teamTwo [2]string, date, gameType string) Match {
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	if gameType == "" {
		gameType = "mixed doubles"
	}
	return Match{
		ID:       uuid.NewString(),
		TeamOne:  teamOne,
		TeamTwo:  teamTwo,
		Date:     date,
		GameType: gameType,
		Status:   StatusUpcoming,
	}
}

// Versus is the display label, e.g. "Ann & Ben vs Cara & Dev".
func (m Match) Versus() string {
	return fmt.Sprintf("%s & %s vs %s & %s", m.TeamOne[0], m.TeamOne[1], m.TeamTwo[0], m.TeamTwo[1])
}

// Start moves an upcoming match to ongoing. Starting is irreversible.
func (m *Match) Start() error {
	if m.Status != StatusUpcoming {
		return ErrNotUpcoming
	}
	m.Status = StatusOngoing
	return nil
}

// Finish completes an ongoing match, recording winner and score and
// deriving the remark.
func (m *Match) Finish(winner Winner, score string) error {
	if m.Status != StatusOngoing {
		return ErrNotOngoing
	}
	m.Status = StatusCompleted
	m.Winner = winner
	m.Score = score
	m.Remark = Remark(score)
	return nil
}

var scoreDigits = regexp.MustCompile(`\d+`)

// Remark grades a score string like "21-15, 15-21, 21-19". Game points
// alternate team one / team two; the grade follows the total point
// difference. Unparseable scores grade as empty.
func Remark(score string) string {
	raw := scoreDigits.FindAllString(score, -1)
	if len(raw) < 2 || len(raw)%2 != 0 {
		return ""
	}
	var one, two int
	for i, s := range raw {
		n, err := strconv.Atoi(s)
		if err != nil {
			return ""
		}
		if i%2 == 0 {
			one += n
		} else {
			two += n
		}
	}
	diff := one - two
	if diff < 0 {
		diff = -diff
	}
	switch {
	case diff <= 2:
		return "Nice Close Game!"
	case diff <= 5:
		return "Well Fought Match!"
	default:
		return "Decisive Victory!"
	}
}
