package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/six78/crew-cli/internal/config"
	"github.com/six78/crew-cli/pkg/engine"
	"github.com/six78/crew-cli/pkg/missions"
	"github.com/six78/crew-cli/pkg/protocol"
)

var (
	suitColors = map[protocol.Suit]lipgloss.Color{
		protocol.Blue:   lipgloss.Color("#3B82F6"),
		protocol.Pink:   lipgloss.Color("#EC4899"),
		protocol.Yellow: lipgloss.Color("#EAB308"),
		protocol.Green:  lipgloss.Color("#22C55E"),
		protocol.Sub:    lipgloss.Color("#E5E7EB"),
	}

	shadeStyle = lipgloss.NewStyle().Foreground(config.ForegroundShadeColor)
	turnStyle  = lipgloss.NewStyle().Foreground(config.UserColor).Bold(true)
	passStyle  = lipgloss.NewStyle().Foreground(config.PassColor)
	failStyle  = lipgloss.NewStyle().Foreground(config.FailColor)
)

func Card(card protocol.Card) string {
	color, ok := suitColors[card.Suit()]
	if !ok {
		return string(card)
	}
	return lipgloss.NewStyle().Foreground(color).Render(string(card))
}

func Cards(cards protocol.Deck) string {
	rendered := make([]string, 0, len(cards))
	for _, card := range cards {
		rendered = append(rendered, Card(card))
	}
	return strings.Join(rendered, " ")
}

func Trick(trick protocol.Trick) string {
	if len(trick.Cards) == 0 {
		return shadeStyle.Render("no cards")
	}
	rendered := make([]string, 0, len(trick.Cards))
	for _, played := range trick.Cards {
		rendered = append(rendered, fmt.Sprintf("%s:%s", played.Position, Card(played.Card)))
	}
	return strings.Join(rendered, "  ")
}

// Hint renders a signal. A spent signal is shaded.
func Hint(hint *protocol.Hint) string {
	if hint == nil {
		return ""
	}
	if hint.Played {
		return shadeStyle.Render(fmt.Sprintf("%s %s", hint.Card, hint.Type))
	}
	return fmt.Sprintf("%s %s", Card(hint.Card), hint.Type)
}

func MissionStatus(status missions.Status) string {
	switch status {
	case missions.StatusPass:
		return passStyle.Render("✓")
	case missions.StatusFail:
		return failStyle.Render("✗")
	}
	return shadeStyle.Render("·")
}

func Mission(mission *missions.Mission, numPlayers int) string {
	return fmt.Sprintf("%s %s %s",
		MissionStatus(mission.Status),
		shadeStyle.Render("#"+mission.ID),
		mission.Describe(numPlayers))
}

func Template(template missions.Template, numPlayers int) string {
	return fmt.Sprintf("%s %s",
		shadeStyle.Render(fmt.Sprintf("#%s (%d)", template.ID, template.Points(numPlayers))),
		template.Describe(numPlayers))
}

func Player(table *engine.GameState, player *engine.Player, viewer protocol.PlayerID) string {
	marker := "  "
	if player.Seat == table.WhoseTurn && table.Phase() != engine.PhaseGameOver {
		marker = turnStyle.Render("> ")
	}

	name := player.Name
	if player.ID == viewer {
		name = turnStyle.Render(name + " (you)")
	}
	if player.Seat == table.CaptainSeat {
		name += " " + shadeStyle.Render("captain")
	}

	line := fmt.Sprintf("%s%s %s  %d cards  %d tricks", marker, player.Seat, name, len(player.Hand), len(player.Tricks))
	if player.Hint != nil {
		line += "  hint " + Hint(player.Hint)
	}
	if player.Emote != "" && player.Emote != protocol.EmoteNone {
		line += "  [" + string(player.Emote) + "]"
	}

	lines := []string{line}
	for _, mission := range player.Missions {
		lines = append(lines, "      "+Mission(mission, table.NumPlayers))
	}
	return strings.Join(lines, "\n")
}

// Table renders the whole deal as seen by the viewer.
func Table(table *engine.GameState, viewer protocol.PlayerID) string {
	if table == nil || table.Phase() == engine.PhaseAwaitingStart {
		return shadeStyle.Render("Waiting for the deal to start ...")
	}

	trick := min(table.ActiveTrick.Index+1, table.TotalTricks)
	blocks := []string{
		fmt.Sprintf("%s  trick %d/%d", table.Phase(), trick, table.TotalTricks),
		"",
	}
	for _, seat := range table.ActiveSeats() {
		blocks = append(blocks, Player(table, table.Player(seat), viewer))
	}

	switch table.Phase() {
	case engine.PhaseMissionDraft:
		blocks = append(blocks, "", "Pool:")
		for _, template := range table.Pool {
			blocks = append(blocks, "  "+Template(template, table.NumPlayers))
		}
	case engine.PhaseTrickPlay:
		blocks = append(blocks, "", "Trick: "+Trick(table.ActiveTrick))
		if len(table.PreviousTrick.Cards) > 0 {
			blocks = append(blocks, shadeStyle.Render("Previous: ")+Trick(table.PreviousTrick))
		}
	case engine.PhaseGameOver:
		blocks = append(blocks, "", Result(table.Succeeded, table.UndoUsed))
	}

	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func Result(success bool, undoUsed bool) string {
	text := failStyle.Render("Mission failed")
	if success {
		text = passStyle.Render("Mission succeeded")
	}
	if undoUsed {
		text += shadeStyle.Render(" (undo used)")
	}
	return text
}

// Summary is a one-line description of a logged match.
func Summary(summary *protocol.MatchSummary) string {
	names := make([]string, 0, len(summary.Players))
	for _, seat := range protocol.Seats {
		for _, participant := range summary.Players {
			if participant.Seat == seat {
				names = append(names, participant.Name)
			}
		}
	}
	return fmt.Sprintf("%s  %s  target %d  %d moves  %s",
		summary.Seeds(),
		Result(summary.Success, summary.UndoUsed),
		summary.Meta.Target,
		len(summary.Moves),
		strings.Join(names, ", "))
}
