// Package tui implements the interactive terminal game against the
// computer opponent as a Bubble Tea program.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/tictacforbots/internal/ai"
	"github.com/lox/tictacforbots/internal/game"
	"github.com/lox/tictacforbots/internal/match"
)

// botMovedMsg carries the bot's chosen square back into Update.
type botMovedMsg struct {
	square int
}

// Model is the Bubble Tea model for one game against the bot. The board is
// the only game state; every update derives a new Board value.
type Model struct {
	board game.Board
	moves []int

	human  game.Player
	bot    match.Agent
	logger *log.Logger

	input    textinput.Model
	errLine  string
	thinking bool
	done     bool
	quitting bool

	savePath string
	saved    bool
	saveErr  error
}

// New returns a model for a game where the human plays mark human and the
// bot agent plays the other. A non-empty savePath makes quitting mid-game
// write a resumable save file.
func New(bot match.Agent, human game.Player, st match.State, savePath string, logger *log.Logger) *Model {
	ti := textinput.New()
	ti.Placeholder = "Enter a legal square (0-8)"
	ti.Focus()
	ti.CharLimit = 1
	ti.Width = 30
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	ti.Prompt = "> "

	return &Model{
		board:    st.Board,
		moves:    append([]int(nil), st.Moves...),
		human:    human,
		bot:      bot,
		logger:   logger.WithPrefix("tui"),
		input:    ti,
		savePath: savePath,
	}
}

// Init kicks off the bot when it has the opening move.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if !m.gameOver() && m.board.ToMove() != m.human {
		m.thinking = true
		cmds = append(cmds, m.botMove())
	}
	return tea.Batch(cmds...)
}

// Update handles key input and bot replies.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.done {
			// Any key leaves a finished game.
			return m.quit()
		}
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m.quit()
		case tea.KeyEnter:
			return m.humanMove()
		}

	case botMovedMsg:
		return m.applyBotMove(msg.square)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the grid, status and prompt.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render("Tic-Tac-Toe vs the unbeatable bot"))
	sb.WriteString("\n\n")
	sb.WriteString(m.grid())
	sb.WriteString("\n")

	switch {
	case m.done:
		sb.WriteString(StatusStyle.Render(m.resultLine()))
		sb.WriteString("\n")
		sb.WriteString(HelpStyle.Render("press any key to exit"))
	case m.thinking:
		sb.WriteString(StatusStyle.Render("Computer is thinking..."))
	default:
		sb.WriteString(fmt.Sprintf("Your move (%s):\n", m.human))
		sb.WriteString(m.input.View())
	}

	if m.errLine != "" {
		sb.WriteString("\n")
		sb.WriteString(ErrorStyle.Render(m.errLine))
	}

	sb.WriteString("\n")
	sb.WriteString(HelpStyle.Render("esc to quit"))
	sb.WriteString("\n")
	return sb.String()
}

// Final returns the game state when the program exits, for saving or
// reporting.
func (m *Model) Final() match.State {
	return match.State{Board: m.board, Moves: append([]int(nil), m.moves...)}
}

// Saved reports whether a mid-game save was written on quit.
func (m *Model) Saved() (bool, error) {
	return m.saved, m.saveErr
}

func (m *Model) humanMove() (tea.Model, tea.Cmd) {
	if m.done || m.thinking {
		return m, nil
	}

	raw := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")

	square, err := strconv.Atoi(raw)
	if err != nil {
		m.errLine = fmt.Sprintf("%q is not a square, enter 0-8", raw)
		return m, nil
	}

	next, err := m.board.ApplyMove(square)
	if err != nil {
		m.errLine = fmt.Sprintf("square %d is not open", square)
		return m, nil
	}

	m.errLine = ""
	m.board = next
	m.moves = append(m.moves, square)
	m.logger.Debug("human move", "square", square)

	if m.gameOver() {
		m.done = true
		return m, nil
	}

	m.thinking = true
	return m, m.botMove()
}

func (m *Model) botMove() tea.Cmd {
	board := m.board
	return func() tea.Msg {
		mv, err := m.bot.SelectMove(context.Background(), board)
		if err != nil {
			m.logger.Error("bot failed to move", "error", err)
			return botMovedMsg{square: ai.NoMove}
		}
		return botMovedMsg{square: mv}
	}
}

func (m *Model) applyBotMove(square int) (tea.Model, tea.Cmd) {
	m.thinking = false
	if square == ai.NoMove {
		m.done = true
		return m, nil
	}

	next, err := m.board.ApplyMove(square)
	if err != nil {
		// The searcher only proposes legal squares; treat anything else as
		// a fatal inconsistency.
		m.logger.Error("bot proposed illegal move", "square", square, "error", err)
		return m.quit()
	}

	m.board = next
	m.moves = append(m.moves, square)
	m.logger.Debug("bot move", "square", square)

	if m.gameOver() {
		m.done = true
	}
	return m, nil
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	if m.savePath != "" && !m.gameOver() && len(m.moves) > 0 {
		if err := match.Save(m.savePath, m.Final()); err != nil {
			m.saveErr = err
		} else {
			m.saved = true
		}
	}
	return m, tea.Quit
}

func (m *Model) gameOver() bool {
	return m.board.IsWin() || m.board.IsDraw()
}

func (m *Model) grid() string {
	var sb strings.Builder
	for sq := 0; sq < game.Squares; sq++ {
		switch m.board.Cell(sq) {
		case game.X:
			sb.WriteString(" " + XStyle.Render("X") + " ")
		case game.O:
			sb.WriteString(" " + OStyle.Render("O") + " ")
		default:
			sb.WriteString(" " + OpenSquareStyle.Render(strconv.Itoa(sq)) + " ")
		}
		if sq%3 < 2 {
			sb.WriteString("|")
		}
		if sq == 2 || sq == 5 {
			sb.WriteString("\n" + strings.Repeat("-", 11) + "\n")
		}
	}
	sb.WriteString("\n")
	return sb.String()
}

func (m *Model) resultLine() string {
	switch m.board.Winner() {
	case m.human:
		return "You win!"
	case game.None:
		return "It's a draw!"
	}
	return "Computer wins!"
}
