package tui

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/gookit/color"
	"github.com/muesli/reflow/wordwrap"

	"escaperoom/pkg/engine/input"
	"escaperoom/pkg/engine/terminal"
	"escaperoom/pkg/game/i18n"
	"escaperoom/pkg/game/renderer"
	"escaperoom/pkg/game/state"
)

// Status block symbols
const (
	IconHeld    = "✓"
	IconMissing = "✗"
	statusWidth = 40
)

// dynamicGet is used for runtime translation key lookups from GT{} markup.
var dynamicGet = i18n.T

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	in    *input.LineReader
	out   io.Writer
	width int

	colorRoom        color.Style
	colorItem        color.Style
	colorPuzzle      color.Style
	colorAction      color.Style
	colorActionShort color.Style
	colorDenied      color.Style
	colorHint        color.Style
	colorSubtle      color.Style
	colorExit        color.Style
}

// New creates a new TUI renderer reading commands from in and writing to out.
// Messages are wrapped at width columns, or at the terminal width when width is 0.
func New(in io.Reader, out io.Writer, width int) *TUIRenderer {
	return &TUIRenderer{
		in:    input.NewLineReader(in),
		out:   out,
		width: width,
	}
}

// Init initializes the TUI renderer colors
func (t *TUIRenderer) Init() {
	t.colorRoom = color.Style{color.FgCyan}
	t.colorItem = color.Style{color.FgMagenta}
	t.colorPuzzle = color.Style{color.FgYellow, color.OpBold}
	t.colorAction = color.Style{color.FgMagenta}
	t.colorActionShort = color.Style{color.FgMagenta, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorHint = color.Style{color.FgBlue}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorExit = color.Style{color.FgGreen, color.OpBold}
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	if f, ok := t.out.(*os.File); !ok || !terminal.IsTerminal(f) {
		return
	}
	c := exec.Command("clear")
	c.Stdout = t.out
	c.Run()
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleRoom:
		return t.colorRoom.Sprint(text)
	case renderer.StyleItem:
		return t.colorItem.Sprint(text)
	case renderer.StylePuzzle:
		return t.colorPuzzle.Sprint(text)
	case renderer.StyleAction:
		return t.colorAction.Sprint(text)
	case renderer.StyleActionShort:
		return t.colorActionShort.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	case renderer.StyleHint:
		return t.colorHint.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StyleExit:
		return t.colorExit.Sprint(text)
	default:
		return text
	}
}

// FormatText formats a message with the markup system
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	return renderer.ApplyMarkup(fmt.Sprintf(msg, args...), func(function, operand string) string {
		switch function {
		case "GT":
			return dynamicGet(operand)
		case "ITEM":
			return t.StyleText(operand, renderer.StyleItem)
		case "ROOM":
			return t.StyleText(operand, renderer.StyleRoom)
		case "PUZZLE":
			return t.StyleText(operand, renderer.StylePuzzle)
		case "ACTION":
			return t.StyleText(operand[0:1], renderer.StyleActionShort) + t.StyleText(operand[1:], renderer.StyleAction)
		case "DENIED":
			return t.StyleText(operand, renderer.StyleDenied)
		case "HINT":
			return t.StyleText(operand, renderer.StyleHint)
		case "EXIT":
			return t.StyleText(operand, renderer.StyleExit)
		case "SUBTLE":
			return t.StyleText(operand, renderer.StyleSubtle)
		default:
			return operand
		}
	})
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Fprintln(t.out, t.wrap(msg))
}

// RenderFrame prints and clears every pending message
func (t *TUIRenderer) RenderFrame(g *state.Game) {
	for _, msg := range g.DrainMessages() {
		t.ShowMessage(t.FormatText("%s", msg))
	}
}

// RenderStatus prints the turn counter, current room and the escape checklist
func (t *TUIRenderer) RenderStatus(g *state.Game) {
	rule := t.colorSubtle.Sprint(strings.Repeat("=", statusWidth))

	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, rule)
	t.ShowMessage(t.FormatText("%s", i18n.T("STATUS_TURNS", g.Turns)))
	t.ShowMessage(t.FormatText("%s", i18n.T("STATUS_ROOM", g.CurrentRoomName())))
	if g.AtExit() {
		t.ShowMessage(t.FormatText("%s", i18n.T("STATUS_AT_EXIT")))
	}

	if status := g.RequiredItemStatus(); len(status) > 0 {
		fmt.Fprintln(t.out)
		t.ShowMessage(i18n.T("STATUS_REQUIRED"))
		for _, req := range status {
			icon := t.colorDenied.Sprint(IconMissing)
			if req.Held {
				icon = t.colorExit.Sprint(IconHeld)
			}
			fmt.Fprintf(t.out, "  %s %s\n", icon, req.Name)
		}
	}
	fmt.Fprintln(t.out, rule)
}

// GetInput shows pending messages, then reads the next command
func (t *TUIRenderer) GetInput(g *state.Game) (string, error) {
	t.RenderFrame(g)
	fmt.Fprint(t.out, "\n> ")
	return t.in.ReadLine()
}

// Prompt shows pending messages, then asks the question and reads the reply
func (t *TUIRenderer) Prompt(g *state.Game, label string) (string, error) {
	t.RenderFrame(g)
	fmt.Fprint(t.out, t.FormatText("%s", label)+" ")
	return t.in.ReadLine()
}

// wrap wraps text at the configured width
func (t *TUIRenderer) wrap(s string) string {
	width := t.width
	if width <= 0 {
		width = terminal.GetWidth()
	}
	return wordwrap.String(s, width)
}
