package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorBlue   = lipgloss.Color("75")  // Light blue - links
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// boxWidth is the inner width of overview boxes and banners.
const boxWidth = 64

// =============================================================================
// Icons
// =============================================================================

type icons struct {
	success, err, warning, info, arrow, bullet, pkg, gear, compass string
}

var (
	fancyIcons = icons{
		success: "✓", err: "✗", warning: "!", info: "›", arrow: "→",
		bullet: "•", pkg: "📦", gear: "⚙", compass: "🧭",
	}
	plainIcons = icons{
		success: "OK", err: "ERR", warning: "WARN", info: "[i]", arrow: "->",
		bullet: "-", pkg: "[pkg]", gear: "[cfg]", compass: "[ver]",
	}
)

// =============================================================================
// ui - per-invocation output
// =============================================================================

// ui writes command output. Colors follow the writer's capabilities; plain
// mode drops them entirely and switches to ASCII icons and borders.
type ui struct {
	w     io.Writer
	plain bool
	icon  icons

	title     lipgloss.Style
	highlight lipgloss.Style
	link      lipgloss.Style
	dim       lipgloss.Style
	value     lipgloss.Style
	label     lipgloss.Style
	success   lipgloss.Style
	warning   lipgloss.Style
	failure   lipgloss.Style
	gray      lipgloss.Style
	command   lipgloss.Style
	border    lipgloss.Style
}

func newUI(w io.Writer, plain bool) *ui {
	r := lipgloss.NewRenderer(w)
	icon := fancyIcons
	if plain {
		r.SetColorProfile(termenv.Ascii)
		icon = plainIcons
	}
	return &ui{
		w:         w,
		plain:     plain,
		icon:      icon,
		title:     r.NewStyle().Bold(true).Foreground(colorCyan),
		highlight: r.NewStyle().Foreground(colorCyan),
		link:      r.NewStyle().Foreground(colorBlue).Underline(true),
		dim:       r.NewStyle().Foreground(colorDim),
		value:     r.NewStyle().Foreground(colorWhite),
		label:     r.NewStyle().Bold(true).Foreground(colorYellow),
		success:   r.NewStyle().Foreground(colorGreen),
		warning:   r.NewStyle().Foreground(colorYellow),
		failure:   r.NewStyle().Foreground(colorRed),
		gray:      r.NewStyle().Foreground(colorGray),
		command:   r.NewStyle().Foreground(colorBlue),
		border:    r.NewStyle().Foreground(colorDim),
	}
}

// =============================================================================
// Status Output
// =============================================================================

func (u *ui) println(s string) {
	fmt.Fprintln(u.w, s)
}

// printSuccess prints a success message.
func (u *ui) printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	u.println(u.success.Render(u.icon.success) + " " + msg)
}

// printError prints an error message.
func (u *ui) printError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	u.println(u.failure.Render(u.icon.err) + " " + msg)
}

// printWarning prints a warning message.
func (u *ui) printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	u.println(u.warning.Render(u.icon.warning) + " " + u.warning.Render(msg))
}

// printInfo prints an info/status message.
func (u *ui) printInfo(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	u.println(u.gray.Render(u.icon.info) + " " + msg)
}

// printDetail prints a detail line (indented).
func (u *ui) printDetail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	u.println("  " + u.dim.Render(msg))
}

// printTitle prints a section heading.
func (u *ui) printTitle(format string, args ...any) {
	u.println(u.title.Render(fmt.Sprintf(format, args...)))
}

// printBullet prints an indented list item.
func (u *ui) printBullet(format string, args ...any) {
	u.println(" " + u.icon.bullet + " " + fmt.Sprintf(format, args...))
}

// printKeyValue prints a labeled value.
func (u *ui) printKeyValue(key, value string) {
	u.println(" " + u.icon.bullet + " " + u.keyValue(key, value))
}

func (u *ui) keyValue(key, value string) string {
	return u.label.Width(14).Render(key) + " " + u.value.Render(value)
}

// printNextStep prints a suggested next command.
func (u *ui) printNextStep(description, cmd string) {
	u.println(u.dim.Render(description+":") + " " + u.command.Render(cmd))
}

// printRule prints a horizontal separator.
func (u *ui) printRule(ch string) {
	u.println(u.highlight.Render(strings.Repeat(ch, 60)))
}

// printNewline prints an empty line.
func (u *ui) printNewline() {
	fmt.Fprintln(u.w)
}

// =============================================================================
// Tables & Boxes
// =============================================================================

func (u *ui) tableBorder() lipgloss.Border {
	if u.plain {
		return lipgloss.ASCIIBorder()
	}
	return lipgloss.NormalBorder()
}

func (u *ui) boxBorder() lipgloss.Border {
	if u.plain {
		return lipgloss.ASCIIBorder()
	}
	return lipgloss.DoubleBorder()
}

// printTable prints rows under headers. Nothing is printed for an empty
// row set.
func (u *ui) printTable(headers []string, rows [][]string) {
	if len(rows) == 0 {
		return
	}
	headerStyle := u.gray.Bold(true).Padding(0, 1)
	cellStyle := u.value.Padding(0, 1)

	t := table.New().
		Border(u.tableBorder()).
		BorderStyle(u.border).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	u.println(t.Render())
}

// printBox prints a titled box with one body line per entry.
func (u *ui) printBox(title string, lines ...string) {
	titleStyle := u.title.Padding(0, 1)
	lineStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(u.boxBorder()).
		BorderStyle(u.highlight).
		Width(boxWidth + 2).
		Headers(title).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return titleStyle
			}
			return lineStyle
		})
	for _, l := range lines {
		t.Row(l)
	}
	u.println(t.Render())
}

// printBanner prints a tool banner. Plain output omits it.
func (u *ui) printBanner(title, subtitle string) {
	if u.plain {
		return
	}
	center := lipgloss.NewStyle().Width(boxWidth).Align(lipgloss.Center)
	body := center.Render(title) + "\n" + center.Render(subtitle)
	box := u.title.
		Border(lipgloss.DoubleBorder()).
		BorderForeground(colorCyan).
		Render(body)
	u.println(box)
	u.printNewline()
}

// =============================================================================
// JSON
// =============================================================================

// printJSON writes v as indented JSON.
func (u *ui) printJSON(v any) error {
	enc := json.NewEncoder(u.w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// envelope is the common prefix of every JSON document.
type envelope struct {
	OK      bool   `json:"ok"`
	Command string `json:"command"`
}

func okEnvelope(command string) envelope {
	return envelope{OK: true, Command: command}
}
