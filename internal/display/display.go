// Package display renders kitchen state for the terminal.
//
// Render functions return styled strings; [Printer] writes styled lines to
// an io.Writer for the interactive shell. Colour is dropped automatically
// when the output is not a terminal.
package display

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/hammamikhairi/ottokitchen/internal/domain"
	"github.com/hammamikhairi/ottokitchen/internal/kitchen"
)

// ── Styles ───────────────────────────────────────────────────────

var (
	// BannerStyle is muted slate for the startup banner.
	BannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	chatStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bae6fd"))

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bbf7d0")).
			Bold(true)

	primaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4d4d8"))

	secondaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a"))

	urgentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fca5a5"))

	userInputEchoStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#a1a1aa"))

	kindStyles = map[domain.Kind]lipgloss.Style{
		domain.KindAppetizer:  lipgloss.NewStyle().Foreground(lipgloss.Color("#fde68a")),
		domain.KindMainCourse: lipgloss.NewStyle().Foreground(lipgloss.Color("#fdba74")),
		domain.KindDessert:    lipgloss.NewStyle().Foreground(lipgloss.Color("#f9a8d4")),
	}

	tallyLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a1a1aa")).
			Width(10)

	tallyCountStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4d4d8")).
			Width(4).
			Align(lipgloss.Right)
)

const barRune = "▪"

// ── Renderers ────────────────────────────────────────────────────

// RenderDish renders one dish under a coloured kind header.
func RenderDish(d domain.Dish) string {
	if d == nil {
		return ""
	}
	header := kindStyles[d.Kind()].Render(d.Kind().String()) + " " + headerStyle.Render(d.Core().Name)
	return header + "\n" + primaryStyle.Render(d.Display())
}

// RenderMenu renders every dish separated by a blank line.
func RenderMenu(dishes []domain.Dish) string {
	if len(dishes) == 0 {
		return secondaryStyle.Render("No open orders.")
	}
	parts := make([]string, 0, len(dishes))
	for _, d := range dishes {
		parts = append(parts, RenderDish(d))
	}
	return strings.Join(parts, "\n\n")
}

// RenderReport renders the cuisine tally as a small bar chart followed by
// the prep statistics.
func RenderReport(r kitchen.Report) string {
	var b strings.Builder
	for _, c := range r.Tally {
		b.WriteString(tallyLabelStyle.Render(c.Cuisine.String()))
		b.WriteString(tallyCountStyle.Render(strconv.Itoa(c.Count)))
		if c.Count > 0 {
			b.WriteByte(' ')
			b.WriteString(chatStyle.Render(strings.Repeat(barRune, c.Count)))
		}
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	fmt.Fprintf(&b, "%s %s\n",
		secondaryStyle.Render("AVERAGE PREP TIME:"),
		primaryStyle.Render(strconv.Itoa(r.AvgPrepTime)+" min"))
	fmt.Fprintf(&b, "%s %s",
		secondaryStyle.Render("ELABORATE DISHES:"),
		primaryStyle.Render(strconv.FormatFloat(r.ElaboratePercentage, 'f', -1, 64)+"%"))
	return b.String()
}

// RenderTickets renders served tickets oldest first.
func RenderTickets(tickets []domain.Ticket) string {
	if len(tickets) == 0 {
		return secondaryStyle.Render("Nothing served yet.")
	}
	var b strings.Builder
	for i, t := range tickets {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s %s %s %s",
			secondaryStyle.Render(t.ServedAt.Format(time.Kitchen)),
			secondaryStyle.Render(shortID(t.ID)),
			kindStyles[t.Kind].Render(t.DishName),
			primaryStyle.Render("("+t.Cuisine.Label()+", "+strconv.Itoa(t.PrepTime)+" min)"))
	}
	return b.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// ── Printer ──────────────────────────────────────────────────────

// Printer writes styled lines to an output stream.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a printer over w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{out: w}
}

// Println writes text followed by a newline.
func (p *Printer) Println(text string) {
	fmt.Fprintln(p.out, text)
}

// PrintChat prints a conversational line.
func (p *Printer) PrintChat(text string) {
	p.Println(chatStyle.Render(text))
}

// PrintHint prints a dimmed line.
func (p *Printer) PrintHint(text string) {
	p.Println(secondaryStyle.Render(text))
}

// PrintUrgent prints an error line.
func (p *Printer) PrintUrgent(text string) {
	p.Println(urgentStyle.Render(text))
}

// PrintUserInput echoes a command back into the scrollback.
func (p *Printer) PrintUserInput(text string) {
	p.Println(userInputEchoStyle.Render("> " + text))
}

// PrintPrompt writes the shell prompt without a trailing newline.
func (p *Printer) PrintPrompt() {
	fmt.Fprint(p.out, userInputEchoStyle.Render("kitchen> "))
}
