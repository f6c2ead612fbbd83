package cli

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dmitrijs2005/assistant/internal/models"
	"github.com/dmitrijs2005/assistant/internal/services"
	"golang.org/x/term"
)

const dateLayout = "02.01.2006"

// Output renders replies for the terminal. All methods return text; printing
// is left to the REPL.
type Output struct {
	color bool

	errorStyle      lipgloss.Style
	successStyle    lipgloss.Style
	warningStyle    lipgloss.Style
	validationStyle lipgloss.Style
	infoStyle       lipgloss.Style
	sectionStyle    lipgloss.Style
	commandStyle    lipgloss.Style
	headerStyle     lipgloss.Style
	cellStyle       lipgloss.Style
}

// NewOutput builds an Output for w. Colour is used only when color is set and
// w is a terminal.
func NewOutput(w io.Writer, color bool) *Output {
	if f, ok := w.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		color = false
	}

	r := lipgloss.NewRenderer(w)
	return &Output{
		color:           color,
		errorStyle:      r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		successStyle:    r.NewStyle().Foreground(lipgloss.Color("10")),
		warningStyle:    r.NewStyle().Foreground(lipgloss.Color("11")),
		validationStyle: r.NewStyle().Foreground(lipgloss.Color("13")),
		infoStyle:       r.NewStyle().Foreground(lipgloss.Color("14")),
		sectionStyle:    r.NewStyle().Foreground(lipgloss.Color("12")).Bold(true).Underline(true),
		commandStyle:    r.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		headerStyle:     r.NewStyle().Foreground(lipgloss.Color("12")).Bold(true).Padding(0, 1),
		cellStyle:       r.NewStyle().Padding(0, 1),
	}
}

func (o *Output) paint(s lipgloss.Style, text string) string {
	if !o.color {
		return text
	}
	return s.Render(text)
}

func (o *Output) Error(msg string) string      { return o.paint(o.errorStyle, "Error: "+msg) }
func (o *Output) Success(msg string) string    { return o.paint(o.successStyle, msg) }
func (o *Output) Warning(msg string) string    { return o.paint(o.warningStyle, "Warning: "+msg) }
func (o *Output) Validation(msg string) string { return o.paint(o.validationStyle, "Validation: "+msg) }
func (o *Output) Info(msg string) string       { return o.paint(o.infoStyle, msg) }
func (o *Output) Section(title string) string  { return o.paint(o.sectionStyle, title) }
func (o *Output) Command(name string) string   { return o.paint(o.commandStyle, name) }

func (o *Output) table(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow && o.color {
				return o.headerStyle
			}
			return o.cellStyle
		})
	return t.String()
}

// Contacts renders contacts one per row.
func (o *Output) Contacts(list []*models.Contact) string {
	rows := make([][]string, 0, len(list))
	for _, c := range list {
		phones := make([]string, 0, len(c.Phones()))
		for _, p := range c.Phones() {
			phones = append(phones, p.String())
		}
		row := []string{c.Name().String(), orDash(strings.Join(phones, ", ")), "-", "-", "-"}
		if e := c.Email(); e != nil {
			row[2] = e.String()
		}
		if b := c.Birthday(); b != nil {
			row[3] = b.String()
		}
		if a := c.Address(); a != nil {
			row[4] = a.String()
		}
		rows = append(rows, row)
	}
	return o.table([]string{"Name", "Phones", "Email", "Birthday", "Address"}, rows)
}

// Notes renders note previews one per row.
func (o *Output) Notes(list []*models.Note) string {
	rows := make([][]string, 0, len(list))
	for _, n := range list {
		p := n.Preview()
		rows = append(rows, []string{
			strconv.Itoa(p.ID), p.Title, orDash(p.Body), orDash(strings.Join(p.Tags, ", ")),
			p.UpdatedAt.Format("2006-01-02 15:04"),
		})
	}
	return o.table([]string{"ID", "Title", "Body", "Tags", "Updated"}, rows)
}

// Birthdays renders upcoming birthdays with the date to congratulate on.
func (o *Output) Birthdays(list []services.BirthdayReminder) string {
	rows := make([][]string, 0, len(list))
	for _, r := range list {
		rows = append(rows, []string{
			r.Contact.Name().String(),
			r.Contact.Birthday().String(),
			r.Date.Format(dateLayout) + " (" + r.Date.Weekday().String() + ")",
		})
	}
	return o.table([]string{"Name", "Birthday", "Congratulate on"}, rows)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
