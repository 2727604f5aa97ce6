package ui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Salman1205/M-bot/internal/api"
	"github.com/Salman1205/M-bot/internal/keys"
)

// sparkRunes are the bars used for the mood trend sparkline, low to high.
var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// Dashboard is the full-page analytics view: headline stats, the mood trend,
// and past session summaries.
type Dashboard struct {
	viewport viewport.Model
	width    int
	height   int

	analytics *api.Analytics
	mood      []api.MoodPoint
	summaries []api.ChatSummary
	loading   bool
	loadErr   error
}

// NewDashboard creates an empty dashboard
func NewDashboard() *Dashboard {
	vp := viewport.New()
	vp.MouseWheelEnabled = true
	return &Dashboard{viewport: vp, loading: true}
}

// SetSize sets the dashboard dimensions
func (d *Dashboard) SetSize(width, height int) {
	d.width = width
	d.height = height

	vc := GetViewContext()
	d.viewport.SetWidth(vc.InnerWidth(width))
	d.viewport.SetHeight(vc.InnerHeight(height))
	d.updateContent()
}

// SetLoading marks the dashboard as fetching
func (d *Dashboard) SetLoading(loading bool) {
	d.loading = loading
	d.updateContent()
}

// SetData installs fetched analytics and re-renders
func (d *Dashboard) SetData(analytics *api.Analytics, mood []api.MoodPoint, summaries []api.ChatSummary) {
	d.analytics = analytics
	d.mood = mood
	d.summaries = summaries
	d.loading = false
	d.loadErr = nil
	d.updateContent()
}

// SetError records a fetch failure
func (d *Dashboard) SetError(err error) {
	d.loadErr = err
	d.loading = false
	d.updateContent()
}

// Update handles scrolling
func (d *Dashboard) Update(msg tea.Msg) (*Dashboard, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case keys.Up, "k":
			d.viewport.ScrollUp(1)
		case keys.Down, "j":
			d.viewport.ScrollDown(1)
		case keys.PgUp:
			d.viewport.HalfPageUp()
		case keys.PgDown:
			d.viewport.HalfPageDown()
		}
	case tea.MouseWheelMsg:
		var cmd tea.Cmd
		d.viewport, cmd = d.viewport.Update(msg)
		return d, cmd
	}
	return d, nil
}

func (d *Dashboard) updateContent() {
	width := d.viewport.Width()
	if width <= 0 {
		width = DefaultWrapWidth
	}

	var b strings.Builder
	b.WriteString(PanelTitleStyle.Render("Your Journey"))
	b.WriteString("\n\n")

	switch {
	case d.loading:
		b.WriteString(StatusLoadingStyle.Render("Loading your progress..."))
	case d.loadErr != nil:
		b.WriteString(StatusErrorStyle.Render("Couldn't load the dashboard."))
		b.WriteString("\n")
		b.WriteString(WelcomeSubtitleStyle.Render(d.loadErr.Error()))
	default:
		b.WriteString(d.renderStats())
		b.WriteString("\n\n")
		b.WriteString(d.renderMoodTrend(width))
		b.WriteString("\n\n")
		b.WriteString(d.renderSummaries(width))
	}

	d.viewport.SetContent(b.String())
}

// renderStats renders the headline stat cards side by side.
func (d *Dashboard) renderStats() string {
	a := d.analytics
	if a == nil {
		return WelcomeSubtitleStyle.Render("No activity yet. Start a conversation to see your progress here.")
	}

	mood := "–"
	if a.AverageMood != nil {
		mood = fmt.Sprintf("%.1f", *a.AverageMood)
	}

	cards := []string{
		statCard(fmt.Sprintf("%d", a.TotalSessions), "sessions"),
		statCard(mood, "avg mood"),
		statCard(fmt.Sprintf("%d", a.Streak), "day streak"),
		statCard(fmt.Sprintf("%d", a.TopicsCount), "topics"),
	}
	out := lipgloss.JoinHorizontal(lipgloss.Top, cards...)

	if len(a.Insights) > 0 {
		var lines []string
		for _, key := range []string{"mood", "engagement", "growth"} {
			if text, ok := a.Insights[key]; ok && text != "" {
				lines = append(lines, "• "+text)
			}
		}
		if len(lines) > 0 {
			out += "\n\n" + WelcomeSubtitleStyle.Render(strings.Join(lines, "\n"))
		}
	}
	return out
}

func statCard(value, label string) string {
	content := StatValueStyle.Render(value) + "\n" + StatLabelStyle.Render(label)
	return StatCardStyle.Render(content)
}

// renderMoodTrend renders the mood history as a sparkline with a date range.
func (d *Dashboard) renderMoodTrend(width int) string {
	title := StatValueStyle.Render("Mood trend")
	if len(d.mood) == 0 {
		return title + "\n" + WelcomeSubtitleStyle.Render("Not enough sessions for a trend yet.")
	}

	points := d.mood
	if len(points) > width {
		points = points[len(points)-width:]
	}

	// Mood values are on a 1-5 scale; days without a session have no value.
	var spark strings.Builder
	for _, p := range points {
		if p.Value == nil {
			spark.WriteRune(' ')
			continue
		}
		v := float64(*p.Value-1) / 4
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		idx := int(v * float64(len(sparkRunes)-1))
		spark.WriteRune(sparkRunes[idx])
	}

	line := lipgloss.NewStyle().Foreground(ColorInfo).Render(spark.String())

	var span string
	first := api.ParseTime(points[0].Date)
	last := api.ParseTime(points[len(points)-1].Date)
	if !first.IsZero() && !last.IsZero() {
		span = SidebarTimeStyle.Render(first.Format("Jan 2") + " – " + last.Format("Jan 2"))
	}

	out := title + "\n" + line
	if span != "" {
		out += "\n" + span
	}
	return out
}

// renderSummaries renders past session wrap-ups.
func (d *Dashboard) renderSummaries(width int) string {
	title := StatValueStyle.Render("Past conversations")
	if len(d.summaries) == 0 {
		return title + "\n" + WelcomeSubtitleStyle.Render("Completed sessions will be summarized here.")
	}

	var b strings.Builder
	b.WriteString(title)
	for _, s := range d.summaries {
		b.WriteString("\n\n")
		heading := ChatUserStyle.Render(s.Title)
		if s.Date != "" {
			if t := api.ParseTime(s.Date); !t.IsZero() {
				heading += SidebarTimeStyle.Render("  " + t.Format("Jan 2, 2006"))
			}
		}
		b.WriteString(heading)
		b.WriteString("\n")
		b.WriteString(ChatMessageStyle.Width(width).Render(s.Summary))
		if len(s.Tags) > 0 {
			b.WriteString("\n")
			b.WriteString(SidebarTimeStyle.Render("#" + strings.Join(s.Tags, " #")))
		}
	}
	return b.String()
}

// View renders the dashboard page
func (d *Dashboard) View() string {
	return PanelStyle.Width(d.width).Height(d.height).Render(d.viewport.View())
}
