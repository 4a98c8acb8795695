package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/xhd2015/studentlib/models"
)

const progressBarWidth = 20

var strikethroughStyle = lipgloss.NewStyle().Strikethrough(true)

func bullet(done bool) string {
	if done {
		return "✓"
	}
	return "•"
}

func strike(text string, done bool, renderStrikeThrough bool) string {
	if done && renderStrikeThrough {
		return strikethroughStyle.Render(text)
	}
	return text
}

func connector(isLast bool) string {
	if isLast {
		return "└─"
	}
	return "├─"
}

func priorityMark(p models.Priority) string {
	switch p {
	case models.Priority_High:
		return "!!!"
	case models.Priority_Medium:
		return "!!"
	case models.Priority_Low:
		return "!"
	}
	return "?"
}

// ProgressBar renders a fixed-width bar followed by the percentage
func ProgressBar(progress int) string {
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}
	filled := progress * progressBarWidth / 100
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", progressBarWidth-filled) + "] " + fmt.Sprintf("%d%%", progress)
}

func TaskLine(task models.Task, showID bool, renderStrikeThrough bool) string {
	line := bullet(task.Completed) + " " + strike(Sanitize(task.Title), task.Completed, renderStrikeThrough) +
		" (" + task.Duration + ") " + priorityMark(task.Priority)
	if showID {
		line += fmt.Sprintf(" (%d)", task.ID)
	}
	return line
}

func ScheduleLine(task models.ScheduleTask, showID bool, renderStrikeThrough bool) string {
	line := task.Time + "  " + bullet(task.Completed) + " " + strike(Sanitize(task.Title), task.Completed, renderStrikeThrough) +
		" [" + task.Subject + ", " + task.Duration + "]"
	if showID {
		line += fmt.Sprintf(" (%d)", task.ID)
	}
	return line
}

// PlanLines renders the plan header and its tasks as a tree
func PlanLines(plan models.StudyPlan, showID bool, renderStrikeThrough bool) []string {
	header := Sanitize(plan.Title) + " · " + plan.Subject + " · due " + plan.Deadline
	if showID {
		header += fmt.Sprintf(" (%d)", plan.ID)
	}
	lines := []string{header, "  " + ProgressBar(plan.Progress)}
	for i, task := range plan.Tasks {
		lines = append(lines, "  "+connector(i == len(plan.Tasks)-1)+TaskLine(task, showID, renderStrikeThrough))
	}
	return lines
}

func ResourceLine(r models.Resource, showID bool) string {
	line := fmt.Sprintf("[%s] %s by %s · %s %s", r.Type, Sanitize(r.Title), r.Author, r.Subject, r.Class)
	if r.LastViewed != "" {
		line += " · viewed " + r.LastViewed
	} else if r.UploadedAt != "" {
		line += " · uploaded " + r.UploadedAt
	}
	if r.Views != nil {
		line += fmt.Sprintf(" · %d views", *r.Views)
	}
	if showID {
		line += fmt.Sprintf(" (%d)", r.ID)
	}
	return line
}

func TopicLine(t models.ForumTopic, showID bool) string {
	line := fmt.Sprintf("%s (%s) · %d posts · last by %s %s", Sanitize(t.Title), t.Category, t.Posts, t.LastPostBy, t.LastPostTime)
	if showID {
		line += fmt.Sprintf(" (%d)", t.ID)
	}
	return line + "\n    " + Sanitize(t.Description)
}

func ThreadLine(t models.ForumThread, showID bool) string {
	line := fmt.Sprintf("%+4d  %s · %s · by %s %s · %d replies · %d views", t.Votes, Sanitize(t.Title), t.Category, t.Author, t.DatePosted, t.Replies, t.Views)
	if showID {
		line += fmt.Sprintf(" (%d)", t.ID)
	}
	return line
}

// ShareText is what gets copied when sharing a thread
func ShareText(t models.ForumThread) string {
	return fmt.Sprintf("%s (%s, %d votes) by %s", t.Title, t.Category, t.Votes, t.Author)
}

func ReminderLine(r models.Reminder) string {
	return fmt.Sprintf("%s · %s · %s", Sanitize(r.Title), r.Subject, r.Date)
}

// StatLine renders a quick-stat card on one line
func StatLine(s models.Stat) string {
	return fmt.Sprintf("%-12s %-9s %s", s.Title, s.Value, ProgressBar(s.Progress))
}

func ProfileStatsLine(s models.ProfileStats) string {
	return fmt.Sprintf("%d resources read · %d goals completed · %d study hours · %d forum posts",
		s.ResourcesRead, s.GoalsCompleted, s.StudyHours, s.ForumPosts)
}

func AchievementLine(a models.Achievement) string {
	return fmt.Sprintf("★ %s · %s · %s", Sanitize(a.Title), Sanitize(a.Description), a.Date)
}

// ProfileHeader is the name block shown above the profile lists
func ProfileHeader(p *models.Profile) []string {
	return []string{
		fmt.Sprintf("%s (@%s) · %s · joined %s", Sanitize(p.Name), p.Username, p.Email, p.JoinedDate),
		"  " + Sanitize(p.Bio),
		"  " + strings.Join(p.Interests, ", "),
		"  " + ProfileStatsLine(p.Stats),
	}
}
