package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"taskquest/internal/engine"
	"taskquest/internal/storage"
)

type boardModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	profile *storage.Profile
	tasks   []storage.Task
	quests  []engine.DailyQuestView

	selected int

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	profile *storage.Profile
	tasks   []storage.Task
	quests  []engine.DailyQuestView
	err     error
}

type completedMsg struct {
	id  int64
	res *engine.CompleteResult
	err error
}

func newBoardModel(ctx context.Context, svc *engine.Service) boardModel {
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		quests, err := m.svc.TodayQuests(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		p, err := m.svc.ProfileRepo().GetOrCreate(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		tasks, err := m.svc.TaskRepo().ListActive(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{profile: p, tasks: tasks, quests: quests}
	}
}

func (m boardModel) completeCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.CompleteTask(m.ctx, id)
		return completedMsg{id: id, res: res, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.profile = msg.profile
		m.tasks = msg.tasks
		m.quests = msg.quests
		if m.selected >= len(m.tasks) {
			m.selected = len(m.tasks) - 1
		}
		if m.selected < 0 {
			m.selected = 0
		}
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case completedMsg:
		if msg.err != nil {
			m.lastLog = "Complete failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = completionLog(msg.res)
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.tasks)-1 {
				m.selected++
			}
			return m, nil
		case "c", " ", "enter":
			if m.selected < 0 || m.selected >= len(m.tasks) {
				return m, nil
			}
			t := m.tasks[m.selected]
			m.lastLog = fmt.Sprintf("Completing %d…", t.ID)
			return m, m.completeCmd(t.ID)
		}
	}
	return m, nil
}

func completionLog(res *engine.CompleteResult) string {
	if res.AlreadyCompleted {
		return fmt.Sprintf("Task %d is already done.", res.TaskID)
	}
	s := fmt.Sprintf("Completed %d: +%d XP (level %d → %d)", res.TaskID, res.XPAwarded, res.LevelBefore, res.LevelAfter)
	if res.QuestXP > 0 {
		s += fmt.Sprintf(", quests +%d XP", res.QuestXP)
	}
	if len(res.Unlocked) > 0 {
		s += ", unlocked: " + strings.Join(res.Unlocked, ", ")
	}
	return s
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := m.renderFooter()

	// Simple 2-column layout.
	leftW := 34
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 20 {
			leftW = 20
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	max := len(linesLeft)
	if len(linesRight) > max {
		max = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < max; i++ {
		l := ""
		r := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m boardModel) renderHeader() string {
	if m.profile == nil {
		return "TaskQuest (loading…)"
	}
	bar := progressBar(m.profile.XP, engine.RequiredXP(m.profile.Level), 30)
	return fmt.Sprintf("TaskQuest | Level %d %s | Streak %d🔥 (best %d) | Tasks done %d",
		m.profile.Level, bar, m.profile.CurrentStreak, m.profile.LongestStreak, m.profile.TotalTasksCompleted)
}

func (m boardModel) renderSidebar() string {
	lines := []string{"Today's Quests"}
	if len(m.quests) == 0 {
		lines = append(lines, "(none)")
	}
	for _, q := range m.quests {
		mark := "[ ]"
		if q.IsCompleted {
			mark = "[x]"
		}
		lines = append(lines, fmt.Sprintf("%s %s (+%d XP)", mark, q.Title, q.XPReward))
	}
	lines = append(lines, "")
	lines = append(lines, "Keys")
	lines = append(lines, "- ↑/↓ or j/k: move")
	lines = append(lines, "- c/space/enter: complete")
	lines = append(lines, "- r: refresh")
	lines = append(lines, "- q: quit")
	return strings.Join(lines, "\n")
}

func (m boardModel) renderMain() string {
	if m.loading {
		return "Loading…"
	}
	var out []string
	out = append(out, "Active Tasks")
	if len(m.tasks) == 0 {
		out = append(out, "(all clear!)")
		return strings.Join(out, "\n")
	}
	for i, t := range m.tasks {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		due := ""
		if t.DueDate != nil {
			due = " due " + t.DueDate.Format("Jan 2")
		}
		recur := ""
		if t.IsRecurring {
			recur = " ↻"
		}
		out = append(out, fmt.Sprintf("%s%d %s [%s]%s%s (xp=%d)", cursor, t.ID, t.Title, t.Priority, due, recur, t.XPReward))
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderFooter() string {
	return "\n" + m.lastLog
}

func progressBar(value int, total int, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	ratio := float64(value) / float64(total)
	filled := int(ratio * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
