package engine

import (
	"time"

	"taskquest/internal/storage"
)

// ProductivityStats is a read-only summary derived from task history.
type ProductivityStats struct {
	Score              int
	CompletedToday     int
	CompletedThisWeek  int
	CompletedThisMonth int
	OnTimePercentage   int
	AverageXPPerTask   int
}

// DailyTaskCount is one bucket of the 7-day histogram.
type DailyTaskCount struct {
	Label string
	Count int
}

// CompletedInRange counts tasks with a completion date in [start, end).
func CompletedInRange(tasks []storage.Task, start, end time.Time) int {
	n := 0
	for _, t := range tasks {
		if t.CompletedDate == nil {
			continue
		}
		d := *t.CompletedDate
		if !d.Before(start) && d.Before(end) {
			n++
		}
	}
	return n
}

// OnTimePercentage counts completions within the due date plus the grace
// window. Tasks without a due date count toward the denominator but can
// never hit the numerator, so the rate understates punctuality for mostly
// undated lists. Kept deliberately: the score formula depends on this exact
// ratio.
func OnTimePercentage(completed []storage.Task) int {
	if len(completed) == 0 {
		return 0
	}
	onTime := 0
	for _, t := range completed {
		if t.DueDate != nil && t.CompletedDate != nil &&
			!t.CompletedDate.After(t.DueDate.Add(OnTimeGrace)) {
			onTime++
		}
	}
	return int(float64(onTime) / float64(len(completed)) * 100)
}

// ComputeStatistics derives the productivity summary from entity snapshots.
// Pure and read-only.
func ComputeStatistics(active, completed []storage.Task, p *storage.Profile, now time.Time) ProductivityStats {
	todayStart := DayStart(now)
	tomorrow := todayStart.AddDate(0, 0, 1)

	onTimePct := OnTimePercentage(completed)

	completionRate := 0
	if total := len(active) + len(completed); total > 0 {
		completionRate = int(float64(len(completed)) / float64(total) * 50)
	}

	streakScore := 0
	if p != nil {
		streakScore = int(float64(p.CurrentStreak) / 30 * 20)
		if streakScore > 20 {
			streakScore = 20
		}
	}

	score := completionRate + int(float64(onTimePct)*0.3) + streakScore
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	avgXP := 0
	if len(completed) > 0 {
		sum := 0
		for _, t := range completed {
			sum += t.XPReward
		}
		avgXP = sum / len(completed)
	}

	return ProductivityStats{
		Score:              score,
		CompletedToday:     CompletedInRange(completed, todayStart, tomorrow),
		CompletedThisWeek:  CompletedInRange(completed, WeekStart(now), tomorrow),
		CompletedThisMonth: CompletedInRange(completed, MonthStart(now), tomorrow),
		OnTimePercentage:   onTimePct,
		AverageXPPerTask:   avgXP,
	}
}

// Last7DaysHistogram buckets completions by calendar day, oldest to newest,
// ending with today. Labels are abbreviated weekday names.
func Last7DaysHistogram(completed []storage.Task, now time.Time) []DailyTaskCount {
	out := make([]DailyTaskCount, 0, 7)
	for i := 6; i >= 0; i-- {
		dayStart := DayStart(now).AddDate(0, 0, -i)
		dayEnd := dayStart.AddDate(0, 0, 1)
		out = append(out, DailyTaskCount{
			Label: dayStart.Format("Mon"),
			Count: CompletedInRange(completed, dayStart, dayEnd),
		})
	}
	return out
}
