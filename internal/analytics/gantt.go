package analytics

import (
	"math"
	"time"

	"scrumcmd/internal/models"
)

const dayHours = 24

// GanttBar positions one plan item on the timeline. Left and Width are
// percentages of the axis span.
type GanttBar struct {
	Item  models.PlanItem `json:"item"`
	Left  float64         `json:"left"`
	Width float64         `json:"width"`
}

// GanttMonth is one header cell of the timeline's month ruler
type GanttMonth struct {
	Label string  `json:"label"`
	Left  float64 `json:"left"`
	Width float64 `json:"width"`
}

// GanttChart is the fully positioned timeline for one plan
type GanttChart struct {
	Months       []GanttMonth `json:"months"`
	Bars         []GanttBar   `json:"bars"`
	TodayPercent float64      `json:"todayPercent"`
	ShowToday    bool         `json:"showToday"`
}

// GanttLayout positions a plan's dated items on a shared axis running
// from two days before the earliest date to two days after the latest.
// Items without both dates are excluded; every bar is at least 1% wide
// so zero-length phases stay visible. The today marker is only shown
// when it falls inside the axis.
func GanttLayout(items []models.PlanItem, today string) GanttChart {
	type dated struct {
		item       models.PlanItem
		start, end time.Time
	}
	var datedItems []dated
	for _, item := range items {
		start, err := time.Parse(dateLayout, item.StartDate)
		if err != nil {
			continue
		}
		end, err := time.Parse(dateLayout, item.EndDate)
		if err != nil {
			continue
		}
		datedItems = append(datedItems, dated{item, start, end})
	}
	if len(datedItems) == 0 {
		return GanttChart{}
	}

	minDate, maxDate := datedItems[0].start, datedItems[0].end
	for _, d := range datedItems {
		if d.start.Before(minDate) {
			minDate = d.start
		}
		if d.end.After(maxDate) {
			maxDate = d.end
		}
	}
	minDate = minDate.AddDate(0, 0, -2)
	maxDate = maxDate.AddDate(0, 0, 2)

	totalDays := math.Ceil(maxDate.Sub(minDate).Hours() / dayHours)
	if totalDays < 1 {
		totalDays = 1
	}

	chart := GanttChart{}

	cursor := time.Date(minDate.Year(), minDate.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !cursor.After(maxDate) {
		monthStart := math.Max(0, cursor.Sub(minDate).Hours()/dayHours)
		next := cursor.AddDate(0, 1, 0)
		monthEnd := math.Min(totalDays, next.Sub(minDate).Hours()/dayHours)
		chart.Months = append(chart.Months, GanttMonth{
			Label: cursor.Format("Jan 06"),
			Left:  monthStart / totalDays * 100,
			Width: (monthEnd - monthStart) / totalDays * 100,
		})
		cursor = next
	}

	for _, d := range datedItems {
		start := d.start.Sub(minDate).Hours() / dayHours
		end := d.end.Sub(minDate).Hours() / dayHours
		width := (end - start) / totalDays * 100
		if width < 1 {
			width = 1
		}
		chart.Bars = append(chart.Bars, GanttBar{
			Item:  d.item,
			Left:  start / totalDays * 100,
			Width: width,
		})
	}

	if t, err := time.Parse(dateLayout, today); err == nil {
		pct := t.Sub(minDate).Hours() / dayHours / totalDays * 100
		chart.TodayPercent = pct
		chart.ShowToday = pct >= 0 && pct <= 100
	}

	return chart
}
