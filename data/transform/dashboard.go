package transform

import (
	"fmt"
	"math"
	"strconv"

	"github.com/xhd2015/studentlib/models"
)

// RecommendedCount is how many unviewed resources the dashboard suggests
const RecommendedCount = 3

// RecentlyViewed keeps the resources that carry a LastViewed mark, in order
func RecentlyViewed(resources []models.Resource) []models.Resource {
	var result []models.Resource
	for _, res := range resources {
		if res.LastViewed != "" {
			result = append(result, res)
		}
	}
	return result
}

// Recommended returns up to n resources the student has not viewed yet
func Recommended(resources []models.Resource, n int) []models.Resource {
	var result []models.Resource
	for _, res := range resources {
		if len(result) >= n {
			break
		}
		if res.LastViewed == "" {
			result = append(result, res)
		}
	}
	return result
}

// ResourcesByID looks ids up in resources, skipping unknown ones
func ResourcesByID(resources []models.Resource, ids []int64) []models.Resource {
	var result []models.Resource
	for _, id := range ids {
		idx := indexOf(resources, id, func(r models.Resource) int64 { return r.ID })
		if idx >= 0 {
			result = append(result, resources[idx])
		}
	}
	return result
}

// DashboardStats derives the three quick-stat cards from lib
func DashboardStats(lib *models.Library) []models.Stat {
	if lib == nil {
		lib = &models.Library{}
	}
	var doneHours, totalHours float64
	for _, plan := range lib.Plans {
		for _, task := range plan.Tasks {
			h := durationHours(task.Duration)
			totalHours += h
			if task.Completed {
				doneHours += h
			}
		}
	}
	viewed := len(RecentlyViewed(lib.Resources))
	goalsDone := 0
	for _, task := range lib.Schedule {
		if task.Completed {
			goalsDone++
		}
	}
	return []models.Stat{
		{Title: "Study Time", Value: strconv.FormatFloat(doneHours, 'f', -1, 64) + " hrs", Progress: percent(doneHours, totalHours)},
		{Title: "Notes Read", Value: strconv.Itoa(viewed), Progress: percent(float64(viewed), float64(len(lib.Resources)))},
		{Title: "Daily Goals", Value: fmt.Sprintf("%d/%d", goalsDone, len(lib.Schedule)), Progress: percent(float64(goalsDone), float64(len(lib.Schedule)))},
	}
}

func percent(part, total float64) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(part * 100 / total))
}
