package transform

import (
	"math"
	"strconv"
	"strings"

	"github.com/xhd2015/studentlib/models"
)

// ToggleTask inverts Completed of the plan task with the given id
func ToggleTask(tasks []models.Task, id int64) []models.Task {
	idx := indexOf(tasks, id, func(t models.Task) int64 { return t.ID })
	if idx < 0 {
		return tasks
	}
	return replaceAt(tasks, idx, func(t models.Task) models.Task {
		t.Completed = !t.Completed
		return t
	})
}

// ToggleScheduleTask inverts Completed of the schedule task with the given id
func ToggleScheduleTask(tasks []models.ScheduleTask, id int64) []models.ScheduleTask {
	idx := indexOf(tasks, id, func(t models.ScheduleTask) int64 { return t.ID })
	if idx < 0 {
		return tasks
	}
	return replaceAt(tasks, idx, func(t models.ScheduleTask) models.ScheduleTask {
		t.Completed = !t.Completed
		return t
	})
}

// TogglePlanTask toggles taskID inside planID and recomputes that plan's progress.
// Unknown plan or task ids return plans unchanged.
func TogglePlanTask(plans []models.StudyPlan, planID int64, taskID int64) []models.StudyPlan {
	idx := indexOf(plans, planID, func(p models.StudyPlan) int64 { return p.ID })
	if idx < 0 {
		return plans
	}
	if indexOf(plans[idx].Tasks, taskID, func(t models.Task) int64 { return t.ID }) < 0 {
		return plans
	}
	return replaceAt(plans, idx, func(p models.StudyPlan) models.StudyPlan {
		p.Tasks = ToggleTask(p.Tasks, taskID)
		return RecomputePlan(p)
	})
}

// Progress is round(100 * completed / total). A plan without tasks is at 0.
func Progress(tasks []models.Task) int {
	if len(tasks) == 0 {
		return 0
	}
	completed := 0
	for _, task := range tasks {
		if task.Completed {
			completed++
		}
	}
	return int(math.Round(float64(completed) * 100 / float64(len(tasks))))
}

func RecomputePlan(plan models.StudyPlan) models.StudyPlan {
	plan.Progress = Progress(plan.Tasks)
	return plan
}

// RecomputePlans returns a copy of plans with every progress recomputed
func RecomputePlans(plans []models.StudyPlan) []models.StudyPlan {
	result := make([]models.StudyPlan, len(plans))
	for i, plan := range plans {
		result[i] = RecomputePlan(plan)
	}
	return result
}

func ActivePlans(plans []models.StudyPlan) []models.StudyPlan {
	var result []models.StudyPlan
	for _, plan := range plans {
		if plan.Progress < 100 {
			result = append(result, plan)
		}
	}
	return result
}

// CompletedPlans returns plans at 100%. Empty plans are never completed.
func CompletedPlans(plans []models.StudyPlan) []models.StudyPlan {
	var result []models.StudyPlan
	for _, plan := range plans {
		if plan.Progress >= 100 {
			result = append(result, plan)
		}
	}
	return result
}

// RemainingHours sums the leading hour count of every incomplete
// schedule task, e.g. "2 hours" counts 2. Unparsable durations count 0.
func RemainingHours(tasks []models.ScheduleTask) int {
	total := 0
	for _, task := range tasks {
		if task.Completed {
			continue
		}
		total += leadingHours(task.Duration)
	}
	return total
}

func leadingHours(duration string) int {
	// "2.5 hours" counts its integer part
	return int(durationHours(duration))
}

// durationHours reads the leading number of "2.5 hours"
func durationHours(duration string) float64 {
	fields := strings.Fields(duration)
	if len(fields) == 0 {
		return 0
	}
	hours, err := strconv.ParseFloat(fields[0], 64)
	if err != nil || hours < 0 {
		return 0
	}
	return hours
}
