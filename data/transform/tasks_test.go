package transform

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/xhd2015/studentlib/models"
)

func planWith(completed int, total int) models.StudyPlan {
	plan := models.StudyPlan{ID: 1, Title: "Final Exam Prep - Calculus", Subject: "Mathematics"}
	for i := 0; i < total; i++ {
		plan.Tasks = append(plan.Tasks, models.Task{
			ID:        int64(101 + i),
			Title:     "task",
			Completed: i < completed,
			Duration:  "2 hours",
			Priority:  models.Priority_High,
		})
	}
	return RecomputePlan(plan)
}

func TestProgress(t *testing.T) {
	tests := []struct {
		name      string
		completed int
		total     int
		want      int
	}{
		{name: "two of five", completed: 2, total: 5, want: 40},
		{name: "two of four", completed: 2, total: 4, want: 50},
		{name: "two of six rounds down", completed: 2, total: 6, want: 33},
		{name: "two of three rounds up", completed: 2, total: 3, want: 67},
		{name: "one of eight rounds half up", completed: 1, total: 8, want: 13},
		{name: "all", completed: 3, total: 3, want: 100},
		{name: "empty plan", completed: 0, total: 0, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Progress(planWith(tt.completed, tt.total).Tasks)
			if got != tt.want {
				t.Errorf("expected progress %d, got %d", tt.want, got)
			}
		})
	}
}

func TestToggleTaskSelfInverse(t *testing.T) {
	tasks := planWith(2, 5).Tasks
	for _, id := range []int64{101, 103, 105, 999} {
		got := ToggleTask(ToggleTask(tasks, id), id)
		if diff := cmp.Diff(tasks, got); diff != "" {
			t.Errorf("toggle twice on %d mismatch (-want +got):\n%s", id, diff)
		}
	}
}

func TestToggleTask(t *testing.T) {
	tasks := planWith(2, 5).Tasks
	got := ToggleTask(tasks, 103)
	if !got[2].Completed {
		t.Errorf("expected task 103 to be completed")
	}
	if tasks[2].Completed {
		t.Errorf("expected input to be left untouched")
	}
	if diff := cmp.Diff(tasks[:2], got[:2]); diff != "" {
		t.Errorf("other tasks changed (-want +got):\n%s", diff)
	}
}

func TestToggleScheduleTask(t *testing.T) {
	schedule := []models.ScheduleTask{
		{ID: 101, Title: "Study applications of integrals", Duration: "2 hours"},
		{ID: 201, Title: "Implement hash table", Duration: "2 hours"},
	}
	got := ToggleScheduleTask(schedule, 201)
	if !got[1].Completed || got[0].Completed {
		t.Errorf("expected only task 201 to be completed, got %+v", got)
	}
	if back := ToggleScheduleTask(got, 201); back[1].Completed {
		t.Errorf("expected second toggle to restore task 201")
	}
	if same := ToggleScheduleTask(schedule, 7); &same[0] != &schedule[0] {
		t.Errorf("expected unknown id to return input")
	}
}

func TestTogglePlanTaskRecomputesProgress(t *testing.T) {
	plans := []models.StudyPlan{planWith(2, 5), {ID: 2, Title: "Empty", Tasks: []models.Task{}}}

	got := TogglePlanTask(plans, 1, 103)
	if got[0].Progress != 60 {
		t.Errorf("expected progress 60 after completing a third task, got %d", got[0].Progress)
	}
	if plans[0].Progress != 40 {
		t.Errorf("expected original plan to stay at 40, got %d", plans[0].Progress)
	}

	got = TogglePlanTask(got, 1, 101)
	if got[0].Progress != 40 {
		t.Errorf("expected progress 40 after un-completing a task, got %d", got[0].Progress)
	}

	// a task id of another plan does not leak across plans
	if same := TogglePlanTask(plans, 2, 101); &same[0] != &plans[0] {
		t.Errorf("expected task not in plan to be a no-op")
	}
	if same := TogglePlanTask(plans, 9, 101); &same[0] != &plans[0] {
		t.Errorf("expected unknown plan to be a no-op")
	}
}

func TestActiveAndCompletedPlans(t *testing.T) {
	plans := []models.StudyPlan{planWith(2, 5), planWith(3, 3), planWith(0, 0)}
	if got := len(CompletedPlans(plans)); got != 1 {
		t.Errorf("expected 1 completed plan, got %d", got)
	}
	if got := len(ActivePlans(plans)); got != 2 {
		t.Errorf("expected 2 active plans, got %d", got)
	}
}

func TestRemainingHours(t *testing.T) {
	schedule := []models.ScheduleTask{
		{ID: 1, Duration: "2 hours"},
		{ID: 2, Duration: "3 hours", Completed: true},
		{ID: 3, Duration: "2.5 hours"},
		{ID: 4, Duration: "a while"},
		{ID: 5, Duration: ""},
	}
	if got := RemainingHours(schedule); got != 4 {
		t.Errorf("expected 4 remaining hours, got %d", got)
	}
}
