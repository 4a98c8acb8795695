package transform

import (
	"testing"

	"github.com/xhd2015/studentlib/models"
)

func TestNewThreadDefaults(t *testing.T) {
	ids := NewCounter(100)
	thread := NewThread(models.ThreadPayload{
		Title:    "Linear algebra study group",
		Category: "Mathematics",
		Content:  "Anyone up for weekly sessions?",
	}, ids)

	if thread.ID != 101 {
		t.Errorf("expected id 101, got %d", thread.ID)
	}
	if thread.Author != CurrentUser {
		t.Errorf("expected author %q, got %q", CurrentUser, thread.Author)
	}
	if thread.Replies != 0 || thread.Votes != 0 || thread.Views != 1 {
		t.Errorf("expected replies=0 votes=0 views=1, got %+v", thread)
	}
	if thread.DatePosted != JustNow || thread.LastReply != JustNow {
		t.Errorf("expected time labels %q, got %q/%q", JustNow, thread.DatePosted, thread.LastReply)
	}
}

func TestPrependThread(t *testing.T) {
	threads := testThreads()
	thread := NewThread(models.ThreadPayload{Title: "New", Category: "Mathematics"}, NewCounter(10))
	got := PrependThread(threads, thread)
	if len(got) != 4 || got[0].ID != 11 || got[1].ID != 1 {
		t.Errorf("expected new thread first, got %+v", got)
	}
	if len(threads) != 3 {
		t.Errorf("expected input length to stay 3, got %d", len(threads))
	}
}

func TestAppendPlan(t *testing.T) {
	plans := []models.StudyPlan{planWith(2, 5)}
	plan := NewPlan(models.PlanPayload{Title: "Physics midterm", Subject: "Physics", Deadline: "2025-05-20"}, NewCounter(3))
	got := AppendPlan(plans, plan)
	if len(got) != 2 || got[1].ID != 4 {
		t.Fatalf("expected plan 4 appended, got %+v", got)
	}
	if got[1].Progress != 0 || len(got[1].Tasks) != 0 {
		t.Errorf("expected empty plan at 0%%, got %d%% with %d tasks", got[1].Progress, len(got[1].Tasks))
	}
}

func TestAddTaskToPlan(t *testing.T) {
	plans := []models.StudyPlan{planWith(2, 3)}
	if plans[0].Progress != 67 {
		t.Fatalf("expected starting progress 67, got %d", plans[0].Progress)
	}

	task := NewTask(models.TaskPayload{Title: "Review notes", Duration: "1 hour", Priority: models.Priority_Low}, NewCounter(500))
	got := AddTaskToPlan(plans, 1, task)

	if len(got[0].Tasks) != 4 {
		t.Fatalf("expected 4 tasks, got %d", len(got[0].Tasks))
	}
	last := got[0].Tasks[3]
	if last.ID != 501 || last.Completed {
		t.Errorf("expected incomplete task 501 appended last, got %+v", last)
	}
	if got[0].Progress != 50 {
		t.Errorf("expected progress 50, got %d", got[0].Progress)
	}
	if len(plans[0].Tasks) != 3 {
		t.Errorf("expected input plan to keep 3 tasks, got %d", len(plans[0].Tasks))
	}

	if same := AddTaskToPlan(plans, 77, task); &same[0] != &plans[0] {
		t.Errorf("expected unknown plan to be a no-op")
	}
}

func TestAddTaskToEmptyPlan(t *testing.T) {
	plans := []models.StudyPlan{NewPlan(models.PlanPayload{Title: "Empty"}, NewCounter(0))}
	if plans[0].Progress != 0 {
		t.Fatalf("expected empty plan at 0, got %d", plans[0].Progress)
	}
	task := NewTask(models.TaskPayload{Title: "First"}, NewCounter(10))
	got := AddTaskToPlan(plans, 1, task)
	got = TogglePlanTask(got, 1, 11)
	if got[0].Progress != 100 {
		t.Errorf("expected 100 after completing the only task, got %d", got[0].Progress)
	}
}

func TestCounterRaise(t *testing.T) {
	ids := NewCounter(10)
	ids.Raise(5)
	if got := ids.NextID(); got != 11 {
		t.Errorf("expected a lower floor to be ignored, got %d", got)
	}
	ids.Raise(1001)
	if got := ids.NextID(); got != 1002 {
		t.Errorf("expected 1002 after raising to 1001, got %d", got)
	}
}
