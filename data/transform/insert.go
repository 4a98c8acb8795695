package transform

import "github.com/xhd2015/studentlib/models"

const (
	CurrentUser = "CurrentUser"
	JustNow     = "just now"
)

// NewThread builds a fresh thread. A new thread starts with one view,
// its author's.
func NewThread(payload models.ThreadPayload, ids IDGenerator) models.ForumThread {
	return models.ForumThread{
		ID:         ids.NextID(),
		Title:      payload.Title,
		Author:     CurrentUser,
		Category:   payload.Category,
		Replies:    0,
		Views:      1,
		Votes:      0,
		DatePosted: JustNow,
		LastReply:  JustNow,
	}
}

// PrependThread puts thread in front of threads in a new slice
func PrependThread(threads []models.ForumThread, thread models.ForumThread) []models.ForumThread {
	result := make([]models.ForumThread, 0, len(threads)+1)
	result = append(result, thread)
	return append(result, threads...)
}

func NewPlan(payload models.PlanPayload, ids IDGenerator) models.StudyPlan {
	return models.StudyPlan{
		ID:       ids.NextID(),
		Title:    payload.Title,
		Subject:  payload.Subject,
		Deadline: payload.Deadline,
		Progress: 0,
		Tasks:    []models.Task{},
	}
}

func AppendPlan(plans []models.StudyPlan, plan models.StudyPlan) []models.StudyPlan {
	result := make([]models.StudyPlan, 0, len(plans)+1)
	result = append(result, plans...)
	return append(result, RecomputePlan(plan))
}

func NewTask(payload models.TaskPayload, ids IDGenerator) models.Task {
	return models.Task{
		ID:        ids.NextID(),
		Title:     payload.Title,
		Completed: false,
		Duration:  payload.Duration,
		Priority:  payload.Priority,
	}
}

// AddTaskToPlan appends task to the plan with planID and recomputes its
// progress. An unknown plan returns plans unchanged.
func AddTaskToPlan(plans []models.StudyPlan, planID int64, task models.Task) []models.StudyPlan {
	idx := indexOf(plans, planID, func(p models.StudyPlan) int64 { return p.ID })
	if idx < 0 {
		return plans
	}
	return replaceAt(plans, idx, func(p models.StudyPlan) models.StudyPlan {
		tasks := make([]models.Task, 0, len(p.Tasks)+1)
		tasks = append(tasks, p.Tasks...)
		p.Tasks = append(tasks, task)
		return RecomputePlan(p)
	})
}
