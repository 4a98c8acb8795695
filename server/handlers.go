package server

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/xhd2015/studentlib/app/submit"
	"github.com/xhd2015/studentlib/data"
	"github.com/xhd2015/studentlib/data/transform"
	"github.com/xhd2015/studentlib/models"
)

type handlers struct {
	manager *data.LibraryManager
}

type LibraryBody struct {
	Library *models.Library `json:"library"`
}

type ListRequest struct {
	Query string `json:"query"`
}

type ResourceListRequest struct {
	Query string              `json:"query"`
	Type  models.ResourceType `json:"type"`
}

type ThreadListRequest struct {
	List  models.ThreadList `json:"list"`
	Query string            `json:"query"`
}

type VoteRequest struct {
	List  models.ThreadList `json:"list"`
	ID    int64             `json:"id"`
	Delta int64             `json:"delta"`
}

// PlanListRequest filters by Status "active" or "completed" when set
type PlanListRequest struct {
	Query  string `json:"query"`
	Status string `json:"status"`
}

type AddTaskRequest struct {
	PlanID int64              `json:"plan_id"`
	Task   models.TaskPayload `json:"task"`
}

type TogglePlanTaskRequest struct {
	PlanID int64 `json:"plan_id"`
	TaskID int64 `json:"task_id"`
}

type ToggleRequest struct {
	ID int64 `json:"id"`
}

// bind decodes the body and checks its binding rules
func bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		var verr *submit.ValidationError
		if errors.As(submit.Translate(err), &verr) {
			fail(c, &badRequest{verr})
			return false
		}
		fail(c, &badRequest{fmt.Errorf("invalid request: %w", err)})
		return false
	}
	return true
}

func notFound(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrNotFound)
}

func threadList(list models.ThreadList) (models.ThreadList, error) {
	parsed, found := models.ParseThreadList(string(list))
	if !found {
		return "", &badRequest{fmt.Errorf("unknown thread list %q", list)}
	}
	return parsed, nil
}

func (h *handlers) loadLibrary(c *gin.Context) {
	success(c, LibraryBody{Library: h.manager.Library()})
}

func (h *handlers) saveLibrary(c *gin.Context) {
	var req LibraryBody
	if !bind(c, &req) {
		return
	}
	if req.Library == nil {
		fail(c, &badRequest{fmt.Errorf("library is required")})
		return
	}
	if err := h.manager.Replace(c.Request.Context(), req.Library); err != nil {
		fail(c, err)
		return
	}
	success(c, nil)
}

func (h *handlers) listResources(c *gin.Context) {
	var req ResourceListRequest
	if !bind(c, &req) {
		return
	}
	success(c, gin.H{"resources": h.manager.Resources(req.Query, req.Type)})
}

func (h *handlers) listTopics(c *gin.Context) {
	var req ListRequest
	if !bind(c, &req) {
		return
	}
	success(c, gin.H{"topics": h.manager.Topics(req.Query)})
}

func (h *handlers) listThreads(c *gin.Context) {
	var req ThreadListRequest
	if !bind(c, &req) {
		return
	}
	list, err := threadList(req.List)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, gin.H{"threads": h.manager.Threads(list, req.Query)})
}

func (h *handlers) voteThread(c *gin.Context) {
	var req VoteRequest
	if !bind(c, &req) {
		return
	}
	list, err := threadList(req.List)
	if err != nil {
		fail(c, err)
		return
	}
	if req.Delta != transform.VoteUp && req.Delta != transform.VoteDown {
		fail(c, &badRequest{fmt.Errorf("delta must be 1 or -1, got %d", req.Delta)})
		return
	}
	thread, found, err := h.manager.Vote(c.Request.Context(), list, req.ID, req.Delta)
	if err != nil {
		fail(c, err)
		return
	}
	if !found {
		fail(c, notFound("thread %d in %s", req.ID, list))
		return
	}
	success(c, gin.H{"thread": thread})
}

func (h *handlers) createThread(c *gin.Context) {
	var req models.ThreadPayload
	if !bind(c, &req) {
		return
	}
	thread, err := h.manager.CreateThread(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, gin.H{"thread": thread})
}

func (h *handlers) listPlans(c *gin.Context) {
	var req PlanListRequest
	if !bind(c, &req) {
		return
	}
	plans := h.manager.Plans(req.Query)
	switch req.Status {
	case "":
	case "active":
		plans = transform.ActivePlans(plans)
	case "completed":
		plans = transform.CompletedPlans(plans)
	default:
		fail(c, &badRequest{fmt.Errorf("unknown status %q", req.Status)})
		return
	}
	success(c, gin.H{"plans": plans})
}

func (h *handlers) createPlan(c *gin.Context) {
	var req models.PlanPayload
	if !bind(c, &req) {
		return
	}
	plan, err := h.manager.CreatePlan(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	success(c, gin.H{"plan": plan})
}

func (h *handlers) addTask(c *gin.Context) {
	var req AddTaskRequest
	if !bind(c, &req) {
		return
	}
	plan, found, err := h.manager.AddTask(c.Request.Context(), req.PlanID, req.Task)
	if err != nil {
		fail(c, err)
		return
	}
	if !found {
		fail(c, notFound("plan %d", req.PlanID))
		return
	}
	success(c, gin.H{"plan": plan})
}

func (h *handlers) togglePlanTask(c *gin.Context) {
	var req TogglePlanTaskRequest
	if !bind(c, &req) {
		return
	}
	plan, found, err := h.manager.TogglePlanTask(c.Request.Context(), req.PlanID, req.TaskID)
	if err != nil {
		fail(c, err)
		return
	}
	if !found {
		fail(c, notFound("task %d of plan %d", req.TaskID, req.PlanID))
		return
	}
	success(c, gin.H{"plan": plan})
}

func (h *handlers) listSchedule(c *gin.Context) {
	success(c, gin.H{
		"schedule":        h.manager.Schedule(),
		"remaining_hours": h.manager.RemainingHours(),
	})
}

func (h *handlers) toggleSchedule(c *gin.Context) {
	var req ToggleRequest
	if !bind(c, &req) {
		return
	}
	task, found, err := h.manager.ToggleScheduleTask(c.Request.Context(), req.ID)
	if err != nil {
		fail(c, err)
		return
	}
	if !found {
		fail(c, notFound("schedule task %d", req.ID))
		return
	}
	success(c, gin.H{"task": task})
}

func (h *handlers) getDashboard(c *gin.Context) {
	success(c, gin.H{
		"stats":           h.manager.DashboardStats(),
		"recently_viewed": h.manager.RecentlyViewed(),
		"recommended":     h.manager.Recommended(transform.RecommendedCount),
		"reminders":       h.manager.Reminders(),
	})
}

func (h *handlers) getProfile(c *gin.Context) {
	success(c, gin.H{
		"profile":   h.manager.Profile(),
		"favorites": h.manager.Favorites(),
	})
}
