package data

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/xhd2015/studentlib/data/seed"
	"github.com/xhd2015/studentlib/data/storage"
	"github.com/xhd2015/studentlib/data/transform"
	"github.com/xhd2015/studentlib/log"
	"github.com/xhd2015/studentlib/models"
	"github.com/xhd2015/studentlib/ui/search"
)

// LibraryManager holds the current library and applies every mutation
// as a whole-list replacement, persisting the snapshot afterwards.
// When the service implements storage.LibraryOperations the mutation is
// sent to it instead and the snapshot is reloaded.
type LibraryManager struct {
	LibraryService storage.LibraryService
	IDs            transform.IDGenerator

	mu      sync.Mutex
	lib     *models.Library
	profile *models.Profile
}

// NewLibraryManager uses ids when given, otherwise a counter continuing
// after the largest loaded id
func NewLibraryManager(libraryService storage.LibraryService, ids transform.IDGenerator) *LibraryManager {
	return &LibraryManager{
		LibraryService: libraryService,
		IDs:            ids,
		profile:        seed.Profile(),
	}
}

func (m *LibraryManager) Init(ctx context.Context) error {
	lib, err := m.LibraryService.Load(ctx)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lib = lib
	if m.IDs == nil {
		m.IDs = transform.NewCounter(seed.MaxID(lib))
	} else {
		m.raiseIDs(lib)
	}
	log.Infof(ctx, "library loaded: %d resources, %d plans", len(lib.Resources), len(lib.Plans))
	return nil
}

// Library returns a copy of the current snapshot
func (m *LibraryManager) Library() *models.Library {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lib.Clone()
}

func (m *LibraryManager) Resources(query string, typ models.ResourceType) []models.Resource {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(search.FilterResources(search.FilterResourcesByType(m.lib.Resources, typ), query))
}

func (m *LibraryManager) Topics(query string) []models.ForumTopic {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(search.FilterTopics(m.lib.Topics, query))
}

func (m *LibraryManager) Threads(list models.ThreadList, query string) []models.ForumThread {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(search.FilterThreads(m.lib.Threads(list), query))
}

func (m *LibraryManager) Plans(query string) []models.StudyPlan {
	m.mu.Lock()
	defer m.mu.Unlock()
	return search.FilterPlans(m.lib.Clone().Plans, query)
}

func (m *LibraryManager) Schedule() []models.ScheduleTask {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.lib.Schedule)
}

func (m *LibraryManager) Reminders() []models.Reminder {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.lib.Reminders)
}

func (m *LibraryManager) RemainingHours() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return transform.RemainingHours(m.lib.Schedule)
}

// Profile is read-only, it is not part of the persisted library
func (m *LibraryManager) Profile() *models.Profile {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.profile.Clone()
}

// Favorites resolves the profile's favorite ids against the library resources
func (m *LibraryManager) Favorites() []models.Resource {
	m.mu.Lock()
	defer m.mu.Unlock()
	return transform.ResourcesByID(m.lib.Resources, m.profile.FavoriteIDs)
}

func (m *LibraryManager) DashboardStats() []models.Stat {
	m.mu.Lock()
	defer m.mu.Unlock()
	return transform.DashboardStats(m.lib)
}

func (m *LibraryManager) RecentlyViewed() []models.Resource {
	m.mu.Lock()
	defer m.mu.Unlock()
	return transform.RecentlyViewed(m.lib.Resources)
}

func (m *LibraryManager) Recommended(n int) []models.Resource {
	m.mu.Lock()
	defer m.mu.Unlock()
	return transform.Recommended(m.lib.Resources, n)
}

// Vote returns the adjusted thread, ok is false when the id is not in list
func (m *LibraryManager) Vote(ctx context.Context, list models.ThreadList, id int64, delta int64) (thread models.ForumThread, ok bool, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if ops, ok := m.LibraryService.(storage.LibraryOperations); ok {
		return applyRemote(ctx, m, func(lib *models.Library) bool {
			_, found := findByID(lib.Threads(list), id, func(t models.ForumThread) int64 { return t.ID })
			return found
		}, func() (models.ForumThread, error) {
			return ops.Vote(ctx, list, id, delta)
		})
	}

	threads := m.lib.Threads(list)
	updated := transform.AdjustVotes(threads, id, delta)
	thread, ok = findByID(updated, id, func(t models.ForumThread) int64 { return t.ID })
	if !ok {
		return models.ForumThread{}, false, nil
	}
	err = m.commit(ctx, func(lib *models.Library) {
		lib.SetThreads(list, updated)
	})
	if err != nil {
		return models.ForumThread{}, false, err
	}
	log.Infof(ctx, "vote %s thread %d by %d: %d", list, id, delta, thread.Votes)
	return thread, true, nil
}

func (m *LibraryManager) ToggleScheduleTask(ctx context.Context, id int64) (task models.ScheduleTask, ok bool, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if ops, ok := m.LibraryService.(storage.LibraryOperations); ok {
		return applyRemote(ctx, m, func(lib *models.Library) bool {
			_, found := findByID(lib.Schedule, id, func(t models.ScheduleTask) int64 { return t.ID })
			return found
		}, func() (models.ScheduleTask, error) {
			return ops.ToggleScheduleTask(ctx, id)
		})
	}

	updated := transform.ToggleScheduleTask(m.lib.Schedule, id)
	task, ok = findByID(updated, id, func(t models.ScheduleTask) int64 { return t.ID })
	if !ok {
		return models.ScheduleTask{}, false, nil
	}
	err = m.commit(ctx, func(lib *models.Library) {
		lib.Schedule = updated
	})
	if err != nil {
		return models.ScheduleTask{}, false, err
	}
	log.Infof(ctx, "toggle schedule task %d: completed=%v", id, task.Completed)
	return task, true, nil
}

// TogglePlanTask returns the plan after the toggle with its progress recomputed
func (m *LibraryManager) TogglePlanTask(ctx context.Context, planID int64, taskID int64) (plan models.StudyPlan, ok bool, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if ops, ok := m.LibraryService.(storage.LibraryOperations); ok {
		return applyRemote(ctx, m, func(lib *models.Library) bool {
			return hasPlanTask(lib, planID, taskID)
		}, func() (models.StudyPlan, error) {
			return ops.TogglePlanTask(ctx, planID, taskID)
		})
	}

	if !hasPlanTask(m.lib, planID, taskID) {
		return models.StudyPlan{}, false, nil
	}

	updated := transform.TogglePlanTask(m.lib.Plans, planID, taskID)
	err = m.commit(ctx, func(lib *models.Library) {
		lib.Plans = updated
	})
	if err != nil {
		return models.StudyPlan{}, false, err
	}
	plan, _ = m.lib.Plan(planID)
	log.Infof(ctx, "toggle task %d of plan %d: progress %d", taskID, planID, plan.Progress)
	return plan, true, nil
}

func (m *LibraryManager) CreateThread(ctx context.Context, payload models.ThreadPayload) (models.ForumThread, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if ops, ok := m.LibraryService.(storage.LibraryOperations); ok {
		thread, _, err := applyRemote(ctx, m, nil, func() (models.ForumThread, error) {
			return ops.CreateThread(ctx, payload)
		})
		return thread, err
	}

	thread := transform.NewThread(payload, m.IDs)
	err := m.commit(ctx, func(lib *models.Library) {
		lib.RecentThreads = transform.PrependThread(lib.RecentThreads, thread)
	})
	if err != nil {
		return models.ForumThread{}, err
	}
	log.Infof(ctx, "created thread %d: %s", thread.ID, log.JSON(payload))
	return thread, nil
}

func (m *LibraryManager) CreatePlan(ctx context.Context, payload models.PlanPayload) (models.StudyPlan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if ops, ok := m.LibraryService.(storage.LibraryOperations); ok {
		plan, _, err := applyRemote(ctx, m, nil, func() (models.StudyPlan, error) {
			return ops.CreatePlan(ctx, payload)
		})
		return plan, err
	}

	plan := transform.NewPlan(payload, m.IDs)
	err := m.commit(ctx, func(lib *models.Library) {
		lib.Plans = transform.AppendPlan(lib.Plans, plan)
	})
	if err != nil {
		return models.StudyPlan{}, err
	}
	log.Infof(ctx, "created plan %d: %s", plan.ID, log.JSON(payload))
	return plan, nil
}

// AddTask appends a task to planID, ok is false when the plan does not exist
func (m *LibraryManager) AddTask(ctx context.Context, planID int64, payload models.TaskPayload) (plan models.StudyPlan, ok bool, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if ops, ok := m.LibraryService.(storage.LibraryOperations); ok {
		return applyRemote(ctx, m, func(lib *models.Library) bool {
			_, found := lib.Plan(planID)
			return found
		}, func() (models.StudyPlan, error) {
			return ops.AddTask(ctx, planID, payload)
		})
	}

	if _, found := m.lib.Plan(planID); !found {
		return models.StudyPlan{}, false, nil
	}
	task := transform.NewTask(payload, m.IDs)
	err = m.commit(ctx, func(lib *models.Library) {
		lib.Plans = transform.AddTaskToPlan(lib.Plans, planID, task)
	})
	if err != nil {
		return models.StudyPlan{}, false, err
	}
	plan, _ = m.lib.Plan(planID)
	log.Infof(ctx, "added task %d to plan %d: progress %d", task.ID, planID, plan.Progress)
	return plan, true, nil
}

// Replace swaps the whole library, used by import and the server's save
// endpoint. Plan progress is recomputed and later ids continue after the
// largest id in lib.
func (m *LibraryManager) Replace(ctx context.Context, lib *models.Library) error {
	if lib == nil {
		return fmt.Errorf("library cannot be nil")
	}
	next := lib.Clone()
	next.Plans = transform.RecomputePlans(next.Plans)

	m.mu.Lock()
	defer m.mu.Unlock()
	err := m.commit(ctx, func(current *models.Library) {
		*current = *next
	})
	if err != nil {
		return err
	}
	m.raiseIDs(next)
	log.Infof(ctx, "library replaced: %d resources, %d plans", len(next.Resources), len(next.Plans))
	return nil
}

func (m *LibraryManager) raiseIDs(lib *models.Library) {
	if counter, ok := m.IDs.(*transform.Counter); ok {
		counter.Raise(seed.MaxID(lib))
	}
}

// applyRemote runs op on a back-end that mutates by itself. The snapshot
// is reloaded before, so exists sees other clients' records, and after,
// so it holds the result. A nil exists always runs op. Must be called
// with m.mu held.
func applyRemote[T any](ctx context.Context, m *LibraryManager, exists func(lib *models.Library) bool, op func() (T, error)) (result T, ok bool, err error) {
	if err := m.reload(ctx); err != nil {
		return result, false, err
	}
	if exists != nil && !exists(m.lib) {
		return result, false, nil
	}
	result, err = op()
	if err != nil {
		log.Errorf(ctx, "remote operation: %v", err)
		return result, false, err
	}
	if err := m.reload(ctx); err != nil {
		return result, true, err
	}
	return result, true, nil
}

func (m *LibraryManager) reload(ctx context.Context) error {
	lib, err := m.LibraryService.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to reload library: %w", err)
	}
	m.lib = lib
	return nil
}

func hasPlanTask(lib *models.Library, planID int64, taskID int64) bool {
	plan, found := lib.Plan(planID)
	if !found {
		return false
	}
	_, found = findByID(plan.Tasks, taskID, func(t models.Task) int64 { return t.ID })
	return found
}

// commit applies fn to a copy of the library, persists it and only then
// makes it current. Must be called with m.mu held.
func (m *LibraryManager) commit(ctx context.Context, fn func(lib *models.Library)) error {
	next := *m.lib
	fn(&next)
	if err := m.LibraryService.Save(ctx, &next); err != nil {
		log.Errorf(ctx, "save library: %v", err)
		return fmt.Errorf("failed to save library: %w", err)
	}
	m.lib = &next
	return nil
}

func findByID[T any](items []T, id int64, getID func(T) int64) (T, bool) {
	for _, item := range items {
		if getID(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}
