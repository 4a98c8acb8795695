package storage

import (
	"context"

	"github.com/xhd2015/studentlib/models"
)

// LibraryService loads and stores the whole library snapshot.
// Load on an empty back-end returns the seed library.
type LibraryService interface {
	Load(ctx context.Context) (*models.Library, error)
	Save(ctx context.Context, lib *models.Library) error
	Close() error
}

// LibraryOperations is implemented by back-ends that apply each mutation
// themselves, so several processes can share one library. A missing
// target is reported by the manager before the call.
type LibraryOperations interface {
	Vote(ctx context.Context, list models.ThreadList, id int64, delta int64) (models.ForumThread, error)
	ToggleScheduleTask(ctx context.Context, id int64) (models.ScheduleTask, error)
	TogglePlanTask(ctx context.Context, planID int64, taskID int64) (models.StudyPlan, error)
	CreateThread(ctx context.Context, payload models.ThreadPayload) (models.ForumThread, error)
	CreatePlan(ctx context.Context, payload models.PlanPayload) (models.StudyPlan, error)
	AddTask(ctx context.Context, planID int64, payload models.TaskPayload) (models.StudyPlan, error)
}

const (
	StorageType_Memory = "memory"
	StorageType_File   = "file"
	StorageType_SQLite = "sqlite"
	StorageType_Server = "server"
)

var StorageTypes = []string{
	StorageType_Memory,
	StorageType_File,
	StorageType_SQLite,
	StorageType_Server,
}
