package models

type Priority string

const (
	Priority_High   Priority = "high"
	Priority_Medium Priority = "medium"
	Priority_Low    Priority = "low"
)

func (p Priority) Valid() bool {
	switch p {
	case Priority_High, Priority_Medium, Priority_Low:
		return true
	}
	return false
}

// StudyPlan.Progress is derived from Tasks and never set directly.
type StudyPlan struct {
	ID       int64  `json:"id" db:"id"`
	Title    string `json:"title" db:"title"`
	Subject  string `json:"subject" db:"subject"`
	Deadline string `json:"deadline" db:"deadline"`
	Progress int    `json:"progress" db:"progress"`
	Tasks    []Task `json:"tasks" db:"-"`
}

// Task belongs to a StudyPlan
type Task struct {
	ID        int64    `json:"id" db:"id"`
	Title     string   `json:"title" db:"title"`
	Completed bool     `json:"completed" db:"completed"`
	Duration  string   `json:"duration" db:"duration"`
	Priority  Priority `json:"priority" db:"priority"`
}

// ScheduleTask is an entry of the day schedule. Its id space is
// independent of plan Task ids.
type ScheduleTask struct {
	ID        int64  `json:"id" db:"id"`
	Title     string `json:"title" db:"title"`
	Subject   string `json:"subject" db:"subject"`
	Duration  string `json:"duration" db:"duration"`
	Time      string `json:"time" db:"time"`
	Completed bool   `json:"completed" db:"completed"`
}

type PlanPayload struct {
	Title    string `json:"title" binding:"required,min=3"`
	Subject  string `json:"subject" binding:"required"`
	Deadline string `json:"deadline" binding:"required"`
}

type TaskPayload struct {
	Title    string   `json:"title" binding:"required,min=3"`
	Duration string   `json:"duration" binding:"required"`
	Priority Priority `json:"priority" binding:"required,oneof=high medium low"`
}
