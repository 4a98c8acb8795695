package models

// Library is the full snapshot of records held by one session
type Library struct {
	Resources      []Resource     `json:"resources"`
	Topics         []ForumTopic   `json:"topics"`
	RecentThreads  []ForumThread  `json:"recent_threads"`
	PopularThreads []ForumThread  `json:"popular_threads"`
	Plans          []StudyPlan    `json:"plans"`
	Schedule       []ScheduleTask `json:"schedule"`
	Reminders      []Reminder     `json:"reminders"`
}

func (c *Library) Threads(list ThreadList) []ForumThread {
	if list == ThreadList_Popular {
		return c.PopularThreads
	}
	return c.RecentThreads
}

func (c *Library) SetThreads(list ThreadList, threads []ForumThread) {
	if list == ThreadList_Popular {
		c.PopularThreads = threads
		return
	}
	c.RecentThreads = threads
}

func (c *Library) Plan(id int64) (StudyPlan, bool) {
	for _, plan := range c.Plans {
		if plan.ID == id {
			return plan, true
		}
	}
	return StudyPlan{}, false
}

// Clone copies every list so the result shares no backing arrays with c
func (c *Library) Clone() *Library {
	if c == nil {
		return nil
	}
	plans := make([]StudyPlan, len(c.Plans))
	for i, plan := range c.Plans {
		plan.Tasks = append([]Task(nil), plan.Tasks...)
		plans[i] = plan
	}
	return &Library{
		Resources:      append([]Resource(nil), c.Resources...),
		Topics:         append([]ForumTopic(nil), c.Topics...),
		RecentThreads:  append([]ForumThread(nil), c.RecentThreads...),
		PopularThreads: append([]ForumThread(nil), c.PopularThreads...),
		Plans:          plans,
		Schedule:       append([]ScheduleTask(nil), c.Schedule...),
		Reminders:      append([]Reminder(nil), c.Reminders...),
	}
}

type Config struct {
	StorageType string `json:"storage_type"`
	ServerAddr  string `json:"server_addr"`
	ServerToken string `json:"server_token"`
	LastQuery   string `json:"last_query"`
	RunningPID  int    `json:"running_pid"`
}
