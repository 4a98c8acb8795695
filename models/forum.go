package models

type ForumTopic struct {
	ID           int64  `json:"id" db:"id"`
	Title        string `json:"title" db:"title"`
	Description  string `json:"description" db:"description"`
	Category     string `json:"category" db:"category"`
	Posts        int64  `json:"posts" db:"posts"`
	LastPostBy   string `json:"last_post_by" db:"last_post_by"`
	LastPostTime string `json:"last_post_time" db:"last_post_time"`
}

type ForumThread struct {
	ID         int64  `json:"id" db:"id"`
	Title      string `json:"title" db:"title"`
	Author     string `json:"author" db:"author"`
	Category   string `json:"category" db:"category"`
	Replies    int64  `json:"replies" db:"replies"`
	Views      int64  `json:"views" db:"views"`
	Votes      int64  `json:"votes" db:"votes"`
	DatePosted string `json:"date_posted" db:"date_posted"`
	LastReply  string `json:"last_reply" db:"last_reply"`
}

// ThreadList names one of the independent thread lists.
// The same thread id may appear in both.
type ThreadList string

const (
	ThreadList_Recent  ThreadList = "recent"
	ThreadList_Popular ThreadList = "popular"
)

func ParseThreadList(s string) (ThreadList, bool) {
	switch ThreadList(s) {
	case ThreadList_Recent, ThreadList_Popular:
		return ThreadList(s), true
	}
	return "", false
}

// ThreadPayload is the thread creation form, its rules live in the binding tags
type ThreadPayload struct {
	Title    string `json:"title" binding:"required,min=3"`
	Category string `json:"category" binding:"required,oneof='Mathematics' 'Computer Science' 'Study Tips & Techniques' 'Biology & Life Sciences' 'App Feedback & Support'"`
	Content  string `json:"content" binding:"required,min=10"`
}
