package models

type ResourceType string

const (
	ResourceType_PDF   ResourceType = "PDF"
	ResourceType_Video ResourceType = "Video"
)

type Resource struct {
	ID         int64        `json:"id" db:"id"`
	Title      string       `json:"title" db:"title"`
	Type       ResourceType `json:"type" db:"type"`
	Author     string       `json:"author" db:"author"`
	Subject    string       `json:"subject" db:"subject"`
	Class      string       `json:"class" db:"class"`
	Thumbnail  string       `json:"thumbnail" db:"thumbnail"`
	LastViewed string       `json:"last_viewed,omitempty" db:"last_viewed"`
	UploadedAt string       `json:"uploaded_at,omitempty" db:"uploaded_at"`
	Views      *int64       `json:"views,omitempty" db:"views"`
}

// Reminder is an upcoming deadline shown on the dashboard
type Reminder struct {
	ID      int64  `json:"id" db:"id"`
	Title   string `json:"title" db:"title"`
	Date    string `json:"date" db:"date"`
	Subject string `json:"subject" db:"subject"`
}
