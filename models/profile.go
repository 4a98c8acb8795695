package models

// Profile is the page of the signed-in student
type Profile struct {
	Name         string        `json:"name"`
	Username     string        `json:"username"`
	Email        string        `json:"email"`
	Bio          string        `json:"bio"`
	Avatar       string        `json:"avatar"`
	JoinedDate   string        `json:"joined_date"`
	Interests    []string      `json:"interests"`
	Stats        ProfileStats  `json:"stats"`
	Achievements []Achievement `json:"achievements"`
	// FavoriteIDs refer to Library.Resources
	FavoriteIDs []int64    `json:"favorite_ids"`
	Uploads     []Resource `json:"uploads"`
}

type ProfileStats struct {
	ResourcesRead  int `json:"resources_read"`
	GoalsCompleted int `json:"goals_completed"`
	StudyHours     int `json:"study_hours"`
	ForumPosts     int `json:"forum_posts"`
}

type Achievement struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

func (c *Profile) Clone() *Profile {
	if c == nil {
		return nil
	}
	clone := *c
	clone.Interests = append([]string(nil), c.Interests...)
	clone.Achievements = append([]Achievement(nil), c.Achievements...)
	clone.FavoriteIDs = append([]int64(nil), c.FavoriteIDs...)
	clone.Uploads = append([]Resource(nil), c.Uploads...)
	return &clone
}

// Stat is one quick-stat card of the dashboard
type Stat struct {
	Title    string `json:"title"`
	Value    string `json:"value"`
	Progress int    `json:"progress"`
}
