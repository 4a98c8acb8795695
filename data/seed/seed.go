// Package seed holds the initial library every session starts from.
package seed

import (
	"github.com/xhd2015/studentlib/data/transform"
	"github.com/xhd2015/studentlib/models"
)

var ForumCategories = []string{
	"Mathematics",
	"Computer Science",
	"Study Tips & Techniques",
	"Biology & Life Sciences",
	"App Feedback & Support",
}

var PlanSubjects = []string{
	"Mathematics",
	"Computer Science",
	"Literature",
	"Physics",
	"Chemistry",
	"Biology",
	"History",
}

const placeholderThumbnail = "/placeholder.svg"

func views(n int64) *int64 {
	return &n
}

// Library returns a fresh copy of the initial data. Plan progress is
// derived from the tasks.
func Library() *models.Library {
	lib := &models.Library{
		Resources: []models.Resource{
			{ID: 1, Title: "Calculus Fundamentals", Type: models.ResourceType_PDF, Author: "Dr. Smith", Subject: "Math", Class: "MAT-201", Thumbnail: placeholderThumbnail, LastViewed: "2 hours ago", UploadedAt: "2 weeks ago", Views: views(245)},
			{ID: 2, Title: "Introduction to Psychology", Type: models.ResourceType_Video, Author: "Prof. Johnson", Subject: "Psychology", Class: "PSY-101", Thumbnail: placeholderThumbnail, LastViewed: "Yesterday", UploadedAt: "1 month ago", Views: views(512)},
			{ID: 3, Title: "Organic Chemistry Notes", Type: models.ResourceType_PDF, Author: "Student Contributor", Subject: "Chemistry", Class: "CHEM-302", Thumbnail: placeholderThumbnail, LastViewed: "3 days ago", UploadedAt: "3 days ago", Views: views(87)},
			{ID: 4, Title: "Advanced Data Structures", Type: models.ResourceType_PDF, Author: "Prof. Zhang", Subject: "Computer Science", Class: "CS-301", Thumbnail: placeholderThumbnail, UploadedAt: "1 week ago", Views: views(302)},
			{ID: 5, Title: "World History: Modern Era", Type: models.ResourceType_Video, Author: "Dr. Garcia", Subject: "History", Class: "HIST-202", Thumbnail: placeholderThumbnail, UploadedAt: "2 months ago", Views: views(421)},
			{ID: 6, Title: "Physics: Mechanics", Type: models.ResourceType_PDF, Author: "Dr. Lee", Subject: "Physics", Class: "PHY-101", Thumbnail: placeholderThumbnail, UploadedAt: "5 days ago", Views: views(178)},
			{ID: 7, Title: "Cell Biology Illustrated", Type: models.ResourceType_PDF, Author: "Dr. Patel", Subject: "Biology", Class: "BIO-201", Thumbnail: placeholderThumbnail, UploadedAt: "1 month ago", Views: views(295)},
			{ID: 8, Title: "Machine Learning Basics", Type: models.ResourceType_Video, Author: "Prof. Anderson", Subject: "Computer Science", Class: "CS-401", Thumbnail: placeholderThumbnail, UploadedAt: "3 weeks ago", Views: views(647)},
		},
		Topics: []models.ForumTopic{
			{ID: 1, Title: "Mathematics", Description: "Discussion about calculus, algebra, statistics and other math topics", Category: "Academic", Posts: 247, LastPostBy: "Taylor M.", LastPostTime: "2 hours ago"},
			{ID: 2, Title: "Computer Science", Description: "Programming, algorithms, data structures and CS theory", Category: "Academic", Posts: 389, LastPostBy: "Robin H.", LastPostTime: "30 minutes ago"},
			{ID: 3, Title: "Study Tips & Techniques", Description: "Share effective study methods, time management and productivity tips", Category: "General", Posts: 173, LastPostBy: "Jordan P.", LastPostTime: "1 day ago"},
			{ID: 4, Title: "Biology & Life Sciences", Description: "Discussions about biology, biochemistry, genetics and related fields", Category: "Academic", Posts: 215, LastPostBy: "Casey O.", LastPostTime: "5 hours ago"},
			{ID: 5, Title: "App Feedback & Support", Description: "Questions, feedback and feature requests for the Student Library app", Category: "Meta", Posts: 84, LastPostBy: "Admin", LastPostTime: "3 days ago"},
		},
		RecentThreads: []models.ForumThread{
			{ID: 1, Title: "Need help with differential equations", Author: "MathStudent123", Category: "Mathematics", Replies: 8, Views: 156, Votes: 12, DatePosted: "4 hours ago", LastReply: "30 minutes ago"},
			{ID: 2, Title: "Best resources for learning React?", Author: "CodeLearner", Category: "Computer Science", Replies: 15, Views: 237, Votes: 24, DatePosted: "1 day ago", LastReply: "2 hours ago"},
			{ID: 3, Title: "Pomodoro technique effectiveness", Author: "StudyGuru", Category: "Study Tips & Techniques", Replies: 21, Views: 312, Votes: 31, DatePosted: "2 days ago", LastReply: "4 hours ago"},
			{ID: 4, Title: "Understanding DNA replication", Author: "BioEnthusiast", Category: "Biology & Life Sciences", Replies: 7, Views: 143, Votes: 18, DatePosted: "1 day ago", LastReply: "6 hours ago"},
		},
		PopularThreads: []models.ForumThread{
			{ID: 5, Title: "Comprehensive guide to exam preparation", Author: "TopStudent", Category: "Study Tips & Techniques", Replies: 45, Views: 1243, Votes: 87, DatePosted: "1 week ago", LastReply: "1 day ago"},
			{ID: 6, Title: "AI tools for students: comprehensive list", Author: "TechSavvy", Category: "Computer Science", Replies: 38, Views: 982, Votes: 76, DatePosted: "2 weeks ago", LastReply: "5 hours ago"},
			{ID: 7, Title: "Biochemistry pathways explained simply", Author: "BioChem101", Category: "Biology & Life Sciences", Replies: 29, Views: 876, Votes: 63, DatePosted: "3 days ago", LastReply: "12 hours ago"},
			{ID: 8, Title: "Speed reading techniques that actually work", Author: "BookWorm", Category: "Study Tips & Techniques", Replies: 32, Views: 947, Votes: 58, DatePosted: "5 days ago", LastReply: "1 hour ago"},
		},
		Plans: []models.StudyPlan{
			{
				ID: 1, Title: "Final Exam Prep - Calculus", Subject: "Mathematics", Deadline: "Apr 30, 2025",
				Tasks: []models.Task{
					{ID: 101, Title: "Review differentiation rules", Completed: true, Duration: "2 hours", Priority: models.Priority_High},
					{ID: 102, Title: "Practice integration problems", Completed: true, Duration: "3 hours", Priority: models.Priority_High},
					{ID: 103, Title: "Study applications of integrals", Duration: "2 hours", Priority: models.Priority_Medium},
					{ID: 104, Title: "Review series and sequences", Duration: "2.5 hours", Priority: models.Priority_Medium},
					{ID: 105, Title: "Take practice exam", Duration: "1.5 hours", Priority: models.Priority_High},
				},
			},
			{
				ID: 2, Title: "Programming Project - Data Structures", Subject: "Computer Science", Deadline: "May 15, 2025",
				Tasks: []models.Task{
					{ID: 201, Title: "Design system architecture", Completed: true, Duration: "3 hours", Priority: models.Priority_High},
					{ID: 202, Title: "Implement binary search tree", Completed: true, Duration: "4 hours", Priority: models.Priority_High},
					{ID: 203, Title: "Implement hash table", Duration: "4 hours", Priority: models.Priority_High},
					{ID: 204, Title: "Write test cases", Duration: "2 hours", Priority: models.Priority_Medium},
					{ID: 205, Title: "Prepare documentation", Duration: "2 hours", Priority: models.Priority_Low},
				},
			},
			{
				ID: 3, Title: "Research Paper - American Literature", Subject: "Literature", Deadline: "May 5, 2025",
				Tasks: []models.Task{
					{ID: 301, Title: "Research topic and sources", Completed: true, Duration: "3 hours", Priority: models.Priority_High},
					{ID: 302, Title: "Create outline", Completed: true, Duration: "1.5 hours", Priority: models.Priority_High},
					{ID: 303, Title: "Write introduction", Duration: "2 hours", Priority: models.Priority_Medium},
					{ID: 304, Title: "Write body paragraphs", Duration: "6 hours", Priority: models.Priority_High},
					{ID: 305, Title: "Write conclusion", Duration: "1 hour", Priority: models.Priority_Medium},
					{ID: 306, Title: "Format citations", Duration: "1 hour", Priority: models.Priority_Low},
				},
			},
		},
		Schedule: []models.ScheduleTask{
			{ID: 101, Title: "Study applications of integrals", Subject: "Mathematics", Duration: "2 hours", Time: "10:00 AM - 12:00 PM"},
			{ID: 201, Title: "Implement hash table", Subject: "Computer Science", Duration: "2 hours", Time: "2:00 PM - 4:00 PM"},
			{ID: 301, Title: "Write introduction", Subject: "Literature", Duration: "2 hours", Time: "4:30 PM - 6:30 PM"},
		},
		Reminders: []models.Reminder{
			{ID: 1, Title: "Math Assignment", Date: "Today, 3:00 PM", Subject: "Mathematics"},
			{ID: 2, Title: "Biology Exam", Date: "Tomorrow, 10:00 AM", Subject: "Biology"},
			{ID: 3, Title: "Study Group Meeting", Date: "Friday, 5:30 PM", Subject: "Physics"},
		},
	}
	lib.Plans = transform.RecomputePlans(lib.Plans)
	return lib
}

// Profile returns a fresh copy of the signed-in student's profile
func Profile() *models.Profile {
	return &models.Profile{
		Name:       "Alex Johnson",
		Username:   "alex_j",
		Email:      "alex.johnson@example.com",
		Bio:        "Computer Science student passionate about programming and mathematics. Love to share knowledge and collaborate on interesting projects.",
		Avatar:     placeholderThumbnail,
		JoinedDate: "September 2023",
		Interests:  []string{"Computer Science", "Mathematics", "Programming"},
		Stats: models.ProfileStats{
			ResourcesRead:  142,
			GoalsCompleted: 87,
			StudyHours:     215,
			ForumPosts:     34,
		},
		Achievements: []models.Achievement{
			{ID: 1, Title: "Resource Master", Description: "Read over 100 resources", Date: "March 15, 2024"},
			{ID: 2, Title: "Consistent Learner", Description: "Completed 50 study goals", Date: "February 22, 2024"},
			{ID: 3, Title: "Helpful Contributor", Description: "Posted 25 responses in forums", Date: "January 10, 2024"},
		},
		FavoriteIDs: []int64{1, 5, 8},
		Uploads: []models.Resource{
			{ID: 3, Title: "Organic Chemistry Notes", Type: models.ResourceType_PDF, Author: "Alex Johnson", Subject: "Chemistry", Class: "CHEM-302", Thumbnail: placeholderThumbnail},
			{ID: 9, Title: "Programming Algorithms", Type: models.ResourceType_PDF, Author: "Alex Johnson", Subject: "Computer Science", Class: "CS-201", Thumbnail: placeholderThumbnail},
		},
	}
}

// MaxID is the largest id used anywhere in lib, so a Counter starting
// there never collides with existing records
func MaxID(lib *models.Library) int64 {
	var max int64
	bump := func(id int64) {
		if id > max {
			max = id
		}
	}
	for _, r := range lib.Resources {
		bump(r.ID)
	}
	for _, t := range lib.Topics {
		bump(t.ID)
	}
	for _, t := range lib.RecentThreads {
		bump(t.ID)
	}
	for _, t := range lib.PopularThreads {
		bump(t.ID)
	}
	for _, p := range lib.Plans {
		bump(p.ID)
		for _, t := range p.Tasks {
			bump(t.ID)
		}
	}
	for _, t := range lib.Schedule {
		bump(t.ID)
	}
	for _, r := range lib.Reminders {
		bump(r.ID)
	}
	return max
}
