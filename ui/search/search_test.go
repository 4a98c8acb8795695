package search

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/xhd2015/studentlib/models"
)

func testResources() []models.Resource {
	return []models.Resource{
		{ID: 1, Title: "Calculus Fundamentals", Type: models.ResourceType_PDF, Author: "Dr. Smith", Subject: "Math", Class: "MAT-201"},
		{ID: 2, Title: "Introduction to Psychology", Type: models.ResourceType_Video, Author: "Prof. Johnson", Subject: "Psychology", Class: "PSY-101"},
		{ID: 4, Title: "Advanced Data Structures", Type: models.ResourceType_PDF, Author: "Prof. Zhang", Subject: "Computer Science", Class: "CS-301"},
		{ID: 8, Title: "Machine Learning Basics", Type: models.ResourceType_Video, Author: "Prof. Anderson", Subject: "Computer Science", Class: "CS-401"},
	}
}

func resourceIDs(resources []models.Resource) []int64 {
	ids := make([]int64, 0, len(resources))
	for _, r := range resources {
		ids = append(ids, r.ID)
	}
	return ids
}

func TestFilterResources(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []int64
	}{
		{name: "title", query: "calculus", want: []int64{1}},
		{name: "author upper case", query: "PROF.", want: []int64{2, 4, 8}},
		{name: "subject", query: "computer", want: []int64{4, 8}},
		{name: "class label", query: "cs-4", want: []int64{8}},
		{name: "no match", query: "astronomy", want: []int64{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resourceIDs(FilterResources(testResources(), tt.query))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FilterResources(%q) mismatch (-want +got):\n%s", tt.query, diff)
			}
		})
	}
}

func TestFilterEmptyQueryIsIdentity(t *testing.T) {
	resources := testResources()
	filtered := Filter(resources, "", ResourceFields...)
	if len(filtered) != len(resources) {
		t.Fatalf("expected %d resources, got %d", len(resources), len(filtered))
	}
	if &filtered[0] != &resources[0] {
		t.Errorf("expected empty query to return the input slice itself")
	}

	var empty []models.Resource
	if got := Filter(empty, "", ResourceFields...); got != nil {
		t.Errorf("expected nil input to come back nil, got %v", got)
	}
}

func TestFilterResultsContainQuery(t *testing.T) {
	threads := []models.ForumThread{
		{ID: 1, Title: "Need help with differential equations", Author: "MathStudent123", Category: "Mathematics"},
		{ID: 2, Title: "Best resources for learning React?", Author: "CodeLearner", Category: "Computer Science"},
		{ID: 3, Title: "Pomodoro technique effectiveness", Author: "StudyGuru", Category: "Study Tips & Techniques"},
		{ID: 4, Title: "Understanding DNA replication", Author: "BioEnthusiast", Category: "Biology & Life Sciences"},
	}
	for _, query := range []string{"e", "study", "MATH", "ion", "zzz"} {
		lower := strings.ToLower(query)
		for _, thread := range FilterThreads(threads, query) {
			ok := false
			for _, field := range ThreadFields {
				if strings.Contains(strings.ToLower(field(thread)), lower) {
					ok = true
				}
			}
			if !ok {
				t.Errorf("thread %d returned for %q but no field contains it", thread.ID, query)
			}
		}
	}

	got := FilterThreads(threads, "e")
	for i := 1; i < len(got); i++ {
		if got[i-1].ID > got[i].ID {
			t.Errorf("expected input order to be kept, got %d before %d", got[i-1].ID, got[i].ID)
		}
	}
}

func TestFilterTopicsUsesDescription(t *testing.T) {
	topics := []models.ForumTopic{
		{ID: 1, Title: "Mathematics", Description: "Discussion about calculus, algebra, statistics and other math topics", Category: "Academic"},
		{ID: 5, Title: "App Feedback & Support", Description: "Questions, feedback and feature requests", Category: "Meta"},
	}
	got := FilterTopics(topics, "algebra")
	if len(got) != 1 || got[0].ID != 1 {
		t.Errorf("expected topic 1 for 'algebra', got %v", got)
	}
	// category is not a searchable topic field
	if got := FilterTopics(topics, "academic"); len(got) != 0 {
		t.Errorf("expected no topic for 'academic', got %d", len(got))
	}
}

func TestFilterResourcesByType(t *testing.T) {
	got := resourceIDs(FilterResourcesByType(testResources(), models.ResourceType_Video))
	if diff := cmp.Diff([]int64{2, 8}, got); diff != "" {
		t.Errorf("video filter mismatch (-want +got):\n%s", diff)
	}
	all := FilterResourcesByType(testResources(), "")
	if len(all) != 4 {
		t.Errorf("expected all 4 resources for empty type, got %d", len(all))
	}
}

func TestHighlight(t *testing.T) {
	got := Highlight("Buy Milk today", "milk")
	want := []models.MatchText{
		{Text: "Buy "},
		{Text: "Milk", Match: true},
		{Text: " today"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Highlight mismatch (-want +got):\n%s", diff)
	}

	if got := Highlight("Milk", "milk"); len(got) != 1 || !got[0].Match {
		t.Errorf("expected a single matched segment, got %v", got)
	}
	if got := Highlight("Bread", "milk"); got != nil {
		t.Errorf("expected nil for no match, got %v", got)
	}
}

func TestHighlightNonASCII(t *testing.T) {
	tests := []struct {
		text  string
		query string
		want  []models.MatchText
	}{
		{
			text:  "İstanbul notes",
			query: "notes",
			want:  []models.MatchText{{Text: "İstanbul "}, {Text: "notes", Match: true}},
		},
		{
			text:  "ẞtraße Kapitel",
			query: "kapitel",
			want:  []models.MatchText{{Text: "ẞtraße "}, {Text: "Kapitel", Match: true}},
		},
		{
			text:  "Über Physik",
			query: "über",
			want:  []models.MatchText{{Text: "Über", Match: true}, {Text: " Physik"}},
		},
		{
			text:  "Notes",
			query: "notes and more",
			want:  nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := Highlight(tt.text, tt.query)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Highlight(%q, %q) mismatch (-want +got):\n%s", tt.text, tt.query, diff)
			}
		})
	}
}
