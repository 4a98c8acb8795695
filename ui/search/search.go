package search

import (
	"strings"
	"unicode/utf8"

	"github.com/xhd2015/studentlib/models"
)

// Field selects one searchable text of a record
type Field[T any] func(item T) string

var ResourceFields = []Field[models.Resource]{
	func(r models.Resource) string { return r.Title },
	func(r models.Resource) string { return r.Author },
	func(r models.Resource) string { return r.Subject },
	func(r models.Resource) string { return r.Class },
}

var TopicFields = []Field[models.ForumTopic]{
	func(t models.ForumTopic) string { return t.Title },
	func(t models.ForumTopic) string { return t.Description },
}

var ThreadFields = []Field[models.ForumThread]{
	func(t models.ForumThread) string { return t.Title },
	func(t models.ForumThread) string { return t.Author },
	func(t models.ForumThread) string { return t.Category },
}

var PlanFields = []Field[models.StudyPlan]{
	func(p models.StudyPlan) string { return p.Title },
	func(p models.StudyPlan) string { return p.Subject },
}

// Filter returns the items where at least one field contains query,
// ignoring case. An empty query returns items itself.
func Filter[T any](items []T, query string, fields ...Field[T]) []T {
	if query == "" {
		return items
	}
	query = strings.ToLower(query)

	filtered := make([]T, 0, len(items))
	for _, item := range items {
		if Matches(item, query, fields...) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// Matches expects query to be lowercased already
func Matches[T any](item T, query string, fields ...Field[T]) bool {
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field(item)), query) {
			return true
		}
	}
	return false
}

func FilterResources(resources []models.Resource, query string) []models.Resource {
	return Filter(resources, query, ResourceFields...)
}

func FilterTopics(topics []models.ForumTopic, query string) []models.ForumTopic {
	return Filter(topics, query, TopicFields...)
}

func FilterThreads(threads []models.ForumThread, query string) []models.ForumThread {
	return Filter(threads, query, ThreadFields...)
}

func FilterPlans(plans []models.StudyPlan, query string) []models.StudyPlan {
	return Filter(plans, query, PlanFields...)
}

// FilterResourcesByType keeps resources of the given type, an empty type keeps all
func FilterResourcesByType(resources []models.Resource, typ models.ResourceType) []models.Resource {
	if typ == "" {
		return resources
	}
	filtered := make([]models.Resource, 0, len(resources))
	for _, r := range resources {
		if r.Type == typ {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// Highlight splits text around the first case-insensitive occurrence of query.
// Returns nil when there is no match.
func Highlight(text string, query string) []models.MatchText {
	if query == "" {
		return nil
	}
	start, end, ok := indexFold(text, query)
	if !ok {
		return nil
	}
	var matchTexts []models.MatchText
	if start > 0 {
		matchTexts = append(matchTexts, models.MatchText{Text: text[:start]})
	}
	matchTexts = append(matchTexts, models.MatchText{Text: text[start:end], Match: true})
	if end < len(text) {
		matchTexts = append(matchTexts, models.MatchText{Text: text[end:]})
	}
	return matchTexts
}

// indexFold returns the byte range in text of the first window that
// equals query under case folding. Windows span as many runes as query,
// so the offsets stay valid when case changes the byte length of a rune.
func indexFold(text string, query string) (start int, end int, ok bool) {
	n := utf8.RuneCountInString(query)
	for i := range text {
		j := i
		for k := 0; k < n && j < len(text); k++ {
			_, size := utf8.DecodeRuneInString(text[j:])
			j += size
		}
		if strings.EqualFold(text[i:j], query) {
			return i, j, true
		}
		if j == len(text) {
			break
		}
	}
	return 0, 0, false
}
