package transform

import "github.com/xhd2015/studentlib/models"

const (
	VoteUp   int64 = 1
	VoteDown int64 = -1
)

// AdjustVotes adds delta to the votes of the thread with the given id.
// Votes are not clamped. An unknown id returns threads unchanged.
func AdjustVotes(threads []models.ForumThread, id int64, delta int64) []models.ForumThread {
	idx := indexOf(threads, id, func(t models.ForumThread) int64 { return t.ID })
	if idx < 0 {
		return threads
	}
	return replaceAt(threads, idx, func(t models.ForumThread) models.ForumThread {
		t.Votes += delta
		return t
	})
}

func indexOf[T any](items []T, id int64, getID func(T) int64) int {
	for i, item := range items {
		if getID(item) == id {
			return i
		}
	}
	return -1
}

// replaceAt copies items into a new slice with items[idx] rewritten by fn
func replaceAt[T any](items []T, idx int, fn func(T) T) []T {
	result := make([]T, len(items))
	copy(result, items)
	result[idx] = fn(result[idx])
	return result
}
