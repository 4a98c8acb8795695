package seed

import "testing"

func TestLibrary(t *testing.T) {
	lib := Library()

	if len(lib.Resources) != 8 {
		t.Errorf("expected 8 resources, got %d", len(lib.Resources))
	}
	if len(lib.Topics) != 5 {
		t.Errorf("expected 5 topics, got %d", len(lib.Topics))
	}
	if len(lib.RecentThreads) != 4 || len(lib.PopularThreads) != 4 {
		t.Errorf("expected 4 recent and 4 popular threads, got %d and %d", len(lib.RecentThreads), len(lib.PopularThreads))
	}

	wantProgress := map[int64]int{1: 40, 2: 40, 3: 33}
	for _, plan := range lib.Plans {
		if plan.Progress != wantProgress[plan.ID] {
			t.Errorf("plan %d: expected progress %d, got %d", plan.ID, wantProgress[plan.ID], plan.Progress)
		}
	}
}

func TestLibraryReturnsFreshCopies(t *testing.T) {
	a := Library()
	a.RecentThreads[0].Votes = 1000
	b := Library()
	if b.RecentThreads[0].Votes != 12 {
		t.Errorf("expected seed to be unaffected by edits, got %d votes", b.RecentThreads[0].Votes)
	}
}

func TestMaxID(t *testing.T) {
	if got := MaxID(Library()); got != 306 {
		t.Errorf("expected max id 306, got %d", got)
	}
}
