package states

import "testing"

func TestMutexMapToggle(t *testing.T) {
	m := NewMutexMap()
	if m.Get(1) {
		t.Fatalf("expected unset key to be false")
	}
	m.Toggle(1)
	if !m.Get(1) {
		t.Errorf("expected key 1 to be true after toggle")
	}
	m.Toggle(1)
	if m.Get(1) {
		t.Errorf("expected key 1 to be false after second toggle")
	}

	m.Set(2, true)
	snapshot := m.Copy()
	m.Set(2, false)
	if !snapshot[2] {
		t.Errorf("expected copy to be independent of later writes")
	}
}

func TestPageNext(t *testing.T) {
	page := PageType_Dashboard
	seen := map[PageType]bool{}
	for i := 0; i < len(Pages); i++ {
		seen[page] = true
		page = page.Next()
	}
	if page != PageType_Dashboard {
		t.Errorf("expected to cycle back to dashboard, got %v", page)
	}
	if len(seen) != len(Pages) {
		t.Errorf("expected %d distinct pages, got %d", len(Pages), len(seen))
	}
}
