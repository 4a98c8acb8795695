package process

import (
	"os"
	"testing"
)

func TestProcessExists(t *testing.T) {
	alive, err := ProcessExists(os.Getpid())
	if err != nil {
		t.Fatal(err)
	}
	if !alive {
		t.Errorf("expected current process to be alive")
	}

	alive, err = ProcessExists(0)
	if err != nil || alive {
		t.Errorf("expected pid 0 to be reported dead, got %v, %v", alive, err)
	}
}

func TestCheckSingleInstance(t *testing.T) {
	if err := CheckSingleInstance(0); err != nil {
		t.Errorf("expected no error for unset pid, got %v", err)
	}
	if err := CheckSingleInstance(os.Getpid()); err != nil {
		t.Errorf("expected own pid to be accepted, got %v", err)
	}
}
