package process

import (
	"errors"
	"fmt"
	"os"

	"github.com/shirou/gopsutil/v3/process"
)

// ErrAlreadyRunning is returned by CheckSingleInstance when the recorded
// pid belongs to a live process other than the current one
var ErrAlreadyRunning = errors.New("another studentlib instance is running")

// CheckSingleInstance reports ErrAlreadyRunning if recordedPID is alive.
// A stale or zero pid is not an error.
func CheckSingleInstance(recordedPID int) error {
	if recordedPID == os.Getpid() {
		return nil
	}
	alive, err := ProcessExists(recordedPID)
	if err != nil {
		return err
	}
	if alive {
		return fmt.Errorf("%w (pid %d)", ErrAlreadyRunning, recordedPID)
	}
	return nil
}

func ProcessExists(pid int) (bool, error) {
	if pid <= 0 {
		return false, nil
	}
	p, err := process.NewProcess(int32(pid))
	if err != nil {
		if errors.Is(err, process.ErrorProcessNotRunning) {
			return false, nil
		}
		return false, fmt.Errorf("failed to find process: %v", err)
	}
	isRunning, err := p.IsRunning()
	if err != nil {
		return false, fmt.Errorf("failed to check if process is running: %v", err)
	}
	return isRunning, nil
}
