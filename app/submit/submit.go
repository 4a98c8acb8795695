package submit

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"sync"

	"github.com/xhd2015/studentlib/log"
)

// ErrBusy is returned by Do while another submission is in flight
var ErrBusy = errors.New("submission in progress")

// SubmitState guards one form submission at a time. On failure the
// pending form is handed back through onRestore so the user can retry.
type SubmitState[T any] struct {
	mutex        sync.RWMutex
	isSubmitting bool
	pending      T
	onRestore    func(form T)
}

func NewSubmitState[T any](onRestore func(form T)) *SubmitState[T] {
	return &SubmitState[T]{
		onRestore: onRestore,
	}
}

func (s *SubmitState[T]) SetOnRestore(onRestore func(form T)) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.onRestore = onRestore
}

func (s *SubmitState[T]) IsSubmitting() bool {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.isSubmitting
}

func (s *SubmitState[T]) begin(form T) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.isSubmitting {
		return false
	}
	s.isSubmitting = true
	s.pending = form
	return true
}

func (s *SubmitState[T]) finish(failed bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if failed && s.onRestore != nil {
		s.onRestore(s.pending)
	}
	var zero T
	s.isSubmitting = false
	s.pending = zero
}

// Do runs fn for form. A returned error or a panic restores the form;
// panics are converted to errors.
func (s *SubmitState[T]) Do(ctx context.Context, form T, fn func(form T) error) (err error) {
	if !s.begin(form) {
		return ErrBusy
	}
	log.Infof(ctx, "submitting %s", log.JSON(form))

	defer func() {
		if e := recover(); e != nil {
			log.Errorf(ctx, "submission panic: %v\nstack trace:\n%s", e, debug.Stack())
			if pe, ok := e.(error); ok {
				err = pe
			} else {
				err = fmt.Errorf("panic: %v", e)
			}
		}
		if err != nil {
			log.Errorf(ctx, "submission error: %v", err)
		}
		s.finish(err != nil)
	}()

	return fn(form)
}
