package log

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNoopBeforeInit(t *testing.T) {
	Reset()
	// must not panic
	Infof(context.Background(), "vote %d", 1)
	Error(context.Background(), "save failed", "err", "boom")
}

func TestOutputs(t *testing.T) {
	defer Reset()
	var info, errs bytes.Buffer
	SetInfoOutput(&info)
	SetErrorOutput(&errs)

	ctx := context.Background()
	Infof(ctx, "toggle task %d", 103)
	Info(ctx, "created thread", "payload", JSON(map[string]string{"title": "Exam prep"}))
	Errorf(ctx, "save library: %v", "disk full")

	if !strings.Contains(info.String(), "toggle task 103") {
		t.Errorf("expected info log to contain toggle line, got %q", info.String())
	}
	if !strings.Contains(info.String(), `payload="{\"title\":\"Exam prep\"}"`) {
		t.Errorf("expected info log to contain json payload, got %q", info.String())
	}
	if !strings.Contains(errs.String(), "disk full") {
		t.Errorf("expected error log to contain error, got %q", errs.String())
	}
	if strings.Contains(info.String(), "disk full") {
		t.Errorf("expected errors to stay out of info log")
	}
}

func TestInitCreatesFiles(t *testing.T) {
	defer Reset()
	dir := t.TempDir()
	if err := Init(dir); err != nil {
		t.Fatal(err)
	}
	Infof(context.Background(), "hello")
	data, err := os.ReadFile(filepath.Join(dir, "info.log"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("expected info.log to contain hello, got %q", string(data))
	}
	if _, err := os.Stat(filepath.Join(dir, "error.log")); err != nil {
		t.Errorf("expected error.log to exist: %v", err)
	}
}

func TestJSONValue(t *testing.T) {
	if JSON(nil) != nil {
		t.Errorf("expected nil for nil")
	}
	v := JSON(map[string]int{"votes": 88})
	if got := fmt.Sprintf("%s", v); got != `{"votes":88}` {
		t.Errorf("expected {\"votes\":88}, got %s", got)
	}
	if got := fmt.Sprint(JSON(v)); got != `{"votes":88}` {
		t.Errorf("expected an existing JSONValue to pass through, got %s", got)
	}
	if got := fmt.Sprint(JSON(make(chan int))); !strings.HasPrefix(got, "<json: ") {
		t.Errorf("expected marshal error text, got %q", got)
	}
}
