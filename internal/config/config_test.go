package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigFilesUnderHome(t *testing.T) {
	home := filepath.Join(t.TempDir(), "home")
	t.Setenv("STUDENTLIB_HOME", home)

	tests := []struct {
		name string
		get  func() (string, error)
		want string
	}{
		{"library", GetLibraryJSONFile, "library.json"},
		{"config", GetConfigJSONFile, "config.json"},
		{"sqlite", GetSqliteFile, "studentlib.db"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.get()
			if err != nil {
				t.Fatal(err)
			}
			if want := filepath.Join(home, tt.want); got != want {
				t.Errorf("expected %s, got %s", want, got)
			}
		})
	}

	logDir, err := GetLogDir()
	if err != nil {
		t.Fatal(err)
	}
	if st, err := os.Stat(logDir); err != nil || !st.IsDir() {
		t.Errorf("expected log dir %s to exist, err=%v", logDir, err)
	}
}
