package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestLogDir_EnvVar(t *testing.T) {
	t.Setenv(EnvHome, "/custom/path")

	want := filepath.Join("/custom/path", "logs")
	if got := LogDir(); got != want {
		t.Errorf("LogDir() = %q, want %q", got, want)
	}
}

func TestLogDir_FollowsEnv(t *testing.T) {
	t.Setenv(EnvHome, "/first")
	first := LogDir()

	t.Setenv(EnvHome, "/second")
	if second := LogDir(); first == second {
		t.Errorf("LogDir() = %q after changing %s, want a new value", second, EnvHome)
	}
}

func TestLogDir_Fallback(t *testing.T) {
	t.Setenv(EnvHome, "")

	got := LogDir()
	if !strings.HasSuffix(got, "logs") {
		t.Errorf("LogDir() = %q, want a logs directory", got)
	}
}
