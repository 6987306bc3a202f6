package config

import (
	"os"
	"path/filepath"
)

// EnvHome overrides where relative log files are written.
const EnvHome = "XCUITREE_HOME"

// LogDir returns the directory that relative LogFile values resolve against:
// $XCUITREE_HOME/logs when set, else xcuitree/logs in the user cache dir,
// else ./logs. It is resolved on every call and never created here.
func LogDir() string {
	if home := os.Getenv(EnvHome); home != "" {
		return filepath.Join(home, "logs")
	}
	if cache, err := os.UserCacheDir(); err == nil {
		return filepath.Join(cache, "xcuitree", "logs")
	}
	return "logs"
}
