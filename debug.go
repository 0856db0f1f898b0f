package patchdiff

import (
	"fmt"
	"os"
	"strconv"
)

var debugEnabled = boolEnv("PATCHDIFF_DEBUG")

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func (cfg *DiffConfig) debugf(format string, args ...interface{}) {
	if cfg.Logf != nil {
		cfg.Logf(format, args...)
		return
	}
	if debugEnabled {
		fmt.Fprintf(os.Stderr, "patchdiff: "+format+"\n", args...)
	}
}
