package config

import (
	"os"
	"strconv"
	"strings"
)

// EnvList reads a comma separated list. Blank items are dropped; a blank variable yields def.
func EnvList(name string, def []string) []string {
	raw := os.Getenv(name)
	if strings.TrimSpace(raw) == "" {
		return def
	}
	return SplitList(raw)
}

// EnvInt reads a positive integer. Missing, malformed and non-positive values yield def.
func EnvInt(name string, def int) int {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return def
	}
	return v
}

// EnvString reads a trimmed string, falling back to def when blank.
func EnvString(name, def string) string {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		return v
	}
	return def
}

// SplitList splits a comma separated list, trimming items and dropping blanks.
func SplitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
