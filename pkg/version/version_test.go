package version

import (
	"strings"
	"testing"
)

func TestInfo(t *testing.T) {
	origVersion := Version
	origBuildTime := BuildTime
	origCommit := Commit

	defer func() {
		Version = origVersion
		BuildTime = origBuildTime
		Commit = origCommit
	}()

	Version = "2.1.0"
	BuildTime = "2025-06-01"
	Commit = "abcdef0123456789"

	info := Info()

	if !strings.Contains(info, "2.1.0") {
		t.Errorf("Expected info to contain version, got: %s", info)
	}

	if !strings.Contains(info, "abcdef01") {
		t.Errorf("Expected info to contain commit short SHA, got: %s", info)
	}

	if !strings.Contains(info, "2025-06-01") {
		t.Errorf("Expected info to contain build time, got: %s", info)
	}
}

func TestMap(t *testing.T) {
	m := Map()

	for _, key := range []string{"version", "build_time", "commit", "go_version", "platform"} {
		if _, ok := m[key]; !ok {
			t.Errorf("Expected map to contain key %q", key)
		}
	}
}
