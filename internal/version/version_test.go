package version

import (
	"runtime"
	"strings"
	"testing"
)

func TestGetVersionString(t *testing.T) {
	oldVersion, oldCommit, oldBuild := Version, Commit, BuildTime
	t.Cleanup(func() { Version, Commit, BuildTime = oldVersion, oldCommit, oldBuild })

	Version, Commit, BuildTime = "v1.2.3", "abc1234", "2026-01-02T12:10:00Z"

	want := "apigen version v1.2.3 (commit abc1234, built 2026-01-02T12:10:00Z)"
	if got := GetVersionString(); got != want {
		t.Errorf("GetVersionString() = %q, want %q", got, want)
	}
}

func TestGetFullVersionInfo(t *testing.T) {
	info := GetFullVersionInfo()

	if !strings.HasPrefix(info, GetVersionString()+"\n") {
		t.Errorf("Expected version line first, got %q", info)
	}
	if !strings.Contains(info, runtime.Version()) {
		t.Errorf("Expected go version in %q", info)
	}
}

func TestGetInfo(t *testing.T) {
	info := GetInfo()
	if info.Version != Version || info.Platform != runtime.GOOS+"/"+runtime.GOARCH {
		t.Errorf("Unexpected info: %+v", info)
	}
}
