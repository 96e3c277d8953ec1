package buildinfo

import (
	"runtime/debug"
	"strings"
	"testing"
)

func restore(t *testing.T) {
	v, c, d := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = v, c, d })
}

func TestFillFrom(t *testing.T) {
	tests := []struct {
		name       string
		preset     string
		main       string
		wantVer    string
		wantCommit string
	}{
		{"module version", "dev", "v0.4.0", "v0.4.0", "abc123"},
		{"devel keeps dev", "dev", "(devel)", "dev", "abc123"},
		{"ldflags win", "v1.0.0", "v0.4.0", "v1.0.0", "abc123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restore(t)
			Version, Commit, Date = tt.preset, "none", "unknown"
			fillFrom(&debug.BuildInfo{
				Main: debug.Module{Version: tt.main},
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "abc123"},
					{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
				},
			})
			if Version != tt.wantVer {
				t.Errorf("Version = %q, want %q", Version, tt.wantVer)
			}
			if Commit != tt.wantCommit {
				t.Errorf("Commit = %q, want %q", Commit, tt.wantCommit)
			}
			if Date != "2026-01-02T03:04:05Z" {
				t.Errorf("Date = %q", Date)
			}
		})
	}
}

func TestTemplate(t *testing.T) {
	restore(t)
	Commit, Date = "abc123", "today"
	got := Template()
	for _, want := range []string{"{{.Version}}", "commit: abc123", "built: today"} {
		if !strings.Contains(got, want) {
			t.Errorf("Template() = %q, lacks %q", got, want)
		}
	}
	if !strings.Contains(String(), "commit: abc123") {
		t.Errorf("String() = %q", String())
	}
}
