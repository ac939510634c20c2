package version_test

import (
	"fmt"
	"runtime"
	"strings"
	"testing"

	"github.com/ludo-technologies/empdash/internal/version"
)

func TestShort(t *testing.T) {
	if version.Short() == "" {
		t.Error("Short() should return non-empty string")
	}
}

func TestInfoFormat(t *testing.T) {
	lines := strings.Split(version.Info(), "\n")

	if len(lines) < 5 {
		t.Fatalf("Info() should contain 5 lines, got %d", len(lines))
	}

	expectedPrefixes := []string{"empdash ", "Commit:", "Built:", "Go:", "OS/Arch:"}
	for i, prefix := range expectedPrefixes {
		if !strings.HasPrefix(lines[i], prefix) {
			t.Errorf("line %d should start with %q, got %q", i+1, prefix, lines[i])
		}
	}

	expectedArch := runtime.GOOS + "/" + runtime.GOARCH
	if !strings.Contains(lines[4], expectedArch) {
		t.Errorf("Info() should contain OS/Arch %s", expectedArch)
	}
}

func TestInfoIncludesBuildMetadata(t *testing.T) {
	info := version.Info()

	expected := []string{
		fmt.Sprintf("empdash %s", version.Version),
		fmt.Sprintf("Commit: %s", version.Commit),
		fmt.Sprintf("Built: %s", version.Date),
	}
	for _, want := range expected {
		if !strings.Contains(info, want) {
			t.Errorf("Info() output missing %q", want)
		}
	}
}

func TestBuild(t *testing.T) {
	b := version.Build()

	if b.Name != version.Name || b.Version != version.Version {
		t.Errorf("unexpected build info: %+v", b)
	}
	if b.Go != runtime.Version() {
		t.Errorf("Build().Go = %q, want %q", b.Go, runtime.Version())
	}
	if got := version.ServerHeader(); got != "empdash/"+version.Version {
		t.Errorf("ServerHeader() = %q", got)
	}
}
