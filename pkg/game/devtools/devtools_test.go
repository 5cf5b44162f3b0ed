package devtools

import (
	"bytes"
	"math/rand"
	"os"
	"strings"
	"testing"

	"alphapoint/pkg/engine/world"
	"alphapoint/pkg/game/content"
	"alphapoint/pkg/game/level"
)

func testingLevel(t *testing.T) *level.Level {
	t.Helper()
	c, err := content.Default()
	if err != nil {
		t.Fatalf("content.Default() error = %v", err)
	}
	lvl, err := level.Load(c, -1, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("level.Load(-1) error = %v", err)
	}
	return lvl
}

func TestWriteMap_Testing(t *testing.T) {
	var buf bytes.Buffer
	WriteMap(&buf, testingLevel(t), world.At(-1, -1))

	want := strings.Join([]string{
		"##I#D",
		"#I.#.",
		".*...",
		"S###.",
		"D###I",
	}, "\n") + "\n"
	if buf.String() != want {
		t.Errorf("WriteMap() =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestDescribeSystem_ReportsUnmetDependency(t *testing.T) {
	var buf bytes.Buffer
	DescribeSystem(&buf, testingLevel(t))
	out := buf.String()

	for _, want := range []string{
		`2 "exit door" type: door at: (4, 0) enabled: true active: false`,
		"needs device 1 active=true (unmet)",
		"lethal when active=true lethal_now: false",
		`<- interface 3 "exit door button"`,
		"interface 4 -> device 4",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("DescribeSystem() missing %q", want)
		}
	}
}

func TestDumpLevelToFile(t *testing.T) {
	dir := t.TempDir()
	path, err := DumpLevelToFile(dir, testingLevel(t), world.At(0, 3))
	if err != nil {
		t.Fatalf("DumpLevelToFile() error = %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(raw), "=== LEVEL -1: Testing ===") || !strings.Contains(string(raw), "@") {
		t.Errorf("dump missing header or player marker:\n%s", raw)
	}
}

func TestDescribeBindings(t *testing.T) {
	var buf bytes.Buffer
	DescribeBindings(&buf)
	out := buf.String()

	for _, want := range []string{
		"Move Up      arrow_up, k, up, w",
		"Quit         escape, q, quit",
		"Select       0-9...",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("DescribeBindings() missing %q in\n%s", want, out)
		}
	}
}
