package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// runCommand executes the root command with args and returns stdout and
// stderr contents.
func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestExtractIdeas(t *testing.T) {
	src := writeJournal(t)
	ideasOut := filepath.Join(t.TempDir(), "ideas.md")

	stdout, _, err := runCommand(t, "extract", "--src", src, "--ideas-out", ideasOut)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if !strings.Contains(stdout, "Wrote "+ideasOut) {
		t.Errorf("summary missing written path: %q", stdout)
	}

	content, readErr := os.ReadFile(ideasOut)
	if readErr != nil {
		t.Fatalf("reading digest: %v", readErr)
	}
	digest := string(content)

	if !strings.HasPrefix(digest, "# ✨ ひらめき（抽出）\n") {
		t.Errorf("digest should open with the default title:\n%s", digest)
	}
	if !strings.Contains(digest, "## 2025-11-14") || !strings.Contains(digest, "## 2025-11-20") {
		t.Errorf("digest missing date headings:\n%s", digest)
	}
	if !strings.Contains(digest, "```md\ncache the parse step\n```") {
		t.Errorf("digest missing fenced ideas block:\n%s", digest)
	}
	if strings.Contains(digest, "no date here") {
		t.Errorf("undated document leaked into the digest:\n%s", digest)
	}
}

func TestExtractIdeasSkipEmpty(t *testing.T) {
	src := writeJournal(t)
	ideasOut := filepath.Join(t.TempDir(), "ideas.md")

	_, _, err := runCommand(t, "extract", "--src", src, "--ideas-out", ideasOut, "--skip-empty")
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}

	content, _ := os.ReadFile(ideasOut)
	digest := string(content)

	// The 20th's only ideas block is the なし sentinel; its date heading
	// must disappear with it.
	if strings.Contains(digest, "## 2025-11-20") {
		t.Errorf("sentinel-only date should be skipped:\n%s", digest)
	}
	if !strings.Contains(digest, "## 2025-11-14") {
		t.Errorf("non-empty date dropped:\n%s", digest)
	}
}

func TestExtractMeals(t *testing.T) {
	src := writeJournal(t)
	mealsOut := filepath.Join(t.TempDir(), "meals.md")

	_, _, err := runCommand(t, "extract", "--src", src, "--meals-out", mealsOut)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}

	content, _ := os.ReadFile(mealsOut)
	digest := string(content)

	if !strings.Contains(digest, "【食事】") {
		t.Errorf("meal marker should be kept by default:\n%s", digest)
	}
	if !strings.Contains(digest, "rice and soup") {
		t.Errorf("meal body missing:\n%s", digest)
	}
	if strings.Contains(digest, "7h") {
		t.Errorf("sibling bracket block leaked into meals:\n%s", digest)
	}
}

func TestExtractMealsStripMarker(t *testing.T) {
	src := writeJournal(t)
	mealsOut := filepath.Join(t.TempDir(), "meals.md")

	_, _, err := runCommand(t, "extract", "--src", src, "--meals-out", mealsOut, "--strip-marker")
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}

	content, _ := os.ReadFile(mealsOut)
	if strings.Contains(string(content), "【食事】") {
		t.Errorf("marker should be stripped:\n%s", content)
	}
}

func TestExtractBothDigests(t *testing.T) {
	src := writeJournal(t)
	dir := t.TempDir()
	ideasOut := filepath.Join(dir, "ideas.md")
	mealsOut := filepath.Join(dir, "meals.md")

	stdout, _, err := runCommand(t, "--json", "extract",
		"--src", src, "--ideas-out", ideasOut, "--meals-out", mealsOut)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}

	var result map[string]any
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("JSON output invalid: %v\n%s", err, stdout)
	}
	if result["entries"].(float64) != 2 {
		t.Errorf("entries = %v, want 2", result["entries"])
	}
	if result["undated"].(float64) != 1 {
		t.Errorf("undated = %v, want 1", result["undated"])
	}
	written, ok := result["written"].([]any)
	if !ok || len(written) != 2 {
		t.Errorf("written = %v, want both paths", result["written"])
	}
}

func TestExtractWeekWindow(t *testing.T) {
	src := writeJournal(t)
	ideasOut := filepath.Join(t.TempDir(), "ideas.md")

	stdout, _, err := runCommand(t, "extract", "--src", src, "--ideas-out", ideasOut, "--week", "2025-11-10")
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if !strings.Contains(stdout, "date window 2025-11-10 .. 2025-11-16") {
		t.Errorf("active window should be echoed in the summary: %q", stdout)
	}

	content, _ := os.ReadFile(ideasOut)
	if strings.Contains(string(content), "2025-11-20") {
		t.Errorf("out-of-window date rendered:\n%s", content)
	}
}

func TestExtractRequiresAnOutput(t *testing.T) {
	src := writeJournal(t)

	_, _, err := runCommand(t, "extract", "--src", src)
	if err == nil {
		t.Fatal("extract without an output path should fail")
	}
}

func TestExtractMissingSource(t *testing.T) {
	ideasOut := filepath.Join(t.TempDir(), "ideas.md")

	_, _, err := runCommand(t, "extract",
		"--src", filepath.Join(t.TempDir(), "nope"), "--ideas-out", ideasOut)
	if err == nil {
		t.Fatal("extract against a missing source should fail")
	}
}

func TestExtractIdempotent(t *testing.T) {
	src := writeJournal(t)
	ideasOut := filepath.Join(t.TempDir(), "ideas.md")

	if _, _, err := runCommand(t, "extract", "--src", src, "--ideas-out", ideasOut); err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	first, _ := os.ReadFile(ideasOut)

	if _, _, err := runCommand(t, "extract", "--src", src, "--ideas-out", ideasOut); err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	second, _ := os.ReadFile(ideasOut)

	if !bytes.Equal(first, second) {
		t.Error("repeated runs over the same source should produce identical output")
	}
}
