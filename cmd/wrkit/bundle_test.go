package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBundle(t *testing.T) {
	src := writeJournal(t)
	out := filepath.Join(t.TempDir(), "weekly.md")

	_, _, err := runCommand(t, "bundle", "--src", src, "--out", out)
	if err != nil {
		t.Fatalf("bundle failed: %v", err)
	}

	content, readErr := os.ReadFile(out)
	if readErr != nil {
		t.Fatalf("reading bundle: %v", readErr)
	}
	bundle := string(content)

	if !strings.Contains(bundle, "# 2025年11月14日 金曜") {
		t.Errorf("original H1 should be carried verbatim:\n%s", bundle)
	}
	if !strings.Contains(bundle, "# 2025年11月20日") {
		t.Errorf("generated heading missing for titleless entry:\n%s", bundle)
	}
	if strings.Contains(bundle, "untitled memo") {
		t.Errorf("undated document leaked into the bundle:\n%s", bundle)
	}
	if !strings.HasSuffix(bundle, "\n") || strings.HasSuffix(bundle, "\n\n") {
		t.Errorf("bundle should end with exactly one newline:\n%q", bundle[len(bundle)-4:])
	}
}

func TestBundleCanonicalOrder(t *testing.T) {
	// Source lists ideas before the habit log; canonical order flips them.
	dir := t.TempDir()
	doc := "# 2025年11月14日\n\n## ✨ ひらめき\nidea first in source\n\n## 🧪 習慣ログ\n【食事】\nrice\n"
	if err := os.WriteFile(filepath.Join(dir, "day.md"), []byte(doc), 0o600); err != nil {
		t.Fatalf("writing doc: %v", err)
	}
	out := filepath.Join(t.TempDir(), "weekly.md")

	_, _, err := runCommand(t, "bundle", "--src", dir, "--out", out)
	if err != nil {
		t.Fatalf("bundle failed: %v", err)
	}

	content, _ := os.ReadFile(out)
	bundle := string(content)

	habitsAt := strings.Index(bundle, "習慣ログ")
	ideasAt := strings.Index(bundle, "ひらめき")
	if habitsAt < 0 || ideasAt < 0 || habitsAt > ideasAt {
		t.Errorf("canonical order should put the habit log first:\n%s", bundle)
	}
}

func TestBundleDiscoveryOrder(t *testing.T) {
	dir := t.TempDir()
	doc := "# 2025年11月14日\n\n## ✨ ひらめき\nidea first in source\n\n## 🧪 習慣ログ\nstretching\n"
	if err := os.WriteFile(filepath.Join(dir, "day.md"), []byte(doc), 0o600); err != nil {
		t.Fatalf("writing doc: %v", err)
	}
	out := filepath.Join(t.TempDir(), "weekly.md")

	_, _, err := runCommand(t, "bundle", "--src", dir, "--out", out, "--order", "discovery")
	if err != nil {
		t.Fatalf("bundle failed: %v", err)
	}

	content, _ := os.ReadFile(out)
	bundle := string(content)

	habitsAt := strings.Index(bundle, "習慣ログ")
	ideasAt := strings.Index(bundle, "ひらめき")
	if habitsAt < 0 || ideasAt < 0 || ideasAt > habitsAt {
		t.Errorf("discovery order should keep the source arrangement:\n%s", bundle)
	}
}

func TestBundleBadOrder(t *testing.T) {
	src := writeJournal(t)
	out := filepath.Join(t.TempDir(), "weekly.md")

	_, _, err := runCommand(t, "bundle", "--src", src, "--out", out, "--order", "alphabetical")
	if err == nil {
		t.Fatal("unknown --order value should fail")
	}
}

func TestBundleWeekWindow(t *testing.T) {
	src := writeJournal(t)
	out := filepath.Join(t.TempDir(), "weekly.md")

	_, _, err := runCommand(t, "bundle", "--src", src, "--out", out, "--week", "2025-11-17")
	if err != nil {
		t.Fatalf("bundle failed: %v", err)
	}

	content, _ := os.ReadFile(out)
	bundle := string(content)

	if strings.Contains(bundle, "2025年11月14日") {
		t.Errorf("out-of-window entry rendered:\n%s", bundle)
	}
	if !strings.Contains(bundle, "2025年11月20日") {
		t.Errorf("in-window entry missing:\n%s", bundle)
	}
}

func TestBundleSpellingVariantHeading(t *testing.T) {
	// The source uses the long spelling 振り返り; it must still be captured
	// and carried into the bundle verbatim.
	src := writeJournal(t)
	out := filepath.Join(t.TempDir(), "weekly.md")

	_, _, err := runCommand(t, "bundle", "--src", src, "--out", out)
	if err != nil {
		t.Fatalf("bundle failed: %v", err)
	}

	content, _ := os.ReadFile(out)
	if !strings.Contains(string(content), "## 🚧 振り返り・分析・改善点") {
		t.Errorf("variant-spelled section missing from bundle:\n%s", content)
	}
}
