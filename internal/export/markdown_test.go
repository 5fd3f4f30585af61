package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/YoshiISHIGAMI/weekly-report-kit/internal/diary"
)

// label returns a label from the default table by name.
func label(t *testing.T, name string) diary.Label {
	t.Helper()
	l, ok := diary.LabelByName(diary.DefaultLabels, name)
	if !ok {
		t.Fatalf("label %q missing", name)
	}
	return l
}

// mealsLabel is the synthetic label meal blocks carry.
var mealsLabel = diary.Label{Name: diary.LabelMeals, Key: "食事"}

func ideasEntry(date diary.Date, body ...string) *diary.Entry {
	return &diary.Entry{
		Date: date,
		Sections: []diary.SectionBlock{
			{Label: diary.DefaultLabels[2], Heading: "## ✨ ひらめき", Body: body},
		},
	}
}

func TestFormatDigestIdeas(t *testing.T) {
	agg := diary.NewAggregate()
	agg.Add(ideasEntry(diary.NewDate(2025, 11, 14), "did X today"))

	got := FormatDigest(agg, DigestOptions{Title: DefaultIdeasTitle, Label: diary.LabelIdeas})

	want := "# " + DefaultIdeasTitle + "\n" +
		"## 2025-11-14\n" +
		"```md\ndid X today\n```\n"
	if got != want {
		t.Errorf("FormatDigest =\n%q\nwant\n%q", got, want)
	}
}

func TestFormatDigestDateOrderAndGrouping(t *testing.T) {
	agg := diary.NewAggregate()
	agg.Add(ideasEntry(diary.NewDate(2025, 11, 20), "later"))
	agg.Add(ideasEntry(diary.NewDate(2025, 11, 8), "earlier"))

	got := FormatDigest(agg, DigestOptions{Title: DefaultIdeasTitle, Label: diary.LabelIdeas})

	first := strings.Index(got, "## 2025-11-08")
	second := strings.Index(got, "## 2025-11-20")
	if first == -1 || second == -1 || first > second {
		t.Errorf("dates not in ascending order:\n%s", got)
	}
}

func TestFormatDigestOmitsEmptyDates(t *testing.T) {
	agg := diary.NewAggregate()
	agg.Add(ideasEntry(diary.NewDate(2025, 11, 14), "idea"))
	// An entry whose only ideas block is blank contributes nothing.
	agg.Add(ideasEntry(diary.NewDate(2025, 11, 15), ""))

	got := FormatDigest(agg, DigestOptions{Title: DefaultIdeasTitle, Label: diary.LabelIdeas})

	if strings.Contains(got, "2025-11-15") {
		t.Errorf("date with no renderable blocks must be omitted:\n%s", got)
	}
}

func TestFormatDigestSkipEmptySentinel(t *testing.T) {
	agg := diary.NewAggregate()
	agg.Add(ideasEntry(diary.NewDate(2025, 11, 14), "なし"))

	kept := FormatDigest(agg, DigestOptions{Title: DefaultIdeasTitle, Label: diary.LabelIdeas})
	if !strings.Contains(kept, "なし") {
		t.Errorf("sentinel kept when skip-empty is off:\n%s", kept)
	}

	dropped := FormatDigest(agg, DigestOptions{Title: DefaultIdeasTitle, Label: diary.LabelIdeas, SkipEmpty: true})
	if strings.Contains(dropped, "2025-11-14") {
		t.Errorf("sentinel block should drop the whole date group:\n%s", dropped)
	}
}

func TestFormatDigestMealsMarker(t *testing.T) {
	agg := diary.NewAggregate()
	agg.Add(&diary.Entry{
		Date: diary.NewDate(2025, 11, 14),
		Sections: []diary.SectionBlock{
			{Label: mealsLabel, Heading: "【食事】", Body: []string{"rice"}},
		},
	})

	verbatim := FormatDigest(agg, DigestOptions{Title: DefaultMealsTitle, Label: diary.LabelMeals})
	if !strings.Contains(verbatim, "【食事】\nrice") {
		t.Errorf("marker line should be kept verbatim:\n%s", verbatim)
	}

	stripped := FormatDigest(agg, DigestOptions{Title: DefaultMealsTitle, Label: diary.LabelMeals, StripMarker: true})
	if strings.Contains(stripped, "【食事】") {
		t.Errorf("marker should be stripped:\n%s", stripped)
	}
	if !strings.Contains(stripped, "```md\nrice\n```") {
		t.Errorf("body should survive marker stripping:\n%s", stripped)
	}
}

func TestFormatDigestIdempotent(t *testing.T) {
	agg := diary.NewAggregate()
	agg.Add(ideasEntry(diary.NewDate(2025, 11, 8), "a"))
	agg.Add(ideasEntry(diary.NewDate(2025, 11, 14), "b"))

	opts := DigestOptions{Title: DefaultIdeasTitle, Label: diary.LabelIdeas}
	if FormatDigest(agg, opts) != FormatDigest(agg, opts) {
		t.Error("rendering the same aggregate twice must be byte-identical")
	}
}

func TestFormatBundleGeneratedHeading(t *testing.T) {
	agg := diary.NewAggregate()
	agg.Add(&diary.Entry{
		Date: diary.NewDate(2025, 11, 14),
		Sections: []diary.SectionBlock{
			{Label: label(t, diary.LabelIdeas), Heading: "## ✨ ひらめき", Body: []string{"did X today"}},
		},
	})

	got := FormatBundle(agg, BundleOptions{Labels: diary.DefaultLabels})

	if !strings.HasPrefix(got, "# 2025年11月14日\n") {
		t.Errorf("missing generated date heading:\n%s", got)
	}
	if !strings.Contains(got, "## ✨ ひらめき\ndid X today\n") {
		t.Errorf("section not emitted verbatim:\n%s", got)
	}
}

func TestFormatBundleKeepsOriginalTitle(t *testing.T) {
	agg := diary.NewAggregate()
	agg.Add(&diary.Entry{
		Date:  diary.NewDate(2025, 11, 14),
		Title: "# 2025年11月14日 ClientWork 10h達成 🎉",
	})

	got := FormatBundle(agg, BundleOptions{})

	if !strings.HasPrefix(got, "# 2025年11月14日 ClientWork 10h達成 🎉\n") {
		t.Errorf("original H1 must be kept verbatim:\n%s", got)
	}
}

func TestFormatBundleCanonicalOrder(t *testing.T) {
	// Source document has ideas before the habit log; canonical order
	// puts the habit log first.
	entry := &diary.Entry{
		Date: diary.NewDate(2025, 11, 14),
		Sections: []diary.SectionBlock{
			{Label: label(t, diary.LabelIdeas), Heading: "## ✨ ひらめき", Body: []string{"idea"}},
			{Label: label(t, diary.LabelHabits), Heading: "## 🧪 習慣ログ", Body: []string{"log"}},
		},
	}

	agg := diary.NewAggregate()
	agg.Add(entry)

	canonical := FormatBundle(agg, BundleOptions{Labels: diary.DefaultLabels, Order: OrderCanonical})
	if strings.Index(canonical, "習慣ログ") > strings.Index(canonical, "ひらめき") {
		t.Errorf("canonical order should put the habit log first:\n%s", canonical)
	}

	discovery := FormatBundle(agg, BundleOptions{Labels: diary.DefaultLabels, Order: OrderDiscovery})
	if strings.Index(discovery, "ひらめき") > strings.Index(discovery, "習慣ログ") {
		t.Errorf("discovery order should keep source order:\n%s", discovery)
	}
}

func TestFormatBundleExcludesMealBlocks(t *testing.T) {
	agg := diary.NewAggregate()
	agg.Add(&diary.Entry{
		Date: diary.NewDate(2025, 11, 14),
		Sections: []diary.SectionBlock{
			{Label: label(t, diary.LabelHabits), Heading: "## 🧪 習慣ログ", Body: []string{"【食事】", "rice"}},
			{Label: mealsLabel, Heading: "【食事】", Body: []string{"rice"}},
		},
	})

	got := FormatBundle(agg, BundleOptions{Order: OrderDiscovery})

	// The habit log appears once, whole; the extracted meal block is not
	// duplicated after it.
	if strings.Count(got, "rice") != 1 {
		t.Errorf("meal block leaked into the bundle:\n%s", got)
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "nested", "ideas.md")

	if err := WriteFile(path, "content\n"); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "content\n" {
		t.Errorf("content = %q", data)
	}

	// Overwrite unconditionally.
	if err := WriteFile(path, "replaced\n"); err != nil {
		t.Fatalf("WriteFile overwrite: %v", err)
	}
	data, _ = os.ReadFile(path)
	if string(data) != "replaced\n" {
		t.Errorf("overwritten content = %q", data)
	}
}
