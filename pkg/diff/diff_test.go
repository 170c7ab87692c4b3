package diff

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnifiedIdenticalContent(t *testing.T) {
	t.Parallel()

	content := []byte("line1\nline2\nline3\n")
	require.Empty(t, Unified(content, content, "a", "b"))
}

func TestUnifiedSingleLineChange(t *testing.T) {
	t.Parallel()

	before := []byte("line1\nline2\nline3\n")
	after := []byte("line1\nmodified\nline3\n")

	got := Unified(before, after, "eerie-theme.json (on disk)", "eerie-theme.json (generated)")
	want := strings.Join([]string{
		"--- eerie-theme.json (on disk)",
		"+++ eerie-theme.json (generated)",
		"@@ -1,3 +1,3 @@",
		" line1",
		"-line2",
		"+modified",
		" line3",
		"",
	}, "\n")
	require.Equal(t, want, got)
}

func TestUnifiedSeparatesDistantHunks(t *testing.T) {
	t.Parallel()

	var before, after []string
	for i := 1; i <= 20; i++ {
		before = append(before, fmt.Sprintf("line%d", i))
		after = append(after, fmt.Sprintf("line%d", i))
	}
	after[1] = "changed2"
	after[17] = "changed18"

	got := UnifiedContext([]byte(strings.Join(before, "\n")+"\n"), []byte(strings.Join(after, "\n")+"\n"), "a", "b", 1)

	require.Equal(t, 2, strings.Count(got, "@@ -"))
	require.Contains(t, got, "@@ -1,3 +1,3 @@")
	require.Contains(t, got, "@@ -17,3 +17,3 @@")
	require.Contains(t, got, "-line2\n+changed2\n")
	require.Contains(t, got, "-line18\n+changed18\n")
	require.NotContains(t, got, " line10")
}

func TestUnifiedPureInsertion(t *testing.T) {
	t.Parallel()

	got := Unified(nil, []byte("a\nb\n"), "missing", "generated")
	require.Contains(t, got, "@@ -0,0 +1,2 @@")
	require.Contains(t, got, "+a\n+b\n")
}

func TestUnifiedTruncatesLargeDiffs(t *testing.T) {
	t.Parallel()

	var before, after strings.Builder
	for i := 0; i < 6000; i++ {
		fmt.Fprintf(&before, "old%d\n", i)
		fmt.Fprintf(&after, "new%d\n", i)
	}

	got := Unified([]byte(before.String()), []byte(after.String()), "a", "b")
	require.True(t, strings.HasSuffix(got, truncateMessage+"\n"))
	require.LessOrEqual(t, len(strings.Split(got, "\n")), maxDiffLines+2)
}
