package review

import (
	"strings"
	"testing"
)

func withCharTokens(t *testing.T) {
	t.Helper()
	old := estimateTokensFunc
	estimateTokensFunc = func(text string) int { return len(text) }
	t.Cleanup(func() { estimateTokensFunc = old })
}

func TestTruncateDiff_UnderBudgetUnchanged(t *testing.T) {
	withCharTokens(t)
	diff := "diff --git a/a.go b/a.go\n+x\n"
	if got := TruncateDiff(diff, 1000); got != diff {
		t.Fatalf("diff under budget was modified")
	}
}

func TestTruncateDiff_CutsAtFileBoundary(t *testing.T) {
	withCharTokens(t)
	first := "diff --git a/a.go b/a.go\n+aaaa\n"
	second := "diff --git a/b.go b/b.go\n+bbbb\n"
	got := TruncateDiff(first+second, len(first)+5)

	if !strings.Contains(got, "a/a.go") {
		t.Fatalf("first file block missing:\n%s", got)
	}
	if strings.Contains(got, "b.go") {
		t.Fatalf("second file block should have been dropped:\n%s", got)
	}
	if !strings.HasSuffix(got, truncationNotice) {
		t.Fatalf("truncation notice missing:\n%s", got)
	}
}

func TestTruncateDiff_OversizedFirstBlockKeepsPrefix(t *testing.T) {
	old := estimateTokensFunc
	estimateTokensFunc = func(text string) int { return len(text) / approxCharsPerToken }
	defer func() { estimateTokensFunc = old }()

	diff := "diff --git a/a.go b/a.go\n" + strings.Repeat("+line\n", 100)
	got := TruncateDiff(diff, 10)
	if !strings.HasSuffix(got, truncationNotice) {
		t.Fatalf("truncation notice missing:\n%s", got)
	}
	if len(got) >= len(diff) {
		t.Fatalf("oversized block was not shortened")
	}
}

func TestTruncateDiff_DisabledBudget(t *testing.T) {
	withCharTokens(t)
	diff := strings.Repeat("x", 10_000)
	if got := TruncateDiff(diff, 0); got != diff {
		t.Fatalf("budget 0 should disable truncation")
	}
}

func TestSplitFileBlocks(t *testing.T) {
	text := "preamble\ndiff --git a/a b/a\n+x\ndiff --git a/b b/b\n-y\n"
	blocks := splitFileBlocks(text)
	if len(blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(blocks))
	}
	if blocks[0] != "preamble\n" {
		t.Fatalf("unexpected leading block %q", blocks[0])
	}
	if strings.Join(blocks, "") != text {
		t.Fatalf("blocks do not reassemble the input")
	}
}
