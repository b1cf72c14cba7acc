package review

import (
	"strings"
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

const approxCharsPerToken = 4

var (
	tokenEncoderOnce sync.Once
	tokenEncoder     *tiktoken.Tiktoken

	estimateTokensFunc = defaultEstimateTokens
)

func estimateTokens(text string) int {
	return estimateTokensFunc(text)
}

func defaultEstimateTokens(text string) int {
	if enc := getTokenEncoder(); enc != nil {
		if tokens := enc.Encode(text, nil, nil); len(tokens) > 0 {
			return len(tokens)
		}
	}
	n := len(text) / approxCharsPerToken
	if n < 1 {
		n = 1
	}
	return n
}

func getTokenEncoder() *tiktoken.Tiktoken {
	tokenEncoderOnce.Do(func() {
		enc, err := tiktoken.EncodingForModel("gpt-4o")
		if err != nil {
			enc, _ = tiktoken.GetEncoding("cl100k_base")
		}
		tokenEncoder = enc
	})
	return tokenEncoder
}

const truncationNotice = "... (diff truncated to fit the model context window)"

// TruncateDiff bounds diff text to roughly maxTokens. Cuts happen only at
// "diff --git" file boundaries so the fenced excerpt never stops inside a
// file block; a notice line is appended whenever content is dropped.
// maxTokens <= 0 disables truncation.
func TruncateDiff(text string, maxTokens int) string {
	if maxTokens <= 0 || estimateTokens(text) <= maxTokens {
		return text
	}

	budget := maxTokens
	var kept []string
	for _, block := range splitFileBlocks(text) {
		cost := estimateTokens(block)
		if cost > budget {
			break
		}
		kept = append(kept, block)
		budget -= cost
	}

	if len(kept) == 0 {
		// even the first file block overflows; keep a raw prefix
		limit := maxTokens * approxCharsPerToken
		if limit > len(text) {
			limit = len(text)
		}
		return text[:limit] + "\n" + truncationNotice
	}

	out := strings.Join(kept, "")
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out + truncationNotice
}

// splitFileBlocks cuts diff text at "diff --git" headers, keeping each header
// with the block it introduces. Text before the first header forms its own
// block.
func splitFileBlocks(text string) []string {
	var (
		blocks []string
		cur    strings.Builder
	)
	for _, line := range strings.SplitAfter(text, "\n") {
		if strings.HasPrefix(line, "diff --git ") && cur.Len() > 0 {
			blocks = append(blocks, cur.String())
			cur.Reset()
		}
		cur.WriteString(line)
	}
	if cur.Len() > 0 {
		blocks = append(blocks, cur.String())
	}
	return blocks
}
