package github

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
)

// ResolvePRNumber reads a GitHub Actions event payload and returns the pull
// request number. It understands pull_request events, issue_comment events
// on a pull request, and workflow_dispatch payloads carrying a bare number.
func ResolvePRNumber(eventPath string) (int, error) {
	if eventPath == "" {
		return 0, fmt.Errorf("event path is empty")
	}
	data, err := os.ReadFile(eventPath)
	if err != nil {
		return 0, fmt.Errorf("read event payload: %w", err)
	}
	return prNumberFromPayload(data)
}

func prNumberFromPayload(data []byte) (int, error) {
	if v := gjson.GetBytes(data, "pull_request.number"); v.Int() > 0 {
		return int(v.Int()), nil
	}
	// issue_comment: only issues that are pull requests qualify
	if gjson.GetBytes(data, "issue.pull_request").Exists() {
		if v := gjson.GetBytes(data, "issue.number"); v.Int() > 0 {
			return int(v.Int()), nil
		}
	}
	if v := gjson.GetBytes(data, "number"); v.Int() > 0 {
		return int(v.Int()), nil
	}
	return 0, fmt.Errorf("event payload carries no pull request number")
}
