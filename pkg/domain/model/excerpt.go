package model

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Excerpt is the set of failure-looking lines found in one extracted
// log file, joined into a single text block.
type Excerpt struct {
	Path string
	Text string
}

// ptnFailure matches lines that usually indicate a failed build step.
// The alternation is case-sensitive on purpose: ERROR and Error are
// separate alternatives and e.g. "error:" from a compiler is excluded.
var ptnFailure = regexp.MustCompile(`ERROR|Error|FAILED|FAIL|Process completed with exit code|deprecated_member_use|Exception|Java heap space`)

// MatchFailureLines returns every line of text that matches the failure
// pattern, in original order, joined by a newline. The second return
// value is false when no line matched.
func MatchFailureLines(text string) (string, bool) {
	if !ptnFailure.MatchString(text) {
		return "", false
	}

	var matched []string
	for _, line := range strings.Split(text, "\n") {
		if ptnFailure.MatchString(line) {
			matched = append(matched, line)
		}
	}
	return strings.Join(matched, "\n"), len(matched) > 0
}

// IsBuildLogPath reports whether an extracted file belongs to the build
// job, judged by its directory path and file name. The directory and
// file name checks are case-sensitive except the "build apk" file name
// check, which ignores case.
func IsBuildLogPath(path string) bool {
	dir := filepath.Dir(path)
	name := filepath.Base(path)

	if strings.Contains(dir, "build-test") || strings.Contains(dir, "analyze-and-test") {
		return true
	}
	if strings.Contains(name, "build-test") {
		return true
	}
	return strings.Contains(strings.ToLower(name), "build apk")
}

// TruncateText cuts s after limit characters. Truncation counts runes
// so a multi-byte character is never split.
func TruncateText(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
