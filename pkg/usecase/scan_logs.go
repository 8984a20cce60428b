package usecase

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/tbmobb813/ciwatch/pkg/domain/model"
)

// scanForFailures walks the extracted log tree and collects failure
// excerpts from files that belong to the build job. Files that cannot
// be read are skipped so one broken file never aborts the scan; bytes
// that are not valid UTF-8 are replaced, never fatal.
func scanForFailures(dir string) []*model.Excerpt {
	var excerpts []*model.Excerpt

	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if !model.IsBuildLogPath(path) {
			return nil
		}

		raw, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return nil
		}
		text := strings.ToValidUTF8(string(raw), "�")

		if matched, ok := model.MatchFailureLines(text); ok {
			excerpts = append(excerpts, &model.Excerpt{Path: path, Text: matched})
		}
		return nil
	})

	return excerpts
}
