package usecase

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/tbmobb813/ciwatch/pkg/domain/types"
	"github.com/tbmobb813/ciwatch/pkg/utils/safe"
)

// extractZipFile decompresses every entry of the archive into dstDir,
// keeping the archive's internal relative paths. Creating dstDir is
// idempotent; re-extracting over an existing tree overwrites files.
func extractZipFile(src, dstDir string) error {
	if err := os.MkdirAll(dstDir, 0755); err != nil {
		return goerr.Wrap(err, "failed to create extraction directory", goerr.V("path", dstDir))
	}

	zipFile, err := zip.OpenReader(src)
	if err != nil {
		return goerr.Wrap(err, "failed to open zip file", goerr.V("file", src))
	}
	defer safe.Close(zipFile)

	for _, f := range zipFile.File {
		if err := extractEntry(f, dstDir); err != nil {
			return err
		}
	}

	return nil
}

func extractEntry(f *zip.File, dst string) error {
	fpath := filepath.Join(dst, filepath.FromSlash(f.Name))
	if !strings.HasPrefix(fpath, filepath.Clean(dst)+string(os.PathSeparator)) {
		return goerr.Wrap(types.ErrInvalidGitHubData, "illegal file path of zip", goerr.V("path", f.Name))
	}

	if f.FileInfo().IsDir() {
		if err := os.MkdirAll(fpath, os.ModePerm); err != nil {
			return goerr.Wrap(err, "failed to create directory", goerr.V("path", fpath))
		}
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(fpath), os.ModePerm); err != nil {
		return goerr.Wrap(err, "failed to create directory", goerr.V("path", fpath))
	}

	// #nosec
	out, err := os.OpenFile(fpath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, f.Mode())
	if err != nil {
		return goerr.Wrap(err, "failed to open file", goerr.V("path", fpath))
	}
	defer safe.Close(out)

	rc, err := f.Open()
	if err != nil {
		return goerr.Wrap(err, "failed to open zip entry", goerr.V("entry", f.Name))
	}
	defer safe.Close(rc)

	// #nosec
	if _, err := io.Copy(out, rc); err != nil {
		return goerr.Wrap(err, "failed to copy file content", goerr.V("entry", f.Name))
	}

	return nil
}
