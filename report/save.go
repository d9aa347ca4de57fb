package report

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ErrEmptyPath is returned by Save when no file name is given.
var ErrEmptyPath = errors.New("report: empty output path")

// Save writes r.Text() to path atomically: the content goes to a temporary
// file in the same directory which is then renamed over path, so readers
// never observe a partial report. Missing parent directories are created.
func Save(path string, r Report) error {
	if path == "" {
		return ErrEmptyPath
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "create %s", dir)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}
	tmpName := tmp.Name()

	if _, err = tmp.WriteString(r.Text()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Wrapf(err, "write %s", tmpName)
	}
	// CreateTemp opens with 0600; reports are meant to be shared.
	if err = tmp.Chmod(0o644); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Wrapf(err, "chmod %s", tmpName)
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Wrapf(err, "close %s", tmpName)
	}
	if err = os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return errors.Wrapf(err, "rename to %s", path)
	}

	Logger().Debug("report saved", zap.String("path", path), zap.Int("cities", len(r.Dist)))

	return nil
}
