// Package file loads tournament inputs from local JSON, HTML, Markdown and
// spreadsheet exports.
package file

import (
	"context"
	"errors"
	"io/fs"
	"os"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/fixture-points/internal/platform/logging"
)

// readOptional returns the file contents, or ok=false when the file does not exist.
func readOptional(ctx context.Context, path string) (content []byte, ok bool, err error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	if path == "" {
		return nil, false, nil
	}

	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, crerr.Wrapf(err, "read %s", path)
	}
	return raw, true, nil
}

func loggerOrDefault(logger *logging.Logger) *logging.Logger {
	if logger == nil {
		return logging.Default()
	}
	return logger
}
