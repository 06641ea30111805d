// Package atomicfile writes output files so that readers never observe a
// partially written file.
package atomicfile

import (
	"fmt"
	"io"

	"github.com/google/renameio/v2"
	"github.com/sirupsen/logrus"
)

// Write streams the output of write into path. The data goes to a pending
// file that is fsynced and renamed over path only when write succeeds.
func Write(path string, write func(io.Writer) error) error {
	pendingFile, err := renameio.NewPendingFile(path)
	if err != nil {
		return fmt.Errorf("create pending file %s: %w", path, err)
	}
	defer func() {
		// No-op once the file has been committed.
		if err := pendingFile.Cleanup(); err != nil {
			logrus.Debugf("cleanup pending file %s: %v", path, err)
		}
	}()

	if err := write(pendingFile); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace %s: %w", path, err)
	}
	return nil
}
