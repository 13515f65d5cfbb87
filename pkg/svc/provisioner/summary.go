package provisioner

import (
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/Aff245/fmaa-bdi-v1/pkg/utils/notify"
)

const kibibyte = 1024

// Summarize counts results per outcome and reports the workspace footprint
// plus follow-up instructions. It is best-effort: an unreadable workspace
// only suppresses the size line.
func Summarize(writer io.Writer, root string, results []Result) {
	var succeeded, skipped, failed int

	for _, result := range results {
		switch result.Outcome {
		case OutcomeSuccess:
			succeeded++
		case OutcomeSkipped:
			skipped++
		case OutcomeFailed:
			failed++
		}
	}

	notify.Infof(writer, "%d applied, %d already satisfied, %d failed",
		succeeded, skipped, failed)

	size, err := workspaceSize(root)
	if err == nil {
		notify.Infof(writer, "workspace %s uses %s", root, formatSize(size))
	}

	if failed == 0 {
		notify.Infof(writer, "next: cd %s and review android-center/config.yaml", root)
	}
}

// workspaceSize sums regular-file sizes under root.
func workspaceSize(root string) (int64, error) {
	var total int64

	err := filepath.WalkDir(root, func(_ string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if entry.IsDir() || !entry.Type().IsRegular() {
			return nil
		}

		info, err := entry.Info()
		if err != nil {
			return err
		}

		total += info.Size()

		return nil
	})
	if err != nil {
		return 0, err
	}

	return total, nil
}

func formatSize(bytes int64) string {
	units := []string{"B", "KiB", "MiB", "GiB"}
	size := float64(bytes)
	unit := 0

	for size >= kibibyte && unit < len(units)-1 {
		size /= kibibyte
		unit++
	}

	if unit == 0 {
		return fmt.Sprintf("%.0f %s", size, units[unit])
	}

	return fmt.Sprintf("%.1f %s", size, units[unit])
}
