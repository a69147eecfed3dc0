package cli

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// HumanSize renders a byte count with a binary-unit suffix, e.g. "1.2 KiB".
func HumanSize[T constraints.Integer](n T) string {
	v := int64(n)
	const unit = 1024
	if v < unit {
		return fmt.Sprintf("%d B", v)
	}
	div, exp := int64(unit), 0
	for m := v / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(v)/float64(div), "KMGTPE"[exp])
}

// Growth returns the percentage size increase from source to output.
func Growth[T constraints.Integer](source, output T) float64 {
	if source == 0 {
		return 0
	}
	return (float64(output) - float64(source)) / float64(source) * 100
}
