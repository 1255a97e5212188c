// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"

	"sptliq/pkg/api"
)

// WriteFunc renders a batch of site reports to w.
type WriteFunc func(w io.Writer, reports []api.SiteReportV1, header bool) error

// Format registry (format → handler). Writer files register
// themselves in init() blocks.
var registry = map[string]WriteFunc{}

// Register installs a writer for a format (idempotent, last wins).
func Register(format string, fn WriteFunc) { registry[format] = fn }

// Formats returns the registered format names.
func Formats() []string {
	out := make([]string, 0, len(registry))
	for f := range registry {
		out = append(out, f)
	}
	return out
}

// Write dispatches to the registered writer for format.
func Write(format string, w io.Writer, reports []api.SiteReportV1, header bool) error {
	fn, ok := registry[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, reports, header)
}
