// internal/writers/json.go
package writers

import (
	"encoding/json"
	"io"

	"sptliq/pkg/api"
)

func init() {
	Register("json", WriteJSON)
}

// WriteJSON emits the whole batch as one indented JSON document (v1
// schema).
func WriteJSON(w io.Writer, reports []api.SiteReportV1, _ bool) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(reports)
}
