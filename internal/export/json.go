package export

import (
	"encoding/json"
	"io"

	"github.com/yvinc/203-proj1/internal/analysis"
)

// JSON writes rows as an indented JSON array.
func JSON(w io.Writer, rows []analysis.Row) error {
	if rows == nil {
		rows = []analysis.Row{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}
