// Package export renders the task list for use outside the CLI.
package export

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"todo/internal/service"
)

// Supported dump formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Write dumps list to w in the given format. JSON output uses the same
// record layout as the stored snapshot.
func Write(w io.Writer, list service.TaskList, format string) error {
	if list == nil {
		list = service.TaskList{}
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(list)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(list); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
