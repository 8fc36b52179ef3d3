// Package fs provides file-based sample input and extraction output.
package fs

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/fwojciec/templatemaker"
)

// Record is the extraction result for a single sample as written to disk.
type Record struct {
	Source    string            `json:"source"`
	Template  string            `json:"template,omitempty"`
	Fragments []string          `json:"fragments"`
	Fields    map[string]string `json:"fields,omitempty"`
}

// RecordPath converts a sample path to the relative path of its record.
// Example: samples/listings/page1.html → samples/listings/page1.json
func RecordPath(source string) (string, error) {
	path := filepath.ToSlash(filepath.Clean(source))
	path = strings.TrimPrefix(path, filepath.ToSlash(filepath.VolumeName(source)))
	path = strings.TrimLeft(path, "/")

	if path == "" || path == "." {
		return "", templatemaker.Errorf(templatemaker.EINVALID, "sample path required")
	}
	if path == ".." || strings.HasPrefix(path, "../") {
		return "", templatemaker.Errorf(templatemaker.EINVALID, "path traversal in %q", source)
	}

	if ext := filepath.Ext(path); ext != "" {
		path = strings.TrimSuffix(path, ext)
	}
	return filepath.FromSlash(path + ".json"), nil
}

// FormatRecord formats a record as indented JSON followed by a newline.
func FormatRecord(rec *Record) ([]byte, error) {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
