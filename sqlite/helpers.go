package sqlite

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/templatemaker"
)

// parseRFC3339 parses an RFC3339 formatted timestamp string.
// Returns an error if parsing fails with a descriptive message including the field name.
func parseRFC3339(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}

// appendPagination appends LIMIT and OFFSET clauses to a query builder if values are > 0.
// SQLite requires a LIMIT before OFFSET, so an offset alone uses LIMIT -1.
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	if limit > 0 {
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	} else if offset > 0 {
		query.WriteString(" LIMIT -1")
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}

// encodeSegments serializes a template for the segments column.
func encodeSegments(t templatemaker.Template) (string, error) {
	if t == nil {
		t = templatemaker.Template{}
	}
	data, err := json.Marshal(t)
	if err != nil {
		return "", fmt.Errorf("failed to encode segments: %w", err)
	}
	return string(data), nil
}

// decodeSegments parses the segments column. An empty array decodes to nil.
func decodeSegments(value string) (templatemaker.Template, error) {
	var t templatemaker.Template
	if err := json.Unmarshal([]byte(value), &t); err != nil {
		return nil, fmt.Errorf("failed to decode segments: %w", err)
	}
	if len(t) == 0 {
		return nil, nil
	}
	return t, nil
}
