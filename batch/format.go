package batch

import (
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// ComputeHash computes a hash of the content using xxhash.
func ComputeHash(content string) string {
	return fmt.Sprintf("%x", xxhashOf(content))
}

func xxhashOf(content string) uint64 {
	return xxhash.Sum64String(content)
}

// parseHash reverses ComputeHash.
func parseHash(hash string) (uint64, bool) {
	h, err := strconv.ParseUint(hash, 16, 64)
	return h, err == nil
}

// TruncatePath shortens a path for display, keeping the end which is more
// informative.
func TruncatePath(path string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if maxLen < 4 {
		return path[:min(len(path), maxLen)]
	}
	if len(path) <= maxLen {
		return path
	}
	return "..." + path[len(path)-maxLen+3:]
}

// FormatBytes formats bytes in human-readable form.
func FormatBytes(bytes int) string {
	const (
		KB = 1024
		MB = KB * 1024
	)
	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
