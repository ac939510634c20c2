package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// generateTimestampedFileName adds a timestamp before the extension,
// e.g. employee-1_20240102_150405.html
func generateTimestampedFileName(name string) string {
	timestamp := time.Now().Format("20060102_150405")
	ext := filepath.Ext(name)
	return fmt.Sprintf("%s_%s%s", strings.TrimSuffix(name, ext), timestamp, ext)
}

// generateOutputFilePath returns a timestamped path under dir, creating dir
func generateOutputFilePath(dir, name string) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	return filepath.Join(dir, generateTimestampedFileName(name)), nil
}
