package clipboard

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
)

// Copy places text on the system clipboard. When no clipboard mechanism is
// available (headless sessions, missing xclip) it falls back to writing a
// temp file and returns its path; the returned string is empty when the
// clipboard itself worked.
func Copy(text string) (string, error) {
	if err := clipboard.WriteAll(text); err == nil {
		return "", nil
	}

	file, err := os.CreateTemp("", "jobtrackr_digest_*.txt")
	if err != nil {
		return "", fmt.Errorf("clipboard unavailable and temp file failed: %w", err)
	}
	defer file.Close()

	if _, err := file.WriteString(text); err != nil {
		return "", fmt.Errorf("writing clipboard fallback file: %w", err)
	}
	return file.Name(), nil
}

// DumpJSON writes v, pretty-printed, to a fresh temp file and returns its
// name.
func DumpJSON(pattern string, v any) (string, error) {
	file, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return file.Name(), nil
}
