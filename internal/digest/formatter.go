package digest

import (
	"fmt"
	"strings"
	"time"
)

// FormatText renders a stored digest as plain text suitable for clipboard or
// email export. The layout is deterministic and preserves entry order
// exactly as stored, with one-based ranks.
func FormatText(date time.Time, entries []Entry) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Top matches for %s\n", date.Format("2006-01-02"))

	if len(entries) == 0 {
		b.WriteString("\nNo matching jobs today.\n")
		return b.String()
	}

	for idx, entry := range entries {
		fmt.Fprintf(&b, "\n%d. %s — %s (%d%% match)\n", idx+1, entry.Title, entry.Company, entry.MatchScore)
		fmt.Fprintf(&b, "   %s · %s\n", entry.Location, entry.Experience)
		if entry.ApplyURL != "" {
			fmt.Fprintf(&b, "   %s\n", entry.ApplyURL)
		}
	}

	return b.String()
}
