package cli

import (
	"fmt"
	"strings"
)

// requireUser resolves the acting user or fails with guidance.
func requireUser(app *App) (string, error) {
	if app.UserID == "" {
		return "", fmt.Errorf("no user set: pass --user or export GROUNDWORK_USER")
	}
	return app.UserID, nil
}

// splitCSV turns "a, b,c" into trimmed non-empty parts.
func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func validateNonEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("this field is required")
	}
	return nil
}
