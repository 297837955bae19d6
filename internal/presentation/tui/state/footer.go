package state

import "strings"

// FooterText returns the footer content for the current state.
func FooterText(refreshing bool, statusMessage, helpText string) string {
	status := strings.TrimSpace(statusMessage)
	if refreshing {
		status = "Refreshing..."
	}
	if status == "" {
		return helpText
	}
	if helpText == "" {
		return status
	}
	return status + "\n" + helpText
}
