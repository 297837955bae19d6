package state

import "testing"

func TestFooterText(t *testing.T) {
	tests := []struct {
		name          string
		refreshing    bool
		statusMessage string
		helpText      string
		want          string
	}{
		{
			name:     "help only",
			helpText: "help",
			want:     "help",
		},
		{
			name:          "status prepended",
			statusMessage: "2 feeds timed out",
			helpText:      "help",
			want:          "2 feeds timed out\nhelp",
		},
		{
			name:          "refreshing wins over status",
			refreshing:    true,
			statusMessage: "2 feeds timed out",
			helpText:      "help",
			want:          "Refreshing...\nhelp",
		},
		{
			name:          "status only when help empty",
			statusMessage: "1 feed failed to load",
			want:          "1 feed failed to load",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FooterText(tt.refreshing, tt.statusMessage, tt.helpText)
			if got != tt.want {
				t.Fatalf("FooterText() = %q, want %q", got, tt.want)
			}
		})
	}
}
