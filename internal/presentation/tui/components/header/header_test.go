package header

import (
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name       string
		props      Props
		wantLink   string
		wantSource string
		wantVis    bool
	}{
		{
			name: "Visible",
			props: Props{
				Visible: true,
				Link:    "http://example.com",
				Source:  "Example Wire",
			},
			wantLink:   "http://example.com",
			wantSource: "Example Wire",
			wantVis:    true,
		},
		{
			name: "Hidden",
			props: Props{
				Visible: false,
			},
			wantVis: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Render(tt.props)
			if !tt.wantVis {
				if got != "" {
					t.Errorf("Render() = %q, want empty string", got)
				}
				return
			}

			if !strings.Contains(got, tt.wantLink) {
				t.Errorf("Render() = %q, want link %q", got, tt.wantLink)
			}
			if !strings.Contains(got, tt.wantSource) {
				t.Errorf("Render() = %q, want source %q", got, tt.wantSource)
			}
			if !strings.Contains(got, "🔗") {
				t.Error("Render() missing link icon")
			}
		})
	}
}
