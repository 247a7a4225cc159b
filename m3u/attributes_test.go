package m3u

import "testing"

func TestExtractDisplayName(t *testing.T) {
	tests := []struct {
		name     string
		extinf   string
		expected string
	}{
		{
			name:     "simple display name",
			extinf:   `#EXTINF:-1,Channel Name`,
			expected: "Channel Name",
		},
		{
			name:     "display name with metadata",
			extinf:   `#EXTINF:-1 tvg-id="channel1" tvg-name="Channel 1",Channel 1`,
			expected: "Channel 1",
		},
		{
			name:     "display name with leading/trailing whitespace",
			extinf:   `#EXTINF:-1 tvg-id="channel1",  Channel Name  `,
			expected: "Channel Name",
		},
		{
			name:     "display name with special characters",
			extinf:   `#EXTINF:-1,La 1 HD España`,
			expected: "La 1 HD España",
		},
		{
			name:     "no comma in line",
			extinf:   `#EXTINF:-1 tvg-id="channel1"`,
			expected: "",
		},
		{
			name:     "empty name after comma",
			extinf:   `#EXTINF:-1 tvg-name="Foo",`,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := extractDisplayName(tt.extinf)
			if result != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestExtractAttribute(t *testing.T) {
	tests := []struct {
		name    string
		extinf  string
		logo    string
		group   string
		tvgName string
	}{
		{
			name:    "all attributes present",
			extinf:  `#EXTINF:-1 tvg-name="N" tvg-logo="http://logo.png" group-title="News",N`,
			logo:    "http://logo.png",
			group:   "News",
			tvgName: "N",
		},
		{
			name:    "attributes in reverse order",
			extinf:  `#EXTINF:-1 group-title="News" tvg-logo="http://logo.png" tvg-name="N",N`,
			logo:    "http://logo.png",
			group:   "News",
			tvgName: "N",
		},
		{
			name:   "no attributes",
			extinf: `#EXTINF:-1,Plain`,
		},
		{
			name:   "empty quoted values are preserved",
			extinf: `#EXTINF:-1 tvg-logo="" group-title="",X`,
		},
		{
			name:   "unrecognized attributes are ignored",
			extinf: `#EXTINF:-1 tvg-shift="2" radio="true",X`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractAttribute(tvgLogoRegex, tt.extinf); got != tt.logo {
				t.Errorf("tvg-logo: expected %q, got %q", tt.logo, got)
			}
			if got := extractAttribute(groupTitleRegex, tt.extinf); got != tt.group {
				t.Errorf("group-title: expected %q, got %q", tt.group, got)
			}
			if got := extractAttribute(tvgNameRegex, tt.extinf); got != tt.tvgName {
				t.Errorf("tvg-name: expected %q, got %q", tt.tvgName, got)
			}
		})
	}
}

// Attribute keys are matched case-sensitively; TVG-LOGO is not tvg-logo.
func TestExtractAttribute_CaseSensitiveKeys(t *testing.T) {
	extinf := `#EXTINF:-1 TVG-LOGO="http://logo.png",X`
	if got := extractAttribute(tvgLogoRegex, extinf); got != "" {
		t.Errorf("Expected empty string for upper-case key, got %q", got)
	}
}
