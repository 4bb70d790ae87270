package cli

import (
	"testing"
	"time"

	"github.com/example/sgmi/internal/config"
)

func TestResolveMetricsYear(t *testing.T) {
	now := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		flag     int
		cfg      *config.Config
		expected int
	}{
		{
			name:     "explicit flag wins",
			flag:     2024,
			cfg:      &config.Config{DefaultYear: 2025},
			expected: 2024,
		},
		{
			name:     "configured default_year when no flag",
			cfg:      &config.Config{DefaultYear: 2025},
			expected: 2025,
		},
		{
			name:     "current year with no config",
			cfg:      nil,
			expected: 2026,
		},
		{
			name:     "current year when default_year unset",
			cfg:      &config.Config{},
			expected: 2026,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveMetricsYear(tt.flag, tt.cfg, now); got != tt.expected {
				t.Errorf("resolveMetricsYear() = %d, want %d", got, tt.expected)
			}
		})
	}
}
