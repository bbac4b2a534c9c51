package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		start       *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"cmd", "-a", "http://127.0.0.1:9090", "-t", "tok", "-i", "10", "-timeout", "4", "-db", "x.db", "-log-level", "debug"},
			expected: &Config{
				ServerURL:           "http://127.0.0.1:9090",
				AuthToken:           "tok",
				OnlineCheckInterval: 10 * time.Second,
				RequestTimeout:      4 * time.Second,
				DBPath:              "x.db",
				LogLevel:            "debug",
			},
		},
		{
			name:     "unknown flags are ignored",
			args:     []string{"cmd", "-x", "1", "-log-level=warn", "-i", "2"},
			expected: &Config{LogLevel: "warn", OnlineCheckInterval: 2 * time.Second},
		},
		{
			name:     "absent interval flags keep current values",
			args:     []string{"cmd", "-a", "http://h"},
			start:    &Config{RequestTimeout: 250 * time.Millisecond, OnlineCheckInterval: 1500 * time.Millisecond},
			expected: &Config{ServerURL: "http://h", RequestTimeout: 250 * time.Millisecond, OnlineCheckInterval: 1500 * time.Millisecond},
		},
		{name: "incorrect check interval", args: []string{"cmd", "-a", "http://h", "-i", "abc"}, expectPanic: true},
		{name: "incorrect timeout", args: []string{"cmd", "-timeout", "soon"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}
			if tt.start != nil {
				*config = *tt.start
			}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config) })
				return
			}
			require.NotPanics(t, func() { parseFlags(config) })
			assert.Empty(t, cmp.Diff(config, tt.expected))
		})
	}
}
