/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/acronis/go-callkit/config"
)

func TestConfig(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		want    *Config
		wantErr string
	}{
		{
			name: "defaults",
			yaml: "",
			want: NewDefaultConfig(),
		},
		{
			name: "text to stderr",
			yaml: "log:\n  level: DEBUG\n  format: text\n  output: stderr\n  nocolor: true\n",
			want: func() *Config {
				c := NewDefaultConfig()
				c.Level = LevelDebug
				c.Format = FormatText
				c.Output = OutputStderr
				c.NoColor = true
				return c
			}(),
		},
		{
			name:    "unknown level",
			yaml:    "log:\n  level: verbose\n",
			wantErr: `log.level: unknown value "verbose"`,
		},
		{
			name:    "file output without path",
			yaml:    "log:\n  output: file\n",
			wantErr: `log.file.path: cannot be empty when "file" output is used`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			err := config.NewLoader(config.NewViperAdapter()).LoadFromReader(
				bytes.NewBufferString(tt.yaml), config.DataTypeYAML, cfg)
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, cfg)
		})
	}
}
