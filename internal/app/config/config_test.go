package config

import (
	"testing"

	"github.com/caarlos0/env/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{name: "text", format: FormatText},
		{name: "table", format: FormatTable},
		{name: "json", format: FormatJSON},
		{name: "yaml", format: FormatYAML},
		{name: "unknown", format: "xml", wantErr: true},
		{name: "empty", format: "", wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := Config{OutputFormat: test.format}.Validate()
			if test.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestEnvOverridesDefaults(t *testing.T) {
	t.Setenv("RUN_ADDRESS", "localhost:9090")
	t.Setenv("OUTPUT_FORMAT", FormatJSON)
	t.Setenv("SAMPLE_ORDERS", "false")

	config := Config{
		NetAddr:      "",
		LogLevel:     "info",
		OutputFormat: FormatText,
		SampleOrders: true,
	}
	require.NoError(t, env.Parse(&config))

	assert.Equal(t, "localhost:9090", config.NetAddr)
	assert.Equal(t, "info", config.LogLevel)
	assert.Equal(t, FormatJSON, config.OutputFormat)
	assert.False(t, config.SampleOrders)
}
