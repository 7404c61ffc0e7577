package logger

import (
	"testing"

	"github.com/educoreai-lotus/ContentStudio-sub002/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	testCases := []struct {
		name     string
		logLevel string
	}{
		{name: "debug level", logLevel: "debug"},
		{name: "info level", logLevel: "info"},
		{name: "warn level", logLevel: "warn"},
		{name: "error level", logLevel: "error"},
		{name: "mixed case is accepted", logLevel: "DeBuG"},
		{name: "invalid level falls back to info", logLevel: "verbose"},
		{name: "empty level falls back to info", logLevel: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			logger, err := Setup(config.ServerConfig{Port: 8080, LogLevel: tc.logLevel})

			require.NoError(t, err, "Setup should never fail; invalid levels fall back")
			assert.NotNil(t, logger, "Setup should return a usable logger")
		})
	}
}
