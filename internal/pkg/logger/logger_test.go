package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: WarnLevel, Output: &buf})
	defer ConfigureFromStrings("info", "text")

	Info().Msg("hidden")
	Warn().Str("procedure", "sp_GetGradeBook").Msg("visible")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "visible", entry["message"])
	assert.Equal(t, "sp_GetGradeBook", entry["procedure"])
}

func TestContextLogger(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: InfoLevel, Output: &buf})
	defer ConfigureFromStrings("info", "text")

	reqLogger := Default().With().Str("request_id", "abc").Logger()
	ctx := WithContext(context.Background(), reqLogger)

	Ctx(ctx).Info().Msg("scoped")
	assert.Contains(t, buf.String(), `"request_id":"abc"`)

	buf.Reset()
	Ctx(context.Background()).Info().Msg("fallback")
	assert.Contains(t, buf.String(), "fallback")
}

func TestDebugFollowsLevel(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: InfoLevel, Output: &buf})
	defer ConfigureFromStrings("info", "text")

	Debug().Msg("quiet")
	assert.Empty(t, buf.String())

	Configure(Config{Level: DebugLevel, Output: &buf})
	Debug().Str("procedure", "sp_GetGradeBook").Msg("Executing stored procedure")
	assert.Contains(t, buf.String(), `"level":"debug"`)
}
