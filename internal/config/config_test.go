package config

import (
	"dicepoker-server/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstance(t *testing.T) {
	clear1 := util.SetEnv("DPO_CONFIG_FILE", "testdata/config.yaml")
	defer clear1()
	clear2 := util.SetEnv("DPO_LOG_LEVEL", "warn")
	defer clear2()
	config = Config{}

	a := assert.New(t)
	cfg := Instance()
	a.Equal(":8080", cfg.Addr)
	a.Equal("json", cfg.Log.Format)
	a.Equal("warn", cfg.Log.Level)
	a.Equal([]string{"https://dice.example.domain"}, cfg.CORS.AllowedOrigins)
	a.Equal(30, cfg.WebSocket.PongWait)

	// ensure that it's only loaded once
	clear3 := util.SetEnv("DPO_LOG_LEVEL", "error")
	defer clear3()
	// ensure we aren't using a pointer
	cfg.Log.Level = "bad"
	cfg = Instance()
	a.Equal("warn", cfg.Log.Level)
}

func TestDefaults(t *testing.T) {
	clear1 := util.SetEnv("DPO_CONFIG_FILE", "testdata/missing.yaml")
	defer clear1()

	assert.NoError(t, Load())
	cfg := Instance()
	assert.Equal(t, ":5000", cfg.Addr)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.DisableAccessLogs)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 60, cfg.WebSocket.PongWait)
}

func TestLoad_environment(t *testing.T) {
	clear1 := util.SetEnv("DPO_CONFIG_FILE", "testdata/missing.yaml")
	defer clear1()
	clear2 := util.SetEnv("DPO_LOG_DISABLE_ACCESS_LOGS", "true")
	defer clear2()
	clear3 := util.SetEnv("DPO_CORS_ALLOWED_ORIGINS", "https://a.example.domain,https://b.example.domain")
	defer clear3()

	a := assert.New(t)
	a.NoError(Load())
	cfg := Instance()
	a.True(cfg.Log.DisableAccessLogs)
	a.Equal([]string{"https://a.example.domain", "https://b.example.domain"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_invalidFile(t *testing.T) {
	clear1 := util.SetEnv("DPO_CONFIG_FILE", "testdata/invalid.yaml")
	defer clear1()

	assert.Error(t, Load())
}

func TestLoad_emptyFile(t *testing.T) {
	clear1 := util.SetEnv("DPO_CONFIG_FILE", "testdata/empty.yaml")
	defer clear1()

	a := assert.New(t)
	a.NoError(Load())
	cfg := Instance()
	a.Equal(":5000", cfg.Addr)
	a.Equal(60, cfg.WebSocket.PongWait)
}

func TestLoad_invalidPongWait(t *testing.T) {
	clear1 := util.SetEnv("DPO_CONFIG_FILE", "testdata/missing.yaml")
	defer clear1()

	for _, pongWait := range []string{"0", "-5"} {
		clear2 := util.SetEnv("DPO_WEBSOCKET_PONG_WAIT", pongWait)
		err := Load()
		clear2()

		assert.EqualError(t, err, "webSocket.pongWait must be greater than zero, received "+pongWait)
	}
}
