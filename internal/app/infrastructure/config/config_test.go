package config

import (
	"encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNew_WritesDefaultsWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	m, err := New(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), m.Get())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var onDisk Config
	require.NoError(t, json.Unmarshal(raw, &onDisk))
	assert.Equal(t, DefaultMaxWordLen, onDisk.Limits.MaxWordLen)
	assert.Equal(t, "ptn.dat", onDisk.Files.Nodes)
}

func TestNew_EmptyPathStaysInMemory(t *testing.T) {
	m, err := New("")
	require.NoError(t, err)
	assert.Equal(t, DefaultMaxWords, m.Get().Limits.MaxWords)

	require.NoError(t, m.Update(func(cfg *Config) {
		cfg.Limits.Sort = true
	}))
	assert.True(t, m.Get().Limits.Sort)
}

func TestNew_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"limits":{"max_word_len":64},"dictionaries":{"en":"en.txt"}}`), 0644))

	m, err := New(path)
	require.NoError(t, err)

	cfg := m.Get()
	assert.Equal(t, 64, cfg.Limits.MaxWordLen)
	assert.Equal(t, DefaultMaxWords, cfg.Limits.MaxWords)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, map[string]string{"en": "en.txt"}, cfg.Dictionaries)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(cfg *Config)
		wantErr bool
	}{
		{name: "defaults", modify: func(cfg *Config) {}},
		{name: "bad log level", modify: func(cfg *Config) { cfg.App.LogLevel = "loud" }, wantErr: true},
		{name: "bad gin mode", modify: func(cfg *Config) { cfg.App.GinMode = "prod" }, wantErr: true},
		{name: "zero word len", modify: func(cfg *Config) { cfg.Limits.MaxWordLen = 0 }, wantErr: true},
		{name: "zero words", modify: func(cfg *Config) { cfg.Limits.MaxWords = 0 }, wantErr: true},
		{name: "no addr", modify: func(cfg *Config) { cfg.Server.Addr = "" }, wantErr: true},
		{name: "half limiter", modify: func(cfg *Config) { cfg.Server.Limiter.Per = 0 }, wantErr: true},
		{name: "limiter off", modify: func(cfg *Config) { cfg.Server.Limiter = Limiter{} }},
		{name: "negative ttl", modify: func(cfg *Config) { cfg.Cache.TTL = -time.Second }, wantErr: true},
		{name: "dictionary without path", modify: func(cfg *Config) { cfg.Dictionaries["en"] = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Manager{}
			cfg := Default()
			tt.modify(cfg)

			err := m.validate(cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdate_RejectsInvalidAndKeepsOld(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	m, err := New(path)
	require.NoError(t, err)

	err = m.Update(func(cfg *Config) {
		cfg.Limits.MaxWordLen = -1
	})
	require.Error(t, err)
	assert.Equal(t, DefaultMaxWordLen, m.Get().Limits.MaxWordLen)

	require.NoError(t, m.Update(func(cfg *Config) {
		cfg.Dictionaries["en"] = "en.txt"
	}))

	reloaded, err := New(path)
	require.NoError(t, err)
	assert.Equal(t, "en.txt", reloaded.Get().Dictionaries["en"])
}
