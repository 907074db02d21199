package config

import (
	"testing"
	"time"

	"github.com/slighter12/go-lib/database/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"addressing": map[string]any{
			"maxIDDepth":      5,
			"buildingTimeout": "30s",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "ADDRESSING_MAXIDDEPTH", want: "addressing.maxIDDepth"},
		{envKey: "ADDRESSING_BUILDINGTIMEOUT", want: "addressing.buildingTimeout"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsSparseAddressing(t *testing.T) {
	cfg := &Config{Addressing: &AddressingConfig{Workers: 4, UTMZone: 44, Northern: true}}

	applyDefaults(cfg)

	a := cfg.Addressing
	assert.Equal(t, 4, a.Workers)
	assert.Equal(t, 32644, a.SRID)
	assert.Equal(t, 10.0, a.RefTolerance)
	assert.Equal(t, 3, a.SearchAttempts)
	assert.Equal(t, 5, a.MaxIDDepth)
	assert.Equal(t, int64(2), a.LeftStep)
	assert.Equal(t, int64(2), a.RightStep)
	assert.Equal(t, 30*time.Second, a.BuildingTimeout)
	assert.Equal(t, "postgis", a.Locator)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
}

func TestApplyDefaults_MissingAddressingSection(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, DefaultAddressingConfig(), cfg.Addressing)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{Postgres: &postgres.DBConn{}, Addressing: DefaultAddressingConfig()}

		return cfg
	}

	t.Run("defaults are valid", func(t *testing.T) {
		require.NoError(t, Validate(valid()))
	})

	t.Run("srid must match the zone", func(t *testing.T) {
		cfg := valid()
		cfg.Addressing.SRID = 32644

		assert.Error(t, Validate(cfg))
	})

	t.Run("depth below two is rejected", func(t *testing.T) {
		cfg := valid()
		cfg.Addressing.MaxIDDepth = 1

		assert.Error(t, Validate(cfg))
	})

	t.Run("odd house number step is rejected", func(t *testing.T) {
		cfg := valid()
		cfg.Addressing.LeftStep = 1

		assert.Error(t, Validate(cfg))
	})

	t.Run("unknown locator is rejected", func(t *testing.T) {
		cfg := valid()
		cfg.Addressing.Locator = "kdtree"

		assert.Error(t, Validate(cfg))
	})

	t.Run("google pubsub needs a project", func(t *testing.T) {
		cfg := valid()
		cfg.PubSub = &PubSubConfig{Provider: "google", TopicID: "t"}

		assert.Error(t, Validate(cfg))
	})

	t.Run("enabled redis needs an address", func(t *testing.T) {
		cfg := valid()
		cfg.Redis = &RedisConfig{Enabled: true}

		assert.Error(t, Validate(cfg))
	})

	t.Run("postgres is required", func(t *testing.T) {
		cfg := valid()
		cfg.Postgres = nil

		assert.Error(t, Validate(cfg))
	})
}
