package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port" validate:"gte=0,lte=65535"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres" validate:"-"`

	// Redis backs the shared house number registry; optional.
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// PubSub configuration for stale-address events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Plate configuration for house plate QR codes
	Plate *PlateConfig `json:"plate" yaml:"plate"`

	// Addressing tunes the address computation
	Addressing *AddressingConfig `json:"addressing" yaml:"addressing" validate:"required"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// RedisConfig defines the Redis connection used by the house number registry
type RedisConfig struct {
	Enabled   bool   `json:"enabled" yaml:"enabled"`
	Addr      string `json:"addr" yaml:"addr" validate:"required_if=Enabled true"`
	Password  string `json:"password" yaml:"password"`
	DB        int    `json:"db" yaml:"db" validate:"gte=0"`
	KeyPrefix string `json:"keyPrefix" yaml:"keyPrefix"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub; empty disables publishing
	Provider string `json:"provider" yaml:"provider" validate:"omitempty,oneof=local google"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId" validate:"required_if=Provider google"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId" validate:"required_if=Provider google"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint" validate:"required_if=Provider local"`

	// Audience expected on push OIDC tokens; empty skips verification
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`
}

// PlateConfig defines house plate QR code generation configuration
type PlateConfig struct {
	Size                 int    `json:"size" yaml:"size" validate:"gte=0"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel" validate:"omitempty,oneof=L M Q H"`
}

// AddressingConfig defines the tunables of the metric address computation
type AddressingConfig struct {
	// Metric CRS shared by the whole dataset
	SRID     int  `json:"srid" yaml:"srid"`
	UTMZone  int  `json:"utmZone" yaml:"utmZone" validate:"gte=1,lte=60"`
	Northern bool `json:"northern" yaml:"northern"`

	// Maximum centroid to ref_centroid separation in metric units
	RefTolerance float64 `json:"refTolerance" yaml:"refTolerance" validate:"gt=0"`

	// Connection search buffers
	SearchRadius     float64 `json:"searchRadius" yaml:"searchRadius" validate:"gt=0"`
	SearchRadiusStep float64 `json:"searchRadiusStep" yaml:"searchRadiusStep" validate:"gte=0"`
	SearchAttempts   int     `json:"searchAttempts" yaml:"searchAttempts" validate:"gte=1"`

	// Chain depth caps
	MaxIDDepth       int `json:"maxIDDepth" yaml:"maxIDDepth" validate:"gte=2"`
	MaxDistanceDepth int `json:"maxDistanceDepth" yaml:"maxDistanceDepth" validate:"gte=2"`

	// Uniqueness increments per side
	LeftStep  int64 `json:"leftStep" yaml:"leftStep" validate:"gte=1"`
	RightStep int64 `json:"rightStep" yaml:"rightStep" validate:"gte=1"`

	// Concurrent Main-building tasks in a batch
	Workers int `json:"workers" yaml:"workers" validate:"gte=1"`

	// Deadline for a single building
	BuildingTimeout time.Duration `json:"buildingTimeout" yaml:"buildingTimeout" validate:"gt=0"`

	// Spatial queries per second against PostGIS; 0 is unlimited
	SpatialQPS float64 `json:"spatialQPS" yaml:"spatialQPS" validate:"gte=0"`

	// Which road locator backs connection search: "postgis" or "memory"
	Locator string `json:"locator" yaml:"locator" validate:"oneof=postgis memory"`

	// Grid cell size in metres for the in-memory locator
	GridCellSize float64 `json:"gridCellSize" yaml:"gridCellSize" validate:"gte=0"`
}

// DefaultAddressingConfig returns the stock addressing tunables.
func DefaultAddressingConfig() *AddressingConfig {
	return &AddressingConfig{
		SRID:             32645,
		UTMZone:          45,
		Northern:         true,
		RefTolerance:     10,
		SearchRadius:     5,
		SearchRadiusStep: 5,
		SearchAttempts:   3,
		MaxIDDepth:       5,
		MaxDistanceDepth: 5,
		LeftStep:         2,
		RightStep:        2,
		Workers:          1,
		BuildingTimeout:  30 * time.Second,
		Locator:          "postgis",
		GridCellSize:     50,
	}
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if cfg.Postgres != nil {
		// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults fills zero values left by a sparse config file.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	defaults := DefaultAddressingConfig()
	if cfg.Addressing == nil {
		cfg.Addressing = defaults

		return
	}

	a := cfg.Addressing
	if a.UTMZone == 0 {
		a.UTMZone, a.Northern = defaults.UTMZone, defaults.Northern
	}
	if a.SRID == 0 {
		a.SRID = srid(a.UTMZone, a.Northern)
	}
	if a.RefTolerance == 0 {
		a.RefTolerance = defaults.RefTolerance
	}
	if a.SearchRadius == 0 {
		a.SearchRadius = defaults.SearchRadius
	}
	if a.SearchRadiusStep == 0 {
		a.SearchRadiusStep = defaults.SearchRadiusStep
	}
	if a.SearchAttempts == 0 {
		a.SearchAttempts = defaults.SearchAttempts
	}
	if a.MaxIDDepth == 0 {
		a.MaxIDDepth = defaults.MaxIDDepth
	}
	if a.MaxDistanceDepth == 0 {
		a.MaxDistanceDepth = defaults.MaxDistanceDepth
	}
	if a.LeftStep == 0 {
		a.LeftStep = defaults.LeftStep
	}
	if a.RightStep == 0 {
		a.RightStep = defaults.RightStep
	}
	if a.Workers == 0 {
		a.Workers = defaults.Workers
	}
	if a.BuildingTimeout == 0 {
		a.BuildingTimeout = defaults.BuildingTimeout
	}
	if a.Locator == "" {
		a.Locator = defaults.Locator
	}
	if a.GridCellSize == 0 {
		a.GridCellSize = defaults.GridCellSize
	}
}

// Validate checks struct tags and cross-field rules.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return errors.Wrap(err, "invalid config")
	}

	a := cfg.Addressing
	if a.SRID != srid(a.UTMZone, a.Northern) {
		return errors.Errorf("invalid config: srid %d does not match UTM zone %d", a.SRID, a.UTMZone)
	}
	if a.LeftStep%2 != 0 || a.RightStep%2 != 0 {
		return errors.Errorf("invalid config: house number steps must be even, got left %d right %d", a.LeftStep, a.RightStep)
	}
	if cfg.Postgres == nil {
		return errors.New("invalid config: postgres section is required")
	}

	return nil
}

func srid(zone int, northern bool) int {
	if northern {
		return 32600 + zone
	}

	return 32700 + zone
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
