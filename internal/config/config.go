// Package config loads plantctl settings from defaults, an optional YAML file
// and PLANTCTL_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/aretw0/plantctl/pkg/persistence/middleware"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override. Nested keys are joined
// with underscores: PLANTCTL_PROJECT_SPEED sets project.speed.
const EnvPrefix = "PLANTCTL_"

// Engine kinds.
const (
	EngineMemory = "memory"
	EngineHTTP   = "http"
)

// Store kinds.
const (
	StoreMemory = "memory"
	StoreFile   = "file"
	StoreRedis  = "redis"
)

// Config is the full plantctl configuration.
type Config struct {
	Engine       EngineConfig  `mapstructure:"engine" yaml:"engine"`
	Project      ProjectConfig `mapstructure:"project" yaml:"project"`
	Run          RunConfig     `mapstructure:"run" yaml:"run"`
	Store        StoreConfig   `mapstructure:"store" yaml:"store"`
	Metrics      MetricsConfig `mapstructure:"metrics" yaml:"metrics"`
	SequenceDirs []string      `mapstructure:"sequence_dirs" yaml:"sequence_dirs"`
	LogLevel     string        `mapstructure:"log_level" yaml:"log_level"`
}

// EngineConfig selects the engine the CLI drives.
type EngineConfig struct {
	Kind    string        `mapstructure:"kind" yaml:"kind"`
	URL     string        `mapstructure:"url" yaml:"url"`
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

// ProjectConfig names what a session opens.
type ProjectConfig struct {
	Path              string  `mapstructure:"path" yaml:"path"`
	Timeline          string  `mapstructure:"timeline" yaml:"timeline"`
	Model             string  `mapstructure:"model" yaml:"model"`
	Parameters        string  `mapstructure:"parameters" yaml:"parameters"`
	InitialConditions string  `mapstructure:"initial_conditions" yaml:"initial_conditions"`
	Application       string  `mapstructure:"application" yaml:"application"`
	Speed             float64 `mapstructure:"speed" yaml:"speed"`
}

// RunConfig holds sequence run defaults. Sequence definitions override
// Tick and MaxTicks.
type RunConfig struct {
	Tick            time.Duration `mapstructure:"tick" yaml:"tick"`
	MaxTicks        int           `mapstructure:"max_ticks" yaml:"max_ticks"`
	Output          string        `mapstructure:"output" yaml:"output"`
	Policy          string        `mapstructure:"policy" yaml:"policy"`
	CheckpointEvery int           `mapstructure:"checkpoint_every" yaml:"checkpoint_every"`
	LockTTL         time.Duration `mapstructure:"lock_ttl" yaml:"lock_ttl"`
}

// StoreConfig selects where run records are kept.
type StoreConfig struct {
	Kind          string        `mapstructure:"kind" yaml:"kind"`
	Path          string        `mapstructure:"path" yaml:"path"`
	RedisAddr     string        `mapstructure:"redis_addr" yaml:"redis_addr"`
	RedisPassword string        `mapstructure:"redis_password" yaml:"redis_password"`
	RedisDB       int           `mapstructure:"redis_db" yaml:"redis_db"`
	TTL           time.Duration `mapstructure:"ttl" yaml:"ttl"`
	// EncryptionKey is a base64 AES-256 key. Runs are sealed at rest when set.
	EncryptionKey string `mapstructure:"encryption_key" yaml:"encryption_key,omitempty"`
	// MaskColumns are regular expressions; matching columns are stored as "***".
	MaskColumns []string `mapstructure:"mask_columns" yaml:"mask_columns,omitempty"`
}

// MetricsConfig enables the Prometheus endpoint when Addr is set.
type MetricsConfig struct {
	Addr string `mapstructure:"addr" yaml:"addr"`
}

// Default returns the built-in configuration: the tutorial project on the
// in-memory engine at speed 20, one second ticks, samples written to
// sample_data.csv and run records kept on disk.
func Default() *Config {
	return &Config{
		Engine: EngineConfig{
			Kind:    EngineMemory,
			Timeout: 30 * time.Second,
		},
		Project: ProjectConfig{
			Path:              "DemoProject",
			Timeline:          "Tutorial",
			Model:             "KSpiceTutorial Model",
			Parameters:        "KSpiceTutorial Model",
			InitialConditions: "KSpiceTutorial Model",
			Speed:             20,
		},
		Run: RunConfig{
			Tick:    time.Second,
			Output:  "sample_data.csv",
			Policy:  "on-transition",
			LockTTL: 10 * time.Minute,
		},
		Store: StoreConfig{
			Kind:      StoreFile,
			Path:      ".plantctl/runs",
			RedisAddr: "localhost:6379",
			TTL:       7 * 24 * time.Hour,
		},
		SequenceDirs: []string{"sequences"},
		LogLevel:     "info",
	}
}

// Load reads path (skipped when empty) and the process environment.
func Load(path string) (*Config, error) {
	return LoadWithEnv(path, os.Environ())
}

// LoadWithEnv is Load with an explicit KEY=VALUE environment.
func LoadWithEnv(path string, environ []string) (*Config, error) {
	raw := map[string]any{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
		if raw == nil {
			raw = map[string]any{}
		}
	}
	applyEnv(raw, environ)

	cfg := Default()
	if err := decode(raw, cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(raw map[string]any, out *Config) error {
	// Lists replace the default instead of merging element-wise.
	if _, ok := raw["sequence_dirs"]; ok {
		out.SequenceDirs = nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}

// envKeys maps every PLANTCTL_* variable to its key path in the raw map,
// derived from the mapstructure tags of Config.
func envKeys() map[string][]string {
	keys := map[string][]string{}
	var walk func(t reflect.Type, path []string)
	walk = func(t reflect.Type, path []string) {
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			tag := strings.Split(f.Tag.Get("mapstructure"), ",")[0]
			if tag == "" || tag == "-" {
				continue
			}
			p := append(append([]string(nil), path...), tag)
			if f.Type.Kind() == reflect.Struct && f.Type != reflect.TypeOf(time.Duration(0)) {
				walk(f.Type, p)
				continue
			}
			keys[EnvPrefix+strings.ToUpper(strings.Join(p, "_"))] = p
		}
	}
	walk(reflect.TypeOf(Config{}), nil)
	return keys
}

func applyEnv(raw map[string]any, environ []string) {
	keys := envKeys()
	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, EnvPrefix) {
			continue
		}
		path, known := keys[name]
		if !known {
			continue
		}
		set(raw, path, value)
	}
}

func set(m map[string]any, path []string, value any) {
	for _, k := range path[:len(path)-1] {
		next, ok := m[k].(map[string]any)
		if !ok {
			next = map[string]any{}
			m[k] = next
		}
		m = next
	}
	m[path[len(path)-1]] = value
}

// Validate checks enumerations and required fields.
func (c *Config) Validate() error {
	var errs []error
	switch c.Engine.Kind {
	case EngineMemory:
	case EngineHTTP:
		if c.Engine.URL == "" {
			errs = append(errs, errors.New("engine.url is required for the http engine"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown engine kind %q", c.Engine.Kind))
	}
	switch c.Store.Kind {
	case StoreMemory, StoreFile, StoreRedis:
	default:
		errs = append(errs, fmt.Errorf("unknown store kind %q", c.Store.Kind))
	}
	if c.Store.EncryptionKey != "" {
		if _, err := middleware.ParseKey(c.Store.EncryptionKey); err != nil {
			errs = append(errs, fmt.Errorf("store.encryption_key: %w", err))
		}
	}
	if c.Project.Timeline == "" {
		errs = append(errs, errors.New("project.timeline is required"))
	}
	if c.Project.Speed <= 0 {
		errs = append(errs, fmt.Errorf("project.speed must be positive, got %v", c.Project.Speed))
	}
	if c.Run.Tick <= 0 {
		errs = append(errs, fmt.Errorf("run.tick must be positive, got %s", c.Run.Tick))
	}
	switch c.Run.Policy {
	case "", "on-transition", "on-next-tick":
	default:
		errs = append(errs, fmt.Errorf("unknown run.policy %q", c.Run.Policy))
	}
	if c.Run.MaxTicks < 0 {
		errs = append(errs, fmt.Errorf("run.max_ticks must not be negative, got %d", c.Run.MaxTicks))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// YAML renders the configuration as a YAML document.
func (c *Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}
