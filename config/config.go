// Package config loads the settings of a simulation run from defaults, a YAML
// file, a .env file, HOPSIM_* environment variables and command line flags,
// in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sarchlab/hopsim/topology"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of the environment variables that override the
// configuration. For example, HOPSIM_TOPOLOGY_NODES sets topology.nodes.
const EnvPrefix = "HOPSIM"

// TopologyFromFile is the topology kind that reads the links from a file.
const TopologyFromFile = "file"

var (
	// ErrInvalid is wrapped by every validation error.
	ErrInvalid = errors.New("invalid configuration")

	// ErrNoStopCondition is returned when neither an arrival budget nor a
	// time limit is set. The message cycle never ends by itself.
	ErrNoStopCondition = errors.New(
		"either max_arrivals or time_limit must be set")
)

// Config is the root configuration of a run.
type Config struct {
	Seed        int64          `mapstructure:"seed"`
	Topology    TopologyConfig `mapstructure:"topology"`
	LinkLatency float64        `mapstructure:"link_latency"`
	MaxArrivals uint64         `mapstructure:"max_arrivals"`
	TimeLimit   float64        `mapstructure:"time_limit"`
	Output      string         `mapstructure:"output"`
	NoRecording bool           `mapstructure:"no_recording"`
	// ParallelIDs gives messages xids instead of sequence numbers.
	ParallelIDs bool           `mapstructure:"parallel_ids"`
	Monitor     MonitorConfig  `mapstructure:"monitor"`
	Trace       TraceConfig    `mapstructure:"trace"`
	Log         LogConfig      `mapstructure:"log"`
}

// TopologyConfig selects the network.
type TopologyConfig struct {
	// Kind is one of ring, line, star, mesh or file.
	Kind  string `mapstructure:"kind"`
	Nodes int    `mapstructure:"nodes"`
	File  string `mapstructure:"file"`
}

// MonitorConfig controls the web monitor.
type MonitorConfig struct {
	Enable      bool `mapstructure:"enable"`
	Port        int  `mapstructure:"port"`
	OpenBrowser bool `mapstructure:"open_browser"`
}

// TraceConfig controls the trace lines written at debug and info level.
type TraceConfig struct {
	Events bool `mapstructure:"events"`
	Msgs   bool `mapstructure:"msgs"`
	Ports  bool `mapstructure:"ports"`
}

// LogConfig defines logger settings.
type LogConfig struct {
	// Level: debug, info, warn, error
	Level string `mapstructure:"level"`
	// Format: console or json
	Format string `mapstructure:"format"`
	// Outputs: stdout, stderr, or file paths
	Outputs     []string       `mapstructure:"outputs"`
	Rotation    RotationConfig `mapstructure:"rotation"`
	Development bool           `mapstructure:"development"`
}

// RotationConfig controls log file rotation for file outputs.
type RotationConfig struct {
	Enable     bool `mapstructure:"enable"`
	MaxSizeMB  int  `mapstructure:"max_size_mb"`
	MaxBackups int  `mapstructure:"max_backups"`
	MaxAgeDays int  `mapstructure:"max_age_days"`
	Compress   bool `mapstructure:"compress"`
}

// Default returns the configuration of the classic three node ring.
func Default() *Config {
	return &Config{
		Seed: 0,
		Topology: TopologyConfig{
			Kind:  "ring",
			Nodes: 3,
		},
		LinkLatency: 0.1,
		MaxArrivals: 0,
		TimeLimit:   0,
		Monitor: MonitorConfig{
			Port: 0,
		},
		Log: LogConfig{
			Level:   "info",
			Format:  "console",
			Outputs: []string{"stderr"},
			Rotation: RotationConfig{
				MaxSizeMB:  50,
				MaxBackups: 3,
				MaxAgeDays: 28,
				Compress:   true,
			},
		},
	}
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("seed", cfg.Seed)
	v.SetDefault("topology.kind", cfg.Topology.Kind)
	v.SetDefault("topology.nodes", cfg.Topology.Nodes)
	v.SetDefault("topology.file", cfg.Topology.File)
	v.SetDefault("link_latency", cfg.LinkLatency)
	v.SetDefault("max_arrivals", cfg.MaxArrivals)
	v.SetDefault("time_limit", cfg.TimeLimit)
	v.SetDefault("output", cfg.Output)
	v.SetDefault("no_recording", cfg.NoRecording)
	v.SetDefault("parallel_ids", cfg.ParallelIDs)
	v.SetDefault("monitor.enable", cfg.Monitor.Enable)
	v.SetDefault("monitor.port", cfg.Monitor.Port)
	v.SetDefault("monitor.open_browser", cfg.Monitor.OpenBrowser)
	v.SetDefault("trace.events", cfg.Trace.Events)
	v.SetDefault("trace.msgs", cfg.Trace.Msgs)
	v.SetDefault("trace.ports", cfg.Trace.Ports)
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.format", cfg.Log.Format)
	v.SetDefault("log.outputs", cfg.Log.Outputs)
	v.SetDefault("log.development", cfg.Log.Development)
	v.SetDefault("log.rotation.enable", cfg.Log.Rotation.Enable)
	v.SetDefault("log.rotation.max_size_mb", cfg.Log.Rotation.MaxSizeMB)
	v.SetDefault("log.rotation.max_backups", cfg.Log.Rotation.MaxBackups)
	v.SetDefault("log.rotation.max_age_days", cfg.Log.Rotation.MaxAgeDays)
	v.SetDefault("log.rotation.compress", cfg.Log.Rotation.Compress)
}

// Options tells Load where to look for settings.
type Options struct {
	// ConfigFile is the YAML file to read. If empty, HOPSIM_CONFIG is used,
	// and without it no file is read.
	ConfigFile string

	// EnvFile is the .env file to load. If empty, .env in the working
	// directory is loaded when it exists.
	EnvFile string

	// Flags are bound through FlagKeys. Only the flags that are set on the
	// command line override other sources.
	Flags *pflag.FlagSet

	// TopologyOnly skips the checks that only matter for running a
	// simulation.
	TopologyOnly bool
}

// Load resolves the configuration and validates it.
func Load(opts Options) (*Config, error) {
	if err := loadEnvFile(opts.EnvFile); err != nil {
		return nil, err
	}

	cfg := Default()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	setDefaults(v, cfg)

	if err := bindFlags(v, opts.Flags); err != nil {
		return nil, err
	}

	path := opts.ConfigFile
	if path == "" {
		path = os.Getenv(EnvPrefix + "_CONFIG")
	}

	if path != "" {
		v.SetConfigFile(path)

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	validate := cfg.Validate
	if opts.TopologyOnly {
		validate = cfg.ValidateTopology
	}

	if err := validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func loadEnvFile(path string) error {
	if path == "" {
		path = ".env"

		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return nil
		}
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %s: %w", path, err)
	}

	return nil
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	if flags == nil {
		return nil
	}

	for flagName, key := range FlagKeys {
		f := flags.Lookup(flagName)
		if f == nil {
			continue
		}

		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", flagName, err)
		}
	}

	return nil
}

// ValidateTopology checks the network and logging settings only.
func (c *Config) ValidateTopology() error {
	if err := c.Topology.validate(); err != nil {
		return err
	}

	return c.Log.validate()
}

func (c *TopologyConfig) validate() error {
	c.Kind = strings.ToLower(strings.TrimSpace(c.Kind))

	switch {
	case c.Kind == TopologyFromFile:
		if c.File == "" {
			return invalid("topology.file must be set for a file topology")
		}
	case slices.Contains(topology.Kinds, c.Kind):
		if c.Nodes < 2 {
			return invalid("topology.nodes must be at least 2, got %d", c.Nodes)
		}
	default:
		return invalid("unknown topology.kind %q", c.Kind)
	}

	return nil
}

// Validate checks that the configuration describes a run that can start and
// that ends.
func (c *Config) Validate() error {
	if err := c.Topology.validate(); err != nil {
		return err
	}

	if c.LinkLatency < 0 {
		return invalid("link_latency cannot be negative")
	}

	if c.TimeLimit < 0 {
		return invalid("time_limit cannot be negative")
	}

	if c.MaxArrivals == 0 && c.TimeLimit == 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, ErrNoStopCondition)
	}

	if c.MaxArrivals == 0 && c.LinkLatency == 0 {
		return invalid("time_limit cannot stop a run with zero link_latency")
	}

	// no_recording wins over an output name set in a config file.
	if c.NoRecording {
		c.Output = ""
	}

	if c.Monitor.Port != 0 && (c.Monitor.Port <= 1000 || c.Monitor.Port > 65535) {
		return invalid("monitor.port must be in (1000, 65535], got %d",
			c.Monitor.Port)
	}

	return c.Log.validate()
}

func (c *LogConfig) validate() error {
	switch strings.ToLower(strings.TrimSpace(c.Level)) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return invalid("invalid log.level %q", c.Level)
	}

	switch strings.ToLower(c.Format) {
	case "", "console", "json":
	default:
		return invalid("invalid log.format %q", c.Format)
	}

	if c.Format == "" {
		c.Format = "console"
	}

	if len(c.Outputs) == 0 {
		c.Outputs = []string{"stderr"}
	}

	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}
