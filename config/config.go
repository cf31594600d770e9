package config

import (
	"flag"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/vadiminshakov/btcterm/internal/clients"
)

const (
	defaultRequestTimeout     = 3 * time.Second
	defaultKeyWait            = 500 * time.Millisecond
	defaultRefreshInterval    = 2 * time.Second
	defaultNonInteractiveWait = 2 * time.Second
	defaultConcurrency        = 1
	defaultLogLevel           = "info"
)

type Config struct {
	// BaseURL quote provider endpoint.
	BaseURL string
	// RequestTimeout bounds every single HTTP request.
	RequestTimeout time.Duration
	// KeyWait how long to wait for a key press after each redraw.
	KeyWait time.Duration
	// RefreshInterval pause after each cycle.
	RefreshInterval time.Duration
	// NonInteractiveWait extra pause per cycle when there is no terminal input.
	NonInteractiveWait time.Duration
	// Concurrency max parallel pair fetches, 1 fetches one by one.
	Concurrency int
	// LogFile path of the log file, empty disables logging.
	LogFile  string
	LogLevel string
	// ShowBanner print the banner before the first redraw.
	ShowBanner bool
	// Setup run the configuration wizard before starting.
	Setup bool
}

type ConfigTmp struct {
	BaseURL            string        `yaml:"base_url,omitempty"`
	RequestTimeout     time.Duration `yaml:"request_timeout,omitempty"`
	KeyWait            time.Duration `yaml:"key_wait,omitempty"`
	RefreshInterval    time.Duration `yaml:"refresh_interval,omitempty"`
	NonInteractiveWait time.Duration `yaml:"non_interactive_wait,omitempty"`
	Concurrency        int           `yaml:"concurrency,omitempty"`
	LogFile            string        `yaml:"log_file,omitempty"`
	LogLevel           string        `yaml:"log_level,omitempty"`
	ShowBanner         *bool         `yaml:"show_banner,omitempty"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		BaseURL:            clients.DefaultCoinbaseURL,
		RequestTimeout:     defaultRequestTimeout,
		KeyWait:            defaultKeyWait,
		RefreshInterval:    defaultRefreshInterval,
		NonInteractiveWait: defaultNonInteractiveWait,
		Concurrency:        defaultConcurrency,
		LogLevel:           defaultLogLevel,
		ShowBanner:         true,
	}
}

// Get builds the configuration from command line arguments (without the program name).
// Values from a yaml file given by --config are applied first, flags set
// explicitly on the command line override them.
func Get(args []string) (Config, error) {
	fs := flag.NewFlagSet("btcterm", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	def := Default()
	configPath := fs.String("config", "", "path to yaml config")
	baseURL := fs.String("base-url", def.BaseURL, "quote provider base URL")
	timeout := fs.Duration("timeout", def.RequestTimeout, "timeout of a single HTTP request")
	keyWait := fs.Duration("key-wait", def.KeyWait, "how long to wait for a key press after each redraw")
	interval := fs.Duration("interval", def.RefreshInterval, "pause between refresh cycles")
	nonInteractiveWait := fs.Duration("non-interactive-wait", def.NonInteractiveWait, "extra pause per cycle without a terminal")
	concurrency := fs.Int("concurrency", def.Concurrency, "max parallel pair fetches, 1 means one by one")
	logFile := fs.String("log-file", def.LogFile, "write logs to this file, empty disables logging")
	logLevel := fs.String("log-level", def.LogLevel, "log level: debug, info, warn, error")
	noBanner := fs.Bool("no-banner", false, "do not print the startup banner")
	runSetup := fs.Bool("setup", false, "run the configuration wizard first")

	if err := fs.Parse(args); err != nil {
		return Config{}, errors.Wrap(err, "failed to parse flags")
	}

	conf := def
	if *configPath != "" {
		fromFile, err := getYaml(*configPath)
		if err != nil {
			return Config{}, err
		}
		conf = fromFile
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "base-url":
			conf.BaseURL = *baseURL
		case "timeout":
			conf.RequestTimeout = *timeout
		case "key-wait":
			conf.KeyWait = *keyWait
		case "interval":
			conf.RefreshInterval = *interval
		case "non-interactive-wait":
			conf.NonInteractiveWait = *nonInteractiveWait
		case "concurrency":
			conf.Concurrency = *concurrency
		case "log-file":
			conf.LogFile = *logFile
		case "log-level":
			conf.LogLevel = *logLevel
		case "no-banner":
			conf.ShowBanner = !*noBanner
		case "setup":
			conf.Setup = *runSetup
		}
	})

	if err := conf.Validate(); err != nil {
		return Config{}, err
	}
	return conf, nil
}

func getYaml(path string) (Config, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "failed to read config %s", path)
	}

	var c ConfigTmp
	if err := yaml.Unmarshal(f, &c); err != nil {
		return Config{}, errors.Wrapf(err, "failed to parse yaml config %s", path)
	}

	conf := Default()
	if c.BaseURL != "" {
		conf.BaseURL = c.BaseURL
	}
	if c.RequestTimeout != 0 {
		conf.RequestTimeout = c.RequestTimeout
	}
	if c.KeyWait != 0 {
		conf.KeyWait = c.KeyWait
	}
	if c.RefreshInterval != 0 {
		conf.RefreshInterval = c.RefreshInterval
	}
	if c.NonInteractiveWait != 0 {
		conf.NonInteractiveWait = c.NonInteractiveWait
	}
	if c.Concurrency != 0 {
		conf.Concurrency = c.Concurrency
	}
	if c.LogFile != "" {
		conf.LogFile = c.LogFile
	}
	if c.LogLevel != "" {
		conf.LogLevel = c.LogLevel
	}
	if c.ShowBanner != nil {
		conf.ShowBanner = *c.ShowBanner
	}

	return conf, nil
}

// Validate checks that every value is usable.
func (c Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid base url %q", c.BaseURL)
	}

	durations := []struct {
		name  string
		value time.Duration
	}{
		{"request_timeout", c.RequestTimeout},
		{"key_wait", c.KeyWait},
		{"refresh_interval", c.RefreshInterval},
		{"non_interactive_wait", c.NonInteractiveWait},
	}
	for _, d := range durations {
		if d.value <= 0 {
			return fmt.Errorf("invalid '%s' param, must be positive, got %s", d.name, d.value)
		}
	}

	if c.Concurrency < 1 {
		return fmt.Errorf("invalid 'concurrency' param, must be at least 1, got %d", c.Concurrency)
	}

	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrapf(err, "invalid 'log_level' param")
	}

	return nil
}

// NewLogger builds the application logger. The dashboard owns stdout, so
// logs go to LogFile only; without it the logger discards everything.
func (c Config) NewLogger() (*zap.Logger, error) {
	if c.LogFile == "" {
		return zap.NewNop(), nil
	}

	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, errors.Wrap(err, "invalid log level")
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{c.LogFile}
	zc.ErrorOutputPaths = []string{c.LogFile}

	logger, err := zc.Build()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build logger")
	}
	return logger, nil
}
