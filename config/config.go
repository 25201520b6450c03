package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/spf13/viper"
)

type readerConfig struct {
	// MaxDepth limits the nesting of arrays and tuples in type names, 0 means no limit.
	MaxDepth int `mapstructure:"maxdepth"`

	// CacheSize is the number of parsed type names kept in memory.
	CacheSize int `mapstructure:"cachesize"`
}

type rpcConfig struct {
	// Retries is the number of attempts of an ABI download.
	Retries int

	// Timeout of a single download in seconds.
	Timeout int
}

type config struct {
	// MySQL configs.
	User     string
	Password string
	Hostname string
	Port     string
	Database string

	// Debug indicates if in debug mode.
	Debug    bool
	DebugSQL bool

	// Label is used as prefix in log output, e.g., mainnet, testnet.
	Label string

	// LogPath is the directory of log files.
	LogPath string `mapstructure:"logpath"`

	Reader readerConfig
	RPC    rpcConfig `mapstructure:"rpc"`
}

var cfg = defaultConfig()

func defaultConfig() config {
	return config{
		Reader: readerConfig{CacheSize: 1024},
		RPC:    rpcConfig{Retries: 3, Timeout: 10},
	}
}

// Load reads config/config.yml and validates it, any failure panics.
func Load(display bool) {
	viper.SetConfigName("config")
	viper.AddConfigPath("./config")
	// Incase test cases require loading configs
	viper.AddConfigPath("../config")

	if err := load(display); err != nil {
		panic(err)
	}

	if err := validateConfig(); err != nil {
		panic(err)
	}
}

/* ------------------------------
        `Get` functions
------------------------------ */

// DebugMode tells if running in debug mode.
func DebugMode() bool {
	return cfg.Debug
}

// DebugSQLMode tells if shows sql statement.
func DebugSQLMode() bool {
	return cfg.DebugSQL
}

// GetLabel returns custome label as part of the log output prefix.
func GetLabel() string {
	return cfg.Label
}

// GetLogPath returns the log directory, empty means the default.
func GetLogPath() string {
	return cfg.LogPath
}

// GetMaxDepth returns the type name nesting limit.
func GetMaxDepth() int {
	return cfg.Reader.MaxDepth
}

// GetCacheSize returns the number of cached type names.
func GetCacheSize() int {
	return cfg.Reader.CacheSize
}

// GetRPCRetries returns the number of ABI download attempts.
func GetRPCRetries() int {
	return cfg.RPC.Retries
}

// GetRPCTimeout returns the timeout of a single ABI download.
func GetRPCTimeout() time.Duration {
	return time.Duration(cfg.RPC.Timeout) * time.Second
}

// GetDbConnStr returns db connection string.
func GetDbConnStr() string {
	str := fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s",
		cfg.User,
		cfg.Password,
		cfg.Hostname,
		cfg.Port,
		cfg.Database,
	)

	return str
}

// GetDBInfo returns the connecting DB info.
func GetDBInfo() string {
	return fmt.Sprintf("(%s:%s)/%s", cfg.Hostname, cfg.Port, cfg.Database)
}

/* ------------------------------
         Utility Functions
------------------------------ */

func load(display bool) error {
	err := viper.ReadInConfig()
	if err != nil {
		return err
	}

	cfg = defaultConfig()
	err = viper.Unmarshal(&cfg)
	if err != nil {
		return err
	}

	if display {
		dbPass := cfg.Password
		if len(dbPass) != 0 {
			cfg.Password = "******"
		}

		configContent, err := json.MarshalIndent(cfg, "", "    ")
		if err != nil {
			panic(err)
		}

		log.Println(string(configContent))
		cfg.Password = dbPass
	}

	return nil
}

func validateConfig() error {
	if cfg.Reader.MaxDepth < 0 {
		return errors.New("reader.maxdepth must not be negative")
	}

	if cfg.Reader.CacheSize <= 0 {
		return errors.New("reader.cachesize must be great than 0")
	}

	if cfg.RPC.Retries <= 0 {
		return errors.New("rpc.retries must be great than 0")
	}

	if cfg.RPC.Timeout <= 0 {
		return errors.New("rpc.timeout must be great than 0")
	}

	return nil
}
