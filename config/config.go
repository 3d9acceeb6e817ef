package config

import (
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	ModeCLI    = "cli"
	ModeServer = "server"
)

type SchedulerConfig struct {
	Port     int
	Mode     string
	LogLevel string

	// TimeUnit is the wall-clock length of one simulated time unit.
	TimeUnit time.Duration
	// Seed of the workload; 0 picks one from the current time.
	Seed int64
	// ProcessCount skips the terminal prompt when positive.
	ProcessCount    int
	MaxProcessCount int
}

var once sync.Once
var config *SchedulerConfig

// GetSchedulerConfig loads config.yaml from the working directory once.
func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		cfg, err := Load("./")
		if err != nil {
			log.Fatalln(err)
		}
		config = cfg
	})

	return config
}

// Load reads config.yaml from the given directories. A missing file is not
// an error: defaults and SCHEDULER_* environment variables still apply.
func Load(paths ...string) (*SchedulerConfig, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetDefault("port", 9095)
	v.SetDefault("mode", ModeCLI)
	v.SetDefault("log_level", "info")
	v.SetDefault("simulation.time_unit", "1s")
	v.SetDefault("simulation.seed", 0)
	v.SetDefault("simulation.process_count", 0)
	v.SetDefault("simulation.max_process_count", 100)

	v.SetEnvPrefix("scheduler")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	return &SchedulerConfig{
		Port:            v.GetInt("port"),
		Mode:            strings.ToLower(v.GetString("mode")),
		LogLevel:        v.GetString("log_level"),
		TimeUnit:        v.GetDuration("simulation.time_unit"),
		Seed:            v.GetInt64("simulation.seed"),
		ProcessCount:    v.GetInt("simulation.process_count"),
		MaxProcessCount: v.GetInt("simulation.max_process_count"),
	}, nil
}
