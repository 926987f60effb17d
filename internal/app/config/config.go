package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v10"
)

const (
	FormatText  = "text"
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

type Config struct {
	NetAddr      string `env:"RUN_ADDRESS"`
	LogLevel     string `env:"LOG_LEVEL"`
	OutputFormat string `env:"OUTPUT_FORMAT"`
	SampleOrders bool   `env:"SAMPLE_ORDERS"`
}

func InitConfig() (config Config) {
	flag.StringVar(&config.NetAddr, "a", "", "net address host:port, orders are printed once if empty")
	flag.StringVar(&config.LogLevel, "l", "info", "log level")
	flag.StringVar(&config.OutputFormat, "f", FormatText, "output format: text, table, json or yaml")
	flag.BoolVar(&config.SampleOrders, "s", true, "balance the built-in sample orders")
	flag.Parse()

	if err := env.Parse(&config); err != nil {
		panic(fmt.Errorf("error while parsing config: %w", err))
	}

	if err := config.Validate(); err != nil {
		panic(fmt.Errorf("error while validating config: %w", err))
	}

	return
}

func (c Config) Validate() error {
	switch c.OutputFormat {
	case FormatText, FormatTable, FormatJSON, FormatYAML:
		return nil
	default:
		return fmt.Errorf("unknown output format %q", c.OutputFormat)
	}
}
