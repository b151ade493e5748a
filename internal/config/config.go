package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/ibeloyar/inscribe-dashboard/internal/model"
)

const (
	DefaultRunAddress     = ":8080"
	DefaultDatabaseURI    = ""
	DefaultNetwork        = string(model.NetworkMainnet)
	DefaultOrdinalsAPIURL = ""
	DefaultSecretKey      = "secret"
	DefaultTokenLifetime  = 24 * time.Hour
	DefaultLogLevel       = "info"
	DefaultPollInterval   = 30 * time.Second
	DefaultPollWorkers    = 4

	DefaultOrdinalsMainnetURL = "https://api.ordinalsbot.com"
	DefaultOrdinalsTestnetURL = "https://testnet-api.ordinalsbot.com"
	DefaultMempoolMainnetURL  = "https://mempool.space/api"
	DefaultMempoolTestnetURL  = "https://mempool.space/testnet/api"
	DefaultPriceAPIURL        = "https://api.coingecko.com/api/v3"
)

var ErrUnknownNetwork = errors.New("network must be mainnet or testnet")

type Config struct {
	RunAddress     string        `env:"RUN_ADDRESS"`
	DatabaseURI    string        `env:"DATABASE_URI"`
	Network        string        `env:"NETWORK"`
	OrdinalsAPIURL string        `env:"ORDINALS_API_URL"`
	OrdinalsAPIKey string        `env:"ORDINALSBOT_API_KEY"`
	MempoolMainnet string        `env:"MEMPOOL_API_BASE_URL_MAINNET"`
	MempoolTestnet string        `env:"MEMPOOL_API_BASE_URL_TESTNET"`
	PriceAPIURL    string        `env:"PRICE_API_URL"`
	SecretKey      string        `env:"SECRET_KEY"`
	TokenLifetime  time.Duration `env:"TOKEN_LIFETIME"`
	LogLevel       string        `env:"LOG_LEVEL"`
	PollInterval   time.Duration `env:"POLL_INTERVAL"`
	PollWorkers    int           `env:"POLL_WORKERS"`
}

// Read loads an optional dotenv file, then flags, then lets the environment
// override both.
func Read() (Config, error) {
	if err := loadDotEnv(); err != nil {
		return Config{}, err
	}

	config := Config{
		MempoolMainnet: DefaultMempoolMainnetURL,
		MempoolTestnet: DefaultMempoolTestnetURL,
		PriceAPIURL:    DefaultPriceAPIURL,
	}

	flag.StringVar(&config.RunAddress, "a", DefaultRunAddress, "Server run address")
	flag.StringVar(&config.DatabaseURI, "d", DefaultDatabaseURI, "Database connect string")
	flag.StringVar(&config.Network, "n", DefaultNetwork, "Bitcoin network: mainnet or testnet")
	flag.StringVar(&config.OrdinalsAPIURL, "o", DefaultOrdinalsAPIURL, "Inscription order API base URL (defaults per network)")
	flag.StringVar(&config.OrdinalsAPIKey, "k", "", "Inscription order API key")
	flag.StringVar(&config.SecretKey, "s", DefaultSecretKey, "Secret key for wallet session tokens")
	flag.DurationVar(&config.TokenLifetime, "t", DefaultTokenLifetime, "Wallet session lifetime (e.g. 1h, 30m)")
	flag.StringVar(&config.LogLevel, "l", DefaultLogLevel, "Log level")
	flag.DurationVar(&config.PollInterval, "i", DefaultPollInterval, "Active order poll interval, 0 disables polling")
	flag.IntVar(&config.PollWorkers, "w", DefaultPollWorkers, "Concurrent order poll workers")

	flag.Parse()

	if err := env.Parse(&config); err != nil {
		return config, err
	}

	if config.Network != string(model.NetworkMainnet) && config.Network != string(model.NetworkTestnet) {
		return config, fmt.Errorf("%w: %q", ErrUnknownNetwork, config.Network)
	}

	return config, nil
}

// loadDotEnv reads CONFIG_FILE when set, otherwise an optional ./.env.
// Variables already in the environment win.
func loadDotEnv() error {
	if file := os.Getenv("CONFIG_FILE"); file != "" {
		if err := godotenv.Load(file); err != nil {
			return fmt.Errorf("load config file %s: %w", file, err)
		}
		return nil
	}

	if _, err := os.Stat(".env"); err == nil {
		return godotenv.Load()
	}

	return nil
}

func (c Config) NetworkName() model.Network {
	return model.Network(c.Network)
}

func (c Config) OrdinalsURL() string {
	if c.OrdinalsAPIURL != "" {
		return c.OrdinalsAPIURL
	}
	if c.NetworkName() == model.NetworkTestnet {
		return DefaultOrdinalsTestnetURL
	}
	return DefaultOrdinalsMainnetURL
}

func (c Config) MempoolURL() string {
	if c.NetworkName() == model.NetworkTestnet {
		return c.MempoolTestnet
	}
	return c.MempoolMainnet
}
