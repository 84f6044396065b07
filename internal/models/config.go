package models

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type CloudStorageConfig struct {
	Provider string `mapstructure:"provider"`
	Region   string `mapstructure:"region"`
}

type ForestConfig struct {
	Trees    int `mapstructure:"trees"`
	MaxDepth int `mapstructure:"max_depth"`
	MinLeaf  int `mapstructure:"min_leaf"`
}

type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Sender   string `mapstructure:"sender"`
	Password string `mapstructure:"password"`
	BaseURL  string `mapstructure:"base_url"` // link prefix used in verification emails
}

type Config struct {
	ServerAddress    string             `mapstructure:"server_address"`
	DatabaseURL      string             `mapstructure:"database_url"`
	JwtSecret        string             `mapstructure:"jwt_secret"`
	TokenExpiry      time.Duration      `mapstructure:"token_expiry"`
	ProductDataPath  string             `mapstructure:"product_data_path"`
	BookingDataPath  string             `mapstructure:"booking_data_path"`
	Seed             int                `mapstructure:"seed"`
	KafkaEnabled     bool               `mapstructure:"kafka_enabled"`
	KafkaBrokerList  string             `mapstructure:"kafka_broker_list"`
	SessionTimeoutMs int                `mapstructure:"session_timeout_ms"`
	PriceEventTopic  string             `mapstructure:"price_event_topic"`
	MenuEventTopic   string             `mapstructure:"menu_event_topic"`
	AllowedOrigins   []string           `mapstructure:"allowed_origins"`
	Forest           ForestConfig       `mapstructure:"forest"`
	SMTP             SMTPConfig         `mapstructure:"smtp"`
	CloudStorage     CloudStorageConfig `mapstructure:"cloud_storage"`
	ExportPath       string             `mapstructure:"export_path"`
}

// LoadConfig initialises and reads the configuration using Viper
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Default config location
		viper.AddConfigPath("examples")
		viper.SetConfigName("config")
		viper.SetConfigType("json")
	}

	viper.AutomaticEnv() // Read in environment variables that match

	viper.SetDefault("server_address", ":8000")
	viper.SetDefault("token_expiry", "30m")
	viper.SetDefault("product_data_path", "data/product_data.csv")
	viper.SetDefault("booking_data_path", "data/booking_metadata.csv")
	viper.SetDefault("seed", 42)
	viper.SetDefault("price_event_topic", "price_estimates")
	viper.SetDefault("menu_event_topic", "menu_pricing")
	viper.SetDefault("forest.trees", 100)
	viper.SetDefault("forest.max_depth", 12)
	viper.SetDefault("forest.min_leaf", 2)

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToTimeDurationHookFunc(),
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &config, nil
}
