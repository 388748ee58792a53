package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	Kafka   KafkaConfig   `yaml:"kafka"`
	Data    DataConfig    `yaml:"data"`
	Booking BookingConfig `yaml:"booking"`
}

type HTTPConfig struct {
	Address string `yaml:"address"`
}

// KafkaConfig configures booking-event publishing. Empty Brokers disables
// eventing entirely.
type KafkaConfig struct {
	Brokers            []string `yaml:"brokers"`
	BookingTopic       string   `yaml:"booking_topic"`
	NotificationsTopic string   `yaml:"notifications_topic"`
	GroupID            string   `yaml:"group_id"`
}

type DataConfig struct {
	RoutesFile string `yaml:"routes_file"`
}

type BookingConfig struct {
	// MaxStops is the engine's hop budget for booking-time route
	// discovery: the number of intermediate airports allowed.
	MaxStops int `yaml:"max_stops"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
