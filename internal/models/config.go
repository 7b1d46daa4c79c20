package models

import (
	"errors"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type SeedMenuItem struct {
	Name  string  `mapstructure:"name"`
	Price float64 `mapstructure:"price"`
}

type Config struct {
	RestaurantName string         `mapstructure:"restaurant_name"`
	TaxRate        float64        `mapstructure:"tax_rate"` // GST percent applied on the subtotal
	Currency       string         `mapstructure:"currency"`
	ReceiptFolder  string         `mapstructure:"receipt_folder"`
	SeedMenu       []SeedMenuItem `mapstructure:"seed_menu"`
}

// LoadConfig initializes and reads the configuration using Viper. Every key
// has a default, so running without a config file or env vars is fine.
func LoadConfig(cfgFile string) (*Config, error) {
	_ = godotenv.Load()

	viper.SetDefault("restaurant_name", "Simple Restaurant")
	viper.SetDefault("tax_rate", 5.0)
	viper.SetDefault("currency", "Rs")
	viper.SetDefault("receipt_folder", ".")
	viper.SetDefault("seed_menu", []map[string]interface{}{
		{"name": "Margherita Pizza", "price": 199.0},
		{"name": "Veg Burger", "price": 99.0},
		{"name": "French Fries", "price": 79.0},
		{"name": "Caesar Salad", "price": 129.0},
		{"name": "Cold Coffee", "price": 89.0},
		{"name": "Paneer Butter Masala", "price": 179.0},
	})

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("restobill")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv() // Read in environment variables that match

	if err := viper.ReadInConfig(); err != nil {
		// a missing default config file is fine; an unreadable explicit one is not
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	if config.TaxRate < 0 {
		return nil, fmt.Errorf("tax_rate must be non-negative, got %v", config.TaxRate)
	}

	return &config, nil
}
