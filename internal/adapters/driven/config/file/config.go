package file

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/companynorm/internal/core/domain"
	"github.com/custodia-labs/companynorm/internal/extractors/money"
)

// Config holds the settings read from a configuration file.
type Config struct {
	Currencies []Currency `toml:"currency"`
}

// Currency is one entry of the currency table.
type Currency struct {
	Marker string  `toml:"marker"`
	Rate   float64 `toml:"rate"`
}

// Load reads and validates the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates TOML configuration data.
// Unknown keys are rejected so that typos do not pass silently.
func Parse(data []byte) (*Config, error) {
	var cfg Config

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidConfig, strict.String())
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that every currency entry is usable.
func (c *Config) Validate() error {
	seen := make(map[string]bool, len(c.Currencies))
	for i, cur := range c.Currencies {
		if cur.Marker == "" {
			return fmt.Errorf("%w: currency %d: empty marker", domain.ErrInvalidConfig, i+1)
		}
		if cur.Rate <= 0 {
			return fmt.Errorf("%w: currency %q: rate must be positive", domain.ErrInvalidConfig, cur.Marker)
		}
		if seen[cur.Marker] {
			return fmt.Errorf("%w: currency %q: duplicate marker", domain.ErrInvalidConfig, cur.Marker)
		}
		seen[cur.Marker] = true
	}
	return nil
}

// MoneyOptions converts the configuration into money extractor options.
// Without currency entries the built-in table stays in effect.
func (c *Config) MoneyOptions() []money.Option {
	if c == nil || len(c.Currencies) == 0 {
		return nil
	}

	table := make([]money.Currency, len(c.Currencies))
	for i, cur := range c.Currencies {
		table[i] = money.Currency{Marker: cur.Marker, Rate: cur.Rate}
	}
	return []money.Option{money.WithCurrencies(table)}
}
