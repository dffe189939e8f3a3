// Package ebac implements the ebac command, a Widmark blood ethanol
// estimate over a single drinking session.
package ebac

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/louisbranch/widmark/internal/core/units"
	"github.com/louisbranch/widmark/internal/ethanol"
	"github.com/louisbranch/widmark/internal/platform/config"
)

// Config holds ebac command configuration.
type Config struct {
	VolumeML float64 `env:"WIDMARK_VOLUME_ML"`
	ABV      float64 `env:"WIDMARK_ABV"`
	WeightKG float64 `env:"WIDMARK_WEIGHT_KG"`
	Profile  string  `env:"WIDMARK_PROFILE" envDefault:"population"`
	Hours    float64 `env:"WIDMARK_HOURS"`
}

// ParseConfig parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.Float64Var(&cfg.VolumeML, "volume-ml", cfg.VolumeML, "beverage volume in milliliters")
	fs.Float64Var(&cfg.ABV, "abv", cfg.ABV, "ethanol volume fraction in [0,1], e.g. 0.05 for 5%")
	fs.Float64Var(&cfg.WeightKG, "weight-kg", cfg.WeightKG, "body weight in kilograms")
	fs.StringVar(&cfg.Profile, "profile", cfg.Profile, "physiologic profile: population, male, or female")
	fs.Float64Var(&cfg.Hours, "hours", cfg.Hours, "hours elapsed since drinking began")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run executes the ebac command.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	if cfg.VolumeML <= 0 {
		return errors.New("volume must be positive")
	}
	if cfg.ABV < 0 || cfg.ABV > 1 {
		return fmt.Errorf("abv must be a fraction in [0,1], got %v", cfg.ABV)
	}
	if cfg.WeightKG <= 0 {
		return errors.New("weight must be positive")
	}
	if cfg.Hours < 0 {
		return errors.New("hours must be non-negative")
	}
	profile, err := ethanol.ProfileByName(cfg.Profile)
	if err != nil {
		return err
	}

	mass := ethanol.EthanolIngested(units.Of(cfg.VolumeML, units.Milli(units.Liters)), cfg.ABV)
	weight := units.Of(cfg.WeightKG, units.Kilograms)
	peak := ethanol.PeakSerumEthanol(mass, weight, profile.Vd)
	estimate := ethanol.EBAC(mass, weight, units.Of(cfg.Hours, units.Hours), profile)

	estimateMgPerDL := estimate.In(units.MilligramsPerDeciliter)
	displayed := estimateMgPerDL
	if displayed < 0 {
		displayed = 0
	}

	fmt.Fprintf(out, "Ethanol ingested: %.2f g\n", mass.In(units.Grams))
	fmt.Fprintf(out, "Peak serum ethanol: %.2f mg/dL\n", peak.In(units.MilligramsPerDeciliter))
	fmt.Fprintf(out, "Estimated BAC after %.2f h: %.2f mg/dL\n", cfg.Hours, displayed)
	if estimateMgPerDL <= 0 {
		fmt.Fprintln(out, "Fully eliminated.")
		return nil
	}
	if matched, ok := ethanol.Classify(estimate); ok {
		fmt.Fprintf(out, "Expected effects: %s\n", matched.Description)
	} else {
		fmt.Fprintln(out, "Expected effects: below clinical thresholds")
	}
	return nil
}
