// Package main provides pelletstat, which prints the exact damage
// distribution of a multi-pellet weapon for a range of extra draws between
// pellets.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/rndtable/internal/config"
	"github.com/cory-johannsen/rndtable/internal/game/damage"
	"github.com/cory-johannsen/rndtable/internal/game/inventory"
	"github.com/cory-johannsen/rndtable/internal/observability"
	"github.com/cory-johannsen/rndtable/internal/report"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdout io.Writer) error {
	start := time.Now()

	fs := flag.NewFlagSet("pelletstat", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to configuration file (defaults only when empty)")
	weapon := fs.String("weapon", "", "weapon ID from the weapons directory")
	weaponsDir := fs.String("weapons-dir", "", "path to weapon YAML definitions directory")
	pellets := fs.Int("pellets", 0, "pellet count when no weapon is given")
	from := fs.Int("from", 0, "first extra-calls value (inclusive)")
	to := fs.Int("to", 0, "last extra-calls value (inclusive)")
	format := fs.String("format", "", "report format: text, json or yaml")
	probabilities := fs.Bool("probabilities", false, "print percentages instead of counts")
	color := fs.Bool("color", false, "highlight text output with ANSI codes")
	traceStart := fs.Int("trace-start", -1, "trace a single shot from this cursor instead of the range report")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "weapon":
			cfg.Analysis.Weapon = *weapon
		case "weapons-dir":
			cfg.Analysis.WeaponsDir = *weaponsDir
		case "pellets":
			cfg.Analysis.Pellets = *pellets
			if !isSet(fs, "weapon") {
				cfg.Analysis.Weapon = ""
			}
		case "from":
			cfg.Analysis.ExtraCallsFrom = *from
			// -from alone analyses a single extra-calls value.
			if !isSet(fs, "to") {
				cfg.Analysis.ExtraCallsTo = *from
			}
		case "to":
			cfg.Analysis.ExtraCallsTo = *to
		case "format":
			cfg.Report.Format = *format
		case "probabilities":
			cfg.Report.Probabilities = *probabilities
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()
	logger = logger.With(zap.String("run_id", uuid.NewString()))

	title := ""
	pelletCount := cfg.Analysis.Pellets
	if cfg.Analysis.Weapon != "" {
		reg, err := inventory.LoadRegistry(cfg.Analysis.WeaponsDir)
		if err != nil {
			return fmt.Errorf("loading weapons: %w", err)
		}
		w := reg.Weapon(cfg.Analysis.Weapon)
		if w == nil {
			return fmt.Errorf("unknown weapon %q (available: %v)", cfg.Analysis.Weapon, reg.WeaponIDs())
		}
		unit := "pellet"
		if w.IsSpread() {
			unit = "pellets"
		}
		title = fmt.Sprintf("%s (%d %s)", w.Name, w.Pellets, unit)
		pelletCount = w.Pellets
	}

	if *traceStart >= 0 {
		tr, err := damage.TraceShot(logger, *traceStart, pelletCount, cfg.Analysis.ExtraCallsFrom)
		if err != nil {
			return err
		}
		logger.Info("shot traced",
			zap.Int("start", tr.Start),
			zap.Int("total", tr.Total),
		)
		return report.WriteTrace(stdout, cfg.Report.Format, tr)
	}

	logger.Info("enumerating damage distribution",
		zap.String("weapon", cfg.Analysis.Weapon),
		zap.Int("pellets", pelletCount),
		zap.Int("extra_calls_from", cfg.Analysis.ExtraCallsFrom),
		zap.Int("extra_calls_to", cfg.Analysis.ExtraCallsTo),
	)
	res, err := damage.CalculateForRange(pelletCount, cfg.Analysis.ExtraCallsFrom, cfg.Analysis.ExtraCallsTo)
	if err != nil {
		return err
	}
	logger.Info("enumeration complete",
		zap.Int("total_shots", res.TotalShots),
		zap.Duration("elapsed", time.Since(start)),
	)

	return report.Write(stdout, cfg.Report.Format, res, report.Options{
		Title:         title,
		Probabilities: cfg.Report.Probabilities,
		Color:         *color,
	})
}

// loadConfig reads path when given; otherwise it uses defaults and
// environment overrides only.
func loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.LoadFromViper(config.NewViper())
}

func isSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
