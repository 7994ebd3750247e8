// Command plangen generates building plans and writes them as YAML.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/lawnchairsociety/hearthplan/internal/building"
	"github.com/lawnchairsociety/hearthplan/internal/catalog"
	"github.com/lawnchairsociety/hearthplan/internal/codes"
	"github.com/lawnchairsociety/hearthplan/internal/config"
	"github.com/lawnchairsociety/hearthplan/internal/export"
	"github.com/lawnchairsociety/hearthplan/internal/logger"
)

func main() {
	typeName := flag.String("type", "", "Building type (default from config)")
	className := flag.String("class", "", "Social class (default from config)")
	seed := flag.Int64("seed", 42, "Generation seed")
	seeds := flag.String("seeds", "", "Inclusive seed range such as 1-20 (overrides -seed)")
	stories := flag.Int("stories", 0, "Number of stories (0 for the archetype default)")
	basement := flag.String("basement", "", "Force a basement on or off (true/false)")
	lot := flag.String("lot", "", "Lot size as WxH (default derived from the seed)")
	outDir := flag.String("out", "", "Output directory (default from config)")
	configFile := flag.String("config", "hearthplan.yaml", "Path to config YAML file")
	envFile := flag.String("env", ".env", "Path to an optional .env file")
	autoFix := flag.Bool("autofix", false, "Apply automatic building code fixes")
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", *envFile, err)
		os.Exit(1)
	}

	logConfig, err := logger.LoadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading logging config: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Initialize(logConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *outDir != "" {
		cfg.Output.Directory = *outDir
	}
	if *autoFix {
		cfg.Compliance.AutoFix = true
	}

	base, err := baseOptions(cfg, *typeName, *className, *stories, *basement, *lot)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	first, last := *seed, *seed
	if *seeds != "" {
		if first, last, err = parseSeedRange(*seeds); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
	}

	if err := os.MkdirAll(cfg.Output.Directory, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	failed := 0
	for s := first; s <= last; s++ {
		opts := base
		opts.Seed = s
		ok, err := generateOne(cfg, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: seed %d: %v\n", s, err)
			os.Exit(1)
		}
		if !ok {
			failed++
		}
		if s == last {
			break
		}
	}

	if failed > 0 {
		logger.Error("Plans with mandatory violations", "count", failed)
		os.Exit(3)
	}
}

// generateOne builds, checks and writes a single plan. It reports false
// when the plan still has mandatory violations and the config treats that
// as a failure.
func generateOne(cfg *config.GeneratorConfig, opts building.Options) (bool, error) {
	p, err := building.Generate(opts)
	if err != nil {
		return false, err
	}

	rep := codes.Check(p)
	if cfg.Compliance.AutoFix && len(rep.Mandatory()) > 0 {
		var res codes.FixResult
		p, res = codes.AutoFix(p, rep)
		for _, note := range res.Notes {
			logger.Info("Auto-fix", "plan", p.ID, "note", note)
		}
		rep = codes.Check(p)
	}
	if cfg.Compliance.PrintReport {
		fmt.Printf("%s\n%s\n", p.ID, codes.FormatReport(rep))
	}

	path := cfg.Output.PathFor(p.Metadata.BuildingType, p.Metadata.SocialClass, p.Metadata.Seed)
	if err := export.WriteFile(path, p, export.Options{Fingerprint: cfg.Output.Fingerprint}); err != nil {
		return false, err
	}
	fingerprint, err := export.Fingerprint(p)
	if err != nil {
		return false, err
	}

	logger.Always("Plan written",
		"id", p.ID,
		"path", filepath.ToSlash(path),
		"floors", len(p.Floors),
		"rooms", len(p.Rooms()),
		"issues", len(p.Issues),
		"compliance", rep.Compliance.Overall,
		"fingerprint", fingerprint)

	return !cfg.Compliance.FailOnMandatory || len(rep.Mandatory()) == 0, nil
}

// baseOptions turns the command line into generation options, falling back
// to the configured defaults for type and class.
func baseOptions(cfg *config.GeneratorConfig, typeName, className string, stories int, basement, lot string) (building.Options, error) {
	opts := building.Options{
		BuildingType: cfg.Defaults.BuildingType,
		SocialClass:  cfg.Defaults.SocialClass,
	}
	var err error
	if typeName != "" {
		if opts.BuildingType, err = catalog.ParseBuildingType(typeName); err != nil {
			return opts, err
		}
	}
	if className != "" {
		if opts.SocialClass, err = catalog.ParseSocialClass(className); err != nil {
			return opts, err
		}
	}
	if stories > 0 {
		opts.Stories = &stories
	}
	if basement != "" {
		b, err := strconv.ParseBool(basement)
		if err != nil {
			return opts, fmt.Errorf("invalid -basement %q: %w", basement, err)
		}
		opts.Basement = &b
	}
	if lot != "" {
		size, err := parseLot(lot)
		if err != nil {
			return opts, err
		}
		opts.LotSize = &size
	}
	return opts, nil
}
