// Command planmap prints ASCII floor maps of a plan written by plangen.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/lawnchairsociety/hearthplan/internal/config"
	"github.com/lawnchairsociety/hearthplan/internal/export"
	"github.com/lawnchairsociety/hearthplan/internal/plan"
	"github.com/lawnchairsociety/hearthplan/internal/preview"
)

func main() {
	inputFile := flag.String("input", "", "Path to a plan YAML file")
	floor := flag.String("floor", "all", "Floor level to display, or all")
	outputFile := flag.String("output", "", "Output file (empty for stdout)")
	showLegend := flag.Bool("legend", true, "Show legend")
	configFile := flag.String("config", "hearthplan.yaml", "Path to config YAML file")
	furniture := flag.Bool("furniture", false, "Draw furniture and fixtures")
	light := flag.Bool("light", false, "Draw light levels on empty floor tiles")
	flag.Parse()

	if *inputFile == "" {
		fmt.Fprintln(os.Stderr, "Error: -input is required")
		os.Exit(2)
	}

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	opts := preview.Options{
		Furniture: cfg.Preview.ShowFurniture || *furniture,
		Light:     cfg.Preview.ShowLight || *light,
	}

	p, err := export.ReadFile(*inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading plan: %v\n", err)
		os.Exit(1)
	}

	out, err := render(p, *floor, opts, *showLegend)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *outputFile != "" {
		if err := os.WriteFile(*outputFile, []byte(out), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Map written to %s\n", *outputFile)
		return
	}
	fmt.Print(out)
}

func render(p plan.BuildingPlan, floor string, opts preview.Options, legend bool) (string, error) {
	var out strings.Builder
	if floor == "all" {
		out.WriteString(preview.Plan(p, opts))
	} else {
		level, err := strconv.Atoi(floor)
		if err != nil {
			return "", fmt.Errorf("invalid -floor %q: want a level or all", floor)
		}
		s, err := preview.Floor(p, level, opts)
		if err != nil {
			return "", err
		}
		out.WriteString(s)
	}
	if legend {
		out.WriteString(preview.Legend())
	}
	return out.String(), nil
}
