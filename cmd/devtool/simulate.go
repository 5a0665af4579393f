package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/osse101/PackOpener_Go/internal/catalog"
	"github.com/osse101/PackOpener_Go/internal/config"
	"github.com/osse101/PackOpener_Go/internal/domain"
	"github.com/osse101/PackOpener_Go/internal/pack"
	"github.com/osse101/PackOpener_Go/internal/packdraw"
)

// SimulateCommand runs the pack drawer offline against the files on disk
type SimulateCommand struct{}

func (c *SimulateCommand) Name() string {
	return "simulate"
}

func (c *SimulateCommand) Description() string {
	return "Estimate rarity odds for a pack: simulate <pack-id> [trials] [seed]"
}

func (c *SimulateCommand) Run(args []string) error {
	if len(args) < 1 {
		return errors.New("pack id required")
	}
	packID := args[0]

	trials := defaultTrials
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n <= 0 {
			return fmt.Errorf("invalid trials %q", args[1])
		}
		trials = n
	}

	seed := uint64(time.Now().UnixNano())
	if len(args) > 2 {
		s, err := strconv.ParseUint(args[2], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid seed %q", args[2])
		}
		seed = s
	}

	cat, err := catalog.Load(getEnv("CATALOG_PATH", config.DefaultCatalogPath))
	if err != nil {
		return err
	}
	reg, err := pack.NewRegistry(pack.Options{
		Path:       getEnv("PACKS_PATH", config.DefaultPacksPath),
		SchemaPath: getEnv("PACKS_SCHEMA_PATH", config.DefaultPacksSchemaPath),
	})
	if err != nil {
		return err
	}

	spec, err := reg.Get(packID)
	if err != nil {
		return err
	}
	if missing := reg.CheckAgainst(context.Background(), cat)[packID]; len(missing) > 0 {
		PrintWarning("%d card id(s) in %s are not in the catalog: %v", len(missing), packID, missing)
	}

	PrintHeader(fmt.Sprintf("Simulating %d x %s (seed %d)", trials, spec.Name, seed))
	odds := packdraw.Simulate(cat.Eligible(spec.PossibleCards), spec, trials, packdraw.NewSeededRNG(seed))
	printOdds(spec, odds)
	return nil
}

func printOdds(spec domain.PackSpec, odds domain.PackOdds) {
	fmt.Printf("Cards per pack: %d, mean drawn: %.2f\n", spec.CardsPerPack, odds.MeanCards)
	fmt.Printf("Holo share of rare slot: %.2f%%\n\n", odds.HoloRareShare*100)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RARITY\tMEAN/PACK\tAT LEAST ONE")
	for _, r := range odds.Rarities {
		fmt.Fprintf(w, "%s\t%.3f\t%.2f%%\n", r.Rarity, r.MeanPerPack, r.AtLeastOneRate*100)
	}
	_ = w.Flush()
}
