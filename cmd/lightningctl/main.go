// Command lightningctl is a small demonstration CLI for the temporal
// entity store: it wires config -> logger -> models.EntityStore, seeds a
// handful of "User" entities, slides the current epoch, and prints a
// filtered view. Useful as a smoke test and as a worked example for an
// embedding host.
package main

import (
	"fmt"
	"os"

	"github.com/ornoone/lightning-entitystore/config"
	"github.com/ornoone/lightning-entitystore/filter"
	"github.com/ornoone/lightning-entitystore/logger"
	"github.com/ornoone/lightning-entitystore/models"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := logger.SetLogLevel(cfg.LogLevel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	store := models.NewEntityStore()
	store.InitialCursor().Slide(cfg.SeedEpoch)
	store.CurrentCursor().Slide(cfg.SeedEpoch)
	logger.Info("store ready at seed epoch %d", cfg.SeedEpoch)

	descriptors := []models.AttributeDescriptor{
		{Kind: models.Physical, Name: "name", Initial: models.None},
		{Kind: models.Physical, Name: "age", Initial: models.None},
	}
	for i := int64(1); i <= 5; i++ {
		entity := store.Instantiate(models.NewIdentifier("User"), descriptors)
		logger.Debug("instantiated %s", entity.Identifier())

		nameAttr, err := entity.Get("name")
		if err != nil {
			logger.Fatal("%v", err)
		}
		nameAttr.SetValue(models.String(fmt.Sprintf("user %d", i)), cfg.SeedEpoch+1)

		ageAttr, err := entity.Get("age")
		if err != nil {
			logger.Fatal("%v", err)
		}
		ageAttr.SetValue(models.Number(20+i), cfg.SeedEpoch+1)
	}

	store.CurrentCursor().Slide(cfg.SeedEpoch + 1)
	logger.Info("current epoch now %d", store.CurrentCursor().Get())

	matches, err := store.Filter("User", filter.NewExact("name", models.String("user 3")))
	if err != nil {
		logger.Fatal("%v", err)
	}
	for _, entity := range matches {
		ageAttr, err := entity.Get("age")
		if err != nil {
			logger.Fatal("%v", err)
		}
		fmt.Printf("%s age=%v\n", entity.Identifier(), ageAttr.GetValue())
	}
}
