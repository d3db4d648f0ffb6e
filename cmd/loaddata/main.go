// Command loaddata imports reference ingredients and tags from JSON files.
//
//	loaddata -ingredients data/ingredients.json -tags data/tags.json
package main

import (
	"flag"
	"os"

	"foodgram/config"
	"foodgram/logging"
	"foodgram/repositories"

	"github.com/joho/godotenv"
)

func main() {
	ingredientsPath := flag.String("ingredients", "", "JSON file of [{name, measurement_unit}]")
	tagsPath := flag.String("tags", "", "JSON file of [{name, slug}]")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to load configuration")
	}
	logging.Init(logging.Config{Level: cfg.Log.Level, Format: "console", Output: os.Stderr})

	if *ingredientsPath == "" && *tagsPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	db, err := config.InitDB(cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to initialize database")
	}

	loader := NewLoader(repositories.NewIngredientRepository(db), repositories.NewTagRepository(db))

	if *ingredientsPath != "" {
		data, err := os.ReadFile(*ingredientsPath)
		if err != nil {
			logging.Fatal().Err(err).Str("path", *ingredientsPath).Msg("failed to read ingredients")
		}
		stats, err := loader.LoadIngredients(data)
		if err != nil {
			logging.Fatal().Err(err).Msg("failed to load ingredients")
		}
		logging.Info().Int("created", stats.Created).Int("skipped", stats.Skipped).Msg("ingredients loaded")
	}

	if *tagsPath != "" {
		data, err := os.ReadFile(*tagsPath)
		if err != nil {
			logging.Fatal().Err(err).Str("path", *tagsPath).Msg("failed to read tags")
		}
		stats, err := loader.LoadTags(data)
		if err != nil {
			logging.Fatal().Err(err).Msg("failed to load tags")
		}
		logging.Info().Int("created", stats.Created).Int("skipped", stats.Skipped).Msg("tags loaded")
	}
}
