package main

import (
	"errors"
	"fmt"
	"strings"

	"foodgram/models"
	"foodgram/repositories"

	"github.com/goccy/go-json"
)

type ingredientRecord struct {
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
}

type tagRecord struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// LoadStats counts rows created and rows skipped because they already exist.
type LoadStats struct {
	Created int
	Skipped int
}

type Loader struct {
	ingredients repositories.IngredientRepository
	tags        repositories.TagRepository
}

func NewLoader(ingredients repositories.IngredientRepository, tags repositories.TagRepository) *Loader {
	return &Loader{ingredients: ingredients, tags: tags}
}

func (l *Loader) LoadIngredients(data []byte) (LoadStats, error) {
	var records []ingredientRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return LoadStats{}, fmt.Errorf("decode ingredients: %w", err)
	}

	var stats LoadStats
	for i, rec := range records {
		name := strings.TrimSpace(rec.Name)
		unit := strings.TrimSpace(rec.MeasurementUnit)
		if name == "" || unit == "" {
			return stats, fmt.Errorf("ingredient %d: name and measurement_unit are required", i)
		}

		if _, err := l.ingredients.GetByNameAndUnit(name, unit); err == nil {
			stats.Skipped++
			continue
		} else if !isNotFound(err) {
			return stats, err
		}

		err := l.ingredients.Create(&models.Ingredient{Name: name, MeasurementUnit: unit})
		switch {
		case isConflict(err):
			stats.Skipped++
		case err != nil:
			return stats, fmt.Errorf("ingredient %q: %w", name, err)
		default:
			stats.Created++
		}
	}
	return stats, nil
}

func (l *Loader) LoadTags(data []byte) (LoadStats, error) {
	var records []tagRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return LoadStats{}, fmt.Errorf("decode tags: %w", err)
	}

	var stats LoadStats
	for i, rec := range records {
		name := strings.TrimSpace(rec.Name)
		slug := strings.TrimSpace(rec.Slug)
		if name == "" || slug == "" {
			return stats, fmt.Errorf("tag %d: name and slug are required", i)
		}

		if _, err := l.tags.GetBySlug(slug); err == nil {
			stats.Skipped++
			continue
		} else if !isNotFound(err) {
			return stats, err
		}

		err := l.tags.Create(&models.Tag{Name: name, Slug: slug})
		switch {
		case isConflict(err):
			stats.Skipped++
		case err != nil:
			return stats, fmt.Errorf("tag %q: %w", slug, err)
		default:
			stats.Created++
		}
	}
	return stats, nil
}

func isNotFound(err error) bool {
	var nf models.ErrorNotFound
	return errors.As(err, &nf)
}

func isConflict(err error) bool {
	var c models.ErrorConflict
	return errors.As(err, &c)
}
