package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"slices"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/proxionix/unit-tools/internal/model"
	"github.com/proxionix/unit-tools/pkg/logger"
)

type repository struct {
	path string
}

func NewCatalogRepository(path string) *repository {
	return &repository{path: path}
}

// Load reads the bundled catalog and validates it. Only a wrong item count is
// fatal; out-of-order codes and incomplete records are logged and kept so a
// bad data push degrades the catalog instead of bricking the whole tool.
func (r *repository) Load(ctx context.Context) ([]model.OrderItem, error) {
	const op = "repository.catalog.Load"
	log := logger.With(logger.String("path", r.path))

	data, err := os.ReadFile(r.path)
	if err != nil {
		log.Error(ctx, "read catalog file", logger.ErrorF(err))
		return nil, errors.Wrap(err, op)
	}

	var items []model.OrderItem
	if err := json.Unmarshal(data, &items); err != nil {
		log.Error(ctx, "decode catalog file", logger.ErrorF(err))
		return nil, errors.Wrap(err, op)
	}

	if len(items) != model.CatalogSize {
		log.Error(ctx, "wrong catalog size",
			logger.Int("expected", model.CatalogSize),
			logger.Int("found", len(items)),
		)
		return nil, fmt.Errorf("%s: expected %d items, found %d: %w",
			op, model.CatalogSize, len(items), model.ErrCatalogIntegrity)
	}

	expected := model.Codes()
	actual := lo.Map(items, func(it model.OrderItem, _ int) string { return it.Code })
	if !slices.Equal(actual, expected) {
		log.Warn(ctx, "catalog codes mismatch",
			logger.Strings("expected", expected),
			logger.Strings("found", actual),
		)
	}

	for i, it := range items {
		if it.Code == "" || it.NameFR == "" || it.NameNL == "" {
			log.Warn(ctx, "catalog item has empty fields",
				logger.Int("index", i),
				logger.String("code", it.Code),
			)
		}
		if it.Max <= 0 || it.Per <= 0 {
			log.Warn(ctx, "catalog item has invalid max or per",
				logger.Int("index", i),
				logger.String("code", it.Code),
				logger.Int("max", it.Max),
				logger.Int("per", it.Per),
			)
		}
	}

	log.Debug(ctx, "catalog loaded", logger.Int("items", len(items)))
	return items, nil
}
