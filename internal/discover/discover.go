// Package discover drives one discovery pass over the product catalog and
// packages the outcome as a result envelope.
package discover

import (
	"fmt"
	"runtime/debug"

	"go.uber.org/zap"

	"github.com/jetscout/jetscout/internal/catalog"
	"github.com/jetscout/jetscout/internal/configdir"
	"github.com/jetscout/jetscout/internal/recent"
)

// Run performs one full synchronous discovery pass.
//
// Expected absence (no config directory, no registry file, a registry entry
// pointing at a removed path) yields empty per-product results. Anything else
// aborts the pass: partial results are discarded and the error envelope is
// returned instead. Panics are recovered here too; nothing below this
// boundary catches.
func Run(logger *zap.Logger) (env Envelope) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("discovery panicked", zap.Any("panic", r))
			env = Envelope{
				Kind:      KindError,
				Message:   fmt.Sprint(r),
				Traceback: string(debug.Stack()),
			}
		}
	}()

	resolver := configdir.NewResolver()
	products := catalog.Products()
	pairs := make([]ProductProjects, 0, len(products))
	for _, product := range products {
		projects, err := scanProduct(resolver, product, logger)
		if err != nil {
			logger.Error("discovery failed",
				zap.String("product", product.Key),
				zap.Error(err))
			return Envelope{
				Kind:      KindError,
				Message:   err.Error(),
				Traceback: fmt.Sprintf("%+v", err),
			}
		}
		pairs = append(pairs, ProductProjects{Key: product.Key, Projects: projects})
	}
	return Envelope{Kind: KindSuccess, Projects: pairs}
}

// scanProduct resolves one product's recent projects. A missing config
// directory or registry file returns an empty list; every product gets an
// entry in the envelope either way.
func scanProduct(resolver *configdir.Resolver, product catalog.Product, logger *zap.Logger) ([]recent.Project, error) {
	dir, ok, err := resolver.Latest(product)
	if err != nil {
		return nil, err
	}
	if !ok {
		logger.Debug("no config directory", zap.String("product", product.Key))
		return nil, nil
	}

	file, ok, err := configdir.RegistryFile(product, dir)
	if err != nil {
		return nil, err
	}
	if !ok {
		logger.Debug("no recent-projects registry",
			zap.String("product", product.Key),
			zap.String("config_dir", dir))
		return nil, nil
	}

	entries, err := recent.ParseRegistry(file)
	if err != nil {
		return nil, err
	}

	projects := make([]recent.Project, 0, len(entries))
	for _, entry := range entries {
		project, ok, err := recent.Resolve(product.Key, entry)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		projects = append(projects, project)
	}
	logger.Debug("product scanned",
		zap.String("product", product.Key),
		zap.String("registry", file),
		zap.Int("entries", len(entries)),
		zap.Int("projects", len(projects)))
	return projects, nil
}
