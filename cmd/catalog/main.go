package main

import (
	"os"

	config "ashok-storefront/configs"
	"ashok-storefront/internal/pkg/logger"
	catalogService "ashok-storefront/internal/service/catalog"
	orderService "ashok-storefront/internal/service/order"
)

// Checks the configured catalog and prints every price line, so a catalog
// edit can be reviewed before the API is restarted.
func main() {
	logger.Setup()
	env, err := config.GetEnv()
	if err != nil {
		logger.Error.Println("Error getting environment", err)
		os.Exit(1)
	}

	table, err := catalogService.Open(env.CatalogPath)
	if err != nil {
		logger.Error.Println("Error loading catalog", err)
		os.Exit(1)
	}

	catalog := catalogService.NewService(table, env.CurrencySymbol)
	for _, p := range catalog.Products() {
		logger.Info.Printf("%s (%s)", p.Name, p.ID)
		for _, s := range p.Sizes {
			logger.Info.Printf("  %-8s %s", orderService.SizeLabel(p.ID, s.ID), catalog.DisplayPrice(p.ID, s.ID, catalogService.DefaultQuantity))
		}
	}

	logger.Info.Printf("Catalog OK: %d products", len(table.Products))
}
