package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"fastshop/internal/catalog"
	"fastshop/internal/domain"
	"fastshop/internal/pricing"
)

// catalogcheck validates a storefront YAML file before it is deployed.
func main() {
	logger := log.New(os.Stderr, "[catalogcheck] ", log.LstdFlags)

	path := flag.String("file", "", "path to the storefront YAML file")
	flag.Parse()

	if *path == "" {
		logger.Fatal("usage: catalogcheck -file storefront.yaml")
	}

	cat, shipping, err := catalog.LoadFile(*path)
	if err != nil {
		logger.Fatalf("invalid catalog: %v", err)
	}

	table := pricing.DefaultTable()
	if len(shipping) > 0 {
		table, err = pricing.NewTable(shipping)
		if err != nil {
			logger.Fatalf("invalid shipping table: %v", err)
		}
	}
	if _, err := table.ShippingCost(domain.DefaultShippingTier); err != nil {
		logger.Fatalf("invalid shipping table: %v", err)
	}

	fmt.Printf("%d template(s):\n", cat.Len())
	for _, tpl := range cat.Templates() {
		fmt.Printf("  %-16s %-26s %6d cents, %d size(s), %d color(s)\n",
			tpl.ID, tpl.Title, tpl.UnitPriceCents, len(tpl.Sizes), len(tpl.Colors))
	}
	fmt.Printf("%d shipping tier(s):\n", len(table))
	for _, tier := range domain.ShippingTiers() {
		if cents, err := table.ShippingCost(tier); err == nil {
			fmt.Printf("  %-10s %6d cents\n", tier, cents)
		}
	}
}
