// Package plans loads the subscription plan catalog. Compiled-in defaults
// can be overridden per deployment with a YAML file.
package plans

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"siloops/internal/domain/subscription"
	"siloops/internal/shared/config"
)

type planEntry struct {
	ID                    string   `yaml:"id"`
	DisplayName           string   `yaml:"display_name"`
	MonthlyOperationLimit int      `yaml:"monthly_operation_limit"`
	MonthlyPriceCents     uint64   `yaml:"monthly_price_cents"`
	Features              []string `yaml:"features"`
}

type catalogFile struct {
	Plans []planEntry `yaml:"plans"`
}

// LoadRegistry builds the plan registry. When the config names a catalog
// file it replaces the defaults entirely; otherwise the built-in tiers are
// used with the free limit taken from config.
func LoadRegistry(cfg *config.SubscriptionConfig) (subscription.PlanRegistry, error) {
	if cfg.PlanCatalog != "" {
		return loadFromFile(cfg.PlanCatalog)
	}
	return defaultRegistry(cfg.FreePlanLimit)
}

func defaultRegistry(freeLimit int) (subscription.PlanRegistry, error) {
	if freeLimit <= 0 {
		freeLimit = 50
	}

	free, err := subscription.NewPlan(subscription.PlanFree, "Free", freeLimit, 0, []string{
		"operation registry",
		"subscription dashboard",
	})
	if err != nil {
		return nil, err
	}
	basic, err := subscription.NewPlan(subscription.PlanBasic, "Basic", 500, 4990, []string{
		"operation registry",
		"subscription dashboard",
		"priority support",
	})
	if err != nil {
		return nil, err
	}
	enterprise, err := subscription.NewPlan(subscription.PlanEnterprise, "Enterprise", subscription.UnlimitedOperations, 29900, []string{
		"operation registry",
		"subscription dashboard",
		"priority support",
		"unlimited operations",
	})
	if err != nil {
		return nil, err
	}

	return subscription.NewPlanRegistry([]subscription.Plan{free, basic, enterprise})
}

func loadFromFile(path string) (subscription.PlanRegistry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan catalog %s: %w", path, err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse plan catalog %s: %w", path, err)
	}

	defs := make([]subscription.Plan, 0, len(file.Plans))
	for _, entry := range file.Plans {
		plan, err := subscription.NewPlan(
			subscription.PlanID(entry.ID),
			entry.DisplayName,
			entry.MonthlyOperationLimit,
			entry.MonthlyPriceCents,
			entry.Features,
		)
		if err != nil {
			return nil, fmt.Errorf("invalid plan %q in catalog %s: %w", entry.ID, path, err)
		}
		defs = append(defs, plan)
	}

	return subscription.NewPlanRegistry(defs)
}
