package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/proverbs-one/npslocator/internal/domain/geo"
	"github.com/proverbs-one/npslocator/internal/repository/agentsource"
	locatoruc "github.com/proverbs-one/npslocator/internal/usecase/locator"
	"github.com/proverbs-one/npslocator/internal/version"
)

const defaultRegistry = "config/agents.yaml"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "npsctl",
		Short: "Find notary public service agents near a coordinate",
		Long: `npsctl answers proximity queries against a static agent registry.

Examples:
  npsctl nearest --lat 38.897 --lng -77.036 --radius 10
  npsctl validate --registry config/agents.yaml
  npsctl distance --from 40.7128,-74.0060 --to 51.5074,-0.1278`,
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(newNearestCmd(), newValidateCmd(), newDistanceCmd())
	return root
}

// loadLocator reads the registry file into a fresh locator service.
func loadLocator(ctx context.Context, path, unit string) (*locatoruc.Service, error) {
	u, err := geo.ParseUnit(unit)
	if err != nil {
		return nil, err
	}
	svc := locatoruc.New(agentsource.New(path), u, nil)
	if _, err := svc.Reload(ctx); err != nil {
		return nil, fmt.Errorf("registry %s: %w", path, err)
	}
	return svc, nil
}
