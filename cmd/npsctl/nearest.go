package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/proverbs-one/npslocator/internal/geojson"
	"github.com/proverbs-one/npslocator/internal/ui"
)

func newNearestCmd() *cobra.Command {
	var (
		registryPath string
		lat, lng     float64
		radius       float64
		limit        int
		unit         string
		asJSON       bool
		asGeoJSON    bool
	)

	cmd := &cobra.Command{
		Use:     "nearest --lat <latitude> --lng <longitude>",
		Aliases: []string{"near", "n"},
		Short:   "List agents within a radius, nearest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := loadLocator(cmd.Context(), registryPath, unit)
			if err != nil {
				return err
			}

			results, err := svc.Search(cmd.Context(), lat, lng, radius, limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case asGeoJSON:
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(geojson.FromResults(results, svc.Unit()))
			case asJSON:
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(ui.Matches(results, svc.Unit()))
			default:
				return ui.WriteMatchTable(out, results, svc.Unit())
			}
		},
	}

	cmd.Flags().StringVarP(&registryPath, "registry", "r", defaultRegistry, "agent registry file (YAML or JSON)")
	cmd.Flags().Float64Var(&lat, "lat", 0, "query latitude in degrees")
	cmd.Flags().Float64Var(&lng, "lng", 0, "query longitude in degrees")
	cmd.Flags().Float64Var(&radius, "radius", 10, "maximum distance (inclusive)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum number of results (0 = no cap)")
	cmd.Flags().StringVarP(&unit, "unit", "u", "mi", "distance unit: mi or km")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	cmd.Flags().BoolVar(&asGeoJSON, "geojson", false, "print a GeoJSON FeatureCollection")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lng")
	cmd.MarkFlagsMutuallyExclusive("json", "geojson")

	return cmd
}
