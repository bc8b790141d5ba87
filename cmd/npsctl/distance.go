package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/proverbs-one/npslocator/internal/domain/geo"
	"github.com/proverbs-one/npslocator/internal/ui"
)

func newDistanceCmd() *cobra.Command {
	var from, to, unit string

	cmd := &cobra.Command{
		Use:   "distance --from LAT,LNG --to LAT,LNG",
		Short: "Print the great-circle distance between two points",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			u, err := geo.ParseUnit(unit)
			if err != nil {
				return err
			}
			a, err := parseCoordinate(from)
			if err != nil {
				return fmt.Errorf("--from: %w", err)
			}
			b, err := parseCoordinate(to)
			if err != nil {
				return fmt.Errorf("--to: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.FormatDistance(geo.Distance(a, b, u), u))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "origin as LAT,LNG")
	cmd.Flags().StringVar(&to, "to", "", "destination as LAT,LNG")
	cmd.Flags().StringVarP(&unit, "unit", "u", "mi", "distance unit: mi or km")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

// parseCoordinate parses "lat,lng" in degrees.
func parseCoordinate(s string) (geo.Coordinate, error) {
	latStr, lngStr, ok := strings.Cut(s, ",")
	if !ok {
		return geo.Coordinate{}, fmt.Errorf("expected LAT,LNG, got %q", s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return geo.Coordinate{}, fmt.Errorf("latitude %q: %w", latStr, err)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(lngStr), 64)
	if err != nil {
		return geo.Coordinate{}, fmt.Errorf("longitude %q: %w", lngStr, err)
	}
	return geo.NewCoordinate(lat, lng)
}
