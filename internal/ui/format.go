// Package ui formats locator output for the terminal.
package ui

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/proverbs-one/npslocator/internal/domain/agent"
	"github.com/proverbs-one/npslocator/internal/domain/geo"
	"github.com/proverbs-one/npslocator/internal/domain/search/result"
)

// NoMatches is printed when a search returns nothing.
const NoMatches = "no agents found in range"

var faint = color.New(color.Faint)

// Match is the JSON form of one ranked result.
type Match struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Distance  float64 `json:"distance"`
	Unit      string  `json:"unit"`
}

// Matches converts results to their JSON form. Never returns nil.
func Matches(results []result.Result, unit geo.Unit) []Match {
	out := make([]Match, len(results))
	for i := range results {
		a := results[i].Agent()
		c := a.Coordinate()
		out[i] = Match{
			ID:        a.ID(),
			Name:      a.Name(),
			Latitude:  c.Lat(),
			Longitude: c.Lng(),
			Distance:  results[i].Distance(),
			Unit:      string(unit),
		}
	}
	return out
}

// WriteMatchTable prints results as an aligned table, nearest first.
func WriteMatchTable(w io.Writer, results []result.Result, unit geo.Unit) error {
	if len(results) == 0 {
		_, err := fmt.Fprintln(w, faint.Sprint(NoMatches))
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tID\tNAME\tLOCATION\tDISTANCE")
	for i := range results {
		a := results[i].Agent()
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			i+1,
			a.ID(),
			color.GreenString(a.Name()),
			faint.Sprint(FormatCoordinate(a.Coordinate())),
			color.CyanString(FormatDistance(results[i].Distance(), unit)),
		)
	}
	return tw.Flush()
}

// FormatAgent renders a single agent on one line.
func FormatAgent(a *agent.Agent) string {
	return fmt.Sprintf("%s %s %s",
		a.ID(),
		color.GreenString(a.Name()),
		faint.Sprint(FormatCoordinate(a.Coordinate())))
}

// FormatCoordinate renders a coordinate as (lat, lng) with 4 decimals.
func FormatCoordinate(c geo.Coordinate) string {
	return fmt.Sprintf("(%.4f, %.4f)", c.Lat(), c.Lng())
}

// FormatDistance renders a distance with its unit.
func FormatDistance(d float64, unit geo.Unit) string {
	return fmt.Sprintf("%.3f %s", d, unit)
}
