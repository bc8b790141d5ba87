// Package locator embeds the NPS agent proximity search in a Go program
// without running the HTTP service.
//
//	client, err := locator.New(locator.WithRegistryFile("config/agents.yaml"))
//	if err != nil {
//	    return err
//	}
//	matches, err := client.Nearest(ctx, 38.897, -77.036, 10, 0)
//
// Agents can also be supplied in-process:
//
//	client, _ := locator.New(
//	    locator.WithAgents([]locator.Agent{
//	        {ID: "A", Name: "Agent A", Latitude: 38.90, Longitude: -77.03},
//	    }),
//	    locator.WithUnit(locator.Kilometers),
//	)
//
// Distances are great-circle (haversine) distances on a sphere of mean
// Earth radius 3958.8 miles (6371 km). Results are ordered nearest first;
// agents at exactly the same distance keep registry order.
package locator
