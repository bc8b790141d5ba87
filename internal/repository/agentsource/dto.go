package agentsource

// document is the on-disk registry layout. JSON files decode too (YAML superset).
type document struct {
	Agents []record `yaml:"agents"`
}

// record is a raw agent entry. Coordinates are pointers so a missing value
// is reported instead of silently becoming 0.
type record struct {
	ID   string   `yaml:"id"`
	Name string   `yaml:"name"`
	Lat  *float64 `yaml:"lat"`
	Lng  *float64 `yaml:"lng"`
}
