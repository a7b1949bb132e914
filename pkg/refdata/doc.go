// Package refdata decodes reference tables (cable ampacity, protective device
// characteristics) from YAML or JSON documents.
//
// The decoder is picked from the file extension:
//
//	var t cable.Tables
//	if err := refdata.ReadFile("tables/cables.yaml", &t); err != nil {
//		// handle
//	}
//
// YAML is decoded with gopkg.in/yaml.v3 and JSON with github.com/goccy/go-json.
// Decoding into the target struct is strict: unknown keys are reported as
// errors so that a typo in a table file never silently drops data.
package refdata
