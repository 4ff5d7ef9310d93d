// Package api embeds the OpenAPI document of the HTTP interface.
package api

import (
	_ "embed"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yml
var spec []byte

// Load parses and validates the embedded document.
//
// Example:
//
//	doc, err := api.Load()
//	if err != nil {
//	    log.Fatalf("broken openapi document: %v", err)
//	}
//	schema := doc.Components.Schemas["CourierItem"].Value
func Load() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(spec)
	if err != nil {
		return nil, err
	}

	if err = doc.Validate(loader.Context); err != nil {
		return nil, err
	}

	return doc, nil
}
