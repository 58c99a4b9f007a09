package http

import (
	_ "embed"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var specYAML []byte

// RawSpec returns the embedded OpenAPI document as served at /openapi.yaml.
func RawSpec() []byte {
	return specYAML
}

// LoadSpec parses the embedded OpenAPI document. Used for the /info API
// version and validated by the adapter's tests so the document cannot drift
// into something unparseable.
func LoadSpec() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	return loader.LoadFromData(specYAML)
}
