package api

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/*.json
var schemaFS embed.FS

const schemaBaseURL = "https://walletgg.local/schemas/"

// route binds a response schema to a method and path pattern.
type route struct {
	method  string
	pattern *regexp.Regexp
	file    string
}

// Endpoints whose success bodies are validated before decoding. Write
// endpoints are not listed: their bodies are ignored.
var routes = []route{
	{http.MethodPost, regexp.MustCompile(`^/accounts/login/$`), "login.json"},
	{http.MethodGet, regexp.MustCompile(`^/articles/articles/$`), "article_list.json"},
	{http.MethodGet, regexp.MustCompile(`^/articles/articles/\d+/$`), "article.json"},
	{http.MethodGet, regexp.MustCompile(`^/products/deposit-products/$`), "product_list.json"},
	{http.MethodGet, regexp.MustCompile(`^/products/deposit-products/\d+/$`), "product.json"},
	{http.MethodGet, regexp.MustCompile(`^/products/(liked|joined)-list/$`), "product_list.json"},
	{http.MethodGet, regexp.MustCompile(`^/products/check-status/$`), "catalog_status.json"},
	{http.MethodGet, regexp.MustCompile(`^/services/gold-silver/$`), "gold_silver.json"},
	{http.MethodGet, regexp.MustCompile(`^/services/youtube/$`), "youtube.json"},
}

type compiledRoute struct {
	route
	schema *jsonschema.Schema
}

type schemaSet struct {
	routes []compiledRoute
}

var (
	defaultSchemas     *schemaSet
	defaultSchemasOnce sync.Once
)

// endpointSchemas compiles the embedded schemas once per process.
func endpointSchemas() *schemaSet {
	defaultSchemasOnce.Do(func() {
		set, err := compileSchemas(routes)
		if err != nil {
			panic(fmt.Sprintf("api: embedded schemas: %v", err))
		}
		defaultSchemas = set
	})
	return defaultSchemas
}

func compileSchemas(rs []route) (*schemaSet, error) {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020

	entries, err := schemaFS.ReadDir("schemas")
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		b, err := schemaFS.ReadFile("schemas/" + e.Name())
		if err != nil {
			return nil, err
		}
		if err := c.AddResource(schemaBaseURL+e.Name(), bytes.NewReader(b)); err != nil {
			return nil, fmt.Errorf("load %s: %w", e.Name(), err)
		}
	}

	set := &schemaSet{}
	for _, r := range rs {
		s, err := c.Compile(schemaBaseURL + r.file)
		if err != nil {
			return nil, fmt.Errorf("compile %s: %w", r.file, err)
		}
		set.routes = append(set.routes, compiledRoute{route: r, schema: s})
	}
	return set, nil
}

// validate checks body against the schema registered for method and path.
// Unregistered endpoints pass whatever their body. A registered endpoint
// must answer with a document.
func (s *schemaSet) validate(method, path string, body []byte) error {
	if s == nil {
		return nil
	}
	for _, r := range s.routes {
		if r.method != method || !r.pattern.MatchString(path) {
			continue
		}
		if len(bytes.TrimSpace(body)) == 0 {
			return fmt.Errorf("empty response, want %s", r.file)
		}
		var v any
		if err := json.Unmarshal(body, &v); err != nil {
			return err
		}
		if err := r.schema.Validate(v); err != nil {
			return fmt.Errorf("response does not match %s: %w", r.file, err)
		}
		return nil
	}
	return nil
}
