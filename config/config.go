package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/spf13/afero"

	gqlgenconfig "github.com/99designs/gqlgen/codegen/config"

	"github.com/mntm/graphql-codegen/queryparser"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

// ConfigFilenames are searched in order when no config file is given.
var ConfigFilenames = []string{".graphql-codegen.yml", "graphql-codegen.yml", ".graphql-codegen.yaml", "graphql-codegen.yaml"}

// Config represents the config file.
type Config struct {
	Schema    gqlgenconfig.StringList `yaml:"schema,omitempty"`
	Endpoint  *EndPointConfig         `yaml:"endpoint,omitempty"`
	Documents gqlgenconfig.StringList `yaml:"documents"`
	Output    string                  `yaml:"output"`
	Plugin    *RawPluginConfig        `yaml:"config,omitempty"`

	GraphQLSchema *ast.Schema        `yaml:"-"`
	QueryDocument *ast.QueryDocument `yaml:"-"`
}

// EndPointConfig are the allowed options for the 'endpoint' config.
type EndPointConfig struct {
	URL     string            `yaml:"url"`
	Headers map[string]string `yaml:"headers,omitempty"`
	Client  *http.Client      `yaml:"-"`
}

// FindConfigFile returns the first of filenames that exists in dir.
func FindConfigFile(fs afero.Fs, dir string, filenames []string) (string, error) {
	for _, filename := range filenames {
		path := filepath.Join(dir, filename)
		ok, err := afero.Exists(fs, path)
		if err != nil {
			return "", fmt.Errorf("unable to stat %s: %w", path, err)
		}
		if ok {
			return path, nil
		}
	}

	return "", fmt.Errorf("could not find config file in %s, tried %v", dir, filenames)
}

// LoadConfig loads and parses the config file.
func LoadConfig(fs afero.Fs, configFilename string) (*Config, error) {
	configContent, err := afero.ReadFile(fs, configFilename)
	if err != nil {
		return nil, fmt.Errorf("unable to read config: %w", err)
	}

	var c Config

	yamlDecoder := yaml.NewDecoder(bytes.NewReader([]byte(os.ExpandEnv(string(configContent)))), yaml.DisallowUnknownField())
	if err := yamlDecoder.Decode(&c); err != nil {
		return nil, fmt.Errorf("unable to parse config: %w", err)
	}

	// validation
	if c.Schema != nil && c.Endpoint != nil {
		return nil, errors.New("'schema' and 'endpoint' both specified. Use schema to load from a local file, use endpoint to load from a remote server (using introspection)")
	}

	if c.Schema == nil && c.Endpoint == nil {
		return nil, errors.New("neither 'schema' nor 'endpoint' specified. Use schema to load from a local file, use endpoint to load from a remote server (using introspection)")
	}

	if len(c.Documents) == 0 {
		return nil, errors.New("'documents' must list at least one file or glob")
	}

	if c.Output == "" {
		return nil, errors.New("'output' must be specified")
	}

	return &c, nil
}

// PluginConfig returns the resolved render configuration.
func (c *Config) PluginConfig() PluginConfig {
	return c.Plugin.Resolve()
}

// PrepareSchema loads the schema and the documents validated against it.
func (c *Config) PrepareSchema(ctx context.Context, fs afero.Fs) error {
	if err := c.LoadSchema(ctx, fs); err != nil {
		return err
	}

	if err := c.LoadQuery(fs); err != nil {
		return fmt.Errorf("load query failed: %w", err)
	}

	return nil
}

func (c *Config) LoadSchema(ctx context.Context, fs afero.Fs) error {
	switch {
	case c.Schema != nil:
		sources, err := queryparser.LoadQuerySources(fs, c.Schema)
		if err != nil {
			return fmt.Errorf("load local schema failed: %w", err)
		}
		schema, err := gqlparser.LoadSchema(sources...)
		if err != nil {
			return fmt.Errorf("load local schema failed: %w", err)
		}
		c.GraphQLSchema = schema
	case c.Endpoint != nil:
		httpClient := c.Endpoint.Client
		if httpClient == nil {
			httpClient = http.DefaultClient
		}
		header := make(http.Header, len(c.Endpoint.Headers))
		for key, value := range c.Endpoint.Headers {
			header.Set(key, value)
		}
		schema, err := introspectionSchema(ctx, httpClient, c.Endpoint.URL, header)
		if err != nil {
			return fmt.Errorf("introspect schema failed: %w", err)
		}
		c.GraphQLSchema = schema
	default:
		return errors.New("neither 'schema' nor 'endpoint' specified. Use schema to load from a local file, use endpoint to load from a remote server (using introspection)")
	}

	return nil
}

func (c *Config) LoadQuery(fs afero.Fs) error {
	querySources, err := queryparser.LoadQuerySources(fs, c.Documents)
	if err != nil {
		return fmt.Errorf("load query sources failed: %w", err)
	}

	queryDocument, err := queryparser.QueryDocument(c.GraphQLSchema, querySources)
	if err != nil {
		return fmt.Errorf("parse query document failed: %w", err)
	}

	c.QueryDocument = queryDocument

	return nil
}
