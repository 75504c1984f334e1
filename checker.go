// Package hostsdk is the host-side SDK for verifying connector
// configurations before a connector is instantiated or connected. The
// core pipeline lives in the verify package; this package bundles it with
// the default catalog, converter and registry for hosts that want one
// entry point.
package hostsdk

import (
	"context"
	"log/slog"

	"github.com/camber-dev/camber-host-sdk/catalog"
	"github.com/camber-dev/camber-host-sdk/convert"
	"github.com/camber-dev/camber-host-sdk/registry"
	"github.com/camber-dev/camber-host-sdk/verify"
)

// DefectHandler is called for every defect a verification reports. It
// allows custom logging or auditing.
type DefectHandler func(ctx context.Context, scheme string, scope verify.Scope, defect verify.Error)

// ConfigChecker verifies connector configurations against a scheme,
// wiring the default catalog, converter and registry unless overridden.
type ConfigChecker struct {
	verifier      *verify.Verifier
	catalog       *catalog.Service
	registry      *registry.Registry
	scheme        string
	defectHandler DefectHandler
}

// ConfigCheckerOption configures a ConfigChecker.
type ConfigCheckerOption func(*configCheckerConfig)

type configCheckerConfig struct {
	catalog       *catalog.Service
	converter     verify.TypeConverter
	registry      *registry.Registry
	connectivity  verify.ConnectivityChecker
	defectHandler DefectHandler
	logger        *slog.Logger
}

// WithCatalogService sets the catalog the checker validates against.
func WithCatalogService(c *catalog.Service) ConfigCheckerOption {
	return func(cfg *configCheckerConfig) { cfg.catalog = c }
}

// WithConverter sets the value converter.
func WithConverter(c verify.TypeConverter) ConfigCheckerOption {
	return func(cfg *configCheckerConfig) { cfg.converter = c }
}

// WithRegistry sets the object registry for reference resolution.
func WithRegistry(r *registry.Registry) ConfigCheckerOption {
	return func(cfg *configCheckerConfig) { cfg.registry = r }
}

// WithConnectivity sets the connectivity checker for the scheme.
func WithConnectivity(c verify.ConnectivityChecker) ConfigCheckerOption {
	return func(cfg *configCheckerConfig) { cfg.connectivity = c }
}

// WithDefectHandler sets the handler invoked per reported defect.
func WithDefectHandler(handler DefectHandler) ConfigCheckerOption {
	return func(cfg *configCheckerConfig) { cfg.defectHandler = handler }
}

// WithLogger sets the logger passed down to the verifier and catalog.
func WithLogger(l *slog.Logger) ConfigCheckerOption {
	return func(cfg *configCheckerConfig) { cfg.logger = l }
}

// NewConfigChecker creates a checker for one connector scheme.
func NewConfigChecker(scheme string, opts ...ConfigCheckerOption) *ConfigChecker {
	cfg := configCheckerConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.catalog == nil {
		cfg.catalog = catalog.NewService(catalog.WithLogger(cfg.logger))
	}
	if cfg.converter == nil {
		cfg.converter = convert.New()
	}
	if cfg.registry == nil {
		cfg.registry = registry.New()
	}

	verifierOpts := []verify.Option{
		verify.WithCatalog(cfg.catalog),
		verify.WithConverter(cfg.converter),
		verify.WithRegistry(cfg.registry),
		verify.WithLogger(cfg.logger),
	}
	if cfg.connectivity != nil {
		verifierOpts = append(verifierOpts, verify.WithConnectivityChecker(cfg.connectivity))
	}

	return &ConfigChecker{
		verifier:      verify.New(scheme, verifierOpts...),
		catalog:       cfg.catalog,
		registry:      cfg.registry,
		scheme:        scheme,
		defectHandler: cfg.defectHandler,
	}
}

// Check runs a verification and feeds each reported defect to the defect
// handler, if one is set.
func (c *ConfigChecker) Check(ctx context.Context, scope verify.Scope, params map[string]any) verify.Result {
	result := c.verifier.Verify(ctx, scope, params)

	if c.defectHandler != nil {
		for _, defect := range result.Errors() {
			c.defectHandler(ctx, c.scheme, scope, defect)
		}
	}
	return result
}

// Verifier exposes the underlying verifier, e.g. for option extraction.
func (c *ConfigChecker) Verifier() *verify.Verifier { return c.verifier }

// Catalog exposes the catalog for scheme registration.
func (c *ConfigChecker) Catalog() *catalog.Service { return c.catalog }

// Registry exposes the object registry for reference bindings.
func (c *ConfigChecker) Registry() *registry.Registry { return c.registry }
