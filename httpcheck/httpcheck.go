// Package httpcheck implements a connectivity verifier for HTTP
// connectors. Parameter-scope verification runs against the catalog like
// any other scheme; connectivity-scope verification probes the configured
// endpoint with a GET request.
package httpcheck

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/camber-dev/camber-host-sdk/netutil"
	"github.com/camber-dev/camber-host-sdk/verify"
)

// Connectivity-specific codes extending the standard taxonomy.
const (
	// CodeUnreachable marks a target that could not be reached or that
	// answered with a non-auth failure status.
	CodeUnreachable verify.Code = "UNREACHABLE"

	// CodeAuthentication marks a target that rejected the probe with
	// 401 or 403.
	CodeAuthentication verify.Code = "AUTHENTICATION"
)

// DetailStatusCode carries the HTTP status the target answered with.
const DetailStatusCode = "status.code"

// Option keys the checker extracts.
const (
	optionURI      = "httpUri"
	optionTimeout  = "timeout"
	optionInsecure = "insecure"
)

type probeOptions struct {
	URI      string        `validate:"required,url"`
	Timeout  time.Duration `validate:"min=0"`
	Insecure bool
}

// Checker implements verify.ConnectivityChecker by probing the endpoint
// named by the httpUri option.
type Checker struct {
	verifier  *verify.Verifier
	validate  *validator.Validate
	logger    *slog.Logger
	transport http.RoundTripper
}

// Option configures a Checker.
type Option func(*Checker)

// WithTransport overrides the probe transport. Tests use this to avoid
// real dialing.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Checker) { c.transport = rt }
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *Checker) { c.logger = l }
}

// New builds a verifier for the "http" scheme that supports both scopes:
// parameters against the catalog, connectivity by probing the target.
func New(cat verify.Catalog, conv verify.TypeConverter, opts ...Option) *verify.Verifier {
	c := &Checker{
		validate: validator.New(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.verifier = verify.New("http",
		verify.WithCatalog(cat),
		verify.WithConverter(conv),
		verify.WithConnectivityChecker(c),
	)
	return c.verifier
}

// CheckConnectivity extracts the typed probe options and performs the
// live check.
func (c *Checker) CheckConnectivity(ctx context.Context, params map[string]any) verify.Result {
	builder := verify.WithStatusAndScope(verify.StatusOK, verify.ScopeConnectivity)

	uri, err := verify.MandatoryOption[string](c.verifier, params, optionURI, verify.KindString)
	if err != nil {
		if errors.Is(err, verify.ErrNoSuchOption) {
			return builder.Error(verify.WithMissingOption(optionURI).Build()).Build()
		}
		return builder.Error(verify.WithCodeAndDescription(verify.CodeInternal, err.Error()).Build()).Build()
	}

	timeout, err := verify.GetOptionOr(c.verifier, params, optionTimeout, verify.KindDuration,
		func() time.Duration { return 30 * time.Second })
	if err != nil {
		return builder.Error(illegalOption(optionTimeout, params[optionTimeout]).Build()).Build()
	}

	insecure, err := verify.GetOptionOr(c.verifier, params, optionInsecure, verify.KindBool,
		func() bool { return false })
	if err != nil {
		return builder.Error(illegalOption(optionInsecure, params[optionInsecure]).Build()).Build()
	}

	opts := probeOptions{URI: uri, Timeout: timeout, Insecure: insecure}
	if err := c.validate.Struct(&opts); err != nil {
		return builder.
			Error(verify.WithIllegalOption(optionURI, uri).Describe("not a valid URL").Build()).
			Build()
	}

	return c.probe(ctx, builder, opts)
}

func (c *Checker) probe(ctx context.Context, builder *verify.ResultBuilder, opts probeOptions) verify.Result {
	target := netutil.StripCredentials(opts.URI)
	client := &http.Client{
		Timeout:   opts.Timeout,
		Transport: c.probeTransport(opts),
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, opts.URI, nil)
	if err != nil {
		return builder.
			Error(verify.WithIllegalOption(optionURI, target).Describe("not a valid URL").Build()).
			Build()
	}

	resp, err := client.Do(req)
	if err != nil {
		c.logger.Debug("probe failed", "target", target, "error", err)
		return builder.
			Error(verify.WithCodeAndDescription(CodeUnreachable, "cannot reach target").
				Parameter(optionURI).
				Detail("error", err.Error()).
				Build()).
			Build()
	}
	defer resp.Body.Close()

	c.logger.Debug("probe answered", "target", target, "status", resp.StatusCode)

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		builder.Error(verify.NewError(CodeAuthentication).
			Describe("target rejected the probe with status %d", resp.StatusCode).
			Parameter(optionURI).
			Detail(DetailStatusCode, resp.StatusCode).
			Build())
	case resp.StatusCode >= http.StatusBadRequest:
		builder.Error(verify.NewError(CodeUnreachable).
			Describe("target answered with status %d", resp.StatusCode).
			Parameter(optionURI).
			Detail(DetailStatusCode, resp.StatusCode).
			Build())
	}
	return builder.Build()
}

func (c *Checker) probeTransport(opts probeOptions) http.RoundTripper {
	if c.transport != nil {
		return c.transport
	}

	tlsConfig := netutil.TLSConfig()
	if opts.Insecure {
		tlsConfig = netutil.InsecureTLSConfig()
	}
	dialer := &netutil.ProbeDialer{Timeout: opts.Timeout, PreferIPv4: true}
	return &netutil.RetryTransport{
		Base: &http.Transport{
			DialContext:     dialer.DialContext,
			TLSClientConfig: tlsConfig,
		},
	}
}

func illegalOption(key string, raw any) *verify.ErrorBuilder {
	return verify.WithIllegalOption(key, fmt.Sprint(raw))
}
