package netutil

import "crypto/tls"

// TLSConfig returns the TLS configuration probes use: TLS 1.2 minimum.
func TLSConfig() *tls.Config {
	return &tls.Config{
		MinVersion: tls.VersionTLS12,
	}
}

// InsecureTLSConfig returns a TLS configuration that skips certificate
// verification. Only for targets the user explicitly marked insecure.
func InsecureTLSConfig() *tls.Config {
	cfg := TLSConfig()
	cfg.InsecureSkipVerify = true
	return cfg
}
