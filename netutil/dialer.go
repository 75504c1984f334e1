// Package netutil provides the network plumbing connectivity checkers
// build on: a probing dialer, a retrying HTTP transport, TLS defaults and
// URL sanitization for log-safe probe targets.
package netutil

import (
	"context"
	"fmt"
	"net"
	"time"
)

// ProbeDialer dials connectivity-probe targets. It resolves the host
// itself so a probe failure can distinguish "name does not resolve" from
// "target unreachable".
type ProbeDialer struct {
	// OnDial is called with the resolved IP before connecting.
	OnDial func(host string, ip net.IP)

	// Resolver is an optional custom DNS resolver.
	Resolver *net.Resolver

	// Timeout is the dial timeout. Default: 30s.
	Timeout time.Duration

	// PreferIPv4 selects an IPv4 address when the host resolves to
	// both families. Default: true semantics apply when unset via
	// selection order below.
	PreferIPv4 bool
}

// DialContext resolves the address and connects to it.
func (d *ProbeDialer) DialContext(ctx context.Context, network, addr string) (net.Conn, error) {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return nil, fmt.Errorf("invalid address %q: %w", addr, err)
	}

	ip := net.ParseIP(host)
	if ip == nil {
		resolver := d.Resolver
		if resolver == nil {
			resolver = net.DefaultResolver
		}

		addrs, err := resolver.LookupIPAddr(ctx, host)
		if err != nil {
			return nil, fmt.Errorf("DNS lookup failed for %q: %w", host, err)
		}
		if len(addrs) == 0 {
			return nil, fmt.Errorf("no IP addresses found for %q", host)
		}

		ip = d.pick(addrs)
	}

	if d.OnDial != nil {
		d.OnDial(host, ip)
	}

	timeout := d.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	dialer := &net.Dialer{Timeout: timeout}
	return dialer.DialContext(ctx, network, net.JoinHostPort(ip.String(), port))
}

func (d *ProbeDialer) pick(addrs []net.IPAddr) net.IP {
	if d.PreferIPv4 {
		for _, addr := range addrs {
			if addr.IP.To4() != nil {
				return addr.IP
			}
		}
	}
	return addrs[0].IP
}
