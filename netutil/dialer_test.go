package netutil

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestProbeDialer_DialsLiteralIP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	var dialedIP net.IP
	dialer := &ProbeDialer{
		Timeout: 5 * time.Second,
		OnDial:  func(_ string, ip net.IP) { dialedIP = ip },
	}

	conn, err := dialer.DialContext(context.Background(), "tcp", server.Listener.Addr().String())
	if err != nil {
		t.Fatalf("DialContext() error = %v", err)
	}
	defer conn.Close()

	if dialedIP == nil {
		t.Error("OnDial was not called")
	}
}

func TestProbeDialer_InvalidAddress(t *testing.T) {
	dialer := &ProbeDialer{}

	if _, err := dialer.DialContext(context.Background(), "tcp", "no-port-here"); err == nil {
		t.Error("address without port should fail")
	}
}

func TestProbeDialer_UnresolvableHost(t *testing.T) {
	dialer := &ProbeDialer{Timeout: time.Second}

	_, err := dialer.DialContext(context.Background(), "tcp", "definitely-not-a-host.invalid:80")
	if err == nil {
		t.Error("unresolvable host should fail")
	}
}

func TestProbeDialer_PreferIPv4(t *testing.T) {
	d := &ProbeDialer{PreferIPv4: true}
	addrs := []net.IPAddr{
		{IP: net.ParseIP("::1")},
		{IP: net.ParseIP("127.0.0.1")},
	}

	if got := d.pick(addrs); got.To4() == nil {
		t.Errorf("pick() = %v, want the IPv4 address", got)
	}

	d.PreferIPv4 = false
	if got := d.pick(addrs); got.To4() != nil {
		t.Errorf("pick() = %v, want the first address", got)
	}
}
