package endpoint

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResolveHost(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in, want string
	}{
		{"localhost", "localhost"},
		{"127.0.0.1", "localhost"},
		{"10.5.0.2", "10.5.0.2"},
		{"prod-line3.factory.local", "prod-line3.factory.local"},
		{"", "localhost"},
		{"not a host!", "not a host!"},
	}
	for _, tc := range cases {
		if got := ResolveHost(tc.in); got != tc.want {
			t.Errorf("ResolveHost(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestResolveBaseURL(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		got  string
		want string
	}{
		{"default port on LAN ip", ResolveBaseURL("10.5.0.2", 0), "http://10.5.0.2:7000"},
		{"override 8000 on localhost", ResolveBaseURL("localhost", 8000), "http://localhost:8000"},
		{"loopback normalized", ResolveBaseURL("127.0.0.1", 0), "http://localhost:7000"},
		{"secondary default", ResolveSecondaryBaseURL("prod-line3.factory.local", 0), "http://prod-line3.factory.local:8000"},
		{"secondary override", ResolveSecondaryBaseURL("10.5.0.2", 9000), "http://10.5.0.2:9000"},
		{"no browsing context", ResolveBaseURL("", 0), "http://localhost:7000"},
		{"ipv6 bracketed", ResolveBaseURL("fe80::1", 0), "http://[fe80::1]:7000"},
	}
	for _, tc := range cases {
		if tc.got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.name, tc.got, tc.want)
		}
	}
}

func TestTarget(t *testing.T) {
	t.Parallel()

	tg := Target("10.5.0.2", 0)
	if tg.Scheme != "http" || tg.Host != "10.5.0.2" || tg.Port != PrimaryPort {
		t.Fatalf("unexpected primary target: %+v", tg)
	}
	st := SecondaryTarget("127.0.0.1", 0)
	if st.Host != "localhost" || st.Port != SecondaryPort {
		t.Fatalf("unexpected secondary target: %+v", st)
	}
}

func TestBrowsingHost(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		host    string
		forward string
		want    string
	}{
		{"strips page port", "10.5.0.2:5173", "", "10.5.0.2"},
		{"no port", "prod-line3.factory.local", "", "prod-line3.factory.local"},
		{"forwarded host wins", "127.0.0.1:8080", "prod-line3.factory.local:443", "prod-line3.factory.local"},
		{"first forwarded value", "127.0.0.1", "a.local, b.local", "a.local"},
		{"ipv6 with port", "[fe80::1]:3000", "", "fe80::1"},
		{"ipv6 without port", "[fe80::1]", "", "fe80::1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Host = tc.host
			if tc.forward != "" {
				req.Header.Set("X-Forwarded-Host", tc.forward)
			}
			if got := BrowsingHost(req); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}

	if got := BrowsingHost(nil); got != "" {
		t.Fatalf("nil request: got %q, want empty", got)
	}
}

func TestParsePort(t *testing.T) {
	t.Parallel()

	cases := map[string]int{
		"":      0,
		"8000":  8000,
		"abc":   0,
		"-1":    0,
		"70000": 0,
	}
	for in, want := range cases {
		if got := ParsePort(in); got != want {
			t.Errorf("ParsePort(%q) = %d, want %d", in, got, want)
		}
	}
}
