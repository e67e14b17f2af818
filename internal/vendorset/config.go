// Package vendorset parses the Pricing Aggregator's configured vendor set:
// the VENDORS environment variable, a comma-separated list of
// host:port:display_name triples. The resulting set is snapshotted once at
// process start and never mutated, per the spec's "configured at process
// start; set is stable for the process lifetime."
package vendorset

import (
	"fmt"
	"strings"
)

// Endpoint is one configured VendorEndpoint.
type Endpoint struct {
	Host        string
	Port        string
	DisplayName string
}

// Addr returns the dial target for this endpoint.
func (e Endpoint) Addr() string {
	return fmt.Sprintf("%s:%s", e.Host, e.Port)
}

// Parse splits raw (the VENDORS env var value) into Endpoints. Each entry
// must be "host:port:display_name"; entries are separated by commas.
// Whitespace around entries and fields is trimmed. An empty raw string
// yields an empty, non-nil slice.
func Parse(raw string) ([]Endpoint, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []Endpoint{}, nil
	}

	parts := strings.Split(raw, ",")
	endpoints := make([]Endpoint, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		fields := strings.SplitN(part, ":", 3)
		if len(fields) != 3 {
			return nil, fmt.Errorf("vendorset: malformed entry %q, want host:port:display_name", part)
		}
		host := strings.TrimSpace(fields[0])
		port := strings.TrimSpace(fields[1])
		name := strings.TrimSpace(fields[2])
		if host == "" || port == "" || name == "" {
			return nil, fmt.Errorf("vendorset: malformed entry %q, want host:port:display_name", part)
		}
		endpoints = append(endpoints, Endpoint{Host: host, Port: port, DisplayName: name})
	}
	return endpoints, nil
}
