// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package resources

import (
	"net/http"
	"time"

	"github.com/pdiddy/market-scout/pkg/types"
)

// newHTTPClient builds the shared client for lookup backends with the
// configured fixed timeout.
func newHTTPClient(cfg types.ResourceConfig) *http.Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &http.Client{Timeout: timeout}
}
