// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package verify

import (
	"context"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the movie root of the sign lexicon.
	DefaultBaseURL = "https://teckensprakslexikon.su.se/movies"

	// DefaultTimeout bounds a single probe.
	DefaultTimeout = 10 * time.Second

	// DefaultRequestsPerSecond caps the probe rate against the remote
	// host. The lexicon is a university service, not a CDN.
	DefaultRequestsPerSecond = 8
)

// videoID extracts the five-digit identifier of a lexicon video
// filename; the first two digits name the directory shard.
var videoID = regexp.MustCompile(`-(\d{5})-tecken\.mp4$`)

// Prober reports whether a video file exists on the remote host.
type Prober interface {
	// Exists probes filename. Transport failures, redirects and
	// non-200 answers all mean false; probing never raises.
	Exists(ctx context.Context, filename string) bool
}

// HTTPProber probes the lexicon with HEAD requests.
type HTTPProber struct {
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
	logger  *slog.Logger
}

var _ Prober = (*HTTPProber)(nil)

// ProberOption configures an HTTPProber.
type ProberOption func(*HTTPProber)

// WithBaseURL overrides the movie root URL.
func WithBaseURL(u string) ProberOption {
	return func(p *HTTPProber) {
		if u != "" {
			p.baseURL = strings.TrimRight(u, "/")
		}
	}
}

// WithTimeout overrides the per-probe timeout.
func WithTimeout(d time.Duration) ProberOption {
	return func(p *HTTPProber) {
		if d > 0 {
			p.client.Timeout = d
		}
	}
}

// WithRequestLimit caps probes per second. Zero or negative disables
// the limiter.
func WithRequestLimit(perSecond float64) ProberOption {
	return func(p *HTTPProber) {
		if perSecond <= 0 {
			p.limiter = nil
			return
		}
		p.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
	}
}

// WithLogger sets a custom logger. Default is slog.Default().
func WithLogger(logger *slog.Logger) ProberOption {
	return func(p *HTTPProber) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewHTTPProber creates a prober with the default lexicon endpoint,
// timeout and request limit.
func NewHTTPProber(opts ...ProberOption) *HTTPProber {
	p := &HTTPProber{
		baseURL: DefaultBaseURL,
		limiter: rate.NewLimiter(rate.Limit(DefaultRequestsPerSecond), 1),
		logger:  slog.Default().With("component", "verify"),
		client: &http.Client{
			Timeout: DefaultTimeout,
			// retired videos answer with a redirect; those count as missing
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// URL returns the probe URL for filename, or "" when the filename does
// not carry a lexicon video ID.
func (p *HTTPProber) URL(filename string) string {
	m := videoID.FindStringSubmatch(filename)
	if m == nil {
		return ""
	}
	return p.baseURL + "/" + m[1][:2] + "/" + filename
}

// Exists implements Prober.
func (p *HTTPProber) Exists(ctx context.Context, filename string) bool {
	url := p.URL(filename)
	if url == "" {
		p.logger.Debug("unrecognized video filename", "filename", filename)
		return false
	}

	if p.limiter != nil {
		if err := p.limiter.Wait(ctx); err != nil {
			return false
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return false
	}
	resp, err := p.client.Do(req)
	if err != nil {
		p.logger.Debug("probe failed", "url", url, "err", err)
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}
