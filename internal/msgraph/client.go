package msgraph

import (
	"sync"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

const (
	defaultLoginBase = "https://login.microsoftonline.com"
	defaultGraphBase = "https://graph.microsoft.com/v1.0"
	tokenScope       = "https://graph.microsoft.com/.default"
)

// Options configures the Graph client. LoginBase and GraphBase default to
// the public Microsoft endpoints and exist so tests can point the client at
// a local server.
type Options struct {
	TenantID     string
	ClientID     string
	ClientSecret string

	SiteID       string
	ItemID       string
	SheetName    string
	RangeAddress string

	LoginBase string
	GraphBase string
	Timeout   time.Duration
	RetryMax  int
}

// Client reads the rental workbook over Microsoft Graph with an app-only
// bearer token. The cached token is guarded by its own mutex, independent of
// any snapshot-level locking.
type Client struct {
	opts Options
	http *retryablehttp.Client

	tokenMu  sync.Mutex
	token    string
	tokenExp time.Time
}

// NewClient builds a Graph client. Every outbound call carries opts.Timeout
// (default 20s); transport retries are off unless opts.RetryMax is set.
func NewClient(opts Options) *Client {
	if opts.LoginBase == "" {
		opts.LoginBase = defaultLoginBase
	}
	if opts.GraphBase == "" {
		opts.GraphBase = defaultGraphBase
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 20 * time.Second
	}

	rc := retryablehttp.NewClient()
	rc.RetryMax = opts.RetryMax
	rc.Logger = nil
	rc.HTTPClient.Timeout = opts.Timeout

	return &Client{
		opts: opts,
		http: rc,
	}
}
