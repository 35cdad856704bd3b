// Package github provides the focused slice of the GitHub API this application
// needs: per-installation authentication, comment acknowledgments, and
// repository dispatch.
package github

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/gofri/go-github-ratelimit/v2/github_ratelimit"
	"github.com/google/go-github/v73/github"
	"github.com/gregjones/httpcache"
	"golang.org/x/oauth2"

	"github.com/chkwon/redpen-app/internal/config"
)

// Token is a short-lived installation access token. It is scoped to a single
// request and never cached across requests: every delivery mints its own.
type Token struct {
	Value     string
	ExpiresAt time.Time
}

// ClientFactory builds a GitHub client authenticated as one app installation.
//
//go:generate mockgen -destination=../../mocks/mock_client_factory.go -package=mocks . ClientFactory
type ClientFactory interface {
	ClientFor(ctx context.Context, installationID int64) (Client, *Token, error)
}

type appClientFactory struct {
	cfg    *config.Config
	logger *slog.Logger
	// httpClient carries the shared outbound transport stack:
	// ETag cache underneath, secondary-rate-limit sleeper on top.
	httpClient *http.Client
	// baseURL overrides the GitHub API endpoint in tests.
	baseURL string
}

// NewClientFactory creates a factory that exchanges the app's private key for
// installation tokens against the public GitHub API.
func NewClientFactory(cfg *config.Config, logger *slog.Logger) ClientFactory {
	return newClientFactory(cfg, logger, "")
}

// NewClientFactoryWithBaseURL is NewClientFactory pointed at an alternate API
// endpoint, intended for httptest servers.
func NewClientFactoryWithBaseURL(cfg *config.Config, logger *slog.Logger, baseURL string) ClientFactory {
	return newClientFactory(cfg, logger, baseURL)
}

func newClientFactory(cfg *config.Config, logger *slog.Logger, baseURL string) ClientFactory {
	return &appClientFactory{
		cfg:        cfg,
		logger:     logger,
		httpClient: github_ratelimit.NewClient(httpcache.NewMemoryCacheTransport()),
		baseURL:    baseURL,
	}
}

// ClientFor mints a signed app assertion and exchanges it for an installation
// token scoped to installationID, then wraps the token in a ready-to-use
// client. Key problems surface as configuration errors before any network
// call; the exchange itself is attempted exactly once.
func (f *appClientFactory) ClientFor(ctx context.Context, installationID int64) (Client, *Token, error) {
	privateKey, err := os.ReadFile(f.cfg.GitHub.PrivateKeyPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read private key from %s: %w", f.cfg.GitHub.PrivateKeyPath, err)
	}

	// The apps transport signs a short-lived JWT (issued-at backdated for
	// clock skew, ten minute expiry, issuer = app id) on every request.
	appTransport, err := ghinstallation.NewAppsTransport(http.DefaultTransport, f.cfg.GitHub.AppID, privateKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create GitHub App transport: %w", err)
	}

	appClient := github.NewClient(&http.Client{Transport: appTransport})
	if err := f.applyBaseURL(appClient); err != nil {
		return nil, nil, err
	}

	token, _, err := appClient.Apps.CreateInstallationToken(ctx, installationID, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create installation token for installation %d: %w", installationID, err)
	}
	if token.GetToken() == "" {
		return nil, nil, fmt.Errorf("received an empty installation token for installation %d", installationID)
	}
	f.logger.Debug("created installation token",
		"installation_id", installationID,
		"expires_at", token.GetExpiresAt())

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token.GetToken()})
	tokenCtx := context.WithValue(ctx, oauth2.HTTPClient, f.httpClient)
	installationClient := github.NewClient(oauth2.NewClient(tokenCtx, ts))
	if err := f.applyBaseURL(installationClient); err != nil {
		return nil, nil, err
	}

	return NewClient(installationClient, f.logger), &Token{
		Value:     token.GetToken(),
		ExpiresAt: token.GetExpiresAt().Time,
	}, nil
}

func (f *appClientFactory) applyBaseURL(client *github.Client) error {
	if f.baseURL == "" {
		return nil
	}
	u, err := url.Parse(f.baseURL)
	if err != nil {
		return fmt.Errorf("invalid GitHub base URL %q: %w", f.baseURL, err)
	}
	client.BaseURL = u
	return nil
}
