package keycloak

import (
	"context"
	"fmt"
	"net/url"

	"github.com/kbukum/keycloak/logger"
	"github.com/kbukum/keycloak/oauth2"
)

// Provider is the Keycloak adapter: realm-scoped endpoints on top of the
// generic grant-exchange engine, plus resolution of userinfo responses
// into verified resource-owner claims.
type Provider struct {
	cfg   Config
	oauth *oauth2.Client
	log   *logger.Logger
}

// New validates the configuration and builds a provider. Partial
// encryption configuration (algorithm without key, or key without
// algorithm) is rejected here rather than at first use.
func New(cfg Config) (*Provider, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("keycloak: invalid config: %w", err)
	}

	oc, err := oauth2.New(oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Timeout:      cfg.Timeout,
	})
	if err != nil {
		return nil, err
	}

	return &Provider{
		cfg:   cfg,
		oauth: oc,
		log: logger.WithComponent("keycloak").WithFields(logger.Fields(
			logger.FieldRealm, cfg.Realm,
			logger.FieldClientID, cfg.ClientID,
		)),
	}, nil
}

// Config returns a copy of the normalized configuration.
func (p *Provider) Config() Config {
	return p.cfg
}

// AuthByCode exchanges an authorization code for tokens. The optional
// redirect URI must match the one used in the authorization request.
func (p *Provider) AuthByCode(ctx context.Context, code string, opts ...AuthCodeOption) (*oauth2.Token, error) {
	params := map[string]string{"code": code}
	if uri := redirectURIFromOpts(opts); uri != "" {
		params["redirect_uri"] = uri
	}
	tok, err := p.oauth.Exchange(ctx, p.BaseAccessTokenURL(), oauth2.GrantAuthorizationCode, params)
	if err != nil {
		return nil, err
	}
	p.log.Debug("authorization code exchanged")
	return tok, nil
}

// AuthByRefreshToken exchanges a refresh token for a fresh token pair.
func (p *Provider) AuthByRefreshToken(ctx context.Context, refreshToken string) (*oauth2.Token, error) {
	return p.oauth.Exchange(ctx, p.BaseAccessTokenURL(), oauth2.GrantRefreshToken,
		map[string]string{"refresh_token": refreshToken})
}

// GetResourceOwner fetches and resolves the resource owner behind an
// access token. Structured userinfo bodies pass through; signed bodies are
// verified against the configured algorithm and key first.
func (p *Provider) GetResourceOwner(ctx context.Context, tok *oauth2.Token) (*ResourceOwner, error) {
	body, err := p.oauth.ResourceOwner(ctx, p.ResourceOwnerDetailsURL(), tok)
	if err != nil {
		return nil, err
	}
	claims, err := p.ResolveResponse(ClassifyResponse(body))
	if err != nil {
		return nil, err
	}
	return NewResourceOwner(claims), nil
}

// VerifyToken verifies a compact signed token against the configured
// algorithm and key and returns its claims.
func (p *Provider) VerifyToken(token string) (map[string]any, error) {
	return p.ResolveResponse(EncodedResponse(token))
}

func redirectURIFromOpts(opts []AuthCodeOption) string {
	q := url.Values{}
	for _, opt := range opts {
		opt(q)
	}
	return q.Get("redirect_uri")
}
