package oauth2

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/kbukum/keycloak/httpclient"
	"github.com/kbukum/keycloak/logger"
	"github.com/kbukum/keycloak/observability"
)

// Standard grant type identifiers.
const (
	GrantAuthorizationCode = "authorization_code"
	GrantRefreshToken      = "refresh_token"
)

// Config configures the grant-exchange engine.
type Config struct {
	// ClientID identifies the OAuth2 client.
	ClientID string `mapstructure:"client_id"`

	// ClientSecret is used with ClientID for HTTP basic client
	// authentication on the token endpoint.
	ClientSecret string `mapstructure:"client_secret"`

	// Timeout bounds each HTTP round trip (default: 10s).
	Timeout time.Duration `mapstructure:"timeout"`
}

// ApplyDefaults sets sensible defaults for zero-valued fields.
func (c *Config) ApplyDefaults() {
	if c.Timeout == 0 {
		c.Timeout = 10 * time.Second
	}
}

// Client exchanges grant parameters for bearer credentials.
// Each call is a single blocking round trip: no retries, no caching,
// no shared state beyond the immutable configuration.
type Client struct {
	cfg  Config
	http *httpclient.Client
	log  *logger.Logger
}

// New creates a grant-exchange client.
func New(cfg Config) (*Client, error) {
	cfg.ApplyDefaults()
	if cfg.ClientID == "" {
		return nil, fmt.Errorf("oauth2: client ID is required")
	}

	hc, err := httpclient.New(httpclient.Config{
		Timeout: cfg.Timeout,
		Auth:    httpclient.BasicAuth(cfg.ClientID, cfg.ClientSecret),
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		cfg:  cfg,
		http: hc,
		log:  logger.WithComponent("oauth2"),
	}, nil
}

// Exchange posts a grant request to the token endpoint and returns the
// resulting bearer credential. The provider's "error" field is checked
// before any token parsing.
func (c *Client) Exchange(ctx context.Context, tokenURL, grantType string, params map[string]string) (*Token, error) {
	ctx, span := observability.StartSpan(ctx, observability.SpanGrantExchange)
	defer span.End()
	observability.SetSpanAttribute(ctx, observability.AttrGrantType, grantType)
	observability.SetSpanAttribute(ctx, observability.AttrEndpoint, tokenURL)

	form := url.Values{"grant_type": {grantType}}
	for k, v := range params {
		form.Set(k, v)
	}

	resp, httpErr := c.http.Do(ctx, httpclient.Request{
		Method:  http.MethodPost,
		Path:    tokenURL,
		Body:    form,
		Headers: map[string]string{"Accept": "application/json"},
	})
	if resp == nil {
		observability.SetSpanError(ctx, httpErr)
		return nil, fmt.Errorf("oauth2: token request: %w", httpErr)
	}

	var raw map[string]any
	if err := json.Unmarshal(resp.Body, &raw); err != nil {
		if httpErr != nil {
			observability.SetSpanError(ctx, httpErr)
			return nil, fmt.Errorf("oauth2: token request: %w", httpErr)
		}
		observability.SetSpanError(ctx, err)
		return nil, fmt.Errorf("oauth2: decode token response: %w", err)
	}

	if provErr := checkProviderError(raw); provErr != nil {
		c.log.Warn("token endpoint returned provider error", logger.Fields(
			logger.FieldGrantType, grantType,
			logger.FieldRequestID, resp.RequestID,
			logger.FieldError, provErr.Code,
		))
		observability.SetSpanError(ctx, provErr)
		return nil, provErr
	}
	if httpErr != nil {
		observability.SetSpanError(ctx, httpErr)
		return nil, fmt.Errorf("oauth2: token request: %w", httpErr)
	}

	tok := tokenFromResponse(raw)
	if tok.AccessToken == "" {
		err := fmt.Errorf("oauth2: token response contains no access token")
		observability.SetSpanError(ctx, err)
		return nil, err
	}

	c.log.Debug("grant exchanged", logger.Fields(
		logger.FieldGrantType, grantType,
		logger.FieldRequestID, resp.RequestID,
	))
	return tok, nil
}

// ResourceOwner fetches the resource-owner details with the given bearer
// credential and returns the raw response body. Interpretation of the body
// (plain claims versus signed token) is the provider adapter's concern,
// but provider error payloads are rejected here.
func (c *Client) ResourceOwner(ctx context.Context, userinfoURL string, tok *Token) ([]byte, error) {
	ctx, span := observability.StartSpan(ctx, observability.SpanResourceOwner)
	defer span.End()
	observability.SetSpanAttribute(ctx, observability.AttrEndpoint, userinfoURL)

	resp, httpErr := c.http.Do(ctx, httpclient.Request{
		Method: http.MethodGet,
		Path:   userinfoURL,
		Auth:   httpclient.BearerAuth(tok.AccessToken),
	})
	if resp == nil {
		observability.SetSpanError(ctx, httpErr)
		return nil, fmt.Errorf("oauth2: userinfo request: %w", httpErr)
	}

	if provErr := decodeProviderError(resp.Body); provErr != nil {
		c.log.Warn("userinfo endpoint returned provider error", logger.Fields(
			logger.FieldRequestID, resp.RequestID,
			logger.FieldError, provErr.Code,
		))
		observability.SetSpanError(ctx, provErr)
		return nil, provErr
	}
	if httpErr != nil {
		observability.SetSpanError(ctx, httpErr)
		return nil, fmt.Errorf("oauth2: userinfo request: %w", httpErr)
	}

	return resp.Body, nil
}
