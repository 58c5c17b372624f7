// Package httpclient provides a small HTTP client with built-in
// authentication, status-code error classification, and request
// correlation IDs.
//
// Every request carries an X-Request-Id header (generated when absent) so
// calls can be correlated across client and provider logs. Non-2xx
// responses are returned alongside a typed *Error classifying the failure.
//
// # Usage
//
//	client, err := httpclient.New(httpclient.Config{
//	    Timeout: 10 * time.Second,
//	    Auth:    httpclient.BasicAuth("client-id", "client-secret"),
//	})
//
//	resp, err := client.Do(ctx, httpclient.Request{
//	    Method: http.MethodPost,
//	    Path:   "https://idp.example.com/realms/demo/protocol/openid-connect/token",
//	    Body:   url.Values{"grant_type": {"authorization_code"}},
//	})
package httpclient
