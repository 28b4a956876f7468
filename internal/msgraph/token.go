package msgraph

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/tidwall/gjson"

	"rentdesk-backend/internal/logger"
)

// Tokens are kept for a conservative 3400s, under the ~3600s lifetime the
// identity endpoint actually grants, and refreshed once inside the margin.
const (
	tokenLifetime     = 3400 * time.Second
	tokenSafetyMargin = 30 * time.Second
)

// GetToken returns a bearer token for Graph calls, reusing the cached one
// until it nears expiry. The refresh is serialized: concurrent callers on an
// expired token perform one exchange.
func (c *Client) GetToken(ctx context.Context) (string, error) {
	c.tokenMu.Lock()
	defer c.tokenMu.Unlock()

	if c.token != "" && time.Now().Add(tokenSafetyMargin).Before(c.tokenExp) {
		return c.token, nil
	}

	token, err := c.exchangeToken(ctx)
	if err != nil {
		return "", err
	}
	c.token = token
	c.tokenExp = time.Now().Add(tokenLifetime)
	return c.token, nil
}

// exchangeToken performs the client-credentials grant against the identity
// endpoint. Failures are not retried here; callers decide.
func (c *Client) exchangeToken(ctx context.Context) (string, error) {
	endpoint := fmt.Sprintf("%s/%s/oauth2/v2.0/token", c.opts.LoginBase, c.opts.TenantID)
	form := url.Values{
		"client_id":     {c.opts.ClientID},
		"client_secret": {c.opts.ClientSecret},
		"scope":         {tokenScope},
		"grant_type":    {"client_credentials"},
	}

	logger.ExternalServiceCall("identity", "token_exchange", "tenant_id", c.opts.TenantID)

	req, err := retryablehttp.NewRequestWithContext(ctx, "POST", endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", &AuthError{Detail: err.Error()}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		logger.ExternalServiceResult("identity", "token_exchange", err)
		return "", &AuthError{Detail: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.ExternalServiceResult("identity", "token_exchange", err)
		return "", &AuthError{StatusCode: resp.StatusCode, Detail: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		authErr := &AuthError{
			StatusCode: resp.StatusCode,
			Detail:     gjson.GetBytes(body, "error_description").String(),
		}
		logger.ExternalServiceResult("identity", "token_exchange", authErr)
		return "", authErr
	}

	token := gjson.GetBytes(body, "access_token").String()
	if token == "" {
		authErr := &AuthError{StatusCode: resp.StatusCode, Detail: "response has no access_token field"}
		logger.ExternalServiceResult("identity", "token_exchange", authErr)
		return "", authErr
	}

	logger.ExternalServiceResult("identity", "token_exchange", nil)
	return token, nil
}
