package icloud

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"hme/internal/domain"
)

const (
	defaultAuthBase  = "https://idmsa.apple.com/appleauth/auth"
	defaultSetupBase = "https://setup.icloud.com/setup/ws/1"

	// Widget key of the icloud.com web client; the auth endpoints refuse
	// requests without it.
	widgetKey = "d39ba9916b7251055b22c7f910e2ea796ee65e98b2ddecea8f5dde8d9d1a815d"

	hmeServiceKey = "premiummailsettings"
)

// Client talks to the iCloud web API.
type Client struct {
	AuthBase  string
	SetupBase string
	HTTP      *http.Client
}

func New() *Client {
	return &Client{
		AuthBase:  defaultAuthBase,
		SetupBase: defaultSetupBase,
		HTTP:      http.DefaultClient,
	}
}

// Login performs password sign-in followed by web session establishment.
// When the service demands a second factor it returns the partial session
// (carrying the tokens VerifyCode needs) together with an error wrapping
// domain.ErrSecondFactorRequired.
func (c *Client) Login(ctx context.Context, creds domain.Credentials, sess domain.Session) (domain.Session, error) {
	sess.Account = creds.Account

	body := map[string]any{
		"accountName": creds.Account,
		"password":    creds.Password,
		"rememberMe":  true,
	}
	if sess.TrustToken != "" {
		body["trustTokens"] = []string{sess.TrustToken}
	}

	resp, raw, err := c.do(ctx, &sess, http.MethodPost, c.AuthBase+"/signin?isRememberMeEnabled=true", body)
	if err != nil {
		return sess, err
	}
	captureAuthHeaders(resp, &sess)

	switch {
	case resp.StatusCode == http.StatusConflict:
		// Trusted-device code pending; the caller prompts and calls VerifyCode.
		return sess, fmt.Errorf("signin: %w", domain.ErrSecondFactorRequired)
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return sess, fmt.Errorf("signin rejected: %w", domain.ErrAuthentication)
	case resp.StatusCode/100 != 2:
		return sess, remoteErr(http.MethodPost, "/signin", resp, raw)
	}

	return c.accountLogin(ctx, sess)
}

// VerifyCode submits the trusted-device code, requests session trust, and
// completes web session establishment.
func (c *Client) VerifyCode(ctx context.Context, sess domain.Session, code string) (domain.Session, error) {
	body := map[string]any{
		"securityCode": map[string]string{"code": code},
	}
	resp, raw, err := c.do(ctx, &sess, http.MethodPost, c.AuthBase+"/verify/trusteddevice/securitycode", body)
	if err != nil {
		return sess, err
	}
	captureAuthHeaders(resp, &sess)
	switch {
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return sess, fmt.Errorf("second factor rejected: %w", domain.ErrAuthentication)
	case resp.StatusCode/100 != 2:
		return sess, remoteErr(http.MethodPost, "/verify/trusteddevice/securitycode", resp, raw)
	}

	// Trust this session so future logins skip the second factor.
	resp, raw, err = c.do(ctx, &sess, http.MethodGet, c.AuthBase+"/2sv/trust", nil)
	if err != nil {
		return sess, err
	}
	captureAuthHeaders(resp, &sess)
	if resp.StatusCode/100 != 2 {
		return sess, remoteErr(http.MethodGet, "/2sv/trust", resp, raw)
	}

	return c.accountLogin(ctx, sess)
}

// Resume validates stored session artifacts without the password and
// refreshes the webservice base URL.
func (c *Client) Resume(ctx context.Context, sess domain.Session) (domain.Session, error) {
	resp, raw, err := c.do(ctx, &sess, http.MethodPost, c.SetupBase+"/validate", nil)
	if err != nil {
		return sess, err
	}
	if resp.StatusCode/100 != 2 {
		return sess, fmt.Errorf("session no longer valid: %w", domain.ErrAuthentication)
	}
	var out setupResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return sess, fmt.Errorf("validate: decode: %w", err)
	}
	if base := out.Webservices[hmeServiceKey].URL; base != "" {
		sess.APIBase = base
	}
	if sess.APIBase == "" {
		return sess, fmt.Errorf("session carries no mail settings service: %w", domain.ErrAuthentication)
	}
	return sess, nil
}

// accountLogin exchanges the auth session token for a web session and
// records the alias webservice base URL.
func (c *Client) accountLogin(ctx context.Context, sess domain.Session) (domain.Session, error) {
	body := map[string]any{
		"dsWebAuthToken": sess.SessionToken,
		"extended_login": true,
	}
	if sess.TrustToken != "" {
		body["trustToken"] = sess.TrustToken
	}
	resp, raw, err := c.do(ctx, &sess, http.MethodPost, c.SetupBase+"/accountLogin", body)
	if err != nil {
		return sess, err
	}
	if resp.StatusCode/100 != 2 {
		return sess, remoteErr(http.MethodPost, "/accountLogin", resp, raw)
	}
	var out setupResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return sess, fmt.Errorf("accountLogin: decode: %w", err)
	}
	svc, ok := out.Webservices[hmeServiceKey]
	if !ok || svc.URL == "" {
		return sess, fmt.Errorf("account has no mail settings service: %w", domain.ErrRemote)
	}
	sess.APIBase = svc.URL
	return sess, nil
}

type setupResponse struct {
	Webservices map[string]struct {
		URL    string `json:"url"`
		Status string `json:"status"`
	} `json:"webservices"`
}

// captureAuthHeaders pulls the idmsa session headers into the session so
// follow-up auth calls can echo them back.
func captureAuthHeaders(resp *http.Response, sess *domain.Session) {
	if v := resp.Header.Get("X-Apple-Session-Token"); v != "" {
		sess.SessionToken = v
	}
	if v := resp.Header.Get("X-Apple-ID-Session-Id"); v != "" {
		sess.SessionID = v
	}
	if v := resp.Header.Get("scnt"); v != "" {
		sess.Scnt = v
	}
	if v := resp.Header.Get("X-Apple-TwoSV-Trust-Token"); v != "" {
		sess.TrustToken = v
	}
}

// do sends one JSON request, applying session cookies and auth headers, and
// merging any Set-Cookie responses back into sess. The full body is read so
// callers can decode it after inspecting the status.
func (c *Client) do(ctx context.Context, sess *domain.Session, method, url string, in any) (*http.Response, []byte, error) {
	var body *bytes.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return nil, nil, err
		}
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Origin", "https://www.icloud.com")
	req.Header.Set("X-Apple-Widget-Key", widgetKey)
	req.Header.Set("X-Apple-OAuth-Client-Id", widgetKey)
	req.Header.Set("X-Apple-OAuth-Client-Type", "firstPartyAuth")
	req.Header.Set("X-Apple-OAuth-Response-Type", "code")
	req.Header.Set("X-Apple-OAuth-Response-Mode", "web_message")
	if sess.SessionID != "" {
		req.Header.Set("X-Apple-ID-Session-Id", sess.SessionID)
	}
	if sess.Scnt != "" {
		req.Header.Set("scnt", sess.Scnt)
	}
	for name, value := range sess.Cookies {
		req.AddCookie(&http.Cookie{Name: name, Value: value})
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("%s %s: %w: %v", method, url, domain.ErrRemote, err)
	}
	defer resp.Body.Close()

	raw, err := readAll(resp)
	if err != nil {
		return nil, nil, fmt.Errorf("%s %s: %w: %v", method, url, domain.ErrRemote, err)
	}

	if len(resp.Cookies()) > 0 {
		if sess.Cookies == nil {
			sess.Cookies = map[string]string{}
		}
		for _, ck := range resp.Cookies() {
			if ck.MaxAge < 0 || (ck.Value == "" && ck.Expires.Unix() == 0) {
				delete(sess.Cookies, ck.Name)
				continue
			}
			sess.Cookies[ck.Name] = ck.Value
		}
	}
	return resp, raw, nil
}

func remoteErr(method, path string, resp *http.Response, raw []byte) error {
	if resp.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("%s %s: rate limited: %w", method, path, domain.ErrRemote)
	}
	if msg := envelopeError(raw); msg != "" {
		return fmt.Errorf("%s %s: %s: %w", method, path, msg, domain.ErrRemote)
	}
	return fmt.Errorf("%s %s: %s: %w", method, path, resp.Status, domain.ErrRemote)
}

var _ domain.AccountClient = (*Client)(nil)
