package icloud

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"hme/internal/domain"
)

// aliasRecord is the wire shape of one Hide My Email alias.
type aliasRecord struct {
	AnonymousID     string `json:"anonymousId"`
	HME             string `json:"hme"`
	Label           string `json:"label"`
	Note            string `json:"note"`
	CreateTimestamp int64  `json:"createTimestamp"`
	IsActive        bool   `json:"isActive"`
	ForwardToEmail  string `json:"forwardToEmail"`
	Domain          string `json:"domain"`
}

func (r aliasRecord) toDomain() domain.Alias {
	created := r.CreateTimestamp
	// The service reports milliseconds.
	if created > 1e12 {
		created /= 1000
	}
	return domain.Alias{
		AnonymousID: r.AnonymousID,
		Address:     r.HME,
		Label:       r.Label,
		Note:        r.Note,
		Active:      r.IsActive,
		ForwardTo:   r.ForwardToEmail,
		Domain:      r.Domain,
		CreatedUTC:  created,
	}
}

// envelope is the common response wrapper of the hme webservice.
type envelope struct {
	Success bool            `json:"success"`
	Result  json.RawMessage `json:"result"`
	Error   json.RawMessage `json:"error"`
}

func (c *Client) ListAliases(ctx context.Context, sess domain.Session) ([]domain.Alias, error) {
	var result struct {
		HMEEmails []aliasRecord `json:"hmeEmails"`
	}
	if err := c.hme(ctx, &sess, http.MethodGet, "/v2/hme/list", nil, &result); err != nil {
		return nil, err
	}
	out := make([]domain.Alias, 0, len(result.HMEEmails))
	for _, r := range result.HMEEmails {
		out = append(out, r.toDomain())
	}
	return out, nil
}

// CreateAlias generates a fresh address and reserves it with the given
// metadata; the service treats the two as separate steps.
func (c *Client) CreateAlias(ctx context.Context, sess domain.Session, label, note string) (domain.Alias, error) {
	var generated struct {
		HME string `json:"hme"`
	}
	if err := c.hme(ctx, &sess, http.MethodPost, "/v1/hme/generate", nil, &generated); err != nil {
		return domain.Alias{}, err
	}
	if generated.HME == "" {
		return domain.Alias{}, fmt.Errorf("generate returned no address: %w", domain.ErrRemote)
	}

	var reserved struct {
		HME aliasRecord `json:"hme"`
	}
	in := map[string]string{"hme": generated.HME, "label": label, "note": note}
	if err := c.hme(ctx, &sess, http.MethodPost, "/v1/hme/reserve", in, &reserved); err != nil {
		return domain.Alias{}, err
	}
	return reserved.HME.toDomain(), nil
}

func (c *Client) UpdateAlias(ctx context.Context, sess domain.Session, anonymousID, label, note string) error {
	in := map[string]string{"anonymousId": anonymousID, "label": label, "note": note}
	return c.hme(ctx, &sess, http.MethodPost, "/v1/hme/updateMetaData", in, nil)
}

func (c *Client) SetAliasActive(ctx context.Context, sess domain.Session, anonymousID string, active bool) error {
	path := "/v1/hme/deactivate"
	if active {
		path = "/v1/hme/reactivate"
	}
	in := map[string]string{"anonymousId": anonymousID}
	return c.hme(ctx, &sess, http.MethodPost, path, in, nil)
}

func (c *Client) DeleteAlias(ctx context.Context, sess domain.Session, anonymousID string) error {
	in := map[string]string{"anonymousId": anonymousID}
	return c.hme(ctx, &sess, http.MethodPost, "/v1/hme/delete", in, nil)
}

// hme performs one call against the alias webservice and unwraps the
// success/result envelope.
func (c *Client) hme(ctx context.Context, sess *domain.Session, method, path string, in, out any) error {
	if sess.APIBase == "" {
		return fmt.Errorf("not logged in: %w", domain.ErrAuthentication)
	}
	resp, raw, err := c.do(ctx, sess, method, sess.APIBase+path, in)
	if err != nil {
		return err
	}
	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%s: %w", path, domain.ErrAuthentication)
	case resp.StatusCode/100 != 2:
		return remoteErr(method, path, resp, raw)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("%s: decode: %w", path, err)
	}
	if !env.Success {
		if msg := decodeEnvelopeError(env.Error); msg != "" {
			return fmt.Errorf("%s: %s: %w", path, msg, domain.ErrRemote)
		}
		return fmt.Errorf("%s: request not successful: %w", path, domain.ErrRemote)
	}
	if out != nil && len(env.Result) > 0 {
		if err := json.Unmarshal(env.Result, out); err != nil {
			return fmt.Errorf("%s: decode result: %w", path, err)
		}
	}
	return nil
}

// envelopeError extracts a service error message from a raw body, used for
// non-2xx responses that still carry the JSON envelope.
func envelopeError(raw []byte) string {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return ""
	}
	return decodeEnvelopeError(env.Error)
}

func decodeEnvelopeError(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var obj struct {
		ErrorMessage string `json:"errorMessage"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		return obj.ErrorMessage
	}
	return ""
}

func readAll(resp *http.Response) ([]byte, error) {
	return io.ReadAll(io.LimitReader(resp.Body, 4<<20))
}
