package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// tokenInfoURL is package-level so tests can point it at a local server.
var tokenInfoURL = "https://oauth2.googleapis.com/tokeninfo"

var ErrGoogleToken = errors.New("invalid google token")

// GoogleClaims are the fields of a verified Google ID token the backend
// cares about. tokeninfo reports numbers as strings.
type GoogleClaims struct {
	Sub     string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Aud     string `json:"aud"`
	Exp     string `json:"exp"`
	Issuer  string `json:"iss"`
	Picture string `json:"picture"`
}

// VerifyGoogleIDToken checks an ID token against Google's tokeninfo
// endpoint and validates audience and expiry. Network or backend
// failures surface as errors; the caller must not establish a session.
func VerifyGoogleIDToken(ctx context.Context, idToken, audience string) (*GoogleClaims, error) {
	if idToken == "" {
		return nil, fmt.Errorf("%w: empty token", ErrGoogleToken)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		tokenInfoURL+"?id_token="+url.QueryEscape(idToken), nil)
	if err != nil {
		return nil, err
	}

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: tokeninfo status %d", ErrGoogleToken, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return nil, err
	}

	var claims GoogleClaims
	if err := json.Unmarshal(body, &claims); err != nil {
		return nil, fmt.Errorf("%w: bad tokeninfo response", ErrGoogleToken)
	}

	if claims.Sub == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrGoogleToken)
	}
	if audience != "" && claims.Aud != audience {
		return nil, fmt.Errorf("%w: audience mismatch", ErrGoogleToken)
	}
	if exp, err := strconv.ParseInt(claims.Exp, 10, 64); err != nil || exp < time.Now().Unix() {
		return nil, fmt.Errorf("%w: token expired", ErrGoogleToken)
	}

	return &claims, nil
}
