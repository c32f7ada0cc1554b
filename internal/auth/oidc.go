package auth

import (
	"context"
	"encoding/json"
	"fmt"

	gooidc "github.com/coreos/go-oidc/v3/oidc"

	"github.com/tschmitz/bookmarkd/internal/config"
)

// OIDCVerifier validates bearer JWTs issued by an external OIDC provider and
// extracts the caller identity from a configurable claim. This is the
// resource-server side only: the service never runs a login flow itself.
type OIDCVerifier struct {
	verifier *gooidc.IDTokenVerifier
	claim    string
}

// NewOIDCVerifier performs OIDC discovery against the configured issuer and
// returns a verifier bound to the configured client id (audience).
func NewOIDCVerifier(ctx context.Context, cfg *config.Config) (*OIDCVerifier, error) {
	provider, err := gooidc.NewProvider(ctx, cfg.OIDC.Issuer)
	if err != nil {
		return nil, fmt.Errorf("OIDC provider discovery failed for %s: %w", cfg.OIDC.Issuer, err)
	}

	verifier := provider.Verifier(&gooidc.Config{ClientID: cfg.OIDC.ClientID})
	return &OIDCVerifier{verifier: verifier, claim: cfg.OIDC.Claim}, nil
}

// Resolve verifies rawToken and returns the caller identity taken from the
// configured claim, falling back to the token subject when the claim is
// absent or empty.
func (v *OIDCVerifier) Resolve(ctx context.Context, rawToken string) (string, error) {
	token, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		return "", fmt.Errorf("bearer token verification: %w", err)
	}

	var claims map[string]json.RawMessage
	if err := token.Claims(&claims); err != nil {
		return "", fmt.Errorf("decode token claims: %w", err)
	}

	if raw, ok := claims[v.claim]; ok {
		var name string
		if err := json.Unmarshal(raw, &name); err == nil && name != "" {
			return name, nil
		}
	}
	if token.Subject == "" {
		return "", fmt.Errorf("token carries neither %q claim nor subject", v.claim)
	}
	return token.Subject, nil
}
