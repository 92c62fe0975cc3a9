package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v4"

	"restaurant-staffing/internal/domain"
)

// Claims is what the rest of the system consumes from a verified token.
type Claims struct {
	Subject string
}

// TokenVerifier is the boundary contract: a bearer token in, a verified
// subject or a single typed failure out.
type TokenVerifier interface {
	VerifyRequest(r *http.Request) (*Claims, *domain.Error)
}

// KeyCache holds PEM-encoded signing keys by kid so the JWKS endpoint is not
// hit on every request. A nil cache disables caching.
type KeyCache interface {
	Get(ctx context.Context, kid string) (string, error)
	Set(ctx context.Context, kid, pem string) error
}

var (
	errWrongAlg = errors.New("token not signed with RS256")
	errNoRSAKey = errors.New("no matching RSA key in JWKS")
)

var (
	errMissingToken = domain.Errorf(http.StatusUnauthorized, "Missing token")

	errInvalidHeader = domain.AuthErrorf("invalid_header",
		"Invalid header. Use an RS256 signed JWT Access Token")
	errUnparseable = domain.AuthErrorf("invalid_header",
		"Unable to parse authentication token.")
	errNoKey = domain.AuthErrorf("no_rsa_key",
		"No RSA key in JWKS")
	errExpired = domain.AuthErrorf("token_expired",
		"token is expired")
	errInvalidClaims = domain.AuthErrorf("invalid_claims",
		"incorrect claims, please check the audience and issuer")
)

// Verifier validates RS256 bearer tokens issued by a tenant at Domain for
// Audience, resolving signing keys from the tenant's JWKS endpoint.
type Verifier struct {
	Domain   string
	Audience string
	Cache    KeyCache
	Client   *http.Client

	// JWKSURL overrides the default well-known endpoint derived from Domain.
	JWKSURL string
}

func NewVerifier(domain, audience string, cache KeyCache) *Verifier {
	return &Verifier{
		Domain:   domain,
		Audience: audience,
		Cache:    cache,
		Client:   http.DefaultClient,
	}
}

func (v *Verifier) issuer() string {
	return "https://" + v.Domain + "/"
}

func (v *Verifier) jwksURL() string {
	if v.JWKSURL != "" {
		return v.JWKSURL
	}
	return "https://" + v.Domain + "/.well-known/jwks.json"
}

// VerifyRequest extracts and verifies the bearer token on r.
func (v *Verifier) VerifyRequest(r *http.Request) (*Claims, *domain.Error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return nil, errMissingToken
	}
	parts := strings.Fields(header)
	if len(parts) < 2 {
		return nil, errMissingToken
	}
	return v.verifyToken(r.Context(), parts[1])
}

func (v *Verifier) verifyToken(ctx context.Context, raw string) (*Claims, *domain.Error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, errWrongAlg
		}
		kid, _ := t.Header["kid"].(string)
		if kid == "" {
			return nil, errNoRSAKey
		}
		return v.signingKey(ctx, kid)
	})
	if err != nil {
		switch {
		case errors.Is(err, errWrongAlg):
			return nil, errInvalidHeader
		case errors.Is(err, errNoRSAKey):
			return nil, errNoKey
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, errExpired
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, errInvalidHeader
		default:
			return nil, errUnparseable
		}
	}
	if !token.Valid {
		return nil, errUnparseable
	}
	if !claims.VerifyAudience(v.Audience, true) || !claims.VerifyIssuer(v.issuer(), true) {
		return nil, errInvalidClaims
	}
	return &Claims{Subject: claims.Subject}, nil
}

// signingKey resolves the RSA public key for kid, preferring the cache and
// falling back to a JWKS fetch.
func (v *Verifier) signingKey(ctx context.Context, kid string) (interface{}, error) {
	if v.Cache != nil {
		if cached, err := v.Cache.Get(ctx, kid); err == nil && cached != "" {
			if key, perr := jwt.ParseRSAPublicKeyFromPEM([]byte(cached)); perr == nil {
				return key, nil
			}
		}
	}

	client := v.Client
	if client == nil {
		client = http.DefaultClient
	}
	doc, err := fetchJWKS(client, v.jwksURL())
	if err != nil {
		return nil, err
	}

	for _, key := range doc.Keys {
		if key.Kid != kid {
			continue
		}
		pub, err := key.publicKey()
		if err != nil {
			return nil, err
		}
		if v.Cache != nil {
			if encoded, perr := encodePEM(pub); perr == nil {
				_ = v.Cache.Set(ctx, kid, encoded)
			}
		}
		return pub, nil
	}
	return nil, errNoRSAKey
}

var _ TokenVerifier = (*Verifier)(nil)
