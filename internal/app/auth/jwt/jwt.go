package jwt

import (
	"crypto/rsa"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	customErrors "github.com/Miraines/MoonyAndStarry/task-service/internal/domain/auth/errors"
	"github.com/Miraines/MoonyAndStarry/task-service/internal/infra/config"
)

// Claim names shared by issuance and resolution. The token-type
// discriminator keeps access and refresh tokens from being used in each
// other's place; cookie names equal the discriminator values.
const (
	TokenTypeField   = "type"
	AccessTokenType  = "access"
	RefreshTokenType = "refresh"
)

// Codec signs and verifies RS256 tokens over map-shaped claims. Expiry and
// signature checking live here so callers only ever deal with verified
// claim maps.
type Codec struct {
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
	now        func() time.Time
}

func NewCodec(cfg *config.Config) (*Codec, error) {
	privPem, err := os.ReadFile(cfg.JWTPrivateKeyPath)
	if err != nil {
		return nil, customErrors.WrapInternal(err, "read private key")
	}
	privKey, err := jwt.ParseRSAPrivateKeyFromPEM(privPem)
	if err != nil {
		return nil, customErrors.WrapInternal(err, "parse private key")
	}

	pubPem, err := os.ReadFile(cfg.JWTPublicKeyPath)
	if err != nil {
		return nil, customErrors.WrapInternal(err, "read public key")
	}
	pubKey, err := jwt.ParseRSAPublicKeyFromPEM(pubPem)
	if err != nil {
		return nil, customErrors.WrapInternal(err, "parse public key")
	}

	return &Codec{
		privateKey: privKey,
		publicKey:  pubKey,
		now:        time.Now,
	}, nil
}

// WithClock substitutes the time source. Tests use it to cross the expiry
// boundary deterministically.
func (c *Codec) WithClock(now func() time.Time) *Codec {
	c.now = now
	return c
}

// Encode copies claims, stamps iat/exp and signs. An explicit
// expireOverride takes precedence over expireMinutes.
func (c *Codec) Encode(claims jwt.MapClaims, expireMinutes int, expireOverride time.Duration) (string, error) {
	now := c.now()

	expire := now.Add(time.Duration(expireMinutes) * time.Minute)
	if expireOverride != 0 {
		expire = now.Add(expireOverride)
	}

	payload := jwt.MapClaims{}
	for k, v := range claims {
		payload[k] = v
	}
	payload["iat"] = jwt.NewNumericDate(now)
	payload["exp"] = jwt.NewNumericDate(expire)

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, payload).SignedString(c.privateKey)
	if err != nil {
		return "", customErrors.WrapInternal(err, "sign token")
	}
	return signed, nil
}

// Decode verifies signature, algorithm and expiry. Every failure mode
// (bad signature, wrong algorithm, malformed or expired token) normalizes
// to the same invalid-token kind.
func (c *Codec) Decode(raw string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(raw,
		func(t *jwt.Token) (interface{}, error) {
			return c.publicKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return c.now() }),
	)
	if err != nil || !token.Valid {
		return nil, customErrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, customErrors.ErrInvalidToken
	}
	return claims, nil
}
