package jwt

import (
	"context"
	"time"

	"github.com/JMURv/device-sessions/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type Kind string

const (
	KindAccess  Kind = "access"
	KindRefresh Kind = "refresh"
)

// Validator is a tagged token configuration. A refresh validator is chained
// off the access one via Next; dispatch happens on Kind, there is no shared
// extensible base.
type Validator struct {
	Kind     Kind
	Duration time.Duration
	Secret   []byte
	Issuer   string
	Next     *Validator
}

type Port interface {
	Access() *Validator
	Refresh() *Validator
	NewToken(ctx context.Context, uid uuid.UUID, name string, v *Validator) (string, error)
	GenPair(ctx context.Context, uid uuid.UUID, name string) (string, string, error)
	Decode(ctx context.Context, tokenStr string, v *Validator) *Claims
	ParseClaims(ctx context.Context, tokenStr string) (Claims, error)
}

type Claims struct {
	Name string `json:"name"`
	Kind Kind   `json:"kind"`
	jwt.RegisteredClaims
}

// UID parses the subject claim.
func (c *Claims) UID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

type Core struct {
	access *Validator
}

func New(conf config.AuthConfig) *Core {
	return &Core{
		access: &Validator{
			Kind:     KindAccess,
			Duration: config.AccessTokenDuration,
			Secret:   []byte(conf.Secret),
			Issuer:   conf.Issuer,
			Next: &Validator{
				Kind:     KindRefresh,
				Duration: config.RefreshTokenDuration,
				Secret:   []byte(conf.RefreshSecret),
				Issuer:   conf.Issuer,
			},
		},
	}
}

func (c *Core) Access() *Validator {
	return c.access
}

func (c *Core) Refresh() *Validator {
	return c.access.Next
}

func (c *Core) NewToken(
	ctx context.Context,
	uid uuid.UUID,
	name string,
	v *Validator,
) (string, error) {
	const op = "auth.NewToken.jwt"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if v == nil {
		return "", ErrValidatorMissing
	}

	signed, err := jwt.NewWithClaims(
		jwt.SigningMethodHS256, &Claims{
			Name: name,
			Kind: v.Kind,
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   uid.String(),
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(v.Duration)),
				IssuedAt:  jwt.NewNumericDate(time.Now()),
				Issuer:    v.Issuer,
			},
		},
	).SignedString(v.Secret)
	if err != nil {
		zap.L().Error(
			ErrWhileCreatingToken.Error(),
			zap.Error(err),
		)

		return "", ErrWhileCreatingToken
	}

	return signed, nil
}

func (c *Core) GenPair(ctx context.Context, uid uuid.UUID, name string) (string, string, error) {
	const op = "auth.GenPair.jwt"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	access, err := c.NewToken(ctx, uid, name, c.Access())
	if err != nil {
		zap.L().Error(
			"Failed to generate token pair",
			zap.String("uid", uid.String()),
			zap.Error(err),
		)

		return "", "", err
	}

	refresh, err := c.NewToken(ctx, uid, name, c.Refresh())
	if err != nil {
		zap.L().Error(
			"Failed to generate token pair",
			zap.String("uid", uid.String()),
			zap.Error(err),
		)

		return "", "", err
	}

	return access, refresh, nil
}

// Decode never fails loudly: malformed, expired, badly signed or wrong-kind
// tokens all come back as nil claims.
func (c *Core) Decode(ctx context.Context, tokenStr string, v *Validator) *Claims {
	const op = "auth.Decode.jwt"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if v == nil {
		return nil
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(
		tokenStr, claims, func(token *jwt.Token) (any, error) {
			if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, ErrUnexpectedSignMethod
			}

			return v.Secret, nil
		},
	)
	if err != nil || !token.Valid {
		zap.L().Debug(
			"failed to decode token",
			zap.String("op", op),
			zap.Error(err),
		)

		return nil
	}

	if claims.Kind != v.Kind {
		zap.L().Debug(
			"token kind mismatch",
			zap.String("op", op),
			zap.String("want", string(v.Kind)),
			zap.String("got", string(claims.Kind)),
		)

		return nil
	}

	return claims
}

// ParseClaims validates an access token, for middleware use.
func (c *Core) ParseClaims(ctx context.Context, tokenStr string) (Claims, error) {
	const op = "auth.ParseClaims.jwt"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	claims := c.Decode(ctx, tokenStr, c.Access())
	if claims == nil {
		return Claims{}, ErrInvalidToken
	}

	return *claims, nil
}
