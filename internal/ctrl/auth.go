package ctrl

import (
	"context"
	"errors"

	"github.com/JMURv/device-sessions/internal/auth"
	"github.com/JMURv/device-sessions/internal/dto"
	"github.com/JMURv/device-sessions/internal/repo"
	"github.com/JMURv/device-sessions/internal/session"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

// Authenticate verifies credentials against the user directory, mints a
// token pair and opens a fresh tracked session. Bad credentials and an
// unknown email are indistinguishable to the caller.
func (c *Controller) Authenticate(
	ctx context.Context,
	req *dto.EmailAndPasswordRequest,
	d *dto.DeviceRequest,
) (*dto.TokenPairResponse, *session.Session, error) {
	const op = "auth.Authenticate.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	user, err := c.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, nil, auth.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	err = c.pswd.ComparePasswords([]byte(user.Password), []byte(req.Password))
	if err != nil {
		return nil, nil, auth.ErrInvalidCredentials
	}

	access, refresh, err := c.au.GenPair(ctx, user.ID, user.Name)
	if err != nil {
		return nil, nil, err
	}

	s := session.New(session.NewSID(), user.ID)
	if err := c.RecordActivity(ctx, s, d); err != nil {
		zap.L().Warn("failed to record login activity", zap.String("op", op), zap.Error(err))
	}

	return &dto.TokenPairResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "Bearer",
	}, s, nil
}

// Refresh reissues only the access token from a valid refresh token.
func (c *Controller) Refresh(
	ctx context.Context,
	req *dto.RefreshRequest,
) (*dto.AccessTokenResponse, error) {
	const op = "auth.Refresh.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	claims := c.au.Decode(ctx, req.Token, c.au.Refresh())
	if claims == nil {
		return nil, auth.ErrInvalidToken
	}

	uid, err := claims.UID()
	if err != nil {
		return nil, auth.ErrInvalidToken
	}

	user, err := c.repo.GetUserByID(ctx, uid)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, auth.ErrInvalidToken
		}
		return nil, err
	}

	access, err := c.au.NewToken(ctx, user.ID, user.Name, c.au.Access())
	if err != nil {
		return nil, err
	}

	return &dto.AccessTokenResponse{
		AccessToken: access,
		TokenType:   "Bearer",
	}, nil
}
