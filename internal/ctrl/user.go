package ctrl

import (
	"context"
	"errors"
	"fmt"

	"github.com/JMURv/device-sessions/internal/config"
	md "github.com/JMURv/device-sessions/internal/models"
	"github.com/JMURv/device-sessions/internal/repo"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
)

const userCacheKey = "user:%v"

func (c *Controller) GetUserByID(ctx context.Context, userID uuid.UUID) (*md.User, error) {
	const op = "users.GetUserByID.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	cached := &md.User{}
	cacheKey := fmt.Sprintf(userCacheKey, userID)
	err := c.cache.GetToStruct(ctx, cacheKey, cached)
	if err == nil {
		return cached, nil
	}

	res, err := c.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	bytes, err := json.Marshal(res)
	if err == nil {
		c.cache.Set(ctx, config.DefaultCacheTime, cacheKey, bytes)
	}

	return res, nil
}

func (c *Controller) GetUserByEmail(ctx context.Context, email string) (*md.User, error) {
	const op = "users.GetUserByEmail.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	cached := &md.User{}
	cacheKey := fmt.Sprintf(userCacheKey, email)

	err := c.cache.GetToStruct(ctx, cacheKey, cached)
	if err == nil {
		return cached, nil
	}

	res, err := c.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	bytes, err := json.Marshal(res)
	if err == nil {
		c.cache.Set(ctx, config.DefaultCacheTime, cacheKey, bytes)
	}

	return res, nil
}
