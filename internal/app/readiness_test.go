package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/careerpath-labs/career-compass/internal/app"
)

type fakePinger struct{ err error }

func (f fakePinger) Ping(context.Context) error { return f.err }

type fakePingResult struct{ err error }

func (f fakePingResult) Err() error { return f.err }

type fakeRedis struct{ err error }

func (f fakeRedis) Ping(context.Context) app.RedisPingResult { return fakePingResult{err: f.err} }

func TestBuildReadinessChecks_AllHealthy(t *testing.T) {
	t.Parallel()
	dbCheck, redisCheck := app.BuildReadinessChecks(fakePinger{}, fakeRedis{})
	assert.NoError(t, dbCheck(context.Background()))
	assert.NoError(t, redisCheck(context.Background()))
}

func TestBuildReadinessChecks_Failures(t *testing.T) {
	t.Parallel()
	dbCheck, redisCheck := app.BuildReadinessChecks(
		fakePinger{err: errors.New("db down")},
		fakeRedis{err: errors.New("redis down")},
	)
	assert.Error(t, dbCheck(context.Background()))
	assert.Error(t, redisCheck(context.Background()))
}

func TestBuildReadinessChecks_NilDependencies(t *testing.T) {
	t.Parallel()
	dbCheck, redisCheck := app.BuildReadinessChecks(nil, nil)
	assert.Error(t, dbCheck(context.Background()))
	assert.Error(t, redisCheck(context.Background()))
}
