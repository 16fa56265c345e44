//go:build integration

package guard_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"billsplit/internal/dispute/guard"
	id "billsplit/pkg/domain"
	"billsplit/pkg/platform/sentinel"
	"billsplit/pkg/testutil/containers"
)

type RedisGuardSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	guard *guard.RedisGuard
}

func TestRedisGuardSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisGuardSuite))
}

func (s *RedisGuardSuite) SetupSuite() {
	s.redis = containers.GetManager().GetRedis(s.T())
	s.guard = guard.NewRedis(s.redis.Client, guard.WithTTL(2*time.Second))
}

func (s *RedisGuardSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func (s *RedisGuardSuite) TestLeaseLifecycle() {
	ctx := context.Background()
	reportID := id.NewReportID()

	release, err := s.guard.Acquire(ctx, reportID)
	s.Require().NoError(err)

	_, err = s.guard.Acquire(ctx, reportID)
	s.ErrorIs(err, sentinel.ErrAlreadyUsed)

	release(ctx)
	release2, err := s.guard.Acquire(ctx, reportID)
	s.Require().NoError(err)
	release2(ctx)
}

func (s *RedisGuardSuite) TestStaleHolderCannotRelease() {
	ctx := context.Background()
	reportID := id.NewReportID()

	staleRelease, err := s.guard.Acquire(ctx, reportID)
	s.Require().NoError(err)

	s.Eventually(func() bool {
		_, err := s.guard.Acquire(ctx, reportID)
		return err == nil
	}, 5*time.Second, 100*time.Millisecond)

	staleRelease(ctx)
	_, err = s.guard.Acquire(ctx, reportID)
	s.ErrorIs(err, sentinel.ErrAlreadyUsed)
}
