package code

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	GroupLeaveType      = "OUT_LEAVE_TYPE"
	GroupApprovalStatus = "APPROVAL_STATUS"

	cacheTTL = 30 * time.Minute
)

func CacheKey(tenantID, groupCode string) string {
	return fmt.Sprintf("codes:%s:%s", tenantID, groupCode)
}

// Lookup resolves short codes to display names. It is read-only; the code
// table itself is maintained elsewhere.
//
//go:generate mockgen -source=code_service.go -destination=mock/code_service_mock.go -package=mock
type Lookup interface {
	Names(ctx context.Context, tenantID, groupCode string) (map[string]string, error)
	NameFor(ctx context.Context, tenantID, groupCode, code string) (string, bool)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

// NewLookup builds a Lookup. rdb may be nil, in which case every call reads
// the database (still collapsed by singleflight).
func NewLookup(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Lookup {
	l := zap.L().Named("code.lookup")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("code.lookup")
	}
	return &service{repo: repo, rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

func (s *service) Names(ctx context.Context, tenantID, groupCode string) (map[string]string, error) {
	cacheKey := CacheKey(tenantID, groupCode)

	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, cacheKey).Result()
		if err == nil {
			var names map[string]string
			if json.Unmarshal([]byte(cached), &names) == nil {
				return names, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn("code cache read failed", zap.String("key", cacheKey), zap.Error(err))
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		codes, err := s.repo.FindByGroup(ctx, tenantID, groupCode)
		if err != nil {
			return nil, err
		}

		names := make(map[string]string, len(codes))
		for _, c := range codes {
			names[c.Code] = c.Name
		}

		if s.rdb != nil {
			if payload, err := json.Marshal(names); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, string(payload), cacheTTL).Err(); err != nil {
					s.logger.Warn("code cache write failed", zap.String("key", cacheKey), zap.Error(err))
				}
			}
		}
		return names, nil
	})
	if err != nil {
		s.logger.Error("code lookup failed",
			zap.String("tenant_id", tenantID),
			zap.String("group_code", groupCode),
			zap.Error(err),
		)
		return nil, err
	}

	return v.(map[string]string), nil
}

func (s *service) NameFor(ctx context.Context, tenantID, groupCode, code string) (string, bool) {
	if code == "" {
		return "", false
	}
	names, err := s.Names(ctx, tenantID, groupCode)
	if err != nil {
		return code, false
	}
	name, ok := names[code]
	if !ok {
		return code, false
	}
	return name, true
}
