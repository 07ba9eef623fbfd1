package report

import (
	"context"
	"encoding/json"
	"time"

	"go-hrms/internal/attendance"
	"go-hrms/internal/employee"
	"go-hrms/internal/leave"
	reporterrors "go-hrms/internal/report/errors"
	"go-hrms/internal/shared/metrics"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	DashboardKeyPrefix = "hrms:dashboard:"
	dashboardTTL       = time.Minute
)

func GetDashboardKey(date string) string {
	return DashboardKeyPrefix + date
}

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	Dashboard(ctx context.Context, date string) (DashboardResponse, error)
}

type service struct {
	employees  employee.Repository
	attendance attendance.Repository
	leaves     leave.Repository
	rdb        *redis.Client
	sf         *singleflight.Group
	logger     *zap.Logger
}

// NewService builds the report service. rdb may be nil, which disables caching.
func NewService(
	employees employee.Repository,
	attendanceRepo attendance.Repository,
	leaves leave.Repository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	return &service{
		employees:  employees,
		attendance: attendanceRepo,
		leaves:     leaves,
		rdb:        rdb,
		sf:         &singleflight.Group{},
		logger:     l,
	}
}

func (s *service) Dashboard(ctx context.Context, date string) (DashboardResponse, error) {
	if _, err := time.Parse(attendance.DateLayout, date); err != nil {
		return DashboardResponse{}, reporterrors.ErrInvalidDate
	}
	cacheKey := GetDashboardKey(date)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp DashboardResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				metrics.ObserveCacheLookup("dashboard", true)
				return resp, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn("dashboard cache read failed", zap.String("key", cacheKey), zap.Error(err))
		}
		metrics.ObserveCacheLookup("dashboard", false)
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		emps, err := s.employees.FindAll(ctx)
		if err != nil {
			return nil, err
		}
		records, err := s.attendance.FindAll(ctx)
		if err != nil {
			return nil, err
		}
		leaves, err := s.leaves.FindAll(ctx)
		if err != nil {
			return nil, err
		}

		resp := buildDashboard(date, emps, records, leaves)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, jsonData, dashboardTTL).Err(); err != nil {
					s.logger.Warn("dashboard cache write failed", zap.String("key", cacheKey), zap.Error(err))
				}
			}
		}
		return resp, nil
	})
	if err != nil {
		s.logger.Error("build dashboard failed", zap.Error(err))
		return DashboardResponse{}, err
	}

	return v.(DashboardResponse), nil
}
