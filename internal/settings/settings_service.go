package settings

import (
	"context"

	"github.com/david-vardanov/teambie/internal/clock"
	settingserrors "github.com/david-vardanov/teambie/internal/settings/errors"

	"go.uber.org/zap"
)

//go:generate mockgen -source=settings_service.go -destination=mock/settings_service_mock.go -package=mock
type Service interface {
	Get(ctx context.Context) (SettingsResponse, error)
	Current(ctx context.Context) (*Settings, error)
	Update(ctx context.Context, req UpdateSettingsRequest) (SettingsResponse, error)
}

type service struct {
	repo   Repository
	clock  *clock.Clock
	logger *zap.Logger
}

func NewService(repo Repository, clk *clock.Clock, logger ...*zap.Logger) Service {
	l := zap.L().Named("settings.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("settings.service")
	}
	return &service{repo: repo, clock: clk, logger: l}
}

func (s *service) Get(ctx context.Context) (SettingsResponse, error) {
	row, err := s.repo.Get(ctx)
	if err != nil {
		return SettingsResponse{}, err
	}
	return mapToResponse(*row), nil
}

// Current returns the raw row for internal consumers (scheduler, bot).
func (s *service) Current(ctx context.Context) (*Settings, error) {
	return s.repo.Get(ctx)
}

func (s *service) Update(ctx context.Context, req UpdateSettingsRequest) (SettingsResponse, error) {
	row, err := s.repo.Get(ctx)
	if err != nil {
		return SettingsResponse{}, err
	}

	if req.TimezoneOffset != nil {
		if *req.TimezoneOffset < -12 || *req.TimezoneOffset > 14 {
			return SettingsResponse{}, settingserrors.ErrInvalidOffset
		}
		row.TimezoneOffset = *req.TimezoneOffset
	}
	for _, field := range []struct {
		value  *string
		target *string
	}{
		{req.MorningReportTime, &row.MorningReportTime},
		{req.EndOfDayReportTime, &row.EndOfDayReportTime},
		{req.MissedCheckInTime, &row.MissedCheckInTime},
	} {
		if field.value == nil {
			continue
		}
		if _, err := clock.ToMinutes(*field.value); err != nil {
			return SettingsResponse{}, settingserrors.ErrInvalidTimeFormat
		}
		*field.target = *field.value
	}
	if req.ArrivalReminderInterval != nil {
		if *req.ArrivalReminderInterval < 1 {
			return SettingsResponse{}, settingserrors.ErrInvalidInterval
		}
		row.ArrivalReminderInterval = *req.ArrivalReminderInterval
	}
	if req.AutoCheckoutBufferMinutes != nil {
		if *req.AutoCheckoutBufferMinutes < 1 {
			return SettingsResponse{}, settingserrors.ErrInvalidInterval
		}
		row.AutoCheckoutBufferMinutes = *req.AutoCheckoutBufferMinutes
	}
	if req.BotEnabled != nil {
		row.BotEnabled = *req.BotEnabled
	}

	if err := s.repo.Update(ctx, row); err != nil {
		s.logger.Error("update settings persist failed", zap.Error(err))
		return SettingsResponse{}, err
	}

	// The clock caches the offset; push the new value instead of
	// re-reading storage on every time computation.
	if s.clock != nil {
		s.clock.SetOffset(row.TimezoneOffset)
	}

	s.logger.Info("settings updated",
		zap.Int("timezone_offset", row.TimezoneOffset),
		zap.Bool("bot_enabled", row.BotEnabled),
	)
	return mapToResponse(*row), nil
}
