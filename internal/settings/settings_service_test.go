package settings_test

import (
	"context"
	"testing"
	"time"

	"github.com/david-vardanov/teambie/internal/clock"
	"github.com/david-vardanov/teambie/internal/settings"
	settingserrors "github.com/david-vardanov/teambie/internal/settings/errors"
	"github.com/david-vardanov/teambie/internal/settings/mock"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func storedRow() *settings.Settings {
	return &settings.Settings{
		ID:                        1,
		TimezoneOffset:            0,
		MorningReportTime:         "09:00",
		EndOfDayReportTime:        "18:00",
		MissedCheckInTime:         "12:00",
		ArrivalReminderInterval:   5,
		AutoCheckoutBufferMinutes: 30,
		BotEnabled:                true,
	}
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }
func boolPtr(v bool) *bool    { return &v }

func TestGetSettings_MapsRow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	svc := settings.NewService(repo, clock.New(0))

	repo.EXPECT().Get(gomock.Any()).Return(storedRow(), nil)

	res, err := svc.Get(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "09:00", res.MorningReportTime)
	assert.Equal(t, 30, res.AutoCheckoutBufferMinutes)
	assert.True(t, res.BotEnabled)
}

func TestUpdateSettings_PushesOffsetToClock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	clk := clock.NewWithNowFn(0, func() time.Time {
		return time.Date(2025, 3, 12, 12, 0, 0, 0, time.UTC)
	})
	svc := settings.NewService(repo, clk)

	repo.EXPECT().Get(gomock.Any()).Return(storedRow(), nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, s *settings.Settings) error {
			assert.Equal(t, 4, s.TimezoneOffset)
			return nil
		},
	)

	res, err := svc.Update(context.Background(), settings.UpdateSettingsRequest{
		TimezoneOffset: intPtr(4),
	})

	assert.NoError(t, err)
	assert.Equal(t, 4, res.TimezoneOffset)
	// All local-time computations see the new offset immediately.
	assert.Equal(t, 4, clk.Offset())
	assert.Equal(t, "16:00", clk.TimeOfDay())
}

func TestUpdateSettings_RejectsBadOffset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	svc := settings.NewService(repo, clock.New(0))

	repo.EXPECT().Get(gomock.Any()).Return(storedRow(), nil)

	_, err := svc.Update(context.Background(), settings.UpdateSettingsRequest{
		TimezoneOffset: intPtr(15),
	})
	assert.ErrorIs(t, err, settingserrors.ErrInvalidOffset)
}

func TestUpdateSettings_RejectsBadTimeFormat(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	svc := settings.NewService(repo, clock.New(0))

	repo.EXPECT().Get(gomock.Any()).Return(storedRow(), nil)

	_, err := svc.Update(context.Background(), settings.UpdateSettingsRequest{
		MorningReportTime: strPtr("9am"),
	})
	assert.ErrorIs(t, err, settingserrors.ErrInvalidTimeFormat)
}

func TestUpdateSettings_RejectsZeroInterval(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	svc := settings.NewService(repo, clock.New(0))

	repo.EXPECT().Get(gomock.Any()).Return(storedRow(), nil)

	_, err := svc.Update(context.Background(), settings.UpdateSettingsRequest{
		ArrivalReminderInterval: intPtr(0),
	})
	assert.ErrorIs(t, err, settingserrors.ErrInvalidInterval)
}

func TestUpdateSettings_DisableBot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	svc := settings.NewService(repo, clock.New(0))

	repo.EXPECT().Get(gomock.Any()).Return(storedRow(), nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	res, err := svc.Update(context.Background(), settings.UpdateSettingsRequest{
		BotEnabled: boolPtr(false),
	})

	assert.NoError(t, err)
	assert.False(t, res.BotEnabled)
}
