//go:build unit

package commands_test

import (
	"context"
	"testing"

	"dealership-api/internal/domain/car"
	"dealership-api/internal/infra"
	"dealership-api/internal/pkg/errs"
	"dealership-api/internal/usecase/commands"
	commandsmock "dealership-api/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testDriveMocks struct {
	repo     *commandsmock.MockCarRepository
	renderer *commandsmock.MockTemplateRenderer
	mailer   *commandsmock.MockMailer
}

func newTestDriveCommands(t *testing.T) (commands.TestDriveCommands, testDriveMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := testDriveMocks{
		repo:     commandsmock.NewMockCarRepository(ctrl),
		renderer: commandsmock.NewMockTemplateRenderer(ctrl),
		mailer:   commandsmock.NewMockMailer(ctrl),
	}
	uc := commands.NewTestDriveCommands(m.repo, m.renderer, m.mailer, discardLogger())
	return uc, m
}

func sampleRequest() commands.TestDriveRequest {
	return commands.TestDriveRequest{
		ClientEmail:       "jane.doe@example.com",
		ClientName:        "Jane Doe",
		CarID:             4,
		TestDriveDateTime: "2026-09-15 14:00",
		DealerAddress:     "12 Harbour Street",
		DealerPhone:       "+31 20 123 4567",
	}
}

func TestTestDriveCommands_SendConfirmation(t *testing.T) {
	t.Run("renders confirmation template and sends exactly once", func(t *testing.T) {
		uc, m := newTestDriveCommands(t)
		req := sampleRequest()
		found := &car.Car{ID: req.CarID, Brand: "BMW", Model: "X5"}

		m.repo.EXPECT().FindByID(gomock.Any(), req.CarID).Return(found, nil).Times(1)
		m.renderer.EXPECT().Render(commands.TemplateConfirmation, gomock.Any()).
			DoAndReturn(func(_ string, data any) (string, error) {
				ctx, ok := data.(map[string]any)
				require.True(t, ok)
				assert.Equal(t, req.ClientName, ctx["ClientName"])
				assert.Equal(t, found, ctx["Car"])
				assert.Equal(t, req.TestDriveDateTime, ctx["TestDriveDateTime"])
				return "<html>confirmation</html>", nil
			}).Times(1)
		m.mailer.EXPECT().Send(gomock.Any(), req.ClientEmail, "Test Drive Confirmation", "<html>confirmation</html>").
			Return(nil).Times(1)

		assert.NoError(t, uc.SendConfirmation(context.Background(), req))
	})

	t.Run("unknown car skips render and transport", func(t *testing.T) {
		uc, m := newTestDriveCommands(t)
		req := sampleRequest()

		m.repo.EXPECT().FindByID(gomock.Any(), req.CarID).
			Return(nil, infra.WrapRepoErr("car not found", errs.New("no rows"), infra.KindNotFound)).Times(1)

		err := uc.SendConfirmation(context.Background(), req)
		assert.ErrorIs(t, err, errs.ErrCarNotFound)
		assert.NotErrorIs(t, err, errs.ErrDispatchFailed)
	})

	t.Run("render failure becomes dispatch failure with cause preserved", func(t *testing.T) {
		uc, m := newTestDriveCommands(t)
		req := sampleRequest()

		m.repo.EXPECT().FindByID(gomock.Any(), req.CarID).Return(&car.Car{ID: req.CarID}, nil).Times(1)
		m.renderer.EXPECT().Render(commands.TemplateConfirmation, gomock.Any()).
			Return("", errs.New("template not found: test-drive-confirmation")).Times(1)

		err := uc.SendConfirmation(context.Background(), req)
		assert.ErrorIs(t, err, errs.ErrDispatchFailed)
		assert.ErrorContains(t, err, "template not found")
	})

	t.Run("transport failure becomes dispatch failure", func(t *testing.T) {
		uc, m := newTestDriveCommands(t)
		req := sampleRequest()

		m.repo.EXPECT().FindByID(gomock.Any(), req.CarID).Return(&car.Car{ID: req.CarID}, nil).Times(1)
		m.renderer.EXPECT().Render(commands.TemplateConfirmation, gomock.Any()).Return("<html></html>", nil).Times(1)
		m.mailer.EXPECT().Send(gomock.Any(), req.ClientEmail, "Test Drive Confirmation", gomock.Any()).
			Return(errs.New("smtp: connection refused")).Times(1)

		err := uc.SendConfirmation(context.Background(), req)
		assert.ErrorIs(t, err, errs.ErrDispatchFailed)
		assert.ErrorContains(t, err, "connection refused")
	})
}

func TestTestDriveCommands_SendReminder(t *testing.T) {
	t.Run("uses the reminder template and subject", func(t *testing.T) {
		uc, m := newTestDriveCommands(t)
		req := sampleRequest()

		m.repo.EXPECT().FindByID(gomock.Any(), req.CarID).Return(&car.Car{ID: req.CarID}, nil).Times(1)
		m.renderer.EXPECT().Render(commands.TemplateReminder, gomock.Any()).Return("<html>reminder</html>", nil).Times(1)
		m.mailer.EXPECT().Send(gomock.Any(), req.ClientEmail, "Test Drive Reminder", "<html>reminder</html>").
			Return(nil).Times(1)

		assert.NoError(t, uc.SendReminder(context.Background(), req))
	})

	t.Run("unknown car skips render and transport", func(t *testing.T) {
		uc, m := newTestDriveCommands(t)
		req := sampleRequest()

		m.repo.EXPECT().FindByID(gomock.Any(), req.CarID).
			Return(nil, infra.WrapRepoErr("car not found", errs.New("no rows"), infra.KindNotFound)).Times(1)

		assert.ErrorIs(t, uc.SendReminder(context.Background(), req), errs.ErrCarNotFound)
	})
}
