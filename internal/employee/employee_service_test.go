package employee_test

import (
	"context"
	"testing"
	"time"

	"github.com/david-vardanov/teambie/internal/employee"
	employeeerrors "github.com/david-vardanov/teambie/internal/employee/errors"
	"github.com/david-vardanov/teambie/internal/employee/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type employeeDeps struct {
	sqlMock sqlmock.Sqlmock
	service employee.Service
	repo    *mock.MockRepository
}

func setupEmployeeTest(t *testing.T) employeeDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mock.NewMockRepository(ctrl)
	repo.EXPECT().WithTx(gomock.Any()).Return(repo).AnyTimes()

	return employeeDeps{
		sqlMock: sqlMock,
		service: employee.NewService(db, repo),
		repo:    repo,
	}
}

func activeEmployee() *employee.Employee {
	return &employee.Employee{
		ID:                  uuid.New(),
		FullName:            "Jane Doe",
		Email:               "jane@example.com",
		ArrivalWindowStart:  "09:00",
		ArrivalWindowEnd:    "10:00",
		WorkHoursPerDay:     8,
		WorkHoursOnFriday:   6,
		VacationDaysPerYear: 20,
		HolidayDaysPerYear:  5,
		StartDate:           time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreateEmployee_AppliesDefaults(t *testing.T) {
	deps := setupEmployeeTest(t)

	deps.sqlMock.ExpectBegin()
	deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e *employee.Employee) error {
			assert.Equal(t, "09:00", e.ArrivalWindowStart)
			assert.Equal(t, "10:00", e.ArrivalWindowEnd)
			assert.Equal(t, 8, e.WorkHoursPerDay)
			assert.Equal(t, 20, e.VacationDaysPerYear)
			assert.Equal(t, "jane@example.com", e.Email)
			return nil
		},
	)
	deps.sqlMock.ExpectCommit()

	res, err := deps.service.Create(context.Background(), employee.CreateEmployeeRequest{
		FullName:  "Jane Doe",
		Email:     "  Jane@Example.com ",
		StartDate: "2022-06-01",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Jane Doe", res.FullName)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestCreateEmployee_InvalidWindow(t *testing.T) {
	deps := setupEmployeeTest(t)

	_, err := deps.service.Create(context.Background(), employee.CreateEmployeeRequest{
		FullName:           "Jane Doe",
		Email:              "jane@example.com",
		ArrivalWindowStart: "10:00",
		ArrivalWindowEnd:   "09:00",
		StartDate:          "2022-06-01",
	})
	assert.ErrorIs(t, err, employeeerrors.ErrInvalidTimeWindow)
}

func TestCreateEmployee_InvalidStartDate(t *testing.T) {
	deps := setupEmployeeTest(t)

	_, err := deps.service.Create(context.Background(), employee.CreateEmployeeRequest{
		FullName:  "Jane Doe",
		Email:     "jane@example.com",
		StartDate: "June 1st",
	})
	assert.ErrorIs(t, err, employeeerrors.ErrInvalidStartDate)
}

func TestUpdateEmployee_PartialFields(t *testing.T) {
	deps := setupEmployeeTest(t)
	existing := activeEmployee()

	deps.sqlMock.ExpectBegin()
	deps.repo.EXPECT().FindByID(gomock.Any(), existing.ID.String()).Return(existing, nil)
	deps.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e *employee.Employee) error {
			assert.Equal(t, "08:30", e.ArrivalWindowStart)
			// Untouched fields keep their stored values.
			assert.Equal(t, "10:00", e.ArrivalWindowEnd)
			assert.Equal(t, "jane@example.com", e.Email)
			return nil
		},
	)
	deps.sqlMock.ExpectCommit()

	newStart := "08:30"
	_, err := deps.service.Update(context.Background(), existing.ID.String(), employee.UpdateEmployeeRequest{
		ArrivalWindowStart: &newStart,
	})
	assert.NoError(t, err)
}

func TestUpdateEmployee_WindowCrossCheck(t *testing.T) {
	deps := setupEmployeeTest(t)
	existing := activeEmployee()

	deps.sqlMock.ExpectBegin()
	deps.repo.EXPECT().FindByID(gomock.Any(), existing.ID.String()).Return(existing, nil)
	deps.sqlMock.ExpectRollback()

	// New start alone collides with the stored end.
	newStart := "11:00"
	_, err := deps.service.Update(context.Background(), existing.ID.String(), employee.UpdateEmployeeRequest{
		ArrivalWindowStart: &newStart,
	})
	assert.ErrorIs(t, err, employeeerrors.ErrInvalidTimeWindow)
}

func TestArchiveEmployee_SetsTimestamp(t *testing.T) {
	deps := setupEmployeeTest(t)
	existing := activeEmployee()

	deps.sqlMock.ExpectBegin()
	deps.repo.EXPECT().FindByID(gomock.Any(), existing.ID.String()).Return(existing, nil)
	deps.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e *employee.Employee) error {
			assert.True(t, e.Archived)
			assert.NotNil(t, e.ArchivedAt)
			return nil
		},
	)
	deps.sqlMock.ExpectCommit()

	err := deps.service.Archive(context.Background(), existing.ID.String())
	assert.NoError(t, err)
}

func TestArchiveEmployee_AlreadyArchived(t *testing.T) {
	deps := setupEmployeeTest(t)
	existing := activeEmployee()
	existing.Archived = true

	deps.sqlMock.ExpectBegin()
	deps.repo.EXPECT().FindByID(gomock.Any(), existing.ID.String()).Return(existing, nil)
	deps.sqlMock.ExpectRollback()

	err := deps.service.Archive(context.Background(), existing.ID.String())
	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeArchived)
}

func TestLinkChat_Success(t *testing.T) {
	deps := setupEmployeeTest(t)
	existing := activeEmployee()

	deps.sqlMock.ExpectBegin()
	deps.repo.EXPECT().FindByEmail(gomock.Any(), "jane@example.com").Return(existing, nil)
	deps.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e *employee.Employee) error {
			assert.NotNil(t, e.ChatID)
			assert.Equal(t, int64(42), *e.ChatID)
			return nil
		},
	)
	deps.sqlMock.ExpectCommit()

	res, err := deps.service.LinkChat(context.Background(), "jane@example.com", 42)
	assert.NoError(t, err)
	assert.Equal(t, existing.ID.String(), res.ID)
}

func TestLinkChat_UnknownEmail(t *testing.T) {
	deps := setupEmployeeTest(t)

	deps.sqlMock.ExpectBegin()
	deps.repo.EXPECT().FindByEmail(gomock.Any(), "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)
	deps.sqlMock.ExpectRollback()

	_, err := deps.service.LinkChat(context.Background(), "ghost@example.com", 42)
	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
}

func TestGetEmployeeByID_InvalidID(t *testing.T) {
	deps := setupEmployeeTest(t)

	_, err := deps.service.GetByID(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, employeeerrors.ErrInvalidEmployeeID)
}
