package overdue_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/library-service/cmd/api/loan"
	"github.com/library-service/cmd/api/overdue"
	overduemock "github.com/library-service/cmd/api/overdue/mocks"
	"github.com/matryer/is"
	gomock "go.uber.org/mock/gomock"
)

var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestRun(t *testing.T) {

	t.Run("notifies every overdue customer in a single call", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockLoans := overduemock.NewMockLateLoanLister(ctrl)
		mockNtfy := overduemock.NewMockNotifier(ctrl)
		scanner := overdue.NewScanner(mockLoans, mockNtfy, logger)

		lateLoans := []loan.Loan{
			{ID: uuid.New(), CustomerEmail: "fulano@email.com"},
			{ID: uuid.New(), CustomerEmail: "ciclano@email.com"},
		}
		mockLoans.EXPECT().GetAllLateLoans(gomock.Any()).Return(lateLoans, nil)
		mockNtfy.EXPECT().Notify(gomock.Any(), []string{"fulano@email.com", "ciclano@email.com"}, overdue.Message).Return(nil).Times(1)

		err := scanner.Run(context.Background())
		is.NoErr(err)
	})

	t.Run("still calls the notifier when nothing is overdue", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockLoans := overduemock.NewMockLateLoanLister(ctrl)
		mockNtfy := overduemock.NewMockNotifier(ctrl)
		scanner := overdue.NewScanner(mockLoans, mockNtfy, logger)

		mockLoans.EXPECT().GetAllLateLoans(gomock.Any()).Return([]loan.Loan{}, nil)
		mockNtfy.EXPECT().Notify(gomock.Any(), []string{}, overdue.Message).Return(nil)

		err := scanner.Run(context.Background())
		is.NoErr(err)
	})

	t.Run("expected error when overdue loans cannot be listed", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockLoans := overduemock.NewMockLateLoanLister(ctrl)
		mockNtfy := overduemock.NewMockNotifier(ctrl)
		scanner := overdue.NewScanner(mockLoans, mockNtfy, logger)

		dbErr := errors.New("fake error from database")
		mockLoans.EXPECT().GetAllLateLoans(gomock.Any()).Return(nil, dbErr)

		err := scanner.Run(context.Background())
		is.True(errors.Is(err, dbErr))
	})

	t.Run("expected error from the notifier", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockLoans := overduemock.NewMockLateLoanLister(ctrl)
		mockNtfy := overduemock.NewMockNotifier(ctrl)
		scanner := overdue.NewScanner(mockLoans, mockNtfy, logger)

		ntfyErr := errors.New("fake error from ntfy")
		mockLoans.EXPECT().GetAllLateLoans(gomock.Any()).Return([]loan.Loan{{CustomerEmail: "a@b.com"}}, nil)
		mockNtfy.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any()).Return(ntfyErr)

		err := scanner.Run(context.Background())
		is.True(errors.Is(err, ntfyErr))
	})
}

func TestSchedule(t *testing.T) {
	t.Run("keeps running after a failed scan until the context is cancelled", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockLoans := overduemock.NewMockLateLoanLister(ctrl)
		mockNtfy := overduemock.NewMockNotifier(ctrl)
		scanner := overdue.NewScanner(mockLoans, mockNtfy, logger)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		gomock.InOrder(
			mockLoans.EXPECT().GetAllLateLoans(gomock.Any()).Return(nil, errors.New("fake error from database")),
			mockLoans.EXPECT().GetAllLateLoans(gomock.Any()).Return([]loan.Loan{}, nil).AnyTimes(),
		)
		mockNtfy.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ []string, _ string) error {
			cancel()
			return nil
		}).AnyTimes()

		done := make(chan struct{})
		go func() {
			scanner.Schedule(ctx, 5*time.Millisecond)
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(2 * time.Second):
			is.Fail() //schedule loop did not stop
		}
	})

	t.Run("scans once at start without waiting for the first tick", func(t *testing.T) {
		is := is.New(t)
		ctrl := gomock.NewController(t)
		mockLoans := overduemock.NewMockLateLoanLister(ctrl)
		mockNtfy := overduemock.NewMockNotifier(ctrl)
		scanner := overdue.NewScanner(mockLoans, mockNtfy, logger)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		mockLoans.EXPECT().GetAllLateLoans(gomock.Any()).Return([]loan.Loan{{CustomerEmail: "ana@mail.com"}}, nil)
		mockNtfy.EXPECT().Notify(gomock.Any(), []string{"ana@mail.com"}, overdue.Message).DoAndReturn(func(_ context.Context, _ []string, _ string) error {
			cancel()
			return nil
		})

		done := make(chan struct{})
		go func() {
			scanner.Schedule(ctx, time.Hour)
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(2 * time.Second):
			is.Fail() //first scan did not run at start
		}
	})
}
