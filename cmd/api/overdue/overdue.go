package overdue

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/library-service/cmd/api/loan"
)

//go:generate mockgen -source=overdue.go -destination=mocks/overdue.go -package=mocks

const Message = "Attention! You have an overdue loan. Please return the book as soon as possible."

type LateLoanLister interface {
	GetAllLateLoans(ctx context.Context) ([]loan.Loan, error)
}

// Notifier delivers one message to many recipients. An empty recipient list must be a no-op.
type Notifier interface {
	Notify(ctx context.Context, recipients []string, message string) error
}

type Scanner struct {
	loans    LateLoanLister
	notifier Notifier
	logger   *slog.Logger
}

func NewScanner(loans LateLoanLister, notifier Notifier, logger *slog.Logger) *Scanner {
	return &Scanner{
		loans:    loans,
		notifier: notifier,
		logger:   logger,
	}
}

/* Finds every overdue loan and sends a single notification to all of their customers. */
func (s *Scanner) Run(ctx context.Context) error {
	lateLoans, err := s.loans.GetAllLateLoans(ctx)
	if err != nil {
		return fmt.Errorf("scanning overdue loans: %w", err)
	}

	recipients := make([]string, 0, len(lateLoans))
	for _, l := range lateLoans {
		recipients = append(recipients, l.CustomerEmail)
	}
	s.logger.InfoContext(ctx, "overdue scan", "overdue_loans", len(lateLoans))

	err = s.notifier.Notify(ctx, recipients, Message)
	if err != nil {
		return fmt.Errorf("notifying overdue loans: %w", err)
	}
	return nil
}

/*
Runs the scan at once and then every interval until ctx is done. Runs never overlap;
a failed run is logged and the loop waits for the next tick.
*/
func (s *Scanner) Schedule(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.logger.InfoContext(ctx, "overdue scan scheduled", "interval", interval.String())
	s.runLogged(ctx)
	for {
		select {
		case <-ctx.Done():
			s.logger.InfoContext(ctx, "overdue scan stopped")
			return
		case <-ticker.C:
			s.runLogged(ctx)
		}
	}
}

func (s *Scanner) runLogged(ctx context.Context) {
	err := s.Run(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "overdue scan failed", "error", err)
	}
}
