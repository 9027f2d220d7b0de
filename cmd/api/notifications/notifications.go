package notifications

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const Subject = "Book loan overdue"

// Ntfy publishes messages on a ntfy topic and asks ntfy to forward each one by e-mail.
type Ntfy struct {
	baseURL string
	enabled bool
	timeout time.Duration
	client  *http.Client
}

func NewNtfy(enableNotifications bool, notificationsTimeout time.Duration, notificationsBaseURL string, client *http.Client) *Ntfy {
	return &Ntfy{
		baseURL: notificationsBaseURL,
		enabled: enableNotifications,
		timeout: notificationsTimeout,
		client:  client,
	}
}

/*
Delivers the message once to every distinct recipient. Nothing is sent when notifications
are disabled or there are no recipients. Delivery goes on after a failed recipient and
all failures are returned together.
*/
func (ntf *Ntfy) Notify(ctx context.Context, recipients []string, message string) error {
	if !ntf.enabled || len(recipients) == 0 {
		return nil
	}

	var errs []error
	seen := make(map[string]bool, len(recipients))
	for _, recipient := range recipients {
		if recipient == "" || seen[recipient] {
			continue
		}
		seen[recipient] = true

		err := ntf.send(ctx, recipient, message)
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (ntf *Ntfy) send(ctx context.Context, recipient, message string) error {
	ctx, cancel := context.WithTimeout(ctx, ntf.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ntf.baseURL, strings.NewReader(message))
	if err != nil {
		return fmt.Errorf("error delivering message to %s on topic (%s): %w", recipient, ntf.baseURL, err)
	}
	req.Header.Set("Title", Subject)
	req.Header.Set("Email", recipient)
	req.Header.Set("Tags", "books")

	resp, err := ntf.client.Do(req)
	if err != nil {
		return fmt.Errorf("error delivering message to %s on topic (%s): %w", recipient, ntf.baseURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("error delivering message to %s: %w", recipient, NewErrNotificationFailed(resp.StatusCode))
	}
	return nil
}

type ErrNotificationFailed struct {
	statusCode int
}

func (e ErrNotificationFailed) Error() string {
	return fmt.Sprintf("ntfy wrong response - want: 200 OK, got: %d", e.statusCode)
}

func NewErrNotificationFailed(statusCode int) ErrNotificationFailed {
	return ErrNotificationFailed{statusCode: statusCode}
}
