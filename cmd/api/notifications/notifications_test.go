package notifications

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/matryer/is"
)

type received struct {
	title string
	email string
	body  string
}

/* Starts a fake ntfy topic that records every published message. */
func newTopic(t *testing.T, status int, delay time.Duration) (*httptest.Server, *[]received) {
	var mu sync.Mutex
	messages := []received{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(delay)
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		messages = append(messages, received{title: r.Header.Get("Title"), email: r.Header.Get("Email"), body: string(body)})
		mu.Unlock()
		w.WriteHeader(status)
	}))
	t.Cleanup(server.Close)
	return server, &messages
}

func TestNotify(t *testing.T) {

	t.Run("delivers the message once per distinct recipient", func(t *testing.T) {
		is := is.New(t)
		server, messages := newTopic(t, http.StatusOK, 0)
		ntfy := NewNtfy(true, time.Second, server.URL, server.Client())

		err := ntfy.Notify(context.Background(), []string{"fulano@email.com", "ciclano@email.com", "fulano@email.com"}, "please return the book")
		is.NoErr(err)

		is.Equal(len(*messages), 2)
		is.Equal((*messages)[0], received{title: Subject, email: "fulano@email.com", body: "please return the book"})
		is.Equal((*messages)[1].email, "ciclano@email.com")
	})

	t.Run("no recipients is a no-op", func(t *testing.T) {
		is := is.New(t)
		server, messages := newTopic(t, http.StatusOK, 0)
		ntfy := NewNtfy(true, time.Second, server.URL, server.Client())

		err := ntfy.Notify(context.Background(), []string{}, "please return the book")
		is.NoErr(err)
		is.Equal(len(*messages), 0)
	})

	t.Run("disabled notifications send nothing", func(t *testing.T) {
		is := is.New(t)
		server, messages := newTopic(t, http.StatusOK, 0)
		ntfy := NewNtfy(false, time.Second, server.URL, server.Client())

		err := ntfy.Notify(context.Background(), []string{"fulano@email.com"}, "please return the book")
		is.NoErr(err)
		is.Equal(len(*messages), 0)
	})

	t.Run("expected wrong response error", func(t *testing.T) {
		is := is.New(t)
		server, messages := newTopic(t, http.StatusTooManyRequests, 0)
		ntfy := NewNtfy(true, time.Second, server.URL, server.Client())

		err := ntfy.Notify(context.Background(), []string{"fulano@email.com", "ciclano@email.com"}, "please return the book")
		is.True(errors.Is(err, NewErrNotificationFailed(http.StatusTooManyRequests)))
		is.Equal(len(*messages), 2) //a failed recipient does not stop the others
	})

	t.Run("expected context timeout error", func(t *testing.T) {
		is := is.New(t)
		server, _ := newTopic(t, http.StatusOK, 50*time.Millisecond)
		ntfy := NewNtfy(true, 2*time.Millisecond, server.URL, server.Client())

		err := ntfy.Notify(context.Background(), []string{"fulano@email.com"}, "please return the book")
		is.True(errors.Is(err, context.DeadlineExceeded))
	})
}
