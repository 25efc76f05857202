package mailer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/account-core/internal/domain/entity"
)

var ErrUnknownEvent = errors.New("unknown event type")

// Worker turns account events into emails.
type Worker struct {
	Sender      Sender
	AppName     string
	Logger      *logrus.Logger
	SendTimeout time.Duration
}

// Handle processes one message body. requeue reports whether a failed
// message is worth retrying; malformed or unknown events are not.
func (w *Worker) Handle(ctx context.Context, body []byte) (requeue bool, err error) {
	var ev entity.AccountEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return false, err
	}
	jobs, err := JobsFromEvent(ev, w.AppName)
	if err != nil {
		return false, err
	}

	timeout := w.SendTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	var errs []error
	for _, job := range jobs {
		if err := w.send(ctx, timeout, job); err != nil {
			errs = append(errs, fmt.Errorf("send to %s: %w", job.To, err))
		}
	}
	if len(errs) > 0 {
		return true, errors.Join(errs...)
	}
	if w.Logger != nil {
		w.Logger.WithFields(logrus.Fields{"event_id": ev.ID, "event": ev.Type, "account_id": ev.AccountID, "recipients": len(jobs)}).Info("notification sent")
	}
	return false, nil
}

func (w *Worker) send(ctx context.Context, timeout time.Duration, job EmailJob) error {
	c, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return w.Sender.Send(c, job.To, job.Subject, job.Text, job.HTML)
}
