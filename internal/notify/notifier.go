package notify

import (
	"context"
	"errors"
	"fmt"
)

// Sink delivers one composed update to the notification topic.
type Sink interface {
	Publish(ctx context.Context, subject, body string) error
}

// PublishError captures a delivery failure to the notification topic.
type PublishError struct {
	Topic string
	Err   error
}

func (e *PublishError) Error() string {
	return fmt.Sprintf("publishing to %s: %v", e.Topic, e.Err)
}

func (e *PublishError) Unwrap() error { return e.Err }

// AsPublishError attempts to unwrap an error into a PublishError.
func AsPublishError(err error) (*PublishError, bool) {
	var pubErr *PublishError
	if errors.As(err, &pubErr) {
		return pubErr, true
	}
	return nil, false
}
