package infrastructure

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/url"
	"strings"

	"github.com/gorilla/websocket"

	"campusAdmin/internal/modules/live/domain"
)

// Subscriber consumes the devserver's live change feed over a websocket
// connection and exposes the decoded events on a channel.
type Subscriber struct {
	conn   *websocket.Conn
	events chan domain.Event
	cancel context.CancelFunc
}

// Subscribe dials the feed endpoint. An empty resource subscribes to every
// topic. The returned subscriber is closed when ctx is cancelled or Close
// is called.
func Subscribe(ctx context.Context, feedURL, resource string) (*Subscriber, error) {
	target, err := url.Parse(feedURL)
	if err != nil {
		return nil, err
	}
	switch target.Scheme {
	case "http":
		target.Scheme = "ws"
	case "https":
		target.Scheme = "wss"
	}
	if resource = strings.TrimSpace(resource); resource != "" {
		query := target.Query()
		query.Set("resource", resource)
		target.RawQuery = query.Encode()
	}

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, target.String(), nil)
	if err != nil {
		return nil, err
	}
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}

	ctx, cancel := context.WithCancel(ctx)
	sub := &Subscriber{
		conn:   conn,
		events: make(chan domain.Event, clientSendBuffer),
		cancel: cancel,
	}

	go func() {
		<-ctx.Done()
		_ = conn.Close()
	}()
	go sub.readLoop()

	return sub, nil
}

// Events yields decoded feed events. The channel is closed when the
// connection drops or the subscriber is closed.
func (s *Subscriber) Events() <-chan domain.Event {
	return s.events
}

func (s *Subscriber) Close() error {
	s.cancel()
	return nil
}

func (s *Subscriber) readLoop() {
	defer close(s.events)

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			return
		}

		var event domain.Event
		if err := json.Unmarshal(data, &event); err != nil {
			slog.Warn("live feed decode error", slog.Any("error", err))
			continue
		}
		s.events <- event
	}
}
