package notifier

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	sendTimeout = 5 * time.Second
	stopTimeout = 5 * time.Second

	queueLen   = 64
	workersNum = 4
)

// Webhook delivers order events to a single configured address.
// Publish never blocks request handling: events go through a bounded
// queue drained by a worker pool.
type Webhook struct {
	client  http.Client
	address string

	events chan Event
	group  *errgroup.Group
}

func NewWebhook(address string) *Webhook {
	instance := &Webhook{
		client: http.Client{
			Timeout: sendTimeout,
		},
		address: address,
		events:  make(chan Event, queueLen),
		group:   &errgroup.Group{},
	}

	for i := 0; i < workersNum; i++ {
		instance.group.Go(instance.deliver)
	}

	return instance
}

func (n *Webhook) Publish(event Event) {
	select {
	case n.events <- event:
	default:
		zap.L().Warn(
			"webhook queue is full, dropping event",
			zap.String("event", string(event.Name)),
			zap.String("order_id", event.OrderID),
		)
	}
}

// Stop closes the queue and waits for in-flight deliveries, giving up
// after stopTimeout.
func (n *Webhook) Stop() {
	close(n.events)

	ready := make(chan struct{})
	go func() {
		defer close(ready)
		_ = n.group.Wait()
	}()

	select {
	case <-time.After(stopTimeout):
		zap.L().Error("timeout while waiting for webhook deliveries while shutting down")
	case <-ready:
		zap.L().Info("webhook notifier stopped")
	}
}

func (n *Webhook) deliver() error {
	for event := range n.events {
		if err := n.send(event); err != nil {
			zap.L().Error(
				"error while sending webhook event",
				zap.Error(err),
				zap.String("event", string(event.Name)),
				zap.String("order_id", event.OrderID),
			)
		}
	}

	return nil
}

func (n *Webhook) send(event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("error while marshalling webhook event: %w", err)
	}

	request, err := http.NewRequest(http.MethodPost, n.address, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("error while building webhook request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := n.client.Do(request)
	if err != nil {
		return fmt.Errorf("error while posting webhook event: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("webhook receiver returned status %d", response.StatusCode)
	}

	return nil
}
