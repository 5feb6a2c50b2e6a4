package statusservice

import (
	"context"
	"fmt"
	"hash/fnv"
	"sync"

	"github.com/airenas/go-app/pkg/goapp"
	"github.com/airenas/revy/internal/pkg/messages"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var droppedEvents = promauto.NewCounter(prometheus.CounterOpts{
	Name: "revy_status_events_dropped_total",
	Help: "The total number of status events dropped on a full queue",
})

// Dispatcher queues status change events for the websocket workers.
// Events of one file always go to the same worker queue, so they are pushed in order.
type Dispatcher struct {
	queues []chan *messages.StatusMessage
}

// NewDispatcher creates dispatcher with a queue of provided size for every worker
func NewDispatcher(size, workers int) (*Dispatcher, error) {
	if size < 1 {
		return nil, fmt.Errorf("wrong queue size %d", size)
	}
	if workers < 1 {
		return nil, fmt.Errorf("wrong worker count %d", workers)
	}
	res := &Dispatcher{}
	for i := 0; i < workers; i++ {
		res.queues = append(res.queues, make(chan *messages.StatusMessage, size))
	}
	return res, nil
}

// StatusChanged queues the event, never blocks
func (d *Dispatcher) StatusChanged(msg *messages.StatusMessage) {
	select {
	case d.queue(msg.ID) <- msg:
	default:
		droppedEvents.Inc()
		goapp.Log.Warn().Str("ID", msg.ID).Msg("status queue full, event dropped")
	}
}

func (d *Dispatcher) queue(id string) chan *messages.StatusMessage {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	return d.queues[h.Sum32()%uint32(len(d.queues))]
}

// HandlerData keeps data required for handler
type HandlerData struct {
	Dispatcher *Dispatcher
	Files      FileGetter
	WSHandler  WSConnHandler
}

// StartStatusHandler starts the workers pushing status events to websockets
// returns channel for tracking if all workers are finished
func StartStatusHandler(ctx context.Context, data *HandlerData) (chan struct{}, error) {
	if err := validateHandler(data); err != nil {
		return nil, err
	}
	goapp.Log.Info().Int("workers", len(data.Dispatcher.queues)).Msg("Starting listen for status events")

	var wg sync.WaitGroup
	for _, q := range data.Dispatcher.queues {
		wg.Add(1)
		go func(q <-chan *messages.StatusMessage) {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case m := <-q:
					if err := handleStatus(ctx, m, data); err != nil {
						goapp.Log.Error().Err(err).Str("ID", m.ID).Send()
					}
				}
			}
		}(q)
	}
	res := make(chan struct{}, 1)
	go func() {
		wg.Wait()
		goapp.Log.Info().Msg("Status workers finished")
		res <- struct{}{}
	}()
	return res, nil
}

func handleStatus(_ context.Context, m *messages.StatusMessage, data *HandlerData) error {
	goapp.Log.Info().Str("ID", m.ID).Str("to", m.To.String()).Msg("handling status change event")

	conns, found := data.WSHandler.GetConnections(m.ID)
	if !found {
		goapp.Log.Debug().Str("ID", m.ID).Msg("no connections found")
		return nil
	}
	f := data.Files.GetFileByID(m.ID)
	if f == nil {
		return fmt.Errorf("no file %s", m.ID)
	}
	res := &result{ID: m.ID, Status: f.Status.String(), Label: f.Status.Label()}
	var errs int
	for _, c := range conns {
		if err := sendMsg(c, res); err != nil {
			goapp.Log.Error().Err(err).Send()
			errs++
		}
	}
	if errs > 0 {
		return fmt.Errorf("failed to send to %d of %d connections", errs, len(conns))
	}
	return nil
}

func sendMsg(c WsConn, res *result) error {
	goapp.Log.Debug().Str("ID", res.ID).Msg("Sending result to websocket")
	err := c.WriteJSON(res)
	if err != nil {
		return fmt.Errorf("cannot write to websocket: %w", err)
	}
	return nil
}

func validateHandler(data *HandlerData) error {
	if data.Dispatcher == nil {
		return fmt.Errorf("no dispatcher")
	}
	if data.Files == nil {
		return fmt.Errorf("no files")
	}
	if data.WSHandler == nil {
		return fmt.Errorf("no WSHandler")
	}
	return nil
}
