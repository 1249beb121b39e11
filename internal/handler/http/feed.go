package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/hiroakiwakabayashi/kao-kintai-go/internal/pkg/sse"
)

type FeedHandler interface {
	Stream(w http.ResponseWriter, r *http.Request)
}

type feedHandlerImpl struct {
	hub *sse.Hub
}

func NewFeedHandler(hub *sse.Hub) FeedHandler {
	return &feedHandlerImpl{hub: hub}
}

// Stream pushes accepted punches to connected kiosk screens. An optional
// employee_code query narrows the feed to one employee; the default is the
// firehose every wall-mounted display wants.
func (h *feedHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	topic := r.URL.Query().Get("employee_code")
	if topic == "" {
		topic = sse.TopicAll
	}

	// Set SSE headers
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	events, cleanup := h.hub.Subscribe(topic)
	defer cleanup()

	fmt.Fprintf(w, "event: connected\ndata: {\"status\":\"connected\"}\n\n")
	flusher.Flush()

	keepalive := time.NewTicker(30 * time.Second)
	defer keepalive.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			data, err := json.Marshal(event.Data)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Event, data)
			flusher.Flush()

		case <-keepalive.C:
			fmt.Fprintf(w, "event: ping\ndata: {\"timestamp\":%d}\n\n", time.Now().Unix())
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}
