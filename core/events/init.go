package events

import (
	"log"

	"github.com/getsentry/raven-go"
)

type Handler func(Event) error

// Input channel for incoming events.
var In chan Event

// On "event" channel. Register event handlers using channels.
var On chan EventHandler

// Map of handlers that will react to events.
var Handlers map[string][]Handler

type EventHandler struct {
	On      string
	Handler Handler
}

type Event struct {
	Name   string
	Sign   *UserSign
	Params map[string]interface{}
}

// UserSign relates an event to the user that caused it.
type UserSign struct {
	Reason string
	UserID string
}

func execHandlers(list []Handler, event Event) {
	for h := range list {
		if err := list[h](event); err != nil {
			log.Printf("event handler for %s failed: %v", event.Name, err)
			raven.CaptureError(err, map[string]string{"event": event.Name})
		}
	}
}

func sink(in chan Event, on chan EventHandler) {
	for {
		select {
		case event := <-in: // For incoming events spawn a goroutine running handlers.
			if ls, exists := Handlers[event.Name]; exists {
				go execHandlers(ls, event)
			}
		case h := <-on: // Register new handlers.
			if _, exists := Handlers[h.On]; !exists {
				Handlers[h.On] = []Handler{}
			}

			Handlers[h.On] = append(Handlers[h.On], h.Handler)
		}
	}
}

// init channel for input events, consumers & map of handlers.
func init() {
	In = make(chan Event, 10)
	On = make(chan EventHandler)
	Handlers = make(map[string][]Handler)

	go sink(In, On)
}
