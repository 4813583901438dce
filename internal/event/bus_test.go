package event

import (
	"sync"
	"testing"
)

func TestBusPublishSubscribe(t *testing.T) {
	bus := NewBus()

	var got []Event
	bus.Subscribe(TopicLineMarked, func(ev Event) {
		got = append(got, ev)
	})

	bus.Publish(New(TopicLineMarked, MarkPayload{Line: 4, Glyph: "*"}, "test"))
	bus.Publish(New(TopicLookupReported, LookupPayload{Query: "x"}, "test"))

	if len(got) != 1 {
		t.Fatalf("received %d events, want 1", len(got))
	}
	payload, ok := got[0].Payload.(MarkPayload)
	if !ok {
		t.Fatalf("payload type = %T, want MarkPayload", got[0].Payload)
	}
	if payload.Line != 4 || payload.Glyph != "*" {
		t.Errorf("payload = %+v, want line 4 glyph *", payload)
	}
	if got[0].Metadata.ID == "" {
		t.Error("event ID is empty")
	}
	if got[0].Metadata.Source != "test" {
		t.Errorf("Source = %q, want %q", got[0].Metadata.Source, "test")
	}
}

func TestBusUnsubscribe(t *testing.T) {
	bus := NewBus()

	calls := 0
	cancel := bus.Subscribe(TopicSessionEnded, func(Event) { calls++ })

	bus.Publish(New(TopicSessionEnded, SessionPayload{}, "test"))
	cancel()
	bus.Publish(New(TopicSessionEnded, SessionPayload{}, "test"))

	if calls != 1 {
		t.Errorf("handler called %d times, want 1", calls)
	}
	if n := bus.SubscriberCount(TopicSessionEnded); n != 0 {
		t.Errorf("SubscriberCount = %d, want 0", n)
	}
}

func TestBusPanicIsolation(t *testing.T) {
	bus := NewBus()

	bus.Subscribe(TopicLineMarked, func(Event) { panic("boom") })

	survived := false
	bus.Subscribe(TopicLineMarked, func(Event) { survived = true })

	bus.Publish(New(TopicLineMarked, MarkPayload{}, "test"))

	if !survived {
		t.Error("second handler did not run after first panicked")
	}
}

func TestBusConcurrentPublish(t *testing.T) {
	bus := NewBus()

	var mu sync.Mutex
	count := 0
	bus.Subscribe(TopicLookupReported, func(Event) {
		mu.Lock()
		count++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			bus.Publish(New(TopicLookupReported, LookupPayload{}, "test"))
		}()
	}
	wg.Wait()

	if count != 16 {
		t.Errorf("count = %d, want 16", count)
	}
}
