package event

import (
	"testing"

	"github.com/lixenwraith/neon-pong/parameter"
	"github.com/lixenwraith/neon-pong/status"
)

func TestQueue_FIFO(t *testing.T) {
	q := NewQueue()
	for i := 0; i < 5; i++ {
		q.Push(GameEvent{Type: EventScore, Tick: uint64(i)})
	}
	if q.Len() != 5 {
		t.Fatalf("Len = %d", q.Len())
	}

	got := q.Consume()
	if len(got) != 5 {
		t.Fatalf("consumed %d", len(got))
	}
	for i, ev := range got {
		if ev.Tick != uint64(i) {
			t.Errorf("event %d has tick %d", i, ev.Tick)
		}
	}
	if q.Consume() != nil || q.Len() != 0 {
		t.Error("queue not drained")
	}
}

func TestQueue_OverwritesOldest(t *testing.T) {
	q := NewQueue()
	total := parameter.EventQueueSize + 10
	for i := 0; i < total; i++ {
		q.Push(GameEvent{Tick: uint64(i)})
	}

	got := q.Consume()
	if len(got) != parameter.EventQueueSize {
		t.Fatalf("consumed %d, want %d", len(got), parameter.EventQueueSize)
	}
	if got[0].Tick != 10 || got[len(got)-1].Tick != uint64(total-1) {
		t.Errorf("window = [%d..%d]", got[0].Tick, got[len(got)-1].Tick)
	}
}

func TestQueue_CountsDrops(t *testing.T) {
	q := NewQueueSize(4)
	for i := 0; i < 6; i++ {
		q.Push(GameEvent{Tick: uint64(i)})
	}
	if q.Dropped() != 2 {
		t.Errorf("Dropped = %d, want 2", q.Dropped())
	}

	// ring wrapped: oldest sits mid-slice
	got := q.Consume()
	if len(got) != 4 {
		t.Fatalf("consumed %d", len(got))
	}
	for i, ev := range got {
		if ev.Tick != uint64(i+2) {
			t.Errorf("event %d has tick %d", i, ev.Tick)
		}
	}

	// drained queue accepts a full tick without dropping
	for i := 0; i < 4; i++ {
		q.Push(GameEvent{Tick: uint64(10 + i)})
	}
	if q.Dropped() != 2 || q.Len() != 4 {
		t.Errorf("after refill: Dropped = %d, Len = %d", q.Dropped(), q.Len())
	}
	if got := q.Consume(); got[0].Tick != 10 || got[3].Tick != 13 {
		t.Errorf("refill window = [%d..%d]", got[0].Tick, got[3].Tick)
	}
}

func TestQueue_CountDropsInRegistry(t *testing.T) {
	reg := status.NewRegistry()
	q := NewQueueSize(2)
	q.CountDropsIn(reg.Ints.Get(status.KeyDroppedEvents))

	for i := 0; i < 5; i++ {
		q.Push(GameEvent{Type: EventWallBounce})
	}
	if got := reg.Ints.Get(status.KeyDroppedEvents).Load(); got != 3 {
		t.Errorf("registry drops = %d, want 3", got)
	}
	if q.Dropped() != 3 {
		t.Errorf("Dropped = %d, want 3", q.Dropped())
	}

	q.CountDropsIn(nil)
	q.Push(GameEvent{})
	if reg.Ints.Get(status.KeyDroppedEvents).Load() != 4 {
		t.Error("nil counter should keep the current one")
	}
}

type recorder struct {
	types []EventType
	name  string
}

func (r *recorder) EventTypes() []EventType { return r.types }
func (r *recorder) HandleEvent(log *[]string, ev GameEvent) {
	*log = append(*log, r.name+":"+ev.Type.String())
}

func TestRouter_Dispatch(t *testing.T) {
	q := NewQueue()
	r := NewRouter[*[]string](q)

	r.Register(&recorder{name: "a", types: []EventType{EventScore, EventWallBounce}})
	r.Register(&recorder{name: "b", types: []EventType{EventScore}})
	r.Register(HandlerFunc[*[]string]{
		Types: []EventType{EventMatchOver},
		Fn: func(log *[]string, ev GameEvent) {
			*log = append(*log, "fn:"+ev.Type.String())
		},
	})

	q.Push(GameEvent{Type: EventWallBounce})
	q.Push(GameEvent{Type: EventScore})
	q.Push(GameEvent{Type: EventPaddleHit})
	q.Push(GameEvent{Type: EventMatchOver})

	var log []string
	if n := r.DispatchAll(&log); n != 4 {
		t.Errorf("dispatched %d events", n)
	}

	want := []string{"a:WallBounce", "a:Score", "b:Score", "fn:MatchOver"}
	if len(log) != len(want) {
		t.Fatalf("log = %v", log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("log[%d] = %q, want %q", i, log[i], want[i])
		}
	}

	if r.HandlerCount(EventScore) != 2 || r.HandlerCount(EventPaddleHit) != 0 {
		t.Error("handler counts wrong")
	}
}

func TestEventTypeString(t *testing.T) {
	for _, et := range AllTypes() {
		if et.String() == "Unknown" || et.String() == "" {
			t.Errorf("type %d has no name", et)
		}
	}
	if EventType(-1).String() != "Unknown" {
		t.Error("out of range type should be Unknown")
	}
}
