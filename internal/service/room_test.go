package service

import (
	"testing"

	"github.com/jonboulle/clockwork"

	"github.com/rlarin/imposter-game/internal/metrics"
	"github.com/rlarin/imposter-game/internal/words"
)

func newTestService(t *testing.T) *RoomService {
	t.Helper()

	svc := NewRoomService(
		words.NewStaticProvider(),
		metrics.NewRecorder(""),
		clockwork.NewFakeClock(),
		0,
	)

	t.Cleanup(svc.Close)

	return svc
}

func TestRoomService_CreateRoomGeneratesUniqueCodes(t *testing.T) {
	svc := newTestService(t)

	first, err := svc.CreateRoom()
	if err != nil {
		t.Fatalf("create room: %v", err)
	}

	second, err := svc.CreateRoom()
	if err != nil {
		t.Fatalf("create room: %v", err)
	}

	if first == second {
		t.Fatalf("room codes must be unique, got %s twice", first)
	}

	if _, ok := svc.FindRoom(first); !ok {
		t.Fatalf("created room %s not findable", first)
	}
}

func TestRoomService_FindOrCreateRoomCreatesUnknownCode(t *testing.T) {
	svc := newTestService(t)

	actor, err := svc.FindOrCreateRoom("WXYZ23")
	if err != nil {
		t.Fatalf("find or create: %v", err)
	}

	if actor == nil {
		t.Fatalf("expected an actor for a fresh code")
	}

	// A shared code must land everyone in the same room
	again, err := svc.FindOrCreateRoom("wxyz23")
	if err != nil {
		t.Fatalf("find or create existing: %v", err)
	}

	if again != actor {
		t.Fatalf("same code must resolve to the same room")
	}

	if _, ok := svc.FindRoom("WXYZ23"); !ok {
		t.Fatalf("lazily created room not findable by its code")
	}
}

func TestRoomService_FindOrCreateRoomRejectsBadCodes(t *testing.T) {
	svc := newTestService(t)

	for _, code := range []string{"", "ABC", "ABCDEFG", "ABC-23", "ABC0DE"} {
		if _, err := svc.FindOrCreateRoom(code); err == nil {
			t.Fatalf("code %q should be rejected", code)
		}
	}
}
