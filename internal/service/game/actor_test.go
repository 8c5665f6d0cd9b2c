package game

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/rlarin/imposter-game/internal/metrics"
)

func newTestActor(t *testing.T) (*RoomActor, *clockwork.FakeClock) {
	t.Helper()

	clock := clockwork.NewFakeClock()

	actor := NewRoomActor(
		"TEST",
		&stubWords{word: "tiger", hint: "stripes"},
		metrics.NewRecorder(""),
		clock,
		0,
	)

	go actor.Run()

	return actor, clock
}

func deliverOrFail(t *testing.T, actor *RoomActor, conn *Conn, req RequestWrapper) {
	t.Helper()

	if !actor.Deliver(conn, req) {
		t.Fatalf("deliver %s failed", req.ReqType)
	}
}

// waitResp drains the connection's responses until one of the wanted
// type arrives, failing the test on timeout.
func waitResp(t *testing.T, conn *Conn, respType string) ResponseWrapper {
	t.Helper()

	deadline := time.After(2 * time.Second)

	for {
		select {
		case resp := <-conn.RespCh:
			if resp.RespType == respType {
				return resp
			}

		case <-deadline:
			t.Fatalf("timed out waiting for %s", respType)
		}
	}
}

// waitDropped waits for the room to signal that the connection
// should be torn down.
func waitDropped(t *testing.T, conn *Conn) {
	t.Helper()

	select {
	case <-conn.Done():
	case <-time.After(2 * time.Second):
		t.Fatalf("connection was not dropped")
	}
}

func joinPlayer(t *testing.T, actor *RoomActor, name string) (*Conn, string) {
	t.Helper()

	conn := NewConn()

	deliverOrFail(t, actor, conn, RequestWrapper{
		ReqType: REQ_JOIN,
		Data:    mustMarshal(JoinRequest{PlayerName: name}),
	})

	resp := waitResp(t, conn, RESP_ROOM_STATE)

	state, ok := resp.Data.(RoomStateResponse)
	if !ok {
		t.Fatalf("room-state payload has wrong type: %T", resp.Data)
	}

	return conn, state.PlayerID
}

func TestRoomActor_FirstJoinerBecomesHost(t *testing.T) {
	actor, _ := newTestActor(t)

	aliceConn, aliceID := joinPlayer(t, actor, "Alice")
	_, bobID := joinPlayer(t, actor, "Bob")

	// Alice gets a fresh state broadcast when Bob joins
	resp := waitResp(t, aliceConn, RESP_ROOM_STATE)

	state := resp.Data.(RoomStateResponse)

	if state.Room.HostID != aliceID {
		t.Fatalf("want host %s, got %s", aliceID, state.Room.HostID)
	}

	if len(state.Room.Players) != 2 {
		t.Fatalf("want 2 players, got %d", len(state.Room.Players))
	}

	if bobID == aliceID {
		t.Fatalf("players must get distinct ids")
	}
}

func TestRoomActor_RejoinByNameKeepsIdentity(t *testing.T) {
	actor, _ := newTestActor(t)

	oldConn, aliceID := joinPlayer(t, actor, "Alice")

	newConn, rejoinedID := joinPlayer(t, actor, "Alice")
	_ = newConn

	if rejoinedID != aliceID {
		t.Fatalf("rejoin by name should keep the player id, got %s want %s", rejoinedID, aliceID)
	}

	// The superseded connection is dropped
	waitDropped(t, oldConn)
}

func TestRoomActor_HostDisconnectClosesRoom(t *testing.T) {
	actor, _ := newTestActor(t)

	aliceConn, _ := joinPlayer(t, actor, "Alice")
	bobConn, _ := joinPlayer(t, actor, "Bob")

	actor.ConnClosed(aliceConn)

	resp := waitResp(t, bobConn, RESP_ROOM_CLOSED)

	closed := resp.Data.(RoomClosedResponse)
	if closed.Reason != ROOM_CLOSED_HOST_LEFT {
		t.Fatalf("want reason %s, got %s", ROOM_CLOSED_HOST_LEFT, closed.Reason)
	}

	waitDropped(t, bobConn)

	select {
	case <-actor.Done():
	case <-time.After(2 * time.Second):
		t.Fatalf("actor did not shut down after host disconnect")
	}
}

func TestRoomActor_GracefulHostLeaveMigratesHost(t *testing.T) {
	actor, _ := newTestActor(t)

	aliceConn, _ := joinPlayer(t, actor, "Alice")
	bobConn, bobID := joinPlayer(t, actor, "Bob")

	deliverOrFail(t, actor, aliceConn, RequestWrapper{ReqType: REQ_LEAVE})

	waitResp(t, bobConn, RESP_PLAYER_LEFT)

	resp := waitResp(t, bobConn, RESP_ROOM_STATE)

	state := resp.Data.(RoomStateResponse)
	if state.Room.HostID != bobID {
		t.Fatalf("host should migrate to Bob, got %s", state.Room.HostID)
	}

	waitDropped(t, aliceConn)

	select {
	case <-actor.Done():
		t.Fatalf("room should survive a graceful host leave")
	default:
	}
}

func TestRoomActor_KickNotifiesTargetAndDropsConnection(t *testing.T) {
	actor, _ := newTestActor(t)

	aliceConn, _ := joinPlayer(t, actor, "Alice")
	bobConn, bobID := joinPlayer(t, actor, "Bob")

	deliverOrFail(t, actor, aliceConn, RequestWrapper{
		ReqType: REQ_KICK_PLAYER,
		Data:    mustMarshal(KickPlayerRequest{PlayerID: bobID}),
	})

	resp := waitResp(t, bobConn, RESP_PLAYER_KICKED)

	kicked := resp.Data.(PlayerKickedResponse)
	if kicked.PlayerID != bobID {
		t.Fatalf("want kicked player %s, got %s", bobID, kicked.PlayerID)
	}

	waitDropped(t, bobConn)
	waitResp(t, aliceConn, RESP_PLAYER_KICKED)

	resp = waitResp(t, aliceConn, RESP_ROOM_STATE)

	state := resp.Data.(RoomStateResponse)
	if len(state.Room.Players) != 1 {
		t.Fatalf("kicked player not removed, got %d players", len(state.Room.Players))
	}
}

func TestRoomActor_NonHostCannotKickOrStart(t *testing.T) {
	actor, _ := newTestActor(t)

	_, aliceID := joinPlayer(t, actor, "Alice")
	bobConn, _ := joinPlayer(t, actor, "Bob")

	deliverOrFail(t, actor, bobConn, RequestWrapper{
		ReqType: REQ_KICK_PLAYER,
		Data:    mustMarshal(KickPlayerRequest{PlayerID: aliceID}),
	})

	if resp := waitResp(t, bobConn, RESP_ERROR); resp.ErrMsg == "" {
		t.Fatalf("kick by non-host should return an error message")
	}

	deliverOrFail(t, actor, bobConn, RequestWrapper{
		ReqType: REQ_START_GAME,
		Data:    mustMarshal(StartGameRequest{Category: "animals"}),
	})

	if resp := waitResp(t, bobConn, RESP_ERROR); resp.ErrMsg == "" {
		t.Fatalf("start by non-host should return an error message")
	}
}

func TestRoomActor_TimedPhaseProgression(t *testing.T) {
	actor, clock := newTestActor(t)

	hostConn, _ := joinPlayer(t, actor, "Alice")
	joinPlayer(t, actor, "Bob")
	joinPlayer(t, actor, "Carol")

	deliverOrFail(t, actor, hostConn, RequestWrapper{
		ReqType: REQ_START_GAME,
		Data:    mustMarshal(StartGameRequest{Category: "animals"}),
	})

	resp := waitResp(t, hostConn, RESP_PHASE_CHANGED)

	phase := resp.Data.(PhaseChangedResponse)
	if phase.Phase != PHASE_WORD_REVEAL {
		t.Fatalf("want phase %s, got %s", PHASE_WORD_REVEAL, phase.Phase)
	}

	// Wait for the reveal timer to be armed, then let it expire
	clock.BlockUntil(1)
	clock.Advance(WORD_REVEAL_SECONDS * time.Second)

	resp = waitResp(t, hostConn, RESP_PHASE_CHANGED)

	phase = resp.Data.(PhaseChangedResponse)
	if phase.Phase != PHASE_CLUE_ROUND {
		t.Fatalf("want phase %s, got %s", PHASE_CLUE_ROUND, phase.Phase)
	}

	// Let the clue round run out without any clues
	clock.BlockUntil(1)
	clock.Advance(time.Duration(DefaultSettings().ClueTimeLimit) * time.Second)

	resp = waitResp(t, hostConn, RESP_PHASE_CHANGED)

	phase = resp.Data.(PhaseChangedResponse)
	if phase.Phase != PHASE_VOTING {
		t.Fatalf("want phase %s, got %s", PHASE_VOTING, phase.Phase)
	}
}

func TestRoomActor_LateRequestFromDroppedConnIgnored(t *testing.T) {
	actor, _ := newTestActor(t)

	aliceConn, _ := joinPlayer(t, actor, "Alice")
	bobConn, bobID := joinPlayer(t, actor, "Bob")

	deliverOrFail(t, actor, aliceConn, RequestWrapper{
		ReqType: REQ_KICK_PLAYER,
		Data:    mustMarshal(KickPlayerRequest{PlayerID: bobID}),
	})

	waitDropped(t, bobConn)

	// Bob's read loop is still alive and delivers one more request
	// before it notices the teardown
	deliverOrFail(t, actor, bobConn, RequestWrapper{ReqType: REQ_LEAVE})
	actor.ConnClosed(bobConn)

	// The room must survive the late request and keep serving Alice
	deliverOrFail(t, actor, aliceConn, RequestWrapper{
		ReqType: REQ_UPDATE_SETTINGS,
		Data:    mustMarshal(UpdateSettingsRequest{}),
	})

	waitResp(t, aliceConn, RESP_SETTINGS_UPDATED)

	room, ok := actor.Snapshot()
	if !ok {
		t.Fatalf("room shut down after a late request from a dropped connection")
	}

	if len(room.Players) != 1 || room.Players[0].Name != "Alice" {
		t.Fatalf("late leave from the kicked player must be ignored, players: %+v", room.Players)
	}
}

func TestRoomActor_IdleRoomWithoutJoinShutsDown(t *testing.T) {
	actor, clock := newTestActor(t)

	// The idle timer is the only waiter until someone joins
	clock.BlockUntil(1)
	clock.Advance(ROOM_IDLE_TIMEOUT)

	select {
	case <-actor.Done():
	case <-time.After(2 * time.Second):
		t.Fatalf("empty room did not shut down after the idle timeout")
	}
}

func TestRoomActor_JoinCancelsIdleShutdown(t *testing.T) {
	actor, clock := newTestActor(t)

	joinPlayer(t, actor, "Alice")

	clock.Advance(ROOM_IDLE_TIMEOUT)

	select {
	case <-actor.Done():
		t.Fatalf("room with a player must survive the idle timeout")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestRoomActor_DisconnectOfLastPendingClueAdvancesPhase(t *testing.T) {
	actor, clock := newTestActor(t)

	aliceConn, _ := joinPlayer(t, actor, "Alice")
	bobConn, _ := joinPlayer(t, actor, "Bob")
	carolConn, _ := joinPlayer(t, actor, "Carol")

	// Disable the phase timer so only the completion check can
	// move the room forward
	timerOff := false
	deliverOrFail(t, actor, aliceConn, RequestWrapper{
		ReqType: REQ_UPDATE_SETTINGS,
		Data:    mustMarshal(UpdateSettingsRequest{Settings: SettingsPatch{TimerEnabled: &timerOff}}),
	})
	waitResp(t, aliceConn, RESP_SETTINGS_UPDATED)

	deliverOrFail(t, actor, aliceConn, RequestWrapper{
		ReqType: REQ_START_GAME,
		Data:    mustMarshal(StartGameRequest{Category: "animals"}),
	})

	resp := waitResp(t, aliceConn, RESP_PHASE_CHANGED)
	if resp.Data.(PhaseChangedResponse).Phase != PHASE_WORD_REVEAL {
		t.Fatalf("want phase %s, got %s", PHASE_WORD_REVEAL, resp.Data.(PhaseChangedResponse).Phase)
	}

	// The reveal phase always runs on its fixed deadline
	clock.BlockUntil(1)
	clock.Advance(WORD_REVEAL_SECONDS * time.Second)

	resp = waitResp(t, aliceConn, RESP_PHASE_CHANGED)
	if resp.Data.(PhaseChangedResponse).Phase != PHASE_CLUE_ROUND {
		t.Fatalf("want phase %s, got %s", PHASE_CLUE_ROUND, resp.Data.(PhaseChangedResponse).Phase)
	}

	deliverOrFail(t, actor, aliceConn, RequestWrapper{
		ReqType: REQ_SUBMIT_CLUE,
		Data:    mustMarshal(SubmitClueRequest{Word: "cat"}),
	})
	deliverOrFail(t, actor, bobConn, RequestWrapper{
		ReqType: REQ_SUBMIT_CLUE,
		Data:    mustMarshal(SubmitClueRequest{Word: "dog"}),
	})

	// Carol was the last pending submitter; her disconnect must
	// complete the round instead of stalling it forever
	actor.ConnClosed(carolConn)

	resp = waitResp(t, aliceConn, RESP_PHASE_CHANGED)
	if resp.Data.(PhaseChangedResponse).Phase != PHASE_VOTING {
		t.Fatalf("want phase %s, got %s", PHASE_VOTING, resp.Data.(PhaseChangedResponse).Phase)
	}
}

func TestRoomActor_WordChangeResolvesWhenVoterDisconnects(t *testing.T) {
	actor, clock := newTestActor(t)

	aliceConn, _ := joinPlayer(t, actor, "Alice")
	bobConn, _ := joinPlayer(t, actor, "Bob")
	carolConn, _ := joinPlayer(t, actor, "Carol")

	deliverOrFail(t, actor, aliceConn, RequestWrapper{
		ReqType: REQ_START_GAME,
		Data:    mustMarshal(StartGameRequest{Category: "animals"}),
	})

	resp := waitResp(t, aliceConn, RESP_PHASE_CHANGED)
	if resp.Data.(PhaseChangedResponse).Phase != PHASE_WORD_REVEAL {
		t.Fatalf("want phase %s, got %s", PHASE_WORD_REVEAL, resp.Data.(PhaseChangedResponse).Phase)
	}

	clock.BlockUntil(1)
	clock.Advance(WORD_REVEAL_SECONDS * time.Second)

	resp = waitResp(t, aliceConn, RESP_PHASE_CHANGED)
	if resp.Data.(PhaseChangedResponse).Phase != PHASE_CLUE_ROUND {
		t.Fatalf("want phase %s, got %s", PHASE_CLUE_ROUND, resp.Data.(PhaseChangedResponse).Phase)
	}

	deliverOrFail(t, actor, aliceConn, RequestWrapper{ReqType: REQ_INITIATE_WORD_CHANGE})
	waitResp(t, aliceConn, RESP_WORD_CHANGE_VOTE_STARTED)

	vote := VoteWordChangeRequest{Vote: true}
	deliverOrFail(t, actor, aliceConn, RequestWrapper{
		ReqType: REQ_VOTE_WORD_CHANGE,
		Data:    mustMarshal(vote),
	})
	deliverOrFail(t, actor, bobConn, RequestWrapper{
		ReqType: REQ_VOTE_WORD_CHANGE,
		Data:    mustMarshal(vote),
	})

	// Everyone still present has voted; Carol's disconnect must
	// settle the vote instead of waiting for her ballot
	actor.ConnClosed(carolConn)

	resp = waitResp(t, aliceConn, RESP_WORD_CHANGE_VOTE_RESULT)

	result := resp.Data.(WordChangeVoteResultResponse)
	if !result.Passed {
		t.Fatalf("unanimous vote of the remaining players should pass")
	}
}
