package game

import (
	"testing"
)

func TestSafeRoomState_HidesSecretWordFromImposter(t *testing.T) {
	r := startedRoom(t, "Alice", "Bob", "Carol")

	imposter := imposterOf(t, r)
	member := groupMemberOf(t, r)

	if view := SafeRoomState(r, imposter.ID); view.SecretWord != "" {
		t.Fatalf("imposter must not see the secret word, got %q", view.SecretWord)
	}

	if view := SafeRoomState(r, member.ID); view.SecretWord != "tiger" {
		t.Fatalf("group member should see the secret word, got %q", view.SecretWord)
	}

	r.Phase = PHASE_GAME_OVER

	if view := SafeRoomState(r, imposter.ID); view.SecretWord != "tiger" {
		t.Fatalf("imposter should see the secret word at game over, got %q", view.SecretWord)
	}
}

func TestSafeRoomState_HintsOnlyForImposter(t *testing.T) {
	r := startedRoom(t, "Alice", "Bob", "Carol")

	imposter := imposterOf(t, r)
	member := groupMemberOf(t, r)

	view := SafeRoomState(r, imposter.ID)
	if view.ImposterHint != "stripes" || len(view.ImposterHints) != 1 {
		t.Fatalf("imposter should see hints, got %q %v", view.ImposterHint, view.ImposterHints)
	}

	view = SafeRoomState(r, member.ID)
	if view.ImposterHint != "" || len(view.ImposterHints) != 0 {
		t.Fatalf("group member must not see hints, got %q %v", view.ImposterHint, view.ImposterHints)
	}
}

func TestSafeRoomState_ImposterIDOnlyInRevealPhases(t *testing.T) {
	r := startedRoom(t, "Alice", "Bob", "Carol")

	member := groupMemberOf(t, r)

	hidden := []Phase{PHASE_LOBBY, PHASE_WORD_REVEAL, PHASE_CLUE_ROUND, PHASE_VOTING}
	for _, phase := range hidden {
		r.Phase = phase

		if view := SafeRoomState(r, member.ID); view.ImposterID != "" {
			t.Fatalf("imposter id leaked in phase %s", phase)
		}
	}

	revealed := []Phase{PHASE_VOTE_RESULTS, PHASE_IMPOSTER_GUESS, PHASE_GAME_OVER}
	for _, phase := range revealed {
		r.Phase = phase

		if view := SafeRoomState(r, member.ID); view.ImposterID == "" {
			t.Fatalf("imposter id missing in phase %s", phase)
		}
	}
}

func TestSafeRoomState_ImposterFlagOnlyOnOwnRecord(t *testing.T) {
	r := startedRoom(t, "Alice", "Bob", "Carol")
	r.Phase = PHASE_CLUE_ROUND

	imposter := imposterOf(t, r)
	member := groupMemberOf(t, r)

	view := SafeRoomState(r, member.ID)
	for _, p := range view.Players {
		if p.ID != member.ID && p.IsImposter {
			t.Fatalf("imposter flag leaked on %s to another player", p.Name)
		}
	}

	view = SafeRoomState(r, imposter.ID)

	self, ok := view.FindPlayer(imposter.ID)
	if !ok || !self.IsImposter {
		t.Fatalf("imposter must see their own flag")
	}

	r.Phase = PHASE_GAME_OVER

	view = SafeRoomState(r, member.ID)

	revealed, ok := view.FindPlayer(imposter.ID)
	if !ok || !revealed.IsImposter {
		t.Fatalf("imposter flag should be public at game over")
	}
}

func TestSafeRoomState_WordChangeVotesStaySecret(t *testing.T) {
	r := startedRoom(t, "Alice", "Bob", "Carol")
	r = AdvancePhase(r, testNow)

	r, err := InitiateWordChange(r, r.Players[0].ID)
	if err != nil {
		t.Fatalf("initiate: %v", err)
	}

	r, _ = CastWordChangeVote(r, r.Players[0].ID, true)
	r, _ = CastWordChangeVote(r, r.Players[1].ID, false)

	view := SafeRoomState(r, r.Players[0].ID)

	if len(view.WordChangeVotes) != 1 || view.WordChangeVotes[0].VoterID != r.Players[0].ID {
		t.Fatalf("player should only see their own word change vote, got %v", view.WordChangeVotes)
	}

	view = SafeRoomState(r, r.Players[2].ID)

	if len(view.WordChangeVotes) != 0 {
		t.Fatalf("non-voter should see no word change votes, got %v", view.WordChangeVotes)
	}
}

func TestSafeRoomState_TrollFlagHiddenUntilGameOver(t *testing.T) {
	r := startedRoom(t, "Alice", "Bob", "Carol")
	r.EveryoneIsImposter = true
	r.Phase = PHASE_CLUE_ROUND

	if view := SafeRoomState(r, r.Players[0].ID); view.EveryoneIsImposter {
		t.Fatalf("troll flag leaked before game over")
	}

	r.Phase = PHASE_GAME_OVER

	if view := SafeRoomState(r, r.Players[0].ID); !view.EveryoneIsImposter {
		t.Fatalf("troll flag should be visible at game over")
	}
}
