package game

import (
	"errors"
	"math/rand/v2"
	"strings"
	"time"
)

// StartGame 从大厅进入揭词阶段：抽取谜底词，选出卧底并生成提示。
// trollChance 是整蛊模式触发概率，仅在设置开启整蛊模式时生效
func StartGame(
	r Room,
	category string,
	locale string,
	words WordProvider,
	trollChance float64,
	now time.Time,
) (Room, error) {
	if r.Phase != PHASE_LOBBY {
		return r, errors.New("只能在大厅阶段开始游戏")
	}

	if r.ConnectedCount() < 3 {
		return r, errors.New("至少需要 3 名在线玩家才能开始")
	}

	secretWord, ok := words.RandomWord(locale, category)
	if !ok {
		return r, errors.New("无效的词语分类")
	}

	r = r.clone()
	r.Settings.Category = category

	// 整蛊模式：一定概率让所有人都"是卧底"，不存在单一卧底身份
	everyoneIsImposter := r.Settings.TrollModeEnabled && rand.Float64() < trollChance

	var imposterID string
	var imposterHint string

	if !everyoneIsImposter {
		// 洗牌后取首位，避免直接取随机下标受玩家数组布局影响
		connected := make([]Player, 0, len(r.Players))
		for _, p := range r.Players {
			if p.IsConnected {
				connected = append(connected, p)
			}
		}

		rand.Shuffle(len(connected), func(i, j int) {
			connected[i], connected[j] = connected[j], connected[i]
		})

		imposterID = connected[0].ID

		if r.Settings.ImposterHintEnabled {
			if hint, ok := words.HintWord(locale, category, secretWord); ok {
				imposterHint = hint
			}
		}
	}

	r.Players = r.mapPlayers(func(p Player) Player {
		p.IsImposter = everyoneIsImposter || p.ID == imposterID
		p.IsEliminated = false
		p.HasSubmittedClue = false
		p.HasVoted = false
		p.HasVotedWordChange = false

		return p
	})

	r.Phase = PHASE_WORD_REVEAL
	r.CurrentRound = 1
	r.SecretWord = secretWord
	r.ImposterID = imposterID
	r.EveryoneIsImposter = everyoneIsImposter
	r.ImposterHint = imposterHint
	r.ImposterHints = nil
	if imposterHint != "" {
		r.ImposterHints = []string{imposterHint}
	}
	r.Clues = make([]Clue, 0)
	r.Votes = make([]Vote, 0)
	r.WordChangeUsed = false
	r.WordChangeVotingActive = false
	r.WordChangeVotes = make([]WordChangeVote, 0)
	r.WordChangeInitiatorID = ""
	r.PhaseStartedAt = now
	r.PhaseEndsAt = deadline(now, WORD_REVEAL_SECONDS)
	r.Winner = ""
	r.ImposterGuess = ""
	r.EliminatedPlayerID = ""

	return r, nil
}

// AdvancePhase 推进一个阶段。超时触发和"所有人都已行动"触发
// 共用这一条转移边：先到者生效，后到者在已推进的阶段上是空操作
func AdvancePhase(r Room, now time.Time) Room {
	switch r.Phase {
	case PHASE_WORD_REVEAL:
		return enterClueRound(r, now)

	case PHASE_CLUE_ROUND:
		return enterVoting(r, now)

	case PHASE_VOTING:
		return processVotes(r, now)

	case PHASE_VOTE_RESULTS:
		return leaveVoteResults(r, now)

	case PHASE_IMPOSTER_GUESS:
		// 卧底没能在限时内猜词，群众获胜
		r = r.clone()
		r.Phase = PHASE_GAME_OVER
		r.Winner = WINNER_GROUP
		r.PhaseStartedAt = now
		r.PhaseEndsAt = nil

		return r

	case PHASE_LOBBY, PHASE_GAME_OVER:
		// 这两个阶段只能由显式动作离开，计时推进是空操作
		return r
	}

	return r
}

func enterClueRound(r Room, now time.Time) Room {
	r = r.clone()
	r.Phase = PHASE_CLUE_ROUND
	r.PhaseStartedAt = now

	if r.Settings.TimerEnabled {
		r.PhaseEndsAt = deadline(now, r.Settings.ClueTimeLimit)
	} else {
		r.PhaseEndsAt = nil
	}

	return r
}

func enterVoting(r Room, now time.Time) Room {
	r = r.clone()
	r.Phase = PHASE_VOTING
	r.PhaseStartedAt = now

	if r.Settings.TimerEnabled {
		r.PhaseEndsAt = deadline(now, r.Settings.VoteTimeLimit)
	} else {
		r.PhaseEndsAt = nil
	}

	// 每个投票阶段从零开始计票
	r.Votes = make([]Vote, 0)
	r.Players = r.mapPlayers(func(p Player) Player {
		p.HasVoted = false
		return p
	})

	// 线索阶段结束时尚未结算的换词投票直接作废
	r.WordChangeVotingActive = false

	return r
}

func processVotes(r Room, now time.Time) Room {
	r = r.clone()

	winnerID, _, isTie := TallyVotes(r.Votes)

	if isTie || winnerID == "" {
		// 最高票并列时无人被淘汰
		r.EliminatedPlayerID = ""
	} else {
		r.EliminatedPlayerID = winnerID
		r.Players = r.mapPlayers(func(p Player) Player {
			if p.ID == winnerID {
				p.IsEliminated = true
			}

			return p
		})
	}

	r.Phase = PHASE_VOTE_RESULTS
	r.PhaseStartedAt = now
	r.PhaseEndsAt = deadline(now, VOTE_RESULTS_SECONDS)

	return r
}

func leaveVoteResults(r Room, now time.Time) Room {
	r = r.clone()

	// 整蛊模式没有卧底淘汰胜负，直接结束且不宣布胜利方
	if r.EveryoneIsImposter {
		r.Phase = PHASE_GAME_OVER
		r.Winner = ""
		r.PhaseStartedAt = now
		r.PhaseEndsAt = nil

		return r
	}

	// 卧底被淘汰，进入猜词阶段给卧底翻盘机会
	if r.EliminatedPlayerID != "" && r.EliminatedPlayerID == r.ImposterID {
		r.Phase = PHASE_IMPOSTER_GUESS
		r.PhaseStartedAt = now
		r.PhaseEndsAt = deadline(now, IMPOSTER_GUESS_SECONDS)

		return r
	}

	// 还有剩余轮次，进入下一轮线索阶段并重置每轮状态
	if r.CurrentRound < r.Settings.ClueRounds {
		r.CurrentRound++
		r.Votes = make([]Vote, 0)
		r.WordChangeUsed = false
		r.WordChangeVotingActive = false
		r.WordChangeVotes = make([]WordChangeVote, 0)
		r.WordChangeInitiatorID = ""
		r.Players = r.mapPlayers(func(p Player) Player {
			p.HasSubmittedClue = false
			p.HasVoted = false
			p.HasVotedWordChange = false

			return p
		})

		r.Phase = PHASE_CLUE_ROUND
		r.PhaseStartedAt = now

		if r.Settings.TimerEnabled {
			r.PhaseEndsAt = deadline(now, r.Settings.ClueTimeLimit)
		} else {
			r.PhaseEndsAt = nil
		}

		return r
	}

	// 轮次用尽仍未揪出卧底，卧底获胜
	r.Phase = PHASE_GAME_OVER
	r.Winner = WINNER_IMPOSTER
	r.PhaseStartedAt = now
	r.PhaseEndsAt = nil

	return r
}

// SubmitClue 在线索阶段提交一个单词线索
func SubmitClue(r Room, playerID string, word string) (Room, error) {
	if r.Phase != PHASE_CLUE_ROUND {
		return r, errors.New("当前不在线索阶段")
	}

	player, ok := r.FindPlayer(playerID)
	if !ok {
		return r, errors.New("玩家不存在")
	}

	if !player.Active() {
		return r, errors.New("已被淘汰或离线的玩家不能提交线索")
	}

	if player.HasSubmittedClue {
		return r, errors.New("本轮已经提交过线索")
	}

	normalized := NormalizeWord(word)

	if normalized == "" {
		return r, errors.New("线索不能为空")
	}

	if strings.ContainsAny(normalized, " \t") {
		return r, errors.New("线索只能是一个单词")
	}

	if len([]rune(normalized)) > 20 {
		return r, errors.New("线索最多 20 个字符")
	}

	secret := NormalizeWord(r.SecretWord)
	if normalized == secret ||
		strings.Contains(normalized, secret) ||
		strings.Contains(secret, normalized) {
		return r, errors.New("线索不能暴露谜底词")
	}

	r = r.clone()
	r.Clues = append(r.Clues, Clue{
		PlayerID:   playerID,
		PlayerName: player.Name,
		Word:       normalized,
		Round:      r.CurrentRound,
	})
	r.Players = r.mapPlayers(func(p Player) Player {
		if p.ID == playerID {
			p.HasSubmittedClue = true
		}

		return p
	})

	return r, nil
}

// CastVote 在投票阶段对目标玩家投出淘汰票
func CastVote(r Room, voterID, targetID string) (Room, error) {
	if r.Phase != PHASE_VOTING {
		return r, errors.New("当前不在投票阶段")
	}

	voter, ok := r.FindPlayer(voterID)
	if !ok {
		return r, errors.New("玩家不存在")
	}

	if !voter.Active() {
		return r, errors.New("已被淘汰或离线的玩家不能投票")
	}

	if voter.HasVoted {
		return r, errors.New("本轮已经投过票")
	}

	if voterID == targetID {
		return r, errors.New("不能投票给自己")
	}

	target, ok := r.FindPlayer(targetID)
	if !ok {
		return r, errors.New("投票目标不存在")
	}

	if !target.Active() {
		return r, errors.New("不能投票给已被淘汰或离线的玩家")
	}

	r = r.clone()
	r.Votes = append(r.Votes, Vote{
		VoterID:   voterID,
		VoterName: voter.Name,
		TargetID:  targetID,
	})
	r.Players = r.mapPlayers(func(p Player) Player {
		if p.ID == voterID {
			p.HasVoted = true
		}

		return p
	})

	return r, nil
}

// AllCluesSubmitted 判断所有在线未淘汰玩家是否都已提交本轮线索
func AllCluesSubmitted(r Room) bool {
	active := r.ActivePlayers()
	if len(active) == 0 {
		return false
	}

	for _, p := range active {
		if !p.HasSubmittedClue {
			return false
		}
	}

	return true
}

// AllVotesSubmitted 判断所有在线未淘汰玩家是否都已投票
func AllVotesSubmitted(r Room) bool {
	active := r.ActivePlayers()
	if len(active) == 0 {
		return false
	}

	for _, p := range active {
		if !p.HasVoted {
			return false
		}
	}

	return true
}

// ImposterGuessWord 处理卧底的猜词：猜中卧底胜，猜错群众胜
func ImposterGuessWord(r Room, playerID, guess string, now time.Time) (Room, error) {
	if r.Phase != PHASE_IMPOSTER_GUESS {
		return r, errors.New("当前不在猜词阶段")
	}

	if playerID != r.ImposterID {
		return r, errors.New("只有卧底可以猜词")
	}

	r = r.clone()
	r.ImposterGuess = guess

	if NormalizeWord(guess) == NormalizeWord(r.SecretWord) {
		r.Winner = WINNER_IMPOSTER
	} else {
		r.Winner = WINNER_GROUP
	}

	r.Phase = PHASE_GAME_OVER
	r.PhaseStartedAt = now
	r.PhaseEndsAt = nil

	return r, nil
}

// PlayAgain 结束后重开：清空所有对局产物，回到大厅，玩家和设置保留
func PlayAgain(r Room, now time.Time) Room {
	r = r.clone()

	r.Phase = PHASE_LOBBY
	r.CurrentRound = 0
	r.SecretWord = ""
	r.ImposterHint = ""
	r.ImposterHints = make([]string, 0)
	r.ImposterID = ""
	r.EveryoneIsImposter = false
	r.Clues = make([]Clue, 0)
	r.Votes = make([]Vote, 0)
	r.WordChangeUsed = false
	r.WordChangeVotingActive = false
	r.WordChangeVotes = make([]WordChangeVote, 0)
	r.WordChangeInitiatorID = ""
	r.PhaseStartedAt = now
	r.PhaseEndsAt = nil
	r.Winner = ""
	r.ImposterGuess = ""
	r.EliminatedPlayerID = ""
	r.Players = r.mapPlayers(func(p Player) Player {
		p.IsImposter = false
		p.IsEliminated = false
		p.HasSubmittedClue = false
		p.HasVoted = false
		p.HasVotedWordChange = false

		return p
	})

	return r
}
