package game

import "errors"

// 换词通过后最多额外生成的提示词数量
const EXTRA_HINTS_ON_WORD_CHANGE = 2

// 换词时重新抽词的最大尝试次数，避免抽回当前谜底词
const WORD_CHANGE_REDRAW_ATTEMPTS = 10

// TallyVotes 统计淘汰票：返回唯一最高票的目标。
// 最高票并列（或没有任何票）时 isTie 为 true，无人被淘汰
func TallyVotes(votes []Vote) (winnerID string, counts map[string]int, isTie bool) {
	counts = make(map[string]int)
	for _, v := range votes {
		counts[v.TargetID]++
	}

	if len(counts) == 0 {
		return "", counts, true
	}

	maxCount := 0
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}

	topVoted := make([]string, 0, 1)
	for targetID, c := range counts {
		if c == maxCount {
			topVoted = append(topVoted, targetID)
		}
	}

	if len(topVoted) > 1 {
		return "", counts, true
	}

	return topVoted[0], counts, false
}

// InitiateWordChange 发起换词投票。每轮只允许发起一次，
// 且同一时间只能有一个进行中的换词投票
func InitiateWordChange(r Room, playerID string) (Room, error) {
	if r.Phase != PHASE_CLUE_ROUND {
		return r, errors.New("只能在线索阶段发起换词投票")
	}

	if r.WordChangeUsed {
		return r, errors.New("本轮已经用过换词投票")
	}

	if r.WordChangeVotingActive {
		return r, errors.New("已有进行中的换词投票")
	}

	player, ok := r.FindPlayer(playerID)
	if !ok {
		return r, errors.New("玩家不存在")
	}

	if !player.Active() {
		return r, errors.New("已被淘汰或离线的玩家不能发起换词投票")
	}

	r = r.clone()
	r.WordChangeVotingActive = true
	r.WordChangeInitiatorID = playerID
	r.WordChangeVotes = make([]WordChangeVote, 0)
	r.Players = r.mapPlayers(func(p Player) Player {
		p.HasVotedWordChange = false
		return p
	})

	return r, nil
}

// CastWordChangeVote 在进行中的换词投票里投出赞成或反对票
func CastWordChangeVote(r Room, playerID string, vote bool) (Room, error) {
	if r.Phase != PHASE_CLUE_ROUND {
		return r, errors.New("当前不在线索阶段")
	}

	if !r.WordChangeVotingActive {
		return r, errors.New("当前没有进行中的换词投票")
	}

	player, ok := r.FindPlayer(playerID)
	if !ok {
		return r, errors.New("玩家不存在")
	}

	if !player.Active() {
		return r, errors.New("已被淘汰或离线的玩家不能投票")
	}

	if player.HasVotedWordChange {
		return r, errors.New("已经在换词投票中投过票")
	}

	r = r.clone()
	r.WordChangeVotes = append(r.WordChangeVotes, WordChangeVote{
		VoterID: playerID,
		Vote:    vote,
	})
	r.Players = r.mapPlayers(func(p Player) Player {
		if p.ID == playerID {
			p.HasVotedWordChange = true
		}

		return p
	})

	return r, nil
}

// AllWordChangeVotesIn 判断所有在线未淘汰玩家是否都已投出换词票。
// 注意：即使赞成票已提前达到多数也不会提前结算，必须等所有人投完
func AllWordChangeVotesIn(r Room) bool {
	if !r.WordChangeVotingActive {
		return false
	}

	active := r.ActivePlayers()
	if len(active) == 0 {
		return false
	}

	for _, p := range active {
		if !p.HasVotedWordChange {
			return false
		}
	}

	return true
}

// ResolveWordChange 结算换词投票。通过门槛是所有在线未淘汰玩家的
// 严格多数（floor(n/2)+1）赞成。通过时重新抽取谜底词，并在启用提示
// 且非整蛊模式时为卧底追加至多两个额外提示词和一个新的主提示词。
// 无论通过与否，本轮的换词一次性标记都会被置位
func ResolveWordChange(r Room, locale string, words WordProvider) (Room, bool, int) {
	r = r.clone()

	yesVotes := 0
	for _, v := range r.WordChangeVotes {
		if v.Vote {
			yesVotes++
		}
	}

	majority := len(r.ActivePlayers())/2 + 1
	passed := yesVotes >= majority

	r.WordChangeUsed = true
	r.WordChangeVotingActive = false

	if !passed {
		return r, false, 0
	}

	// 重新抽词，最多尝试 10 次避免抽回原词
	newWord := r.SecretWord
	for range WORD_CHANGE_REDRAW_ATTEMPTS {
		candidate, ok := words.RandomWord(locale, r.Settings.Category)
		if !ok {
			break
		}

		if NormalizeWord(candidate) != NormalizeWord(r.SecretWord) {
			newWord = candidate
			break
		}
	}

	r.SecretWord = newWord

	newHintsCount := 0

	if r.Settings.ImposterHintEnabled && !r.EveryoneIsImposter {
		// 额外提示词追加进累计列表，作为卧底的补偿
		for range EXTRA_HINTS_ON_WORD_CHANGE {
			if hint, ok := words.HintWord(locale, r.Settings.Category, newWord); ok {
				r.ImposterHints = append(r.ImposterHints, hint)
				newHintsCount++
			}
		}

		// 主提示词直接替换
		if hint, ok := words.HintWord(locale, r.Settings.Category, newWord); ok {
			r.ImposterHint = hint
		}
	}

	return r, true, newHintsCount
}
