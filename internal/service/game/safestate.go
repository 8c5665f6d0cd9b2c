package game

// SafeRoomState 为指定玩家生成脱敏后的房间视图。
// 投影在每次状态变更后按连接逐个重新计算，绝不跨玩家复用：
//   - 谜底词：请求者是卧底且游戏未结束时隐藏，其余情况可见
//   - 卧底提示：任何阶段都只有卧底本人可见
//   - 卧底 ID：仅在 vote-results、imposter-guess 和 game-over 阶段公开
//   - 玩家列表里的 is_imposter：game-over 后全部公开，
//     此前只在请求者自己的记录上保留，其他人一律为 false
//   - 换词票：无记名投票，只保留请求者自己投出的那一票
//   - 整蛊模式标记：游戏结束前隐藏，否则会提前拆穿"人人都是卧底"
func SafeRoomState(r Room, playerID string) Room {
	r = r.clone()

	requester, _ := r.FindPlayer(playerID)
	isImposter := requester.IsImposter
	isGameOver := r.Phase == PHASE_GAME_OVER

	if isImposter && !isGameOver {
		r.SecretWord = ""
	}

	if !isImposter {
		r.ImposterHint = ""
		r.ImposterHints = nil
	}

	switch r.Phase {
	case PHASE_GAME_OVER, PHASE_VOTE_RESULTS, PHASE_IMPOSTER_GUESS:
		// 卧底身份在这些阶段公开
	default:
		r.ImposterID = ""
	}

	if !isGameOver {
		r.EveryoneIsImposter = false
	}

	r.Players = r.mapPlayers(func(p Player) Player {
		if !isGameOver && p.ID != playerID {
			p.IsImposter = false
		}

		return p
	})

	ownVotes := make([]WordChangeVote, 0, 1)
	for _, v := range r.WordChangeVotes {
		if v.VoterID == playerID {
			ownVotes = append(ownVotes, v)
		}
	}
	r.WordChangeVotes = ownVotes

	return r
}
