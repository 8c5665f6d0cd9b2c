package game

// 游戏阶段状态机，一局游戏按以下顺序流转：
// lobby -> word-reveal -> clue-round -> voting -> vote-results
// 之后根据投票结果进入 imposter-guess、下一轮 clue-round 或 game-over
type Phase string

const (
	PHASE_LOBBY          Phase = "lobby"
	PHASE_WORD_REVEAL    Phase = "word-reveal"
	PHASE_CLUE_ROUND     Phase = "clue-round"
	PHASE_VOTING         Phase = "voting"
	PHASE_VOTE_RESULTS   Phase = "vote-results"
	PHASE_IMPOSTER_GUESS Phase = "imposter-guess"
	PHASE_GAME_OVER      Phase = "game-over"
)

// 各阶段的固定时长
const (
	WORD_REVEAL_SECONDS    = 5
	VOTE_RESULTS_SECONDS   = 5
	IMPOSTER_GUESS_SECONDS = 30
)
