package game

import "time"

// 胜利方
const (
	WINNER_GROUP    = "group"
	WINNER_IMPOSTER = "imposter"
)

// 游戏中的玩家，ID 与传输层连接无关，断线重连后保持不变
type Player struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	AvatarColor string `json:"avatar_color"`

	IsHost       bool `json:"is_host"`
	IsImposter   bool `json:"is_imposter"`
	IsEliminated bool `json:"is_eliminated"`
	IsConnected  bool `json:"is_connected"`

	// 每轮进度标记，进入新一轮时重置
	HasSubmittedClue   bool `json:"has_submitted_clue"`
	HasVoted           bool `json:"has_voted"`
	HasVotedWordChange bool `json:"has_voted_word_change"`
}

// Active 表示玩家可以参与当前轮次：在线且未被淘汰
func (p Player) Active() bool {
	return p.IsConnected && !p.IsEliminated
}

// 玩家提交的线索，按提交所在轮次打标，跨轮累积保留
type Clue struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
	Word       string `json:"word"`
	Round      int    `json:"round"`
}

// 淘汰投票
type Vote struct {
	VoterID   string `json:"voter_id"`
	VoterName string `json:"voter_name"`
	TargetID  string `json:"target_id"`
}

// 换词子投票（无记名）
type WordChangeVote struct {
	VoterID string `json:"voter_id"`
	Vote    bool   `json:"vote"`
}

// 房间设置，仅主持人可在大厅阶段修改
type Settings struct {
	ClueRounds          int    `json:"clue_rounds"`
	ClueTimeLimit       int    `json:"clue_time_limit"`
	VoteTimeLimit       int    `json:"vote_time_limit"`
	Category            string `json:"category"`
	TimerEnabled        bool   `json:"timer_enabled"`
	ImposterHintEnabled bool   `json:"imposter_hint_enabled"`
	TrollModeEnabled    bool   `json:"troll_mode_enabled"`
}

func DefaultSettings() Settings {
	return Settings{
		ClueRounds:          2,
		ClueTimeLimit:       60,
		VoteTimeLimit:       45,
		Category:            "animals",
		TimerEnabled:        true,
		ImposterHintEnabled: true,
		TrollModeEnabled:    false,
	}
}

// SettingsPatch 是 update-settings 消息携带的部分更新，nil 字段保持不变
type SettingsPatch struct {
	ClueRounds          *int    `json:"clue_rounds,omitempty"`
	ClueTimeLimit       *int    `json:"clue_time_limit,omitempty"`
	VoteTimeLimit       *int    `json:"vote_time_limit,omitempty"`
	Category            *string `json:"category,omitempty"`
	TimerEnabled        *bool   `json:"timer_enabled,omitempty"`
	ImposterHintEnabled *bool   `json:"imposter_hint_enabled,omitempty"`
	TrollModeEnabled    *bool   `json:"troll_mode_enabled,omitempty"`
}

func (s Settings) Apply(patch SettingsPatch) Settings {
	if patch.ClueRounds != nil {
		s.ClueRounds = *patch.ClueRounds
	}
	if patch.ClueTimeLimit != nil {
		s.ClueTimeLimit = *patch.ClueTimeLimit
	}
	if patch.VoteTimeLimit != nil {
		s.VoteTimeLimit = *patch.VoteTimeLimit
	}
	if patch.Category != nil {
		s.Category = *patch.Category
	}
	if patch.TimerEnabled != nil {
		s.TimerEnabled = *patch.TimerEnabled
	}
	if patch.ImposterHintEnabled != nil {
		s.ImposterHintEnabled = *patch.ImposterHintEnabled
	}
	if patch.TrollModeEnabled != nil {
		s.TrollModeEnabled = *patch.TrollModeEnabled
	}

	return s
}

// Room 是一个房间的权威状态，作为值类型使用：
// 所有状态转移函数返回新的 Room 值，不做原地修改，
// 由房间 actor 串行地持有唯一的权威副本
type Room struct {
	Code     string   `json:"code"`
	HostID   string   `json:"host_id"`
	Players  []Player `json:"players"`
	Phase    Phase    `json:"phase"`
	Settings Settings `json:"settings"`

	CurrentRound       int      `json:"current_round"`
	SecretWord         string   `json:"secret_word,omitempty"`
	ImposterHint       string   `json:"imposter_hint,omitempty"`
	ImposterHints      []string `json:"imposter_hints,omitempty"`
	ImposterID         string   `json:"imposter_id,omitempty"`
	EveryoneIsImposter bool     `json:"everyone_is_imposter"`
	Clues              []Clue   `json:"clues"`
	Votes              []Vote   `json:"votes"`

	WordChangeUsed         bool             `json:"word_change_used"`
	WordChangeVotingActive bool             `json:"word_change_voting_active"`
	WordChangeVotes        []WordChangeVote `json:"word_change_votes"`
	WordChangeInitiatorID  string           `json:"word_change_initiator_id,omitempty"`

	CreatedAt      time.Time  `json:"created_at"`
	PhaseStartedAt time.Time  `json:"phase_started_at"`
	PhaseEndsAt    *time.Time `json:"phase_ends_at,omitempty"`

	Winner             string `json:"winner,omitempty"`
	ImposterGuess      string `json:"imposter_guess,omitempty"`
	EliminatedPlayerID string `json:"eliminated_player_id,omitempty"`
}

func NewRoom(code string, now time.Time) Room {
	return Room{
		Code:            code,
		Phase:           PHASE_LOBBY,
		Settings:        DefaultSettings(),
		Players:         make([]Player, 0),
		ImposterHints:   make([]string, 0),
		Clues:           make([]Clue, 0),
		Votes:           make([]Vote, 0),
		WordChangeVotes: make([]WordChangeVote, 0),
		CreatedAt:       now,
		PhaseStartedAt:  now,
	}
}

// clone 深拷贝所有切片字段，保证转移函数不会意外共享底层数组
func (r Room) clone() Room {
	r.Players = append([]Player(nil), r.Players...)
	r.ImposterHints = append([]string(nil), r.ImposterHints...)
	r.Clues = append([]Clue(nil), r.Clues...)
	r.Votes = append([]Vote(nil), r.Votes...)
	r.WordChangeVotes = append([]WordChangeVote(nil), r.WordChangeVotes...)

	return r
}

func (r Room) FindPlayer(playerID string) (Player, bool) {
	for _, p := range r.Players {
		if p.ID == playerID {
			return p, true
		}
	}

	return Player{}, false
}

func (r Room) FindPlayerByName(name string) (Player, bool) {
	for _, p := range r.Players {
		if p.Name == name {
			return p, true
		}
	}

	return Player{}, false
}

// ActivePlayers 返回在线且未被淘汰的玩家
func (r Room) ActivePlayers() []Player {
	active := make([]Player, 0, len(r.Players))
	for _, p := range r.Players {
		if p.Active() {
			active = append(active, p)
		}
	}

	return active
}

func (r Room) ConnectedCount() int {
	count := 0
	for _, p := range r.Players {
		if p.IsConnected {
			count++
		}
	}

	return count
}

// CurrentRoundClues 只返回当前轮次的线索，历史轮次仍保留在 Clues 中
func (r Room) CurrentRoundClues() []Clue {
	clues := make([]Clue, 0, len(r.Clues))
	for _, c := range r.Clues {
		if c.Round == r.CurrentRound {
			clues = append(clues, c)
		}
	}

	return clues
}

// mapPlayers 返回对每个玩家应用 fn 后的新玩家切片
func (r Room) mapPlayers(fn func(Player) Player) []Player {
	players := make([]Player, len(r.Players))
	for i, p := range r.Players {
		players[i] = fn(p)
	}

	return players
}
