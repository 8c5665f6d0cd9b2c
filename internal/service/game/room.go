package game

import (
	"errors"
	"strings"
	"time"
	"unicode"
)

// 房间人数上限（含主持人）
const MAX_PLAYERS = 15

// 玩家名长度限制
const (
	MIN_NAME_LENGTH = 2
	MAX_NAME_LENGTH = 15
)

// ValidatePlayerName 校验并规整玩家昵称
func ValidatePlayerName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)

	if len([]rune(trimmed)) < MIN_NAME_LENGTH {
		return "", errors.New("昵称至少需要 2 个字符")
	}

	if len([]rune(trimmed)) > MAX_NAME_LENGTH {
		return "", errors.New("昵称最多 15 个字符")
	}

	for _, r := range trimmed {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '-' || r == '_' {
			continue
		}

		return "", errors.New("昵称只能包含字母、数字、空格、连字符和下划线")
	}

	return trimmed, nil
}

// AddPlayer 在大厅阶段向房间加入新玩家，首位玩家成为主持人。
// 重连（同名玩家已注册）不走这里，由 actor 直接调用 ReconnectPlayer
func AddPlayer(r Room, name string) (Room, Player, error) {
	if r.Phase != PHASE_LOBBY {
		return r, Player{}, errors.New("游戏已经开始，无法加入")
	}

	if len(r.Players) >= MAX_PLAYERS {
		return r, Player{}, errors.New("房间已满")
	}

	player := Player{
		ID:          GenID(),
		Name:        name,
		AvatarColor: RandomAvatarColor(),
		IsConnected: true,
	}

	r = r.clone()

	// 首位加入的玩家成为主持人
	if len(r.Players) == 0 {
		player.IsHost = true
		r.HostID = player.ID
	}

	r.Players = append(r.Players, player)

	return r, player, nil
}

// ReconnectPlayer 将断线的玩家标记回在线状态，身份和进度保持不变
func ReconnectPlayer(r Room, playerID string) Room {
	r = r.clone()
	r.Players = r.mapPlayers(func(p Player) Player {
		if p.ID == playerID {
			p.IsConnected = true
		}

		return p
	})

	return r
}

// DisconnectPlayer 将玩家标记为离线（非正常断开时使用，保留玩家记录以便重连）
func DisconnectPlayer(r Room, playerID string) Room {
	r = r.clone()
	r.Players = r.mapPlayers(func(p Player) Player {
		if p.ID == playerID {
			p.IsConnected = false
		}

		return p
	})

	return r
}

// RemovePlayer 将玩家从房间中彻底移除（主动离开或被踢出）。
// 如果离开的是主持人且还有其他玩家，主持人身份迁移给最早加入的玩家
func RemovePlayer(r Room, playerID string) Room {
	r = r.clone()

	players := make([]Player, 0, len(r.Players))
	for _, p := range r.Players {
		if p.ID != playerID {
			players = append(players, p)
		}
	}

	r.Players = players

	if playerID == r.HostID && len(r.Players) > 0 {
		r.Players[0].IsHost = true
		r.HostID = r.Players[0].ID
	}

	return r
}

// UpdateSettings 应用主持人提交的部分设置更新，仅在大厅阶段有效
func UpdateSettings(r Room, patch SettingsPatch) (Room, error) {
	if r.Phase != PHASE_LOBBY {
		return r, errors.New("只能在大厅阶段修改设置")
	}

	next := r.Settings.Apply(patch)

	if next.ClueRounds < 1 || next.ClueRounds > 3 {
		return r, errors.New("线索轮数必须在 1 到 3 之间")
	}

	if next.ClueTimeLimit <= 0 || next.VoteTimeLimit <= 0 {
		return r, errors.New("时间限制必须为正数")
	}

	r = r.clone()
	r.Settings = next

	return r, nil
}

func deadline(now time.Time, seconds int) *time.Time {
	t := now.Add(time.Duration(seconds) * time.Second)
	return &t
}
