package game

import (
	"encoding/json"

	"go.uber.org/zap"
)

// 客户端请求类型
const (
	REQ_JOIN                 = "join"
	REQ_LEAVE                = "leave"
	REQ_START_GAME           = "start-game"
	REQ_SUBMIT_CLUE          = "submit-clue"
	REQ_CAST_VOTE            = "cast-vote"
	REQ_IMPOSTER_GUESS       = "imposter-guess"
	REQ_PLAY_AGAIN           = "play-again"
	REQ_RESET_GAME           = "reset-game"
	REQ_KICK_PLAYER          = "kick-player"
	REQ_UPDATE_SETTINGS      = "update-settings"
	REQ_INITIATE_WORD_CHANGE = "initiate-word-change"
	REQ_VOTE_WORD_CHANGE     = "vote-word-change"
)

type RequestWrapper struct {
	ReqType string          `json:"request_type"`
	Data    json.RawMessage `json:"data,omitempty"`
}

type JoinRequest struct {
	PlayerName string `json:"player_name"`
}

type StartGameRequest struct {
	Category string `json:"category"`
	Locale   string `json:"locale,omitempty"`
}

type SubmitClueRequest struct {
	Word string `json:"word"`
}

type CastVoteRequest struct {
	TargetID string `json:"target_id"`
}

type ImposterGuessRequest struct {
	Word string `json:"word"`
}

type KickPlayerRequest struct {
	PlayerID string `json:"player_id"`
}

type UpdateSettingsRequest struct {
	Settings SettingsPatch `json:"settings"`
}

type VoteWordChangeRequest struct {
	Vote bool `json:"vote"`
}

func tryUnwrap[T any](wrapper RequestWrapper, reqType string) *T {
	if wrapper.ReqType != reqType {
		return nil
	}

	var req T

	if err := json.Unmarshal(wrapper.Data, &req); err != nil {
		zap.L().Error(
			"Failed to unwrap request",
			zap.String("request_type", reqType),
			zap.Error(err),
		)

		return nil
	}

	return &req
}

func TryUnwrapJoinRequest(w RequestWrapper) *JoinRequest {
	return tryUnwrap[JoinRequest](w, REQ_JOIN)
}

func TryUnwrapStartGameRequest(w RequestWrapper) *StartGameRequest {
	return tryUnwrap[StartGameRequest](w, REQ_START_GAME)
}

func TryUnwrapSubmitClueRequest(w RequestWrapper) *SubmitClueRequest {
	return tryUnwrap[SubmitClueRequest](w, REQ_SUBMIT_CLUE)
}

func TryUnwrapCastVoteRequest(w RequestWrapper) *CastVoteRequest {
	return tryUnwrap[CastVoteRequest](w, REQ_CAST_VOTE)
}

func TryUnwrapImposterGuessRequest(w RequestWrapper) *ImposterGuessRequest {
	return tryUnwrap[ImposterGuessRequest](w, REQ_IMPOSTER_GUESS)
}

func TryUnwrapKickPlayerRequest(w RequestWrapper) *KickPlayerRequest {
	return tryUnwrap[KickPlayerRequest](w, REQ_KICK_PLAYER)
}

func TryUnwrapUpdateSettingsRequest(w RequestWrapper) *UpdateSettingsRequest {
	return tryUnwrap[UpdateSettingsRequest](w, REQ_UPDATE_SETTINGS)
}

func TryUnwrapVoteWordChangeRequest(w RequestWrapper) *VoteWordChangeRequest {
	return tryUnwrap[VoteWordChangeRequest](w, REQ_VOTE_WORD_CHANGE)
}

// 服务器响应类型
const (
	RESP_ERROR = "error"

	RESP_ROOM_STATE               = "room-state"
	RESP_PLAYER_JOINED            = "player-joined"
	RESP_PLAYER_LEFT              = "player-left"
	RESP_PLAYER_KICKED            = "player-kicked"
	RESP_ROOM_CLOSED              = "room-closed"
	RESP_PHASE_CHANGED            = "phase-changed"
	RESP_SETTINGS_UPDATED         = "settings-updated"
	RESP_WORD_CHANGE_VOTE_STARTED = "word-change-vote-started"
	RESP_WORD_CHANGE_VOTE_CAST    = "word-change-vote-cast"
	RESP_WORD_CHANGE_VOTE_RESULT  = "word-change-vote-result"
)

// 主持人断线导致房间关闭的原因标记
const ROOM_CLOSED_HOST_LEFT = "host-left"

type ResponseWrapper struct {
	RespType string `json:"response_type"`
	Data     any    `json:"data,omitempty"`
	ErrMsg   string `json:"error_message,omitempty"`
}

type RoomStateResponse struct {
	Room     Room   `json:"room"`
	PlayerID string `json:"player_id"`
}

type PlayerJoinedResponse struct {
	Player Player `json:"player"`
}

type PlayerLeftResponse struct {
	PlayerID string `json:"player_id"`
}

type PlayerKickedResponse struct {
	PlayerID string `json:"player_id"`
}

type RoomClosedResponse struct {
	Reason string `json:"reason"`
}

type PhaseChangedResponse struct {
	Phase Phase `json:"phase"`
	Data  any   `json:"data,omitempty"`
}

type SettingsUpdatedResponse struct {
	Settings Settings `json:"settings"`
}

type WordChangeVoteStartedResponse struct {
	InitiatorID   string `json:"initiator_id"`
	InitiatorName string `json:"initiator_name"`
}

type WordChangeVoteCastResponse struct {
	VoterID string `json:"voter_id"`
}

type WordChangeVoteResultResponse struct {
	Passed        bool `json:"passed"`
	NewHintsCount int  `json:"new_hints_count"`
}

func WrapResponse(respType string, data any) ResponseWrapper {
	return ResponseWrapper{
		RespType: respType,
		Data:     data,
	}
}

func WrapErrResponse(errMsg string) ResponseWrapper {
	return ResponseWrapper{
		RespType: RESP_ERROR,
		ErrMsg:   errMsg,
	}
}
