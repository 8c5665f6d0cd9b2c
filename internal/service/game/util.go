package game

import (
	"encoding/json"
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"
)

// 房间码字符集，去掉了容易混淆的 0、O、I、1、L
const ROOM_CODE_ALPHABET = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

const ROOM_CODE_LENGTH = 6

// GenID 生成玩家 ID，取 UUIDv7 的尾部短格式
func GenID() string {
	id, err := uuid.NewV7()
	if err != nil {
		panic("Failed to generate UUID: " + err.Error())
	}

	s := id.String()

	return s[len(s)-8:]
}

// GenRoomCode 生成 6 位可口头分享的房间码
func GenRoomCode() string {
	code := make([]byte, ROOM_CODE_LENGTH)
	for i := range code {
		code[i] = ROOM_CODE_ALPHABET[rand.IntN(len(ROOM_CODE_ALPHABET))]
	}

	return string(code)
}

// NormalizeRoomCode 将客户端提供的房间码转为规范大写形式。
// 长度或字符不符合房间码格式时返回 false
func NormalizeRoomCode(code string) (string, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))

	if len(code) != ROOM_CODE_LENGTH {
		return "", false
	}

	for i := 0; i < len(code); i++ {
		if !strings.ContainsRune(ROOM_CODE_ALPHABET, rune(code[i])) {
			return "", false
		}
	}

	return code, true
}

// 玩家头像配色，与前端调色板保持一致
var avatarColors = []string{
	"#EF4444", "#F97316", "#F59E0B", "#84CC16", "#22C55E",
	"#14B8A6", "#06B6D4", "#3B82F6", "#6366F1", "#8B5CF6",
	"#A855F7", "#EC4899", "#F43F5E", "#78716C", "#0EA5E9",
}

func RandomAvatarColor() string {
	return avatarColors[rand.IntN(len(avatarColors))]
}

// NormalizeWord 将线索和谜底统一为小写去空白的形式再比较
func NormalizeWord(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

func mustMarshal(v any) json.RawMessage {
	data, err := json.Marshal(v)
	if err != nil {
		panic("Failed to marshal: " + err.Error())
	}

	return data
}
