package game

// WordProvider 是外部词库能力，核心只消费不实现。
// 实现必须是只读且可在多个房间间安全复用的
type WordProvider interface {
	// RandomWord 从指定语言和分类中抽取一个谜底词，分类不存在时返回 false
	RandomWord(locale, category string) (string, bool)

	// HintWord 为谜底词生成一个给卧底的提示词，
	// 提示词永远不会与谜底词相同（不区分大小写）
	HintWord(locale, category, secretWord string) (string, bool)
}
