// Package words 提供静态的内置词库，实现核心消费的外部词库能力。
// 数据是只读的，可以在任意多个房间间安全复用
package words

import (
	"math/rand/v2"
	"strings"
)

// 词语分类
type Category struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Emoji string   `json:"emoji"`
	Words []string `json:"-"`
}

// 合成的"全部"分类，抽词时从所有分类中随机选取
const CATEGORY_ALL = "all"

const DEFAULT_LOCALE = "en"

var allCategoryNames = map[string]string{
	"en": "All",
	"es": "Todas",
	"de": "Alle",
	"nl": "Alles",
}

// StaticProvider 是内置词库的实现
type StaticProvider struct {
	categoriesByLocale map[string][]Category
	hintsByLocale      map[string]map[string][]string
}

func NewStaticProvider() *StaticProvider {
	return &StaticProvider{
		categoriesByLocale: map[string][]Category{
			"en": enCategories,
			"es": esCategories,
			"de": deCategories,
			"nl": nlCategories,
		},
		hintsByLocale: map[string]map[string][]string{
			"en": enHints,
			"es": esHints,
		},
	}
}

func (sp *StaticProvider) localeCategories(locale string) []Category {
	if cats, ok := sp.categoriesByLocale[locale]; ok {
		return cats
	}

	return sp.categoriesByLocale[DEFAULT_LOCALE]
}

// Categories 返回指定语言的分类列表（不含词语本身），
// 首位固定是合成的"全部"分类
func (sp *StaticProvider) Categories(locale string) []Category {
	cats := sp.localeCategories(locale)

	name, ok := allCategoryNames[locale]
	if !ok {
		name = allCategoryNames[DEFAULT_LOCALE]
	}

	result := make([]Category, 0, len(cats)+1)
	result = append(result, Category{ID: CATEGORY_ALL, Name: name, Emoji: "🎲"})
	result = append(result, cats...)

	return result
}

// RandomWord 从分类中随机抽取一个谜底词
func (sp *StaticProvider) RandomWord(locale, category string) (string, bool) {
	cats := sp.localeCategories(locale)

	if category == CATEGORY_ALL {
		cat := cats[rand.IntN(len(cats))]
		return cat.Words[rand.IntN(len(cat.Words))], true
	}

	for _, cat := range cats {
		if cat.ID == category {
			return cat.Words[rand.IntN(len(cat.Words))], true
		}
	}

	return "", false
}

// HintWord 为谜底词返回一个人工挑选的提示词。
// 提示词是体验、情绪或抽象概念，刻意不是同义词或组成部分，
// 并且永远不会与谜底词本身相同。
// 当前语言没有提示数据时回退到英语
func (sp *StaticProvider) HintWord(locale, category, secretWord string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(secretWord))

	hints, ok := sp.hintsByLocale[locale]
	if !ok {
		hints = sp.hintsByLocale[DEFAULT_LOCALE]
	}

	candidates := hints[key]
	if len(candidates) == 0 {
		candidates = sp.hintsByLocale[DEFAULT_LOCALE][key]
	}

	// 人工数据兜底：过滤掉与谜底词相同的提示
	usable := make([]string, 0, len(candidates))
	for _, h := range candidates {
		if !strings.EqualFold(h, key) {
			usable = append(usable, h)
		}
	}

	if len(usable) == 0 {
		return "", false
	}

	return usable[rand.IntN(len(usable))], true
}
