package words

// 给卧底的人工提示词，遵循"三重过滤"原则：
//  1. 与谜底相关但不定义谜底
//  2. 意图明确但解读空间大
//  3. 绝不直接暴露谜底词
//
// 提示是体验、情绪或抽象概念，而不是同义词、翻译或组成部分。
// 比如 airport 的合法提示是 waiting、stressful、early morning，
// 而 plane、terminal、ticket 都是非法的
var enHints = map[string][]string{
	// animals
	"elephant":     {"memory", "gentle", "heavy"},
	"giraffe":      {"reaching", "graceful", "spotted"},
	"penguin":      {"waddling", "formal", "huddling"},
	"dolphin":      {"playful", "clever", "leaping"},
	"kangaroo":     {"bouncing", "pouch", "outback"},
	"octopus":      {"flexible", "hiding", "ink"},
	"butterfly":    {"transformation", "delicate", "fleeting"},
	"crocodile":    {"patience", "ancient", "lurking"},
	"flamingo":     {"balance", "pink", "posing"},
	"koala":        {"sleepy", "clinging", "eucalyptus"},
	"panda":        {"lazy", "contrast", "bamboo"},
	"zebra":        {"stripes", "herd", "crossing"},
	"gorilla":      {"strength", "chest", "family"},
	"cheetah":      {"sprint", "spots", "chase"},
	"peacock":      {"showing off", "vanity", "colors"},
	"eagle":        {"soaring", "sharp eyes", "freedom"},
	"shark":        {"fear", "fins", "circling"},
	"turtle":       {"slow", "shell", "patience"},
	"wolf":         {"howling", "pack", "moonlight"},
	"bear":         {"hibernation", "honey", "growling"},
	"lion":         {"pride", "roar", "mane"},
	"tiger":        {"stripes", "stealth", "fierce"},
	"snake":        {"slithering", "shedding", "hissing"},
	"owl":          {"night", "wisdom", "silent"},
	// food
	"pizza":        {"sharing", "friday night", "delivery"},
	"hamburger":    {"fast", "stacked", "drive-through"},
	"spaghetti":    {"twirling", "messy", "italian"},
	"sushi":        {"raw", "precision", "chopsticks"},
	"tacos":        {"tuesday", "folded", "street food"},
	"pancakes":     {"weekend morning", "stacked", "syrup"},
	"chocolate":    {"comfort", "guilty", "melting"},
	"watermelon":   {"summer", "seeds", "picnic"},
	"pineapple":    {"tropical", "spiky", "controversial"},
	"avocado":      {"trendy", "ripeness", "brunch"},
	"croissant":    {"buttery", "flaky", "paris"},
	"cake":         {"celebration", "candles", "layers"},
	"popcorn":      {"movies", "popping", "buttery"},
	"ice cream":    {"summer", "melting", "cone"},
	"soup":         {"warming", "sick days", "spoon"},
	// places
	"beach":        {"relaxing", "sandy", "waves"},
	"mountain":     {"climbing", "thin air", "summit"},
	"library":      {"silence", "whispering", "borrowing"},
	"hospital":     {"waiting", "nervous", "recovery"},
	"airport":      {"waiting", "stressful", "early morning"},
	"museum":       {"quiet", "history", "wandering"},
	"stadium":      {"cheering", "crowds", "roaring"},
	"restaurant":   {"reservation", "menu", "tipping"},
	"casino":       {"luck", "risk", "neon"},
	"zoo":          {"cages", "families", "feeding time"},
	"cinema":       {"darkness", "previews", "popcorn smell"},
	"school":       {"bells", "homework", "childhood"},
	"gym":          {"sweating", "effort", "mirrors"},
	"pool":         {"splashing", "chlorine", "summer"},
	"castle":       {"medieval", "towers", "fairy tales"},
	"volcano":      {"eruption", "danger", "smoking"},
	// professions
	"doctor":       {"trust", "waiting room", "diagnosis"},
	"firefighter":  {"bravery", "sirens", "rescue"},
	"astronaut":    {"floating", "distance", "dreams"},
	"chef":         {"pressure", "tasting", "kitchen heat"},
	"pilot":        {"altitude", "announcements", "uniform"},
	"teacher":      {"patience", "chalk", "grading"},
	"detective":    {"clues", "suspicion", "mystery"},
	"musician":     {"practice", "stage", "rhythm"},
	"programmer":   {"coffee", "bugs", "late nights"},
	// sports
	"soccer":       {"goals", "world cup", "grass"},
	"basketball":   {"bouncing", "tall", "hoop"},
	"tennis":       {"back and forth", "serving", "love"},
	"swimming":     {"lanes", "breathing", "goggles"},
	"boxing":       {"rounds", "gloves", "bell"},
	"surfing":      {"balance", "waves", "waiting"},
	"climbing":     {"grip", "heights", "chalk dust"},
	// objects
	"phone":        {"addictive", "buzzing", "pocket"},
	"computer":     {"screens", "typing", "restart"},
	"clock":        {"ticking", "punctual", "hands"},
	"mirror":       {"reflection", "vanity", "mornings"},
	"umbrella":     {"forgotten", "rainy days", "inverted"},
	"guitar":       {"strumming", "campfire", "strings"},
	"camera":       {"memories", "flash", "smile"},
	"book":         {"pages", "escape", "bedtime"},
	// nature
	"rainbow":      {"after rain", "colors", "luck"},
	"ocean":        {"vast", "salty", "horizon"},
	"desert":       {"thirst", "endless", "heat"},
	"waterfall":    {"roaring", "mist", "plunging"},
	"aurora":       {"northern", "dancing lights", "rare"},
	"lightning":    {"sudden", "flash", "counting"},
	"snow":         {"silence", "white", "cold"},
}
