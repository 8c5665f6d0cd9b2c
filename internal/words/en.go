package words

var enCategories = []Category{
	{
		ID:    "animals",
		Name:  "Animals",
		Emoji: "🐾",
		Words: []string{
			"elephant", "giraffe", "penguin", "dolphin", "kangaroo",
			"octopus", "butterfly", "crocodile", "flamingo", "hedgehog",
			"koala", "leopard", "panda", "raccoon", "zebra",
			"gorilla", "cheetah", "peacock", "hippopotamus", "armadillo",
			"eagle", "shark", "turtle", "chameleon", "wolf",
			"bear", "lion", "tiger", "snake", "owl",
		},
	},
	{
		ID:    "food",
		Name:  "Food",
		Emoji: "🍕",
		Words: []string{
			"pizza", "hamburger", "spaghetti", "sushi", "tacos",
			"pancakes", "chocolate", "watermelon", "pineapple", "avocado",
			"croissant", "burrito", "lasagna", "cake", "pretzel",
			"popcorn", "empanada", "waffle", "sandwich", "nachos",
			"paella", "ceviche", "doughnut", "churros", "ice cream",
			"pudding", "salad", "soup", "rice", "chicken",
		},
	},
	{
		ID:    "places",
		Name:  "Places",
		Emoji: "🏖️",
		Words: []string{
			"beach", "mountain", "library", "hospital", "airport",
			"museum", "stadium", "restaurant", "casino", "zoo",
			"park", "cinema", "theater", "church", "supermarket",
			"school", "university", "gym", "pool", "garden",
			"plaza", "market", "station", "harbor", "lighthouse",
			"castle", "palace", "pyramid", "cave", "volcano",
		},
	},
	{
		ID:    "professions",
		Name:  "Professions",
		Emoji: "👨‍⚕️",
		Words: []string{
			"doctor", "firefighter", "astronaut", "chef", "pilot",
			"teacher", "detective", "architect", "surgeon", "musician",
			"lawyer", "police officer", "veterinarian", "journalist", "engineer",
			"dentist", "nurse", "photographer", "painter", "actor",
			"singer", "dancer", "writer", "scientist", "programmer",
			"mechanic", "electrician", "carpenter", "baker", "gardener",
		},
	},
	{
		ID:    "sports",
		Name:  "Sports",
		Emoji: "⚽",
		Words: []string{
			"soccer", "basketball", "tennis", "swimming", "baseball",
			"volleyball", "golf", "boxing", "cycling", "athletics",
			"surfing", "skiing", "skating", "karate", "judo",
			"hockey", "rugby", "cricket", "badminton", "ping pong",
			"climbing", "skydiving", "diving", "sailing", "rowing",
			"gymnastics", "wrestling", "fencing", "polo", "horseback riding",
		},
	},
	{
		ID:    "objects",
		Name:  "Objects",
		Emoji: "🔧",
		Words: []string{
			"phone", "computer", "television", "clock", "lamp",
			"chair", "table", "bed", "mirror", "window",
			"door", "stairs", "elevator", "bicycle", "car",
			"airplane", "boat", "train", "motorcycle", "skateboard",
			"guitar", "piano", "drums", "violin", "flute",
			"camera", "book", "pencil", "scissors", "umbrella",
		},
	},
	{
		ID:    "nature",
		Name:  "Nature",
		Emoji: "🌳",
		Words: []string{
			"tree", "flower", "river", "lake", "ocean",
			"forest", "jungle", "desert", "island", "waterfall",
			"rainbow", "cloud", "sun", "moon", "star",
			"rain", "snow", "thunder", "lightning", "tornado",
			"earthquake", "tsunami", "glacier", "aurora", "sunrise",
			"sunset", "coral", "seaweed", "mushroom", "cactus",
		},
	},
}
