package words

var nlCategories = []Category{
	{
		ID:    "animals",
		Name:  "Dieren",
		Emoji: "🐾",
		Words: []string{
			"olifant", "giraffe", "pinguïn", "dolfijn", "kangoeroe",
			"octopus", "vlinder", "krokodil", "flamingo", "egel",
			"koala", "luipaard", "panda", "wasbeer", "zebra",
			"gorilla", "jachtluipaard", "pauw", "nijlpaard", "gordeldier",
			"adelaar", "haai", "schildpad", "kameleon", "wolf",
			"beer", "leeuw", "tijger", "slang", "uil",
		},
	},
	{
		ID:    "food",
		Name:  "Eten",
		Emoji: "🍕",
		Words: []string{
			"pizza", "hamburger", "spaghetti", "sushi", "taco",
			"pannenkoeken", "chocolade", "watermeloen", "ananas", "avocado",
			"croissant", "burrito", "lasagne", "taart", "pretzel",
			"popcorn", "empanada", "wafel", "boterham", "nachos",
			"paella", "stroopwafel", "bitterballen", "poffertjes", "ijs",
			"pudding", "salade", "soep", "rijst", "kip",
		},
	},
	{
		ID:    "places",
		Name:  "Plaatsen",
		Emoji: "🏖️",
		Words: []string{
			"strand", "berg", "bibliotheek", "ziekenhuis", "vliegveld",
			"museum", "stadion", "restaurant", "casino", "dierentuin",
			"park", "bioscoop", "theater", "kerk", "supermarkt",
			"school", "universiteit", "sportschool", "zwembad", "tuin",
			"plein", "markt", "station", "haven", "vuurtoren",
			"kasteel", "paleis", "piramide", "grot", "vulkaan",
		},
	},
	{
		ID:    "professions",
		Name:  "Beroepen",
		Emoji: "👨‍⚕️",
		Words: []string{
			"dokter", "brandweerman", "astronaut", "kok", "piloot",
			"leraar", "detective", "architect", "chirurg", "muzikant",
			"advocaat", "politieagent", "dierenarts", "journalist", "ingenieur",
			"tandarts", "verpleegster", "fotograaf", "schilder", "acteur",
			"zanger", "danser", "schrijver", "wetenschapper", "programmeur",
			"monteur", "elektricien", "timmerman", "bakker", "tuinman",
		},
	},
	{
		ID:    "sports",
		Name:  "Sport",
		Emoji: "⚽",
		Words: []string{
			"voetbal", "basketbal", "tennis", "zwemmen", "honkbal",
			"volleybal", "golf", "boksen", "fietsen", "atletiek",
			"surfen", "skiën", "schaatsen", "karate", "judo",
			"hockey", "rugby", "cricket", "badminton", "tafeltennis",
			"klimmen", "parachutespringen", "duiken", "zeilen", "roeien",
			"gymnastiek", "worstelen", "schermen", "polo", "paardrijden",
		},
	},
	{
		ID:    "objects",
		Name:  "Voorwerpen",
		Emoji: "🔧",
		Words: []string{
			"telefoon", "computer", "televisie", "klok", "lamp",
			"stoel", "tafel", "bed", "spiegel", "raam",
			"deur", "trap", "lift", "fiets", "auto",
			"vliegtuig", "boot", "trein", "motor", "skateboard",
			"gitaar", "piano", "drumstel", "viool", "fluit",
			"camera", "boek", "potlood", "schaar", "paraplu",
		},
	},
	{
		ID:    "nature",
		Name:  "Natuur",
		Emoji: "🌳",
		Words: []string{
			"boom", "bloem", "rivier", "meer", "oceaan",
			"bos", "jungle", "woestijn", "eiland", "waterval",
			"regenboog", "wolk", "zon", "maan", "ster",
			"regen", "sneeuw", "donder", "bliksem", "tornado",
			"aardbeving", "tsunami", "gletsjer", "noorderlicht", "zonsopgang",
			"zonsondergang", "koraal", "zeewier", "paddenstoel", "cactus",
		},
	},
}
