package words

var deCategories = []Category{
	{
		ID:    "animals",
		Name:  "Tiere",
		Emoji: "🐾",
		Words: []string{
			"elefant", "giraffe", "pinguin", "delfin", "känguru",
			"oktopus", "schmetterling", "krokodil", "flamingo", "igel",
			"koala", "leopard", "panda", "waschbär", "zebra",
			"gorilla", "gepard", "pfau", "nilpferd", "gürteltier",
			"adler", "hai", "schildkröte", "chamäleon", "wolf",
			"bär", "löwe", "tiger", "schlange", "eule",
		},
	},
	{
		ID:    "food",
		Name:  "Essen",
		Emoji: "🍕",
		Words: []string{
			"pizza", "hamburger", "spaghetti", "sushi", "taco",
			"pfannkuchen", "schokolade", "wassermelone", "ananas", "avocado",
			"croissant", "burrito", "lasagne", "torte", "brezel",
			"popcorn", "döner", "waffel", "butterbrot", "nachos",
			"paella", "currywurst", "schnitzel", "sauerkraut", "eis",
			"pudding", "salat", "suppe", "reis", "hähnchen",
		},
	},
	{
		ID:    "places",
		Name:  "Orte",
		Emoji: "🏖️",
		Words: []string{
			"strand", "berg", "bibliothek", "krankenhaus", "flughafen",
			"museum", "stadion", "restaurant", "casino", "zoo",
			"park", "kino", "theater", "kirche", "supermarkt",
			"schule", "universität", "fitnessstudio", "schwimmbad", "garten",
			"platz", "markt", "bahnhof", "hafen", "leuchtturm",
			"schloss", "palast", "pyramide", "höhle", "vulkan",
		},
	},
	{
		ID:    "professions",
		Name:  "Berufe",
		Emoji: "👨‍⚕️",
		Words: []string{
			"arzt", "feuerwehrmann", "astronaut", "koch", "pilot",
			"lehrer", "detektiv", "architekt", "chirurg", "musiker",
			"anwalt", "polizist", "tierarzt", "journalist", "ingenieur",
			"zahnarzt", "krankenschwester", "fotograf", "maler", "schauspieler",
			"sänger", "tänzer", "schriftsteller", "wissenschaftler", "programmierer",
			"mechaniker", "elektriker", "tischler", "bäcker", "gärtner",
		},
	},
	{
		ID:    "sports",
		Name:  "Sport",
		Emoji: "⚽",
		Words: []string{
			"fußball", "basketball", "tennis", "schwimmen", "baseball",
			"volleyball", "golf", "boxen", "radfahren", "leichtathletik",
			"surfen", "skifahren", "schlittschuhlaufen", "karate", "judo",
			"hockey", "rugby", "cricket", "badminton", "tischtennis",
			"klettern", "fallschirmspringen", "tauchen", "segeln", "rudern",
			"turnen", "ringen", "fechten", "polo", "reiten",
		},
	},
	{
		ID:    "objects",
		Name:  "Gegenstände",
		Emoji: "🔧",
		Words: []string{
			"telefon", "computer", "fernseher", "uhr", "lampe",
			"stuhl", "tisch", "bett", "spiegel", "fenster",
			"tür", "treppe", "aufzug", "fahrrad", "auto",
			"flugzeug", "boot", "zug", "motorrad", "skateboard",
			"gitarre", "klavier", "schlagzeug", "geige", "flöte",
			"kamera", "buch", "bleistift", "schere", "regenschirm",
		},
	},
	{
		ID:    "nature",
		Name:  "Natur",
		Emoji: "🌳",
		Words: []string{
			"baum", "blume", "fluss", "see", "ozean",
			"wald", "dschungel", "wüste", "insel", "wasserfall",
			"regenbogen", "wolke", "sonne", "mond", "stern",
			"regen", "schnee", "donner", "blitz", "tornado",
			"erdbeben", "tsunami", "gletscher", "nordlicht", "sonnenaufgang",
			"sonnenuntergang", "koralle", "seetang", "pilz", "kaktus",
		},
	},
}
