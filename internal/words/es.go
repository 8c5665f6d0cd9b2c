package words

var esCategories = []Category{
	{
		ID:    "animals",
		Name:  "Animales",
		Emoji: "🐾",
		Words: []string{
			"elefante", "jirafa", "pingüino", "delfín", "canguro",
			"pulpo", "mariposa", "cocodrilo", "flamenco", "erizo",
			"koala", "leopardo", "panda", "mapache", "cebra",
			"gorila", "guepardo", "pavo real", "hipopótamo", "armadillo",
			"águila", "tiburón", "tortuga", "camaleón", "lobo",
			"oso", "león", "tigre", "serpiente", "búho",
		},
	},
	{
		ID:    "food",
		Name:  "Comida",
		Emoji: "🍕",
		Words: []string{
			"pizza", "hamburguesa", "espagueti", "sushi", "tacos",
			"pancakes", "chocolate", "sandía", "piña", "aguacate",
			"croissant", "burrito", "lasaña", "pastel", "pretzel",
			"palomitas", "empanada", "waffle", "sándwich", "nachos",
			"paella", "ceviche", "arepa", "churros", "helado",
			"flan", "ensalada", "sopa", "arroz", "pollo",
		},
	},
	{
		ID:    "places",
		Name:  "Lugares",
		Emoji: "🏖️",
		Words: []string{
			"playa", "montaña", "biblioteca", "hospital", "aeropuerto",
			"museo", "estadio", "restaurante", "casino", "zoológico",
			"parque", "cine", "teatro", "iglesia", "supermercado",
			"escuela", "universidad", "gimnasio", "piscina", "jardín",
			"plaza", "mercado", "estación", "puerto", "faro",
			"castillo", "palacio", "pirámide", "cueva", "volcán",
		},
	},
	{
		ID:    "professions",
		Name:  "Profesiones",
		Emoji: "👨‍⚕️",
		Words: []string{
			"doctor", "bombero", "astronauta", "chef", "piloto",
			"maestro", "detective", "arquitecto", "cirujano", "músico",
			"abogado", "policía", "veterinario", "periodista", "ingeniero",
			"dentista", "enfermero", "fotógrafo", "pintor", "actor",
			"cantante", "bailarín", "escritor", "científico", "programador",
			"mecánico", "electricista", "carpintero", "panadero", "jardinero",
		},
	},
	{
		ID:    "sports",
		Name:  "Deportes",
		Emoji: "⚽",
		Words: []string{
			"fútbol", "baloncesto", "tenis", "natación", "béisbol",
			"voleibol", "golf", "boxeo", "ciclismo", "atletismo",
			"surf", "esquí", "patinaje", "karate", "judo",
			"hockey", "rugby", "cricket", "bádminton", "ping pong",
			"escalada", "paracaidismo", "buceo", "vela", "remo",
			"gimnasia", "lucha", "esgrima", "polo", "equitación",
		},
	},
	{
		ID:    "objects",
		Name:  "Objetos",
		Emoji: "🔧",
		Words: []string{
			"teléfono", "computadora", "televisión", "reloj", "lámpara",
			"silla", "mesa", "cama", "espejo", "ventana",
			"puerta", "escalera", "ascensor", "bicicleta", "carro",
			"avión", "barco", "tren", "moto", "patineta",
			"guitarra", "piano", "tambor", "violín", "flauta",
			"cámara", "libro", "lápiz", "tijeras", "paraguas",
		},
	},
	{
		ID:    "nature",
		Name:  "Naturaleza",
		Emoji: "🌳",
		Words: []string{
			"árbol", "flor", "río", "lago", "océano",
			"bosque", "selva", "desierto", "isla", "cascada",
			"arcoíris", "nube", "sol", "luna", "estrella",
			"lluvia", "nieve", "trueno", "relámpago", "tornado",
			"terremoto", "maremoto", "glaciar", "aurora", "amanecer",
			"atardecer", "coral", "alga", "hongo", "cactus",
		},
	},
}
