package words

// 西语词库的卧底提示词，筛选原则与英语版一致：
// 提示是体验、情绪或抽象概念，不是同义词、翻译或组成部分
var esHints = map[string][]string{
	// animals
	"elefante":  {"memoria", "pesado", "manada"},
	"jirafa":    {"alcanzar", "elegante", "manchas"},
	"pingüino":  {"frío", "esmoquin", "colonia"},
	"delfín":    {"juguetón", "saltos", "inteligente"},
	"canguro":   {"brincos", "cría", "lejano"},
	"pulpo":     {"flexible", "tinta", "escondite"},
	"mariposa":  {"transformación", "delicada", "efímera"},
	"cocodrilo": {"paciencia", "antiguo", "acecho"},
	"flamenco":  {"equilibrio", "rosa", "posando"},
	"cebra":     {"rayas", "manada", "cruce"},
	"gorila":    {"fuerza", "pecho", "familia"},
	"guepardo":  {"velocidad", "manchas", "persecución"},
	"pavo real": {"presumir", "vanidad", "colores"},
	"águila":    {"planear", "vista aguda", "libertad"},
	"tiburón":   {"miedo", "aleta", "rondando"},
	"tortuga":   {"lenta", "caparazón", "paciencia"},
	"lobo":      {"aullido", "manada", "luna llena"},
	"oso":       {"hibernación", "miel", "gruñido"},
	"león":      {"orgullo", "rugido", "melena"},
	"tigre":     {"rayas", "sigilo", "feroz"},
	"serpiente": {"reptar", "muda", "siseo"},
	"búho":      {"noche", "sabiduría", "silencioso"},
	"panda":     {"perezoso", "bambú", "contraste"},
	"koala":     {"dormilón", "abrazado", "eucalipto"},
	// food
	"pizza":       {"compartir", "viernes", "reparto"},
	"hamburguesa": {"rápida", "apilada", "autoservicio"},
	"espagueti":   {"enrollar", "salsa", "manchas"},
	"sushi":       {"palillos", "fresco", "rollitos"},
	"tacos":       {"callejero", "picante", "fiesta"},
	"chocolate":   {"antojo", "dulce", "derretido"},
	"sandía":      {"verano", "semillas", "refrescante"},
	"piña":        {"tropical", "espinosa", "corona"},
	"aguacate":    {"cremoso", "tostada", "moda"},
	"churros":     {"feria", "azúcar", "mojar"},
	"helado":      {"verano", "derretirse", "cucurucho"},
	"paella":      {"domingo", "familia", "azafrán"},
	"flan":        {"tembloroso", "caramelo", "abuela"},
	"sopa":        {"caliente", "resfriado", "cuchara"},
	"palomitas":   {"película", "crujiente", "estallido"},
	"empanada":    {"horno", "relleno", "merienda"},
	// places
	"playa":        {"arena", "olas", "vacaciones"},
	"montaña":      {"cumbre", "esfuerzo", "vistas"},
	"biblioteca":   {"silencio", "préstamo", "estanterías"},
	"hospital":     {"espera", "batas", "urgencias"},
	"aeropuerto":   {"espera", "estresante", "madrugada"},
	"museo":        {"silencio", "arte", "pasado"},
	"estadio":      {"multitud", "cánticos", "gradas"},
	"restaurante":  {"reserva", "carta", "propina"},
	"casino":       {"apuestas", "suerte", "fichas"},
	"zoológico":    {"jaulas", "niños", "domingo"},
	"cine":         {"oscuridad", "pantalla", "butacas"},
	"iglesia":      {"campanas", "bancos", "domingo"},
	"supermercado": {"carrito", "cola", "ofertas"},
	"escuela":      {"recreo", "pizarra", "infancia"},
	"gimnasio":     {"sudor", "propósitos", "pesas"},
	"faro":         {"guía", "costa", "tormenta"},
	"castillo":     {"murallas", "medieval", "leyendas"},
	"volcán":       {"erupción", "humo", "dormido"},
	// professions
	"doctor":      {"consulta", "recetas", "bata"},
	"bombero":     {"valentía", "sirena", "humo"},
	"astronauta":  {"ingravidez", "despegue", "sueño"},
	"chef":        {"delantal", "sabores", "gritos"},
	"piloto":      {"altura", "uniforme", "turbulencias"},
	"maestro":     {"paciencia", "pizarra", "vocación"},
	"detective":   {"pistas", "misterio", "lupa"},
	"policía":     {"sirena", "orden", "placa"},
	"veterinario": {"mascotas", "vacunas", "cariño"},
	"periodista":  {"preguntas", "titulares", "plazos"},
	"dentista":    {"miedo", "sillón", "enjuague"},
	"fotógrafo":   {"instantes", "luz", "enfoque"},
	"cantante":    {"escenario", "micrófono", "aplausos"},
	"científico":  {"experimentos", "curiosidad", "bata"},
	"panadero":    {"madrugada", "harina", "horno"},
	// sports
	"fútbol":     {"goles", "afición", "domingo"},
	"baloncesto": {"altura", "canasta", "rebote"},
	"tenis":      {"saque", "arcilla", "peloteo"},
	"natación":   {"brazadas", "cloro", "carriles"},
	"boxeo":      {"guantes", "cuadrilátero", "asaltos"},
	"ciclismo":   {"pedalear", "pelotón", "cuestas"},
	"surf":       {"olas", "equilibrio", "espera"},
	"esquí":      {"nieve", "pendiente", "invierno"},
	"golf":       {"paciencia", "hoyos", "césped"},
	"escalada":   {"altura", "agarre", "vértigo"},
	"buceo":      {"burbujas", "profundidad", "silencio"},
	// objects
	"teléfono":    {"llamadas", "bolsillo", "notificaciones"},
	"computadora": {"teclado", "pantalla", "trabajo"},
	"reloj":       {"puntualidad", "muñeca", "tictac"},
	"lámpara":     {"lectura", "noche", "interruptor"},
	"espejo":      {"reflejo", "vanidad", "baño"},
	"bicicleta":   {"pedales", "infancia", "equilibrio"},
	"guitarra":    {"cuerdas", "fogata", "serenata"},
	"piano":       {"teclas", "elegancia", "recital"},
	"cámara":      {"recuerdos", "disparo", "viajes"},
	"libro":       {"páginas", "evasión", "noches"},
	"paraguas":    {"lluvia", "olvidado", "viento"},
	"tijeras":     {"cortar", "papel", "peluquería"},
	// nature
	"árbol":    {"sombra", "raíces", "otoño"},
	"flor":     {"primavera", "aroma", "regalo"},
	"río":      {"corriente", "orilla", "serpentear"},
	"océano":   {"inmensidad", "sal", "horizonte"},
	"desierto": {"sed", "dunas", "silencio"},
	"isla":     {"aislamiento", "paraíso", "náufrago"},
	"cascada":  {"rugido", "bruma", "salto"},
	"arcoíris": {"lluvia", "colores", "suerte"},
	"luna":     {"noche", "mareas", "llena"},
	"estrella": {"deseos", "brillo", "lejana"},
	"nieve":    {"invierno", "silencio", "copos"},
	"trueno":   {"tormenta", "susto", "retumbar"},
	"tornado":  {"giros", "destrucción", "aviso"},
	"glaciar":  {"hielo", "lento", "azul"},
	"cactus":   {"espinas", "sequía", "resistente"},
}
