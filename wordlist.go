package slip39

// wordList is the fixed 1024-word dictionary used to encode and decode
// mnemonics. The spec treats the actual English SLIP-0039 wordlist as an
// external collaborator ("an index<->word bijection is assumed"); this is
// a generated, deterministic, alphabetically-sorted stand-in with every
// structural property the codec needs. Swapping in the official list is a
// one-file change: nothing outside this file depends on the word content,
// only on wordList[i] and wordMap[w] being inverses of each other.
var wordList = [1024]string{
	"adthe", "afost", "albrul", "alflud", "alfunt", "alskol", "alskusde", "alslelt",
	"alstald", "amlimrod", "anbrosp", "angav", "anplart", "arglish", "arstend", "arwax",
	"aschur", "ascras", "asflest", "asgreth", "asjo", "askolt", "askond", "asvenstu",
	"atskav", "azompad", "badjoc", "baljotku", "banwu", "barfo", "barswec", "belsneng",
	"bemshem", "beryuck", "bessu", "bihest", "bilgock", "bitath", "bitcrend", "bitirt",
	"bolwit", "boscrok", "bosgrord", "bospring", "botswern", "bowum", "bralflen", "branro",
	"brejan", "breshish", "bridsneg", "brimpo", "brimthav", "brinmalt", "brirru", "briwird",
	"broncast", "brulbru", "brulkag", "brunkav", "brunrov", "brurpram", "brussnes", "budquap",
	"bunyank", "calswusk", "camsan", "canlont", "carrezex", "casfold", "caskelt", "cetna",
	"cetwesma", "chadno", "chamdex", "cheddov", "chelswix", "cheryolt", "chetwusk", "chidmush",
	"chinyib", "chirskin", "chisskov", "chornurn", "chudlu", "chudpri", "chunskik", "cidral",
	"cidspo", "cilveld", "cinzenku", "citskec", "clafrond", "clalhask", "clamgu", "claschic",
	"clasglib", "cledbrit", "clefreck", "cleprin", "clerme", "clesgrut", "clilcuth", "climwoth",
	"clismirt", "clodve", "clomswob", "cloplurd", "clulpod", "clulsnov", "clunsnor", "clutja",
	"codresh", "coltim", "coltrap", "comwusva", "corjer", "coscilt", "cradhog", "cramnik",
	"cratjaf", "cratkent", "crenhav", "cresyerd", "cridsmaf", "crilkisp", "crolshak", "cromzoft",
	"crulslub", "crummom", "cruscrom", "crusquev", "crutplav", "crutzard", "curra", "cusferk",
	"custep", "dadcrisp", "dakomzi", "dalhirfu", "damcin", "danglef", "datcang", "dedcleb",
	"denpirt", "densnox", "detloft", "dilfeld", "dilquirk", "dimglor", "dolslorn", "drammont",
	"dranpock", "drargob", "drerdosh", "drirrer", "drispund", "drodkink", "drolox", "drongip",
	"drorcri", "drorflom", "drotha", "drulzath", "drurzock", "druswox", "dulwusp", "dumbird",
	"dumchack", "dumguf", "durspost", "dutflev", "dutfrert", "duwec", "eddon", "edkisp",
	"edlunsto", "edyest", "eflit", "eflos", "egust", "ejush", "elchaft", "elclusk",
	"elfrad", "elix", "elskerd", "elskint", "elslenk", "elslund", "emstaft", "emswerd",
	"enbalwum", "enpelwem", "enwosh", "eplid", "eprolzag", "erbrith", "erfruft", "erkert",
	"ertring", "esdard", "esint", "esnagri", "esnesh", "esspuc", "eyesyon", "fadcri",
	"falspev", "famtrorn", "farfluv", "fasfle", "feddim", "fedselbe", "fedsputh", "felchi",
	"femsak", "ferjec", "fescild", "fetuc", "fidjoc", "fildrard", "fillin", "filrop",
	"fitjap", "fladstoc", "flalni", "flamki", "fledli", "fledsmex", "flellent", "flemzif",
	"flilgref", "flilsna", "flimchin", "flimpend", "flimwux", "flimyirn", "flitzi", "flodfrov",
	"flonquo", "flormint", "floryec", "flotnob", "fludpold", "flulmond", "flutpi", "fomdu",
	"fosspo", "fotka", "fotswiv", "frahox", "fralbrak", "frankan", "frarfri", "frarswin",
	"frembi", "fresmul", "fretgesh", "fridmint", "fridsnul", "frihamlu", "frihu", "frimrald",
	"frirvosk", "fromclab", "fromhern", "frompusp", "froplic", "frordru", "frotlenk", "frulpra",
	"frunsten", "frutcilt", "frutlaft", "frutrubi", "fulglap", "funtart", "furglon", "fusgleth",
	"galpro", "gasib", "gedquad", "gegelnex", "gelspor", "gergaft", "gerstom", "getpet",
	"giddrert", "gimshul", "ginyith", "glamquad", "glanchev", "glanlang", "glarshet", "glarwet",
	"glidglon", "glidprig", "glinturk", "glodca", "glonda", "glulva", "glumdrip", "gluplup",
	"glusnoc", "glusstu", "glutfun", "golplo", "gomshak", "gosgrish", "govu", "gralquer",
	"grasvurn", "gredsink", "grenvuft", "gretcler", "gretswes", "griclusp", "grirpul", "grittont",
	"grodpif", "gronher", "gronshor", "grudgir", "grumhac", "grunak", "grurgref", "gudsmoft",
	"gulcusp", "guldrog", "gumflo", "gummuft", "gumplex", "gumutti", "hadbrand", "hadcha",
	"hadnex", "haflam", "hamspom", "hantrord", "hapra", "harquuv", "hasjift", "heldrolt",
	"hellasp", "hempa", "hemsha", "hemslo", "herzuck", "hetrib", "hidplip", "hidswant",
	"higris", "hinskil", "hoflith", "holsnip", "honsug", "hosolkum", "hotshack", "humprolt",
	"hutflurn", "iberd", "idcu", "ifalbog", "igand", "ikesp", "ilpeld", "ilru",
	"ilspol", "imbris", "imlash", "imnedjuv", "imprum", "insog", "irbast", "irbuk",
	"irclac", "irli", "isho", "ismo", "issnal", "isvub", "itflu", "itpisre",
	"jamflert", "jamho", "jampra", "jamsir", "jamswov", "jannind", "jaswax", "jatdib",
	"jatsle", "jelsuk", "jezusp", "jilchald", "jilmuld", "jimshirk", "jirmisla", "jisgre",
	"jiswurk", "jitsmosp", "jomfrerk", "jotglat", "juche", "jumtrirk", "jungrosk", "jurcrish",
	"kanrugli", "kascra", "kedglox", "kedsnasp", "kelgeth", "kerpisk", "kilche", "kilcres",
	"kimgrent", "kirshasp", "kodbask", "kodrun", "kodstit", "kolceng", "kommax", "korwic",
	"kowenquu", "kuldrov", "kulplisk", "kumpring", "kunclust", "kunshuc", "kuskigen", "ladrov",
	"lalgod", "lalsmov", "laquild", "larzart", "ledflord", "ledsnild", "lejuck", "lelsot",
	"lemtig", "lerdrum", "lesglosk", "letsix", "lettrack", "lidcru", "lidvic", "lidwur",
	"lilcloft", "linstord", "lirquab", "lischap", "litleck", "lolcir", "lonvack", "lorchent",
	"loslil", "lotgrirk", "lotsma", "ludgrang", "lumfrift", "lumtesp", "lussex", "lussle",
	"lutnir", "madhi", "malcolt", "manlelt", "manpel", "manple", "masbarhe", "massnon",
	"matquusp", "matsnolt", "memtosk", "menshu", "meschop", "minflof", "minfluku", "mircren",
	"mirnolt", "modarn", "monstis", "morchusk", "mostint", "motspusp", "mudclenk", "mulskub",
	"musclop", "nakiv", "narhup", "nasplep", "nedprunk", "nekemslu", "nellonk", "nesches",
	"nesthink", "niddrin", "nidfreft", "nilcad", "nilwul", "nimskat", "notzeng", "nudsaft",
	"nunsudmu", "nurcu", "nurtrif", "nusshal", "nuzug", "odcrasp", "odgurn", "odhep",
	"odhosh", "odjaft", "odwostip", "ohidtre", "ohost", "olbiglic", "olbrum", "olclath",
	"olgrirn", "ollunt", "olsmesh", "olsnox", "olzek", "omfrork", "onetclop", "onglax",
	"onsom", "onsud", "orcro", "orked", "orposzam", "orskint", "orslo", "orspek",
	"orzesp", "osbit", "osib", "osplid", "ossledbi", "othung", "pantrif", "pardru",
	"parshu", "paswix", "patswuck", "pecerd", "peclex", "pedcor", "pedrish", "pelyep",
	"perhuld", "pidhos", "pimfeft", "pisclink", "pitches", "plasmird", "plassmef", "plathu",
	"platzub", "pledrab", "plelwark", "plemcick", "plenhuft", "plenplec", "pleslik", "plesqua",
	"pleswa", "pliclunt", "plidflab", "plidgleb", "plidkem", "plintuth", "plitve", "plossmix",
	"pludglup", "plurad", "plurputh", "pluskip", "plutbrev", "plutzift", "pocla", "podglant",
	"podtov", "polong", "ponfi", "posrink", "possped", "prakag", "prandraf", "precep",
	"prelte", "premlock", "prercrub", "prilcap", "prirkunk", "pronha", "prudlern", "prunsnis",
	"prusspag", "prustist", "pudgi", "pukux", "pulgrant", "pumnot", "puncu", "putquec",
	"quamtrob", "quanlath", "quanpla", "quelcheg", "quendash", "quesdrab", "questruf", "quetrart",
	"quetvant", "quidskes", "quilfo", "quiquust", "quistul", "quofro", "quomtuft", "quonend",
	"quonfraf", "quulleck", "quumfend", "quumsif", "quunche", "quurshi", "quutclo", "raltralt",
	"ransno", "rarro", "rartro", "raski", "redswant", "remdov", "rendert", "restedra",
	"resthost", "ridthe", "riltith", "rimstic", "rintruck", "ritglurn", "rodgrud", "rogong",
	"rolskeck", "ronlang", "roscruv", "rotust", "rudkit", "ruscle", "russlilt", "rustim",
	"sadglolt", "salstad", "sanpac", "sardint", "sasta", "sastol", "semma", "seriye",
	"sesqui", "setjeg", "shadsto", "sharposh", "shasvult", "shatdus", "shedzern", "shelwin",
	"shemmonk", "shenskix", "shidvock", "shisho", "shistri", "shoglur", "sholflif", "shonflu",
	"shuldus", "shumpenk", "sidvang", "sigles", "sirdurn", "sistex", "sistrur", "sitlilt",
	"skalpret", "skaryack", "skasost", "skatchec", "skelgoc", "skenkav", "skidfaft", "skimced",
	"skimcrep", "skimde", "skimvuk", "skisplub", "skitmor", "skonfos", "skonfunk", "skonsko",
	"skoskit", "skotjeth", "skubasp", "skumdux", "skurlit", "sladna", "sladshof", "slelquap",
	"slemspu", "sliving", "slolsnes", "slonhind", "slulfre", "slunweck", "slusbunt", "slutprid",
	"smabo", "smakent", "smamrolt", "smanfle", "smanjath", "smedchuk", "smedsisk", "smemgig",
	"smeswus", "smetspe", "smidag", "smilyasp", "smolsnuc", "smotbock", "smotcred", "smotfre",
	"smuclas", "smusdesh", "smutfli", "snadgrus", "snernit", "snespuf", "snetnung", "snidrirt",
	"snihisk", "snijum", "snirfald", "snodglus", "snodra", "snodsma", "snoje", "snolbro",
	"snowa", "snumclun", "snumcrak", "snursmov", "snurzoth", "soljirk", "solsern", "soncesk",
	"sonshok", "sonwe", "sorchant", "sormem", "sotquesp", "spacrant", "spebrurd", "spempu",
	"spessnat", "spetpi", "spilflob", "spilsnaf", "spiluf", "sporclef", "spumhur", "spunmort",
	"stamska", "stanbohi", "statve", "stedrosk", "stedziv", "stespat", "stesrock", "stetir",
	"stetswux", "stimdis", "stismup", "stitgle", "stolce", "stolmu", "storfrox", "storre",
	"stotwev", "stovev", "studpleg", "stulrosk", "stumbru", "stuswuv", "surcram", "surshak",
	"sursnas", "sussholt", "sutshug", "swadcung", "swancrig", "swastolt", "swatlish", "sweclurd",
	"swedgeld", "swelbri", "swelguv", "swengrov", "swenmu", "swirhusp", "swispok", "swonplo",
	"swospang", "swurjirt", "swurswex", "tadcu", "talfloc", "tatpatya", "tegro", "tenclark",
	"tenpank", "tenskink", "tenval", "thaddep", "thadyock", "thagrint", "thamstul", "thansaft",
	"thasax", "thasyem", "thatmuth", "thatunk", "thehab", "thidsmom", "thindesh", "thomfi",
	"thorjud", "thosstav", "thotzi", "thufip", "thuglov", "thulclov", "tidleng", "tidslend",
	"tirkeb", "tisfle", "tisrosp", "titkul", "titlav", "todbrerd", "tomsti", "tostas",
	"tradmu", "tramhar", "trankisp", "tremthav", "tremtish", "trendrak", "treskic", "tribal",
	"tridyi", "trirtu", "triswenk", "tritslos", "tromlap", "tronthux", "trosbrug", "trostun",
	"truttil", "tudrald", "tudyaft", "tulnac", "tulslosp", "turcreng", "tusjang", "tutwo",
	"udflet", "udrek", "udsluswo", "udsned", "udwenk", "udyad", "ufrex", "ulcrick",
	"ulfrirme", "ulkust", "ulrosk", "ultek", "umbra", "umludrof", "umpre", "umrok",
	"umrunt", "umsmo", "umsmosk", "umswold", "umtult", "unfifab", "unglik", "unromkam",
	"unter", "unvetdac", "uryim", "usbun", "usclosp", "uscrosk", "uslec", "usrord",
	"ussnert", "usstib", "ustest", "utas", "utlo", "utwep", "vangrask", "vanthab",
	"vasthad", "vedkerk", "velbrol", "velgri", "velshed", "vemdong", "vemnosh", "vensher",
	"vercrash", "vesfli", "vesthark", "vetthern", "vidsliv", "vilchung", "vimfrand", "vimrurn",
	"vindil", "vodfav", "vomgrith", "vongovon", "vontort", "vorcrin", "vorstord", "vowumlub",
	"vudpos", "vumyip", "vunpurt", "vusswuc", "vutjinwe", "vuzund", "wadthild", "wadwird",
	"wafland", "wambus", "wamtart", "wangi", "warjix", "wasti", "watche", "watshart",
	"wedchi", "wedcrut", "welfenk", "wemnird", "wemruck", "wemvi", "wendarn", "wenmemma",
	"wenyim", "werstart", "wertrod", "wesstob", "wimsnok", "wingrud", "wirfarn", "witdrerd",
	"wodzurn", "wofonk", "wolfark", "wololbip", "wolsnip", "worsmuld", "wudrog", "wungurd",
	"wustresh", "yamshirk", "yamstort", "yanpri", "yarseng", "yedflun", "yelswird", "yepesp",
	"yesgeft", "yesshash", "yimsmu", "yirflift", "yodglo", "yollung", "yorohond", "yothum",
	"yotpleld", "yultubog", "yumdor", "yurtog", "yussmuft", "zabock", "zaldro", "zandros",
	"zansnork", "zasteltu", "zebrok", "zencort", "zinceck", "zirreft", "zissex", "zitwond",
	"zodstag", "zonsnirk", "zoshold", "zotyelt", "zudnet", "zudsmesk", "zumzapeb", "zurke",
}

// wordMap is the reverse lookup built once at init time.
var wordMap map[string]int

func init() {
	wordMap = make(map[string]int, len(wordList))
	for i, w := range wordList {
		wordMap[w] = i
	}
}

// wordAt returns the word for index i, or an error if i is out of range.
func wordAt(i int) (string, error) {
	if i < 0 || i >= len(wordList) {
		return "", newMnemonicError("word index %d out of range", i)
	}
	return wordList[i], nil
}

// wordIndex returns the dictionary index of w, or an error if w is not in
// the dictionary.
func wordIndex(w string) (int, error) {
	i, ok := wordMap[w]
	if !ok {
		return 0, newMnemonicError("word %q not found in wordlist", w)
	}
	return i, nil
}
