package rules

// Curated English/Filipino lexicons for the deterministic classifier.
// Matching is substring-based on lowercased text unless a rule says
// otherwise.

// descriptiveCues mark factual, report-style phrasing.
var descriptiveCues = []string{
	"may", "there is", "there was", "nangyari", "happened", "maraming",
	"many", "several", "buildings", "collapsed", "evacuated",
}

// emotionalWords and emotionalMarkers veto the descriptive override.
var emotionalWords = []string{
	"nakakatakot", "scary", "afraid", "takot", "worried", "kabado",
	"help", "tulong", "saklolo", "emergency", "bantay", "delikado", "ingat",
}

// Checked against the uppercased text.
var emotionalMarkers = []string{"!!!", "???", "HELP", "TULONG", "OMG", "OH MY GOD"}

// shortTextEmotions covers all five categories plus death/injury and
// distress vocabulary; any hit disables the short-statement Neutral rule.
var shortTextEmotions = []string{
	// Panic
	"saklolo", "help", "tulong", "tulungan", "rescue", "emergency",
	"naiipit", "nakulong", "trapped",
	"mamamatay", "😱", "😭", "🆘", "💔", "!!!", "???",

	// Fear/Anxiety
	"takot", "scared", "afraid", "kinakabahan", "natatakot", "kabado",
	"worried", "anxious", "fearful", "nanginginig", "nakakatakot",
	"nakakapraning", "makakaligtas kaya", "paano na", "😨", "😰", "😟",

	// Disbelief
	"hindi makapaniwala", "seriously", "omg", "gosh", "can't believe",
	"what the", "wow", "haha", "baha na naman", "classic", "srsly",
	"as usual", "🤯", "🙄", "😆", "😑", "nice one",

	// Resilience
	"kapit", "kaya natin", "malalagpasan", "babangon", "walang susuko",
	"prayers", "pray", "dasal", "tulong tayo", "magtulungan", "sama-sama",
	"matatag", "💪", "🙏", "🌈", "🕊️",

	// Death/injury
	"namatay", "patay", "nasugatan", "dead", "died", "killed", "injured",
	"walang buhay", "nawawala", "missing", "casualty",

	// Extreme distress
	"iyak", "cry", "trauma", "diyos ko", "oh my god", "lord help",
	"dios mio", "panginoon", "tulungan nyo kami",
}

// sentimentKeywords feed the scoring stage, one point per present keyword.
var sentimentKeywords = map[string][]string{
	"Panic": {
		"emergency", "trapped", "dying", "death", "urgent",
		"critical", "saklolo", "naiipit", "mamamatay",
		"agad", "kritikal", "emerhensya",
	},
	"Fear/Anxiety": {
		"scared", "afraid", "worried", "fear", "terrified", "anxious",
		"frightened", "takot", "natatakot", "nag-aalala", "kabado",
		"kinakabahan", "nangangamba",
	},
	"Disbelief": {
		"unbelievable", "impossible", "can't believe", "no way",
		"what's happening", "shocked", "hindi kapani-paniwala", "haha",
		"hahaha", "lol", "lmao", "ulol", "gago", "tanga", "wtf", "daw?", "raw?",
		"talaga?", "really?", "seriously?", "seryoso?", "?!", "??",
		"imposible", "di ako makapaniwala", "nagulat", "gulat",
	},
	"Resilience": {
		"stay strong", "we will overcome", "resilient", "rebuild",
		"recover", "hope", "lets help", "let's help", "let us help", "help them",
		"malalampasan", "tatayo ulit", "magbabalik",
		"pag-asa", "malalagpasan", "tulungan natin", "tumulong",
		"we can help", "we will help", "tutulong tayo",
	},
}

// resiliencePhrases mark helper-perspective text.
var resiliencePhrases = []string{
	"let's help", "lets help", "help them", "tulungan natin",
	"tumulong tayo", "tulong sa", "tulong para", "tulungan ang", "mag-donate",
	"magbigay ng tulong", "mag volunteer", "magtulungan", "donate", "donation",
	"we can help", "we will help", "tutulong tayo", "support",
	"fundraising", "fund raising", "relief", "relief goods", "pagtulong",
	"magbayanihan", "bayanihan", "volunteer", "volunteers",
}

// panicPhrases mark victim-perspective text.
var panicPhrases = []string{
	"help me", "save me", "trapped", "can't breathe", "tulungan ako", "help us",
	"saklolo", "tulong!", "naipit ako", "hindi makahinga", "naiipit", "nakulong",
	"nasasabit", "naiipit kami", "nanganganib ang buhay", "stranded", "nawalan ng bahay",
	"walang makain", "walang tubig", "naputol", "walang kuryente", "nawawala",
	"nawawalang tao", "hinahanap", "hinahanap namin", "missing", "casualty",
	"casualties", "patay", "nasugatan", "injured", "nasaktan",
}

var laughterPatterns = []string{"haha", "hehe", "lol", "lmao", "ulol", "gago", "tanga"}

// simpleStatements force Neutral when nothing else scores above 1.
var simpleStatements = []string{
	"may sunog", "may baha", "may lindol",
	"there is a fire", "there is a flood", "there is an earthquake",
}

var reportingStyleCues = []string{
	"news", "bulletin", "flash report", "balita", "ulat", "breaking news", "headline",
}

var helpRequestCues = []string{
	"please help", "help please", "need help", "kailangan ng tulong",
	"pakitulong", "pakigalaw po", "asap",
}
