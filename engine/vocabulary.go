package engine

// Vocabulary tables for Hindi (Devanagari), romanized Hindi and English.
// These are closed enumerations loaded once at package init: adding a
// category or reordering entries changes matching priority and must be a
// deliberate, reviewed change.

// professionCategory pairs a profession tag with its keyword list. The slice
// order is the matching priority: the first category to match wins.
type professionCategory struct {
	tag      string
	keywords []string
}

var professionCategories = []professionCategory{
	{
		tag: "farmer",
		keywords: []string{
			"farmer", "farming", "agriculture", "crop", "farm",
			"किसान", "खेती", "कृषि", "खेत", "फसल", "कृषक",
			"kisan", "kheti", "krishi", "khet", "fasal", "krshak",
			"farming karta", "kheti karta", "farmer hun",
		},
	},
	{
		tag: "student",
		keywords: []string{
			"student", "study", "studying", "college", "school", "education",
			"छात्र", "छात्रा", "पढ़ाई", "पढ़ता", "पढ़ती", "कॉलेज", "स्कूल", "शिक्षा",
			"chatra", "chhatra", "padhai", "padhta", "padhti",
			"student hun", "padh raha", "padh rahi", "study karta",
		},
	},
	{
		tag: "employee",
		keywords: []string{
			"job", "work", "working", "employee", "service", "office",
			"नौकरी", "काम", "कार्य", "सेवा", "ऑफिस", "कर्मचारी", "कामगार",
			"naukri", "nokri", "kaam", "karya", "seva", "karmchari",
			"job karta", "kaam karta", "naukri hai", "service mein",
		},
	},
	{
		tag: "business_owner",
		keywords: []string{
			"business", "shop", "store", "entrepreneur", "owner", "trade",
			"व्यापार", "व्यवसाय", "दुकान", "कारोबार", "धंधा", "मालिक",
			"vyapar", "vyvasay", "dukan", "karobar", "dhanda", "malik",
			"business karta", "shop hai", "vyapar karta",
		},
	},
	{
		tag: "unemployed",
		keywords: []string{
			"unemployed", "no job", "jobless", "searching job",
			"बेरोजगार", "बिना काम", "काम नहीं", "नौकरी नहीं",
			"berojgar", "berozgar", "kaam nahi", "naukri nahi", "job nahi",
			"koi kaam nahi", "unemployed hun",
		},
	},
}

// settlementType pairs a settlement tag with its keyword list. Rural is
// checked before urban.
type settlementType struct {
	tag      string
	keywords []string
}

var settlementTypes = []settlementType{
	{
		tag: "rural",
		keywords: []string{
			"village", "rural", "countryside", "farm area",
			"गांव", "गाँव", "ग्रामीण", "देहात",
			"gaon", "ganv", "grameen", "dehat", "village mein",
			"gaon se", "rural area",
		},
	},
	{
		tag: "urban",
		keywords: []string{
			"city", "town", "urban", "metro", "municipal",
			"शहर", "नगर", "महानगर", "कस्बा", "शहरी",
			"sheher", "shahar", "nagar", "mahanagar", "kasba", "shahri",
			"city mein", "town mein", "urban area",
		},
	},
}

// familyKeywords indicate the message is about household members.
var familyKeywords = []string{
	"family", "members", "people", "persons",
	"परिवार", "सदस्य", "लोग", "व्यक्ति", "घर", "घरवाले",
	"parivar", "parivaar", "sadasya", "log", "vyakti", "ghar", "gharwale",
	"family mein", "ghar mein", "members hai",
}

// numberWord maps a spelled-out number to its value. Slice order is the
// lookup order; Devanagari spellings come first, then transliterations,
// first substring hit wins.
type numberWord struct {
	word  string
	value int
}

var numberWords = []numberWord{
	{"एक", 1}, {"दो", 2}, {"तीन", 3}, {"चार", 4}, {"पांच", 5},
	{"छह", 6}, {"सात", 7}, {"आठ", 8}, {"नौ", 9}, {"दस", 10},
	{"ग्यारह", 11}, {"बारह", 12}, {"तेरह", 13}, {"चौदह", 14}, {"पंद्रह", 15},
	{"सोलह", 16}, {"सत्रह", 17}, {"अट्ठारह", 18}, {"उन्नीस", 19}, {"बीस", 20},
	{"ek", 1}, {"do", 2}, {"teen", 3}, {"char", 4}, {"panch", 5},
	{"chhe", 6}, {"saat", 7}, {"aath", 8}, {"nau", 9}, {"das", 10},
	{"gyarah", 11}, {"barah", 12}, {"terah", 13}, {"chaudah", 14}, {"pandrah", 15},
	{"solah", 16}, {"satrah", 17}, {"atharah", 18}, {"unnis", 19}, {"bees", 20},
}

// lowIncomePhrases short-circuit income parsing to the below-poverty-line
// floor value. Only unambiguous phrases: a bare "kam" would also hit
// "kamata hun" (earns).
var lowIncomePhrases = []string{
	"very low", "bahut kam", "बहुत कम", "poor",
	"gareeb", "गरीब", "below poverty", "bpl",
}
