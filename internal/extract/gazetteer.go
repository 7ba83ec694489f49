package extract

// misspellings normalizes common shortcuts and typos to canonical
// gazetteer names before any matching runs.
var misspellings = map[string]string{
	// Metro Manila
	"maynila":          "manila",
	"mnl":              "manila",
	"mnla":             "manila",
	"manilla":          "manila",
	"kyusi":            "quezon city",
	"qc":               "quezon city",
	"q.c":              "quezon city",
	"quiapo":           "manila",
	"makate":           "makati",
	"makati city":      "makati",
	"bgc":              "taguig",
	"taguig city":      "taguig",
	"m.manila":         "metro manila",
	"metromanila":      "metro manila",
	"calocan":          "caloocan",
	"kalookan":         "caloocan",
	"kalokan":          "caloocan",
	"caloocan city":    "caloocan",
	"pasay city":       "pasay",
	"muntinlupa city":  "muntinlupa",
	"valenzuela city":  "valenzuela",
	"las pinas":        "las piñas",
	"laspinas":         "las piñas",
	"laspiñas":         "las piñas",
	"marikina city":    "marikina",
	"paranaque":        "parañaque",
	"paranaque city":   "parañaque",
	"parañaque city":   "parañaque",
	"sampaloc":         "manila",
	"intramuros":       "manila",
	"pandacan":         "manila",
	"paco":             "manila",

	// Major cities and provinces
	"baguio city":          "baguio",
	"cebu city":            "cebu",
	"davao city":           "davao",
	"iloilo city":          "iloilo",
	"cdo":                  "cagayan de oro",
	"cdeo":                 "cagayan de oro",
	"zamboanga city":       "zamboanga",
	"bacolod city":         "bacolod",
	"gen san":              "general santos",
	"gensan":               "general santos",
	"tacloban city":        "tacloban",
	"legazpi":              "legaspi",
	"legaspi city":         "legaspi",
	"legazpi city":         "legaspi",
	"naga city":            "naga",
	"batangas city":        "batangas",
	"cavite city":          "cavite",
	"dagupan city":         "dagupan",
	"laoag city":           "laoag",
	"lucena city":          "lucena",
	"tagaytay city":        "tagaytay",
	"iligan city":          "iligan",
	"cotabato city":        "cotabato",
	"butuan city":          "butuan",
	"cainta":               "rizal",
	"antipolo":             "rizal",
	"taytay":               "rizal",
	"bayan ng taytay":      "rizal",
	"zambales province":    "zambales",
	"pangasinan province":  "pangasinan",
	"benguet province":     "benguet",
	"camarines sur":        "camarines",
	"camarines norte":      "camarines",
	"north cotabato":       "cotabato",
	"maguindanao del norte": "maguindanao",
	"maguindanao del sur":   "maguindanao",
}

// gazetteer lists known Philippine regions, cities, sub-areas and
// provinces in match priority order.
var gazetteer = []string{
	// Regions
	"NCR", "Metro Manila", "CAR", "Cordillera", "Ilocos", "Cagayan Valley",
	"Central Luzon", "CALABARZON", "MIMAROPA", "Bicol", "Western Visayas",
	"Central Visayas", "Eastern Visayas", "Zamboanga Peninsula", "Northern Mindanao",
	"Davao Region", "SOCCSKSARGEN", "Caraga", "BARMM", "Bangsamoro",

	// NCR cities and municipalities
	"Manila", "Quezon City", "Makati", "Taguig", "Pasig", "Mandaluyong", "Pasay",
	"Caloocan", "Parañaque", "Las Piñas", "Muntinlupa", "Marikina", "Valenzuela",
	"Malabon", "Navotas", "San Juan", "Pateros",

	// Manila sub-areas common in emergency reports
	"Tondo", "Sampaloc", "Malate", "Paco", "Intramuros", "Quiapo", "Binondo",
	"Ermita", "San Nicolas", "San Miguel", "Santa Cruz", "Santa Mesa", "Pandacan",
	"Port Area", "Sta. Ana", "Tipi", "Tipas", "Napindan",

	// Major cities outside NCR
	"Baguio", "Cebu", "Davao", "Iloilo", "Cagayan de Oro", "Zamboanga", "Bacolod",
	"General Santos", "Tacloban", "Angeles", "Olongapo", "Naga", "Butuan", "Cotabato",
	"Dagupan", "Iligan", "Laoag", "Legaspi", "Lucena", "Puerto Princesa", "Roxas",
	"Tagaytay", "Tagbilaran", "Tarlac", "Tuguegarao", "Vigan", "Cabanatuan", "Bago",
	"Batangas City", "Bayawan", "Calbayog", "Cauayan", "Dapitan", "Digos", "Dipolog",
	"Dumaguete", "El Salvador", "Gingoog", "Himamaylan", "Iriga", "Kabankalan", "Kidapawan",
	"La Carlota", "Lamitan", "Lipa", "Maasin", "Malaybalay", "Malolos", "Mati", "Meycauayan",
	"Oroquieta", "Ozamiz", "Pagadian", "Palayan", "Panabo", "Sorsogon City", "Surigao City",
	"Tabuk", "Tandag", "Tangub", "Tanjay", "Urdaneta", "Valencia", "Zamboanga City",

	// Provinces
	"Abra", "Agusan del Norte", "Agusan del Sur", "Aklan", "Albay", "Antique", "Apayao",
	"Aurora", "Basilan", "Bataan", "Batanes", "Batangas", "Benguet", "Biliran", "Bohol",
	"Bukidnon", "Bulacan", "Cagayan", "Camarines Norte", "Camarines Sur", "Camiguin", "Capiz",
	"Catanduanes", "Cavite", "Cotabato", "Davao de Oro", "Davao del Norte",
	"Davao del Sur", "Davao Oriental", "Dinagat Islands", "Eastern Samar", "Guimaras", "Ifugao",
	"Ilocos Norte", "Ilocos Sur", "Isabela", "Kalinga", "La Union", "Laguna",
	"Lanao del Norte", "Lanao del Sur", "Leyte", "Maguindanao", "Marinduque", "Masbate",
	"Misamis Occidental", "Misamis Oriental", "Mountain Province", "Negros Occidental",
	"Negros Oriental", "Northern Samar", "Nueva Ecija", "Nueva Vizcaya", "Occidental Mindoro",
	"Oriental Mindoro", "Palawan", "Pampanga", "Pangasinan", "Quezon", "Quirino", "Rizal",
	"Romblon", "Samar", "Sarangani", "Siquijor", "Sorsogon", "South Cotabato", "Southern Leyte",
	"Sultan Kudarat", "Sulu", "Surigao del Norte", "Surigao del Sur", "Tawi-Tawi",
	"Zambales", "Zamboanga del Norte", "Zamboanga del Sur", "Zamboanga Sibugay",
}
