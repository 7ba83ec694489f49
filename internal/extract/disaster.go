// Package extract holds the deterministic text extractors: disaster type,
// Philippine location, news source and language. They run on every
// classification regardless of which classifier produced the sentiment.
package extract

import (
	"strings"

	"github.com/draiimon/PanicSense-Final/internal/model"
)

// disasterKeywords maps each disaster type to its direct signal words,
// English and Filipino mixed.
var disasterKeywords = map[string][]string{
	model.DisasterEarthquake: {
		"earthquake", "quake", "tremor", "seismic", "lindol",
		"magnitude", "aftershock", "shaking", "lumindol", "pagyanig",
		"paglindol", "ground shaking",
	},
	model.DisasterFlood: {
		"flood", "flooding", "inundation", "baha", "tubig", "binaha",
		"flash flood", "rising water", "bumabaha", "nagbaha",
		"high water level", "water rising", "overflowing", "pagbaha",
		"underwater", "submerged", "nabahaan",
	},
	model.DisasterTyphoon: {
		"typhoon", "storm", "cyclone", "hurricane", "bagyo",
		"super typhoon", "habagat", "ulan", "buhos", "storm surge",
		"malakas na hangin", "heavy rain", "signal no", "strong wind",
		"malakas na ulan", "flood warning", "storm warning",
		"evacuate due to storm", "matinding ulan",
	},
	model.DisasterFire: {
		"fire", "blaze", "burning", "sunog", "nasusunog", "nasunog",
		"nagliliyab", "flame", "apoy", "burning building",
		"burning house", "tulong sunog", "house fire", "fire truck",
		"fire fighter", "building fire", "fire alarm",
		"sinusunog", "smoke", "usok",
	},
	model.DisasterVolcanic: {
		"volcano", "eruption", "lava", "ash", "bulkan", "ashfall",
		"magma", "volcanic", "bulkang", "active volcano",
		"phivolcs alert", "taal", "mayon", "pinatubo",
		"volcanic activity", "phivolcs", "volcanic ash",
		"evacuate volcano", "erupting", "erupted", "abo ng bulkan",
	},
	model.DisasterLandslide: {
		"landslide", "mudslide", "avalanche", "guho", "pagguho",
		"pagguho ng lupa", "collapsed", "erosion", "land collapse",
		"soil erosion", "rock slide", "debris flow", "mountainside",
		"nagkaroong ng guho", "rumble", "bangin", "bumagsak na lupa",
	},
}

// disasterContext holds weaker scenario phrases worth 1.5 points each.
var disasterContext = map[string][]string{
	model.DisasterEarthquake: {
		"shaking", "ground moved", "buildings collapsed", "magnitude",
		"richter scale", "fell down", "trembling", "evacuate building",
		"underneath rubble", "trapped",
	},
	model.DisasterFlood: {
		"water level", "rising water", "underwater", "submerged",
		"evacuate", "rescue boat", "stranded", "high water",
		"knee deep", "waist deep",
	},
	model.DisasterTyphoon: {
		"strong winds", "heavy rain", "evacuation center",
		"storm signal", "stranded", "cancelled flights",
		"damaged roof", "blown away", "flooding due to", "trees fell",
	},
	model.DisasterFire: {
		"smoke", "evacuate building", "trapped inside", "firefighter",
		"fire truck", "burning", "call 911", "spread to", "emergency",
		"burning smell",
	},
	model.DisasterVolcanic: {
		"alert level", "evacuate area", "danger zone",
		"eruption warning", "exclusion zone", "kilometer radius",
		"volcanic activity", "ash covered", "masks", "respiratory",
	},
	model.DisasterLandslide: {
		"collapsed", "blocked road", "buried", "fell", "slid down",
		"mountain slope", "after heavy rain", "buried homes",
		"rescue team", "clearing operation",
	},
}

// disasterPriority breaks score ties the way Philippine incident frequency
// would suggest.
var disasterPriority = []string{
	model.DisasterTyphoon,
	model.DisasterFlood,
	model.DisasterEarthquake,
	model.DisasterVolcanic,
	model.DisasterFire,
	model.DisasterLandslide,
}

// DisasterType scores the text against the six disaster categories and
// returns the winner, "UNKNOWN" when nothing scores at least 1, or
// "Not Specified" for empty text.
func DisasterType(text string) string {
	if strings.TrimSpace(text) == "" {
		return model.DisasterNotSpecified
	}
	lower := strings.ToLower(text)
	padded := " " + lower + " "

	scores := make(map[string]float64, len(disasterKeywords))
	for dt, keywords := range disasterKeywords {
		for _, kw := range keywords {
			if !strings.Contains(lower, kw) {
				continue
			}
			if strings.Contains(padded, " "+kw+" ") ||
				strings.HasPrefix(lower, kw+" ") ||
				strings.HasSuffix(lower, " "+kw) ||
				lower == kw {
				scores[dt] += 2 // full word
			} else {
				scores[dt]++ // substring
			}
		}
	}

	for dt, phrases := range disasterContext {
		for _, ph := range phrases {
			if strings.Contains(lower, ph) {
				scores[dt] += 1.5
			}
		}
	}

	// Co-occurrence pairs carry stronger evidence than either word alone.
	pairs := []struct {
		a, b  string
		dt    string
		bonus float64
	}{
		{"water", "rising", model.DisasterFlood, 2},
		{"strong", "wind", model.DisasterTyphoon, 2},
		{"heavy", "rain", model.DisasterTyphoon, 1.5},
		{"building", "collapse", model.DisasterEarthquake, 2},
		{"ash", "fall", model.DisasterVolcanic, 2},
	}
	for _, p := range pairs {
		if strings.Contains(lower, p.a) && strings.Contains(lower, p.b) {
			scores[p.dt] += p.bonus
		}
	}
	if strings.Contains(lower, "evacuate") && strings.Contains(lower, "alert") {
		for _, dt := range []string{model.DisasterVolcanic, model.DisasterFire, model.DisasterFlood, model.DisasterTyphoon} {
			for _, kw := range disasterKeywords[dt] {
				if strings.Contains(lower, kw) {
					scores[dt]++
					break
				}
			}
		}
	}

	var max float64
	for _, s := range scores {
		if s > max {
			max = s
		}
	}
	if max < 1 {
		return model.DisasterUnknown
	}
	for _, dt := range disasterPriority {
		if scores[dt] == max {
			return dt
		}
	}
	return model.DisasterUnknown
}
