package prompt

// Scenario is the static art-direction lookup for one era. These tables
// drive prompt assembly; era names, year ranges and celebrity lineups come
// from the database row.
type Scenario struct {
	Setting      string
	Attire       string
	Lighting     string
	FilmStock    string
	ArtDirection string
}

var scenarios = map[string]Scenario{
	"roaring-twenties": {
		Setting:      "an opulent art-deco speakeasy with a live jazz band, champagne towers and gilded mirrors",
		Attire:       "period-accurate 1920s evening wear: beaded flapper dress or tailored three-piece suit with a pocket watch",
		Lighting:     "warm tungsten glow with soft smoke haze and deep shadows",
		FilmStock:    "grainy sepia-toned silver gelatin print with slight vignetting",
		ArtDirection: "Gatsby-era glamour photography, formal posed composition",
	},
	"golden-hollywood": {
		Setting:      "a classic Hollywood studio backlot premiere with velvet ropes, flashbulbs and a marquee",
		Attire:       "1950s red-carpet fashion: satin gown with opera gloves or a sharp tuxedo with slicked hair",
		Lighting:     "dramatic key lighting with glossy highlights, classic three-point studio setup",
		FilmStock:    "high-contrast black-and-white 8x10 studio portrait film",
		ArtDirection: "George Hurrell style glamour portraiture",
	},
	"swinging-sixties": {
		Setting:      "a mod London street scene with Union Jack storefronts, Vespas and a music club entrance",
		Attire:       "1960s mod fashion: shift dress with go-go boots or slim-cut suit with Chelsea boots",
		Lighting:     "bright overcast daylight with punchy saturated color",
		FilmStock:    "Kodachrome slide film with bold primaries and slight halation",
		ArtDirection: "swinging London editorial photography",
	},
	"disco-seventies": {
		Setting:      "a packed discotheque with a mirror ball, illuminated dance floor and haze",
		Attire:       "1970s disco fashion: sequined jumpsuit or wide-lapel suit with open collar and gold chains",
		Lighting:     "colored gel spotlights, lens flares and specular sparkle from the mirror ball",
		FilmStock:    "warm 35mm color negative with visible grain",
		ArtDirection: "Studio 54 nightlife photography",
	},
	"neon-eighties": {
		Setting:      "a neon-lit city arcade strip at night with chrome, glass bricks and synth-club posters",
		Attire:       "1980s fashion: shoulder-padded blazer, bold geometric prints, feathered or permed hair",
		Lighting:     "hard magenta and cyan neon rim light with reflective wet pavement",
		FilmStock:    "saturated consumer 35mm film with flash-on-camera look",
		ArtDirection: "MTV-era promotional photography",
	},
	"grunge-nineties": {
		Setting:      "a dim basement rock venue with band stickers, cables and a worn drum riser",
		Attire:       "1990s grunge fashion: flannel over a band tee, ripped jeans, combat boots",
		Lighting:     "single practical stage light with heavy falloff and natural shadow",
		FilmStock:    "pushed black-and-white 35mm with coarse grain",
		ArtDirection: "candid music-zine documentary photography",
	},
}

// defaultScenario backs eras added to the catalog before their scenario
// table entry ships.
var defaultScenario = Scenario{
	Setting:      "an iconic, historically accurate location of the era",
	Attire:       "period-accurate clothing and hairstyle for the era",
	Lighting:     "lighting characteristic of photographs from the era",
	FilmStock:    "photographic medium typical of the era",
	ArtDirection: "authentic period photography",
}

// ScenarioFor returns the scenario table entry for an era slug, falling
// back to the generic scenario for unknown slugs.
func ScenarioFor(slug string) Scenario {
	if s, ok := scenarios[slug]; ok {
		return s
	}
	return defaultScenario
}
