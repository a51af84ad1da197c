package normalize

// resourceTypes maps the catalog's collection-style document type slugs
// to the repository resource-type vocabulary codes.
var resourceTypes = map[string]string{
	"tematicke_sborniky":          "book",
	"monografie":                  "book",
	"preprinty":                   "article",
	"prispevky_z_konference":      "paper",
	"sborniky":                    "proceeding",
	"programy":                    "programme",
	"postery":                     "poster",
	"bakalarske_prace":            "bachelor",
	"diplomove_prace":             "master",
	"rigorozni_prace":             "rigorous",
	"disertacni_prace":            "doctoral",
	"habilitacni_prace":           "post-doctoral",
	"metodiky":                    "certified-methodology",
	"vyrocni_zpravy":              "annual",
	"vyzkumne_zpravy":             "research",
	"technicke_zpravy":            "research",
	"zaverecne_zpravy_z_projektu": "project",
	"prubezne_zpravy_z_projektu":  "project",
	"grantove_zpravy":             "project",
	"statisticke_zpravy":          "statistical-or-status",
	"zpravy_o_stavu":              "statistical-or-status",
	"zpravy_z_pruzkumu":           "field",
	"cestovni_zpravy":             "business-trip",
	"tiskove_zpravy":              "press-release",
	"firemni_tisk":                "trade-literature",
	"katalogy_vyrobku":            "trade-literature",
	"letaky":                      "trade-literature",
	"vestniky":                    "trade-literature",
	"brozury":                     "trade-literature",
	"analyzy":                     "studies-and-analyses",
	"studie":                      "studies-and-analyses",
	"referaty":                    "educational-material",
	"katalogy_vystav":             "exhibition-catalogue-or-guide",
	"pruvodce_expozici":           "exhibition-catalogue-or-guide",
	"'pruvodce_expozici":          "exhibition-catalogue-or-guide",
}

// ResourceTypeCode maps a catalog document type slug to the vocabulary
// code, defaulting to "other" for unknown slugs.
func ResourceTypeCode(value string) string {
	if code, ok := resourceTypes[value]; ok {
		return code
	}
	return "other"
}
