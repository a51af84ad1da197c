package normalize

// Access level codes used by the catalog before mapping to COAR slugs:
// "0" metadata only, "1" open, "2" restricted.
var accessLevelSlugs = map[string]string{
	"0": "c_14cb",
	"1": "c_abf2",
	"2": "c_16ec",
}

// accessSentences maps the exact accessibility sentence carried by the
// catalog to the access level code.
var accessSentences = map[string]string{
	"Dokument je dostupný v repozitáři Akademie věd.":                 "1",
	"Dokumenty jsou dostupné v systému NK ČR.":                        "1",
	"Plný text je dostupný v Digitální knihovně VUT.":                 "1",
	"Dostupné v digitálním repozitáři VŠE.":                           "1",
	"Plný text je dostupný v digitálním repozitáři JČU.":              "1",
	"Dostupné v digitálním repozitáři UK.":                            "1",
	"Dostupné v digitálním repozitáři Mendelovy univerzity.":          "1",
	"Dostupné v repozitáři ČZU.":                                      "1",
	"Dostupné registrovaným uživatelům v digitálním repozitáři AMU.":  "2",
	"Dokument je dostupný v NLK. Dokument je dostupný též v digitální formě v Digitální knihovně NLK. Přístup může být vázán na prohlížení z počítačů NLK.": "2",
	"Dostupné v digitálním repozitáři UK (pouze z IP adres univerzity).":                                                          "2",
	"Text práce je neveřejný, pro více informací kontaktujte osobu uvedenou v repozitáři Mendelovy univerzity.":                   "2",
	"Dokument je dostupný na vyžádání prostřednictvím repozitáře Akademie věd.":                                                   "2",
	"Dostupné registrovaným uživatelům v knihovně Mendelovy univerzity v Brně.":                                                   "2",
	"Dostupné registrovaným uživatelům v repozitáři ČZU.":                                                                         "2",
	"Dokument je dostupný v příslušném ústavu Akademie věd ČR.":                                                                   "0",
	"Dokument je po domluvě dostupný v budově Ministerstva životního prostředí.":                                                  "0",
	"Plný text není k dispozici.":                                                                                                 "0",
	"Dokument je dostupný v NLK.":                                                                                                 "0",
	"Dokument je po domluvě dostupný v budově <a href=\"http://www.mzp.cz/__C125717D00521D29.nsf/index.html\" target=\"_blank\">Ministerstva životního prostředí</a>.": "0",
	"Dokument je dostupný na externích webových stránkách.": "0",
}

// AccessRightsFromText maps a free-text accessibility sentence to the
// COAR access-rights slug. Unknown sentences default to metadata-only.
func AccessRightsFromText(text string) string {
	return AccessRightsFromSlug(accessSentences[text])
}

// AccessRightsFromSlug maps a catalog access level code ("0"/"1"/"2") to
// the COAR slug; values already in slug form pass through unchanged.
func AccessRightsFromSlug(slug string) string {
	if slug == "" {
		slug = "0"
	}
	if coar, ok := accessLevelSlugs[slug]; ok {
		return coar
	}
	return slug
}
