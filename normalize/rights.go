package normalize

// licenceSentences maps the exact licence sentence carried by the catalog
// to the rights vocabulary code. Sentences for plain statutory copyright
// were removed from the target vocabulary and are intentionally absent.
var licenceSentences = map[string]string{
	"Licence Creative Commons Uveďte autora 3.0 Česko":                                             "3-BY-CZ",
	"Licence Creative Commons Uveďte autora-Neužívejte dílo komerčně 3.0 Česko":                    "3-BY-NC-CZ",
	"Licence Creative Commons Uveďte autora-Neužívejte dílo komerčně-Nezasahujte do díla 3.0 Česko": "3-BY-NC-ND-CZ",
	"Licence Creative Commons Uveďte autora-Neužívejte dílo komerčně-Zachovejte licenci 3.0 Česko": "3-BY-NC-SA-CZ",
	"Licence Creative Commons Uveďte autora-Nezasahujte do díla 3.0 Česko":                         "3-BY-ND-CZ",
	"Licence Creative Commons Uveďte autora-Zachovejte licenci 3.0 Česko":                          "3-BY-SA-CZ",
	"Licence Creative Commons Uveďte původ 4.0":                                                    "4-BY",
	"Licence Creative Commons Uveďte původ-Neužívejte komerčně-Nezpracovávejte 4.0":                "4-BY-NC-ND",
	"Licence Creative Commons Uveďte původ-Neužívejte komerčně-Zachovejte licenci 4.0":             "4-BY-NC-SA",
	"Licence Creative Commons Uveďte původ-Zachovejte licenci 4.0":                                 "4-BY-SA",
}

// RightsCode maps a licence sentence to the rights vocabulary code. An
// empty result means no licence is recognized and no rights are emitted.
func RightsCode(text string) string {
	return licenceSentences[text]
}
