package app

// isoCodes maps country display names to their ISO 3166-1 alpha-2 codes for
// the statistics API. Lookups are exact; a miss means the country name is
// not supported.
var isoCodes = map[string]string{
	"Afghanistan":          "AF",
	"Argentina":            "AR",
	"Australia":            "AU",
	"Austria":              "AT",
	"Bangladesh":           "BD",
	"Belgium":              "BE",
	"Brazil":               "BR",
	"Bulgaria":             "BG",
	"Cambodia":             "KH",
	"Canada":               "CA",
	"Chile":                "CL",
	"China":                "CN",
	"Colombia":             "CO",
	"Croatia":              "HR",
	"Czech Republic":       "CZ",
	"Denmark":              "DK",
	"Egypt":                "EG",
	"Estonia":              "EE",
	"Ethiopia":             "ET",
	"Finland":              "FI",
	"France":               "FR",
	"Germany":              "DE",
	"Ghana":                "GH",
	"Greece":               "GR",
	"Hungary":              "HU",
	"Iceland":              "IS",
	"India":                "IN",
	"Indonesia":            "ID",
	"Iran":                 "IR",
	"Iraq":                 "IQ",
	"Ireland":              "IE",
	"Israel":               "IL",
	"Italy":                "IT",
	"Japan":                "JP",
	"Jordan":               "JO",
	"Kenya":                "KE",
	"Latvia":               "LV",
	"Lithuania":            "LT",
	"Malaysia":             "MY",
	"Maldives":             "MV",
	"Mexico":               "MX",
	"Morocco":              "MA",
	"Nepal":                "NP",
	"Netherlands":          "NL",
	"New Zealand":          "NZ",
	"Nigeria":              "NG",
	"Norway":               "NO",
	"Pakistan":             "PK",
	"Peru":                 "PE",
	"Philippines":          "PH",
	"Poland":               "PL",
	"Portugal":             "PT",
	"Qatar":                "QA",
	"Romania":              "RO",
	"Russia":               "RU",
	"Saudi Arabia":         "SA",
	"Singapore":            "SG",
	"Slovakia":             "SK",
	"Slovenia":             "SI",
	"South Africa":         "ZA",
	"South Korea":          "KR",
	"Spain":                "ES",
	"Sri Lanka":            "LK",
	"Sweden":               "SE",
	"Switzerland":          "CH",
	"Tanzania":             "TZ",
	"Thailand":             "TH",
	"Turkey":               "TR",
	"Ukraine":              "UA",
	"United Arab Emirates": "AE",
	"United Kingdom":       "GB",
	"United States":        "US",
	"Vietnam":              "VN",
}
