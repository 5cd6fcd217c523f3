package extractor

import (
	"strings"

	"github.com/aleister1102/polisnap/internal/models"
)

// NoMatchToken fills a keyword row whose category matched nothing
const NoMatchToken = "N/A"

// KeywordCategory is one CCPA personal information category
type KeywordCategory struct {
	Name     string
	Keywords []string
}

// CCPATaxonomy lists the categories in the order rows are emitted
var CCPATaxonomy = []KeywordCategory{
	{
		Name: "identifiers",
		Keywords: []string{
			"real name", "alias", "postal address", "address",
			"unique personal identifier", "online identifier", "IP address",
			"email address", "email", "account name", "social security number",
			"driver license number", "passport number",
		},
	},
	{
		Name: "customer records information",
		Keywords: []string{
			"name", "signature", "social security number", "ssn",
			"physical characteristics", "address", "telephone number",
			"phone number", "passport number", "drivers license",
			"state identification card number", "insurance policy number",
			"education", "employment", "employment history", "bank account number",
			"credit card number", "debit card number", "financial information",
			"medical information", "health insurance information",
		},
	},
	{
		Name: "characteristics of protected classifications",
		Keywords: []string{
			"race", "ancestry", "national origin", "religion", "age",
			"mental and physical disability", "sex", "sexual orientation",
			"gender identity", "medical condition", "genetic information",
			"marital status", "military status",
		},
	},
	{
		Name: "commercial information",
		Keywords: []string{
			"personal property", "products purchased", "services purchased",
			"purchasing histories", "consuming histories",
		},
	},
	{
		Name: "internet or other electronic network activity information",
		Keywords: []string{
			"browsing history", "search history",
			"interaction with a website, application, or advertisement",
		},
	},
	{
		Name:     "geolocation data",
		Keywords: []string{"geolocation data", "location information", "gps"},
	},
	{
		Name:     "sensory data",
		Keywords: []string{"Audio", "electronic", "visual", "thermal", "olfactory"},
	},
	{
		Name:     "professional or employment-related information",
		Keywords: []string{"employment information", "professional information"},
	},
	{
		Name:     "education information",
		Keywords: []string{"Family Educational Rights and Privacy Act", "education", "school"},
	},
	{
		Name: "inferences",
		Keywords: []string{
			"psychological trends", "predispositions", "behavior", "attitudes",
			"intelligence", "aptitude",
		},
	},
}

// KeywordTagger matches text against a keyword taxonomy
type KeywordTagger struct {
	taxonomy []KeywordCategory
}

// NewKeywordTagger creates a tagger; a nil taxonomy uses CCPATaxonomy
func NewKeywordTagger(taxonomy []KeywordCategory) *KeywordTagger {
	if taxonomy == nil {
		taxonomy = CCPATaxonomy
	}
	return &KeywordTagger{taxonomy: taxonomy}
}

// Tag emits one row per category in taxonomy order. Matching is literal,
// case-insensitive substring containment; terms are reported lower-cased.
func (kt *KeywordTagger) Tag(text string) models.KeywordTable {
	lowered := strings.ToLower(text)
	table := make(models.KeywordTable, 0, len(kt.taxonomy))

	for _, category := range kt.taxonomy {
		row := []string{category.Name}
		for _, keyword := range category.Keywords {
			term := strings.ToLower(keyword)
			if strings.Contains(lowered, term) {
				row = append(row, term)
			}
		}
		if len(row) == 1 {
			row = append(row, NoMatchToken)
		}
		table = append(table, row)
	}
	return table
}
