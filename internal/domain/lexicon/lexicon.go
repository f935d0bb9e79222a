// Package lexicon holds the fixed keyword tables used to read doctor search
// queries. Every table is ordered: parsers scan it front to back and the
// first hit wins, so the declaration order below decides ties.
package lexicon

import (
	"iter"
	"slices"
)

type entry struct {
	key   string
	value string
}

var specialtySynonyms = []entry{
	{"cardiologist", "Cardiology"},
	{"cardiology", "Cardiology"},
	{"heart", "Cardiology"},
	{"cardiac", "Cardiology"},
	{"dentist", "Dentist"},
	{"dental", "Dentist"},
	{"orthodontist", "Dentist"},
	{"dermatologist", "Dermatology"},
	{"dermatology", "Dermatology"},
	{"skin", "Dermatology"},
	{"neurologist", "Neurology"},
	{"neurology", "Neurology"},
	{"brain", "Neurology"},
	{"orthopedic", "Orthopedic Surgery"},
	{"orthopedist", "Orthopedic Surgery"},
	{"bone", "Orthopedic Surgery"},
	{"psychiatrist", "Psychiatry"},
	{"psychiatry", "Psychiatry"},
	{"mental", "Psychiatry"},
	{"psychologist", "Psychiatry"},
	{"pediatrician", "Pediatrics"},
	{"pediatrics", "Pediatrics"},
	{"children", "Pediatrics"},
	{"child", "Pediatrics"},
	{"ophthalmologist", "Ophthalmology"},
	{"ophthalmology", "Ophthalmology"},
	{"eye", "Ophthalmology"},
	{"optometrist", "Ophthalmology"},
	{"gynecologist", "Obstetrics/Gynecology"},
	{"gynecology", "Obstetrics/Gynecology"},
	{"obgyn", "Obstetrics/Gynecology"},
	{"obstetrician", "Obstetrics/Gynecology"},
	{"oncologist", "Oncology"},
	{"oncology", "Oncology"},
	{"cancer", "Oncology"},
	{"urologist", "Urology"},
	{"urology", "Urology"},
	{"gastroenterologist", "Gastroenterology"},
	{"gastroenterology", "Gastroenterology"},
	{"gi", "Gastroenterology"},
	{"pulmonologist", "Pulmonology"},
	{"pulmonology", "Pulmonology"},
	{"lung", "Pulmonology"},
	{"endocrinologist", "Endocrinology"},
	{"endocrinology", "Endocrinology"},
	{"diabetes", "Endocrinology"},
	{"rheumatologist", "Rheumatology"},
	{"rheumatology", "Rheumatology"},
	{"nephrologist", "Nephrology"},
	{"nephrology", "Nephrology"},
	{"kidney", "Nephrology"},
}

var procedureKeywords = []string{
	"ultrasound",
	"x-ray",
	"xray",
	"mri",
	"ct scan",
	"ctscan",
	"surgery",
	"procedure",
	"test",
	"scan",
	"biopsy",
	"colonoscopy",
	"endoscopy",
	"echocardiogram",
	"stress test",
	"mammogram",
	"pap smear",
	"vaccination",
	"vaccine",
	"injection",
	"screening",
}

var locationKeywords = []string{
	"near",
	"in",
	"at",
	"around",
	"close to",
	"downtown",
	"uptown",
	"suburb",
	"suburbs",
}

var stateCodes = []entry{
	{"alabama", "AL"},
	{"alaska", "AK"},
	{"arizona", "AZ"},
	{"arkansas", "AR"},
	{"california", "CA"},
	{"colorado", "CO"},
	{"connecticut", "CT"},
	{"delaware", "DE"},
	{"florida", "FL"},
	{"georgia", "GA"},
	{"hawaii", "HI"},
	{"idaho", "ID"},
	{"illinois", "IL"},
	{"indiana", "IN"},
	{"iowa", "IA"},
	{"kansas", "KS"},
	{"kentucky", "KY"},
	{"louisiana", "LA"},
	{"maine", "ME"},
	{"maryland", "MD"},
	{"massachusetts", "MA"},
	{"michigan", "MI"},
	{"minnesota", "MN"},
	{"mississippi", "MS"},
	{"missouri", "MO"},
	{"montana", "MT"},
	{"nebraska", "NE"},
	{"nevada", "NV"},
	{"new hampshire", "NH"},
	{"new jersey", "NJ"},
	{"new mexico", "NM"},
	{"new york", "NY"},
	{"north carolina", "NC"},
	{"north dakota", "ND"},
	{"ohio", "OH"},
	{"oklahoma", "OK"},
	{"oregon", "OR"},
	{"pennsylvania", "PA"},
	{"rhode island", "RI"},
	{"south carolina", "SC"},
	{"south dakota", "SD"},
	{"tennessee", "TN"},
	{"texas", "TX"},
	{"utah", "UT"},
	{"vermont", "VT"},
	{"virginia", "VA"},
	{"washington", "WA"},
	{"west virginia", "WV"},
	{"wisconsin", "WI"},
	{"wyoming", "WY"},
}

var majorCities = []string{
	"chicago",
	"new york",
	"los angeles",
	"houston",
	"phoenix",
	"philadelphia",
	"san antonio",
	"san diego",
	"dallas",
	"san jose",
	"austin",
	"jacksonville",
	"san francisco",
	"columbus",
	"fort worth",
	"charlotte",
	"detroit",
	"el paso",
	"seattle",
	"denver",
	"washington",
	"memphis",
	"boston",
	"nashville",
	"baltimore",
	"oklahoma city",
	"portland",
	"las vegas",
	"milwaukee",
	"albuquerque",
	"tucson",
	"fresno",
	"sacramento",
	"kansas city",
	"mesa",
	"atlanta",
	"omaha",
	"colorado springs",
	"raleigh",
	"virginia beach",
	"miami",
	"oakland",
	"minneapolis",
	"tulsa",
	"cleveland",
	"wichita",
	"arlington",
}

// popularSpecialties are served when a query carries too little signal.
var popularSpecialties = []string{
	"Cardiology",
	"Dermatology",
	"Pediatrics",
	"Orthopedic Surgery",
	"Ophthalmology",
}

func pairs(table []entry) iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, e := range table {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// Specialties yields (synonym, canonical specialty) pairs in declaration order.
func Specialties() iter.Seq2[string, string] { return pairs(specialtySynonyms) }

// States yields (lower-case state name, two-letter code) pairs in declaration order.
func States() iter.Seq2[string, string] { return pairs(stateCodes) }

// Procedures yields the lower-case procedure keywords.
func Procedures() iter.Seq[string] { return slices.Values(procedureKeywords) }

// LocationKeywords yields the location prepositions such as "near" or "downtown".
func LocationKeywords() iter.Seq[string] { return slices.Values(locationKeywords) }

// Cities yields the lower-case major city allowlist.
func Cities() iter.Seq[string] { return slices.Values(majorCities) }

// PopularSpecialties returns a copy of the fallback specialty list.
func PopularSpecialties() []string { return slices.Clone(popularSpecialties) }

// IsCanonicalSpecialty reports whether name is one of the canonical specialty values.
func IsCanonicalSpecialty(name string) bool {
	return slices.ContainsFunc(specialtySynonyms, func(e entry) bool { return e.value == name })
}

// IsStateCode reports whether code is one of the two-letter state codes.
func IsStateCode(code string) bool {
	return slices.ContainsFunc(stateCodes, func(e entry) bool { return e.value == code })
}

// IsProcedure reports whether keyword is in the procedure keyword set.
func IsProcedure(keyword string) bool {
	return slices.Contains(procedureKeywords, keyword)
}
