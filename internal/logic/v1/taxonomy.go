package v1

// Term is a bilingual taxonomy entry. Codes are stable identifiers
// stored on jobs; names are display-only.
type Term struct {
	Code   string `json:"code"`
	NameAr string `json:"name_ar"`
	NameEn string `json:"name_en"`
}

// Static taxonomies. These are lookups, not configuration; adding an
// entry is a code change.
var (
	categories = []Term{
		{"engineering", "الهندسة", "Engineering"},
		{"it", "تقنية المعلومات", "Information Technology"},
		{"healthcare", "الرعاية الصحية", "Healthcare"},
		{"education", "التعليم", "Education"},
		{"finance", "المالية والمحاسبة", "Finance & Accounting"},
		{"sales", "المبيعات", "Sales"},
		{"marketing", "التسويق", "Marketing"},
		{"hr", "الموارد البشرية", "Human Resources"},
		{"legal", "القانون", "Legal"},
		{"logistics", "الخدمات اللوجستية", "Logistics"},
		{"hospitality", "الضيافة", "Hospitality"},
		{"construction", "البناء والتشييد", "Construction"},
		{"other", "أخرى", "Other"},
	}

	jobTypes = []Term{
		{"full_time", "دوام كامل", "Full-time"},
		{"part_time", "دوام جزئي", "Part-time"},
		{"contract", "عقد مؤقت", "Contract"},
		{"internship", "تدريب", "Internship"},
		{"remote", "عن بعد", "Remote"},
	}

	cities = []Term{
		{"cairo", "القاهرة", "Cairo"},
		{"alexandria", "الإسكندرية", "Alexandria"},
		{"giza", "الجيزة", "Giza"},
		{"riyadh", "الرياض", "Riyadh"},
		{"jeddah", "جدة", "Jeddah"},
		{"dammam", "الدمام", "Dammam"},
		{"dubai", "دبي", "Dubai"},
		{"abu_dhabi", "أبو ظبي", "Abu Dhabi"},
		{"amman", "عمّان", "Amman"},
		{"kuwait_city", "مدينة الكويت", "Kuwait City"},
		{"doha", "الدوحة", "Doha"},
		{"manama", "المنامة", "Manama"},
		{"other", "أخرى", "Other"},
	}
)

// TaxonomyService serves the static bilingual lookups.
type TaxonomyService struct{}

// NewTaxonomyService creates a TaxonomyService.
func NewTaxonomyService() *TaxonomyService {
	return &TaxonomyService{}
}

// Categories returns the job category taxonomy.
func (s *TaxonomyService) Categories() []Term { return categories }

// JobTypes returns the employment type taxonomy.
func (s *TaxonomyService) JobTypes() []Term { return jobTypes }

// Cities returns the city taxonomy.
func (s *TaxonomyService) Cities() []Term { return cities }

// ValidCategory reports whether code is a known category.
func (s *TaxonomyService) ValidCategory(code string) bool { return containsTerm(categories, code) }

// ValidJobType reports whether code is a known job type.
func (s *TaxonomyService) ValidJobType(code string) bool { return containsTerm(jobTypes, code) }

// ValidCity reports whether code is a known city.
func (s *TaxonomyService) ValidCity(code string) bool { return containsTerm(cities, code) }

func containsTerm(terms []Term, code string) bool {
	for _, t := range terms {
		if t.Code == code {
			return true
		}
	}
	return false
}
