package costing

// Category is a closed enumeration of cost categories. Material is computed
// directly from the demand list; every other category is a coefficient applied
// to material cost.
type Category string

const (
	CategoryMaterial  Category = "material"
	CategoryLabor     Category = "labor"
	CategoryEnergy    Category = "energy"
	CategoryOverhead  Category = "overhead"
	CategoryTransport Category = "transport"
	CategoryPackaging Category = "packaging"
	CategoryQuality   Category = "quality"
)

// AdditionalCategories lists every coefficient-driven category in a fixed
// order, so breakdowns and reports iterate deterministically.
func AdditionalCategories() []Category {
	return []Category{
		CategoryLabor,
		CategoryEnergy,
		CategoryOverhead,
		CategoryTransport,
		CategoryPackaging,
		CategoryQuality,
	}
}

// ParseCategory validates a string against the closed category set.
func ParseCategory(s string) (Category, bool) {
	switch Category(s) {
	case CategoryMaterial, CategoryLabor, CategoryEnergy, CategoryOverhead,
		CategoryTransport, CategoryPackaging, CategoryQuality:
		return Category(s), true
	default:
		return "", false
	}
}

func (c Category) String() string {
	return string(c)
}
