package formula

// ProductCategory classifies a product for cost-coefficient selection. Tile
// production skews labor-heavy, cement skews energy-heavy; the costing layer
// keys its per-category overrides on this value.
type ProductCategory string

const (
	CategoryCement   ProductCategory = "cement"
	CategoryRebar    ProductCategory = "rebar"
	CategoryTile     ProductCategory = "tile"
	CategoryFlooring ProductCategory = "flooring"
	CategoryGypsum   ProductCategory = "gypsum"
	CategoryConcrete ProductCategory = "concrete"
	CategoryBrick    ProductCategory = "brick"
	CategoryCustom   ProductCategory = "custom"
	CategoryOther    ProductCategory = "other"
)

// ParseProductCategory converts a string to a ProductCategory, mapping
// unknown values to CategoryOther.
func ParseProductCategory(s string) ProductCategory {
	switch ProductCategory(s) {
	case CategoryCement, CategoryRebar, CategoryTile, CategoryFlooring,
		CategoryGypsum, CategoryConcrete, CategoryBrick, CategoryCustom:
		return ProductCategory(s)
	default:
		return CategoryOther
	}
}

func (c ProductCategory) String() string {
	return string(c)
}
