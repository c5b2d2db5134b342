package knowledge

import "strings"

// Product holds the catalog facts for one sneaker model.
type Product struct {
	Name        string
	Price       string
	Description string
	Sizes       string
	Colors      string
}

// Catalog is the product table in declaration order. Order matters: the
// first matching entry wins when a query mentions several models.
var Catalog = []Product{
	{
		Name:        "Air Max 270",
		Price:       "$150",
		Description: "Experience maximum comfort with our largest Air unit ever. The Air Max 270 delivers exceptional all-day comfort with its innovative design and premium materials.",
		Sizes:       "Men's 6-14, Women's 5-12 (including half sizes)",
		Colors:      "15+ colorways including Black/White, Triple White, Rainbow, and seasonal releases",
	},
	{
		Name:        "Air Jordan 1 Retro High",
		Price:       "$170",
		Description: "The iconic basketball silhouette that started it all. Premium leather construction meets timeless design in this legendary sneaker that transcends sports and culture.",
		Sizes:       "Men's 6-18, Women's 5-15 (including half sizes)",
		Colors:      "Multiple colorways including Chicago, Bred, Royal, Shadow, and limited collaborations",
	},
	{
		Name:        "React Element 55",
		Price:       "$130",
		Description: "Lightweight React foam technology provides bouncy, responsive cushioning with every step. Modern design meets innovative comfort technology.",
		Sizes:       "Men's 6-13, Women's 5-12 (including half sizes)",
		Colors:      "8 colorways including Black/White, Triple Black, Bright Crimson, and seasonal options",
	},
	{
		Name:        "Zoom Pegasus 39",
		Price:       "$130",
		Description: "Our most popular running shoe trusted by millions of runners worldwide. Features responsive Zoom Air cushioning and breathable mesh upper.",
		Sizes:       "Men's 6-15, Women's 5-12 (including half sizes)",
		Colors:      "12 colorways including classic Black/White, vibrant seasonal colors, and special editions",
	},
	{
		Name:        "Dunk Low",
		Price:       "$100",
		Description: "Retro basketball shoe reimagined for modern style. Classic silhouette with updated comfort features and premium materials.",
		Sizes:       "Men's 6-14, Women's 5-12 (including half sizes)",
		Colors:      "20+ colorways including Panda, University Blue, Chicago, and exclusive collaborations",
	},
	{
		Name:        "Air Force 1",
		Price:       "$90",
		Description: "The legendary basketball shoe that became a cultural icon. Clean, classic design with premium leather and Air cushioning.",
		Sizes:       "Men's 6-18, Women's 5-15 (including half sizes)",
		Colors:      "Triple White, Triple Black, and 50+ seasonal colorways and collaborations",
	},
	{
		Name:        "Blazer Mid",
		Price:       "$100",
		Description: "Vintage basketball style meets modern comfort. Premium suede and leather construction with classic Nike styling.",
		Sizes:       "Men's 6-13, Women's 5-12 (including half sizes)",
		Colors:      "Classic colorways and seasonal releases including vintage-inspired options",
	},
}

// productAlias maps a shorthand substring to a catalog product name.
type productAlias struct {
	Keyword string
	Product string
}

// productAliases is an ordered priority list, not a set. A query containing
// several aliases ("jordan or dunk?") resolves to the first listed match.
var productAliases = []productAlias{
	{"air max", "Air Max 270"},
	{"jordan", "Air Jordan 1 Retro High"},
	{"react", "React Element 55"},
	{"pegasus", "Zoom Pegasus 39"},
	{"dunk", "Dunk Low"},
}

// MatchProduct scans a raw query for a catalog product mention. Each product
// name is tested in three variants (verbatim lowercase, spaces removed,
// spaces as hyphens); when no name matches, the alias table is consulted in
// priority order. Returns nil when nothing matches.
func MatchProduct(rawQuery string) *Product {
	query := strings.ToLower(rawQuery)

	for i := range Catalog {
		name := strings.ToLower(Catalog[i].Name)
		variants := []string{
			name,
			strings.ReplaceAll(name, " ", ""),
			strings.ReplaceAll(name, " ", "-"),
		}
		for _, v := range variants {
			if strings.Contains(query, v) {
				return &Catalog[i]
			}
		}
	}

	for _, alias := range productAliases {
		if strings.Contains(query, alias.Keyword) {
			return LookupProduct(alias.Product)
		}
	}

	return nil
}

// LookupProduct returns the catalog entry for an exact product name, or nil.
func LookupProduct(name string) *Product {
	for i := range Catalog {
		if Catalog[i].Name == name {
			return &Catalog[i]
		}
	}
	return nil
}
