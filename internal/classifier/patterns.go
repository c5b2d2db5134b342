package classifier

import "regexp"

// intentPatterns maps intents to phrasing patterns. Evaluation order is
// fixed: intents in declaration order, patterns in list order, first match
// wins. Patterns are searched, not anchored.
var intentPatterns = []struct {
	Intent   string
	Patterns []*regexp.Regexp
}{
	{
		Intent: "sizing",
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`what size.*`),
			regexp.MustCompile(`.*size.*should.*`),
			regexp.MustCompile(`.*fit.*`),
			regexp.MustCompile(`.*big.*small.*`),
			regexp.MustCompile(`.*wide.*feet.*`),
			regexp.MustCompile(`.*true.*size.*`),
			regexp.MustCompile(`.*size.*chart.*`),
		},
	},
	{
		Intent: "shipping",
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`.*shipping.*`),
			regexp.MustCompile(`.*delivery.*`),
			regexp.MustCompile(`.*arrive.*`),
			regexp.MustCompile(`.*track.*order.*`),
			regexp.MustCompile(`.*overnight.*`),
			regexp.MustCompile(`.*express.*`),
			regexp.MustCompile(`.*free.*shipping.*`),
		},
	},
	{
		Intent: "returns",
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`.*return.*`),
			regexp.MustCompile(`.*refund.*`),
			regexp.MustCompile(`.*exchange.*`),
			regexp.MustCompile(`.*warranty.*`),
			regexp.MustCompile(`.*defective.*`),
			regexp.MustCompile(`.*money.*back.*`),
		},
	},
	{
		Intent: "products",
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`.*air.*max.*`),
			regexp.MustCompile(`.*jordan.*`),
			regexp.MustCompile(`.*dunk.*`),
			regexp.MustCompile(`.*react.*`),
			regexp.MustCompile(`.*zoom.*`),
			regexp.MustCompile(`.*tell.*me.*about.*`),
			regexp.MustCompile(`.*what.*nike.*`),
		},
	},
	{
		Intent: "price",
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`.*price.*`),
			regexp.MustCompile(`.*cost.*`),
			regexp.MustCompile(`.*how.*much.*`),
			regexp.MustCompile(`.*sale.*`),
			regexp.MustCompile(`.*discount.*`),
			regexp.MustCompile(`.*coupon.*`),
			regexp.MustCompile(`.*cheap.*`),
		},
	},
	{
		Intent: "availability",
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`.*stock.*`),
			regexp.MustCompile(`.*available.*`),
			regexp.MustCompile(`.*sold.*out.*`),
			regexp.MustCompile(`.*restock.*`),
			regexp.MustCompile(`.*inventory.*`),
			regexp.MustCompile(`.*in.*stock.*`),
		},
	},
	{
		Intent: "care",
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`.*clean.*`),
			regexp.MustCompile(`.*wash.*`),
			regexp.MustCompile(`.*care.*`),
			regexp.MustCompile(`.*maintain.*`),
			regexp.MustCompile(`.*protect.*`),
			regexp.MustCompile(`.*stain.*`),
		},
	},
}

// MatchPattern tests the cleaned, un-tokenized query against the pattern
// table and returns the intent of the first matching pattern.
func MatchPattern(cleanedQuery string) (string, bool) {
	for _, group := range intentPatterns {
		for _, pattern := range group.Patterns {
			if pattern.MatchString(cleanedQuery) {
				return group.Intent, true
			}
		}
	}
	return "", false
}
