package knowledge

// TrainingExample is one labeled query for the intent classifier. Weight is
// informational only and does not influence scoring.
type TrainingExample struct {
	Query  string
	Intent string
	Weight float64
}

// TrainingData is the labeled corpus the classifier is fitted on, in corpus
// order. Ties on similarity resolve to the first example.
var TrainingData = []TrainingExample{
	// Sizing queries
	{"What size should I get for Air Max?", "sizing", 1.0},
	{"Do Nike shoes run big or small?", "sizing", 1.0},
	{"I wear size 9 in Adidas, what Nike size?", "sizing", 1.0},
	{"Are Air Jordans true to size?", "sizing", 1.0},
	{"I have wide feet, what should I order?", "sizing", 1.0},
	{"Size chart for women's Nike", "sizing", 1.0},
	{"How do I measure my foot for Nike shoes?", "sizing", 1.0},

	// Shipping queries
	{"How long does shipping take?", "shipping", 1.0},
	{"Do you offer overnight delivery?", "shipping", 1.0},
	{"What are your shipping options?", "shipping", 1.0},
	{"Can I track my order?", "shipping", 1.0},
	{"Free shipping minimum order?", "shipping", 1.0},
	{"International shipping available?", "shipping", 1.0},
	{"When will my shoes arrive?", "shipping", 1.0},

	// Return queries
	{"What's your return policy?", "returns", 1.0},
	{"Can I return worn shoes?", "returns", 1.0},
	{"How do I return my order?", "returns", 1.0},
	{"Refund processing time?", "returns", 1.0},
	{"Exchange for different size?", "returns", 1.0},
	{"Return shipping label?", "returns", 1.0},
	{"Defective shoe warranty?", "returns", 1.0},

	// Product queries
	{"Tell me about Air Max 270", "products", 1.0},
	{"What Nike shoes are popular?", "products", 1.0},
	{"Air Jordan 1 price?", "products", 1.0},
	{"Best Nike running shoes?", "products", 1.0},
	{"New Nike releases?", "products", 1.0},
	{"Nike Dunk availability?", "products", 1.0},
	{"Difference between Air Max models?", "products", 1.0},

	// Price queries
	{"How much do Air Jordans cost?", "price", 1.0},
	{"Are there any sales right now?", "price", 1.0},
	{"Student discount available?", "price", 1.0},
	{"Price range for Nike sneakers?", "price", 1.0},
	{"Coupon codes for Nike?", "price", 1.0},
	{"When do Nike shoes go on sale?", "price", 1.0},

	// Availability queries
	{"Is Air Max 270 in stock?", "availability", 1.0},
	{"When will size 10 be restocked?", "availability", 1.0},
	{"Sold out shoes restock date?", "availability", 1.0},
	{"Check inventory for Jordan 1", "availability", 1.0},
	{"Notify me when back in stock", "availability", 1.0},

	// Care queries
	{"How to clean Nike shoes?", "care", 1.0},
	{"Can I wash Nike sneakers?", "care", 1.0},
	{"Shoe care products for Nike?", "care", 1.0},
	{"How to protect white sneakers?", "care", 1.0},
	{"Remove stains from Nike shoes", "care", 1.0},

	// Greeting queries
	{"Hi", "greeting", 1.0},
	{"Hello", "greeting", 1.0},
	{"Good morning", "greeting", 1.0},
	{"Hey there", "greeting", 1.0},
	{"I need help", "greeting", 0.8},
}
