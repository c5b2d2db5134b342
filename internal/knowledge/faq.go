// Package knowledge holds the static support knowledge base: FAQ intents,
// the product catalog, and the labeled training corpus. All data is
// read-only after load.
package knowledge

// IntentEntry maps an intent to its trigger keywords and canned responses.
type IntentEntry struct {
	Name      string
	Keywords  []string
	Responses []string
}

// Intents is the FAQ knowledge base in declaration order.
var Intents = []IntentEntry{
	{
		Name:     "greeting",
		Keywords: []string{"hi", "hello", "hey", "good morning", "good afternoon", "good evening", "greetings"},
		Responses: []string{
			"Hello! Welcome to Nike Customer Support. I'm here to help you with any questions about our sneakers, sizing, shipping, returns, or anything else Nike-related. How can I assist you today?",
			"Hi there! Thanks for contacting Nike Customer Support. I can help you with product information, sizing advice, shipping details, returns, and more. What can I do for you?",
			"Hey! Welcome to Nike! I'm your customer support assistant, ready to help with all your Nike sneaker questions. What would you like to know?",
		},
	},
	{
		Name:     "sizing",
		Keywords: []string{"size", "fit", "sizing", "big", "small", "wide", "narrow", "length", "width", "measurement", "chart"},
		Responses: []string{
			"Nike sneakers generally run true to size. For the best fit, we recommend measuring your foot and checking our size chart on the website. If you're between sizes, we suggest going half a size up.",
			"For sizing help: Nike Air Max models tend to run slightly large, while Nike Free and Flyknit models run true to size. Would you like specific sizing advice for a particular model?",
			"For wide feet, consider Nike models with 'Wide' options or go half a size up. Nike Air Monarch and Air Max 90 are great options for wider feet. Need help with a specific model?",
		},
	},
	{
		Name:     "returns",
		Keywords: []string{"return", "refund", "exchange", "money back", "unworn", "defective", "wrong size", "policy"},
		Responses: []string{
			"Nike offers a 30-day return policy for unworn items in original packaging. Returns are free with our prepaid return label. Just visit our website to start the return process.",
			"You can return or exchange Nike sneakers within 30 days of purchase. Items must be unworn and in original condition with all tags attached. We'll email you a prepaid return label.",
			"For defective products, we offer a 2-year warranty. Please contact us with photos of the defect for immediate assistance. We'll replace or refund defective items right away.",
		},
	},
	{
		Name:     "shipping",
		Keywords: []string{"shipping", "delivery", "fast", "expedited", "overnight", "tracking", "when will", "arrive", "ship"},
		Responses: []string{
			"Standard shipping takes 3-5 business days and costs $5. Free shipping on orders over $50. Express shipping (1-2 days) is available for $15.",
			"We offer overnight shipping for $25. All orders placed before 2 PM EST ship the same day. You'll receive tracking information via email once your order ships.",
			"International shipping is available to most countries. Delivery times vary by location (7-14 business days) with costs starting at $20. Duties and taxes may apply.",
		},
	},
	{
		Name:     "availability",
		Keywords: []string{"stock", "available", "sold out", "restock", "when back", "inventory", "in stock", "out of stock"},
		Responses: []string{
			"You can check real-time availability on our website. Popular sizes tend to sell out quickly, so we recommend signing up for restock notifications on product pages.",
			"Most Nike sneakers are restocked regularly. Sign up for our newsletter to get notified about restocks and new releases. You can also follow us on social media for updates.",
			"Limited edition and collaboration sneakers have limited availability. Follow our social media accounts for release updates and drop times. SNKRS app users get early access!",
		},
	},
	{
		Name:     "products",
		Keywords: []string{"air max", "jordan", "react", "zoom", "dunk", "blazer", "cortez", "air force", "product", "shoe", "sneaker", "model"},
		Responses: []string{
			"We have an amazing selection of Nike sneakers! Popular models include Air Max 270 ($150), Air Jordan 1 ($170), React Element 55 ($130), Zoom Pegasus 39 ($130), and Dunk Low ($100). What style interests you?",
			"Our top Nike sneakers: Air Max for maximum comfort, Jordan for iconic style, React for responsive cushioning, Zoom for performance, and Dunk for retro vibes. Which category appeals to you?",
			"Nike offers something for everyone! From running shoes like Pegasus to lifestyle sneakers like Air Max, basketball shoes like Jordan, and skateboarding shoes like Dunk. What's your intended use?",
		},
	},
	{
		Name:     "price",
		Keywords: []string{"price", "cost", "expensive", "cheap", "sale", "discount", "deal", "coupon", "promo", "money"},
		Responses: []string{
			"Nike sneaker prices range from $80-$200 depending on the model and technology. Check our website for current pricing and ongoing sales. We often have seasonal promotions!",
			"We regularly offer seasonal sales with up to 30% off select styles. Sign up for our newsletter to receive exclusive discount codes and be first to know about sales.",
			"Special discounts available: Students get 10% off with valid student ID, Military personnel receive 15% off with verification, Healthcare workers get 20% off. Verify your status on our website!",
		},
	},
	{
		Name:     "care",
		Keywords: []string{"clean", "wash", "care", "maintain", "protect", "waterproof", "stain", "cleaning"},
		Responses: []string{
			"Clean Nike sneakers with mild soap and water using a soft brush. Remove laces and insoles first. Air dry only - never put them in the dryer as heat can damage materials.",
			"For leather Nike shoes, use a leather cleaner and conditioner. For mesh and fabric materials, spot clean with gentle detergent. Avoid harsh chemicals that can damage colors.",
			"Nike offers waterproofing sprays and cleaning kits specifically designed for our sneakers. Available in stores and online. Regular cleaning extends the life of your shoes!",
		},
	},
	{
		Name:     "warranty",
		Keywords: []string{"warranty", "defect", "broken", "manufacturing", "quality", "guarantee", "problem"},
		Responses: []string{
			"Nike provides a 2-year warranty against manufacturing defects. This covers issues like sole separation, upper tearing, or hardware failure - not normal wear and tear.",
			"For warranty claims, please provide photos of the issue and proof of purchase. We'll review your case and provide a replacement or refund for valid manufacturing defects.",
			"We stand behind our quality! If you experience any manufacturing defects within 2 years, we'll make it right with a replacement or refund. Contact us with details and photos.",
		},
	},
}

// LookupIntent returns the entry for an intent name, or nil if unknown.
func LookupIntent(name string) *IntentEntry {
	for i := range Intents {
		if Intents[i].Name == name {
			return &Intents[i]
		}
	}
	return nil
}
