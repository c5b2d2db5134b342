package resolver

import "strings"

// fallbackRules map keyword groups to canned replies. Groups are checked in
// order; the first keyword hit wins.
var fallbackRules = []struct {
	keywords []string
	reply    string
}{
	{
		keywords: []string{"hi", "hello", "hey", "good morning", "good afternoon"},
		reply:    "Hello! Welcome to Nike Customer Support. I'm here to help you with any questions about our sneakers, sizing, shipping, returns, or anything else Nike-related. How can I assist you today?",
	},
	{
		keywords: []string{"size", "fit", "sizing"},
		reply:    "For sizing help: Nike sneakers generally run true to size. I recommend checking our size chart on the website. If you're between sizes, go half a size up. Would you like specific sizing advice for a particular Nike model?",
	},
	{
		keywords: []string{"shipping", "delivery", "ship"},
		reply:    "Shipping Information: Standard shipping takes 3-5 business days ($5). Free shipping on orders over $50. Express shipping (1-2 days) is $15. Overnight shipping is $25. All orders placed before 2 PM EST ship same day.",
	},
	{
		keywords: []string{"return", "refund", "exchange"},
		reply:    "Returns & Exchanges: Nike offers a 30-day return policy for unworn items in original packaging. Returns are free with our prepaid return label. For defective products, we offer a 2-year warranty.",
	},
	{
		keywords: []string{"product", "shoe", "sneaker", "nike"},
		reply:    "I can help you with information about Nike products! We have Air Max, Jordan, React, Zoom, Dunk, and many other popular models. What specific Nike sneaker are you interested in learning about?",
	},
}

const fallbackDefault = "Thank you for contacting Nike Customer Support! I'm here to help with questions about our sneakers, sizing, shipping, returns, and more. Could you please provide more details about what you're looking for?"

// ruleFallback returns a keyword-matched canned reply, or the generic default
// when nothing matches. It never returns an empty string.
func ruleFallback(rawQuery string) string {
	q := strings.ToLower(rawQuery)
	for _, rule := range fallbackRules {
		for _, kw := range rule.keywords {
			if strings.Contains(q, kw) {
				return rule.reply
			}
		}
	}
	return fallbackDefault
}
