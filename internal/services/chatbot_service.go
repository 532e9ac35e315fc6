package services

import (
	"fmt"
	"regexp"
	"strings"
)

// FallbackReply is returned when no rule matches.
const FallbackReply = "Sorry, I didn't get that. You can ask me about places to visit, the best season to travel, how to reach a city, local food, or visa and currency basics."

// chatRule pairs a pattern against the lowercased input with either a
// static reply or a template built from the capture groups.
type chatRule struct {
	pattern *regexp.Regexp
	reply   string
	handler func(groups []string) string
}

// ChatbotService answers canned travel questions with a first-match-wins
// scan over an ordered rule list. No state is kept across turns.
type ChatbotService struct {
	rules []chatRule
}

var cityHighlights = map[string]string{
	"jabalpur":  "Dhuandhar Falls, the Marble Rocks at Bhedaghat, Madan Mahal Fort and the Dumna Nature Reserve",
	"delhi":     "the Red Fort, Qutub Minar, Humayun's Tomb, India Gate and Chandni Chowk",
	"agra":      "the Taj Mahal, Agra Fort, Mehtab Bagh and Fatehpur Sikri",
	"jaipur":    "Amber Fort, Hawa Mahal, City Palace and Jantar Mantar",
	"mumbai":    "the Gateway of India, Marine Drive, Elephanta Caves and Juhu Beach",
	"varanasi":  "the ghats of the Ganga, Kashi Vishwanath Temple and the evening Ganga Aarti",
	"goa":       "Baga and Palolem beaches, Old Goa churches and Dudhsagar Falls",
	"udaipur":   "City Palace, Lake Pichola, Jag Mandir and the Monsoon Palace",
	"amritsar":  "the Golden Temple, Jallianwala Bagh and the Wagah border ceremony",
	"hyderabad": "Charminar, Golconda Fort, Chowmahalla Palace and Ramoji Film City",
}

func NewChatbotService() *ChatbotService {
	return &ChatbotService{rules: []chatRule{
		{
			pattern: regexp.MustCompile(`^(hi|hello|hey|namaste)\b`),
			reply:   "Namaste! I'm your travel assistant for destinations across India. What would you like to know?",
		},
		{
			pattern: regexp.MustCompile(`best places? to (?:visit|see) in ([a-z ]+?)\s*$`),
			handler: func(groups []string) string {
				city := strings.TrimSpace(groups[1])
				if highlights, ok := cityHighlights[city]; ok {
					return fmt.Sprintf("The best places to visit in %s are %s.", titleCase(city), highlights)
				}
				return fmt.Sprintf("I don't have a curated list for %s yet, but you can browse all its destinations on the city page.", titleCase(city))
			},
		},
		{
			pattern: regexp.MustCompile(`(?:best (?:time|season)|when) to visit ([a-z ]+?)\s*$`),
			handler: func(groups []string) string {
				return fmt.Sprintf("For most of India, October to March is the most pleasant season. Check the %s city page for month-by-month weather.", titleCase(strings.TrimSpace(groups[1])))
			},
		},
		{
			pattern: regexp.MustCompile(`how (?:do i|to|can i) (?:reach|get to) ([a-z ]+?)\s*$`),
			handler: func(groups []string) string {
				return fmt.Sprintf("%s is connected by air, rail and road. The transport section of its city page lists airports, stations and fares.", titleCase(strings.TrimSpace(groups[1])))
			},
		},
		{
			pattern: regexp.MustCompile(`(famous|local) (food|dish|cuisine|specialt)`),
			reply:   "Every city page has a Local Specialties section covering food, crafts and where to find them. Tell me a city and I'll point you there.",
		},
		{
			pattern: regexp.MustCompile(`\b(weather|temperature|forecast)\b`),
			reply:   "You can check live weather on any city page, or use the weather search with a city name.",
		},
		{
			pattern: regexp.MustCompile(`\b(visa|e-?visa|entry requirements?)\b`),
			reply:   "Most visitors can apply for an Indian e-Visa online; tourist e-Visas are typically issued for 30 days, 1 year or 5 years. Always confirm on the official immigration portal.",
		},
		{
			pattern: regexp.MustCompile(`\b(currency|exchange rate|rupee|inr)\b`),
			reply:   "India uses the Indian Rupee (INR). Use the currency converter to estimate costs in your home currency.",
		},
		{
			pattern: regexp.MustCompile(`digital id|travel document|travel id`),
			reply:   "Signed-in travelers can create a Digital ID from their profile. It generates a verifiable travel document you can present at participating hotels and tours.",
		},
		{
			pattern: regexp.MustCompile(`\b(train|railway|irctc)\b`),
			reply:   "Indian Railways tickets can be booked on IRCTC. Major tourist routes sell out early, so book a few weeks ahead.",
		},
		{
			pattern: regexp.MustCompile(`\b(taj ?mahal)\b`),
			reply:   "The Taj Mahal in Agra is open sunrise to sunset and closed on Fridays. Sunrise visits have the shortest queues.",
		},
		{
			pattern: regexp.MustCompile(`\b(beach|beaches)\b`),
			reply:   "For beaches, look at Goa, Gokarna, Varkala and the Andaman Islands. November to February is ideal.",
		},
		{
			pattern: regexp.MustCompile(`\b(mountain|hill station|himalaya|trek)\b`),
			reply:   "Popular hill escapes include Manali, Shimla, Darjeeling, Munnar and Ladakh. For treks, the best windows are May-June and September-October.",
		},
		{
			pattern: regexp.MustCompile(`\b(thanks|thank you|dhanyavad)\b`),
			reply:   "You're welcome! Shubh yatra - happy travels!",
		},
		{
			pattern: regexp.MustCompile(`\b(bye|goodbye)\b`),
			reply:   "Goodbye! Come back any time you plan your next trip.",
		},
	}}
}

// titleCase uppercases the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Reply lowercases the input and returns the first matching rule's
// response, or the fixed fallback when nothing matches.
func (cs *ChatbotService) Reply(input string) string {
	text := strings.ToLower(strings.TrimSpace(input))
	if text == "" {
		return FallbackReply
	}

	for _, rule := range cs.rules {
		groups := rule.pattern.FindStringSubmatch(text)
		if groups == nil {
			continue
		}
		if rule.handler != nil {
			return rule.handler(groups)
		}
		return rule.reply
	}

	return FallbackReply
}
