package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// Pre-authored two-part prompts (headline + example) per missing field. The
// text never depends on already-known fields.
var questionsEnglish = map[Field][2]string{
	FieldAge:           {"What is your age? 🎂", "*Type a number (e.g., 25)*"},
	FieldProfession:    {"What do you do? 💼", "• 'farmer' 🌾 • 'student' 📚 • 'job' 💼"},
	FieldSettlement:    {"Where do you live? 🏠", "• 'village' 🌾 • 'city' 🏙️"},
	FieldIncome:        {"Family income per year? 💰", "e.g., '2 lakh' or '50000'"},
	FieldHouseholdSize: {"How many family members? 👨‍👩‍👧‍👦", "*Type a number (e.g., 4)*"},
}

var questionsHindi = map[Field][2]string{
	FieldAge:           {"आपकी उम्र क्या है? 🎂", "*संख्या लिखें (जैसे: 25)*"},
	FieldProfession:    {"आप क्या करते हैं? 💼", "• 'किसान' 🌾 • 'छात्र' 📚 • 'नौकरी' 💼"},
	FieldSettlement:    {"आप कहाँ रहते हैं? 🏠", "• 'गांव' 🌾 • 'शहर' 🏙️"},
	FieldIncome:        {"सालाना पारिवारिक आय? 💰", "जैसे: '2 लाख' या '50000'"},
	FieldHouseholdSize: {"परिवार में कितने सदस्य? 👨‍👩‍👧‍👦", "*संख्या लिखें (जैसे: 4)*"},
}

// questionFor renders the fixed prompt for a missing field.
func questionFor(f Field, lang Language) string {
	var q [2]string
	var ok bool
	if lang == LanguageHindi {
		q, ok = questionsHindi[f]
	} else {
		q, ok = questionsEnglish[f]
	}
	if !ok {
		if lang == LanguageHindi {
			return "कृपया और जानकारी दें।"
		}
		return "Please provide more details."
	}
	return q[0] + "\n" + q[1]
}

// WelcomeMessage is the opening prompt shown before any user turn.
func WelcomeMessage(lang Language) string {
	if lang == LanguageHindi {
		return "नमस्ते! मैं आपका स्मार्ट सहायक हूं! 🚀\n\n" +
			"मैं सिर्फ **5 आसान सवाल** पूछकर **बेहतरीन योजनाएं** खोजूंगा।\n\n" +
			"आप **हिंदी, English, या Hinglish** में जवाब दे सकते हैं!\n\n" +
			"**आपकी उम्र क्या है?** 🎂\n*उदाहरण: \"25\", \"पच्चीस\", \"25 years\"*"
	}
	return "Hello! I'm your smart assistant! 🚀\n\n" +
		"I'll find **perfect schemes** for you by asking just **5 quick questions**.\n\n" +
		"You can respond in **English, Hindi, or Hinglish**!\n\n" +
		"**What's your age?** 🎂\n*Examples: \"25\", \"twenty five\", \"25 saal\"*"
}

// recommendationSummary lists the top matching programs. Re-entrant: every
// non-side-intent turn in the recommending stage re-issues it.
func (e *Engine) recommendationSummary(lang Language) string {
	ranked := e.Ranked()
	if len(ranked) == 0 {
		if lang == LanguageHindi {
			return "आपकी प्रोफ़ाइल से मेल खाने वाली कोई योजना नहीं मिली।"
		}
		return "No schemes found matching your profile."
	}

	limit := e.cfg.MaxRecommendations
	if len(ranked) < limit {
		limit = len(ranked)
	}

	var b strings.Builder
	if lang == LanguageHindi {
		b.WriteString("🎯 **बहुत बढ़िया! आपके लिए सबसे अच्छी सरकारी योजनाएं मिल गईं!**\n\n")
		for i := 0; i < limit; i++ {
			fmt.Fprintf(&b, "**%d. %s** — %s\n", i+1, ranked[i].NameHindi, ranked[i].BenefitSummaryHindi)
		}
		b.WriteString("\nपूरी जानकारी के लिए 'details 1' (या 2, 3) लिखें।")
	} else {
		b.WriteString("🎯 **Perfect! Found the best government schemes for you!**\n\n")
		for i := 0; i < limit; i++ {
			fmt.Fprintf(&b, "**%d. %s** — %s\n", i+1, ranked[i].NameEnglish, ranked[i].BenefitSummaryEnglish)
		}
		b.WriteString("\nType 'details 1' (or 2, 3) to see complete details for a scheme.")
	}
	return b.String()
}

// ShowDetails formats the ranked program at a 1-based position. Positions
// outside the current top ranked list get a localized try-again message, not
// an error.
func (e *Engine) ShowDetails(pos int, lang Language) string {
	ranked := e.Ranked()
	limit := e.cfg.MaxRecommendations
	if len(ranked) < limit {
		limit = len(ranked)
	}

	if pos < 1 || pos > limit {
		return invalidSelectionMessage(lang)
	}

	p := ranked[pos-1]
	amount := formatAmount(p.BenefitAmount)

	if lang == LanguageHindi {
		return fmt.Sprintf(`## 📋 %s - पूरी जानकारी

**💰 वित्तीय लाभ:**
%s (कुल: ₹%s)

**✅ पात्रता:**
%s

**📄 आवश्यक दस्तावेज:**
%s

**🌐 आवेदन कैसे करें:**
1. वेबसाइट पर जाएं: %s
2. 'नया पंजीकरण' पर क्लिक करें
3. आधार OTP से फॉर्म भरें और दस्तावेज अपलोड करें
4. सबमिट करें और रेफरेंस नंबर सेव करें

**📞 सहायता:**
• हेल्पलाइन: %s (टोल-फ्री)
• समय: सुबह 9 से शाम 6 बजे

*नजदीकी आवेदन केंद्र खोजने के लिए 'offices near me' लिखें*`,
			p.NameHindi, p.BenefitSummaryHindi, amount, p.EligibilitySummaryHindi,
			strings.Join(p.DocsHindi, ", "), p.Website, p.Helpline)
	}

	return fmt.Sprintf(`## 📋 %s - Complete Details

**💰 Financial Benefit:**
%s (Total: ₹%s)

**✅ Eligibility:**
%s

**📄 Required Documents:**
%s

**🌐 How to Apply:**
1. Visit: %s
2. Click 'New Registration'
3. Fill the form with Aadhaar OTP and upload documents
4. Submit and save the reference number

**📞 Help & Support:**
• Helpline: %s (Toll-free)
• Timings: 9 AM to 6 PM

*Type 'offices near me' to find local application centers*`,
		p.NameEnglish, p.BenefitSummaryEnglish, amount, p.EligibilitySummaryEnglish,
		strings.Join(p.DocsEnglish, ", "), p.Website, p.Helpline)
}

func invalidSelectionMessage(lang Language) string {
	if lang == LanguageHindi {
		return "कृपया सही योजना नंबर बताएं (1, 2, या 3)।"
	}
	return "Please specify a valid scheme number (1, 2, or 3)."
}

func askPlaceNameMessage(lang Language) string {
	if lang == LanguageHindi {
		return "### 🏢 अपने नजदीक सरकारी कार्यालय खोजें:\n\n" +
			"**अपने शहर का नाम बताएं**, मैं सटीक कार्यालय खोजूंगा! 🎯\n\n" +
			"*उदाहरण: \"मुंबई\", \"दिल्ली\", \"जयपुर\", \"लखनऊ\" लिखें*"
	}
	return "### 🏢 Find Government Offices Near You:\n\n" +
		"**Tell me your city name**, and I'll find exact offices! 🎯\n\n" +
		"*Example: Type \"Mumbai\", \"Delhi\", \"Jaipur\", \"Lucknow\"*"
}

// officesResponse renders an office list for a place.
func officesResponse(place, region string, offices []string, lang Language) string {
	var b strings.Builder
	if lang == LanguageHindi {
		fmt.Fprintf(&b, "**🏢 %s, %s में सरकारी कार्यालय:**\n\n", place, region)
		for i, office := range offices {
			fmt.Fprintf(&b, "%d. %s\n", i+1, office)
		}
		b.WriteString("\n**📱 सटीक स्थान के लिए:**\n")
		fmt.Fprintf(&b, "• Google Maps: \"%s\" खोजें\n", offices[0])
		b.WriteString("• जिला हेल्पलाइन: 1800-180-1551 पर कॉल करें\n")
		b.WriteString("• आधार सपोर्ट: 1947\n\n")
		b.WriteString("*सभी दस्तावेजों के मूल + 2 फोटोकॉपी लेकर जाएं*")
	} else {
		fmt.Fprintf(&b, "**🏢 Government Offices in %s, %s:**\n\n", place, region)
		for i, office := range offices {
			fmt.Fprintf(&b, "%d. %s\n", i+1, office)
		}
		b.WriteString("\n**📱 For Exact Locations:**\n")
		fmt.Fprintf(&b, "• Google Maps: Search \"%s\"\n", offices[0])
		b.WriteString("• District Helpline: Call 1800-180-1551\n")
		b.WriteString("• Aadhaar Support: 1947\n\n")
		b.WriteString("*Carry originals + 2 photocopies of all documents*")
	}
	return b.String()
}

// formatAmount groups digits with commas for display (6000 -> "6,000").
func formatAmount(n int) string {
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	return s + "," + strings.Join(parts, ",")
}
