package catalog

// builtinPrograms is the fallback catalog used when no catalog file can be
// loaded. The order here is the ranking tiebreak order.
func builtinPrograms() []Program {
	return []Program{
		{
			ID:                        "pm_kisan",
			NameEnglish:               "PM Kisan Samman Nidhi",
			NameHindi:                 "PM किसान सम्मान निधि",
			Category:                  "agriculture",
			BenefitAmount:             6000,
			BenefitSummaryEnglish:     "₹6,000/year in 3 installments",
			BenefitSummaryHindi:       "₹6,000/वर्ष 3 किस्तों में",
			EligibilitySummaryEnglish: "Small & marginal farmers with up to 2 hectares land",
			EligibilitySummaryHindi:   "2 हेक्टेयर तक भूमि वाले छोटे और सीमांत किसान",
			TargetUsers:               []string{"farmer"},
			Website:                   "pmkisan.gov.in",
			Helpline:                  "155261",
			DocsEnglish:               []string{"Aadhaar", "Land records", "Bank account"},
			DocsHindi:                 []string{"आधार", "भूमि रिकॉर्ड", "बैंक खाता"},
		},
		{
			ID:                        "ayushman_bharat",
			NameEnglish:               "Ayushman Bharat PM-JAY",
			NameHindi:                 "आयुष्मान भारत",
			Category:                  "health",
			BenefitAmount:             500000,
			BenefitSummaryEnglish:     "₹5 lakh health insurance per family",
			BenefitSummaryHindi:       "₹5 लाख प्रति परिवार स्वास्थ्य बीमा",
			EligibilitySummaryEnglish: "BPL families and SECC 2011 eligible categories",
			EligibilitySummaryHindi:   "BPL परिवार और SECC 2011 पात्र श्रेणियां",
			TargetUsers:               []string{"unemployed", "employee"},
			Website:                   "pmjay.gov.in",
			Helpline:                  "14555",
			DocsEnglish:               []string{"Aadhaar", "Ration card", "SECC verification"},
			DocsHindi:                 []string{"आधार", "राशन कार्ड", "SECC सत्यापन"},
		},
		{
			ID:                        "pm_awas_urban",
			NameEnglish:               "PM Awas Yojana Urban",
			NameHindi:                 "PM आवास योजना",
			Category:                  "housing",
			BenefitAmount:             267000,
			BenefitSummaryEnglish:     "₹2.67 lakh housing subsidy",
			BenefitSummaryHindi:       "₹2.67 लाख आवास सब्सिडी",
			EligibilitySummaryEnglish: "Urban families without pucca house, income up to ₹18 lakh",
			EligibilitySummaryHindi:   "पक्का मकान न होने वाले शहरी परिवार, ₹18 लाख तक आय",
			TargetUsers:               []string{"employee", "unemployed"},
			Website:                   "pmaymis.gov.in",
			Helpline:                  "1800116446",
			DocsEnglish:               []string{"Aadhaar", "Income certificate", "Property documents"},
			DocsHindi:                 []string{"आधार", "आय प्रमाण पत्र", "संपत्ति दस्तावेज"},
		},
		{
			ID:                        "nsp_scholarship",
			NameEnglish:               "National Scholarship Portal",
			NameHindi:                 "राष्ट्रीय छात्रवृत्ति",
			Category:                  "education",
			BenefitAmount:             36000,
			BenefitSummaryEnglish:     "Up to ₹36,000/year for studies",
			BenefitSummaryHindi:       "अध्ययन के लिए ₹36,000/वर्ष तक",
			EligibilitySummaryEnglish: "SC/ST/OBC/Minority students, family income up to ₹2.5 lakh",
			EligibilitySummaryHindi:   "SC/ST/OBC/अल्पसंख्यक छात्र, ₹2.5 लाख तक पारिवारिक आय",
			TargetUsers:               []string{"student"},
			Website:                   "scholarships.gov.in",
			Helpline:                  "0120-6619540",
			DocsEnglish:               []string{"Aadhaar", "Marksheets", "Income certificate", "Caste certificate"},
			DocsHindi:                 []string{"आधार", "मार्कशीट", "आय प्रमाण पत्र", "जाति प्रमाण पत्र"},
		},
	}
}
