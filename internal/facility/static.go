package facility

import "strings"

// The keyword tables below are ordered: rules are evaluated top to
// bottom and the first match wins. The order encodes fallback
// precedence and must not be re-sorted.

type facilityRule struct {
	keywords []string
	entries  []EmergencyFacility
}

type pricingRule struct {
	keywords []string
	entries  []Procedure
}

func matchesAny(lowerQuery string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lowerQuery, kw) {
			return true
		}
	}
	return false
}

// staticEmergencyFacilities is the terminal fallback for emergency
// queries when the model-backed search returns nothing.
var staticEmergencyFacilities = []EmergencyFacility{
	{Name: "Dubai Hospital Emergency", Address: "Oud Metha Road, Dubai", Phone: "+971 4 219 5000"},
	{Name: "American Hospital Dubai Emergency", Address: "Oud Metha Road, Dubai", Phone: "+971 4 336 7777"},
	{Name: "Mediclinic City Hospital Emergency", Address: "Dubai Healthcare City", Phone: "+971 4 435 9999"},
	{Name: "Al Zahra Hospital Emergency", Address: "Al Barsha, Dubai", Phone: "+971 4 378 6666"},
	{Name: "Rashid Hospital Emergency", Address: "Oud Metha Road, Dubai", Phone: "+971 4 219 2000"},
}

var facilityRules = []facilityRule{
	{
		keywords: []string{"boob", "breast", "plastic", "cosmetic", "aesthetic", "botox", "filler", "liposuction"},
		entries: []EmergencyFacility{
			{Name: "Dubai Cosmetic Surgery Clinic", Address: "Jumeirah Beach Road, Dubai", Phone: "+971 4 348 8262"},
			{Name: "American Academy of Cosmetic Surgery", Address: "Dubai Healthcare City", Phone: "+971 4 429 8136"},
			{Name: "Bizrahmed Aesthetic Clinic", Address: "Multiple locations in Dubai", Phone: "+971 4 348 5575"},
		},
	},
	{
		keywords: []string{"iv", "drip", "hydration", "vitamin", "wellness", "hangover", "nutrition"},
		entries: []EmergencyFacility{
			{Name: "IV Therapy Dubai", Address: "DIFC, Dubai", Phone: "+971 50 123 4567"},
			{Name: "Restore Hydration Therapy", Address: "JLT, Dubai", Phone: "+971 4 567 8910"},
			{Name: "Revive IV Wellness", Address: "Downtown Dubai", Phone: "+971 55 987 6543"},
		},
	},
	{
		keywords: []string{"dental", "tooth", "teeth", "dentist", "oral"},
		entries: []EmergencyFacility{
			{Name: "Dr. Michael's Dental Clinic", Address: "Jumeirah Beach Road, Dubai", Phone: "+971 4 344 1800"},
			{Name: "Dubai Dental Hospital", Address: "Oud Metha, Dubai", Phone: "+971 4 337 7766"},
			{Name: "German Dental Oasis", Address: "Dubai Healthcare City", Phone: "+971 4 429 9989"},
		},
	},
	{
		keywords: []string{"mental", "therapy", "depression", "anxiety", "stress", "counseling"},
		entries: []EmergencyFacility{
			{Name: "German Neuroscience Center", Address: "Dubai Healthcare City", Phone: "+971 4 429 8989"},
			{Name: "Priory Wellbeing Centre", Address: "Al Wasl Road, Dubai", Phone: "+971 4 245 3800"},
			{Name: "Light House Arabia", Address: "Umm Suqeim, Dubai", Phone: "+971 4 380 9944"},
		},
	},
	{
		keywords: []string{"skin", "dermat", "acne", "rash", "eczema", "psoriasis", "dry", "itchy", "texture", "crocodile", "scaly", "flaky", "mole", "wart", "fungal", "hives", "allergy", "sunburn", "ichthyosis", "ichtyosis"},
		entries: []EmergencyFacility{
			{Name: "Dubai Dermatology Clinic", Address: "Jumeirah Beach Road, Dubai", Phone: "+971 4 394 7777"},
			{Name: "German Dermatology Center", Address: "Dubai Healthcare City", Phone: "+971 4 429 8450"},
			{Name: "Dermacare Skin Clinic", Address: "Al Wasl Road, Dubai", Phone: "+971 4 344 4004"},
		},
	},
	{
		keywords: []string{"heart", "chest", "cardiac", "blood pressure", "cholesterol", "palpitation", "arrhythmia", "hypertension", "angina"},
		entries: []EmergencyFacility{
			{Name: "American Hospital Dubai - Cardiology", Address: "Oud Metha Road, Dubai", Phone: "+971 4 336 7777"},
			{Name: "Mediclinic City Hospital - Heart Center", Address: "Dubai Healthcare City", Phone: "+971 4 435 9999"},
			{Name: "Dubai Heart Center", Address: "Al Garhoud, Dubai", Phone: "+971 4 294 7777"},
		},
	},
	{
		keywords: []string{"bone", "joint", "muscle", "back", "knee", "shoulder", "sports", "injury", "fracture", "arthritis", "spine", "hip", "ankle", "wrist", "neck", "ligament", "tendon", "sprain"},
		entries: []EmergencyFacility{
			{Name: "Dubai Bone & Joint Center", Address: "Al Wasl Road, Dubai", Phone: "+971 4 349 6666"},
			{Name: "American Hospital - Orthopedics", Address: "Oud Metha Road, Dubai", Phone: "+971 4 336 7777"},
			{Name: "Mediclinic Parkview Hospital", Address: "Al Barsha, Dubai", Phone: "+971 4 375 5500"},
		},
	},
	{
		keywords: []string{"women", "gynec", "pregnancy", "period", "menstrual", "fertility", "breast", "ovarian", "cervical", "pap smear", "mammogram", "prenatal", "postpartum", "contraception", "menopause"},
		entries: []EmergencyFacility{
			{Name: "Mediclinic City Hospital - Women's Health", Address: "Dubai Healthcare City", Phone: "+971 4 435 9999"},
			{Name: "American Hospital - Women's Center", Address: "Oud Metha Road, Dubai", Phone: "+971 4 336 7777"},
			{Name: "Welcare Hospital", Address: "Al Garhoud, Dubai", Phone: "+971 4 282 7788"},
		},
	},
	{
		keywords: []string{"child", "baby", "infant", "pediatric", "kid", "toddler", "vaccination", "immunization", "growth", "development", "newborn", "adolescent"},
		entries: []EmergencyFacility{
			{Name: "Dubai Hospital - Pediatrics", Address: "Oud Metha Road, Dubai", Phone: "+971 4 219 5000"},
			{Name: "Mediclinic City Hospital - Children's Clinic", Address: "Dubai Healthcare City", Phone: "+971 4 435 9999"},
			{Name: "Al Jalila Children's Specialty Hospital", Address: "Al Jaddaf, Dubai", Phone: "+971 4 837 0000"},
		},
	},
	{
		keywords: []string{"eye", "vision", "sight", "ophthalmology", "glasses", "contact", "cataract", "glaucoma", "retina", "blind", "blurry", "double vision"},
		entries: []EmergencyFacility{
			{Name: "Moorfields Eye Hospital Dubai", Address: "Dubai Healthcare City", Phone: "+971 4 429 7888"},
			{Name: "American Hospital - Eye Center", Address: "Oud Metha Road, Dubai", Phone: "+971 4 336 7777"},
			{Name: "Dubai Eye Clinic", Address: "Jumeirah Beach Road, Dubai", Phone: "+971 4 394 7979"},
		},
	},
	{
		keywords: []string{"ear", "nose", "throat", "sinus", "hearing", "tonsil", "voice", "snoring", "allergy", "congestion", "vertigo", "tinnitus"},
		entries: []EmergencyFacility{
			{Name: "American Hospital - ENT Department", Address: "Oud Metha Road, Dubai", Phone: "+971 4 336 7777"},
			{Name: "Mediclinic City Hospital - ENT", Address: "Dubai Healthcare City", Phone: "+971 4 435 9999"},
			{Name: "Dubai ENT Clinic", Address: "Jumeirah Beach Road, Dubai", Phone: "+971 4 394 8888"},
		},
	},
	{
		keywords: []string{"stomach", "digestive", "gastro", "liver", "intestine", "colon", "acid reflux", "ulcer", "ibs", "crohn", "hepatitis", "gallbladder", "nausea", "vomiting", "diarrhea", "constipation", "abdominal", "bloating"},
		entries: []EmergencyFacility{
			{Name: "American Hospital - Gastroenterology", Address: "Oud Metha Road, Dubai", Phone: "+971 4 336 7777"},
			{Name: "Mediclinic City Hospital - GI Center", Address: "Dubai Healthcare City", Phone: "+971 4 435 9999"},
			{Name: "Dubai Gastroenterology Clinic", Address: "Al Wasl Road, Dubai", Phone: "+971 4 349 7777"},
		},
	},
	{
		keywords: []string{"brain", "neuro", "headache", "migraine", "seizure", "stroke", "epilepsy", "parkinson", "alzheimer", "memory", "tremor", "numbness", "tingling", "dizziness", "balance"},
		entries: []EmergencyFacility{
			{Name: "German Neuroscience Center", Address: "Dubai Healthcare City", Phone: "+971 4 429 8989"},
			{Name: "American Hospital - Neurology", Address: "Oud Metha Road, Dubai", Phone: "+971 4 336 7777"},
			{Name: "Mediclinic City Hospital - Neurology", Address: "Dubai Healthcare City", Phone: "+971 4 435 9999"},
		},
	},
	{
		keywords: []string{"kidney", "bladder", "urology", "urinary", "prostate", "stone", "incontinence", "uti", "erectile", "fertility", "testosterone", "dialysis"},
		entries: []EmergencyFacility{
			{Name: "American Hospital - Urology", Address: "Oud Metha Road, Dubai", Phone: "+971 4 336 7777"},
			{Name: "Mediclinic City Hospital - Urology", Address: "Dubai Healthcare City", Phone: "+971 4 435 9999"},
			{Name: "Dubai Urology Center", Address: "Al Wasl Road, Dubai", Phone: "+971 4 349 8888"},
		},
	},
	{
		keywords: []string{"diabetes", "thyroid", "hormone", "endocrine", "insulin", "glucose", "metabolism", "weight", "obesity", "pcos", "adrenal", "growth hormone"},
		entries: []EmergencyFacility{
			{Name: "American Hospital - Endocrinology", Address: "Oud Metha Road, Dubai", Phone: "+971 4 336 7777"},
			{Name: "Mediclinic City Hospital - Diabetes Center", Address: "Dubai Healthcare City", Phone: "+971 4 435 9999"},
			{Name: "Dubai Diabetes Center", Address: "Al Garhoud, Dubai", Phone: "+971 4 294 8888"},
		},
	},
	{
		keywords: []string{"cancer", "oncology", "tumor", "chemotherapy", "radiation", "biopsy", "lymphoma", "leukemia", "metastasis", "malignant", "benign", "screening"},
		entries: []EmergencyFacility{
			{Name: "American Hospital - Oncology Center", Address: "Oud Metha Road, Dubai", Phone: "+971 4 336 7777"},
			{Name: "Mediclinic City Hospital - Cancer Center", Address: "Dubai Healthcare City", Phone: "+971 4 435 9999"},
			{Name: "Dubai Cancer Center", Address: "Al Barsha, Dubai", Phone: "+971 4 375 8888"},
		},
	},
	{
		keywords: []string{"lung", "breathing", "respiratory", "asthma", "copd", "pneumonia", "bronchitis", "cough", "shortness", "wheezing", "tuberculosis", "sleep apnea"},
		entries: []EmergencyFacility{
			{Name: "American Hospital - Pulmonology", Address: "Oud Metha Road, Dubai", Phone: "+971 4 336 7777"},
			{Name: "Mediclinic City Hospital - Respiratory Center", Address: "Dubai Healthcare City", Phone: "+971 4 435 9999"},
			{Name: "Dubai Chest Disease Hospital", Address: "Al Qusais, Dubai", Phone: "+971 4 271 0000"},
		},
	},
	{
		keywords: []string{"rheumatology", "arthritis", "lupus", "autoimmune", "fibromyalgia", "gout", "inflammatory", "connective tissue", "vasculitis"},
		entries: []EmergencyFacility{
			{Name: "American Hospital - Rheumatology", Address: "Oud Metha Road, Dubai", Phone: "+971 4 336 7777"},
			{Name: "Mediclinic City Hospital - Rheumatology", Address: "Dubai Healthcare City", Phone: "+971 4 435 9999"},
			{Name: "Dubai Rheumatology Center", Address: "Al Wasl Road, Dubai", Phone: "+971 4 349 9999"},
		},
	},
	{
		keywords: []string{"infection", "fever", "travel", "vaccination", "malaria", "hepatitis", "hiv", "std", "tropical", "food poisoning", "antibiotic", "sepsis"},
		entries: []EmergencyFacility{
			{Name: "Dubai Hospital - Infectious Diseases", Address: "Oud Metha Road, Dubai", Phone: "+971 4 219 5000"},
			{Name: "American Hospital - Travel Medicine", Address: "Oud Metha Road, Dubai", Phone: "+971 4 336 7777"},
			{Name: "Mediclinic City Hospital - Internal Medicine", Address: "Dubai Healthcare City", Phone: "+971 4 435 9999"},
		},
	},
}

var defaultFacilities = []EmergencyFacility{
	{Name: "Mediclinic City Hospital", Address: "Dubai Healthcare City", Phone: "+971 4 435 9999"},
	{Name: "Dubai Hospital", Address: "Oud Metha Road, Dubai", Phone: "+971 4 219 5000"},
	{Name: "American Hospital Dubai", Address: "Oud Metha Road, Dubai", Phone: "+971 4 336 7777"},
}

// contextualEmergencyFacilities is the short list returned when an
// emergency query needs facilities without going through the model.
var contextualEmergencyFacilities = []EmergencyFacility{
	{Name: "Dubai Hospital Emergency Department", Address: "Oud Metha Road, Dubai", Phone: "+971 4 219 5000"},
	{Name: "American Hospital Dubai Emergency", Address: "Oud Metha Road, Dubai", Phone: "+971 4 336 7777"},
	{Name: "NMC Royal Hospital Emergency", Address: "Al Garhoud, Dubai", Phone: "+971 4 267 0000"},
}

// ContextualFacilities returns a keyword-matched static facility list.
// Emergency queries get the fixed emergency trio.
func ContextualFacilities(query string, isEmergency bool) []EmergencyFacility {
	if isEmergency {
		return contextualEmergencyFacilities
	}
	lower := strings.ToLower(query)
	for _, rule := range facilityRules {
		if matchesAny(lower, rule.keywords) {
			return rule.entries
		}
	}
	return defaultFacilities
}

var pricingRules = []pricingRule{
	{
		keywords: []string{"cut", "wound", "bleeding", "injury", "accident"},
		entries: []Procedure{
			{ClinicName: "Dubai Hospital Emergency", Service: "Emergency Wound Treatment", CashPrice: "500-1,500 AED", Address: "Oud Metha Road, Dubai", Phone: "+971 4 219 5000", Source: "Emergency care pricing"},
			{ClinicName: "American Hospital Emergency", Service: "Emergency Consultation & Suturing", CashPrice: "800-2,000 AED", Address: "Oud Metha Road, Dubai", Phone: "+971 4 336 7777", Source: "Emergency care pricing"},
		},
	},
	{
		keywords: []string{"boob", "breast", "cosmetic"},
		entries: []Procedure{
			{ClinicName: "Dubai Cosmetic Surgery Clinic", Service: "Breast Augmentation Consultation", CashPrice: "300-500 AED (consultation)", Address: "Jumeirah Beach Road, Dubai", Phone: "+971 4 348 8262", Source: "Cosmetic surgery pricing"},
			{ClinicName: "American Academy of Cosmetic Surgery", Service: "Breast Enhancement Procedure", CashPrice: "15,000-25,000 AED (full procedure)", Address: "Dubai Healthcare City", Phone: "+971 4 429 8136", Source: "Cosmetic surgery pricing"},
		},
	},
	{
		keywords: []string{"iv", "drip", "hydration", "wellness", "nutrition"},
		entries: []Procedure{
			{ClinicName: "IV Therapy Dubai", Service: "Hydration IV Drip", CashPrice: "350-600 AED", Address: "DIFC, Dubai", Phone: "+971 50 123 4567", Source: "IV therapy pricing"},
			{ClinicName: "Restore Hydration Therapy", Service: "Vitamin B12 IV Treatment", CashPrice: "400-700 AED", Address: "JLT, Dubai", Phone: "+971 4 567 8910", Source: "IV therapy pricing"},
		},
	},
	{
		keywords: []string{"dental", "tooth", "teeth"},
		entries: []Procedure{
			{ClinicName: "Dr. Michael's Dental Clinic", Service: "Dental Consultation & Cleaning", CashPrice: "200-400 AED", Address: "Jumeirah Beach Road, Dubai", Phone: "+971 4 344 1800", Source: "Dental care pricing"},
			{ClinicName: "Dubai Dental Hospital", Service: "Comprehensive Dental Examination", CashPrice: "300-500 AED", Address: "Oud Metha, Dubai", Phone: "+971 4 337 7766", Source: "Dental care pricing"},
		},
	},
	{
		keywords: []string{"skin", "dermat", "acne", "rash", "eczema", "psoriasis", "dry", "itchy", "texture", "crocodile", "scaly", "flaky", "mole", "wart", "fungal", "hives", "allergy", "sunburn", "ichthyosis", "ichtyosis"},
		entries: []Procedure{
			{ClinicName: "Dubai Dermatology Clinic", Service: "Dermatology Consultation", CashPrice: "300-500 AED", Address: "Jumeirah Beach Road, Dubai", Phone: "+971 4 394 7777", Source: "Dermatology pricing"},
			{ClinicName: "German Dermatology Center", Service: "Skin Condition Assessment", CashPrice: "400-600 AED", Address: "Dubai Healthcare City", Phone: "+971 4 429 8450", Source: "Dermatology pricing"},
			{ClinicName: "Dermacare Skin Clinic", Service: "Comprehensive Skin Examination", CashPrice: "250-450 AED", Address: "Al Wasl Road, Dubai", Phone: "+971 4 344 4004", Source: "Dermatology pricing"},
		},
	},
	{
		keywords: []string{"heart", "chest", "cardiac", "blood pressure", "cholesterol", "palpitation", "arrhythmia", "hypertension", "angina"},
		entries: []Procedure{
			{ClinicName: "American Hospital Dubai - Cardiology", Service: "Cardiology Consultation", CashPrice: "400-700 AED", Address: "Oud Metha Road, Dubai", Phone: "+971 4 336 7777", Source: "Cardiology pricing"},
			{ClinicName: "Mediclinic City Hospital - Heart Center", Service: "ECG & Heart Assessment", CashPrice: "350-600 AED", Address: "Dubai Healthcare City", Phone: "+971 4 435 9999", Source: "Cardiology pricing"},
			{ClinicName: "Dubai Heart Center", Service: "Comprehensive Cardiac Evaluation", CashPrice: "500-800 AED", Address: "Al Garhoud, Dubai", Phone: "+971 4 294 7777", Source: "Cardiology pricing"},
		},
	},
	{
		keywords: []string{"bone", "joint", "muscle", "back", "knee", "shoulder", "sports", "injury", "fracture", "arthritis", "spine", "hip", "ankle", "wrist", "neck", "ligament", "tendon", "sprain"},
		entries: []Procedure{
			{ClinicName: "Dubai Bone & Joint Center", Service: "Orthopedic Consultation", CashPrice: "350-600 AED", Address: "Al Wasl Road, Dubai", Phone: "+971 4 349 6666", Source: "Orthopedic pricing"},
			{ClinicName: "American Hospital - Orthopedics", Service: "Sports Medicine Consultation", CashPrice: "400-700 AED", Address: "Oud Metha Road, Dubai", Phone: "+971 4 336 7777", Source: "Orthopedic pricing"},
			{ClinicName: "Mediclinic Parkview Hospital", Service: "Joint & Bone Assessment", CashPrice: "300-550 AED", Address: "Al Barsha, Dubai", Phone: "+971 4 375 5500", Source: "Orthopedic pricing"},
		},
	},
	{
		keywords: []string{"women", "gynec", "pregnancy", "period", "menstrual", "fertility", "breast", "ovarian", "cervical", "pap smear", "mammogram", "prenatal", "postpartum", "contraception", "menopause"},
		entries: []Procedure{
			{ClinicName: "Mediclinic City Hospital - Women's Health", Service: "Gynecology Consultation", CashPrice: "350-600 AED", Address: "Dubai Healthcare City", Phone: "+971 4 435 9999", Source: "Women's health pricing"},
			{ClinicName: "American Hospital - Women's Center", Service: "Obstetrics & Gynecology", CashPrice: "400-700 AED", Address: "Oud Metha Road, Dubai", Phone: "+971 4 336 7777", Source: "Women's health pricing"},
			{ClinicName: "Welcare Hospital", Service: "Prenatal Care & Women's Health", CashPrice: "300-550 AED", Address: "Al Garhoud, Dubai", Phone: "+971 4 282 7788", Source: "Women's health pricing"},
		},
	},
	{
		keywords: []string{"child", "baby", "infant", "pediatric", "kid", "toddler", "vaccination", "immunization", "growth", "development", "newborn", "adolescent"},
		entries: []Procedure{
			{ClinicName: "Dubai Hospital - Pediatrics", Service: "Pediatric Consultation", CashPrice: "250-450 AED", Address: "Oud Metha Road, Dubai", Phone: "+971 4 219 5000", Source: "Pediatric pricing"},
			{ClinicName: "Mediclinic City Hospital - Children's Clinic", Service: "Child Health Assessment", CashPrice: "300-500 AED", Address: "Dubai Healthcare City", Phone: "+971 4 435 9999", Source: "Pediatric pricing"},
			{ClinicName: "Al Jalila Children's Specialty Hospital", Service: "Specialized Pediatric Care", CashPrice: "400-650 AED", Address: "Al Jaddaf, Dubai", Phone: "+971 4 837 0000", Source: "Pediatric pricing"},
		},
	},
	{
		keywords: []string{"eye", "vision", "sight", "ophthalmology", "glasses", "contact", "cataract", "glaucoma", "retina", "blind", "blurry", "double vision"},
		entries: []Procedure{
			{ClinicName: "Moorfields Eye Hospital Dubai", Service: "Comprehensive Eye Examination", CashPrice: "400-700 AED", Address: "Dubai Healthcare City", Phone: "+971 4 429 7888", Source: "Ophthalmology pricing"},
			{ClinicName: "American Hospital - Eye Center", Service: "Vision Assessment & Eye Care", CashPrice: "350-600 AED", Address: "Oud Metha Road, Dubai", Phone: "+971 4 336 7777", Source: "Ophthalmology pricing"},
			{ClinicName: "Dubai Eye Clinic", Service: "Eye Consultation & Treatment", CashPrice: "300-550 AED", Address: "Jumeirah Beach Road, Dubai", Phone: "+971 4 394 7979", Source: "Ophthalmology pricing"},
		},
	},
	{
		keywords: []string{"ear", "nose", "throat", "sinus", "hearing", "tonsil", "voice", "snoring", "allergy", "congestion", "vertigo", "tinnitus"},
		entries: []Procedure{
			{ClinicName: "American Hospital - ENT Department", Service: "ENT Consultation", CashPrice: "350-600 AED", Address: "Oud Metha Road, Dubai", Phone: "+971 4 336 7777", Source: "ENT pricing"},
			{ClinicName: "Mediclinic City Hospital - ENT", Service: "Ear, Nose & Throat Assessment", CashPrice: "300-550 AED", Address: "Dubai Healthcare City", Phone: "+971 4 435 9999", Source: "ENT pricing"},
			{ClinicName: "Dubai ENT Clinic", Service: "Specialized ENT Care", CashPrice: "280-500 AED", Address: "Jumeirah Beach Road, Dubai", Phone: "+971 4 394 8888", Source: "ENT pricing"},
		},
	},
	{
		keywords: []string{"stomach", "digestive", "gastro", "liver", "intestine", "colon", "acid reflux", "ulcer", "ibs", "crohn", "hepatitis", "gallbladder", "nausea", "vomiting", "diarrhea", "constipation", "abdominal", "bloating"},
		entries: []Procedure{
			{ClinicName: "American Hospital - Gastroenterology", Service: "Gastroenterology Consultation", CashPrice: "400-700 AED", Address: "Oud Metha Road, Dubai", Phone: "+971 4 336 7777", Source: "Gastroenterology pricing"},
			{ClinicName: "Mediclinic City Hospital - GI Center", Service: "Digestive Health Assessment", CashPrice: "350-650 AED", Address: "Dubai Healthcare City", Phone: "+971 4 435 9999", Source: "Gastroenterology pricing"},
			{ClinicName: "Dubai Gastroenterology Clinic", Service: "GI Consultation & Treatment", CashPrice: "300-600 AED", Address: "Al Wasl Road, Dubai", Phone: "+971 4 349 7777", Source: "Gastroenterology pricing"},
		},
	},
	{
		keywords: []string{"brain", "neuro", "headache", "head ache", "head pain", "head hurt", "migraine", "seizure", "stroke", "epilepsy", "parkinson", "alzheimer", "memory", "tremor", "numbness", "tingling", "dizziness", "balance"},
		entries: []Procedure{
			{ClinicName: "German Neuroscience Center", Service: "Neurology Consultation & Headache Treatment", CashPrice: "450-800 AED", Address: "Dubai Healthcare City", Phone: "+971 4 429 8989", Source: "Neurology pricing"},
			{ClinicName: "American Hospital - Neurology", Service: "Headache & Neurological Assessment", CashPrice: "400-750 AED", Address: "Oud Metha Road, Dubai", Phone: "+971 4 336 7777", Source: "Neurology pricing"},
			{ClinicName: "Mediclinic City Hospital - Neurology", Service: "Brain & Nervous System Care", CashPrice: "350-700 AED", Address: "Dubai Healthcare City", Phone: "+971 4 435 9999", Source: "Neurology pricing"},
		},
	},
	{
		keywords: []string{"kidney", "bladder", "urology", "urinary", "prostate", "stone", "incontinence", "uti", "erectile", "fertility", "testosterone", "dialysis"},
		entries: []Procedure{
			{ClinicName: "American Hospital - Urology", Service: "Urology Consultation", CashPrice: "400-700 AED", Address: "Oud Metha Road, Dubai", Phone: "+971 4 336 7777", Source: "Urology pricing"},
			{ClinicName: "Mediclinic City Hospital - Urology", Service: "Urological Assessment", CashPrice: "350-650 AED", Address: "Dubai Healthcare City", Phone: "+971 4 435 9999", Source: "Urology pricing"},
			{ClinicName: "Dubai Urology Center", Service: "Kidney & Bladder Care", CashPrice: "300-600 AED", Address: "Al Wasl Road, Dubai", Phone: "+971 4 349 8888", Source: "Urology pricing"},
		},
	},
	{
		keywords: []string{"diabetes", "thyroid", "hormone", "endocrine", "insulin", "glucose", "metabolism", "weight", "obesity", "pcos", "adrenal", "growth hormone"},
		entries: []Procedure{
			{ClinicName: "American Hospital - Endocrinology", Service: "Endocrinology Consultation", CashPrice: "400-700 AED", Address: "Oud Metha Road, Dubai", Phone: "+971 4 336 7777", Source: "Endocrinology pricing"},
			{ClinicName: "Mediclinic City Hospital - Diabetes Center", Service: "Diabetes & Hormone Assessment", CashPrice: "350-650 AED", Address: "Dubai Healthcare City", Phone: "+971 4 435 9999", Source: "Endocrinology pricing"},
			{ClinicName: "Dubai Diabetes Center", Service: "Comprehensive Diabetes Care", CashPrice: "300-600 AED", Address: "Al Garhoud, Dubai", Phone: "+971 4 294 8888", Source: "Endocrinology pricing"},
		},
	},
	{
		keywords: []string{"cancer", "oncology", "tumor", "chemotherapy", "radiation", "biopsy", "lymphoma", "leukemia", "metastasis", "malignant", "benign", "screening"},
		entries: []Procedure{
			{ClinicName: "American Hospital - Oncology Center", Service: "Oncology Consultation", CashPrice: "500-900 AED", Address: "Oud Metha Road, Dubai", Phone: "+971 4 336 7777", Source: "Oncology pricing"},
			{ClinicName: "Mediclinic City Hospital - Cancer Center", Service: "Cancer Screening & Assessment", CashPrice: "450-850 AED", Address: "Dubai Healthcare City", Phone: "+971 4 435 9999", Source: "Oncology pricing"},
			{ClinicName: "Dubai Cancer Center", Service: "Comprehensive Cancer Care", CashPrice: "400-800 AED", Address: "Al Barsha, Dubai", Phone: "+971 4 375 8888", Source: "Oncology pricing"},
		},
	},
	{
		keywords: []string{"lung", "breathing", "respiratory", "asthma", "copd", "pneumonia", "bronchitis", "cough", "shortness", "wheezing", "tuberculosis", "sleep apnea"},
		entries: []Procedure{
			{ClinicName: "American Hospital - Pulmonology", Service: "Pulmonology Consultation", CashPrice: "400-700 AED", Address: "Oud Metha Road, Dubai", Phone: "+971 4 336 7777", Source: "Pulmonology pricing"},
			{ClinicName: "Mediclinic City Hospital - Respiratory Center", Service: "Respiratory Assessment", CashPrice: "350-650 AED", Address: "Dubai Healthcare City", Phone: "+971 4 435 9999", Source: "Pulmonology pricing"},
			{ClinicName: "Dubai Chest Disease Hospital", Service: "Lung & Breathing Care", CashPrice: "250-500 AED", Address: "Al Qusais, Dubai", Phone: "+971 4 271 0000", Source: "Pulmonology pricing"},
		},
	},
	{
		keywords: []string{"rheumatology", "arthritis", "lupus", "autoimmune", "fibromyalgia", "gout", "inflammatory", "connective tissue", "vasculitis"},
		entries: []Procedure{
			{ClinicName: "American Hospital - Rheumatology", Service: "Rheumatology Consultation", CashPrice: "400-700 AED", Address: "Oud Metha Road, Dubai", Phone: "+971 4 336 7777", Source: "Rheumatology pricing"},
			{ClinicName: "Mediclinic City Hospital - Rheumatology", Service: "Autoimmune Disease Assessment", CashPrice: "350-650 AED", Address: "Dubai Healthcare City", Phone: "+971 4 435 9999", Source: "Rheumatology pricing"},
			{ClinicName: "Dubai Rheumatology Center", Service: "Joint & Autoimmune Care", CashPrice: "300-600 AED", Address: "Al Wasl Road, Dubai", Phone: "+971 4 349 9999", Source: "Rheumatology pricing"},
		},
	},
	{
		keywords: []string{"infection", "fever", "travel", "vaccination", "malaria", "hepatitis", "hiv", "std", "tropical", "food poisoning", "antibiotic", "sepsis"},
		entries: []Procedure{
			{ClinicName: "Dubai Hospital - Infectious Diseases", Service: "Infectious Disease Consultation", CashPrice: "350-600 AED", Address: "Oud Metha Road, Dubai", Phone: "+971 4 219 5000", Source: "Infectious disease pricing"},
			{ClinicName: "American Hospital - Travel Medicine", Service: "Travel Medicine & Vaccination", CashPrice: "300-550 AED", Address: "Oud Metha Road, Dubai", Phone: "+971 4 336 7777", Source: "Travel medicine pricing"},
			{ClinicName: "Mediclinic City Hospital - Internal Medicine", Service: "Internal Medicine Consultation", CashPrice: "300-500 AED", Address: "Dubai Healthcare City", Phone: "+971 4 435 9999", Source: "Internal medicine pricing"},
		},
	},
	{
		keywords: []string{"test", "blood", "scan", "x-ray", "mri", "ct", "ultrasound", "mammogram", "biopsy", "lab", "screening", "check-up"},
		entries: []Procedure{
			{ClinicName: "Dubai Diagnostic Center", Service: "Blood Tests & Lab Work", CashPrice: "150-800 AED", Address: "Healthcare City", Phone: "+971 4 456 7890", Source: "Diagnostic pricing"},
			{ClinicName: "Advanced Imaging Center", Service: "MRI/CT Scans", CashPrice: "1,200-3,500 AED", Address: "Al Barsha", Phone: "+971 4 567 8901", Source: "Imaging pricing"},
			{ClinicName: "Dubai Radiology Center", Service: "X-Ray & Ultrasound", CashPrice: "200-600 AED", Address: "Jumeirah", Phone: "+971 4 678 9012", Source: "Radiology pricing"},
		},
	},
	{
		keywords: []string{"physical therapy", "physiotherapy", "rehab", "massage", "chiropractic", "osteopathy", "recovery", "exercise", "mobility"},
		entries: []Procedure{
			{ClinicName: "Dubai Physiotherapy Center", Service: "Physical Therapy Session", CashPrice: "200-400 AED per session", Address: "Healthcare City", Phone: "+971 4 789 0123", Source: "Physiotherapy pricing"},
			{ClinicName: "Rehab Plus Center", Service: "Rehabilitation & Recovery", CashPrice: "250-500 AED per session", Address: "Al Wasl Road", Phone: "+971 4 890 1234", Source: "Rehabilitation pricing"},
			{ClinicName: "Sports Recovery Clinic", Service: "Sports Massage & Therapy", CashPrice: "300-600 AED per session", Address: "JLT", Phone: "+971 4 901 2345", Source: "Sports therapy pricing"},
		},
	},
	{
		keywords: []string{"vaccine", "vaccination", "immunization", "flu shot", "covid", "hepatitis", "travel vaccine", "booster"},
		entries: []Procedure{
			{ClinicName: "Dubai Vaccination Center", Service: "Standard Vaccinations", CashPrice: "150-400 AED per vaccine", Address: "Multiple locations", Phone: "+971 4 123 4567", Source: "Vaccine pricing"},
			{ClinicName: "Travel Health Clinic", Service: "Travel Vaccinations", CashPrice: "200-600 AED per vaccine", Address: "Healthcare City", Phone: "+971 4 234 5678", Source: "Travel vaccine pricing"},
			{ClinicName: "Corporate Health Services", Service: "Corporate Vaccination Programs", CashPrice: "100-300 AED per person", Address: "Business Bay", Phone: "+971 4 345 6789", Source: "Corporate vaccine pricing"},
		},
	},
	{
		keywords: []string{"surgery", "operation", "procedure", "removal", "repair", "replacement", "laparoscopic", "minimally invasive"},
		entries: []Procedure{
			{ClinicName: "Dubai Surgery Center", Service: "Minor Surgical Procedures", CashPrice: "2,000-8,000 AED", Address: "Healthcare City", Phone: "+971 4 456 7890", Source: "Surgery pricing"},
			{ClinicName: "Advanced Surgical Hospital", Service: "Major Surgical Procedures", CashPrice: "15,000-50,000 AED", Address: "Al Barsha", Phone: "+971 4 567 8901", Source: "Major surgery pricing"},
			{ClinicName: "Day Surgery Clinic", Service: "Outpatient Procedures", CashPrice: "1,500-6,000 AED", Address: "Jumeirah", Phone: "+971 4 678 9012", Source: "Outpatient surgery pricing"},
		},
	},
	{
		keywords: []string{"acupuncture", "homeopathy", "ayurveda", "naturopathy", "herbal", "alternative", "holistic", "wellness", "detox"},
		entries: []Procedure{
			{ClinicName: "Dubai Wellness Center", Service: "Acupuncture & Alternative Medicine", CashPrice: "250-500 AED per session", Address: "Jumeirah Beach Road", Phone: "+971 4 789 0123", Source: "Alternative medicine pricing"},
			{ClinicName: "Holistic Health Clinic", Service: "Naturopathy & Herbal Medicine", CashPrice: "300-600 AED per consultation", Address: "Al Wasl Road", Phone: "+971 4 890 1234", Source: "Holistic health pricing"},
			{ClinicName: "Ayurveda Center Dubai", Service: "Ayurvedic Treatments", CashPrice: "200-800 AED per session", Address: "Karama", Phone: "+971 4 901 2345", Source: "Ayurveda pricing"},
		},
	},
	{
		keywords: []string{"home", "house call", "home visit", "mobile", "bedside", "elderly care", "nursing", "caregiver"},
		entries: []Procedure{
			{ClinicName: "Dubai Home Healthcare", Service: "Home Doctor Visits", CashPrice: "400-800 AED per visit", Address: "Service across Dubai", Phone: "+971 4 012 3456", Source: "Home healthcare pricing"},
			{ClinicName: "Mobile Medical Services", Service: "Home Nursing Care", CashPrice: "200-500 AED per visit", Address: "Dubai-wide service", Phone: "+971 4 123 4567", Source: "Home nursing pricing"},
			{ClinicName: "Elder Care Dubai", Service: "Elderly Home Care Services", CashPrice: "300-700 AED per day", Address: "All Emirates", Phone: "+971 4 234 5678", Source: "Elder care pricing"},
		},
	},
	{
		keywords: []string{"online", "telemedicine", "virtual", "video call", "remote", "teleconsultation"},
		entries: []Procedure{
			{ClinicName: "Dubai Telemedicine", Service: "Online Doctor Consultation", CashPrice: "150-350 AED per session", Address: "Virtual service", Phone: "+971 4 345 6789", Source: "Telemedicine pricing"},
			{ClinicName: "Virtual Health Dubai", Service: "Specialist Video Consultations", CashPrice: "200-500 AED per session", Address: "Online platform", Phone: "+971 4 456 7890", Source: "Virtual consultation pricing"},
			{ClinicName: "Remote Care Services", Service: "Follow-up & Monitoring", CashPrice: "100-250 AED per session", Address: "Digital service", Phone: "+971 4 567 8901", Source: "Remote care pricing"},
		},
	},
	{
		keywords: []string{"nutrition", "diet", "nutritionist", "dietitian", "weight loss", "meal plan", "eating", "food", "obesity"},
		entries: []Procedure{
			{ClinicName: "Dubai Nutrition Center", Service: "Nutritionist Consultation", CashPrice: "250-450 AED per session", Address: "Healthcare City", Phone: "+971 4 678 9012", Source: "Nutrition pricing"},
			{ClinicName: "Weight Management Clinic", Service: "Weight Loss Program", CashPrice: "1,500-3,000 AED per month", Address: "Jumeirah", Phone: "+971 4 789 0123", Source: "Weight management pricing"},
			{ClinicName: "Sports Nutrition Dubai", Service: "Sports Nutrition Consultation", CashPrice: "300-500 AED per session", Address: "DIFC", Phone: "+971 4 890 1234", Source: "Sports nutrition pricing"},
		},
	},
	{
		keywords: []string{"fitness", "exercise", "personal trainer", "gym", "workout", "sports medicine", "athletic", "performance"},
		entries: []Procedure{
			{ClinicName: "Dubai Sports Medicine Center", Service: "Sports Medicine Consultation", CashPrice: "400-700 AED", Address: "Sports City", Phone: "+971 4 901 2345", Source: "Sports medicine pricing"},
			{ClinicName: "Fitness Assessment Clinic", Service: "Fitness & Health Assessment", CashPrice: "300-600 AED", Address: "JLT", Phone: "+971 4 012 3456", Source: "Fitness assessment pricing"},
			{ClinicName: "Performance Health Center", Service: "Athletic Performance Testing", CashPrice: "500-1,000 AED", Address: "Al Wasl Road", Phone: "+971 4 123 4567", Source: "Performance testing pricing"},
		},
	},
	{
		keywords: []string{"sleep", "insomnia", "sleep study", "sleep apnea", "snoring", "sleep disorder", "tired", "fatigue"},
		entries: []Procedure{
			{ClinicName: "Dubai Sleep Center", Service: "Sleep Study & Assessment", CashPrice: "1,500-3,000 AED", Address: "Healthcare City", Phone: "+971 4 234 5678", Source: "Sleep study pricing"},
			{ClinicName: "Sleep Medicine Clinic", Service: "Sleep Disorder Consultation", CashPrice: "400-700 AED", Address: "Al Barsha", Phone: "+971 4 345 6789", Source: "Sleep medicine pricing"},
			{ClinicName: "Insomnia Treatment Center", Service: "Sleep Therapy & Treatment", CashPrice: "300-600 AED per session", Address: "Jumeirah Beach Road", Phone: "+971 4 456 7890", Source: "Sleep therapy pricing"},
		},
	},
	{
		keywords: []string{"allergy", "allergic", "allergy test", "food allergy", "skin allergy", "hay fever", "asthma", "immunology"},
		entries: []Procedure{
			{ClinicName: "Dubai Allergy Center", Service: "Comprehensive Allergy Testing", CashPrice: "800-1,500 AED", Address: "Healthcare City", Phone: "+971 4 567 8901", Source: "Allergy testing pricing"},
			{ClinicName: "Immunology & Allergy Clinic", Service: "Allergy Consultation & Treatment", CashPrice: "350-650 AED", Address: "Al Wasl Road", Phone: "+971 4 678 9012", Source: "Allergy treatment pricing"},
			{ClinicName: "Food Allergy Specialists", Service: "Food Allergy Testing", CashPrice: "600-1,200 AED", Address: "Jumeirah", Phone: "+971 4 789 0123", Source: "Food allergy pricing"},
		},
	},
	{
		keywords: []string{"pain", "hurt", "ache", "sore", "pain management", "chronic pain", "back pain", "neck pain", "joint pain", "arthritis pain", "fibromyalgia", "nerve pain"},
		entries: []Procedure{
			{ClinicName: "Dubai Pain Management Center", Service: "Pain Management Consultation", CashPrice: "400-800 AED", Address: "Healthcare City", Phone: "+971 4 890 1234", Source: "Pain management pricing"},
			{ClinicName: "Chronic Pain Clinic", Service: "Chronic Pain Treatment", CashPrice: "500-1,000 AED per session", Address: "Al Barsha", Phone: "+971 4 901 2345", Source: "Chronic pain pricing"},
			{ClinicName: "Interventional Pain Center", Service: "Pain Injection Therapy", CashPrice: "1,000-2,500 AED per procedure", Address: "DIFC", Phone: "+971 4 012 3456", Source: "Pain injection pricing"},
		},
	},
	{
		keywords: []string{"occupational", "work", "workplace", "employment", "pre-employment", "medical certificate", "fit to work", "work injury"},
		entries: []Procedure{
			{ClinicName: "Dubai Occupational Health", Service: "Pre-Employment Medical", CashPrice: "200-500 AED", Address: "Multiple locations", Phone: "+971 4 123 4567", Source: "Occupational health pricing"},
			{ClinicName: "Corporate Health Services", Service: "Workplace Health Assessment", CashPrice: "300-600 AED", Address: "Business Bay", Phone: "+971 4 234 5678", Source: "Corporate health pricing"},
			{ClinicName: "Work Injury Clinic", Service: "Work-Related Injury Treatment", CashPrice: "400-800 AED", Address: "Al Wasl Road", Phone: "+971 4 345 6789", Source: "Work injury pricing"},
		},
	},
	{
		keywords: []string{"preventive", "screening", "check-up", "health check", "annual", "executive", "comprehensive", "wellness check"},
		entries: []Procedure{
			{ClinicName: "Dubai Preventive Medicine", Service: "Comprehensive Health Screening", CashPrice: "1,500-3,500 AED", Address: "Healthcare City", Phone: "+971 4 456 7890", Source: "Health screening pricing"},
			{ClinicName: "Executive Health Center", Service: "Executive Health Package", CashPrice: "2,500-5,000 AED", Address: "DIFC", Phone: "+971 4 567 8901", Source: "Executive health pricing"},
			{ClinicName: "Wellness Screening Clinic", Service: "Annual Wellness Check", CashPrice: "800-1,800 AED", Address: "Jumeirah", Phone: "+971 4 678 9012", Source: "Wellness screening pricing"},
		},
	},
}

var defaultPricing = []Procedure{
	{ClinicName: "Mediclinic City Hospital", Service: "General Consultation", CashPrice: "250-400 AED", Address: "Dubai Healthcare City", Phone: "+971 4 435 9999", Source: "General medical pricing"},
	{ClinicName: "Dubai Hospital", Service: "Specialist Consultation", CashPrice: "300-500 AED", Address: "Oud Metha Road, Dubai", Phone: "+971 4 219 5000", Source: "General medical pricing"},
}

// ContextualPricing returns a keyword-matched static pricing list.
func ContextualPricing(query string) []Procedure {
	lower := strings.ToLower(query)
	for _, rule := range pricingRules {
		if matchesAny(lower, rule.keywords) {
			return rule.entries
		}
	}
	return defaultPricing
}

// defaultProcedureListing is the terminal fallback for the procedures
// endpoint and the model-backed pricing search.
var defaultProcedureListing = []Procedure{
	{ClinicName: "Dubai Hospital", Service: "General Consultation", CashPrice: "AED 150-250", Address: "Oud Metha Road, Dubai", Phone: "+971 4 219 5000", Source: "Government Hospital - DHA"},
	{ClinicName: "American Hospital Dubai", Service: "Specialist Consultation", CashPrice: "AED 300-500", Address: "Oud Metha Road, Dubai", Phone: "+971 4 336 7777", Source: "Private Hospital - JCI Accredited"},
	{ClinicName: "Mediclinic City Hospital", Service: "Consultation & Diagnostics", CashPrice: "AED 250-450", Address: "Dubai Healthcare City", Phone: "+971 4 435 9999", Source: "Private Hospital - Dubai Healthcare City"},
	{ClinicName: "Emirates Hospital", Service: "Multi-specialty Consultation", CashPrice: "AED 200-350", Address: "Jumeirah Beach Road, Dubai", Phone: "+971 4 349 6666", Source: "Private Hospital - Jumeirah"},
	{ClinicName: "NMC Royal Hospital", Service: "General & Specialist Care", CashPrice: "AED 180-320", Address: "Khalid Bin Al Waleed Road, Dubai", Phone: "+971 4 336 2000", Source: "Private Hospital - Bur Dubai"},
}
