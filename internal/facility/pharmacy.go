package facility

import "strings"

var medicationKeywords = []string{
	"medication", "prescription", "medicine", "pill", "drug",
	"antibiotic", "pain", "fever", "vitamin", "supplement",
	"cream", "ointment", "drops", "inhaler",
}

var basePharmacies = []Procedure{
	{ClinicName: "Aster Pharmacy", Service: "Prescription Medications", CashPrice: "50-300 AED (varies by medication)", Address: "Multiple locations across Dubai", Phone: "+971 600 522 567", Source: "Pharmacy pricing"},
	{ClinicName: "Life Pharmacy", Service: "Prescription & OTC Medications", CashPrice: "40-250 AED (varies by medication)", Address: "Over 200 locations in Dubai", Phone: "+971 4 336 6633", Source: "Pharmacy pricing"},
	{ClinicName: "Boots Pharmacy", Service: "Prescription Services", CashPrice: "60-350 AED (varies by medication)", Address: "Major malls and communities", Phone: "+971 800 2668", Source: "Pharmacy pricing"},
}

// PharmacyRecommendations returns pharmacy pricing entries when the
// query suggests the user needs medication, empty otherwise. Specific
// medication categories append extra entries to the base trio.
func PharmacyRecommendations(query string) []Procedure {
	lower := strings.ToLower(query)
	if !matchesAny(lower, medicationKeywords) {
		return nil
	}

	options := make([]Procedure, len(basePharmacies))
	copy(options, basePharmacies)

	if matchesAny(lower, []string{"pain", "headache", "migraine"}) {
		options = append(options, Procedure{
			ClinicName: "Dubai Pharmacy",
			Service:    "Pain Relief Medications (Paracetamol, Ibuprofen)",
			CashPrice:  "15-80 AED",
			Address:    "Multiple locations",
			Phone:      "+971 4 123 4567",
			Source:     "Pain medication pricing",
		})
	}
	if matchesAny(lower, []string{"antibiotic", "infection"}) {
		options = append(options, Procedure{
			ClinicName: "Al Manara Pharmacy",
			Service:    "Antibiotic Medications",
			CashPrice:  "80-250 AED (prescription required)",
			Address:    "Various Dubai locations",
			Phone:      "+971 4 234 5678",
			Source:     "Antibiotic pricing",
		})
	}
	if matchesAny(lower, []string{"vitamin", "supplement"}) {
		options = append(options, Procedure{
			ClinicName: "Health Plus Pharmacy",
			Service:    "Vitamins & Supplements",
			CashPrice:  "25-150 AED",
			Address:    "Dubai Mall, MOE, other locations",
			Phone:      "+971 4 345 6789",
			Source:     "Supplement pricing",
		})
	}
	if matchesAny(lower, []string{"skin", "cream", "ointment"}) {
		options = append(options, Procedure{
			ClinicName: "Skin Care Pharmacy",
			Service:    "Dermatological Creams & Ointments",
			CashPrice:  "35-200 AED",
			Address:    "Healthcare City, JLT",
			Phone:      "+971 4 456 7890",
			Source:     "Skin medication pricing",
		})
	}

	return options
}
