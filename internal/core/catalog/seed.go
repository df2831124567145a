package catalog

// Seed returns the default catalog written on first run when no store file
// exists yet.
func Seed() []Record {
	return []Record{
		{ID: "101", Name: "Paracetamol", Intensity: "500mg", Disease: "Fever", Cost: "20.00"},
		{ID: "102", Name: "Dolo", Intensity: "650mg", Disease: "Fever", Cost: "30.00"},
		{ID: "103", Name: "Azithromycin", Intensity: "250mg", Disease: "Infection", Cost: "85.00"},
		{ID: "104", Name: "Amoxicillin", Intensity: "500mg", Disease: "Infection", Cost: "60.00"},
		{ID: "105", Name: "Cetirizine", Intensity: "10mg", Disease: "Allergy", Cost: "30.00"},
		{ID: "106", Name: "Omeprazole", Intensity: "20mg", Disease: "Acidity", Cost: "50.00"},
		{ID: "107", Name: "Multivitamin", Intensity: "1tab", Disease: "General Health", Cost: "25.00"},
		{ID: "108", Name: "Ibuprofen", Intensity: "400mg", Disease: "Pain Relief", Cost: "45.00"},
		{ID: "109", Name: "Cetraxal", Intensity: "10mg", Disease: "Ear Infection", Cost: "120.00"},
	}
}
