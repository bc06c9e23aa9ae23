package order

// Labels for liquids are keyed by product; everything else falls through
// to the weight labels, so "1" reads "1 litre" for milk but "1 kg" for
// vermicompost.
var liquidLabels = map[string]map[string]string{
	"milk": {
		"0.5": "½ litre",
		"1":   "1 litre",
		"5":   "5 litre",
	},
	"ghee": {
		"0.5": "½ litre",
		"1":   "1 litre",
	},
}

var weightLabels = map[string]string{
	"250":  "250 g",
	"500":  "500 g",
	"1000": "1 kg",
	"1":    "1 kg",
	"5":    "5 kg",
	"10":   "10 kg",
}

// SizeLabel turns a size id into the text used in order messages,
// falling back to the raw id.
func SizeLabel(productID, sizeID string) string {
	if label, ok := liquidLabels[productID][sizeID]; ok {
		return label
	}
	if label, ok := weightLabels[sizeID]; ok {
		return label
	}
	return sizeID
}
