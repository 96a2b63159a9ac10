package services

// extractionFields are the canonical fields a complete extraction carries.
var extractionFields = []string{"name", "email", "phone", "company", "designation", "skills"}

// CalculateConfidence scores an extraction result by the fraction of
// canonical fields that are present and non-empty. Pure and total: an empty
// or nil map scores 0.0.
func CalculateConfidence(fields map[string]interface{}) float64 {
	filled := 0
	for _, name := range extractionFields {
		if truthy(fields[name]) {
			filled++
		}
	}

	return float64(filled) / float64(len(extractionFields))
}

func truthy(v interface{}) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return val != ""
	case []string:
		return len(val) > 0
	case []interface{}:
		return len(val) > 0
	default:
		return true
	}
}
