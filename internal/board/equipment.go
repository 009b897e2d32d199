package board

import "strings"

// Supported equipment classes.
const (
	EquipmentReefer = "Reefer"
	EquipmentDryVan = "Dry Van"
)

// equipmentKeywords maps each class to the substrings that signal it in
// carrier profile text, in scan order.
var equipmentKeywords = []struct {
	class    string
	keywords []string
}{
	{EquipmentReefer, []string{"reefer", "refrigerated"}},
	{EquipmentDryVan, []string{"van", "freight"}},
}

// defaultEquipmentOrder is appended after any keyword matches so the result
// always contains both classes.
var defaultEquipmentOrder = []string{EquipmentDryVan, EquipmentReefer}

// InferEquipmentPreferences derives an ordered equipment preference list from
// a carrier's name and authority status text. Classes matched by keyword come
// first in scan order; the remaining defaults follow. Pure function.
func InferEquipmentPreferences(carrierName, authorityStatus string) []string {
	text := strings.ToLower(carrierName + " " + authorityStatus)

	var prefs []string
	present := make(map[string]bool, len(defaultEquipmentOrder))
	for _, entry := range equipmentKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(text, keyword) {
				prefs = append(prefs, entry.class)
				present[entry.class] = true
				break
			}
		}
	}
	for _, class := range defaultEquipmentOrder {
		if !present[class] {
			prefs = append(prefs, class)
			present[class] = true
		}
	}
	return prefs
}
