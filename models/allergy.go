package models

import "strings"

// HasAllergyConflict reports whether any allergen tag of a menu item appears
// in the guest's allergy tags. Both lists are comma separated; tags are
// compared exactly after trimming and uppercasing. An empty list on either
// side never conflicts.
func HasAllergyConflict(guestAllergies, itemAllergens string) bool {
	guestTags := allergyTagSet(guestAllergies)
	if len(guestTags) == 0 {
		return false
	}
	for tag := range allergyTagSet(itemAllergens) {
		if _, ok := guestTags[tag]; ok {
			return true
		}
	}
	return false
}

func allergyTagSet(list string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, raw := range strings.Split(list, ",") {
		tag := strings.ToUpper(strings.TrimSpace(raw))
		if tag == "" {
			continue
		}
		set[tag] = struct{}{}
	}
	return set
}
