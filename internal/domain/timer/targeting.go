package timer

// Matches reports whether a timer applies to the given storefront context.
// Id comparison is exact: "12" does not match "120".
func Matches(t *Timer, productID string, collectionIDs []string) bool {
	if t == nil {
		return false
	}
	switch t.targeting.Scope() {
	case ScopeAll:
		return true
	case ScopeProducts:
		return productID != "" && t.targeting.contains(productID)
	case ScopeCollections:
		for _, id := range collectionIDs {
			if id != "" && t.targeting.contains(id) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
