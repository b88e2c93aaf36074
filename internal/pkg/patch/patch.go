package patch

// Coalesce returns *ptr when ptr is set, otherwise fallback. Partial timer
// updates use it to merge request fields over the stored record: a nil
// pointer means "field not sent", not "clear the field".
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}
