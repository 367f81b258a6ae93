package format

// Date returns the ISO date as given, or "-" when it is empty.
func Date(iso string) string {
	if iso == "" {
		return "-"
	}
	return iso
}
