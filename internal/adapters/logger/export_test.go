package logger

type ErrorEntry = errorEntry

func CollectErrorEntries(err error) []ErrorEntry {
	return collectErrorEntries(err)
}

func FormatErrorEntries(entries []ErrorEntry) string {
	return formatErrorEntries(entries)
}
