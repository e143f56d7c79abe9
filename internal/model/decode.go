package model

// DecodeRecords rebuilds Records from JSON-decoded rows, restoring the
// string-list typing that interface decoding flattens to []any.
func DecodeRecords(rows []map[string]any) []Record {
	records := make([]Record, len(rows))
	for i, row := range rows {
		record := make(Record, len(row))
		for key, value := range row {
			if list, ok := value.([]any); ok {
				items := make([]string, 0, len(list))
				for _, item := range list {
					if s, ok := item.(string); ok {
						items = append(items, s)
					}
				}
				record[key] = items
				continue
			}
			record[key] = value
		}
		records[i] = record
	}
	return records
}
