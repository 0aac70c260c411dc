package timetrack

// NoDescriptionPlaceholder is substituted for entries with no description
// in a DetailReport row.
const NoDescriptionPlaceholder = "<no description>"

// DetailRow is one entry's contribution to a DetailReport.
type DetailRow struct {
	Date        EntryDate
	Description string
	Minutes     uint32
}

// DetailReport is the per-tag task list (spec 4.G "Detail report").
type DetailReport struct {
	Tag  Tag
	Rows []DetailRow
}

// BuildDetail collects every entry in tt carrying tag, ordered by date
// ascending then by source/insertion order within a date.
func BuildDetail(tt TrackedTime, tag Tag) DetailReport {
	var rows []DetailRow
	for _, d := range tt.SortedDates() {
		for _, e := range tt.entriesByDate[d] {
			if !e.HasTag(tag) {
				continue
			}
			desc, ok := e.Description()
			if !ok {
				desc = NoDescriptionPlaceholder
			}
			rows = append(rows, DetailRow{Date: d, Description: desc, Minutes: e.Minutes()})
		}
	}
	return DetailReport{Tag: tag, Rows: rows}
}
