package domain

import "time"

// LinkRef is one [[wiki link]] occurrence inside a log item
type LinkRef struct {
	Target   string // link target without brackets or alias, e.g. "Project X"
	LinkText string // [[link]] text as written
	Date     string // YYYY-MM-DD of the day holding the item
	Category Category
	Line     string // the bullet line
}

// LinkCount is a link target with the number of items referencing it
type LinkCount struct {
	Target string
	Count  int
}

// SyncStats holds statistics from an index sync
type SyncStats struct {
	FilesScanned int
	FilesUpdated int
	FilesDeleted int
	LinksAdded   int
	LinksDeleted int
	Duration     time.Duration
}

// CollectLinks returns every link reference in a parsed log
func CollectLinks(log *Log) []LinkRef {
	var refs []LinkRef
	for _, e := range log.Entries {
		for _, c := range Categories {
			for _, item := range e.FilledItems(c) {
				for _, link := range ExtractLinks(item) {
					refs = append(refs, LinkRef{
						Target:   LinkTarget(link),
						LinkText: link,
						Date:     e.DateString(),
						Category: c,
						Line:     item,
					})
				}
			}
		}
	}
	return refs
}
