package layout

import (
	"github.com/orgball2608/inline-bot-layout/internal/domain"
	"github.com/samber/lo"
)

// DocumentRegistry indexes documents to the items currently showing them so a
// finished download can update exactly those items. It never owns either
// side: an item stays listed until it unregisters, which Item.Destroy does.
//
// The zero value is ready to use; storage is allocated on the first Register.
type DocumentRegistry struct {
	items map[domain.DocumentID]map[Item]struct{}
}

// RegistryStats is a point-in-time count of the registry, served by the
// diagnostics endpoint and checked by the audit job.
type RegistryStats struct {
	Documents int `json:"documents"`
	Items     int `json:"items"`
	// Detached counts registered items whose position is negative.
	Detached int `json:"detached"`
}

// NewDocumentRegistry returns an empty registry.
func NewDocumentRegistry() *DocumentRegistry {
	return &DocumentRegistry{}
}

// Register adds item as a viewer of doc. Nil arguments and repeats are no-ops.
func (r *DocumentRegistry) Register(doc domain.Document, item Item) {
	if doc == nil || item == nil {
		return
	}
	if r.items == nil {
		r.items = make(map[domain.DocumentID]map[Item]struct{})
	}
	set, ok := r.items[doc.ID()]
	if !ok {
		set = make(map[Item]struct{})
		r.items[doc.ID()] = set
	}
	set[item] = struct{}{}
}

// Unregister drops the pair; the document key goes away with its last item.
func (r *DocumentRegistry) Unregister(doc domain.Document, item Item) {
	if r.items == nil || doc == nil || item == nil {
		return
	}
	id := doc.ID()
	set, ok := r.items[id]
	if !ok {
		return
	}
	delete(set, item)
	if len(set) == 0 {
		delete(r.items, id)
	}
}

// Lookup returns a snapshot of the items showing doc, nil if none.
func (r *DocumentRegistry) Lookup(doc domain.Document) []Item {
	if r.items == nil || doc == nil {
		return nil
	}
	set, ok := r.items[doc.ID()]
	if !ok {
		return nil
	}
	return lo.Keys(set)
}

// Stats walks every entry; detached items usually mean a missed Destroy.
func (r *DocumentRegistry) Stats() RegistryStats {
	var stats RegistryStats
	for _, set := range r.items {
		stats.Documents++
		for item := range set {
			stats.Items++
			if item.Position() < 0 {
				stats.Detached++
			}
		}
	}
	return stats
}
