// Package item derives stable identities and portable snapshots from host
// item documents.
package item

import (
	"fmt"

	"github.com/osse101/craftbench/internal/domain"
)

// SourceID returns the stable identity of an item: the first non-empty of its
// compendium source, core source flag, stamped source flag, or instance id.
func SourceID(doc domain.Item) string {
	for _, p := range []string{PathCompendiumSource, PathCoreSourceID, PathStampedSourceID, domain.ItemPathID} {
		if v := doc.Get(p).String(); v != "" {
			return v
		}
	}
	return ""
}

// hasLineage reports whether the item carries a source that survives snapshotting.
func hasLineage(doc domain.Item) bool {
	for _, p := range []string{PathCompendiumSource, PathCoreSourceID, PathStampedSourceID} {
		if doc.Get(p).String() != "" {
			return true
		}
	}
	return false
}

// Snapshot returns a copy of doc fit for storing inside a recipe. Instance
// fields are removed and, when the item has no lineage, its instance id is
// stamped as the source so the identity survives.
func Snapshot(doc domain.Item) (domain.Item, error) {
	if doc.IsZero() {
		return doc, fmt.Errorf("%w: empty item", domain.ErrInvalidInput)
	}

	out := doc
	var err error
	if !hasLineage(doc) {
		if id := doc.ID(); id != "" {
			if out, err = out.Set(PathStampedSourceID, id); err != nil {
				return doc, err
			}
		}
	}

	for _, f := range instanceFields {
		if out, err = out.Delete(f); err != nil {
			return doc, err
		}
	}
	return out, nil
}

// Same reports whether two documents share a source identity or a name.
// Empty identities and names never match.
func Same(a, b domain.Item) bool {
	if sa := SourceID(a); sa != "" && sa == SourceID(b) {
		return true
	}
	return a.Name() != "" && a.Name() == b.Name()
}
