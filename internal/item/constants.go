package item

import "github.com/osse101/craftbench/internal/domain"

// Lineage paths checked by SourceID, in priority order.
const (
	PathCompendiumSource = "_stats.compendiumSource"
	PathCoreSourceID     = "flags.core.sourceId"
	PathStampedSourceID  = domain.FlagsPath + ".sourceId"
)

// Fields that tie a document to one host instance and are dropped from snapshots.
var instanceFields = []string{domain.ItemPathID, "folder", "ownership"}
