package kvsource

// registryPrefixes documents the producer node's full database registry
// (rusty-kaspa database/src/registry.rs), even though this verifier only
// ever looks up PrefixHeaders, PrefixHeadersSelectedTip, PrefixTips and
// PrefixPruningPoint (defined in source.go). Recording the rest of the keyspace here keeps
// the prefix-byte assignment traceable to the system it was retrieved
// from, per spec's "any consistent assignment works provided it matches
// the producer".
const (
	registryAcceptanceData            byte = 1
	registryBlockTransactions         byte = 2
	registryNonDAAMergeset            byte = 3
	registryBlockDepth                byte = 4
	registryGhostdag                  byte = 5
	registryGhostdagCompact           byte = 6
	registryHeadersCompact            byte = 9
	registryPastPruningPoints         byte = 10
	registryPruningUTXOSet            byte = 11
	registryPruningUTXOSetPosition    byte = 12
	registryRetentionCheckpoint       byte = 14
	registryReachability              byte = 15
	registryReachabilityReindexRoot   byte = 16
	registryReachabilityRelations     byte = 17
	registryRelationsParents          byte = 18
	registryRelationsChildren         byte = 19
	registryChainHashByIndex          byte = 20
	registryChainIndexByHash          byte = 21
	registryChainHighestIndex         byte = 22
	registryStatuses                  byte = 23
	registryUTXODiffs                 byte = 25
	registryUTXOMultisets             byte = 26
	registryVirtualUTXOSet            byte = 27
	registryVirtualState              byte = 28
	registryPruningSamples            byte = 29
	registryMultiConsensusMetadata    byte = 124
	registryConsensusEntries          byte = 125
	registryAddresses                 byte = 128
	registryBannedAddresses           byte = 129
	registryUTXOIndex                 byte = 192
	registryUTXOIndexTips             byte = 193
	registryCirculatingSupply         byte = 194
)
