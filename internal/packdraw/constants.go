package packdraw

// HoloRareChance is the probability that a rare-slot pick targets Holo Rare first
const HoloRareChance = 0.20

// Slot names, in the order they are filled
const (
	SlotCommon   = "common"
	SlotUncommon = "uncommon"
	SlotRare     = "rare_slot"
	SlotTopUp    = "top_up"
)

// Candidate strategy names
const (
	StrategyCommon       = "common"
	StrategyUncommon     = "uncommon"
	StrategyRare         = "rare"
	StrategyHoloRare     = "holo_rare"
	StrategyRareOrHolo   = "rare_or_holo"
	StrategyNonCommon    = "non_common"
	StrategyAnyRemaining = "any_remaining"
)
