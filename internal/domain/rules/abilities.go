package rules

// Ability identifiers carried by building types.
const (
	// AbilityAvoidExcessProduction stops production that would overflow the
	// colony warehouse instead of wasting the surplus.
	AbilityAvoidExcessProduction = "ability.avoidExcessProduction"

	// AbilityAutoProduction marks buildings whose output grows from existing
	// stock without worker labor (livestock breeding).
	AbilityAutoProduction = "ability.autoProduction"

	// AbilityExpertsUseConnections lets expert workers obtain a minimum of
	// input goods even when the warehouse cannot supply them.
	AbilityExpertsUseConnections = "ability.expertsUseConnections"
)

// Boolean game options toggled per ruleset.
const (
	// OptionExpertsHaveConnections is the global switch that arms
	// AbilityExpertsUseConnections.
	OptionExpertsHaveConnections = "option.expertsHaveConnections"
)

// Modifier identifiers for breeding constants on building types.
const (
	ModifierBreedingDivisor = "modifier.breedingDivisor"
	ModifierBreedingFactor  = "modifier.breedingFactor"
)
