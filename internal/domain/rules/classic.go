package rules

import "github.com/mvaldes/colonia-go/internal/domain/goods"

// Classic ruleset identifiers.
const (
	GoodsGrain  = "grain"
	GoodsHorses = "horses"
	GoodsOre    = "ore"
	GoodsTools  = "tools"
	GoodsBells  = "bells"

	UnitColonist         = "colonist"
	UnitMasterBlacksmith = "masterBlacksmith"

	BuildingFarm           = "farm"
	BuildingStable         = "stable"
	BuildingTownHall       = "townHall"
	BuildingBlacksmithHut  = "blacksmithHut"
	BuildingBlacksmithShop = "blacksmithShop"
	BuildingToolsFactory   = "toolsFactory"
)

// ClassicRuleset assembles the built-in ruleset used by the CLI seed and the
// test suites: basic goods, a colonist plus one expert, and a small set of
// buildings covering every production mode (plain labor, breeding, upgrade
// chain with expert connections).
func ClassicRuleset() *Ruleset {
	r := NewRuleset()

	grain := mustGoods(goods.NewType(GoodsGrain))
	horses := mustGoods(goods.NewBreedableType(GoodsHorses, 2))
	ore := mustGoods(goods.NewType(GoodsOre))
	tools := mustGoods(goods.NewType(GoodsTools))
	bells := mustGoods(goods.NewType(GoodsBells))
	for _, t := range []*goods.Type{grain, horses, ore, tools, bells} {
		if err := r.AddGoodsType(t); err != nil {
			panic(err)
		}
	}

	colonist := mustUnit(NewUnitType(UnitColonist, 1))

	blacksmith := mustUnit(NewUnitType(UnitMasterBlacksmith, 2))
	blacksmith.MakeExpertAt(tools)
	blacksmith.AddModifier(GoodsTools, NewModifier(UnitMasterBlacksmith, KindMultiplicative, 2))

	for _, t := range []*UnitType{colonist, blacksmith} {
		if err := r.AddUnitType(t); err != nil {
			panic(err)
		}
	}

	farm := mustBuilding(NewBuildingType(BuildingFarm, 1, 3))
	farm.AddProduction(NewProduction(nil, []goods.Stack{goods.StackOf(grain, 3)}))

	// Stables breed horses from the existing herd; grain feeds them. They
	// never breed past the warehouse.
	stable := mustBuilding(NewBuildingType(BuildingStable, 1, 0))
	stable.AddAbility(AbilityAutoProduction)
	stable.AddAbility(AbilityAvoidExcessProduction)
	stable.AddModifier(ModifierBreedingDivisor, NewModifier(BuildingStable, KindAdditive, 5))
	stable.AddModifier(ModifierBreedingFactor, NewModifier(BuildingStable, KindAdditive, 1))
	stable.AddProduction(NewProduction(
		[]goods.Stack{goods.StackOf(grain, 1)},
		[]goods.Stack{goods.StackOf(horses, 1)},
	))

	townHall := mustBuilding(NewBuildingType(BuildingTownHall, 1, 3))
	townHall.SetAutoBuilt(true)
	townHall.AddProduction(NewProduction(nil, []goods.Stack{goods.StackOf(bells, 3)}))

	hut := mustBuilding(NewBuildingType(BuildingBlacksmithHut, 1, 2))
	hut.AddProduction(NewProduction(
		[]goods.Stack{goods.StackOf(ore, 3)},
		[]goods.Stack{goods.StackOf(tools, 3)},
	))

	shop := mustBuilding(NewBuildingType(BuildingBlacksmithShop, 2, 3))
	shop.SetBuildCost([]goods.Stack{goods.StackOf(tools, 16)})
	shop.AddProduction(NewProduction(
		[]goods.Stack{goods.StackOf(ore, 3)},
		[]goods.Stack{goods.StackOf(tools, 3)},
	))
	shop.AddModifier(GoodsTools, NewModifier(BuildingBlacksmithShop, KindPercentage, 50))

	factory := mustBuilding(NewBuildingType(BuildingToolsFactory, 3, 2))
	factory.SetBuildCost([]goods.Stack{goods.StackOf(tools, 32)})
	factory.AddAbility(AbilityExpertsUseConnections)
	factory.AddProduction(NewProduction(
		[]goods.Stack{goods.StackOf(ore, 3)},
		[]goods.Stack{goods.StackOf(tools, 3)},
	))
	factory.AddModifier(GoodsTools, NewModifier(BuildingToolsFactory, KindPercentage, 100))

	LinkUpgrade(hut, shop)
	LinkUpgrade(shop, factory)

	for _, t := range []*BuildingType{farm, stable, townHall, hut, shop, factory} {
		if err := r.AddBuildingType(t); err != nil {
			panic(err)
		}
	}

	r.SetBoolean(OptionExpertsHaveConnections, true)

	return r
}

func mustGoods(t *goods.Type, err error) *goods.Type {
	if err != nil {
		panic(err)
	}
	return t
}

func mustUnit(t *UnitType, err error) *UnitType {
	if err != nil {
		panic(err)
	}
	return t
}

func mustBuilding(t *BuildingType, err error) *BuildingType {
	if err != nil {
		panic(err)
	}
	return t
}
