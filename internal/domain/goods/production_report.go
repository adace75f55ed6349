package goods

// ProductionReport aggregates the outcome of one production computation:
// what a work location actually produces and consumes this turn, and what it
// could produce and consume with unlimited input and warehouse headroom.
//
// Invariants:
// - All amounts are non-negative.
// - Maximum entries are present only when they exceed the corresponding
//   actual entry; equal maxima are omitted to signal no headroom.
type ProductionReport struct {
	production         []Stack
	maximumProduction  []Stack
	consumption        []Stack
	maximumConsumption []Stack
}

func NewProductionReport() *ProductionReport {
	return &ProductionReport{}
}

func (r *ProductionReport) AddProduction(s Stack) {
	r.production = append(r.production, s)
}

func (r *ProductionReport) AddMaximumProduction(s Stack) {
	r.maximumProduction = append(r.maximumProduction, s)
}

func (r *ProductionReport) AddConsumption(s Stack) {
	r.consumption = append(r.consumption, s)
}

func (r *ProductionReport) AddMaximumConsumption(s Stack) {
	r.maximumConsumption = append(r.maximumConsumption, s)
}

func (r *ProductionReport) Production() []Stack { return r.production }

func (r *ProductionReport) MaximumProduction() []Stack { return r.maximumProduction }

func (r *ProductionReport) Consumption() []Stack { return r.consumption }

func (r *ProductionReport) MaximumConsumption() []Stack { return r.maximumConsumption }

// Empty reports whether nothing is produced or consumed.
func (r *ProductionReport) Empty() bool {
	return len(r.production) == 0 && len(r.maximumProduction) == 0 &&
		len(r.consumption) == 0 && len(r.maximumConsumption) == 0
}
