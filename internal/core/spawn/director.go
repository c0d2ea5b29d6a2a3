package spawn

import (
	"github.com/google/uuid"

	"github.com/zeusync/spawnkit/internal/core/allocation"
	"github.com/zeusync/spawnkit/internal/core/cluster"
	"github.com/zeusync/spawnkit/internal/core/observability/log"
	"github.com/zeusync/spawnkit/internal/core/random"
	"github.com/zeusync/spawnkit/internal/core/systems/physics"
	"github.com/zeusync/spawnkit/internal/core/weighted"
)

// Spawn is one placed entry of a plan. Cluster is -1 when the table has no
// spawn points.
type Spawn struct {
	EntryID  uuid.UUID    `json:"entry_id"`
	Name     string       `json:"name"`
	Cost     float64      `json:"cost"`
	Cluster  int          `json:"cluster"`
	Position physics.Vec3 `json:"position"`
}

// Plan is the outcome of spending a table's budget.
type Plan struct {
	Table     string           `json:"table"`
	Seed      uint64           `json:"seed"`
	Budget    float64          `json:"budget"`
	Spent     float64          `json:"spent"`
	Remaining float64          `json:"remaining"`
	Spawns    []Spawn          `json:"spawns"`
	Clusters  [][]physics.Vec3 `json:"clusters"`
}

// Director turns spawn tables into plans.
type Director struct {
	logger log.Log
}

func NewDirector(logger log.Log) *Director {
	if logger == nil {
		logger = log.Nop()
	}
	return &Director{logger: logger}
}

// Plan validates table and plans it with a source seeded from its seed name.
func (d *Director) Plan(table *Table) (*Plan, error) {
	rng := random.NewNamed(table.SeedName())
	plan, err := d.PlanWith(table, rng)
	if err != nil {
		return nil, err
	}
	plan.Seed = rng.Seed()
	return plan, nil
}

// PlanWith plans table drawing from rng. Entries are chosen by the budget
// allocator (cost as cost, weight as rank); each one lands in a cluster picked
// in proportion to its size, at a uniformly picked member point.
func (d *Director) PlanWith(table *Table, rng random.Source) (*Plan, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}
	table.AssignIDs()

	logger := d.logger.With(log.String("table", table.Name))

	clusters := cluster.Proximity(table.SpawnPoints, table.ClusterDistance)
	groups := make([][]physics.Vec3, len(clusters))
	order := make([]int, len(clusters))
	for i, c := range clusters {
		groups[i] = c.Points().Collect()
		order[i] = i
	}

	maxRoll := table.MaxRoll
	if maxRoll == 0 {
		maxRoll = allocation.DefaultMaxRoll
	}

	picks := allocation.Allocate(rng, table.Entries,
		func(e Entry) float64 { return e.Cost },
		func(e Entry) float64 { return e.Weight },
		table.Budget,
		allocation.WithMaxRoll(maxRoll),
		allocation.WithNoDuplicate(table.NoDuplicate),
		allocation.WithLogger(logger),
	)

	plan := &Plan{
		Table:     table.Name,
		Budget:    table.Budget,
		Remaining: table.Budget,
		Spawns:    make([]Spawn, 0),
		Clusters:  groups,
	}

	for pick := range picks.Seq() {
		s := Spawn{
			EntryID: pick.Value.ID,
			Name:    pick.Value.Name,
			Cost:    pick.Cost,
			Cluster: -1,
		}
		if idx, ok := weighted.Pick(rng, order, func(i int) float64 { return float64(len(groups[i])) }); ok {
			s.Cluster = idx
			s.Position, _ = weighted.Pick(rng, groups[idx], func(physics.Vec3) float64 { return 1 })
		}

		plan.Spawns = append(plan.Spawns, s)
		plan.Spent += pick.Cost
		plan.Remaining = pick.BudgetAfter
	}

	logger.Info("spawn plan ready",
		log.Int("spawns", len(plan.Spawns)),
		log.Int("clusters", len(groups)),
		log.Float64("spent", plan.Spent),
		log.Float64("remaining", plan.Remaining))

	return plan, nil
}
