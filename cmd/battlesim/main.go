// battlesim is a stand-in for the external battle loop: it wires creatures,
// the status registry and a seeded roller together and narrates a few turns
// of passive effect processing. It makes no move or damage decisions beyond
// inflicting the starting conditions.
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/hartfell/beastbattle/internal/config"
	"github.com/hartfell/beastbattle/internal/domain/creature"
	"github.com/hartfell/beastbattle/internal/domain/events"
	"github.com/hartfell/beastbattle/internal/domain/status"
	"github.com/hartfell/beastbattle/internal/rng"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	seed := cfg.Sim.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("Running %d battles of %d turns (seed %d)", cfg.Sim.Battles, cfg.Sim.Turns, seed)

	bus := events.NewEventBus()
	bus.Subscribe(events.StatusExpired, &expiryLogger{})

	// Battles share nothing but the bus and registry; each owns its
	// creatures and roller, so they can run concurrently.
	var g errgroup.Group
	for i := 0; i < cfg.Sim.Battles; i++ {
		battleID := i + 1
		roller := rng.NewSeededRoller(seed + int64(i))
		g.Go(func() error {
			return runBattle(battleID, status.NewRegistry(bus), roller, cfg.Sim.Turns)
		})
	}

	if err := g.Wait(); err != nil {
		log.Fatalf("Battle failed: %v", err)
	}
}

// expiryLogger narrates natural effect expiry
type expiryLogger struct{}

func (l *expiryLogger) HandleEvent(event *events.BattleEvent) error {
	kind, _ := event.GetStringContext(events.ContextKind)
	log.Printf("%s is no longer affected by %s", event.Combatant, kind)
	return nil
}

func (l *expiryLogger) Priority() int { return 100 }

func runBattle(battleID int, registry *status.Registry, roller rng.Roller, turns int) error {
	singe := &creature.Creature{
		CreatureID: fmt.Sprintf("battle%d/singewing", battleID),
		Name:       "Singewing",
		HP:         160, MaxHP: 160,
		Attack: 55, Defense: 40, Speed: 70,
		Intelligence: 35, Stamina: 60, Accuracy: 95, Evasion: 90,
	}
	bram := &creature.Creature{
		CreatureID: fmt.Sprintf("battle%d/brambleback", battleID),
		Name:       "Brambleback",
		HP:         200, MaxHP: 200,
		Attack: 45, Defense: 60, Speed: 35,
		Intelligence: 50, Stamina: 75, Accuracy: 90, Evasion: 85,
	}

	// Opening moves land their conditions
	registry.Apply(bram, status.New(status.Burn, 5, singe.CreatureID))
	registry.Apply(bram, status.New(status.Confusion, 3, singe.CreatureID))
	registry.Apply(singe, status.New(status.Paralysis, 6, bram.CreatureID))
	if up, ok := status.NewStage(status.StatAttack, status.DirectionUp, 2, status.DurationUntilRemoved, singe.CreatureID); ok {
		registry.Apply(singe, up)
	}

	for turn := 1; turn <= turns; turn++ {
		for _, c := range []*creature.Creature{singe, bram} {
			outcomes := registry.ProcessTurn(c, roller)
			for _, o := range outcomes {
				if o.Message != "" {
					log.Printf("[battle %d, turn %d] %s %s", battleID, turn, c.Name, o.Message)
				}
				if !o.CanAct {
					log.Printf("[battle %d, turn %d] %s cannot act this turn", battleID, turn, c.Name)
				}
			}
			if c.Fainted() {
				log.Printf("[battle %d, turn %d] %s fainted", battleID, turn, c.Name)
				registry.ClearAll(singe)
				registry.ClearAll(bram)
				return nil
			}
		}
	}

	log.Printf("[battle %d] over after %d turns: %s %d/%d HP (attack x%.2f), %s %d/%d HP",
		battleID, turns,
		singe.Name, singe.HP, singe.MaxHP, status.Multiplier(singe, status.StatAttack),
		bram.Name, bram.HP, bram.MaxHP)

	registry.ClearAll(singe)
	registry.ClearAll(bram)
	return nil
}
