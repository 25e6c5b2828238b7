package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"golang.org/x/sync/errgroup"

	"lightcycle/arena"
)

// arena-lab runs seeded headless self-play matches in parallel and reports
// aggregate outcome statistics. Useful for eyeballing agent balance after
// weight changes.
func main() {
	config := LoadConfig()

	mode := "standard"
	if config.Precision {
		mode = "precision"
	}
	log.Printf("Starting self-play run: %d matches, mode=%s, base seed=%d, parallelism=%d",
		config.Matches, mode, config.Seed, config.Parallelism)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		mu         sync.Mutex
		wins       = map[int]int{}
		draws      int
		totalTicks int
		completed  int
	)

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(config.Parallelism)

	for i := 0; i < config.Matches; i++ {
		seed := config.Seed + int64(i)
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			ctrl := arena.NewGameController(arena.MatchConfig{
				Precision: config.Precision,
				Seed:      seed,
			})
			ctrl.RunHeadless()
			state := ctrl.State()

			mu.Lock()
			completed++
			totalTicks += state.Tick
			if state.Winner != nil {
				wins[state.Winner.ID]++
			} else {
				draws++
			}
			mu.Unlock()
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		log.Printf("Run interrupted: %v", err)
	}

	if completed == 0 {
		log.Println("No matches completed")
		return
	}

	log.Printf("Completed %d matches, mean length %d ticks", completed, totalTicks/completed)
	for id := 1; id <= 4; id++ {
		log.Printf("  agent %d: %d wins (%.1f%%)", id, wins[id],
			float64(wins[id])*100.0/float64(completed))
	}
	log.Printf("  no winner: %d (%.1f%%)", draws, float64(draws)*100.0/float64(completed))
}
