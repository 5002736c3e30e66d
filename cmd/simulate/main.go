// Command simulate plays all-AI games of Thirteen and prints the results.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/pterm/pterm"

	"thirteen/internal/app"
	"thirteen/internal/bot"
	"thirteen/internal/config"
	"thirteen/internal/logging"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML, JSON or TOML game config")
	games := flag.Int("games", 1, "number of games to play")
	listPersonas := flag.Bool("personas", false, "list bot personas and exit")
	flag.Parse()

	if *listPersonas {
		printPersonas()
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, *configPath, *games); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath string, games int) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logger, err := logging.NewTerminal(cfg.LogLevel)
	if err != nil {
		return err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	logger.Info("seed %d", seed)

	agents, err := bot.NewRoster(cfg.Seats, rng)
	if err != nil {
		return err
	}
	svc := app.NewService(rng, logger)
	opts := app.SimulateOptions{HandSize: cfg.HandSize, ThinkDelay: cfg.ThinkDelay, MaxTurns: cfg.MaxTurns}

	wins := make([]int, len(agents))
	for i := 0; i < games; i++ {
		res, err := svc.Simulate(ctx, agents, opts)
		if err != nil {
			return fmt.Errorf("game %d: %w", i+1, err)
		}
		wins[res.FinishOrder[0]]++
		if err := printResult(i+1, res); err != nil {
			return err
		}
	}
	if games > 1 {
		pterm.Info.Printfln("wins after %d games: %v", games, wins)
	}
	return nil
}

func printResult(n int, res *app.Result) error {
	place := make(map[int]int, len(res.FinishOrder))
	for i, seat := range res.FinishOrder {
		place[seat] = i + 1
	}

	data := pterm.TableData{{"Place", "Seat", "Name", "Persona", "Plays", "Passes", "Cards", "Bombs", "Rounds won"}}
	for _, seat := range res.FinishOrder {
		st := res.Stats[seat]
		data = append(data, []string{
			strconv.Itoa(place[seat]),
			strconv.Itoa(st.Seat),
			st.Name,
			st.Persona,
			strconv.Itoa(st.Plays),
			strconv.Itoa(st.Passes),
			strconv.Itoa(st.CardsPlayed),
			strconv.Itoa(st.Bombs),
			strconv.Itoa(st.RoundsWon),
		})
	}

	pterm.Success.Printfln("game %d (%s): %d turns, %d rounds", n, res.GameID, res.Turns, res.Rounds)
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printPersonas() {
	data := pterm.TableData{{"Key", "Name", "Description"}}
	for _, p := range bot.Personas() {
		data = append(data, []string{p.Key, p.Name, p.Description})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		pterm.Error.Println(err)
	}
}
