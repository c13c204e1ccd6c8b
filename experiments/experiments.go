package experiments

import (
	"time"

	"kalah/engine"
	"kalah/game"
	"kalah/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"
)

// AgentConfig identifies one search configuration under test.
type AgentConfig struct {
	ID          int
	Simulations int
	CPuct       float64
}

// GameRecord is one completed game of a matchup. AgentA and AgentB are
// config IDs seated on their respective sides.
type GameRecord struct {
	ID       int
	AgentA   int
	AgentB   int
	Outcome  string
	Winner   int // winning config ID, -1 on a draw
	Moves    int
	Duration time.Duration
}

// Summary aggregates one config's games against the baseline. Score counts a
// win as 1, a draw as 0.5.
type Summary struct {
	Agent       int
	Games       int
	MeanScore   float64
	ScoreStdDev float64
	MeanMoves   float64
}

// RunStrength pits every config against the baseline for gamesPerMatch games
// each, alternating the starting side, and writes configs, per-game records
// and per-config summaries as CSV under outDir.
func RunStrength(name string, baseline AgentConfig, configs []AgentConfig, gamesPerMatch int, seed uint64, outDir string) ([]Summary, error) {
	rng := rand.New(rand.NewSource(seed))
	records := []GameRecord{}
	summaries := []Summary{}
	count := 0

	log.Info().Str("experiment", name).Int("configs", len(configs)).Msg("starting experiment")

	for _, config := range configs {
		scores := make([]float64, 0, gamesPerMatch)
		moveCounts := make([]float64, 0, gamesPerMatch)

		for i := 0; i < gamesPerMatch; i++ {
			// Alternate sides so first-move advantage cancels out.
			seatA, seatB := baseline, config
			if i%2 == 1 {
				seatA, seatB = config, baseline
			}

			start := time.Now()
			final, moves := runGame(seatA, seatB, rng)
			count++

			record := GameRecord{
				ID:       count,
				AgentA:   seatA.ID,
				AgentB:   seatB.ID,
				Outcome:  final.Outcome().String(),
				Winner:   -1,
				Moves:    moves,
				Duration: time.Since(start),
			}
			score := 0.5
			if winner, ok := final.Outcome().Winner(); ok {
				if winner == game.PlayerA {
					record.Winner = seatA.ID
				} else {
					record.Winner = seatB.ID
				}
				if record.Winner == config.ID {
					score = 1
				} else {
					score = 0
				}
			}
			records = append(records, record)
			scores = append(scores, score)
			moveCounts = append(moveCounts, float64(moves))

			log.Info().
				Str("experiment", name).
				Int("config", config.ID).
				Int("game", i+1).
				Str("outcome", record.Outcome).
				Msg("game finished")
		}

		summaries = append(summaries, Summary{
			Agent:       config.ID,
			Games:       gamesPerMatch,
			MeanScore:   stat.Mean(scores, nil),
			ScoreStdDev: stat.StdDev(scores, nil),
			MeanMoves:   stat.Mean(moveCounts, nil),
		})
	}

	log.Info().Str("experiment", name).Int("games", count).Msg("experiment complete")

	writer, err := NewWriter(outDir, name)
	if err != nil {
		return nil, err
	}
	if err := writer.WriteAgentConfigs(append([]AgentConfig{baseline}, configs...)); err != nil {
		return nil, err
	}
	if err := writer.WriteGameRecords(records); err != nil {
		return nil, err
	}
	if err := writer.WriteSummaries(summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}

func runGame(seatA, seatB AgentConfig, rng *rand.Rand) (game.State, int) {
	e := engine.NewLocal(newAgent(seatA, rng), newAgent(seatB, rng))
	return e.Run()
}

func newAgent(config AgentConfig, rng *rand.Rand) engine.Agent {
	return engine.NewSearchAgent(searcher.NewMCTS(
		searcher.WithSimulations(config.Simulations),
		searcher.WithCPuct(config.CPuct),
		searcher.WithRand(rng),
	))
}
