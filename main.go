package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"tron/communication"
	"tron/communication/server"
	"tron/engine"
	"tron/experiments"
	"tron/game"
	"tron/meta"
	"tron/searcher"
	"tron/searcher/agent"
	"tron/viewer"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const usage = `usage: tron <command> [flags]

commands:
  serve       host the bot over a websocket
  match       play one local match
  experiment  run an experiment and store its records
  play        answer one JSON request read from stdin
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	cmd, args := os.Args[1], os.Args[2:]

	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	configPath := fs.String("config", "", "YAML config file")
	depth := fs.Int("depth", -1, "Look-ahead depth, overrides the config")
	watch := fs.Bool("watch", false, "match: replay the match in the terminal")
	opponent := fs.String("opponent", "random", "match: random, lookahead or sampling")
	bots := fs.String("bots", "", "match: comma separated websocket URLs of remote bots")
	kind := fs.String("kind", "depth", "experiment: depth or throughput")
	fs.Parse(args)

	config, err := meta.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *depth >= 0 {
		config.MaxDepth = *depth
	}
	setupLogging(config.LogLevel, cmd == "play")

	switch cmd {
	case "serve":
		err = serve(config)
	case "match":
		err = match(config, *opponent, *bots, *watch)
	case "experiment":
		err = experiment(config, *kind)
	case "play":
		err = play(config)
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", cmd)
	}
}

// setupLogging writes human readable logs to stderr. stdout is reserved for
// acts in play mode.
func setupLogging(level string, quiet bool) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	if quiet && lvl < zerolog.WarnLevel {
		lvl = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
}

func newSearcher(config meta.Config) *searcher.Searcher {
	if config.Seed != 0 {
		return searcher.NewSearcher(searcher.WithSeed(config.Seed), searcher.WithMetrics())
	}
	return searcher.NewSearcher(searcher.WithMetrics())
}

func serve(config meta.Config) error {
	mux := http.NewServeMux()
	mux.Handle("/", server.New(func() *searcher.Searcher { return newSearcher(config) }, config.MaxDepth))

	log.Info().Msgf("serving bot on %s with default depth %d", config.Addr, config.MaxDepth)
	return http.ListenAndServe(config.Addr, mux)
}

func match(config meta.Config, opponent, bots string, watch bool) error {
	var e *engine.Local
	if bots != "" {
		remote, err := engine.RemoteEngine(strings.Split(bots, ","), config.MaxDepth, config.Width, config.Height)
		if err != nil {
			return err
		}
		defer remote.Close()
		e = remote.Local
	} else {
		var other agent.Agent
		switch opponent {
		case "random":
			other = agent.NewRandomAgent(config.Seed + 1)
		case "lookahead":
			other = agent.NewLookaheadAgent(newSearcher(config), config.MaxDepth)
		case "sampling":
			other = agent.NewSamplingAgent(newSearcher(config), config.MaxDepth, 0.5, config.Seed+1)
		default:
			return fmt.Errorf("unknown opponent %q", opponent)
		}
		e = engine.LocalEngine([]agent.Agent{agent.NewLookaheadAgent(newSearcher(config), config.MaxDepth), other}, config.Width, config.Height)
	}
	e.WithMaxTurns(config.MaxTurns)

	if !watch {
		winner, gameMetric, _ := e.Run()
		fmt.Printf("winner: %s after %d turns (%s)\n", winner, gameMetric.Turns, gameMetric.Duration)
		return nil
	}

	frames := make(chan engine.Frame)
	e.Observe(frames)
	go e.Run()
	return viewer.Run(frames, 80*time.Millisecond)
}

func experiment(config meta.Config, kind string) error {
	var dir string
	var err error
	switch kind {
	case "depth":
		dir, err = experiments.RunDepthExperiment(config)
	case "throughput":
		dir, err = experiments.RunThroughputExperiment(config)
	default:
		return fmt.Errorf("unknown experiment %q", kind)
	}
	if err != nil {
		return err
	}
	fmt.Println(dir)
	return nil
}

// play answers a single request from stdin, printing one JSON act per line.
func play(config meta.Config) error {
	var request communication.Request
	if err := json.NewDecoder(os.Stdin).Decode(&request); err != nil {
		return fmt.Errorf("failed to parse request: %w", err)
	}
	if err := request.Position.Validate(); err != nil {
		return err
	}
	depth := config.MaxDepth
	if request.MaxDepth != nil {
		depth = *request.MaxDepth
	}

	out := json.NewEncoder(os.Stdout)
	sink := searcher.EmitterFunc(func(correlationID string, move game.Move, depth int) {
		out.Encode(communication.Message{Type: communication.Act, CorrelationID: correlationID, Direction: move, Depth: depth})
	})
	newSearcher(config).Play(request.CorrelationID, request.Position, request.Grid.Grid(), depth, sink)
	return out.Encode(communication.Message{Type: communication.Idle, CorrelationID: request.CorrelationID})
}
