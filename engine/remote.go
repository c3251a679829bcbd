package engine

import (
	"errors"
	"fmt"

	"tron/communication/client"
	"tron/searcher/agent"
)

// Remote runs a local arena whose players are bots reached over websockets.
type Remote struct {
	*Local
	bots []*client.RemoteAgent
}

// RemoteEngine dials one bot per URL. Every bot searches to depth.
func RemoteEngine(urls []string, depth, width, height int) (*Remote, error) {
	if len(urls) < 1 {
		return nil, errors.New("need at least one bot URL")
	}

	bots := make([]*client.RemoteAgent, 0, len(urls))
	agents := make([]agent.Agent, 0, len(urls))
	for _, url := range urls {
		bot, err := client.Dial(url, depth)
		if err != nil {
			for _, b := range bots {
				b.Close()
			}
			return nil, fmt.Errorf("failed to seat bot: %w", err)
		}
		bots = append(bots, bot)
		agents = append(agents, bot)
	}

	return &Remote{Local: LocalEngine(agents, width, height), bots: bots}, nil
}

func (e *Remote) Close() error {
	var errs []error
	for _, b := range e.bots {
		errs = append(errs, b.Close())
	}
	return errors.Join(errs...)
}
