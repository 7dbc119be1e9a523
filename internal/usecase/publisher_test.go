package usecase

import (
	"context"
	"strconv"
	"sync"

	"github.com/riskibarqy/learnquest/internal/domain/gamification"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []gamification.Event
}

func (p *recordingPublisher) Publish(_ context.Context, event gamification.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *recordingPublisher) snapshot() []gamification.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]gamification.Event(nil), p.events...)
}

type sequenceIDGenerator struct {
	mu   sync.Mutex
	next int
}

func (g *sequenceIDGenerator) NewID() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	return "id-" + strconv.Itoa(g.next), nil
}
