package producer

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/ziuteczek/Turbo-Tester-3000/internal/domain/execution"
	"github.com/ziuteczek/Turbo-Tester-3000/internal/pairing"
	"github.com/ziuteczek/Turbo-Tester-3000/internal/ports"
)

// Service implements ports.CaseSource over validated file pairs. Case files are
// read only when the case is requested, never up front.
type Service struct {
	mu    sync.Mutex
	pairs []pairing.Pair
	index int
}

var _ ports.CaseSource = (*Service)(nil)

// NewService builds a producer over the supplied pairs, in order.
func NewService(pairs []pairing.Pair) *Service {
	return &Service{pairs: pairs}
}

// Len returns the total number of cases the service will produce.
func (s *Service) Len() int {
	return len(s.pairs)
}

// NextCase loads the next case from disk or returns io.EOF when all pairs are consumed.
func (s *Service) NextCase(ctx context.Context) (execution.TestCase, error) {
	select {
	case <-ctx.Done():
		return execution.TestCase{}, ctx.Err()
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.index >= len(s.pairs) {
		return execution.TestCase{}, io.EOF
	}

	pair := s.pairs[s.index]
	s.index++

	return load(pair)
}

func load(pair pairing.Pair) (execution.TestCase, error) {
	input, err := os.ReadFile(pair.InputPath)
	if err != nil {
		return execution.TestCase{}, fmt.Errorf("read input %s: %w", pair.InputPath, err)
	}

	expected, err := os.ReadFile(pair.ExpectedPath)
	if err != nil {
		return execution.TestCase{}, fmt.Errorf("read expected output %s: %w", pair.ExpectedPath, err)
	}

	return execution.TestCase{
		Index:          pair.Index,
		Name:           pair.Name,
		Input:          string(input),
		ExpectedOutput: string(expected),
	}, nil
}
