// stack deals comparison pairs to voters. The name comes from the voting
// UI, where a voter flips through a "stack" of two cards and picks one.
package stack

import (
	"context"

	"github.com/duelboard/duelboard/internal/config"
	"github.com/duelboard/duelboard/internal/domain/content"
	"github.com/duelboard/duelboard/internal/domain/user"
)

// A Service that samples a pair of entries for a voter to compare.
type Service interface {
	// Pair returns 2 distinct entries chosen at random from entries the
	// given voter does not own, or an empty slice when fewer than 2 such
	// entries exist. The empty result is not an error; it just means
	// there is nothing to vote on yet.
	Pair(ctx context.Context, voterId user.Id) ([]content.Entry, error)
}

func NewService(contents content.Service, settings config.Stack) Service {
	size := settings.Size
	if size < pairSize {
		size = pairSize
	}
	return &impl{contents: contents, size: size}
}

const pairSize = 2

type impl struct {
	contents content.Service
	size     uint
}

func (s *impl) Pair(ctx context.Context, voterId user.Id) ([]content.Entry, error) {
	sampled, err := s.contents.Sample(ctx, voterId, s.size)
	if err != nil {
		return nil, err
	}
	if len(sampled) < pairSize {
		return nil, nil
	}
	return sampled[:pairSize], nil
}
