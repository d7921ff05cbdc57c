package game

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/star-catcher/internal/config"
	"github.com/vovakirdan/star-catcher/internal/entity"
)

// Spawner releases batches of stars on a frame counter driven by the
// difficulty tier and multiplier.
type Spawner struct {
	cfg         *config.Config
	difficulty  *config.DifficultyManager
	rng         *rand.Rand
	theme       Theme
	accumulator int
}

// NewSpawner creates a spawner.
func NewSpawner(cfg *config.Config, diff *config.DifficultyManager, rng *rand.Rand, theme Theme) *Spawner {
	return &Spawner{cfg: cfg, difficulty: diff, rng: rng, theme: theme}
}

// Reset zeroes the frame counter.
func (s *Spawner) Reset() {
	s.accumulator = 0
}

// Accumulator returns the frames counted since the last batch.
func (s *Spawner) Accumulator() int {
	return s.accumulator
}

// Tick counts one frame and spawns a batch when the tier interval is
// reached. It returns the number of entities added.
func (s *Spawner) Tick(m *entity.Manager[entity.Entity]) int {
	s.accumulator++
	if s.accumulator < s.difficulty.SpawnInterval() {
		return 0
	}
	s.accumulator = 0
	return s.SpawnBatch(m)
}

// SpawnBatch adds one batch. With the configured chance one star of the
// batch is replaced by a currency token.
func (s *Spawner) SpawnBatch(m *entity.Manager[entity.Entity]) int {
	n := s.difficulty.BatchSize()
	coin := s.rng.Float64() < s.cfg.Currency.Chance
	for i := range n {
		if coin && i == 0 {
			m.Add(s.newToken())
			continue
		}
		m.Add(s.newCollectible())
	}
	return n
}

func (s *Spawner) newCollectible() *entity.Collectible {
	c := s.cfg.Collectible
	z := s.uniform(c.MinDepth, c.MaxDepth)
	return &entity.Collectible{
		X:          s.spawnX(),
		Y:          s.uniform(c.SpawnMinY, c.SpawnMaxY),
		Z:          z,
		Speed:      s.uniform(c.MinSpeed, c.MaxSpeed),
		Size:       c.BaseSize + c.DepthSize*z,
		Points:     entity.DepthPoints(c.BasePoints, c.DepthPoints, z),
		BlinkSpeed: s.uniform(c.MinBlinkSpeed, c.MaxBlinkSpeed),
		Phase:      s.uniform(0, 2*math.Pi),
		Color:      s.theme.StarColor,
	}
}

func (s *Spawner) newToken() *entity.CurrencyToken {
	c := s.cfg.Currency
	return &entity.CurrencyToken{
		X:      s.spawnX(),
		Y:      s.uniform(s.cfg.Collectible.SpawnMinY, s.cfg.Collectible.SpawnMaxY),
		Speed:  c.FallSpeed,
		Size:   c.Size,
		Reward: c.Reward,
		Color:  s.theme.CoinColor,
	}
}

func (s *Spawner) spawnX() float64 {
	m := s.cfg.Collectible.SpawnMargin
	return s.uniform(m, s.cfg.Playfield.Width-m)
}

func (s *Spawner) uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}
