package cosmic

type bannerKind int

const (
	bannerNone bannerKind = iota
	bannerDefeat
	bannerVictory
)

// banner is a timed full-screen message that freezes the simulation.
type banner struct {
	kind  bannerKind
	ticks int
	score int // Final score for the defeat banner
}

func (b *banner) active() bool {
	return b.kind != bannerNone && b.ticks > 0
}

func (b *banner) tick() {
	if b.ticks > 0 {
		b.ticks--
	}
	if b.ticks == 0 {
		b.kind = bannerNone
	}
}
