package sim

import (
	"errors"
	"io"
	"time"

	"github.com/vovakirdan/cosmic-heat/internal/core"
)

// InputSource produces the input snapshot for each tick.
// quit asks the loop to stop once that tick has been simulated.
type InputSource interface {
	Next(tick uint64) (in Input, quit bool)
}

// Loop is a fixed-rate, single-threaded driver for an Engine.
// The terminal UI drives the engine with its own tick messages instead.
type Loop struct {
	Engine *Engine
	Input  InputSource

	// Drawer and Screen are optional. When both are set every live actor
	// is drawn once per tick.
	Drawer Drawer
	Screen *core.Screen

	// OnTick, when set, observes each tick after drawing.
	OnTick func(res StepResult)

	// TickRate is in ticks per second. Zero runs as fast as possible.
	TickRate int

	// Closers are released when the loop ends, after the engine's own
	// collaborators, the input source and the drawer.
	Closers []io.Closer
}

// Run steps the engine until the input source asks to quit. The quitting
// tick is completed before resources are released.
func (l *Loop) Run() error {
	var ticker *time.Ticker
	if l.TickRate > 0 {
		ticker = time.NewTicker(time.Second / time.Duration(l.TickRate))
		defer ticker.Stop()
	}

	for {
		if ticker != nil {
			<-ticker.C
		}

		in, quit := l.Input.Next(l.Engine.State().Tick)
		res := l.Engine.Step(in)

		if l.Drawer != nil && l.Screen != nil {
			l.Screen.Clear()
			l.Engine.State().EachActor(func(a Actor) {
				l.Drawer.Draw(a, l.Screen)
			})
		}
		if l.OnTick != nil {
			l.OnTick(res)
		}

		if quit {
			break
		}
	}

	return l.release()
}

func (l *Loop) release() error {
	errs := []error{l.Engine.Close()}
	for _, v := range []any{l.Input, l.Drawer} {
		if c, ok := v.(io.Closer); ok {
			errs = append(errs, c.Close())
		}
	}
	for _, c := range l.Closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}
