package sim

// checkRound ends the round when health is exhausted. The defeat screen is
// requested first, then the whole round state is swapped for a fresh one.
func (e *Engine) checkRound() (finalScore int, lost bool) {
	s := e.state
	if !s.Economy.Depleted() {
		return 0, false
	}

	finalScore = s.Score
	e.emit(Event{Kind: EventRoundLost, Score: finalScore})
	e.logger.Info("round lost", "score", finalScore, "tick", s.Tick, "high", e.highScore)

	e.presenter.ShowDefeat(finalScore)

	e.state = newState(e.cfg, e.scaler)
	e.round++
	return finalScore, true
}

// Restart abandons the current round without a defeat presentation.
func (e *Engine) Restart() {
	e.state = newState(e.cfg, e.scaler)
	e.paused = false
}
