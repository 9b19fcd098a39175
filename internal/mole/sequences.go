package mole

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/whackamole/internal/core"
)

// ShowSplash displays the power-on screen and holds it.
func (e *Engine) ShowSplash() {
	e.showBanner("FINN'S", "GAME", "PAD")
	e.clock.Sleep(BannerHold)
}

// ShowNewGame invites the player to press a key. It does not wait.
func (e *Engine) ShowNewGame() {
	e.showBanner("WHACKAMOLE", "Hit a key!")
	e.writeFrame(core.SolidFrame(core.Black))
}

// PlayStartSequence shows the go banner followed by a red, yellow, green countdown.
func (e *Engine) PlayStartSequence() {
	e.showBanner("WHACKAMOLE", "GO GO GO")
	e.clock.Sleep(BannerHold)

	e.writeFrame(core.SolidFrame(core.Red))
	e.clock.Sleep(CountdownRed)
	e.writeFrame(core.SolidFrame(core.Yellow))
	e.clock.Sleep(CountdownYellow)
	e.writeFrame(core.SolidFrame(core.Green))
	e.clock.Sleep(CountdownGreen)
}

// PlayEndSequence shows the final score and flashes the grid red.
func (e *Engine) PlayEndSequence() {
	e.showBanner("GAME OVER", fmt.Sprintf("Score: %d", e.score))
	e.beep(core.ToneGameOver)

	for range GameOverFlashes {
		e.writeFrame(core.SolidFrame(core.Red))
		e.clock.Sleep(GameOverFlash)
		e.writeFrame(core.SolidFrame(core.Black))
		e.clock.Sleep(GameOverFlash)
	}
}

// drawBanner refreshes the in-game status screen when round, score or lives changed.
func (e *Engine) drawBanner() {
	current := banner{round: e.round, score: e.score, lives: e.lives}
	if e.shownBanner != nil && *e.shownBanner == current {
		return
	}
	e.showBanner(
		fmt.Sprintf("ROUND %d", current.round),
		fmt.Sprintf("Score: %d", current.score),
		fmt.Sprintf("Lives: %d", current.lives),
	)
	e.shownBanner = &current
}

// showBanner replaces the display content. Display failures are logged and ignored.
func (e *Engine) showBanner(lines ...string) {
	if err := e.display.Clear(); err != nil {
		e.logger.Debug("display clear failed", "error", err)
		return
	}
	if err := e.display.SetCursor(0, 0); err != nil {
		e.logger.Debug("display cursor failed", "error", err)
		return
	}
	if err := e.display.WriteText(strings.Join(lines, "\n")); err != nil {
		e.logger.Debug("display write failed", "error", err)
	}
}
