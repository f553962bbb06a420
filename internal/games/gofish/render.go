package gofish

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/go-fish/internal/assets"
	"github.com/vovakirdan/go-fish/internal/audio"
	"github.com/vovakirdan/go-fish/internal/core"
	"github.com/vovakirdan/go-fish/internal/minigame"
	"github.com/vovakirdan/go-fish/internal/session"
)

// Visual constants
const (
	trackCols  = 6 // Inner width of the fishing track
	trackTop   = 2
	trackLeft  = 4
	minTrackH  = 8
	fishGlyph  = "><>"
	barChar    = '▓'
	waterChar  = '░'
	progressCh = '█'
)

// Render draws the current phase to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	switch g.frame.Phase {
	case session.PhaseMenu:
		g.renderMenu(dst)
	case session.PhaseWaitingForBite:
		g.renderWaiting(dst)
	case session.PhaseFishing:
		g.renderFishing(dst)
	case session.PhaseCutscene:
		g.renderCutscene(dst)
	case session.PhaseWon:
		g.renderWon(dst)
	case session.PhaseLost:
		g.renderLost(dst)
	}

	g.renderHUD(dst)
	if g.showAudio {
		g.renderAudio(dst)
	}
}

// renderHUD draws the title and high score on the top row.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColored(1, 0, "GO FISH", core.ColorBrightCyan)

	high := fmt.Sprintf("High score: %d", g.frame.Highscore)
	color := core.ColorWhite
	if g.frame.NewHighscore || (g.attempt != nil && g.attempt.NewHighscore) {
		color = core.ColorBrightYellow
	}
	dst.DrawTextColored(dst.Width()-len(high)-1, 0, high, color)

	if g.frame.FastCatch {
		dst.DrawTextCentered(0, "FAST CATCH", core.ColorOrange)
	}
}

func (g *Game) renderMenu(dst *core.Screen) {
	title := g.lib.Sprite(assets.KeyMenuTitle)
	y := drawSprite(dst, title, 2)

	y += 2
	dst.DrawTextCentered(y, "Enter / Space / click: start fishing", core.ColorWhite)

	cheat := "OFF"
	color := core.ColorGray
	if g.frame.FastCatch {
		cheat = "ON"
		color = core.ColorOrange
	}
	dst.DrawTextCentered(y+2, "C: fast catch ["+cheat+"]", color)
	dst.DrawTextCentered(y+3, "Tab: catch journal   Q: quit", core.ColorGray)
}

func (g *Game) renderWaiting(dst *core.Screen) {
	if g.frame.BiteShown {
		y := drawSprite(dst, g.lib.Sprite(assets.KeyBite), 3)
		dst.DrawTextCentered(y+2, "A bite! Strike now!", core.ColorBrightYellow)
		dst.DrawTextCentered(y+3, "Enter / Space / click", core.ColorWhite)
		return
	}

	y := drawSprite(dst, g.lib.Sprite(assets.KeyWaiting), 3)
	dst.DrawTextCentered(y+2, "Waiting for a bite...", core.ColorCyan)
}

// renderFishing draws the track, catch bar, fish and progress gauge. The
// logical track is scaled onto the rows left over by the HUD.
func (g *Game) renderFishing(dst *core.Screen) {
	ch := g.ctrl.Challenge()
	if ch == nil {
		return
	}
	res := g.frame.Challenge
	track := ch.Track()

	rows := max(dst.Height()-trackTop-3, minTrackH)
	inner := rows - 2
	x := trackLeft + g.shakeX

	rowOf := func(y int) int {
		return trackTop + 1 + (y-track.Y)*inner/track.H
	}

	dst.DrawBox(core.NewRect(x, trackTop, trackCols+2, rows), core.ColorCyan)
	dst.DrawRect(core.NewRect(x+1, trackTop+1, trackCols, inner), waterChar, core.ColorBlue)

	bar := ch.BarRect()
	top, bottom := rowOf(bar.Y), rowOf(bar.Bottom())
	if bottom <= top {
		bottom = top + 1
	}
	barColor := core.ColorGray
	if res.Colliding {
		barColor = core.ColorGreen
	}
	dst.DrawRect(core.NewRect(x+1, top, trackCols, bottom-top), barChar, barColor)

	f := ch.FishRect()
	fishRow := core.Clamp(rowOf(f.Y+f.H/2), trackTop+1, trackTop+inner)
	dst.DrawTextColored(x+1+(trackCols-len(fishGlyph))/2, fishRow, fishGlyph, core.ColorYellow)

	// Progress gauge fills from the bottom
	px := x + trackCols + 4
	dst.DrawBox(core.NewRect(px, trackTop, 3, rows), core.ColorGray)
	filled := int(res.Progress/minigame.MaxProgress*float64(inner) + 0.5)
	dst.DrawRect(core.NewRect(px+1, trackTop+1+inner-filled, 1, filled), progressCh, moodColor(res.Phase))

	g.renderFishingPanel(dst, px+6, res)
}

// renderFishingPanel draws the text beside the track.
func (g *Game) renderFishingPanel(dst *core.Screen, x int, res minigame.TickResult) {
	y := trackTop + 1
	dst.DrawTextColored(x, y, "FISH ON!", core.ColorBrightYellow)
	dst.DrawTextColored(x, y+2, fmt.Sprintf("Progress: %3.0f%%", res.Progress), moodColor(res.Phase))

	status := "Line in the water. Find the fish!"
	switch res.Phase {
	case minigame.PhaseCatching:
		status = "Reeling in..."
	case minigame.PhaseLosing:
		status = "It's slipping away!"
	}
	dst.DrawText(x, y+3, status)

	dst.DrawTextColored(x, y+5, "Hold Space / W / Up / mouse to reel", core.ColorGray)
	dst.DrawTextColored(x, y+6, "R: restart   Q: quit", core.ColorGray)
	if g.frame.FastCatch {
		dst.DrawTextColored(x, y+8, fmt.Sprintf("Fast catch x%.0f", g.cfg.Cheats.FastCatchMultiplier), core.ColorOrange)
	}
}

// moodColor colors the progress gauge: neutral before the first hit, high
// while catching, low while losing.
func moodColor(p minigame.Phase) core.Color {
	switch p {
	case minigame.PhaseCatching:
		return core.ColorGreen
	case minigame.PhaseLosing, minigame.PhaseLost:
		return core.ColorRed
	case minigame.PhaseWon, minigame.PhaseCutsceneTriggered:
		return core.ColorBrightYellow
	default:
		return core.ColorYellow
	}
}

func (g *Game) renderCutscene(dst *core.Screen) {
	cs := g.lib.Cutscene()
	if cs == nil {
		return
	}
	frame := cs.Frame(g.frame.CutsceneFrame)
	top := max((dst.Height()-len(frame.Lines))/2, 2)
	drawSprite(dst, assets.Sprite{Lines: frame.Lines, Color: core.ColorBrightCyan}, top)
}

func (g *Game) renderWon(dst *core.Screen) {
	fish := g.frame.Fish
	score := g.frame.LastScore
	newHigh := false
	if g.attempt != nil {
		fish = g.attempt.Fish
		score = g.attempt.Score
		newHigh = g.attempt.NewHighscore
	}

	dst.DrawTextCentered(2, "You caught a "+fish.Name+"!", core.ColorBrightYellow)
	y := drawSprite(dst, g.lib.Sprite(fish.AssetKey), 4)

	y++
	dst.DrawTextCentered(y, fmt.Sprintf("Weight: %.2f lbs   Size: %.1f in   %s", fish.Weight, fish.Size, fish.Tier()), core.ColorWhite)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Score: %d", score), core.ColorGreen)
	if newHigh {
		dst.DrawTextCentered(y+2, "NEW HIGH SCORE!", core.ColorOrange)
	}
	dst.DrawTextCentered(y+4, "Press any key to continue", core.ColorGray)
}

func (g *Game) renderLost(dst *core.Screen) {
	name := "fish"
	if g.frame.HasChallenge {
		name = g.frame.Fish.Name
	}
	h := dst.Height()
	dst.DrawTextCentered(h/2-1, "The "+name+" got away...", core.ColorRed)
	dst.DrawTextCentered(h/2+1, "Enter / Space: try again   B / Esc: back to menu", core.ColorWhite)
}

// renderAudio draws the music track, looping sounds and the latest cue on
// the bottom row.
func (g *Game) renderAudio(dst *core.Screen) {
	track := string(g.mixer.Track())
	if track == "" {
		track = "-"
	}
	parts := []string{"music: " + track}

	if looping := g.mixer.Looping(); len(looping) > 0 {
		names := make([]string, len(looping))
		for i, s := range looping {
			names[i] = string(s)
		}
		parts = append(parts, "loop: "+strings.Join(names, ","))
	}

	if recent := g.mixer.Recent(); len(recent) > 0 {
		last := recent[len(recent)-1]
		what := string(last.Sound)
		if last.Kind == audio.CueMusic {
			what = string(last.Track)
		}
		parts = append(parts, fmt.Sprintf("last: %s %s", last.Kind, what))
	}

	dst.DrawTextColored(1, dst.Height()-1, "♪ "+strings.Join(parts, "  "), core.ColorMagenta)
}

// drawSprite draws s horizontally centered starting at row top and returns
// the row below it.
func drawSprite(dst *core.Screen, s assets.Sprite, top int) int {
	x := (dst.Width() - s.Width()) / 2
	for i, line := range s.Lines {
		dst.DrawTextColored(x, top+i, line, s.Color)
	}
	return top + s.Height()
}
