package rhythm

// VolumeSetter is the part of an audio track the gate drives.
type VolumeSetter interface {
	SetVolume(v float64)
}

// Gate keeps a track audible for a short window after each catch and mutes
// it otherwise.
type Gate struct {
	track     VolumeSetter
	window    float64
	muted     float64
	remaining float64
}

// NewGate creates a closed gate. The track is not touched until Open or Close.
func NewGate(track VolumeSetter, window, muted float64) *Gate {
	return &Gate{track: track, window: window, muted: muted}
}

// Open raises the track to full volume and restarts the window.
func (g *Gate) Open() {
	g.remaining = g.window
	g.track.SetVolume(1)
}

// Close mutes the track immediately.
func (g *Gate) Close() {
	g.remaining = 0
	g.track.SetVolume(g.muted)
}

// Update counts down the window and mutes the track when it runs out.
func (g *Gate) Update(dt float64) {
	if g.remaining <= 0 {
		return
	}
	g.remaining -= dt
	if g.remaining <= 0 {
		g.Close()
	}
}

// IsOpen reports whether the window is running.
func (g *Gate) IsOpen() bool {
	return g.remaining > 0
}

// Remaining returns the seconds left in the window.
func (g *Gate) Remaining() float64 {
	return max(g.remaining, 0)
}
