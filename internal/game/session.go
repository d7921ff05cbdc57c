package game

// EndReason explains why a session became terminal.
type EndReason int

const (
	ReasonNone       EndReason = iota
	ReasonMissLimit            // Free play: too many stars missed
	ReasonNoteMissed           // Rhythm: one note reached the bottom
	ReasonTrackEnded           // Rhythm: the song finished
)

// String returns a short description for the game over screen.
func (r EndReason) String() string {
	switch r {
	case ReasonMissLimit:
		return "Too many stars missed"
	case ReasonNoteMissed:
		return "A note slipped by"
	case ReasonTrackEnded:
		return "Song complete"
	default:
		return ""
	}
}

// Session holds the scoring state of one run. The zero value with MaxMissed
// set is ready to use.
type Session struct {
	Score     int
	Combo     int
	Missed    int
	MaxMissed int
	Caught    int
	Earned    int // Currency picked up during the run
	Terminal  bool
	Reason    EndReason
}

// Catch adds points plus the current combo, then grows the combo.
func (s *Session) Catch(points int) {
	s.Score += points + s.Combo
	s.Combo++
	s.Caught++
}

// Miss counts a missed star, applies the penalty with the score clamped at
// zero and resets the combo. Reaching MaxMissed ends the session.
func (s *Session) Miss(penalty int) {
	s.Missed++
	s.Score = max(0, s.Score-penalty)
	s.Combo = 0
	if s.MaxMissed > 0 && s.Missed >= s.MaxMissed {
		s.End(ReasonMissLimit)
	}
}

// End marks the session terminal. The first reason wins.
func (s *Session) End(r EndReason) {
	if s.Terminal {
		return
	}
	s.Terminal = true
	s.Reason = r
}
