package audio

import "testing"

func TestCueTableComplete(t *testing.T) {
	for _, c := range []Cue{CueSpawn, CueSelect, CueDelete, CueReset} {
		tone, ok := cueTones[c]
		if !ok {
			t.Errorf("cue %d has no tone", c)
			continue
		}
		if tone.freq <= 0 || tone.duration <= 0 {
			t.Errorf("cue %d has invalid tone: %+v", c, tone)
		}
	}
}

func TestSilentPlayerIsNoOp(t *testing.T) {
	// A player whose speaker never initialized must absorb calls safely,
	// as must a nil player
	p := &Player{}
	p.Play(CueSpawn)
	p.Close()

	var nilPlayer *Player
	nilPlayer.Play(CueDelete)
	nilPlayer.Close()
}
