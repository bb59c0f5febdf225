package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	total := 0
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			if buf[j][0] < -1.0 || buf[j][0] > 1.0 {
				t.Fatalf("sample out of range: %f", buf[j][0])
			}
		}
		total += n
		if !ok {
			return total
		}
	}
	t.Fatal("streamer never finished")
	return total
}

func TestOscillatorDuration(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440, 0, 100*time.Millisecond, WaveSine, rate)
	got := drain(t, osc)
	want := rate.N(100 * time.Millisecond)
	if got != want {
		t.Errorf("streamed %d samples, want %d", got, want)
	}
}

func TestOscillatorSweepStaysInRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(880, -800, 200*time.Millisecond, WaveSquare, rate)
	drain(t, osc)
}

func TestEnvelopeShapesEdges(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 100 * time.Millisecond
	osc := NewOscillator(440, 0, duration, WaveSquare, rate)
	env := NewEnvelope(osc, duration, 10*time.Millisecond, 10*time.Millisecond, rate)

	buf := make([][2]float64, 8)
	n, ok := env.Stream(buf)
	if n != 8 || !ok {
		t.Fatalf("Stream = %d, %v", n, ok)
	}
	// A square wave has unit amplitude; during the attack the very first
	// samples must be scaled well below it.
	if v := buf[0][0]; v != 0 {
		t.Errorf("first sample should be silent, got %f", v)
	}
	if v := buf[7][0]; v >= 1.0 || v <= -1.0 {
		t.Errorf("attack should still be ramping at sample 7, got %f", v)
	}
}

func TestEffectConstructorsFinish(t *testing.T) {
	rate := beep.SampleRate(44100)
	effects := map[string]beep.Streamer{
		"shot":     ShotSound(rate),
		"kill":     KillSound(rate),
		"place":    PlaceSound(rate),
		"deny":     DenySound(rate),
		"leak":     LeakSound(rate),
		"gameover": GameOverSound(rate),
	}
	for name, s := range effects {
		if got := drain(t, s); got == 0 {
			t.Errorf("%s produced no samples", name)
		}
	}
}

func TestSoundManagerSafeWithoutSpeaker(t *testing.T) {
	sm := NewSoundManager(1.0, false)
	// Never initialized: Play and Cleanup must be no-ops, not panics.
	sm.Play(EffectShot)
	sm.Cleanup()
	sm.SetMuted(true)
	if !sm.Muted() {
		t.Error("mute flag not set")
	}
}
