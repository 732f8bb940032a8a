package engine

type timer struct {
	interval float64
	elapsed  float64
	repeats  bool
	fn       func()
	valid    bool
}

func (t *timer) Invalidate() { t.valid = false }
func (t *timer) Valid() bool { return t.valid }

// tick advances the timer and fires it as many times as dt covers.
func (t *timer) tick(dt float64) {
	if !t.valid {
		return
	}
	t.elapsed += dt
	for t.valid && t.elapsed >= t.interval {
		t.elapsed -= t.interval
		if !t.repeats {
			t.valid = false
		}
		t.fn()
	}
}
