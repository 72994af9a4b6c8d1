package input

// Intent is the player input for one frame, after keyboard and touch have
// been reconciled.
type Intent struct {
	Dir  int // -1 left, 0 none, 1 right
	Jump bool
	Wave bool
	Back bool
}

// Combine merges keyboard state with the touch classifier. Keyboard
// direction wins over touch; a queued tap jump is consumed here.
func Combine(kb *Keyboard, touch *TouchClassifier) Intent {
	var in Intent
	if kb != nil {
		switch {
		case kb.Held(ActionLeft):
			in.Dir = -1
		case kb.Held(ActionRight):
			in.Dir = 1
		}
		in.Jump = kb.JustPressed(ActionUp) || kb.JustPressed(ActionJump)
		in.Wave = kb.Held(ActionWave)
		in.Back = kb.JustPressed(ActionBack)
	}
	if touch != nil {
		if in.Dir == 0 {
			in.Dir = touch.Direction()
		}
		if touch.TakeJump() {
			in.Jump = true
		}
		in.Wave = in.Wave || touch.Waving()
	}
	return in
}
