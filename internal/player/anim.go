package player

type Anim int

const (
	AnimIdle Anim = iota
	AnimRun
	AnimJump
	AnimWave
)

func (a Anim) String() string {
	switch a {
	case AnimIdle:
		return "idle"
	case AnimRun:
		return "run"
	case AnimJump:
		return "jump"
	case AnimWave:
		return "wave"
	}
	return "unknown"
}

// SelectAnim picks the animation for a frame.
// Priority: wave > airborne > moving > idle.
func SelectAnim(waving, airborne, moving bool) Anim {
	switch {
	case waving:
		return AnimWave
	case airborne:
		return AnimJump
	case moving:
		return AnimRun
	default:
		return AnimIdle
	}
}

// Sprite rows for each animation, facing right. Rows are mirrored for
// facing left.
var frames = map[Anim][][3]string{
	AnimIdle: {
		{" o ", "/|\\", "/ \\"},
	},
	AnimRun: {
		{" o ", "/|\\", "/ >"},
		{" o ", "/|\\", "< \\"},
	},
	AnimJump: {
		{"\\o/", " | ", "/ \\"},
	},
	AnimWave: {
		{" o/", "/| ", "/ \\"},
		{" o_", "/| ", "/ \\"},
	},
}

var mirror = map[rune]rune{
	'/': '\\', '\\': '/', '<': '>', '>': '<', '(': ')', ')': '(',
}

// Frame returns the sprite rows to draw for anim on the given tick.
func Frame(anim Anim, facing int, tick int) [3]string {
	set := frames[anim]
	if len(set) == 0 {
		set = frames[AnimIdle]
	}
	if tick < 0 {
		tick = -tick
	}
	f := set[(tick/4)%len(set)]
	if facing >= 0 {
		return f
	}
	var out [3]string
	for i, row := range f {
		r := []rune(row)
		for a, b := 0, len(r)-1; a < b; a, b = a+1, b-1 {
			r[a], r[b] = r[b], r[a]
		}
		for j, c := range r {
			if m, ok := mirror[c]; ok {
				r[j] = m
			}
		}
		out[i] = string(r)
	}
	return out
}
