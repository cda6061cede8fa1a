package bowling

// target is the frame a throw goes into, resolved once per throw:
// either a regular frame by index or the transient bonus frame.
type target interface {
	frame() *Frame
	bonus() bool
}

type regularTarget struct {
	index int
	f     *Frame
}

func (t regularTarget) frame() *Frame { return t.f }
func (t regularTarget) bonus() bool   { return false }

type bonusTarget struct {
	f *Frame
}

func (t bonusTarget) frame() *Frame { return t.f }
func (t bonusTarget) bonus() bool   { return true }
