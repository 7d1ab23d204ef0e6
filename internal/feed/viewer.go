package feed

import "github.com/szarydziennik/grayjournal/internal/model"

// Viewer is the lightbox state machine: either closed, or open on one date
// group at an index into the group's combined image sequence. Next and Prev
// wrap modulo the image count; every transition on a closed viewer is a
// no-op. The type is deliberately independent of any input binding — arrow
// keys, pointer controls and tests all drive the same transitions.
type Viewer struct {
	group DateGroup
	index int
	open  bool
}

// Open positions the viewer on the group's combined sequence. It refuses
// empty groups and out-of-range indices and reports whether it opened.
func (v *Viewer) Open(group DateGroup, index int) bool {
	if len(group.Images) == 0 || index < 0 || index >= len(group.Images) {
		return false
	}

	v.group = group
	v.index = index
	v.open = true

	return true
}

func (v *Viewer) Next() {
	if !v.open {
		return
	}
	v.index = (v.index + 1) % len(v.group.Images)
}

func (v *Viewer) Prev() {
	if !v.open {
		return
	}
	v.index = (v.index - 1 + len(v.group.Images)) % len(v.group.Images)
}

func (v *Viewer) Close() {
	v.open = false
}

func (v *Viewer) IsOpen() bool {
	return v.open
}

func (v *Viewer) Index() int {
	return v.index
}

func (v *Viewer) Current() (model.NewsImage, bool) {
	if !v.open {
		return model.NewsImage{}, false
	}
	return v.group.Images[v.index], true
}
