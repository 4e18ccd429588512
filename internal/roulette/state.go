package roulette

// NoIndex marks State.CurrentIndex as unset.
const NoIndex = -1

// State is the observable view of an Animator.
type State struct {
	Animating    bool
	CurrentIndex int
	Selected     *Item
}

// Highlight is the display class of a row.
type Highlight int

const (
	HighlightNone Highlight = iota
	HighlightCycling
	HighlightSelected
)

func (h Highlight) String() string {
	switch h {
	case HighlightCycling:
		return "cycling"
	case HighlightSelected:
		return "selected"
	default:
		return "none"
	}
}

// Highlight returns the class of the row at index for an item list where
// that row holds item.
func (s State) Highlight(index int, item Item) Highlight {
	if s.Animating {
		if index == s.CurrentIndex {
			return HighlightCycling
		}
		return HighlightNone
	}
	if s.Selected != nil && s.Selected.ID == item.ID {
		return HighlightSelected
	}
	return HighlightNone
}

// ShowResult reports whether the result panel is visible.
func (s State) ShowResult() bool {
	return !s.Animating && s.Selected != nil
}

// ButtonEnabled reports whether a trigger would start a run.
func (s State) ButtonEnabled() bool {
	return !s.Animating
}

// ButtonLabel is the trigger button text.
func (s State) ButtonLabel() string {
	if s.Animating {
		return "selecting..."
	}
	return "start!"
}
