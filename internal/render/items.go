package render

// Kind is the closed set of panel item kinds.
type Kind int

const (
	KindUnknown Kind = iota
	KindTaskbar
	KindClock
	KindSpacer
)

func (k Kind) String() string {
	switch k {
	case KindTaskbar:
		return "taskbar"
	case KindClock:
		return "clock"
	case KindSpacer:
		return "spacer"
	default:
		return "unknown"
	}
}

// Item is one entry of the layout-code string.
type Item struct {
	Kind Kind
	Code rune
}

// ParseItems maps each code to an item: T taskbar, C clock, S spacer.
// Unknown codes are kept so the engine can report them.
func ParseItems(codes string) []Item {
	items := make([]Item, 0, len(codes))
	for _, code := range codes {
		item := Item{Code: code}
		switch code {
		case 'T':
			item.Kind = KindTaskbar
		case 'C':
			item.Kind = KindClock
		case 'S':
			item.Kind = KindSpacer
		}
		items = append(items, item)
	}
	return items
}

// HasKind reports whether any item is of kind k.
func HasKind(items []Item, k Kind) bool {
	for _, item := range items {
		if item.Kind == k {
			return true
		}
	}
	return false
}
