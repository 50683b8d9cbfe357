package domain

// RenderFormat selects how an annotated grid is written out.
type RenderFormat int

const (
	RenderNone RenderFormat = iota
	RenderText              // height:visible dump, one row per line
	RenderHTML              // scenic score heatmap page
)

func (f RenderFormat) String() string {
	switch f {
	case RenderText:
		return "text"
	case RenderHTML:
		return "html"
	default:
		return "none"
	}
}
