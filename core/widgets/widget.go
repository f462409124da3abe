package widgets

// Widget renders itself into at most width columns and height rows.
type Widget interface {
	Render(width, height int) string
}

// Func adapts a plain render function to Widget.
type Func func(width, height int) string

func (f Func) Render(width, height int) string {
	if f == nil {
		return ""
	}
	return f(width, height)
}
