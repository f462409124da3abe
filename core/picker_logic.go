package core

import (
	"cmp"
	"slices"
	"strings"
)

type PickerItem struct {
	ID     string
	Label  string
	Search string
}

type PickerAction int

const (
	PickerActionNone PickerAction = iota
	PickerActionMoved
	PickerActionSelected
	PickerActionCancelled
)

type PickerResult struct {
	Action PickerAction
	Item   PickerItem
}

// Picker is a single-select list narrowed by a typed query. Items match when
// the query characters appear in order; better matches sort first.
type Picker struct {
	items   []PickerItem
	visible []PickerItem
	query   string
	cursor  int
}

func NewPicker(items []PickerItem) *Picker {
	p := &Picker{items: slices.Clone(items)}
	p.refilter()
	return p
}

func (p *Picker) Query() string       { return p.query }
func (p *Picker) Cursor() int         { return p.cursor }
func (p *Picker) Items() []PickerItem { return slices.Clone(p.visible) }
func (p *Picker) CursorUp() bool      { return p.moveTo(p.cursor - 1) }
func (p *Picker) CursorDown() bool    { return p.moveTo(p.cursor + 1) }

func (p *Picker) SetQuery(q string) {
	p.query = q
	p.refilter()
}

func (p *Picker) moveTo(i int) bool {
	if i < 0 || i >= len(p.visible) || i == p.cursor {
		return false
	}
	p.cursor = i
	return true
}

func (p *Picker) CurrentItem() (PickerItem, bool) {
	if p.cursor >= len(p.visible) {
		return PickerItem{}, false
	}
	return p.visible[p.cursor], true
}

func (p *Picker) HandleKey(keyName string) PickerResult {
	switch keyName {
	case "k", "up":
		if p.CursorUp() {
			return PickerResult{Action: PickerActionMoved}
		}
	case "j", "down":
		if p.CursorDown() {
			return PickerResult{Action: PickerActionMoved}
		}
	case "enter":
		if item, ok := p.CurrentItem(); ok {
			return PickerResult{Action: PickerActionSelected, Item: item}
		}
	case "esc":
		return PickerResult{Action: PickerActionCancelled}
	case "backspace":
		if p.query != "" {
			p.SetQuery(p.query[:len(p.query)-1])
		}
	default:
		if len(keyName) == 1 && keyName[0] >= ' ' && keyName[0] <= '~' {
			p.SetQuery(p.query + keyName)
		}
	}
	return PickerResult{Action: PickerActionNone}
}

func (p *Picker) refilter() {
	type ranked struct {
		item  PickerItem
		score int
	}
	q := strings.TrimSpace(p.query)
	hits := make([]ranked, 0, len(p.items))
	for _, item := range p.items {
		haystack := cmp.Or(strings.TrimSpace(item.Search), item.Label)
		if ok, score := fuzzyMatchScore(haystack, q); ok {
			hits = append(hits, ranked{item, score})
		}
	}
	slices.SortStableFunc(hits, func(a, b ranked) int { return cmp.Compare(b.score, a.score) })
	p.visible = p.visible[:0]
	for _, h := range hits {
		p.visible = append(p.visible, h.item)
	}
	p.cursor = min(p.cursor, max(len(p.visible)-1, 0))
}

// fuzzyMatchScore reports whether query's characters occur in label in order.
// A match at the start and each adjacent pair add to the score; an exact
// match scores highest.
func fuzzyMatchScore(label, query string) (bool, int) {
	if query == "" {
		return true, 0
	}
	label, query = strings.ToLower(label), strings.ToLower(query)
	score, last := len(query), -1
	for i := 0; i < len(query); i++ {
		j := strings.IndexByte(label[last+1:], query[i])
		if j < 0 {
			return false, 0
		}
		pos := last + 1 + j
		switch {
		case i == 0 && pos == 0:
			score += 10
		case i > 0 && pos == last+1:
			score += 3
		}
		last = pos
	}
	if strings.TrimSpace(label) == strings.TrimSpace(query) {
		score += 20
	}
	return true, score
}
