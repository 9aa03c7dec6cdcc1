package view

// Pager owns the current page for one list screen. Whenever the
// filtered count changes the page is re-clamped into range as a side
// effect, so a filter that shrinks the list can never leave the pager
// pointing past the end.
type Pager struct {
	pageSize int
	current  int
	count    int
}

func NewPager(pageSize int) *Pager {
	return &Pager{pageSize: pageSize, current: 1}
}

// SetCount records the filtered item count and clamps the current page.
func (p *Pager) SetCount(n int) {
	if n < 0 {
		n = 0
	}
	p.count = n
	p.current = ClampPage(p.current, p.count, p.pageSize)
}

// SetPage moves to the requested page, clamped into range.
func (p *Pager) SetPage(page int) {
	p.current = ClampPage(page, p.count, p.pageSize)
}

func (p *Pager) Next() { p.SetPage(p.current + 1) }
func (p *Pager) Prev() { p.SetPage(p.current - 1) }

func (p *Pager) Current() int  { return p.current }
func (p *Pager) PageSize() int { return p.pageSize }
func (p *Pager) Total() int    { return TotalPages(p.count, p.pageSize) }
