package service

import "time"

// idGenerator hands out millisecond-timestamp ids. Two calls within the
// same millisecond, or a clock that went backwards, still yield
// increasing ids.
type idGenerator struct {
	clock func() time.Time
	last  int64
}

// observe records an id already in use so next never reissues it.
func (g *idGenerator) observe(id int64) {
	if id > g.last {
		g.last = id
	}
}

func (g *idGenerator) next() int64 {
	id := g.clock().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}
