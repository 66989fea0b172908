package hexmap

import (
	"container/heap"
	"errors"
	"fmt"
	"image"
	"math"

	"hexmancer/pkg/utils"
)

// ErrNoRoute is returned when no chain of passable cells joins two coordinates.
var ErrNoRoute = errors.New("hexmap: no route")

// cube converts an even-row staggered coordinate to cube axes.
func (c Coordinate) cube() (q, r, s int) {
	q = c.X - (c.Y+(c.Y&1))/2
	r = c.Y
	return q, r, -q - r
}

// Distance is the number of single-hex moves between c and o.
func (c Coordinate) Distance(o Coordinate) int {
	aq, ar, as := c.cube()
	bq, br, bs := o.cube()
	return utils.Max3(utils.Abs(aq-bq), utils.Abs(ar-br), utils.Abs(as-bs))
}

type routeNode struct {
	at       Coordinate
	cost     int
	priority int
	parent   *routeNode
	via      Direction
}

type routeQueue []*routeNode

func (q routeQueue) Len() int           { return len(q) }
func (q routeQueue) Less(i, j int) bool { return q[i].priority < q[j].priority }
func (q routeQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *routeQueue) Push(x any)        { *q = append(*q, x.(*routeNode)) }
func (q *routeQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// Route finds a shortest sequence of directions leading from start to goal
// through cells accepted by passable. A nil passable accepts every cell,
// which is only safe because the distance heuristic is exact on an open grid.
func Route(start, goal Coordinate, passable func(Coordinate) bool) ([]Direction, error) {
	if passable != nil && !passable(goal) {
		return nil, fmt.Errorf("%w: goal %v is not passable", ErrNoRoute, goal)
	}
	pq := &routeQueue{}
	heap.Push(pq, &routeNode{at: start, priority: start.Distance(goal)})
	best := map[Coordinate]int{start: 0}

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(*routeNode)
		if cur.at == goal {
			return cur.path(), nil
		}
		if cur.cost > best[cur.at] {
			continue
		}
		for _, d := range Directions {
			next := d.Neighbor(cur.at)
			if passable != nil && !passable(next) {
				continue
			}
			cost := cur.cost + 1
			if c, seen := best[next]; seen && c <= cost {
				continue
			}
			best[next] = cost
			heap.Push(pq, &routeNode{
				at:       next,
				cost:     cost,
				priority: cost + next.Distance(goal),
				parent:   cur,
				via:      d,
			})
		}
	}
	return nil, fmt.Errorf("%w: %v to %v", ErrNoRoute, start, goal)
}

func (n *routeNode) path() []Direction {
	var out []Direction
	for ; n.parent != nil; n = n.parent {
		out = append(out, n.via)
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// OnBackdrop reports whether the centre of g falls inside the backdrop image.
func (hm *HexMap) OnBackdrop(g Coordinate) bool {
	p := hm.layout.GridToPixel(g)
	return image.Pt(int(math.Floor(p.X)), int(math.Floor(p.Y))).In(hm.image.Bounds())
}

// Walk moves step by step to goal along a shortest route that stays on the
// backdrop. Every step is recorded in history, so each one can be undone.
func (hm *HexMap) Walk(goal Coordinate) (int, error) {
	steps, err := Route(hm.locationGrid, goal, hm.OnBackdrop)
	if err != nil {
		return 0, err
	}
	for i, d := range steps {
		if err := hm.Move(d); err != nil {
			return i, err
		}
	}
	return len(steps), nil
}
