package director

import (
	"github.com/solarlune/resolv"
)

const (
	// Space extent around the player; contact needs radii overlap so anything beyond is irrelevant
	contactSpaceSize = 512
	contactCellSize  = 32
)

var (
	tagMonster = resolv.NewTag("monster")
	tagPlayer  = resolv.NewTag("player")
)

// contactSpace is a player-centred broadphase; shapes are re-placed relative to the player each query
// Monsters far from the player fall outside every cell and never intersect
type contactSpace struct {
	space  *resolv.Space
	player resolv.IShape
	radius float64
	owners map[resolv.IShape]*Monster
}

func newContactSpace(playerRadius float64) *contactSpace {
	c := &contactSpace{
		space:  resolv.NewSpace(contactSpaceSize, contactSpaceSize, contactCellSize, contactCellSize),
		radius: playerRadius,
		owners: make(map[resolv.IShape]*Monster),
	}
	c.player = resolv.NewCircle(contactSpaceSize/2, contactSpaceSize/2, playerRadius)
	c.player.Tags().Set(tagPlayer)
	c.space.Add(c.player)
	return c
}

func (c *contactSpace) add(m *Monster) {
	sh := resolv.NewCircle(0, 0, m.radius)
	sh.Tags().Set(tagMonster)
	m.shape = sh
	c.owners[sh] = m
	c.space.Add(sh)
}

// reshape rebuilds the monster's circle after a radius change
func (c *contactSpace) reshape(m *Monster) {
	c.remove(m)
	c.add(m)
}

func (c *contactSpace) remove(m *Monster) {
	if m.shape == nil {
		return
	}
	c.space.Remove(m.shape)
	delete(c.owners, m.shape)
	m.shape = nil
}

func (c *contactSpace) clear() {
	for sh, m := range c.owners {
		c.space.Remove(sh)
		m.shape = nil
	}
	clear(c.owners)
}

// sync moves every monster shape into the player-relative frame
// World is y-up while the space is y-down, so altitude differences flip sign
func (c *contactSpace) sync(px, py float64, monsters []*Monster) {
	half := float64(contactSpaceSize) / 2
	for _, m := range monsters {
		if m.shape == nil {
			continue
		}
		m.shape.SetPosition(half+(m.body.X-px), half-(m.body.Y-py))
	}
}

// touching returns the monsters whose body overlaps the player, edge contact included
// Cells only narrow the candidates; overlap is the centre distance against the summed radii
func (c *contactSpace) touching() []*Monster {
	var hits []*Monster
	c.player.SelectTouchingCells(1).FilterShapes().ByTags(tagMonster).ForEach(func(sh resolv.IShape) bool {
		m, ok := c.owners[sh]
		if !ok {
			return true
		}
		reach := c.radius + m.radius
		if sh.DistanceSquaredTo(c.player) <= reach*reach {
			hits = append(hits, m)
		}
		return true
	})
	return hits
}
