package tile

// Fixtures shared by the tile tests.

const tile1Text = `
+-+-+7+-+
|  1   c|
+ +-+-+ +
|   |t  |
+-+ + +-+
|   |   |
+ +-+-+ +
|O|     |
+ +^+ + +
`

var tile1 = Tile{
	Cells: [4][4]Cell{
		{Empty, Warp(PawnGreen), Empty, Camera(Available)},
		{Empty, Empty, TimerFlip(Available), Empty},
		{Empty, Empty, Empty, Empty},
		{FinalExit(PawnOrange), Empty, Empty, Empty},
	},
	HorzWalls: [5][4]Wall{
		{Blocked, Blocked, Explore(PawnYellow), Blocked},
		{Open, Blocked, Blocked, Open},
		{Blocked, Open, Open, Blocked},
		{Open, Blocked, Blocked, Open},
		{Open, Entrance, Open, Open},
	},
	VertWalls: [4][5]Wall{
		{Blocked, Open, Open, Open, Blocked},
		{Blocked, Open, Blocked, Open, Blocked},
		{Blocked, Open, Blocked, Open, Blocked},
		{Blocked, Blocked, Open, Open, Blocked},
	},
}

const tile2Text = `
+-+-+6+-+
|t     4|
+-+ + +-+
8      3|
+-+ + +-+
|2    | 5
+-+ + +-+
|1    | |
+-+7+-+-+
`

var tile2 = Tile{
	Cells: [4][4]Cell{
		{TimerFlip(Available), Empty, Empty, Warp(PawnPurple)},
		{Empty, Empty, Empty, Warp(PawnYellow)},
		{Warp(PawnOrange), Empty, Empty, Empty},
		{Warp(PawnGreen), Empty, Empty, Empty},
	},
	HorzWalls: [5][4]Wall{
		{Blocked, Blocked, Explore(PawnOrange), Blocked},
		{Blocked, Open, Open, Blocked},
		{Blocked, Open, Open, Blocked},
		{Blocked, Open, Open, Blocked},
		{Blocked, Explore(PawnYellow), Blocked, Blocked},
	},
	VertWalls: [4][5]Wall{
		{Blocked, Open, Open, Open, Blocked},
		{Explore(PawnPurple), Open, Open, Open, Blocked},
		{Blocked, Open, Open, Blocked, Explore(PawnGreen)},
		{Blocked, Open, Open, Blocked, Blocked},
	},
}

const tile3Text = `
+-+-+6+-+
|t     4|
+-+ + +-+
8      3|
+-+ + +-+
|2    | 5
+-+ + +-+
|1    | |
+-+7+-+-+
E: 01-23, 00-33, 33-02
`

// withEscalators returns t with the escalators appended; it panics if
// they do not fit.
func withEscalators(t Tile, escalators ...Escalator) Tile {
	for _, e := range escalators {
		if err := t.AddEscalator(e); err != nil {
			panic(err)
		}
	}
	return t
}

func esc(x1, y1, x2, y2 int) Escalator {
	return Escalator{MustCoord(x1, y1), MustCoord(x2, y2)}
}

var tile3 = withEscalators(tile2, esc(0, 1, 2, 3), esc(0, 0, 3, 3), esc(3, 3, 0, 2))

// tile1A is tile2 with one escalator; every cell but (3,3) is reachable.
var tile1A = withEscalators(tile2, esc(2, 3, 3, 2))

// tileFinalExit has a closed-off top-left corner reached by an escalator.
var tileFinalExit = withEscalators(Tile{
	Cells: [4][4]Cell{
		{FinalExit(PawnPurple), Empty, Empty, Empty},
		{Empty, Empty, Empty, Warp(PawnPurple)},
		{Empty, Empty, Empty, Empty},
		{Empty, Empty, Empty, Warp(PawnGreen)},
	},
	HorzWalls: [5][4]Wall{
		{Open, Blocked, Blocked, Blocked},
		{Open, Open, Open, Blocked},
		{Blocked, Open, Blocked, Open},
		{Open, Blocked, Open, Blocked},
		{Blocked, Explore(PawnOrange), Blocked, Blocked},
	},
	VertWalls: [4][5]Wall{
		{Blocked, Blocked, Open, Open, Blocked},
		{Blocked, Blocked, Open, Blocked, Blocked},
		{Blocked, Blocked, Blocked, Open, Entrance},
		{Blocked, Blocked, Open, Open, Blocked},
	},
}, esc(0, 1, 1, 3))
