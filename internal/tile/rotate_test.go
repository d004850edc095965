package tile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var rotateSource = withEscalators(Tile{
	Cells: [4][4]Cell{
		{Loot(PawnYellow), Camera(Available), FinalExit(PawnPurple), Loot(PawnPurple)},
		{FinalExit(PawnYellow), Warp(PawnGreen), Warp(PawnOrange), Loot(PawnGreen)},
		{TimerFlip(Available), Warp(PawnYellow), Warp(PawnPurple), FinalExit(PawnGreen)},
		{Loot(PawnOrange), FinalExit(PawnOrange), CrystalBall(Available), Empty},
	},
	HorzWalls: [5][4]Wall{
		{Blocked, Blocked, Open, Blocked},
		{Blocked, Open, Open, Blocked},
		{Blocked, Open, Open, Blocked},
		{Blocked, Open, Open, Blocked},
		{Blocked, Open, Blocked, Blocked},
	},
	VertWalls: [4][5]Wall{
		{Blocked, Open, Open, Open, Blocked},
		{Open, Open, Open, Open, Blocked},
		{Blocked, Open, Open, Blocked, Open},
		{Blocked, Open, Open, Blocked, Blocked},
	},
}, esc(2, 3, 3, 2))

func TestRotateCounterClockwise(t *testing.T) {
	want := withEscalators(Tile{
		Cells: [4][4]Cell{
			{Loot(PawnPurple), Loot(PawnGreen), FinalExit(PawnGreen), Empty},
			{FinalExit(PawnPurple), Warp(PawnOrange), Warp(PawnPurple), CrystalBall(Available)},
			{Camera(Available), Warp(PawnGreen), Warp(PawnYellow), FinalExit(PawnOrange)},
			{Loot(PawnYellow), FinalExit(PawnYellow), TimerFlip(Available), Loot(PawnOrange)},
		},
		HorzWalls: [5][4]Wall{
			{Blocked, Blocked, Open, Blocked},
			{Open, Open, Blocked, Blocked},
			{Open, Open, Open, Open},
			{Open, Open, Open, Open},
			{Blocked, Open, Blocked, Blocked},
		},
		VertWalls: [4][5]Wall{
			{Blocked, Blocked, Blocked, Blocked, Blocked},
			{Open, Open, Open, Open, Blocked},
			{Blocked, Open, Open, Open, Open},
			{Blocked, Blocked, Blocked, Blocked, Blocked},
		},
	}, esc(3, 1, 2, 0))

	got := rotateSource
	got.Rotate(CounterClockwise)
	assert.Equal(t, want, got)
}

func TestRotateClockwise(t *testing.T) {
	want := withEscalators(Tile{
		Cells: [4][4]Cell{
			{Loot(PawnOrange), TimerFlip(Available), FinalExit(PawnYellow), Loot(PawnYellow)},
			{FinalExit(PawnOrange), Warp(PawnYellow), Warp(PawnGreen), Camera(Available)},
			{CrystalBall(Available), Warp(PawnPurple), Warp(PawnOrange), FinalExit(PawnPurple)},
			{Empty, FinalExit(PawnGreen), Loot(PawnGreen), Loot(PawnPurple)},
		},
		HorzWalls: [5][4]Wall{
			{Blocked, Blocked, Open, Blocked},
			{Open, Open, Open, Open},
			{Open, Open, Open, Open},
			{Blocked, Blocked, Open, Open},
			{Blocked, Open, Blocked, Blocked},
		},
		VertWalls: [4][5]Wall{
			{Blocked, Blocked, Blocked, Blocked, Blocked},
			{Open, Open, Open, Open, Blocked},
			{Blocked, Open, Open, Open, Open},
			{Blocked, Blocked, Blocked, Blocked, Blocked},
		},
	}, esc(0, 2, 1, 3))

	got := rotateSource
	got.Rotate(Clockwise)
	assert.Equal(t, want, got)
}

func TestRotateRoundTrips(t *testing.T) {
	for _, tc := range []struct {
		name string
		tile Tile
	}{
		{"mixed", rotateSource},
		{"tile1", tile1},
		{"tile3", tile3},
		{"final exit", tileFinalExit},
		{"zero", Tile{}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.tile
			got.Rotate(Clockwise)
			got.Rotate(CounterClockwise)
			assert.Equal(t, tc.tile, got, "cw then ccw")

			got.Rotate(CounterClockwise)
			got.Rotate(Clockwise)
			assert.Equal(t, tc.tile, got, "ccw then cw")

			for i := 0; i < 4; i++ {
				got.Rotate(CounterClockwise)
			}
			assert.Equal(t, tc.tile, got, "four ccw")

			for i := 0; i < 4; i++ {
				got.Rotate(Clockwise)
			}
			assert.Equal(t, tc.tile, got, "four cw")

			assert.Equal(t,
				tc.tile.Rotated(Clockwise).Rotated(Clockwise),
				tc.tile.Rotated(CounterClockwise).Rotated(CounterClockwise),
				"half turn either way")
		})
	}
}

func TestRotatedTimes(t *testing.T) {
	assert.Equal(t, tile3, tile3.RotatedTimes(0))
	assert.Equal(t, tile3, tile3.RotatedTimes(4))
	assert.Equal(t, tile3.Rotated(CounterClockwise), tile3.RotatedTimes(1))
	assert.Equal(t, tile3.Rotated(Clockwise), tile3.RotatedTimes(-1))
	assert.Equal(t, tile3.Rotated(Clockwise), tile3.RotatedTimes(3))
}

func TestRotateGridRectangular(t *testing.T) {
	// 2 rows x 3 columns
	src := [2][3]int{
		{1, 2, 3},
		{4, 5, 6},
	}
	var cw, ccw [3][2]int
	rotateGrid(2, 3, Clockwise,
		func(r, c int) int { return src[r][c] },
		func(r, c int, v int) { cw[r][c] = v })
	rotateGrid(2, 3, CounterClockwise,
		func(r, c int) int { return src[r][c] },
		func(r, c int, v int) { ccw[r][c] = v })

	assert.Equal(t, [3][2]int{{4, 1}, {5, 2}, {6, 3}}, cw)
	assert.Equal(t, [3][2]int{{3, 6}, {2, 5}, {1, 4}}, ccw)
}
