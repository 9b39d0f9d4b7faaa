package location

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// 打包坐标在全部32位取值范围内必须精确往返
func TestPackUnpackRoundTrip(t *testing.T) {
	cases := []Location{
		{X: 0, Y: 0},
		{X: 1, Y: 2},
		{X: -1, Y: -1},
		{X: math.MaxInt32, Y: math.MaxInt32},
		{X: math.MinInt32, Y: math.MinInt32},
		{X: math.MinInt32, Y: math.MaxInt32},
		{X: 65536, Y: -65536},
	}

	for _, loc := range cases {
		assert.Equal(t, loc, Unpack(Pack(loc)), "坐标 %+v 往返后不一致", loc)
	}
}

func TestPackLayout(t *testing.T) {
	// X占高32位，Y占低32位
	assert.Equal(t, uint64(0x0000000100000002), Pack(Location{X: 1, Y: 2}))
	// 负数坐标按32位截断，不污染另一半
	assert.Equal(t, uint64(0xFFFFFFFF00000002), Pack(Location{X: -1, Y: 2}))
}

func TestSerialize(t *testing.T) {
	assert.Equal(t, "<x>12</x><y>-34</y>", Location{X: 12, Y: -34}.Serialize())
}
