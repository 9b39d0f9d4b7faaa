package location

import "github.com/LumenLBP/lumen-game-backend/pkg/lbpxml"

// Location 表示资料卡或关卡在玩家星球上的坐标。
type Location struct {
	X int
	Y int
}

// Pack 将坐标打包为一个64位整数：X的低32位放在高字，Y的低32位放在低字。
// 数据库中只存储打包后的形式。
func Pack(loc Location) uint64 {
	return uint64(uint32(loc.X))<<32 | uint64(uint32(loc.Y))
}

// Unpack 从打包形式还原坐标。对所有32位有符号的X、Y必须精确往返。
func Unpack(packed uint64) Location {
	return Location{
		X: int(int32(packed >> 32)),
		Y: int(int32(packed)),
	}
}

// Serialize 按客户端约定输出坐标的两个元素。
func (l Location) Serialize() string {
	return lbpxml.StringElement("x", l.X) + lbpxml.StringElement("y", l.Y)
}
