package slot

import (
	"strings"
	"time"

	"github.com/LumenLBP/lumen-game-backend/pkg/location"
)

// GameVersion 标识一条记录所属的客户端版本。
// 数值与客户端上报的游戏ID一一对应，不能改动。
type GameVersion int

const (
	GameVersionLBP1 GameVersion = iota
	GameVersionLBP2
	GameVersionLBP3
	GameVersionVita
)

// SlotType 区分关卡的来源。目前只有玩家上传的关卡会进入数据库。
type SlotType int

const (
	SlotTypeUser SlotType = iota
	SlotTypeDeveloper
)

// Slot 定义了数据库中玩家关卡的持久化模型。
// 这里只存储客户端上传的原始字段；心数、评分这类聚合值
// 不落库，由service层在读取时实时统计（见service.go）。
type Slot struct {
	// SlotID 是关卡的主键
	SlotID int `gorm:"primaryKey"`

	// InternalSlotID 是客户端内部使用的关卡编号
	InternalSlotID int

	Type SlotType

	Name        string
	Description string

	// IconHash 和 BackgroundHash 指向资源服务器上的素材
	IconHash       string
	BackgroundHash string

	// RootLevel 是关卡主资源的哈希
	RootLevel string

	// ResourceCollection 以逗号拼接的形式存储关卡引用的全部资源哈希。
	// 通过 Resources/SetResources 以切片视图读写。
	ResourceCollection string

	// LocationPacked 是关卡在玩家星球上的坐标，
	// 两个32位坐标打包进一个64位整数存储（见 pkg/location）。
	LocationPacked uint64

	// CreatorID 关联到唯一的作者
	CreatorID int `gorm:"index"`

	InitiallyLocked bool
	SubLevel        bool
	Lbp1Only        bool
	Shareable       int
	AuthorLabels    string

	MinimumPlayers int
	MaximumPlayers int
	MoveRequired   bool

	// FirstUploaded 和 LastUpdated 是客户端时间戳（毫秒）
	FirstUploaded int64
	LastUpdated   int64

	TeamPick bool

	GameVersion GameVersion `gorm:"index"`

	LevelType               string
	CrossControllerRequired bool

	// Hidden 由审核操作设置，被隐藏的关卡不再对客户端可见
	Hidden       bool
	HiddenReason string

	CommentsEnabled bool

	// --- 各版本的游玩计数，由游玩事件处理器累加 ---

	PlaysLBP1         int
	PlaysLBP1Complete int
	PlaysLBP1Unique   int

	PlaysLBP2         int
	PlaysLBP2Complete int
	PlaysLBP2Unique   int

	PlaysLBP3         int
	PlaysLBP3Complete int
	PlaysLBP3Unique   int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Resources 返回关卡资源哈希的切片视图，空白项会被丢弃。
func (s *Slot) Resources() []string {
	parts := strings.Split(s.ResourceCollection, ",")
	resources := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			resources = append(resources, p)
		}
	}
	return resources
}

// SetResources 用给定的哈希列表覆盖资源集合。
// 设置后再读取必须得到同序的非空序列。
func (s *Slot) SetResources(resources []string) {
	s.ResourceCollection = strings.Join(resources, ",")
}

// Location 返回解包后的星球坐标。
func (s *Slot) Location() location.Location {
	return location.Unpack(s.LocationPacked)
}

// SetLocation 打包并存储星球坐标。
func (s *Slot) SetLocation(loc location.Location) {
	s.LocationPacked = location.Pack(loc)
}

// Plays 返回全版本的游玩总数。
func (s *Slot) Plays() int {
	return s.PlaysLBP1 + s.PlaysLBP2 + s.PlaysLBP3
}

// PlaysComplete 返回全版本的通关总数。
func (s *Slot) PlaysComplete() int {
	return s.PlaysLBP1Complete + s.PlaysLBP2Complete + s.PlaysLBP3Complete
}

// PlaysUnique 返回全版本的独立玩家游玩总数。
func (s *Slot) PlaysUnique() int {
	return s.PlaysLBP1Unique + s.PlaysLBP2Unique + s.PlaysLBP3Unique
}
