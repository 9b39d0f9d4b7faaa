package user

import (
	"time"

	"github.com/LumenLBP/lumen-game-backend/pkg/location"
)

// 权限等级。达到 PermissionLevelModerator 的用户可以访问审核页面。
const (
	PermissionLevelDefault   = 0
	PermissionLevelModerator = 1
	PermissionLevelAdmin     = 2
)

// User 定义了数据库中玩家账号的持久化模型。
// 这里只存储账号自身的字段；评论数、照片数、收藏数这类
// 聚合值不落库，由service层在读取时实时统计（见service.go）。
type User struct {
	// UserID 是用户的主键
	UserID int `gorm:"primaryKey"`

	// Username 是PSN侧的玩家句柄，首次联机时创建
	Username string `gorm:"uniqueIndex;not null"`

	// IconHash 指向资源服务器上的头像素材
	IconHash string

	// Game 是该用户最近一次联机使用的游戏ID
	Game int

	// Biography 是资料卡上展示的自我介绍
	Biography string

	// LocationPacked 是资料卡在玩家星球上的坐标，
	// 两个32位坐标打包进一个64位整数存储（见 pkg/location）。
	LocationPacked uint64

	// Pins 是以逗号拼接的已展示奖章ID列表，原样转发给客户端
	Pins string

	// PlanetHash 是玩家星球资源的哈希
	PlanetHash string

	// Banned 是封禁标记。账号从不硬删除，封禁的用户只是不再出现在列表中。
	Banned bool

	// Status 是列表页的排序依据（在线状态优先）
	Status int

	// PermissionLevel 是网站侧的权限等级
	PermissionLevel int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsModerator 判断该用户是否具有审核权限。
func (u *User) IsModerator() bool {
	return u.PermissionLevel >= PermissionLevelModerator
}

// Location 返回解包后的资料卡坐标。
func (u *User) Location() location.Location {
	return location.Unpack(u.LocationPacked)
}

// SetLocation 打包并存储资料卡坐标。
func (u *User) SetLocation(loc location.Location) {
	u.LocationPacked = location.Pack(loc)
}

// Lists 是客户端要求的列表计数。列表功能尚未实现，恒为0。
func (u *User) Lists() int {
	return 0
}

// Reviews 是客户端要求的评测计数。评测功能尚未实现，恒为0。
func (u *User) Reviews() int {
	return 0
}
