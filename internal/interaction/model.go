package interaction

import "time"

// 本包定义玩家之间、玩家与关卡之间的关系表。
// 资料页和关卡页上的各种计数都是对这些表的实时count查询。

// CommentType 区分评论的目标类型。
type CommentType int

const (
	CommentTypeProfile CommentType = iota
	CommentTypeLevel
)

// Comment 是一条发布在资料页或关卡页上的评论。
type Comment struct {
	CommentID int `gorm:"primaryKey"`

	// PosterUserID 是评论作者
	PosterUserID int `gorm:"index"`

	// Type 与 TargetID 共同确定评论目标：
	// profile评论的TargetID是用户ID，level评论的TargetID是关卡ID
	Type     CommentType
	TargetID int `gorm:"index"`

	Message   string
	Timestamp int64

	CreatedAt time.Time
}

// RatedLevel 是一个玩家对一个关卡的评价记录。
// Rating 是LBP2之后的拇指评价（1/-1），RatingLBP1 是LBP1的五星评分，
// TagLBP1 是LBP1评分时附带的标签。
type RatedLevel struct {
	RatedLevelID int `gorm:"primaryKey"`

	UserID int `gorm:"index"`
	SlotID int `gorm:"index"`

	Rating     int
	RatingLBP1 int
	TagLBP1    string
}

// HeartedLevel 表示一个玩家收藏了一个关卡。
type HeartedLevel struct {
	HeartedLevelID int `gorm:"primaryKey"`

	UserID int `gorm:"index"`
	SlotID int `gorm:"index"`
}

// HeartedProfile 表示一个玩家收藏了另一个玩家。
type HeartedProfile struct {
	HeartedProfileID int `gorm:"primaryKey"`

	UserID        int `gorm:"index"`
	HeartedUserID int `gorm:"index"`
}

// QueuedLevel 表示一个玩家把一个关卡加入了待玩队列。
type QueuedLevel struct {
	QueuedLevelID int `gorm:"primaryKey"`

	UserID int `gorm:"index"`
	SlotID int `gorm:"index"`
}
