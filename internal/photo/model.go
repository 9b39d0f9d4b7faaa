package photo

import "time"

// Photo 是玩家在游戏内拍摄并上传的照片。
type Photo struct {
	PhotoID int `gorm:"primaryKey"`

	// CreatorID 是拍摄者
	CreatorID int `gorm:"index"`

	// SlotID 是照片拍摄所在的关卡，0表示不在任何关卡中
	SlotID int `gorm:"index"`

	// Timestamp 是客户端上报的拍摄时间（Unix秒）
	Timestamp int64 `gorm:"index"`

	SmallHash  string
	MediumHash string
	LargeHash  string
	PlanHash   string

	CreatedAt time.Time
}

// PhotoSubject 记录照片中出现的一个玩家。
// 一张照片最多有四个主体，"出现在照片中"的计数就是对本表的统计。
type PhotoSubject struct {
	PhotoSubjectID int `gorm:"primaryKey"`

	PhotoID int `gorm:"index"`
	UserID  int `gorm:"index"`
}
