package moderation

import "time"

// CaseType 标识一个审核案件针对的内容类型。
type CaseType int

const (
	CaseTypeUser CaseType = iota
	CaseTypeLevel
)

// ModerationCase 是一条内容/行为审核记录。
// 案件没有显式的状态字段：DismissedAt 为空表示仍在处理中。
type ModerationCase struct {
	CaseID int `gorm:"primaryKey"`

	Type CaseType

	// CaseDescription 是审核人员填写的自由文本描述，也是搜索的匹配对象
	CaseDescription string

	// AffectedID 是被审核的用户或关卡ID
	AffectedID int `gorm:"index"`

	// CreatorID 是创建案件的审核人员
	CreatorID int

	CreatedAt   time.Time
	DismissedAt *time.Time
	DismisserID int
}

// Dismissed 判断案件是否已被撤销。
func (m *ModerationCase) Dismissed() bool {
	return m.DismissedAt != nil
}
