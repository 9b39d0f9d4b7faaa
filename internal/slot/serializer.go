package slot

import (
	"fmt"
	"strings"

	"github.com/LumenLBP/lumen-game-backend/pkg/lbpxml"
	"gorm.io/gorm"
)

// Serialize 把一个关卡格式化为游戏客户端使用的老式标签文本。
// 元素顺序是客户端兼容性约定，不能调整。
// creatorUsername 由调用方查询后传入，避免本包反向依赖user包。
func Serialize(db *gorm.DB, s *Slot, creatorUsername string) (string, error) {
	agg, err := LoadSlotAggregates(db, s)
	if err != nil {
		return "", fmt.Errorf("无法加载关卡 %d 的聚合数据: %w", s.SlotID, err)
	}

	var sb strings.Builder
	sb.WriteString(lbpxml.StringElement("id", s.SlotID))
	sb.WriteString(lbpxml.StringElement("npHandle", creatorUsername))
	sb.WriteString(lbpxml.StringElement("name", s.Name))
	sb.WriteString(lbpxml.StringElement("description", s.Description))
	sb.WriteString(lbpxml.StringElement("icon", s.IconHash))
	sb.WriteString(lbpxml.StringElement("rootLevel", s.RootLevel))

	for _, resource := range s.Resources() {
		sb.WriteString(lbpxml.StringElement("resource", resource))
	}

	sb.WriteString(lbpxml.StringElement("location", s.Location().Serialize()))
	sb.WriteString(lbpxml.StringElement("initiallyLocked", s.InitiallyLocked))
	sb.WriteString(lbpxml.StringElement("isSubLevel", s.SubLevel))
	sb.WriteString(lbpxml.StringElement("isLBP1Only", s.Lbp1Only))
	sb.WriteString(lbpxml.StringElement("shareable", s.Shareable))
	sb.WriteString(lbpxml.StringElement("authorLabels", s.AuthorLabels))
	sb.WriteString(lbpxml.StringElement("background", s.BackgroundHash))
	sb.WriteString(lbpxml.StringElement("minPlayers", s.MinimumPlayers))
	sb.WriteString(lbpxml.StringElement("maxPlayers", s.MaximumPlayers))
	sb.WriteString(lbpxml.StringElement("moveRequired", s.MoveRequired))
	sb.WriteString(lbpxml.StringElement("firstPublished", s.FirstUploaded))
	sb.WriteString(lbpxml.StringElement("lastUpdated", s.LastUpdated))
	sb.WriteString(lbpxml.StringElement("mmpick", s.TeamPick))
	sb.WriteString(lbpxml.StringElement("playCount", s.Plays()))
	sb.WriteString(lbpxml.StringElement("completionCount", s.PlaysComplete()))
	sb.WriteString(lbpxml.StringElement("uniquePlayCount", s.PlaysUnique()))
	sb.WriteString(lbpxml.StringElement("heartCount", agg.Hearts))
	sb.WriteString(lbpxml.StringElement("thumbsup", agg.Thumbsup))
	sb.WriteString(lbpxml.StringElement("thumbsdown", agg.Thumbsdown))
	sb.WriteString(lbpxml.StringElement("averageRating", agg.Rating))
	sb.WriteString(lbpxml.StringElement("tags", strings.Join(agg.Tags, ",")))
	sb.WriteString(lbpxml.StringElement("commentCount", agg.Comments))
	sb.WriteString(lbpxml.StringElement("photoCount", agg.Photos))
	sb.WriteString(lbpxml.StringElement("authorPhotoCount", agg.PhotosWithAuthor))
	sb.WriteString(lbpxml.StringElement("commentsEnabled", s.CommentsEnabled))

	return lbpxml.TaggedStringElement("slot", sb.String(), "type", "user"), nil
}
