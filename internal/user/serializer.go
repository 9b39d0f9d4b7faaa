package user

import (
	"fmt"
	"strings"

	"github.com/LumenLBP/lumen-game-backend/internal/platform/config"
	"github.com/LumenLBP/lumen-game-backend/internal/slot"
	"github.com/LumenLBP/lumen-game-backend/pkg/lbpxml"
	"gorm.io/gorm"
)

// slotTypes 是非Vita平台的关卡配额类型集合。
// lbp1没有独立的配额块，客户端从不请求它。
var slotTypes = []string{"lbp2", "lbp3", "crossControl"}

// Serialize 把一个用户的资料卡格式化为游戏客户端使用的老式标签文本。
// 元素顺序是客户端兼容性约定，不能调整。
// 全局配额设置通过 cfg 显式传入，本函数不读取任何全局状态。
func Serialize(db *gorm.DB, u *User, cfg config.GameConfig, gameVersion slot.GameVersion) (string, error) {
	counts, err := LoadProfileCounts(db, u.UserID)
	if err != nil {
		return "", fmt.Errorf("无法加载用户 %d 的聚合数据: %w", u.UserID, err)
	}

	slots, err := serializeSlots(db, u, cfg, gameVersion == slot.GameVersionVita)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(lbpxml.TaggedStringElement("npHandle", u.Username, "icon", u.IconHash))
	sb.WriteString(lbpxml.StringElement("game", u.Game))
	sb.WriteString(slots)
	sb.WriteString(lbpxml.StringElement("lists", u.Lists()))
	// 列表配额属于服务器设置而不是用户，但客户端要求它出现在这里
	sb.WriteString(lbpxml.StringElement("lists_quota", cfg.ListsQuota))
	sb.WriteString(lbpxml.StringElement("biography", u.Biography))
	sb.WriteString(lbpxml.StringElement("reviewCount", u.Reviews()))
	sb.WriteString(lbpxml.StringElement("commentCount", counts.Comments))
	sb.WriteString(lbpxml.StringElement("photosByMeCount", counts.PhotosByMe))
	sb.WriteString(lbpxml.StringElement("photosWithMeCount", counts.PhotosWithMe))
	sb.WriteString(lbpxml.StringElement("commentsEnabled", "true"))
	sb.WriteString(lbpxml.StringElement("location", u.Location().Serialize()))
	sb.WriteString(lbpxml.StringElement("favouriteSlotCount", counts.HeartedLevels))
	sb.WriteString(lbpxml.StringElement("favouriteUserCount", counts.HeartedUsers))
	sb.WriteString(lbpxml.StringElement("lolcatftwCount", counts.QueuedLevels))
	sb.WriteString(lbpxml.StringElement("pins", u.Pins))
	sb.WriteString(lbpxml.StringElement("planets", u.PlanetHash))
	sb.WriteString(lbpxml.BlankElement("photos"))
	sb.WriteString(lbpxml.StringElement("heartCount", counts.Hearts))

	return lbpxml.TaggedStringElement("user", sb.String(), "type", "user"), nil
}

// serializeSlots 生成资料卡中的关卡配额块。
// Vita平台只上报lbp2的已用数和{lbp2}一种配额类型；
// 其他平台上报lbp1/lbp2/lbp3的已用数和{lbp2, lbp3, crossControl}三种配额类型。
func serializeSlots(db *gorm.DB, u *User, cfg config.GameConfig, isVita bool) (string, error) {
	var sb strings.Builder
	var slotTypesLocal []string

	if isVita {
		used, err := UsedSlotsForGame(db, u.UserID, slot.GameVersionVita)
		if err != nil {
			return "", fmt.Errorf("无法统计Vita已用关卡数: %w", err)
		}
		sb.WriteString(lbpxml.StringElement("lbp2UsedSlots", used))
		slotTypesLocal = []string{"lbp2"}
	} else {
		for _, v := range []struct {
			name    string
			version slot.GameVersion
		}{
			{"lbp1UsedSlots", slot.GameVersionLBP1},
			{"lbp2UsedSlots", slot.GameVersionLBP2},
			{"lbp3UsedSlots", slot.GameVersionLBP3},
		} {
			used, err := UsedSlotsForGame(db, u.UserID, v.version)
			if err != nil {
				return "", fmt.Errorf("无法统计已用关卡数(%s): %w", v.name, err)
			}
			sb.WriteString(lbpxml.StringElement(v.name, used))
		}
		slotTypesLocal = slotTypes
	}

	free, err := FreeSlots(db, u.UserID, cfg.EntitledSlots)
	if err != nil {
		return "", fmt.Errorf("无法计算剩余关卡配额: %w", err)
	}

	sb.WriteString(lbpxml.StringElement("entitledSlots", cfg.EntitledSlots))
	sb.WriteString(lbpxml.StringElement("freeSlots", free))

	for _, slotType := range slotTypesLocal {
		sb.WriteString(lbpxml.StringElement(slotType+"EntitledSlots", cfg.EntitledSlots))
		// 历史行为：购买数元素本应带slotType前缀，crossControl还应使用
		// "PurchsedSlots"这个拼写错误的标签。但历史实现里运算符优先级
		// 让前缀被拼进了比较式并被消耗掉，比较也因此永远不成立——
		// 线上每种配额类型输出的都是不带前缀的"PurchasedSlots"。
		// 客户端接受现状，保持不变。
		sb.WriteString(lbpxml.StringElement("PurchasedSlots", 0))
		sb.WriteString(lbpxml.StringElement(slotType+"FreeSlots", free))
	}
	return sb.String(), nil
}
