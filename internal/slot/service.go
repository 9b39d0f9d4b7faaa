package slot

import (
	"errors"
	"fmt"
	"sort"

	"github.com/LumenLBP/lumen-game-backend/internal/interaction"
	"github.com/LumenLBP/lumen-game-backend/internal/photo"
	"gorm.io/gorm"
)

// 本文件实现关卡的各种派生计数。每个函数都对传入的db发起一次
// 独立的count/聚合查询，读到的是查询时刻的已提交数据，而不是
// 某个统一快照。调用方需要多个计数时通过 LoadSlotAggregates 批量获取。

// GetSlotByID 按主键查找关卡。未找到时返回 (nil, nil)。
func GetSlotByID(db *gorm.DB, slotID int) (*Slot, error) {
	var s Slot
	if err := db.First(&s, "slot_id = ?", slotID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("无法查询关卡 %d: %w", slotID, err)
	}
	return &s, nil
}

// Hearts 统计收藏了该关卡的玩家数。
func Hearts(db *gorm.DB, slotID int) (int64, error) {
	var count int64
	err := db.Model(&interaction.HeartedLevel{}).Where("slot_id = ?", slotID).Count(&count).Error
	return count, err
}

// CommentsCount 统计发布在该关卡上的评论数。
func CommentsCount(db *gorm.DB, slotID int) (int64, error) {
	var count int64
	err := db.Model(&interaction.Comment{}).
		Where("type = ? AND target_id = ?", interaction.CommentTypeLevel, slotID).
		Count(&count).Error
	return count, err
}

// PhotosCount 统计在该关卡中拍摄的照片数。
func PhotosCount(db *gorm.DB, slotID int) (int64, error) {
	var count int64
	err := db.Model(&photo.Photo{}).Where("slot_id = ?", slotID).Count(&count).Error
	return count, err
}

// PhotosWithAuthorCount 统计在该关卡中由作者本人拍摄的照片数。
func PhotosWithAuthorCount(db *gorm.DB, s *Slot) (int64, error) {
	var count int64
	err := db.Model(&photo.Photo{}).
		Where("slot_id = ? AND creator_id = ?", s.SlotID, s.CreatorID).
		Count(&count).Error
	return count, err
}

// RatingLBP1 计算该关卡LBP1五星评分的平均值。
// 没有任何评分记录时返回固定的中位值3.0。
func RatingLBP1(db *gorm.DB, slotID int) (float64, error) {
	var avg *float64
	err := db.Model(&interaction.RatedLevel{}).
		Where("slot_id = ?", slotID).
		Select("AVG(rating_lbp1)").
		Scan(&avg).Error
	if err != nil {
		return 0, fmt.Errorf("无法计算关卡 %d 的平均评分: %w", slotID, err)
	}
	if avg == nil {
		return 3.0, nil
	}
	return *avg, nil
}

// Thumbsup 统计该关卡收到的点赞数。
func Thumbsup(db *gorm.DB, slotID int) (int64, error) {
	var count int64
	err := db.Model(&interaction.RatedLevel{}).
		Where("slot_id = ? AND rating = ?", slotID, 1).
		Count(&count).Error
	return count, err
}

// Thumbsdown 统计该关卡收到的点踩数。
func Thumbsdown(db *gorm.DB, slotID int) (int64, error) {
	var count int64
	err := db.Model(&interaction.RatedLevel{}).
		Where("slot_id = ? AND rating = ?", slotID, -1).
		Count(&count).Error
	return count, err
}

// LevelTags 返回该关卡按热度排序的标签列表。标签只在LBP1评分中存在，
// 其他版本的关卡恒为空列表。
// 注意：排序方向沿用线上行为，按出现次数升序、同次数按标签名升序。
// 升序意味着最冷门的标签排在最前，方向存疑，但在确认客户端预期前保持原样。
func LevelTags(db *gorm.DB, s *Slot) ([]string, error) {
	if s.GameVersion != GameVersionLBP1 {
		return []string{}, nil
	}

	var tags []string
	err := db.Model(&interaction.RatedLevel{}).
		Where("slot_id = ? AND tag_lbp1 <> ''", s.SlotID).
		Pluck("tag_lbp1", &tags).Error
	if err != nil {
		return nil, fmt.Errorf("无法读取关卡 %d 的标签: %w", s.SlotID, err)
	}

	occurrences := make(map[string]int, len(tags))
	for _, tag := range tags {
		occurrences[tag]++
	}

	result := make([]string, 0, len(occurrences))
	for tag := range occurrences {
		result = append(result, tag)
	}
	sort.Slice(result, func(i, j int) bool {
		if occurrences[result[i]] != occurrences[result[j]] {
			return occurrences[result[i]] < occurrences[result[j]]
		}
		return result[i] < result[j]
	})
	return result, nil
}

// SlotAggregates 汇集序列化一个关卡所需的全部派生数据。
type SlotAggregates struct {
	Hearts           int64
	Comments         int64
	Photos           int64
	PhotosWithAuthor int64
	Rating           float64
	Thumbsup         int64
	Thumbsdown       int64
	Tags             []string
}

// LoadSlotAggregates 为一个关卡批量执行全部聚合查询。
// 每个字段仍是一次独立查询的结果，只是集中在一处发起。
func LoadSlotAggregates(db *gorm.DB, s *Slot) (*SlotAggregates, error) {
	var agg SlotAggregates
	var err error

	if agg.Hearts, err = Hearts(db, s.SlotID); err != nil {
		return nil, fmt.Errorf("无法统计关卡收藏数: %w", err)
	}
	if agg.Comments, err = CommentsCount(db, s.SlotID); err != nil {
		return nil, fmt.Errorf("无法统计关卡评论数: %w", err)
	}
	if agg.Photos, err = PhotosCount(db, s.SlotID); err != nil {
		return nil, fmt.Errorf("无法统计关卡照片数: %w", err)
	}
	if agg.PhotosWithAuthor, err = PhotosWithAuthorCount(db, s); err != nil {
		return nil, fmt.Errorf("无法统计作者照片数: %w", err)
	}
	if agg.Rating, err = RatingLBP1(db, s.SlotID); err != nil {
		return nil, err
	}
	if agg.Thumbsup, err = Thumbsup(db, s.SlotID); err != nil {
		return nil, fmt.Errorf("无法统计点赞数: %w", err)
	}
	if agg.Thumbsdown, err = Thumbsdown(db, s.SlotID); err != nil {
		return nil, fmt.Errorf("无法统计点踩数: %w", err)
	}
	if agg.Tags, err = LevelTags(db, s); err != nil {
		return nil, err
	}
	return &agg, nil
}
