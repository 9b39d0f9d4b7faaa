package slot

import (
	"fmt"
	"testing"

	"github.com/LumenLBP/lumen-game-backend/internal/interaction"
	"github.com/LumenLBP/lumen-game-backend/internal/photo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&Slot{},
		&interaction.Comment{},
		&interaction.RatedLevel{},
		&interaction.HeartedLevel{},
		&photo.Photo{},
	))
	return db
}

func TestGetSlotByIDNotFound(t *testing.T) {
	db := newTestDB(t)

	s, err := GetSlotByID(db, 999)
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestRatingLBP1DefaultsToThree(t *testing.T) {
	db := newTestDB(t)

	// 没有任何评分时返回中位值3.0
	rating, err := RatingLBP1(db, 1)
	require.NoError(t, err)
	assert.Equal(t, 3.0, rating)

	require.NoError(t, db.Create(&interaction.RatedLevel{UserID: 1, SlotID: 1, RatingLBP1: 5}).Error)
	require.NoError(t, db.Create(&interaction.RatedLevel{UserID: 2, SlotID: 1, RatingLBP1: 2}).Error)
	// 其他关卡的评分不参与计算
	require.NoError(t, db.Create(&interaction.RatedLevel{UserID: 1, SlotID: 2, RatingLBP1: 1}).Error)

	rating, err = RatingLBP1(db, 1)
	require.NoError(t, err)
	assert.Equal(t, 3.5, rating)
}

func TestThumbCounts(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, db.Create(&interaction.RatedLevel{UserID: 1, SlotID: 1, Rating: 1}).Error)
	require.NoError(t, db.Create(&interaction.RatedLevel{UserID: 2, SlotID: 1, Rating: 1}).Error)
	require.NoError(t, db.Create(&interaction.RatedLevel{UserID: 3, SlotID: 1, Rating: -1}).Error)
	// 评分为0的记录两边都不计
	require.NoError(t, db.Create(&interaction.RatedLevel{UserID: 4, SlotID: 1, Rating: 0}).Error)

	up, err := Thumbsup(db, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), up)

	down, err := Thumbsdown(db, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), down)
}

func TestLevelTagsOrdering(t *testing.T) {
	db := newTestDB(t)
	s := &Slot{SlotID: 1, GameVersion: GameVersionLBP1}
	require.NoError(t, db.Create(s).Error)

	// brilliant出现2次，quick和funny各1次
	for i, tag := range []string{"brilliant", "brilliant", "quick", "funny"} {
		require.NoError(t, db.Create(&interaction.RatedLevel{
			UserID: i + 1, SlotID: 1, RatingLBP1: 4, TagLBP1: tag,
		}).Error)
	}
	// 空标签不参与统计
	require.NoError(t, db.Create(&interaction.RatedLevel{UserID: 9, SlotID: 1, RatingLBP1: 4}).Error)

	tags, err := LevelTags(db, s)
	require.NoError(t, err)
	// 次数升序，同次数按标签名升序
	assert.Equal(t, []string{"funny", "quick", "brilliant"}, tags)
}

func TestLevelTagsEmptyForOtherVersions(t *testing.T) {
	db := newTestDB(t)
	s := &Slot{SlotID: 1, GameVersion: GameVersionLBP2}
	require.NoError(t, db.Create(s).Error)
	require.NoError(t, db.Create(&interaction.RatedLevel{UserID: 1, SlotID: 1, TagLBP1: "funny"}).Error)

	tags, err := LevelTags(db, s)
	require.NoError(t, err)
	assert.Empty(t, tags)
}

func TestLoadSlotAggregates(t *testing.T) {
	db := newTestDB(t)
	s := &Slot{SlotID: 1, CreatorID: 10, GameVersion: GameVersionLBP1}
	require.NoError(t, db.Create(s).Error)

	require.NoError(t, db.Create(&interaction.HeartedLevel{UserID: 1, SlotID: 1}).Error)
	require.NoError(t, db.Create(&interaction.HeartedLevel{UserID: 2, SlotID: 1}).Error)
	require.NoError(t, db.Create(&interaction.Comment{
		PosterUserID: 1, Type: interaction.CommentTypeLevel, TargetID: 1, Message: "nice",
	}).Error)
	// profile评论不计入关卡评论数
	require.NoError(t, db.Create(&interaction.Comment{
		PosterUserID: 1, Type: interaction.CommentTypeProfile, TargetID: 1, Message: "hi",
	}).Error)
	require.NoError(t, db.Create(&photo.Photo{CreatorID: 10, SlotID: 1}).Error)
	require.NoError(t, db.Create(&photo.Photo{CreatorID: 3, SlotID: 1}).Error)

	agg, err := LoadSlotAggregates(db, s)
	require.NoError(t, err)
	assert.Equal(t, int64(2), agg.Hearts)
	assert.Equal(t, int64(1), agg.Comments)
	assert.Equal(t, int64(2), agg.Photos)
	assert.Equal(t, int64(1), agg.PhotosWithAuthor)
	assert.Equal(t, 3.0, agg.Rating)
	assert.Empty(t, agg.Tags)
}
