package slot

import (
	"strings"
	"testing"

	"github.com/LumenLBP/lumen-game-backend/internal/interaction"
	"github.com/LumenLBP/lumen-game-backend/pkg/location"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeSlotBlob(t *testing.T) {
	db := newTestDB(t)

	s := &Slot{
		SlotID:      1,
		Name:        "Fun Level",
		Description: "a level",
		IconHash:    "icon1",
		RootLevel:   "root1",
		CreatorID:   10,
		Shareable:   1,
		GameVersion: GameVersionLBP1,
	}
	s.SetResources([]string{"res1", "res2"})
	s.SetLocation(location.Location{X: 3, Y: 4})
	require.NoError(t, db.Create(s).Error)

	require.NoError(t, db.Create(&interaction.HeartedLevel{UserID: 1, SlotID: 1}).Error)
	require.NoError(t, db.Create(&interaction.RatedLevel{UserID: 1, SlotID: 1, Rating: 1, RatingLBP1: 4, TagLBP1: "funny"}).Error)

	out, err := Serialize(db, s, "creator")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, `<slot type="user">`))
	assert.True(t, strings.HasSuffix(out, "</slot>"))

	assert.Contains(t, out, "<id>1</id>")
	assert.Contains(t, out, "<npHandle>creator</npHandle>")
	assert.Contains(t, out, "<name>Fun Level</name>")
	assert.Contains(t, out, "<resource>res1</resource><resource>res2</resource>")
	assert.Contains(t, out, "<location><x>3</x><y>4</y></location>")
	assert.Contains(t, out, "<heartCount>1</heartCount>")
	assert.Contains(t, out, "<thumbsup>1</thumbsup>")
	assert.Contains(t, out, "<thumbsdown>0</thumbsdown>")
	assert.Contains(t, out, "<averageRating>4</averageRating>")
	assert.Contains(t, out, "<tags>funny</tags>")

	// id在最前，聚合计数在后半段，顺序是客户端约定
	assert.Less(t, strings.Index(out, "<id>"), strings.Index(out, "<npHandle>"))
	assert.Less(t, strings.Index(out, "<playCount>"), strings.Index(out, "<heartCount>"))
	assert.Less(t, strings.Index(out, "<tags>"), strings.Index(out, "<commentCount>"))
}

func TestSerializeSlotDefaults(t *testing.T) {
	db := newTestDB(t)
	s := &Slot{SlotID: 1, GameVersion: GameVersionLBP2}
	require.NoError(t, db.Create(s).Error)

	out, err := Serialize(db, s, "")
	require.NoError(t, err)

	// 没有任何评分时平均分固定为3
	assert.Contains(t, out, "<averageRating>3</averageRating>")
	assert.Contains(t, out, "<tags></tags>")
	assert.Contains(t, out, "<mmpick>false</mmpick>")
	// 空资源集合不输出resource元素
	assert.NotContains(t, out, "<resource>")
}
