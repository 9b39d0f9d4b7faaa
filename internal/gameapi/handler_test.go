package gameapi

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/LumenLBP/lumen-game-backend/internal/interaction"
	"github.com/LumenLBP/lumen-game-backend/internal/photo"
	"github.com/LumenLBP/lumen-game-backend/internal/platform/config"
	"github.com/LumenLBP/lumen-game-backend/internal/platform/database"
	"github.com/LumenLBP/lumen-game-backend/internal/slot"
	"github.com/LumenLBP/lumen-game-backend/internal/user"
	"github.com/LumenLBP/lumen-game-backend/pkg/token"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupHandlerTest 准备游戏端接口测试所需的全局状态。
// Redis被标记为不可用，在线记录相关的调用全部静默降级。
func setupHandlerTest(t *testing.T) *gorm.DB {
	t.Helper()
	gin.SetMode(gin.TestMode)
	token.GenerateSecretKey()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&user.User{},
		&slot.Slot{},
		&interaction.Comment{},
		&interaction.RatedLevel{},
		&interaction.HeartedLevel{},
		&interaction.HeartedProfile{},
		&interaction.QueuedLevel{},
		&photo.Photo{},
		&photo.PhotoSubject{},
	))

	oldDB, oldCfg := database.DB, config.Cfg
	database.DB = db
	config.Cfg = &config.Config{
		Game: config.GameConfig{PageSize: 20, EntitledSlots: 20, ListsQuota: 20},
	}
	database.UpdateStatus(false, "")
	t.Cleanup(func() {
		database.DB, config.Cfg = oldDB, oldCfg
		database.UpdateStatus(true, "")
	})
	return db
}

func newGameRouter() *gin.Engine {
	r := gin.New()
	r.POST("/login/:username", LoginUser)
	r.GET("/user/:username", GetUserBlob)
	r.GET("/slot/:slotId", GetSlotBlob)
	r.GET("/online", GetOnlineCount)
	return r
}

func TestLoginUserCreatesAccountAndSession(t *testing.T) {
	db := setupHandlerTest(t)
	r := newGameRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login/newplayer?game=2", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/xml")
	assert.True(t, strings.HasPrefix(w.Body.String(), `<user type="user">`))

	// 首次联机即建号，并记录客户端版本
	u, err := user.GetUserByUsername(db, "newplayer")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, int(slot.GameVersionLBP3), u.Game)

	// 下发的会话Cookie必须能通过校验并指回该账号
	var sessionCookie *http.Cookie
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == user.SessionCookieName {
			sessionCookie = cookie
		}
	}
	require.NotNil(t, sessionCookie)
	payload, err := token.DecodeSessionCookie(sessionCookie.Value)
	require.NoError(t, err)
	assert.Equal(t, u.UserID, payload.UserID)
	assert.NotEmpty(t, payload.SessionID)
}

func TestLoginUserReusesExistingAccount(t *testing.T) {
	db := setupHandlerTest(t)
	existing := &user.User{Username: "veteran", Biography: "keep me"}
	require.NoError(t, db.Create(existing).Error)
	r := newGameRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login/veteran", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, db.Model(&user.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	u, err := user.GetUserByID(db, existing.UserID)
	require.NoError(t, err)
	assert.Equal(t, "keep me", u.Biography)
}

func TestGetUserBlob(t *testing.T) {
	db := setupHandlerTest(t)
	require.NoError(t, db.Create(&user.User{Username: "player", IconHash: "icon1"}).Error)
	require.NoError(t, db.Create(&user.User{Username: "outlaw", Banned: true}).Error)
	r := newGameRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/user/player", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `<npHandle icon="icon1">player</npHandle>`)

	// 不存在的玩家和被封禁的玩家都返回404
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/user/nobody", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/user/outlaw", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetSlotBlob(t *testing.T) {
	db := setupHandlerTest(t)
	creator := &user.User{Username: "creator"}
	require.NoError(t, db.Create(creator).Error)

	visible := &slot.Slot{SlotID: 1, Name: "Fun Level", CreatorID: creator.UserID}
	hidden := &slot.Slot{SlotID: 2, Name: "Hidden Level", CreatorID: creator.UserID, Hidden: true}
	require.NoError(t, db.Create(visible).Error)
	require.NoError(t, db.Create(hidden).Error)
	r := newGameRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/slot/1", nil))
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.True(t, strings.HasPrefix(body, `<slot type="user">`))
	assert.Contains(t, body, "<name>Fun Level</name>")
	assert.Contains(t, body, "<npHandle>creator</npHandle>")

	// 被隐藏的关卡与不存在的关卡无法区分
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/slot/2", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/slot/999", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetOnlineCountUnavailableWithoutRedis(t *testing.T) {
	setupHandlerTest(t)
	r := newGameRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/online", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestParseGameVersion(t *testing.T) {
	for raw, want := range map[string]slot.GameVersion{
		"":    slot.GameVersionLBP1,
		"0":   slot.GameVersionLBP1,
		"2":   slot.GameVersionLBP3,
		"3":   slot.GameVersionVita,
		"9":   slot.GameVersionLBP1,
		"-1":  slot.GameVersionLBP1,
		"abc": slot.GameVersionLBP1,
	} {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/user/x?game="+raw, nil)
		assert.Equal(t, want, parseGameVersion(c), "game=%q", raw)
	}
}
