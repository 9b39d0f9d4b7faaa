package moderation

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/LumenLBP/lumen-game-backend/internal/platform/config"
	"github.com/LumenLBP/lumen-game-backend/internal/platform/database"
	"github.com/LumenLBP/lumen-game-backend/internal/user"
	"github.com/LumenLBP/lumen-game-backend/pkg/paging"
	"github.com/gin-gonic/gin"
)

// --- 案件列表页的API响应模型 ---

type CaseResponse struct {
	CaseID      int        `json:"caseId"`
	Type        CaseType   `json:"type"`
	Description string     `json:"description"`
	AffectedID  int        `json:"affectedId"`
	CreatorID   int        `json:"creatorId"`
	CreatedAt   time.Time  `json:"createdAt"`
	DismissedAt *time.Time `json:"dismissedAt"`
	Dismissed   bool       `json:"dismissed"`
}

type CasesPageResponse struct {
	PageNumber  int            `json:"pageNumber"`
	PageAmount  int            `json:"pageAmount"`
	CaseCount   int64          `json:"caseCount"`
	SearchValue string         `json:"searchValue"`
	Cases       []CaseResponse `json:"cases"`
}

// GetCasesPage 返回审核案件列表。
// 访问者必须是已登录的审核人员；否则一律返回404，
// 与不存在的页面无法区分，避免向普通用户暴露审核功能的存在。
func GetCasesPage(c *gin.Context) {
	requester := user.UserFromContext(c)
	if requester == nil || !requester.IsModerator() {
		c.JSON(http.StatusNotFound, gin.H{"error": "页面不存在"})
		return
	}

	pageNumber, err := strconv.Atoi(c.Param("pageNumber"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "页码格式错误"})
		return
	}

	// 1. 归一化搜索词：纯空白视为空，再去掉全部空格。
	// 搜索因此是对"去空格描述"的子串匹配，历史如此，客户端脚本依赖这一行为。
	name := c.Query("name")
	if strings.TrimSpace(name) == "" {
		name = ""
	}
	searchValue := strings.ReplaceAll(name, " ", "")

	// 2. 加载全部案件。
	// TODO: 列表本身没有应用分页，与下面按搜索词计算的页数不一致；
	// 等前端确认翻页交互后统一改为 Offset/Limit。
	var cases []ModerationCase
	if err := database.DB.Find(&cases).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取案件列表失败"})
		return
	}

	// 3. 按归一化后的搜索词统计匹配数，并由此计算页数（至少1页）
	var caseCount int64
	err = database.DB.Model(&ModerationCase{}).
		Where("case_description LIKE ?", "%"+searchValue+"%").
		Count(&caseCount).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取案件总数失败"})
		return
	}
	pageAmount := paging.PageAmountAtLeastOne(caseCount, config.Cfg.Game.PageSize)

	response := CasesPageResponse{
		PageNumber:  pageNumber,
		PageAmount:  pageAmount,
		CaseCount:   caseCount,
		SearchValue: searchValue,
		Cases:       make([]CaseResponse, 0, len(cases)),
	}
	for _, m := range cases {
		response.Cases = append(response.Cases, CaseResponse{
			CaseID:      m.CaseID,
			Type:        m.Type,
			Description: m.CaseDescription,
			AffectedID:  m.AffectedID,
			CreatorID:   m.CreatorID,
			CreatedAt:   m.CreatedAt,
			DismissedAt: m.DismissedAt,
			Dismissed:   m.Dismissed(),
		})
	}
	c.JSON(http.StatusOK, response)
}
