package v1

import (
	"net/http"

	"go-talent-backend/internal/delivery/http/response"
	"go-talent-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type TalentMapHandler struct {
	talentMapUC domain.TalentMapUsecase
}

func NewTalentMapHandler(protected *gin.RouterGroup, talentMapUC domain.TalentMapUsecase) {
	handler := &TalentMapHandler{talentMapUC: talentMapUC}

	protected.GET("/talent-map", handler.Snapshot)
}

// Snapshot godoc
// @Summary      Talent map data
// @Description  Skill frequency summaries across all student profiles: top skills, by category, by level
// @Tags         talent-map
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=domain.TalentMapSnapshot}
// @Router       /talent-map [get]
func (h *TalentMapHandler) Snapshot(c *gin.Context) {
	snapshot, err := h.talentMapUC.Snapshot(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Talent map", snapshot)
}
