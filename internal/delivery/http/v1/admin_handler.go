package v1

import (
	"net/http"

	"go-talent-backend/internal/delivery/http/response"
	"go-talent-backend/internal/domain"
	"go-talent-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	verificationUC domain.VerificationUsecase
}

func NewAdminHandler(protected *gin.RouterGroup, verificationUC domain.VerificationUsecase) {
	handler := &AdminHandler{verificationUC: verificationUC}

	admin := protected.Group("/admin")
	{
		admin.GET("/students", handler.ListStudents)
		admin.GET("/students/:id", handler.GetStudent)
		admin.PATCH("/students/:id/verify", handler.ToggleVerification)
		admin.PATCH("/skills/:id/level", handler.UpdateSkillLevel)
	}
}

// ListStudents godoc
// @Summary      List student profiles for review
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        filter  query     string  false  "all, verified or unverified"  default(all)
// @Success      200     {object}  response.Response{data=[]domain.Profile}
// @Failure      403     {object}  response.Response
// @Router       /admin/students [get]
func (h *AdminHandler) ListStudents(c *gin.Context) {
	filter := c.DefaultQuery("filter", "all")

	profiles, err := h.verificationUC.ListProfiles(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Students", profiles)
}

// GetStudent godoc
// @Summary      Student detail for review
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Profile ID"
// @Success      200  {object}  response.Response{data=domain.ProfileDetails}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/students/{id} [get]
func (h *AdminHandler) GetStudent(c *gin.Context) {
	details, err := h.verificationUC.GetStudent(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Student", details)
}

// ToggleVerification godoc
// @Summary      Flip a profile's verified badge
// @Description  Verifying stamps the acting admin and the time; unverifying clears both
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Profile ID"
// @Success      200  {object}  response.Response{data=domain.Profile}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/students/{id}/verify [patch]
func (h *AdminHandler) ToggleVerification(c *gin.Context) {
	profile, err := h.verificationUC.ToggleVerification(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	message := "Profile unverified"
	if profile.Verified {
		message = "Profile verified"
	}
	response.Success(c, http.StatusOK, message, profile)
}

type UpdateSkillLevelRequest struct {
	Level string `json:"level" binding:"required"`
}

// UpdateSkillLevel godoc
// @Summary      Correct a skill's level
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id     path      string                   true  "Skill ID"
// @Param        level  body      UpdateSkillLevelRequest  true  "New level"
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Failure      403    {object}  response.Response
// @Router       /admin/skills/{id}/level [patch]
func (h *AdminHandler) UpdateSkillLevel(c *gin.Context) {
	var req UpdateSkillLevelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.verificationUC.UpdateSkillLevel(c.Request.Context(), c.Param("id"), req.Level); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skill level updated", nil)
}
