package v1

import (
	"io"
	"net/http"

	"go-talent-backend/internal/delivery/http/response"
	"go-talent-backend/internal/domain"
	"go-talent-backend/pkg/apperror"
	"go-talent-backend/pkg/storage"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
}

func NewProfileHandler(protected *gin.RouterGroup, profileUC domain.ProfileUsecase) {
	handler := &ProfileHandler{profileUC: profileUC}

	profile := protected.Group("/profile")
	{
		profile.GET("/me", handler.Me)
		profile.PUT("/me", handler.UpdateMe)
		profile.POST("/skills", handler.AddSkill)
		profile.DELETE("/skills/:id", handler.RemoveSkill)
		profile.POST("/languages", handler.AddLanguage)
		profile.DELETE("/languages/:id", handler.RemoveLanguage)
		profile.POST("/projects", handler.AddProject)
		profile.DELETE("/projects/:id", handler.RemoveProject)
		profile.POST("/avatar", handler.UploadAvatar)
		profile.DELETE("/avatar", handler.RemoveAvatar)
	}
}

// Me godoc
// @Summary      Own profile with skills, languages and projects
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=domain.ProfileDetails}
// @Router       /profile/me [get]
func (h *ProfileHandler) Me(c *gin.Context) {
	details, err := h.profileUC.Me(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile", details)
}

// UpdateMe godoc
// @Summary      Update name and bio
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        profile  body      domain.UpdateProfileInput  true  "Profile fields"
// @Success      200      {object}  response.Response{data=domain.Profile}
// @Failure      400      {object}  response.Response
// @Router       /profile/me [put]
func (h *ProfileHandler) UpdateMe(c *gin.Context) {
	var input domain.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	profile, err := h.profileUC.UpdateMe(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile updated", profile)
}

// AddSkill godoc
// @Summary      Add a skill
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        skill  body      domain.SkillInput  true  "Skill"
// @Success      201    {object}  response.Response{data=domain.Skill}
// @Failure      400    {object}  response.Response
// @Router       /profile/skills [post]
func (h *ProfileHandler) AddSkill(c *gin.Context) {
	var input domain.SkillInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	skill, err := h.profileUC.AddSkill(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Skill added", skill)
}

// RemoveSkill godoc
// @Summary      Remove a skill
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Skill ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /profile/skills/{id} [delete]
func (h *ProfileHandler) RemoveSkill(c *gin.Context) {
	if err := h.profileUC.RemoveSkill(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skill removed", nil)
}

// AddLanguage godoc
// @Summary      Add a language
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        language  body      domain.LanguageInput  true  "Language"
// @Success      201       {object}  response.Response{data=domain.Language}
// @Failure      400       {object}  response.Response
// @Router       /profile/languages [post]
func (h *ProfileHandler) AddLanguage(c *gin.Context) {
	var input domain.LanguageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	language, err := h.profileUC.AddLanguage(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Language added", language)
}

// RemoveLanguage godoc
// @Summary      Remove a language
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Language ID"
// @Success      200  {object}  response.Response
// @Router       /profile/languages/{id} [delete]
func (h *ProfileHandler) RemoveLanguage(c *gin.Context) {
	if err := h.profileUC.RemoveLanguage(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Language removed", nil)
}

// AddProject godoc
// @Summary      Add a project
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        project  body      domain.ProjectInput  true  "Project"
// @Success      201      {object}  response.Response{data=domain.Project}
// @Failure      400      {object}  response.Response
// @Router       /profile/projects [post]
func (h *ProfileHandler) AddProject(c *gin.Context) {
	var input domain.ProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	project, err := h.profileUC.AddProject(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Project added", project)
}

// RemoveProject godoc
// @Summary      Remove a project
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project ID"
// @Success      200  {object}  response.Response
// @Router       /profile/projects/{id} [delete]
func (h *ProfileHandler) RemoveProject(c *gin.Context) {
	if err := h.profileUC.RemoveProject(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Project removed", nil)
}

// UploadAvatar godoc
// @Summary      Upload an avatar
// @Description  Accepts a jpeg, png, gif or webp up to 5 MB and stores a resized jpeg
// @Tags         profile
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        avatar  formData  file  true  "Image file"
// @Success      200     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Router       /profile/avatar [post]
func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		c.Error(apperror.BadRequest("An image file is required in the 'avatar' field"))
		return
	}
	if fileHeader.Size > storage.MaxAvatarBytes {
		c.Error(apperror.BadRequest("Image must be smaller than 5 MB"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, storage.MaxAvatarBytes+1))
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	url, err := h.profileUC.UpdateAvatar(c.Request.Context(), fileHeader.Filename, data)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Avatar updated", gin.H{"avatar_url": url})
}

// RemoveAvatar godoc
// @Summary      Remove the avatar
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Router       /profile/avatar [delete]
func (h *ProfileHandler) RemoveAvatar(c *gin.Context) {
	if err := h.profileUC.RemoveAvatar(c.Request.Context()); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Avatar removed", nil)
}
