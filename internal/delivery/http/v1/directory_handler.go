package v1

import (
	"net/http"
	"strconv"
	"strings"

	"go-talent-backend/internal/delivery/http/response"
	"go-talent-backend/internal/domain"
	"go-talent-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type DirectoryHandler struct {
	directoryUC domain.DirectoryUsecase
}

func NewDirectoryHandler(protected *gin.RouterGroup, directoryUC domain.DirectoryUsecase) {
	handler := &DirectoryHandler{directoryUC: directoryUC}

	students := protected.Group("/students")
	{
		students.GET("", handler.Search)
		students.GET("/filters", handler.Options)
	}
}

// csvParam reads a repeatable query parameter that also accepts a
// comma-separated form, e.g. ?skills=Go,Rust or ?skills=Go&skills=Rust.
func csvParam(c *gin.Context, name string) []string {
	var values []string
	for _, raw := range c.QueryArray(name) {
		for _, part := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				values = append(values, trimmed)
			}
		}
	}
	return values
}

// Search godoc
// @Summary      Search the student directory
// @Description  Free-text search over name and bio combined with skill, language, category and verified filters
// @Tags         directory
// @Produce      json
// @Security     BearerAuth
// @Param        search      query     string  false  "Matches first name, last name or bio"
// @Param        skills      query     string  false  "Skill names, repeatable or comma-separated"
// @Param        languages   query     string  false  "Language names, repeatable or comma-separated"
// @Param        categories  query     string  false  "Skill categories, repeatable or comma-separated"
// @Param        verified    query     bool    false  "Only verified (true) or only unverified (false) profiles"
// @Success      200         {object}  response.Response{data=[]domain.ProfileDetails}
// @Router       /students [get]
func (h *DirectoryHandler) Search(c *gin.Context) {
	query := domain.DirectoryQuery{
		Term: strings.TrimSpace(c.Query("search")),
		Filters: domain.DirectoryFilters{
			Skills:     csvParam(c, "skills"),
			Languages:  csvParam(c, "languages"),
			Categories: csvParam(c, "categories"),
		},
	}
	if raw := c.Query("verified"); raw != "" {
		verified, err := strconv.ParseBool(raw)
		if err != nil {
			c.Error(apperror.BadRequest("verified must be true or false"))
			return
		}
		query.Filters.Verified = &verified
	}

	results, err := h.directoryUC.Search(c.Request.Context(), query)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Students", results)
}

// Options godoc
// @Summary      Filter option lists
// @Description  Distinct skill and language names currently present in the directory
// @Tags         directory
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=domain.FilterOptions}
// @Router       /students/filters [get]
func (h *DirectoryHandler) Options(c *gin.Context) {
	options, err := h.directoryUC.Options(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Filter options", options)
}
