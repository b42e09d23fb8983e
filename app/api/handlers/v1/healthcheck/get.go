package healthcheck

import (
	"github.com/gin-gonic/gin"
	"github.com/mustafa892/notes-app/platform/web/handler"
	"net/http"
)

// Get godoc
// @Summary Healthcheck
// @Description Reports service liveness
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /v1/healthcheck [get]
func Get(_ *gin.Context) handler.Result {
	return handler.Result{
		Status: http.StatusOK,
		Body:   gin.H{"status": "ok"},
	}
}
