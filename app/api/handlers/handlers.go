package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/mustafa892/notes-app/app/api/handlers/v1/healthcheck"
	"github.com/mustafa892/notes-app/app/api/handlers/v1/notes"
	"github.com/mustafa892/notes-app/app/api/handlers/web"
	"github.com/mustafa892/notes-app/platform/web/handler"
)

func MapDefaults(r *gin.Engine) {
	r.GET("/v1/healthcheck", handler.Wrapper(healthcheck.Get))
}

func MapApi(r *gin.Engine) {
	r.GET("/v1/notes", handler.Wrapper(notes.List))
	r.POST("/v1/notes", handler.Wrapper(notes.Create))
}

func MapWeb(r *gin.Engine) {
	r.GET("/", web.Index)
	r.POST("/add_note/", web.Add)
}
