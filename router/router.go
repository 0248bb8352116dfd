package router

import (
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mauriciortega07/backend-proyecto-biomedica/config"
	"github.com/mauriciortega07/backend-proyecto-biomedica/controllers"
	"github.com/mauriciortega07/backend-proyecto-biomedica/middleware"
)

func Setup(api *controllers.API, cfg config.AppConfig, logger *zap.Logger) *gin.Engine {
	r := gin.New()

	r.Use(ginzap.GinzapWithConfig(logger, &ginzap.Config{
		TimeFormat: time.RFC3339,
		UTC:        true,
	}))
	r.Use(ginzap.RecoveryWithZap(logger, true))
	r.Use(middleware.CORS(cfg.FrontendURL))

	r.GET("/", api.Root)
	r.GET("/healthz", api.Health)

	r.GET("/equipos_biomedicos", api.ListEquipos)
	r.POST("/equipos_biomedicos", api.CreateEquipo)
	r.PUT("/equipos_biomedicos/:id", api.UpdateEquipo)
	r.DELETE("/equipos_biomedicos/:id", api.DeleteEquipo)

	r.GET("/equipos_biomedicos/:id/mantenimientos", api.ListMantenimientos)
	r.POST("/equipos_biomedicos/:id/mantenimientos", api.CreateMantenimientos)
	r.PATCH("/equipos_biomedicos/:id/mantenimientos/finalizar_todos", api.FinalizarTodos)

	r.PATCH("/mantenimientos/:id", api.UpdateMantenimiento)
	r.PATCH("/mantenimientos/:id/finalizar", api.FinalizarMantenimiento)

	r.POST("/register", api.Register)
	r.POST("/login", api.Login)

	return r
}
