package api

import (
	"net/http"
	"time"

	"webfitpro/backend/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// SetupRoutes wires the middleware stack and the endpoint table onto the
// router. Every route carries permissive CORS headers; preflight OPTIONS
// requests are answered by the CORS middleware.
func SetupRoutes(
	router *gin.Engine,
	logger *zap.Logger,
	accountService service.AccountService,
	routineService service.RoutineService,
	catalogService service.CatalogService,
) {
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		respondMessage(c, http.StatusMethodNotAllowed, "Method not allowed")
	})

	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization", "Accept"},
		MaxAge:       12 * time.Hour,
	}))
	router.Use(RequestID(), RequestLogger(logger), Metrics())

	accountHandler := NewAccountHandler(accountService, logger)
	routineHandler := NewRoutineHandler(routineService, logger)
	discoverHandler := NewDiscoverHandler(catalogService, routineService, logger)
	adminHandler := NewAdminHandler(accountService, logger)

	router.GET("/healthz", func(c *gin.Context) {
		respondMessage(c, http.StatusOK, "ok")
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.POST("/register", accountHandler.Register)
	router.GET("/login", accountHandler.Login)
	router.GET("/homepage", discoverHandler.Homepage)

	router.GET("/continueRoutine", routineHandler.HandleGet)
	router.PATCH("/continueRoutine", routineHandler.HandlePatch)

	router.GET("/discover", discoverHandler.HandleGet)
	router.PATCH("/discover", discoverHandler.HandlePatch)

	router.GET("/myInfo", accountHandler.MyInfoGet)
	router.PATCH("/myInfo", accountHandler.MyInfoPatch)

	router.GET("/manageUsers", adminHandler.ListUsers)
	router.PATCH("/manageUsers", adminHandler.UpdateUser)
	router.DELETE("/manageUsers", adminHandler.DeleteUser)

	router.GET("/pendingUsers", adminHandler.ListPending)
	router.PATCH("/pendingUsers", adminHandler.ApproveUser)
}
