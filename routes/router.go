// file: routes/router.go
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Th3Mauryy/RefZone-sub000/controllers"
	"github.com/Th3Mauryy/RefZone-sub000/middlewares"
	"github.com/Th3Mauryy/RefZone-sub000/models"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	apiV1 := r.Group("/api/v1")
	{
		usersPublic := apiV1.Group("/users")
		{
			usersPublic.POST("/register", controllers.Register)
			usersPublic.POST("/login", controllers.Login)
		}

		matchRoutes := apiV1.Group("/matches")
		matchRoutes.Use(middlewares.JWTAuthMiddleware())
		{
			matchRoutes.GET("", controllers.ListMatches)
			matchRoutes.GET("/:id", controllers.GetMatchDetail)

			// organizer side
			matchRoutes.POST("", middlewares.RoleAuthMiddleware(models.RoleOrganizer), controllers.CreateMatch)
			matchRoutes.PUT("/:id", middlewares.RoleAuthMiddleware(models.RoleOrganizer), controllers.UpdateMatch)
			matchRoutes.DELETE("/:id", middlewares.RoleAuthMiddleware(models.RoleOrganizer), controllers.DeleteMatch)
			matchRoutes.POST("/:id/assign", middlewares.RoleAuthMiddleware(models.RoleOrganizer), controllers.AssignReferee)
			matchRoutes.POST("/:id/substitute", middlewares.RoleAuthMiddleware(models.RoleOrganizer), controllers.SubstituteReferee)
			matchRoutes.POST("/:id/unassign", middlewares.RoleAuthMiddleware(models.RoleOrganizer), controllers.UnassignReferee)

			// referee side
			matchRoutes.POST("/:id/apply", middlewares.RoleAuthMiddleware(models.RoleReferee), controllers.ApplyToMatch)
		}

		ratingRoutes := apiV1.Group("/ratings")
		ratingRoutes.Use(middlewares.JWTAuthMiddleware())
		{
			ratingRoutes.POST("", middlewares.RoleAuthMiddleware(models.RoleOrganizer), controllers.RateReferee)
			ratingRoutes.GET("/referees/:id", controllers.GetRefereeRatings)
		}

		historyRoutes := apiV1.Group("/history")
		historyRoutes.Use(middlewares.JWTAuthMiddleware())
		{
			historyRoutes.GET("", middlewares.RoleAuthMiddleware(models.RoleOrganizer), controllers.GetHistory)
			historyRoutes.GET("/pending-ratings", middlewares.RoleAuthMiddleware(models.RoleOrganizer), controllers.GetPendingRatings)
			historyRoutes.POST("/sweep", controllers.TriggerSweep)
		}
	}

	return r
}
