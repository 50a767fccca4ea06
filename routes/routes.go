package routes

import (
	"borccu-api/controllers"
	"borccu-api/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", controllers.Register)
			auth.POST("/login", controllers.Login)
		}

		// everything below needs a valid token
		authed := api.Group("/", middlewares.Auth())
		{
			authed.GET("/profile", controllers.Profile)
			authed.PUT("/profile", controllers.UpdateProfile)
			authed.PUT("/profile/password", controllers.ChangePassword)
			authed.GET("/profiles/search", controllers.SearchProfiles)

			debts := authed.Group("/debts")
			{
				debts.GET("/", controllers.DebtList)
				debts.POST("/", controllers.DebtCreate)
				debts.GET("/summary", controllers.DebtSummary)
				debts.POST("/:id/settle", controllers.DebtSettle)
				debts.PUT("/:id", controllers.DebtUpdate)
				debts.DELETE("/:id", controllers.DebtDelete)
			}

			groups := authed.Group("/groups")
			{
				groups.GET("/", controllers.GroupList)
				groups.POST("/", controllers.GroupCreate)
				groups.GET("/split", controllers.GroupSplitPreview)
				groups.GET("/:id", controllers.GroupDetail)
				groups.POST("/:id/members", controllers.GroupAddMembers)
				groups.PUT("/:id/members/:memberID", controllers.GroupMemberUpdate)
				groups.DELETE("/:id", controllers.GroupDelete)
			}

			friends := authed.Group("/friends")
			{
				friends.GET("/", controllers.FriendList)
				friends.GET("/suggestions", controllers.FriendSuggestions)
				friends.POST("/requests", controllers.FriendRequestSend)
				friends.GET("/requests", controllers.FriendRequestsIncoming)
				friends.POST("/requests/:id/respond", controllers.FriendRequestRespond)
				friends.POST("/requests/:id/cancel", controllers.FriendRequestCancel)
			}

			notifications := authed.Group("/notifications")
			{
				notifications.GET("/", controllers.NotificationList)
				notifications.PUT("/:id/read", controllers.NotificationMarkRead)
				notifications.PUT("/read-all", controllers.NotificationMarkAllRead)
				notifications.DELETE("/:id", controllers.NotificationDelete)
			}
		}
	}
}
