package app

import (
	"leaderpath_backend/docs"
	"leaderpath_backend/internal/config"
	"leaderpath_backend/internal/middleware"
	"leaderpath_backend/internal/model"

	"leaderpath_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	a.registerPublicRoutes(router, c)

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		// 成员/通用 授权接口
		a.registerMemberRoutes(authGroup, c)

		// 组长相关接口
		a.registerLeaderRoutes(authGroup, c)
	}

	// 3. 管理员相关接口
	a.registerAdminRoutes(router, c, repos, cfg)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}
}

func (a *App) registerMemberRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/profile", c.auth.GetProfile)
	rg.PUT("/profile", c.user.UpdateProfile)

	// 学习路径解锁状态与连续学习
	rg.GET("/sequence", c.progression.GetSequence)
	rg.GET("/streak", c.progression.GetStreak)
	rg.GET("/points", c.progression.GetPoints)
	rg.GET("/content/:contentId/completion", c.progression.GetItemCompletion)

	// 排行榜与小组
	rg.GET("/leaderboard", c.leaderboard.GetLeaderboard)
	rg.GET("/teams", c.user.ListTeams)

	// 模块完成写入
	rg.PUT("/content/:contentId/video-progress", c.completion.UpdateVideoProgress)
	rg.POST("/content/:contentId/worksheet", c.completion.SubmitWorksheet)
	rg.PUT("/content/:contentId/bold-action", c.completion.UpdateBoldAction)
}

func (a *App) registerLeaderRoutes(rg *gin.RouterGroup, c *controllers) {
	leader := rg.Group("")
	leader.Use(middleware.RoleMiddleware(model.Leader, model.Admin))
	{
		leader.GET("/members", c.user.ListMembers)
		leader.PUT("/content/:contentId/checkin", c.completion.UpdateCheckin)
	}
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user), middleware.RoleMiddleware(model.Admin))
	{
		// 路径管理
		admin.POST("/paths", c.learningPath.CreatePath)
		admin.GET("/paths", c.learningPath.ListPaths)
		admin.GET("/paths/:id", c.learningPath.GetPath)
		admin.PUT("/paths/:id", c.learningPath.UpdatePath)
		admin.DELETE("/paths/:id", c.learningPath.DeletePath)
		admin.POST("/paths/:id/activate", c.learningPath.ActivatePath)

		// 条目管理
		admin.POST("/paths/:id/items", c.learningPath.AddItem)
		admin.PUT("/items/:itemId", c.learningPath.UpdateItem)
		admin.PUT("/items/:itemId/manual-unlock", c.learningPath.SetManualUnlock)
		admin.DELETE("/items/:itemId", c.learningPath.DeleteItem)

		// 小组管理
		admin.POST("/teams", c.user.CreateTeam)
		admin.PUT("/teams/:id", c.user.UpdateTeam)
		admin.DELETE("/teams/:id", c.user.DeleteTeam)

		// 成员管理
		admin.PUT("/members/:id/team", c.user.AssignTeam)
		admin.PUT("/members/:id/role", c.user.SetRole)
		admin.PUT("/members/:id/disabled", c.user.SetDisabled)
	}
}
