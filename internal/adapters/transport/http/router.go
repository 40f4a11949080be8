package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	authsvc "github.com/Miraines/MoonyAndStarry/task-service/internal/app/auth/service"
	tasksvc "github.com/Miraines/MoonyAndStarry/task-service/internal/app/task/service"
	"github.com/Miraines/MoonyAndStarry/task-service/internal/infra/config"
)

type Router struct {
	auth  authsvc.Service
	tasks tasksvc.Service
	cfg   *config.Config
	log   *zap.Logger
}

func NewRouter(auth authsvc.Service, tasks tasksvc.Service, cfg *config.Config, log *zap.Logger) *Router {
	return &Router{auth: auth, tasks: tasks, cfg: cfg, log: log}
}

// Register wires every route onto the engine. Identity is resolved by the
// group middleware; handlers receive it via currentUser.
func (r *Router) Register(e *gin.Engine, metricsReg prometheus.Gatherer) {
	api := e.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/login", r.login)
		auth.POST("/refresh", r.refresh)
		auth.POST("/logout", r.requireAccess(), r.logout)
	}

	user := api.Group("/user")
	{
		user.POST("", r.register)
		user.GET("", r.requireAdmin(), r.listUsers)

		me := user.Group("/me", r.requireAccess())
		{
			me.GET("", r.getMe)
			me.PATCH("", r.updateMe)
			me.PATCH("/password", r.changeMyPassword)
			me.DELETE("", r.deleteMe)
		}

		admin := user.Group("/:user_id", r.requireAdmin())
		{
			admin.GET("", r.getUser)
			admin.PATCH("", r.updateUser)
			admin.PATCH("/role", r.changeRole)
			admin.DELETE("", r.deleteUser)
		}
	}

	task := api.Group("/task")
	{
		task.GET("/all-tasks", r.requireAdmin(), r.listAllTasks)

		own := task.Group("", r.requireAccess())
		{
			own.POST("", r.createTask)
			own.GET("", r.listMyTasks)
			own.GET("/:task_id", r.getTask)
			own.PATCH("/:task_id", r.updateTask)
			own.DELETE("/:task_id", r.deleteTask)
		}

		task.PATCH("/:task_id/user", r.requireAdmin(), r.changeTaskUser)
	}

	e.GET("/healthz", r.health)
	if metricsReg != nil {
		e.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metricsReg, promhttp.HandlerOpts{})))
	}
}
