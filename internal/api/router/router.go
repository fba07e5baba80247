package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/SayedTahsin/Class-Reporting-Monitoring-System-sub000/config"
	"github.com/SayedTahsin/Class-Reporting-Monitoring-System-sub000/internal/api/handler"
	"github.com/SayedTahsin/Class-Reporting-Monitoring-System-sub000/internal/api/middleware"
	"github.com/SayedTahsin/Class-Reporting-Monitoring-System-sub000/internal/service"
	"github.com/SayedTahsin/Class-Reporting-Monitoring-System-sub000/pkg/jwt"
	"github.com/SayedTahsin/Class-Reporting-Monitoring-System-sub000/pkg/redis"
)

// Setup builds the Gin engine. Every guarded route names exactly the
// permission it requires; the evaluator resolves the caller's roles on each
// request.
func Setup(cfg *config.Config, h *handler.Handler, svc *service.Service, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(1 << 20))

	// ── health ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	perm := func(name string) gin.HandlerFunc {
		return middleware.RequirePermission(svc.Authz, name)
	}

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// auth (no token required)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", middleware.RateLimit(rdb, 10, time.Minute), h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// everything below requires a valid access token
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)
			authorized.POST("/auth/change-password", h.Auth.ChangePassword)

			users := authorized.Group("/users")
			{
				users.POST("", perm("user:create"), h.User.Create)
				users.GET("", perm("user:read"), h.User.List)
				users.GET("/:id", perm("user:read"), h.User.Get)
				users.PATCH("/:id", perm("user:update"), h.User.Update)
				users.DELETE("/:id", perm("user:delete"), h.User.Delete)
				users.POST("/:id/roles", perm("user:assign_role"), h.User.AssignRole)
				users.DELETE("/:id/roles/:roleID", perm("user:assign_role"), h.User.RemoveRole)
			}

			roles := authorized.Group("/roles")
			{
				roles.POST("", perm("role:create"), h.Role.Create)
				roles.GET("", perm("role:read"), h.Role.List)
				roles.GET("/:id", perm("role:read"), h.Role.Get)
				roles.PATCH("/:id", perm("role:update"), h.Role.Update)
				roles.DELETE("/:id", perm("role:delete"), h.Role.Delete)
				roles.POST("/:id/permissions", perm("role:grant_permission"), h.Role.GrantPermission)
				roles.DELETE("/:id/permissions/:permissionID", perm("role:grant_permission"), h.Role.RevokePermission)
			}

			permissions := authorized.Group("/permissions")
			{
				permissions.POST("", perm("permission:create"), h.Permission.Create)
				permissions.GET("", perm("permission:read"), h.Permission.List)
				permissions.GET("/:id", perm("permission:read"), h.Permission.Get)
				permissions.PATCH("/:id", perm("permission:update"), h.Permission.Update)
				permissions.DELETE("/:id", perm("permission:delete"), h.Permission.Delete)
			}

			batches := authorized.Group("/batches")
			{
				batches.POST("", perm("batch:create"), h.Batch.Create)
				batches.GET("", perm("batch:read"), h.Batch.List)
				batches.GET("/:id", perm("batch:read"), h.Batch.Get)
				batches.PATCH("/:id", perm("batch:update"), h.Batch.Update)
				batches.DELETE("/:id", perm("batch:delete"), h.Batch.Delete)
			}

			sections := authorized.Group("/sections")
			{
				sections.POST("", perm("section:create"), h.Section.Create)
				sections.GET("", perm("section:read"), h.Section.List)
				sections.GET("/:id", perm("section:read"), h.Section.Get)
				sections.PATCH("/:id", perm("section:update"), h.Section.Update)
				sections.DELETE("/:id", perm("section:delete"), h.Section.Delete)
				sections.GET("/:id/calendar.ics", perm("schedule:read"), h.Export.SectionCalendar)
			}

			courses := authorized.Group("/courses")
			{
				courses.POST("", perm("course:create"), h.Course.Create)
				courses.GET("", perm("course:read"), h.Course.List)
				courses.GET("/:id", perm("course:read"), h.Course.Get)
				courses.PATCH("/:id", perm("course:update"), h.Course.Update)
				courses.DELETE("/:id", perm("course:delete"), h.Course.Delete)
			}

			rooms := authorized.Group("/rooms")
			{
				rooms.POST("", perm("room:create"), h.Room.Create)
				rooms.GET("", perm("room:read"), h.Room.List)
				rooms.GET("/:id", perm("room:read"), h.Room.Get)
				rooms.PATCH("/:id", perm("room:update"), h.Room.Update)
				rooms.DELETE("/:id", perm("room:delete"), h.Room.Delete)
			}

			slots := authorized.Group("/slots")
			{
				slots.POST("", perm("slot:create"), h.Slot.Create)
				slots.GET("", perm("slot:read"), h.Slot.List)
				slots.GET("/:id", perm("slot:read"), h.Slot.Get)
				slots.PATCH("/:id", perm("slot:update"), h.Slot.Update)
				slots.DELETE("/:id", perm("slot:delete"), h.Slot.Delete)
			}

			schedules := authorized.Group("/schedules")
			{
				schedules.POST("", perm("schedule:create"), h.Schedule.Create)
				schedules.GET("", perm("schedule:read"), h.Schedule.List)
				schedules.GET("/:id", perm("schedule:read"), h.Schedule.Get)
				schedules.PATCH("/:id", perm("schedule:update"), h.Schedule.Update)
				schedules.DELETE("/:id", perm("schedule:delete"), h.Schedule.Delete)
			}

			histories := authorized.Group("/class-histories")
			{
				histories.POST("", perm("class_history:create"), h.ClassHistory.Create)
				histories.GET("", perm("class_history:read"), h.ClassHistory.List)
				histories.GET("/:id", perm("class_history:read"), h.ClassHistory.Get)
				// update runs the broad/own policy inside the service
				histories.PATCH("/:id", h.ClassHistory.Update)
				histories.DELETE("/:id", perm("class_history:delete"), h.ClassHistory.Delete)
			}

			authorized.POST("/materializer/run", perm("materializer:run"), h.ClassHistory.Materialize)

			exports := authorized.Group("/exports")
			{
				exports.GET("/schedule", perm("report:export"), h.Export.ExportSchedule)
				exports.GET("/class-histories", perm("report:export"), h.Export.ExportHistories)
			}
		}
	}

	return r
}
