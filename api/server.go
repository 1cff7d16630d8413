package api

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"time"

	db "github.com/Upkraft/Upkraft-Backend/db/sqlc"
	"github.com/Upkraft/Upkraft-Backend/middleware"
	"github.com/Upkraft/Upkraft-Backend/models"
	activitylogs "github.com/Upkraft/Upkraft-Backend/services/activity_logs"
	"github.com/Upkraft/Upkraft-Backend/services/fees"
	"github.com/Upkraft/Upkraft-Backend/services/monitoring/logging"
	"github.com/Upkraft/Upkraft-Backend/services/monitoring/tasks"
	service "github.com/Upkraft/Upkraft-Backend/services/notification"
	"github.com/Upkraft/Upkraft-Backend/services/redis"
	"github.com/Upkraft/Upkraft-Backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// / If there's a better place to access this
// / TODO, I feel the config should be the one accessible like this
var TokenController *utils.JWTToken

type Server struct {
	router  *gin.Engine
	store   db.Store
	config  *utils.Config
	logger  *logging.Logger
	fees    *fees.Policy
	notifyr *service.Notification
	tracker *redis.RedisService
}

func NewServer(envPath string) *Server {
	c, err := utils.LoadConfig(envPath)
	if err != nil {
		panic(fmt.Sprintf("Could not load config: %v", err))
	}

	conn, err := sql.Open(c.DBDriver, utils.GetDBSource(c, c.DBName))
	if err != nil {
		panic(fmt.Sprintf("Could not load DB: %v", err))
	}

	m, err := migrate.New(
		"file://db/migrations",
		utils.GetDBSource(c, c.DBName),
	)
	if err != nil {
		log.Fatalf("Unable to instantiate the database schema migrator - %v", err)
	}

	if err := m.Up(); err != nil {
		if err != migrate.ErrNoChange {
			log.Fatalf("Unable to migrate up to the latest database schema - %v", err)
		}
	}

	store := db.NewStore(conn)
	g := gin.Default()
	l := logging.NewLogger()

	feePolicy, err := fees.NewPolicyFromConfig(c.PlatformFeeRate)
	if err != nil {
		panic(fmt.Sprintf("Could not set up fee policy: %v", err))
	}

	g.Use(CORSMiddleware())
	g.Use(l.LoggingMiddleWare())

	activityLog := activitylogs.NewActivityLog(store)
	activityLogger := middleware.NewActivityLogMiddleware(store)
	g.Use(activityLogger.ActivityLogger(activityLog))

	scheduler := tasks.NewTaskScheduler(l)
	if _, err := scheduler.AddTask("activity-log-cleanup", "Activity Log Cleanup", activityLog.Cleanup, 24*time.Hour); err == nil {
		_ = scheduler.ScheduleTask("activity-log-cleanup", time.Hour)
	}

	TokenController = utils.NewJWTToken(c)

	// Withdrawal volume tracking degrades gracefully without Redis
	tracker, err := redis.NewRedisService(c)
	if err != nil {
		l.Warn(fmt.Sprintf("Redis unavailable, withdrawal tracking disabled: %v", err))
		tracker = nil
	}

	return &Server{
		router:  g,
		store:   store,
		config:  c,
		logger:  l,
		fees:    feePolicy,
		notifyr: service.NewNotificationService(c, l),
		tracker: tracker,
	}
}

func (s *Server) Start() {

	dr := models.SuccessResponse{
		Status:  "success",
		Message: "Welcome to Upkraft!",
		Version: utils.REVISION,
	}

	s.router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, dr)
	})

	/// Register Object Routers Below
	Wallet{}.router(s)
	Payment{}.router(s)

	s.router.Run(fmt.Sprintf(":%v", s.config.ServerPort))
}
