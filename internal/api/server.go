package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/stagedoor/theatre-api/docs"
	v1 "github.com/stagedoor/theatre-api/internal/api/handler/v1"
	"github.com/stagedoor/theatre-api/internal/api/middleware"
	"github.com/stagedoor/theatre-api/internal/config"
	"github.com/stagedoor/theatre-api/internal/repository"
	"github.com/stagedoor/theatre-api/internal/repository/dao"
	"github.com/stagedoor/theatre-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler(db)
	theatreHandler := s.initTheatreHandler(db)
	performanceHandler := s.initPerformanceHandler(db)
	reservationHandler := s.initReservationHandler(db)
	s.MountHandlers(authHandler, theatreHandler, performanceHandler, reservationHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initTheatreHandler(db *gorm.DB) *v1.TheatreHandler {
	theatreDAO := dao.NewTheatreDAO(db)
	repo := repository.NewTheatreRepository(theatreDAO)
	svc := service.NewTheatreService(repo)
	handler := v1.NewTheatreHandler(svc)

	return handler
}

func (s *Server) initPerformanceHandler(db *gorm.DB) *v1.PerformanceHandler {
	theatreDAO := dao.NewTheatreDAO(db)
	repo := repository.NewTheatreRepository(theatreDAO)
	svc := service.NewTheatreService(repo)
	handler := v1.NewPerformanceHandler(svc)

	return handler
}

func (s *Server) initReservationHandler(db *gorm.DB) *v1.ReservationHandler {
	reservationDAO := dao.NewReservationDAO(db)
	reservationRepo := repository.NewReservationRepository(reservationDAO)
	theatreRepo := repository.NewTheatreRepository(dao.NewTheatreDAO(db))
	svc := service.NewBookingService(reservationRepo, theatreRepo)
	handler := v1.NewReservationHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	theatreHandler *v1.TheatreHandler,
	performanceHandler *v1.PerformanceHandler,
	reservationHandler *v1.ReservationHandler,
) {
	const basePath = "/api/v1"

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/signup", authHandler.HandleSignup)
		auth.POST("/auth/login", authHandler.HandleLogin)
	}

	catalog := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		catalog.POST("/actors", theatreHandler.HandleCreateActor)
		catalog.GET("/actors", theatreHandler.HandleGetActors)
		catalog.POST("/genres", theatreHandler.HandleCreateGenre)
		catalog.GET("/genres", theatreHandler.HandleGetGenres)
		catalog.POST("/plays", theatreHandler.HandleCreatePlay)
		catalog.GET("/plays", theatreHandler.HandleGetPlays)
		catalog.GET("/plays/:playID", theatreHandler.HandleGetPlay)
		catalog.POST("/theatre-halls", theatreHandler.HandleCreateHall)
		catalog.GET("/theatre-halls", theatreHandler.HandleGetHalls)
	}

	performances := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		performances.POST("/performances", performanceHandler.HandleCreatePerformance)
		performances.GET("/performances", performanceHandler.HandleGetPerformances)
		performances.GET("/performances/:performanceID", performanceHandler.HandleGetPerformance)
	}

	reservations := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		reservations.POST("/reservations", reservationHandler.HandleCreateReservation)
		reservations.GET("/reservations", reservationHandler.HandleGetReservations)
	}

	s.Router.GET("/", v1.HandleHealthcheck)
	s.Router.GET("/healthcheck", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Theatre API"
	docs.SwaggerInfo.Description = "Ticket reservation API for theatre performances."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
