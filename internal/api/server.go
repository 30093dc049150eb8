package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/saywin/airport-api-service/docs"
	"github.com/saywin/airport-api-service/internal/access"
	v1 "github.com/saywin/airport-api-service/internal/api/handler/v1"
	"github.com/saywin/airport-api-service/internal/api/middleware"
	"github.com/saywin/airport-api-service/internal/config"
	"github.com/saywin/airport-api-service/internal/repository"
	"github.com/saywin/airport-api-service/internal/repository/dao"
	"github.com/saywin/airport-api-service/internal/service"
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

	userSvc := service.NewUserService(repository.NewUserRepository(dao.NewUserDAO(db)))

	authHandler := s.initAuthHandler(db)
	userHandler := v1.NewUserHandler(userSvc)
	airportHandler := s.initAirportHandler(db)
	routeHandler := s.initRouteHandler(db)
	airplaneHandler := s.initAirplaneHandler(db)
	crewHandler := s.initCrewHandler(db)
	flightHandler := s.initFlightHandler(db)
	orderHandler := s.initOrderHandler(db, userSvc)

	s.MountHandlers(handlers{
		auth:     authHandler,
		user:     userHandler,
		airport:  airportHandler,
		route:    routeHandler,
		airplane: airplaneHandler,
		crew:     crewHandler,
		flight:   flightHandler,
		order:    orderHandler,
	}, userSvc)

	return s
}

type handlers struct {
	auth     v1.AuthHandler
	user     v1.UserHandler
	airport  v1.AirportHandler
	route    v1.RouteHandler
	airplane v1.AirplaneHandler
	crew     v1.CrewHandler
	flight   v1.FlightHandler
	order    v1.OrderHandler
}

func (s *Server) initAuthHandler(db *gorm.DB) v1.AuthHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewAuthService(repo)

	return v1.NewAuthHandler(s.Config.API.JWTSigningKey, svc)
}

func (s *Server) initAirportHandler(db *gorm.DB) v1.AirportHandler {
	airportDAO := dao.NewAirportDAO(db)
	repo := repository.NewAirportRepository(airportDAO)
	svc := service.NewAirportService(repo)

	return v1.NewAirportHandler(svc)
}

func (s *Server) initRouteHandler(db *gorm.DB) v1.RouteHandler {
	routeDAO := dao.NewRouteDAO(db)
	repo := repository.NewRouteRepository(routeDAO)
	airportRepo := repository.NewAirportRepository(dao.NewAirportDAO(db))
	svc := service.NewRouteService(repo, airportRepo)

	return v1.NewRouteHandler(svc)
}

func (s *Server) initAirplaneHandler(db *gorm.DB) v1.AirplaneHandler {
	typeRepo := repository.NewAirplaneTypeRepository(dao.NewAirplaneTypeDAO(db))
	repo := repository.NewAirplaneRepository(dao.NewAirplaneDAO(db))
	svc := service.NewAirplaneService(repo, typeRepo)

	return v1.NewAirplaneHandler(svc)
}

func (s *Server) initCrewHandler(db *gorm.DB) v1.CrewHandler {
	crewDAO := dao.NewCrewDAO(db)
	repo := repository.NewCrewRepository(crewDAO)
	svc := service.NewCrewService(repo)

	return v1.NewCrewHandler(svc)
}

func (s *Server) initFlightHandler(db *gorm.DB) v1.FlightHandler {
	repo := repository.NewFlightRepository(dao.NewFlightDAO(db))
	routeRepo := repository.NewRouteRepository(dao.NewRouteDAO(db))
	airplaneRepo := repository.NewAirplaneRepository(dao.NewAirplaneDAO(db))
	crewRepo := repository.NewCrewRepository(dao.NewCrewDAO(db))
	svc := service.NewFlightService(repo, routeRepo, airplaneRepo, crewRepo)

	return v1.NewFlightHandler(svc)
}

func (s *Server) initOrderHandler(db *gorm.DB, userSvc v1.UserService) v1.OrderHandler {
	repo := repository.NewOrderRepository(dao.NewOrderDAO(db))
	flightRepo := repository.NewFlightRepository(dao.NewFlightDAO(db))
	svc := service.NewOrderService(repo, flightRepo)

	return v1.NewOrderHandler(svc, userSvc, s.Config.Pagination.OrderPageSize, s.Config.Pagination.OrderMaxPageSize)
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(h handlers, userSvc middleware.UserGetter) {
	const basePath = "/api/v1"

	authenticator := middleware.NewAuthenticator(s.Config.API.JWTSigningKey)
	enforcer := middleware.NewPolicyEnforcer(userSvc)

	public := s.Router.Group(basePath)
	{
		public.POST("/user/register", h.auth.Signup)
		public.POST("/user/login", h.auth.Login)
	}

	users := s.Router.Group(basePath, authenticator.VerifyJWT())
	{
		users.GET("/user/me", h.user.Me)
	}

	// Reference data: any authenticated user may read, only staff may write.
	airport := s.Router.Group(basePath+"/airport", authenticator.VerifyJWT(), enforcer.Enforce(access.AdminWrite))
	{
		airport.GET("/airports", h.airport.ListAirports)
		airport.POST("/airports", h.airport.CreateAirport)
		airport.GET("/airports/:id", h.airport.GetAirport)
		airport.PUT("/airports/:id", h.airport.UpdateAirport)
		airport.DELETE("/airports/:id", h.airport.DeleteAirport)

		airport.GET("/routes", h.route.ListRoutes)
		airport.POST("/routes", h.route.CreateRoute)
		airport.GET("/routes/:id", h.route.GetRoute)
		airport.PUT("/routes/:id", h.route.UpdateRoute)
		airport.DELETE("/routes/:id", h.route.DeleteRoute)

		airport.GET("/airplane-types", h.airplane.ListAirplaneTypes)
		airport.POST("/airplane-types", h.airplane.CreateAirplaneType)
		airport.GET("/airplane-types/:id", h.airplane.GetAirplaneType)
		airport.PUT("/airplane-types/:id", h.airplane.UpdateAirplaneType)
		airport.DELETE("/airplane-types/:id", h.airplane.DeleteAirplaneType)

		airport.GET("/airplanes", h.airplane.ListAirplanes)
		airport.POST("/airplanes", h.airplane.CreateAirplane)
		airport.GET("/airplanes/:id", h.airplane.GetAirplane)
		airport.PUT("/airplanes/:id", h.airplane.UpdateAirplane)
		airport.DELETE("/airplanes/:id", h.airplane.DeleteAirplane)

		airport.GET("/crew", h.crew.ListCrew)
		airport.POST("/crew", h.crew.CreateCrew)
		airport.GET("/crew/:id", h.crew.GetCrew)
		airport.PUT("/crew/:id", h.crew.UpdateCrew)
		airport.DELETE("/crew/:id", h.crew.DeleteCrew)

		airport.GET("/flights", h.flight.ListFlights)
		airport.POST("/flights", h.flight.CreateFlight)
		airport.GET("/flights/:id", h.flight.GetFlight)
		airport.PUT("/flights/:id", h.flight.UpdateFlight)
		airport.DELETE("/flights/:id", h.flight.DeleteFlight)
	}

	// Orders are visible only to their owner; scoping happens in the
	// repository query.
	orders := s.Router.Group(basePath+"/user/orders", authenticator.VerifyJWT(), enforcer.Enforce(access.OwnerScoped))
	{
		orders.GET("", h.order.ListOrders)
		orders.POST("", h.order.CreateOrder)
		orders.GET("/:id", h.order.GetOrder)
	}

	s.Router.GET("/", v1.HealthCheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Airport API"
	docs.SwaggerInfo.Description = "Flight booking API for tracking flights from airports across the globe."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
