package server

// Server aggregates the entity-specific HTTP servers behind one route
// registrar.
type Server struct {
	RecommendServer
	CardServer
	BusinessServer
}

func NewServer(
	recommendServer RecommendServer,
	cardServer CardServer,
	businessServer BusinessServer,
) Server {
	return Server{
		RecommendServer: recommendServer,
		CardServer:      cardServer,
		BusinessServer:  businessServer,
	}
}
