package server

import (
	"context"
	"fmt"
	"net/http"

	"cardwise/internal/domain/service/recommend"
	"cardwise/internal/domain/value"
	"cardwise/pkg/httpx/reply"
	"cardwise/pkg/httpx/req"
	"cardwise/pkg/rest"
)

type recommendService interface {
	Recommend(ctx context.Context, request recommend.Request) (recommend.Result, error)
}

type RecommendServer struct {
	recommendService recommendService
}

func NewRecommendServer(recommendService recommendService) RecommendServer {
	return RecommendServer{
		recommendService: recommendService,
	}
}

func (s RecommendServer) postV1Recommendations(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.RecommendRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	result, err := s.recommendService.Recommend(ctx, newDomainRecommendRequest(request))
	if err != nil {
		return fmt.Errorf("recommendService.Recommend: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTRecommendResponse(result))

	return nil
}

func newDomainRecommendRequest(request rest.RecommendRequest) recommend.Request {
	domainRequest := recommend.Request{
		Category:     request.Category,
		BusinessID:   request.BusinessID,
		BusinessName: request.BusinessName,
	}

	if request.Lat != nil && request.Lng != nil {
		domainRequest.Coordinates = &value.Coordinates{Lat: *request.Lat, Lng: *request.Lng}
	}

	return domainRequest
}
