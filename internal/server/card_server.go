package server

import (
	"net/http"

	"cardwise/internal/domain/entity"
	"cardwise/pkg/errcodes"
	"cardwise/pkg/httpx/reply"
	"cardwise/pkg/lox"
	"cardwise/pkg/rest"

	"git.appkode.ru/pub/go/failure"
)

type catalogProvider interface {
	Snapshot() []entity.Card
}

type CardServer struct {
	catalog catalogProvider
}

func NewCardServer(catalog catalogProvider) CardServer {
	return CardServer{
		catalog: catalog,
	}
}

func (s CardServer) getV1Cards(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	reply.JSON(ctx, w, http.StatusOK, rest.CardList{
		Cards: lox.Map(s.catalog.Snapshot(), newRESTCard),
	})

	return nil
}

func (s CardServer) getV1Card(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()
	id := r.PathValue("id")

	for _, card := range s.catalog.Snapshot() {
		if card.ID == id {
			reply.JSON(ctx, w, http.StatusOK, newRESTCard(card))
			return nil
		}
	}

	return failure.NewNotFoundError(
		"card not found",
		failure.WithCode(errcodes.CardNotFound),
	)
}
