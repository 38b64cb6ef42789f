package transport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/ijalalfrz/tequila-client/internal/app/dto"
	"github.com/ijalalfrz/tequila-client/internal/app/endpoints"
	httptransport "github.com/ijalalfrz/tequila-client/internal/pkg/transport/http"
	"github.com/ijalalfrz/tequila-client/pkg/tequila"
)

// MakeHTTPRouter builds the HTTP router with all the service endpoints.
func MakeHTTPRouter(endpts endpoints.Endpoints) *chi.Mux {
	router := chi.NewRouter()

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.Route("/api/v1", func(router chi.Router) {
		router.Use(
			httptransport.RequestID(),
			httptransport.CORSMiddleware(),
			httptransport.Recoverer(slog.Default()),
			render.SetContentType(render.ContentTypeJSON),
		)

		router.Route("/locations", func(router chi.Router) {
			location := endpts.Location

			router.Post("/query", httptransport.MakeHandlerFunc(
				location.SearchByQuery,
				httptransport.DecodeRequest[dto.Request[tequila.SearchByQueryParams]],
				httptransport.ResponseWithBody,
			))
			router.Post("/radius", httptransport.MakeHandlerFunc(
				location.SearchByRadius,
				httptransport.DecodeRequest[dto.Request[tequila.SearchByRadiusParams]],
				httptransport.ResponseWithBody,
			))
			router.Post("/box", httptransport.MakeHandlerFunc(
				location.SearchByBox,
				httptransport.DecodeRequest[dto.Request[tequila.SearchByBoxParams]],
				httptransport.ResponseWithBody,
			))
			router.Post("/id", httptransport.MakeHandlerFunc(
				location.SearchByID,
				httptransport.DecodeRequest[dto.Request[tequila.SearchByIDParams]],
				httptransport.ResponseWithBody,
			))
			router.Post("/dump", httptransport.MakeHandlerFunc(
				location.GetDump,
				httptransport.DecodeRequest[dto.Request[tequila.GetDumpParams]],
				httptransport.ResponseWithBody,
			))
			router.Post("/topdestinations", httptransport.MakeHandlerFunc(
				location.SearchTopDestinations,
				httptransport.DecodeRequest[dto.Request[tequila.TopDestinationsParams]],
				httptransport.ResponseWithBody,
			))
			router.Post("/hashtag", httptransport.MakeHandlerFunc(
				location.SearchByHashtag,
				httptransport.DecodeRequest[dto.Request[tequila.SearchByHashtagParams]],
				httptransport.ResponseWithBody,
			))
			router.Post("/tophashtags", httptransport.MakeHandlerFunc(
				location.SearchTopHashtags,
				httptransport.DecodeRequest[dto.Request[tequila.TopHashtagsParams]],
				httptransport.ResponseWithBody,
			))
			router.Post("/slug", httptransport.MakeHandlerFunc(
				location.SearchBySlug,
				httptransport.DecodeRequest[dto.Request[tequila.SearchBySlugParams]],
				httptransport.ResponseWithBody,
			))
		})

		router.Post("/search", httptransport.MakeHandlerFunc(
			endpts.Search.SearchFlights,
			httptransport.DecodeRequest[dto.Request[tequila.SearchFlightsParams]],
			httptransport.ResponseWithBody,
		))

		router.Route("/booking", func(router chi.Router) {
			booking := endpts.Booking

			router.Post("/check_flights", httptransport.MakeHandlerFunc(
				booking.CheckFlights,
				httptransport.DecodeRequest[dto.Request[tequila.CheckFlightsParams]],
				httptransport.ResponseWithBody,
			))
			router.Post("/save_booking", httptransport.MakeHandlerFunc(
				booking.SaveBooking,
				httptransport.DecodeRequest[dto.SaveBookingRequest],
				httptransport.ResponseWithBody,
			))
			router.Post("/confirm_payment", httptransport.MakeHandlerFunc(
				booking.ConfirmPayment,
				httptransport.DecodeRequest[dto.Request[tequila.ConfirmPaymentParams]],
				httptransport.ResponseWithBody,
			))
			router.Post("/ancillaries_offers", httptransport.MakeHandlerFunc(
				booking.AncillariesOffers,
				httptransport.DecodeRequest[dto.Request[tequila.AncillariesOffersParams]],
				httptransport.ResponseWithBody,
			))
		})

		router.Route("/manage", func(router chi.Router) {
			manage := endpts.Manage

			router.Post("/create_auth_token", httptransport.MakeHandlerFunc(
				manage.CreateAuthToken,
				httptransport.DecodeParams[dto.CreateAuthTokenRequest],
				httptransport.ResponseWithBody,
			))
			router.Post("/refunds", httptransport.MakeHandlerFunc(
				manage.CreateRefunds,
				httptransport.DecodeRequest[dto.RefundsRequest],
				httptransport.ResponseWithBody,
			))
			router.Get("/bookings/{booking_id}/passengers", httptransport.MakeHandlerFunc(
				manage.GetPassengers,
				httptransport.DecodeParams[dto.PassengersRequest],
				httptransport.ResponseWithBody,
			))
			router.Patch("/bookings/{booking_id}/passengers", httptransport.MakeHandlerFunc(
				manage.UpdatePassengerPassport,
				httptransport.DecodeRequest[dto.UpdatePassportRequest],
				httptransport.ResponseWithBody,
			))
		})
	})

	return router
}
