package http

import (
	"github.com/go-chi/chi/v5"
)

func (c *Controller) InitRoutes(r chi.Router) {
	r.Get("/ping", c.Ping)

	r.Route("/api", func(r chi.Router) {
		r.Post("/wallet/connect", c.ConnectWallet)

		r.Get("/orders", c.ListOrders)
		r.Route("/orders/tracked", func(r chi.Router) {
			r.Get("/", c.TrackedIDs)
			r.Post("/", c.TrackOrder)
			r.Post("/reset", c.ResetTracked)
			r.Delete("/{id}", c.UntrackOrder)
		})

		r.Post("/order", c.CreateOrder)
		r.Get("/order/{id}", c.GetOrder)
		r.Get("/order/{id}/payment", c.PaymentStatus)
		r.Get("/order/{id}/payment/info", c.PaymentInfo)
		r.Post("/order/{id}/payment/confirm", c.ConfirmPayment)

		r.Get("/status/{status}", c.StatusView)
		r.Get("/blockchain", c.Blockchain)
		r.Get("/price", c.Price)
		r.Get("/brc20", c.BRC20)
	})
}
