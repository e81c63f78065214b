package http

import (
	"database/sql"
	"net/http"

	"github.com/gorilla/mux"

	"pgstay-backend/internal/repository"
	"pgstay-backend/internal/security"
	"pgstay-backend/internal/service"
)

// Handlers bundles the dependencies the router needs.
type Handlers struct {
	DB         *sql.DB
	Tokens     security.TokenManager
	TenantRepo repository.TenantRepository

	Bookings      service.BookingService
	Checkout      service.CheckoutService
	Residents     service.ResidentService
	Rooms         service.RoomService
	Beds          service.BedService
	Payments      service.PaymentService
	Notifications service.NotificationService
}

// NewRouter wires the full HTTP surface. Everything under /api sits behind
// the auth and tenant middleware; /health is open.
func NewRouter(h Handlers) http.Handler {
	booking := NewBookingHandler(h.Bookings)
	checkout := NewCheckoutHandler(h.Checkout)
	resident := NewResidentHandler(h.Residents)
	room := NewRoomHandler(h.Rooms)
	bed := NewBedHandler(h.Beds)
	payment := NewPaymentHandler(h.Payments)
	notification := NewNotificationHandler(h.Notifications)
	health := NewHealthHandler(h.DB)

	r := mux.NewRouter()
	r.Use(RequestIDMiddleware)

	r.HandleFunc("/health", health.Check).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(AuthMiddleware(h.Tokens))
	api.Use(TenantMiddleware(h.TenantRepo))

	// Bookings
	api.HandleFunc("/bookings", booking.Create).Methods(http.MethodPost)
	api.HandleFunc("/bookings/my", booking.ListMine).Methods(http.MethodGet)
	api.HandleFunc("/bookings/pending", RequireStaff(booking.ListPending)).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{id}/approve", RequireStaff(booking.Approve)).Methods(http.MethodPut)
	api.HandleFunc("/bookings/{id}/reject", RequireStaff(booking.Reject)).Methods(http.MethodPut)

	// Rooms and beds
	api.HandleFunc("/rooms", room.List).Methods(http.MethodGet)
	api.HandleFunc("/rooms", RequireStaff(room.Create)).Methods(http.MethodPost)
	api.HandleFunc("/rooms/{id}", RequireStaff(room.Update)).Methods(http.MethodPut)
	api.HandleFunc("/rooms/{roomId}/beds", bed.ListByRoom).Methods(http.MethodGet)
	api.HandleFunc("/beds", RequireStaff(bed.Create)).Methods(http.MethodPost)
	api.HandleFunc("/beds/{id}", RequireStaff(bed.Update)).Methods(http.MethodPut)

	// Residency and settlement
	api.HandleFunc("/residents/active", RequireStaff(resident.ListActive)).Methods(http.MethodGet)
	api.HandleFunc("/checkout/me", checkout.MySettlement).Methods(http.MethodGet)
	api.HandleFunc("/checkout/{residentId}/preview", RequireStaff(checkout.Preview)).Methods(http.MethodGet)
	api.HandleFunc("/checkout/{residentId}/confirm", RequireStaff(checkout.Confirm)).Methods(http.MethodPost)

	// Payments
	api.HandleFunc("/payments", payment.Create).Methods(http.MethodPost)
	api.HandleFunc("/payments/pending", RequireStaff(payment.ListPending)).Methods(http.MethodGet)
	api.HandleFunc("/payments/{id}/verify", RequireStaff(payment.Verify)).Methods(http.MethodPut)
	api.HandleFunc("/payments/{id}/reject", RequireStaff(payment.Reject)).Methods(http.MethodPut)

	// Notifications
	api.HandleFunc("/notifications", notification.List).Methods(http.MethodGet)
	api.HandleFunc("/notifications/{id}/read", notification.MarkAsRead).Methods(http.MethodPut)

	return r
}
