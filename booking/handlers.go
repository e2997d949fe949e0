package booking

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"gatherly/db"
	"gatherly/live"
	"gatherly/models"
	"gatherly/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	Store *db.Store
	Hub   *live.Hub
}

func NewHandler(store *db.Store, hub *live.Hub) *Handler {
	return &Handler{Store: store, Hub: hub}
}

func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var booking models.Booking
	if err := json.NewDecoder(r.Body).Decode(&booking); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	booking.BookingID = utils.GetUUID()

	if err := Prepare(&booking, time.Now().UTC()); err != nil {
		utils.RespondWithError(w, utils.StatusFor(err), err.Error())
		return
	}

	if err := CheckEvent(r.Context(), h.Store, booking.EventID); err != nil {
		utils.RespondWithError(w, utils.StatusFor(err), err.Error())
		return
	}

	if err := h.Store.InsertBooking(r.Context(), &booking); err != nil {
		log.Printf("insert booking %s: %v", booking.BookingID, err)
		utils.RespondWithError(w, utils.StatusFor(err), err.Error())
		return
	}

	h.broadcast(&booking)
	utils.RespondWithJSON(w, http.StatusCreated, booking)
}

func (h *Handler) GetEventBookings(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	bookings, err := h.Store.ListBookingsByEvent(r.Context(), ps.ByName("eventid"))
	if err != nil {
		utils.RespondWithError(w, utils.StatusFor(err), err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"bookings": bookings})
}

func (h *Handler) broadcast(booking *models.Booking) {
	data, err := json.Marshal(utils.M{
		"type":      "booking-created",
		"eventid":   booking.EventID,
		"bookingid": booking.BookingID,
	})
	if err != nil {
		log.Printf("marshal booking broadcast: %v", err)
		return
	}
	h.Hub.Broadcast(booking.EventID, data)
}
