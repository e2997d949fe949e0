package booking

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"log"
	"net/http"
	"time"

	"gatherly/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

const hmacSecret = "your-very-secret-key" // keep secure

// qrPayload returns eventID|bookingID|timestamp|signature so the door scanner
// can verify a confirmation offline.
func qrPayload(eventID, bookingID string) string {
	data := fmt.Sprintf("%s|%s|%d", eventID, bookingID, time.Now().Unix())
	h := hmac.New(sha256.New, []byte(hmacSecret))
	h.Write([]byte(data))
	sig := base64.StdEncoding.EncodeToString(h.Sum(nil))
	return fmt.Sprintf("%s|%s", data, sig)
}

// PrintConfirmation renders a booking confirmation PDF with a signed QR code.
func (h *Handler) PrintConfirmation(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	booking, err := h.Store.GetBooking(r.Context(), ps.ByName("bookingid"))
	if err != nil {
		utils.RespondWithError(w, utils.StatusFor(err), err.Error())
		return
	}

	event, err := h.Store.GetEventByID(r.Context(), booking.EventID)
	if err != nil {
		utils.RespondWithError(w, utils.StatusFor(err), err.Error())
		return
	}

	qrPNG, err := qrcode.Encode(qrPayload(event.EventID, booking.BookingID), qrcode.Medium, 256)
	if err != nil {
		log.Printf("qr encode for booking %s: %v", booking.BookingID, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Booking Confirmation")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Event: %s", event.Title))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Date: %s at %s", event.Date, event.Time))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Venue: %s, %s", event.Venue, event.Location))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Booked by: %s", booking.Email))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Booking ID: %s", booking.BookingID))
	pdf.Ln(12)

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 40, 40, 40, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		log.Printf("pdf output for booking %s: %v", booking.BookingID, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=booking-"+booking.BookingID+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
