package home

import (
	"log"
	"net/http"
	"strings"
	"time"

	"gatherly/db"
	"gatherly/models"
	"gatherly/rdx"
	"gatherly/utils"

	"github.com/julienschmidt/httprouter"
)

const summaryTTL = 60 * time.Second

type Handler struct {
	Store *db.Store
	Cache *rdx.Cache
}

func NewHandler(store *db.Store, cache *rdx.Cache) *Handler {
	return &Handler{Store: store, Cache: cache}
}

// GetHomeContent serves the landing page sections as JSON.
func (h *Handler) GetHomeContent(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	section := strings.ToLower(ps.ByName("section"))

	var data any
	var err error
	switch section {
	case "events":
		data, err = h.eventCards(r)
	case "news":
		data = getNews()
	case "trends":
		data = getTrends()
	default:
		utils.RespondWithError(w, http.StatusNotFound, "Invalid home section")
		return
	}
	if err != nil {
		log.Printf("home %s: %v", section, err)
		utils.RespondWithError(w, utils.StatusFor(err), "Internal Server Error")
		return
	}

	w.Header().Set("Cache-Control", "public, max-age=60")
	utils.RespondWithJSON(w, http.StatusOK, data)
}

// eventCards is cache-aside over the store: summaries sit in Redis for a
// minute and get deleted on every event write. When the store has nothing
// yet, the static sample cards keep the landing page populated.
func (h *Handler) eventCards(r *http.Request) ([]models.EventSummary, error) {
	ctx := r.Context()

	var cached []models.EventSummary
	hit, err := h.Cache.GetJSON(ctx, rdx.HomeEventsKey, &cached)
	if err != nil {
		log.Printf("home cache read: %v", err)
	} else if hit {
		return cached, nil
	}

	summaries, err := h.Store.EventSummaries(ctx, 12)
	if err != nil {
		return nil, err
	}
	if len(summaries) == 0 {
		summaries = sampleEvents()
	}

	if err := h.Cache.SetJSON(ctx, rdx.HomeEventsKey, summaries, summaryTTL); err != nil {
		log.Printf("home cache write: %v", err)
	}
	return summaries, nil
}

// The original landing page shipped with static sample cards; they remain
// the fallback for an empty store.
func sampleEvents() []models.EventSummary {
	return []models.EventSummary{
		{
			Image:    "/static/eventpic/banner/sample-gophercon.jpg",
			Title:    "GopherCon Community Day",
			Slug:     "gophercon-community-day",
			Location: "Berlin",
			Date:     "2026-09-12",
			Time:     "09:30",
		},
		{
			Image:    "/static/eventpic/banner/sample-cloudnight.jpg",
			Title:    "Cloud Night Meetup",
			Slug:     "cloud-night-meetup",
			Location: "Amsterdam",
			Date:     "2026-10-01",
			Time:     "18:00",
		},
		{
			Image:    "/static/eventpic/banner/sample-dataday.jpg",
			Title:    "Data Day",
			Slug:     "data-day",
			Location: "Lisbon",
			Date:     "2026-11-20",
			Time:     "10:00",
		},
	}
}

func getNews() []map[string]string {
	return []map[string]string{
		{"title": "New Event System Launch", "link": "/news/launch"},
		{"title": "Booking Confirmations Now Ship With QR Codes", "link": "/news/qr"},
	}
}

func getTrends() []string {
	return []string{"#Conferences", "#Meetups", "#Workshops", "#LiveTalks"}
}
