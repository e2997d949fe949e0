package events

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"gatherly/db"
	"gatherly/live"
	"gatherly/models"
	"gatherly/rdx"
	"gatherly/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	Store *db.Store
	Cache *rdx.Cache
	Hub   *live.Hub
}

func NewHandler(store *db.Store, cache *rdx.Cache, hub *live.Hub) *Handler {
	return &Handler{Store: store, Cache: cache, Hub: hub}
}

func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var event models.Event
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	event.EventID = utils.GenerateID(14)

	if err := Prepare(nil, &event, time.Now().UTC()); err != nil {
		utils.RespondWithError(w, utils.StatusFor(err), err.Error())
		return
	}

	if err := h.Store.InsertEvent(r.Context(), &event); err != nil {
		log.Printf("insert event %s: %v", event.Slug, err)
		utils.RespondWithError(w, utils.StatusFor(err), err.Error())
		return
	}

	h.bustHomeCache(r.Context())
	utils.RespondWithJSON(w, http.StatusCreated, event)
}

func (h *Handler) EditEvent(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	slug := ps.ByName("slug")
	prev, err := h.Store.GetEventBySlug(r.Context(), slug)
	if err != nil {
		utils.RespondWithError(w, utils.StatusFor(err), err.Error())
		return
	}

	var next models.Event
	if err := json.NewDecoder(r.Body).Decode(&next); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if err := Prepare(prev, &next, time.Now().UTC()); err != nil {
		utils.RespondWithError(w, utils.StatusFor(err), err.Error())
		return
	}

	if err := h.Store.ReplaceEvent(r.Context(), &next); err != nil {
		log.Printf("replace event %s: %v", next.EventID, err)
		utils.RespondWithError(w, utils.StatusFor(err), err.Error())
		return
	}

	h.bustHomeCache(r.Context())
	h.broadcast(next.EventID, "event-updated", utils.M{"event": next})
	utils.RespondWithJSON(w, http.StatusOK, next)
}

func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	event, err := h.Store.GetEventBySlug(r.Context(), ps.ByName("slug"))
	if err != nil {
		utils.RespondWithError(w, utils.StatusFor(err), err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, event)
}

func (h *Handler) GetEvents(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	page := 1
	limit := 10
	if s := r.URL.Query().Get("page"); s != "" {
		if parsed, err := strconv.Atoi(s); err == nil {
			page = parsed
		}
	}
	if s := r.URL.Query().Get("limit"); s != "" {
		if parsed, err := strconv.Atoi(s); err == nil {
			limit = parsed
		}
	}

	events, err := h.Store.ListEvents(r.Context(), page, limit)
	if err != nil {
		utils.RespondWithError(w, utils.StatusFor(err), err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, events)
}

func (h *Handler) GetEventsCount(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	count, err := h.Store.CountEvents(r.Context())
	if err != nil {
		utils.RespondWithError(w, utils.StatusFor(err), err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"count": count})
}

// EventUpdates subscribes the caller to the live feed for one event. The
// slug is resolved first so subscribers key on the stable event ID.
func (h *Handler) EventUpdates(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	event, err := h.Store.GetEventBySlug(r.Context(), ps.ByName("slug"))
	if err != nil {
		utils.RespondWithError(w, utils.StatusFor(err), err.Error())
		return
	}
	h.Hub.Subscribe(w, r, event.EventID)
}

func (h *Handler) bustHomeCache(ctx context.Context) {
	if err := h.Cache.Del(ctx, rdx.HomeEventsKey); err != nil {
		log.Printf("bust home cache: %v", err)
	}
}

func (h *Handler) broadcast(eventID, kind string, payload utils.M) {
	payload["type"] = kind
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("marshal %s broadcast: %v", kind, err)
		return
	}
	h.Hub.Broadcast(eventID, data)
}
