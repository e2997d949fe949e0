package events

import (
	"log"
	"net/http"
	"os"
	"path/filepath"

	"gatherly/utils"

	"github.com/disintegration/imaging"
	"github.com/julienschmidt/httprouter"
)

var eventpicUploadPath = filepath.Join("static", "eventpic")

// UploadBanner saves the posted banner image for an event and generates a
// 300px card thumbnail. The stored image path becomes the event's image field.
func (h *Handler) UploadBanner(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	event, err := h.Store.GetEventBySlug(r.Context(), ps.ByName("slug"))
	if err != nil {
		utils.RespondWithError(w, utils.StatusFor(err), err.Error())
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Unable to parse form")
		return
	}

	file, _, err := r.FormFile("banner")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing banner file")
		return
	}
	defer file.Close()

	img, err := imaging.Decode(file)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid image file")
		return
	}

	fileName := event.EventID + ".jpg"
	bannerDir := filepath.Join(eventpicUploadPath, "banner")
	thumbDir := filepath.Join(eventpicUploadPath, "thumb")
	for _, dir := range []string{bannerDir, thumbDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Printf("create upload dir %s: %v", dir, err)
			utils.RespondWithError(w, http.StatusInternalServerError, "Error saving banner")
			return
		}
	}

	if err := imaging.Save(img, filepath.Join(bannerDir, fileName)); err != nil {
		log.Printf("save banner for %s: %v", event.EventID, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error saving banner")
		return
	}

	thumb := imaging.Resize(img, 300, 0, imaging.Lanczos)
	if err := imaging.Save(thumb, filepath.Join(thumbDir, fileName)); err != nil {
		log.Printf("save thumbnail for %s: %v", event.EventID, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error saving thumbnail")
		return
	}

	imagePath := "/static/eventpic/banner/" + fileName
	if err := h.Store.SetEventImage(r.Context(), event.EventID, imagePath); err != nil {
		utils.RespondWithError(w, utils.StatusFor(err), err.Error())
		return
	}

	h.bustHomeCache(r.Context())
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"image": imagePath,
		"thumb": "/static/eventpic/thumb/" + fileName,
	})
}
