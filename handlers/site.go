package handlers

import (
	"net/http"

	"sanctyr/sitedata"
)

func (h *SiteHTTPHandler) HandleEcosystem(w http.ResponseWriter, r *http.Request) {
	h.writeJSONResponse(w, http.StatusOK, sitedata.EcosystemItems())
}

func (h *SiteHTTPHandler) HandleEvents(w http.ResponseWriter, r *http.Request) {
	h.writeJSONResponse(w, http.StatusOK, sitedata.Events())
}

func (h *SiteHTTPHandler) HandleLore(w http.ResponseWriter, r *http.Request) {
	h.writeJSONResponse(w, http.StatusOK, sitedata.LoreSections())
}

func (h *SiteHTTPHandler) HandleDonations(w http.ResponseWriter, r *http.Request) {
	h.writeJSONResponse(w, http.StatusOK, sitedata.DonationTiers())
}

func (h *SiteHTTPHandler) HandleGallery(w http.ResponseWriter, r *http.Request) {
	h.writeJSONResponse(w, http.StatusOK, sitedata.GalleryItems())
}
