package http

import (
	"net/http"

	"github.com/MKhiriev/go-ads-board/internal/logger"
	"github.com/MKhiriev/go-ads-board/internal/utils"
	"github.com/MKhiriev/go-ads-board/models"
)

// board lists every ad. Signed-in visitors get the member projection with
// the author's email, anonymous visitors the public one.
func (h *Handler) board(w http.ResponseWriter, r *http.Request) {
	viewer := identity(r)

	listings, err := h.services.AdService.ListAds(r.Context())
	if err != nil {
		h.fail(w, r, err, "", nil)
		return
	}

	utils.WriteJSON(w, models.BoardView{
		Ads:      models.ProjectAds(listings, viewer),
		LoggedIn: viewer.IsAuthenticated(),
		IsAdmin:  viewer.IsAdmin,
	}, http.StatusOK)
}

func (h *Handler) createAdPage(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.FormView{Form: formCreateAd}, http.StatusOK)
}

func (h *Handler) createAd(w http.ResponseWriter, r *http.Request) {
	if err := h.parseForm(w, r); err != nil {
		h.fail(w, r, err, formCreateAd, nil)
		return
	}

	draft := formDraft(r)
	ad, err := h.services.AdService.CreateAd(r.Context(), identity(r), draft)
	if err != nil {
		h.fail(w, r, err, formCreateAd, draft)
		return
	}

	logger.FromRequest(r).Info().Int64("ad_id", ad.ID).Int64("user_id", ad.UserID).Msg("ad created")
	http.Redirect(w, r, boardPath, http.StatusFound)
}

func (h *Handler) editAdPage(w http.ResponseWriter, r *http.Request) {
	adID, err := pathID(r)
	if err != nil {
		h.fail(w, r, err, "", nil)
		return
	}

	ad, err := h.services.AdService.GetOwnAd(r.Context(), identity(r), adID)
	if err != nil {
		h.fail(w, r, err, "", nil)
		return
	}

	utils.WriteJSON(w, models.FormView{Form: formEditAd, Values: ad}, http.StatusOK)
}

func (h *Handler) editAd(w http.ResponseWriter, r *http.Request) {
	adID, err := pathID(r)
	if err != nil {
		h.fail(w, r, err, "", nil)
		return
	}
	if err = h.parseForm(w, r); err != nil {
		h.fail(w, r, err, formEditAd, nil)
		return
	}

	draft := formDraft(r)
	if _, err = h.services.AdService.EditAd(r.Context(), identity(r), adID, draft); err != nil {
		h.fail(w, r, err, formEditAd, draft)
		return
	}

	logger.FromRequest(r).Info().Int64("ad_id", adID).Msg("ad edited")
	http.Redirect(w, r, boardPath, http.StatusFound)
}

func (h *Handler) deleteAd(w http.ResponseWriter, r *http.Request) {
	adID, err := pathID(r)
	if err != nil {
		h.fail(w, r, err, "", nil)
		return
	}

	if err = h.services.AdService.DeleteAd(r.Context(), identity(r), adID); err != nil {
		h.fail(w, r, err, "", nil)
		return
	}

	logger.FromRequest(r).Info().Int64("ad_id", adID).Msg("ad deleted by owner")
	http.Redirect(w, r, boardPath, http.StatusFound)
}

func (h *Handler) deleteAdAsAdmin(w http.ResponseWriter, r *http.Request) {
	adID, err := pathID(r)
	if err != nil {
		h.fail(w, r, err, "", nil)
		return
	}

	if err = h.services.AdService.DeleteAdAsAdmin(r.Context(), identity(r), adID); err != nil {
		h.fail(w, r, err, "", nil)
		return
	}

	logger.FromRequest(r).Info().Int64("ad_id", adID).Msg("ad deleted by administrator")
	http.Redirect(w, r, boardPath, http.StatusFound)
}
