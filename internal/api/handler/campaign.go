package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/ad-control-api/internal/usecases/controlling"
	"github.com/vfg2006/ad-control-api/pkg/log"
	"github.com/vfg2006/ad-control-api/pkg/middleware"
)

// SetCampaignStatus recebe {status, account_id?}. O status é validado pelo caso de uso.
func SetCampaignStatus(service controlling.ControlService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req controlling.SetCampaignStatusRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		req.CampaignID = httprouter.ParamsFromContext(r.Context()).ByName("id")
		actor := middleware.ActorFromContext(r.Context())

		log.ForContext(r.Context()).WithFields(log.Fields{
			"campaign_id":  req.CampaignID,
			"performed_by": actor,
		}).Info("INIT - SetCampaignStatus")

		action, err := service.SetCampaignStatus(r.Context(), actor, req)
		if err != nil {
			writeUsecaseError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, action)
	})
}
