package handlers

import (
	"net/http"

	"github.com/goto/salt/log"

	"github.com/meridianhq/meridian/quality"
)

// QualityHandler exposes the data quality report.
type QualityHandler struct {
	logger         log.Logger
	qualityService *quality.Service
}

func NewQualityHandler(logger log.Logger, qualityService *quality.Service) *QualityHandler {
	return &QualityHandler{
		logger:         logger,
		qualityService: qualityService,
	}
}

func (h *QualityHandler) GetIssues(w http.ResponseWriter, r *http.Request) {
	issues, err := h.qualityService.ListIssues(r.Context())
	if err != nil {
		internalServerError(w, h.logger, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, issues)
}
