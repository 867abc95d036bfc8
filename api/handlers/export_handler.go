package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/goto/salt/log"

	"github.com/meridianhq/meridian/asset"
	"github.com/meridianhq/meridian/export"
)

// ExportHandler serves downloads of the register in exchange formats.
type ExportHandler struct {
	logger       log.Logger
	assetService *asset.Service
	now          func() time.Time
}

func NewExportHandler(logger log.Logger, assetService *asset.Service) *ExportHandler {
	return &ExportHandler{
		logger:       logger,
		assetService: assetService,
		now:          time.Now,
	}
}

func (h *ExportHandler) Download(w http.ResponseWriter, r *http.Request) {
	cfg := export.Config{Format: mux.Vars(r)["format"]}
	if err := cfg.Validate(); err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	assets, err := h.assetService.List(r.Context(), queryFilter(r.URL.Query()))
	if err != nil {
		internalServerError(w, h.logger, err.Error())
		return
	}

	var body []byte
	switch cfg.Format {
	case export.FormatGeoJSON:
		body, err = export.GeoJSON(assets)
		if err != nil {
			internalServerError(w, h.logger, err.Error())
			return
		}
	default:
		body = []byte(export.CSV(assets))
	}

	w.Header().Set("Content-Type", export.ContentType(cfg.Format))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename(cfg.Format, h.now())))
	w.Write(body)
}
