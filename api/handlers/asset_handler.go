package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/goto/salt/log"

	"github.com/meridianhq/meridian/asset"
)

// AssetHandler exposes a REST interface to the asset register
type AssetHandler struct {
	logger       log.Logger
	assetService *asset.Service
}

func NewAssetHandler(logger log.Logger, assetService *asset.Service) *AssetHandler {
	return &AssetHandler{
		logger:       logger,
		assetService: assetService,
	}
}

func (h *AssetHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	assets, err := h.assetService.List(r.Context(), queryFilter(r.URL.Query()))
	if err != nil {
		internalServerError(w, h.logger, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, assets)
}

func (h *AssetHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	assetID := mux.Vars(r)["id"]

	ast, err := h.assetService.GetByID(r.Context(), assetID)
	if err != nil {
		if errors.Is(err, asset.ErrEmptyID) {
			WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		if errors.As(err, new(asset.NotFoundError)) {
			WriteJSONError(w, http.StatusNotFound, err.Error())
			return
		}
		internalServerError(w, h.logger, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, ast)
}

func (h *AssetHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !requireEditor(w, r) {
		return
	}

	var payload assetPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteJSONError(w, http.StatusBadRequest, bodyParserErrorMsg(err))
		return
	}
	if err := validateStatus(payload.Status); err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	ast := payload.toAsset()
	if err := h.assetService.Create(r.Context(), &ast); err != nil {
		if errors.Is(err, asset.ErrAllocationExhausted) || errors.As(err, new(asset.DuplicateIDError)) {
			h.logger.Warn("identifier allocation failed", "error", err)
			WriteJSONError(w, http.StatusServiceUnavailable, "could not allocate a free identifier, retry later")
			return
		}
		internalServerError(w, h.logger, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, ast)
}

func (h *AssetHandler) Replace(w http.ResponseWriter, r *http.Request) {
	if !requireEditor(w, r) {
		return
	}

	assetID := mux.Vars(r)["id"]

	var payload assetPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteJSONError(w, http.StatusBadRequest, bodyParserErrorMsg(err))
		return
	}
	if err := validateStatus(payload.Status); err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	ast := payload.toAsset()
	ast.ID = assetID
	if err := h.assetService.Replace(r.Context(), &ast); err != nil {
		if errors.Is(err, asset.ErrEmptyID) {
			WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		if errors.As(err, new(asset.NotFoundError)) {
			WriteJSONError(w, http.StatusNotFound, err.Error())
			return
		}
		internalServerError(w, h.logger, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, ast)
}

func (h *AssetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !requireEditor(w, r) {
		return
	}

	assetID := mux.Vars(r)["id"]

	if err := h.assetService.Delete(r.Context(), assetID); err != nil {
		if errors.Is(err, asset.ErrEmptyID) {
			WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		if errors.As(err, new(asset.NotFoundError)) {
			WriteJSONError(w, http.StatusNotFound, err.Error())
			return
		}
		internalServerError(w, h.logger, err.Error())
		return
	}

	writeJSON(w, http.StatusNoContent, nil)
}
