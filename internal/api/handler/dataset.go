package handler

import (
	"net/http"
	"strconv"

	"github.com/vfg2006/sales-visualiser/infrastructure/repository"
	"github.com/vfg2006/sales-visualiser/internal/usecases/visualising"
	"github.com/vfg2006/sales-visualiser/pkg/apiErrors"
	"github.com/vfg2006/sales-visualiser/pkg/log"
)

const maxLoadRunsLimit = 500

// GetDatasetSummary descreve o dataset carregado na inicialização
func GetDatasetSummary(visualiser visualising.Visualiser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, visualiser.Summary())
	}
}

// ListLoadRuns devolve o histórico de cargas. loadRunRepo é nil quando o banco está desabilitado.
func ListLoadRuns(loadRunRepo repository.LoadRunRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if loadRunRepo == nil {
			apiErrors.WriteError(w, apiErrors.ErrFeatureDisabled, "Histórico de cargas indisponível: banco de dados desabilitado", nil)
			return
		}

		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 || parsed > maxLoadRunsLimit {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Parâmetro limit inválido", map[string]any{"max": maxLoadRunsLimit})
				return
			}
			limit = parsed
		}

		runs, err := loadRunRepo.List(r.Context(), limit)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("dataset: failed to list load runs")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar histórico de cargas", nil)
			return
		}

		writeJSON(w, http.StatusOK, runs)
	}
}
