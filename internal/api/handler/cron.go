package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-visualiser/pkg/apiErrors"
	"github.com/vfg2006/sales-visualiser/pkg/log"
)

const CronJobTypeDriftCheck = "drift-check"

// CronJob é o que os handlers precisam de um serviço agendado
type CronJob interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron que podem ser disparados manualmente
type CronJobServices struct {
	DatasetDriftCheck CronJob
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		switch cronType {
		case CronJobTypeDriftCheck:
			if services.DatasetDriftCheck == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de verificação de divergência não disponível", nil)
				return
			}
			services.DatasetDriftCheck.TriggerManualSync()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: drift-check", nil)
			return
		}

		logger.WithField("cron_type", cronType).Info("cron: manual run triggered")

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.DatasetDriftCheck != nil {
			status[CronJobTypeDriftCheck] = services.DatasetDriftCheck.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
