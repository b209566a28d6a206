package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-visualiser/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Warn("failed to encode response")
	}
}

// regionFromQuery lê ?region=. Ausente ou vazio vale "all"; qualquer outro valor segue como veio.
func regionFromQuery(r *http.Request) domain.Region {
	region := r.URL.Query().Get("region")
	if region == "" {
		return domain.DefaultRegion
	}
	return domain.Region(region)
}
