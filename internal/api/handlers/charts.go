package handlers

import (
	"natal-position-service/internal/api/dto"
	"natal-position-service/internal/platform/obs"
	"natal-position-service/internal/ports"
	"natal-position-service/internal/services"
	"net/http"

	"go.uber.org/zap"
)

type ChartHandler struct {
	Provider       ports.EphemerisProvider
	Geocoder       ports.Geocoder
	DefaultCountry string
}

// Create computes a natal chart. Ephemeris failures degrade the chart but
// still answer 200; only invalid input is rejected.
func (h *ChartHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !allowOnly(w, r, http.MethodPost) {
		return
	}

	var req dto.ChartRequest
	if !decodeStrict(w, r, &req) {
		return
	}

	resolver := chartResolver{Geocoder: h.Geocoder, DefaultCountry: h.DefaultCountry}
	svcReq, placeName, rerr := resolver.resolve(r.Context(), req)
	if rerr != nil {
		writeError(w, r, rerr.status, rerr.msg)
		return
	}

	chart, err := services.CalculateChart(r.Context(), svcReq, h.Provider)
	if err != nil {
		rerr := chartError(err)
		if rerr.status >= http.StatusInternalServerError {
			zap.L().Error("chart failed", zap.String("req_id", obs.RequestID(r.Context())), zap.Error(err))
		}
		writeError(w, r, rerr.status, rerr.msg)
		return
	}

	if chart.Degraded() {
		zap.L().Warn("chart degraded", zap.String("req_id", obs.RequestID(r.Context())))
	}

	writeJSON(w, r, http.StatusOK, dto.NewChartResponse(chart, placeName))
}
