package handlers

import (
	"errors"
	"natal-position-service/internal/api/dto"
	"natal-position-service/internal/domain"
	"natal-position-service/internal/platform/obs"
	"natal-position-service/internal/ports"
	"natal-position-service/internal/services"
	"net/http"

	"go.uber.org/zap"
)

type CompatibilityHandler struct {
	Provider       ports.EphemerisProvider
	Geocoder       ports.Geocoder
	DefaultCountry string
}

// Score rates two sun signs, given directly or derived from two birth charts.
func (h *CompatibilityHandler) Score(w http.ResponseWriter, r *http.Request) {
	if !allowOnly(w, r, http.MethodPost) {
		return
	}

	var req dto.CompatibilityRequest
	if !decodeStrict(w, r, &req) {
		return
	}

	bySign := req.Sign1 != "" || req.Sign2 != ""
	byChart := req.First != nil || req.Second != nil

	switch {
	case bySign && byChart:
		writeError(w, r, http.StatusBadRequest, "send either sign1/sign2 or first/second, not both")
	case bySign:
		h.scoreSigns(w, r, req)
	case byChart:
		h.scoreCharts(w, r, req)
	default:
		writeError(w, r, http.StatusBadRequest, "sign1/sign2 or first/second is required")
	}
}

func (h *CompatibilityHandler) scoreSigns(w http.ResponseWriter, r *http.Request, req dto.CompatibilityRequest) {
	a, ok := domain.ParseSign(req.Sign1)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "sign1 is not a zodiac sign")
		return
	}
	b, ok := domain.ParseSign(req.Sign2)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "sign2 is not a zodiac sign")
		return
	}

	comp, err := services.SignCompatibility(a, b)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, r, http.StatusOK, dto.NewCompatibilityResponse(comp))
}

func (h *CompatibilityHandler) scoreCharts(w http.ResponseWriter, r *http.Request, req dto.CompatibilityRequest) {
	if req.First == nil || req.Second == nil {
		writeError(w, r, http.StatusBadRequest, "first and second are both required")
		return
	}

	resolver := chartResolver{Geocoder: h.Geocoder, DefaultCountry: h.DefaultCountry}
	var svcReqs [2]services.ChartRequest
	var names [2]string
	for i, in := range [2]dto.ChartRequest{*req.First, *req.Second} {
		svcReq, name, rerr := resolver.resolve(r.Context(), in)
		if rerr != nil {
			writeError(w, r, rerr.status, rerr.msg)
			return
		}
		svcReqs[i], names[i] = svcReq, name
	}

	comp, charts, err := services.CompareCharts(r.Context(), svcReqs[0], svcReqs[1], h.Provider)
	if errors.Is(err, services.ErrSunUnavailable) {
		zap.L().Warn("compatibility without sun", zap.String("req_id", obs.RequestID(r.Context())), zap.Error(err))
		writeError(w, r, http.StatusBadGateway, "sun position unavailable")
		return
	}
	if err != nil {
		rerr := chartError(err)
		if rerr.status >= http.StatusInternalServerError {
			zap.L().Error("compatibility failed", zap.String("req_id", obs.RequestID(r.Context())), zap.Error(err))
		}
		writeError(w, r, rerr.status, rerr.msg)
		return
	}

	res := dto.NewCompatibilityResponse(comp)
	for i, c := range charts {
		res.Charts = append(res.Charts, dto.NewChartResponse(c, names[i]))
	}
	writeJSON(w, r, http.StatusOK, res)
}
