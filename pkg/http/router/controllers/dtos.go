package controllers

import (
	"math"

	"github.com/lintang-b-s/Percolatorx/pkg/percolation"
)

type statsRequest struct {
	N       int     `json:"n" validate:"required,min=1"`
	Trials  int     `json:"trials" validate:"required,min=1"`
	Workers int     `json:"workers" validate:"min=0,max=256"`
	Seed    *uint64 `json:"seed"`
}

type simulateRequest struct {
	N    int     `json:"n" validate:"required,min=1"`
	Seed *uint64 `json:"seed"`
}

type statsResponse struct {
	N            int       `json:"n"`
	Trials       int       `json:"trials"`
	Mean         float64   `json:"mean"`
	Stddev       *float64  `json:"stddev"`
	ConfidenceLo *float64  `json:"confidence_lo"`
	ConfidenceHi *float64  `json:"confidence_hi"`
	Thresholds   []float64 `json:"thresholds"`
}

// NewStatsResponse. NaN is not representable in JSON, it is sent as null (trials == 1).
func NewStatsResponse(st *percolation.Stats) statsResponse {
	return statsResponse{
		N:            st.SideLength(),
		Trials:       st.Trials(),
		Mean:         st.Mean(),
		Stddev:       finiteOrNil(st.Stddev()),
		ConfidenceLo: finiteOrNil(st.ConfidenceLo()),
		ConfidenceHi: finiteOrNil(st.ConfidenceHi()),
		Thresholds:   st.Thresholds(),
	}
}

type simulateResponse struct {
	N         int      `json:"n"`
	OpenSites int      `json:"open_sites"`
	Threshold float64  `json:"threshold"`
	Grid      []string `json:"open_sites_grid"`
}

func NewSimulateResponse(perc *percolation.Percolation) simulateResponse {
	return simulateResponse{
		N:         perc.SideLength(),
		OpenSites: perc.NumberOfOpenSites(),
		Threshold: perc.OpenFraction(),
		Grid:      perc.Rows(),
	}
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func finiteOrNil(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
