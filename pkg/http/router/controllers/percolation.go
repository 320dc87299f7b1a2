package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"
	helper "github.com/lintang-b-s/Percolatorx/pkg/http/router/routerhelper"
	"go.uber.org/zap"
)

type percolationAPI struct {
	percolationService PercolationService
	log                *zap.Logger
	validate           *validator.Validate
	trans              ut.Translator
}

func New(percolationService PercolationService, log *zap.Logger) *percolationAPI {
	validate := validator.New()
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)

	return &percolationAPI{
		percolationService: percolationService,
		log:                log,
		validate:           validate,
		trans:              trans,
	}
}

func (api *percolationAPI) Routes(group *helper.RouteGroup) {
	group.GET("/percolation/stats", api.stats)
	group.GET("/percolation/simulate", api.simulate)
}

func (api *percolationAPI) stats(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request statsRequest
		err     error
	)

	query := r.URL.Query()

	request.N, err = strconv.Atoi(query.Get("n"))
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("n is required and must be a valid int"))
		return
	}
	request.Trials, err = strconv.Atoi(query.Get("trials"))
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("trials is required and must be a valid int"))
		return
	}
	if query.Has("workers") {
		request.Workers, err = strconv.Atoi(query.Get("workers"))
		if err != nil {
			api.BadRequestResponse(w, r, errors.New("workers must be a valid int"))
			return
		}
	}
	request.Seed, err = parseSeed(query.Get("seed"))
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	if !api.validateRequest(w, r, request) {
		return
	}

	st, err := api.percolationService.Stats(r.Context(), request.N, request.Trials, request.Seed, request.Workers)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewStatsResponse(st)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *percolationAPI) simulate(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request simulateRequest
		err     error
	)

	query := r.URL.Query()

	request.N, err = strconv.Atoi(query.Get("n"))
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("n is required and must be a valid int"))
		return
	}
	request.Seed, err = parseSeed(query.Get("seed"))
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	if !api.validateRequest(w, r, request) {
		return
	}

	perc, err := api.percolationService.Simulate(r.Context(), request.N, request.Seed)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewSimulateResponse(perc)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *percolationAPI) validateRequest(w http.ResponseWriter, r *http.Request, request any) bool {
	if err := api.validate.Struct(request); err != nil {
		vv := translateError(err, api.trans)
		vvString := []string{}
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: %v", vvString))
		return false
	}
	return true
}

func parseSeed(s string) (*uint64, error) {
	if s == "" {
		return nil, nil
	}
	seed, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return nil, errors.New("seed must be a valid unsigned int")
	}
	return &seed, nil
}
