package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rgehrsitz/fincalc/internal/calculation"
	"github.com/rgehrsitz/fincalc/internal/config"
	"github.com/rgehrsitz/fincalc/internal/domain"
)

// shapeError is returned for bodies that cannot be turned into a calculation
type shapeError struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields"`
}

type validationErrorBody struct {
	Error string `json:"error"`
	Field string `json:"field"`
}

func writeShapeError(c *gin.Context, message string, fields []string) {
	if fields == nil {
		fields = []string{}
	}
	c.JSON(http.StatusUnprocessableEntity, shapeError{Error: message, Fields: fields})
}

// writeEngineError maps engine failures onto status codes
func (s *Server) writeEngineError(c *gin.Context, err error) {
	var verr *calculation.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, validationErrorBody{Error: verr.Error(), Field: verr.Field})
		return
	}
	s.logger.Errorf("request %s failed: %v", requestIDFrom(c), err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// bindError names the offending field when the decoder reports one
func bindError(c *gin.Context, err error) {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		writeShapeError(c, "invalid value for "+typeErr.Field, []string{typeErr.Field})
		return
	}
	writeShapeError(c, "invalid request body: "+err.Error(), nil)
}

// calculate builds the handler of a single calculator endpoint
func (s *Server) calculate(endpoint string, newRequest func() calcRequest) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := newRequest()
		if err := c.ShouldBindJSON(req); err != nil {
			bindError(c, err)
			return
		}

		calc, missing := req.calculation()
		if len(missing) > 0 {
			writeShapeError(c, "missing required fields", missing)
			return
		}

		key, err := cacheKey(endpoint, calc)
		if err == nil && s.cache != nil {
			if cached, ok := s.cache.Get(c.Request.Context(), key); ok {
				c.Header("X-Cache", "hit")
				c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(cached))
				return
			}
		}

		result, err := s.engine.Calculate(c.Request.Context(), calc)
		if err != nil {
			s.writeEngineError(c, err)
			return
		}

		body, err := json.Marshal(responseBody(result))
		if err != nil {
			s.writeEngineError(c, err)
			return
		}

		if s.cache != nil && key != "" {
			if err := s.cache.Set(c.Request.Context(), key, string(body)); err != nil {
				s.logger.Warnf("request %s: cache write failed: %v", requestIDFrom(c), err)
			}
		}
		c.Data(http.StatusOK, "application/json; charset=utf-8", body)
	}
}

// planResponse carries a partial result when a stop_on_error plan halts
type planResponse struct {
	*domain.PlanResult
	Error string `json:"error,omitempty"`
}

func (s *Server) runPlan(c *gin.Context) {
	var plan domain.Plan
	if err := c.ShouldBindJSON(&plan); err != nil {
		bindError(c, err)
		return
	}
	if err := config.NewInputParser().ValidateConfiguration(&plan); err != nil {
		writeShapeError(c, err.Error(), nil)
		return
	}

	result, err := s.engine.RunPlan(c.Request.Context(), &plan)
	if err != nil {
		if result == nil {
			s.writeEngineError(c, err)
			return
		}
		c.JSON(http.StatusBadRequest, planResponse{PlanResult: result, Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, planResponse{PlanResult: result})
}

// cacheKey is the endpoint plus the canonical JSON of the engine input
func cacheKey(endpoint string, calc *domain.Calculation) (string, error) {
	data, err := json.Marshal(calc)
	if err != nil {
		return "", err
	}
	return endpoint + ":" + string(data), nil
}
