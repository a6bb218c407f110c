// Package httpapi re-expresses the Python FastAPI surface:
// POST /select runs a synchronous solve and persists it, GET
// /results/:id fetches a persisted record, DELETE /results/:id removes one.
// Progress is not streamed over HTTP (the text stream is a CLI-only
// concern); callers get the final record only.
package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/samplecover/coverkit/coverselect"
	"github.com/samplecover/coverkit/internal/store"
)

// selectRequest is the JSON body of POST /select, mirroring the Python
// RequestModel field-for-field (including its workers/time_limit defaults).
type selectRequest struct {
	M            int    `json:"m" binding:"required"`
	N            int    `json:"n" binding:"required"`
	K            int    `json:"k" binding:"required"`
	J            int    `json:"j" binding:"required"`
	S            int    `json:"s" binding:"required"`
	T            int    `json:"t"`
	Samples      []int  `json:"samples"`
	RandomSelect bool   `json:"random_select"`
	Seed         *int64 `json:"seed"`
	TimeLimit    *int   `json:"time_limit"`
	Workers      *int   `json:"workers"`
	BeamWidth    int    `json:"beam_width"`
}

// Server holds the dependencies the HTTP handlers need.
type Server struct {
	store *store.Store
}

// NewServer returns a Server persisting through s.
func NewServer(s *store.Store) *Server { return &Server{store: s} }

// Register mounts the /select and /results/:id routes onto r.
func (srv *Server) Register(r gin.IRouter) {
	r.POST("/select", srv.handleSelect)
	r.GET("/results/:id", srv.handleGetResult)
	r.DELETE("/results/:id", srv.handleDeleteResult)
}

func (srv *Server) handleSelect(c *gin.Context) {
	var req selectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})

		return
	}

	cfg := coverselect.Config{
		M: req.M, N: req.N, K: req.K, J: req.J, S: req.S, T: req.T,
		Samples:      req.Samples,
		RandomSelect: req.RandomSelect,
		BeamWidth:    req.BeamWidth,
	}
	if req.Seed != nil {
		cfg.Seed = *req.Seed
	}
	if req.TimeLimit != nil {
		cfg.TimeLimit = time.Duration(*req.TimeLimit) * time.Second
	}
	if req.Workers != nil {
		cfg.Workers = *req.Workers
	} else {
		cfg.Workers = 8 // Python default when "workers" is absent/null
	}
	if cfg.T == 0 {
		cfg.T = 1
	}

	res, err := coverselect.Solve(cfg)
	if err != nil {
		writeSolveError(c, err)

		return
	}

	id, err := srv.store.Save(res)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})

		return
	}

	c.JSON(http.StatusOK, gin.H{
		"m": res.M, "n": res.N, "k": res.K, "j": res.J, "s": res.S, "t": res.T,
		"samples": res.Samples, "combos": res.Combos,
		"execution_time": res.ExecutionTime, "workers": res.Workers,
		"id": id,
	})
}

func (srv *Server) handleGetResult(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	rec, err := srv.store.Get(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "记录不存在"})

			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})

		return
	}

	c.JSON(http.StatusOK, gin.H{
		"m": rec.M, "n": rec.N, "k": rec.K, "j": rec.J, "s": rec.S, "t": rec.T,
		"samples": rec.Samples, "combos": rec.Combos, "id": rec.ID,
	})
}

func (srv *Server) handleDeleteResult(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := srv.store.Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "记录不存在"})

			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})

		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid id"})

		return 0, false
	}

	return id, true
}

func writeSolveError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, coverselect.ErrInvalidParameters), errors.Is(err, coverselect.ErrConfigurationError):
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
	}
}
