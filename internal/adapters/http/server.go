// Package http exposes the machine catalog as a small JSON API.
//
// Only built-in machines are runnable; there is deliberately no wire format
// for transition tables. The request carries the input tape and execution
// options, nothing more.
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/mitchellh/mapstructure"

	"github.com/gcamargo0/turingo"
	"github.com/gcamargo0/turingo/pkg/domain"
	"github.com/gcamargo0/turingo/pkg/machines"
)

// Server handles the catalog API.
type Server struct {
	logger *slog.Logger
}

// NewHandler creates the HTTP handler for the catalog API.
func NewHandler(logger *slog.Logger) http.Handler {
	s := &Server{logger: logger}

	r := chi.NewRouter()
	r.Get("/machines", s.listMachines)
	r.Get("/machines/{name}", s.getMachine)
	r.Post("/machines/{name}/run", s.runMachine)
	r.Get("/health", s.getHealth)
	r.Get("/info", s.getInfo)
	r.Get("/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(RawSpec())
	})
	return r
}

// MachineSummary is one catalog listing entry.
type MachineSummary struct {
	Name         string `json:"name"`
	Summary      string `json:"summary"`
	DefaultInput string `json:"default_input,omitempty"`
}

// MachineDetail adds the markdown description.
type MachineDetail struct {
	MachineSummary
	Doc string `json:"doc,omitempty"`
}

// RunRequest is the POST /machines/{name}/run body.
type RunRequest struct {
	Tape    string         `json:"tape"`
	Options map[string]any `json:"options"`
}

// RunOptions are the recognized entries of the request's options map.
type RunOptions struct {
	MaxSteps          int   `mapstructure:"max_steps"`
	StartIndex        int   `mapstructure:"start_index"`
	ImplicitBlankHalt *bool `mapstructure:"implicit_blank_halt"`
	TapeLimit         int   `mapstructure:"tape_limit"`
}

// RunResponse is the run report.
type RunResponse struct {
	Machine string   `json:"machine"`
	Tape    []string `json:"tape"`
	Begin   int      `json:"begin"`
	Head    int      `json:"head"`
	State   string   `json:"state"`
	Steps   int      `json:"steps"`
	Outcome string   `json:"outcome"`
}

func (s *Server) listMachines(w http.ResponseWriter, _ *http.Request) {
	defs := machines.All()
	out := make([]MachineSummary, 0, len(defs))
	for _, d := range defs {
		out = append(out, MachineSummary{Name: d.Name, Summary: d.Summary, DefaultInput: d.DefaultInput})
	}
	writeJSON(w, s.logger, out)
}

func (s *Server) getMachine(w http.ResponseWriter, r *http.Request) {
	def, ok := machines.Get(chi.URLParam(r, "name"))
	if !ok {
		http.Error(w, "unknown machine", http.StatusNotFound)
		return
	}
	writeJSON(w, s.logger, MachineDetail{
		MachineSummary: MachineSummary{Name: def.Name, Summary: def.Summary, DefaultInput: def.DefaultInput},
		Doc:            def.Doc,
	})
}

func (s *Server) runMachine(w http.ResponseWriter, r *http.Request) {
	def, ok := machines.Get(chi.URLParam(r, "name"))
	if !ok {
		http.Error(w, "unknown machine", http.StatusNotFound)
		return
	}

	var req RunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		s.logger.Warn("run: invalid request body", "err", err)
		return
	}

	opts := RunOptions{MaxSteps: turingo.DefaultMaxSteps}
	if req.Options != nil {
		if err := mapstructure.Decode(req.Options, &opts); err != nil {
			http.Error(w, fmt.Sprintf("invalid options: %v", err), http.StatusBadRequest)
			s.logger.Warn("run: invalid options", "err", err)
			return
		}
	}

	tape, err := def.Tape(req.Tape)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	start, err := def.Build()
	if err != nil {
		http.Error(w, fmt.Sprintf("build error: %v", err), http.StatusInternalServerError)
		s.logger.Error("run: build failed", "machine", def.Name, "err", err)
		return
	}

	mopts := []turingo.Option{}
	if opts.ImplicitBlankHalt != nil {
		mopts = append(mopts, turingo.WithImplicitBlankHalt(*opts.ImplicitBlankHalt))
	}
	if opts.TapeLimit > 0 {
		mopts = append(mopts, turingo.WithTapeLimit(opts.TapeLimit))
	}

	m, err := turingo.New(start, tape, opts.StartIndex, mopts...)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res, err := m.Run(r.Context(), opts.MaxSteps)
	if err != nil {
		var limitErr *domain.TapeLimitError
		if errors.As(err, &limitErr) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, fmt.Sprintf("run error: %v", err), http.StatusInternalServerError)
		s.logger.Error("run failed", "machine", def.Name, "err", err)
		return
	}

	cells := make([]string, len(res.Tape))
	for i, c := range res.Tape {
		cells[i] = c.String()
	}
	writeJSON(w, s.logger, RunResponse{
		Machine: def.Name,
		Tape:    cells,
		Begin:   res.Begin,
		Head:    res.Head,
		State:   res.State,
		Steps:   res.Steps,
		Outcome: string(res.Outcome),
	})
}

func (s *Server) getHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, s.logger, map[string]string{"status": "ok"})
}

func (s *Server) getInfo(w http.ResponseWriter, _ *http.Request) {
	apiVersion := "unknown"
	if spec, err := LoadSpec(); err == nil && spec.Info != nil {
		apiVersion = spec.Info.Version
	}
	writeJSON(w, s.logger, map[string]string{
		"app":         "turingo-http",
		"version":     strings.TrimSpace(turingo.Version),
		"api_version": apiVersion,
	})
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("response encode failed", "err", err)
	}
}
