package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/erraggy/wordcase"
	"github.com/erraggy/wordcase/casing"
	"github.com/erraggy/wordcase/tokenizer"
	"github.com/go-chi/chi/v5"
)

type api struct {
	cfg Config
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

func (a *api) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Version: wordcase.Version()})
}

type styleResponse struct {
	Name    string   `json:"name"`
	Aliases []string `json:"aliases,omitempty"`
}

type stylesResponse struct {
	Styles []styleResponse `json:"styles"`
}

func (a *api) handleStyles(w http.ResponseWriter, _ *http.Request) {
	styles := casing.Styles()
	resp := stylesResponse{Styles: make([]styleResponse, 0, len(styles))}
	for _, s := range styles {
		resp.Styles = append(resp.Styles, styleResponse{Name: s.String(), Aliases: s.Aliases()})
	}
	writeJSON(w, http.StatusOK, resp)
}

type convertResponse struct {
	Style  string `json:"style"`
	Input  string `json:"input"`
	Result string `json:"result"`
}

func (a *api) handleConvert(w http.ResponseWriter, r *http.Request) {
	style, ok := a.style(w, r)
	if !ok {
		return
	}
	input, ok := a.queryValue(w, r, "input")
	if !ok {
		return
	}
	a.count("convert:"+style.String(), 1)
	writeJSON(w, http.StatusOK, convertResponse{
		Style:  style.String(),
		Input:  input,
		Result: a.cfg.Caser.Convert(style, input),
	})
}

type convertBatchRequest struct {
	Inputs []string `json:"inputs"`
}

type conversion struct {
	Input  string `json:"input"`
	Result string `json:"result"`
}

type convertBatchResponse struct {
	Style   string       `json:"style"`
	Results []conversion `json:"results"`
}

func (a *api) handleConvertBatch(w http.ResponseWriter, r *http.Request) {
	style, ok := a.style(w, r)
	if !ok {
		return
	}

	maxBody := int64(a.cfg.MaxInputBytes) * int64(a.cfg.MaxBatch)
	var req convertBatchRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody)).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("request body exceeds %d bytes", maxBody))
			return
		}
		writeError(w, http.StatusBadRequest, "body must be JSON with an 'inputs' array")
		return
	}
	if !a.checkBatch(w, "inputs", req.Inputs) {
		return
	}

	resp := convertBatchResponse{Style: style.String(), Results: make([]conversion, 0, len(req.Inputs))}
	for _, in := range req.Inputs {
		resp.Results = append(resp.Results, conversion{Input: in, Result: a.cfg.Caser.Convert(style, in)})
	}
	a.count("convert:"+style.String(), len(req.Inputs))
	writeJSON(w, http.StatusOK, resp)
}

type tokenResponse struct {
	Text string `json:"text"`
	Kind string `json:"kind"`
	Sep  int    `json:"sep"`
}

type tokenizeResponse struct {
	Input  string          `json:"input"`
	Tokens []tokenResponse `json:"tokens"`
}

func (a *api) handleTokenize(w http.ResponseWriter, r *http.Request) {
	input, ok := a.queryValue(w, r, "input")
	if !ok {
		return
	}
	tokens := tokenizer.Tokenize(input)
	resp := tokenizeResponse{Input: input, Tokens: make([]tokenResponse, 0, len(tokens))}
	for _, tok := range tokens {
		resp.Tokens = append(resp.Tokens, tokenResponse{Text: tok.Text, Kind: tok.Kind.String(), Sep: tok.Sep})
	}
	a.count("tokenize", 1)
	writeJSON(w, http.StatusOK, resp)
}

type inflection struct {
	Word   string `json:"word"`
	Result string `json:"result"`
}

type inflectResponse struct {
	Results []inflection `json:"results"`
}

func (a *api) handlePluralize(w http.ResponseWriter, r *http.Request) {
	a.inflect(w, r, "pluralize", a.cfg.Rules.Inflector().Pluralize)
}

func (a *api) handleSingularize(w http.ResponseWriter, r *http.Request) {
	a.inflect(w, r, "singularize", a.cfg.Rules.Inflector().Singularize)
}

func (a *api) inflect(w http.ResponseWriter, r *http.Request, operation string, fn func(string) string) {
	words := r.URL.Query()["word"]
	if len(words) == 0 {
		writeError(w, http.StatusBadRequest, "missing 'word' query parameter")
		return
	}
	if !a.checkBatch(w, "word", words) {
		return
	}
	resp := inflectResponse{Results: make([]inflection, 0, len(words))}
	for _, word := range words {
		resp.Results = append(resp.Results, inflection{Word: word, Result: fn(word)})
	}
	a.count(operation, len(words))
	writeJSON(w, http.StatusOK, resp)
}

type quantifyResponse struct {
	Count  string `json:"count"`
	Unit   string `json:"unit"`
	Result string `json:"result"`
}

func (a *api) handleQuantify(w http.ResponseWriter, r *http.Request) {
	count, ok := a.queryValue(w, r, "count")
	if !ok {
		return
	}
	unit, ok := a.queryValue(w, r, "unit")
	if !ok {
		return
	}
	if unit == "" {
		writeError(w, http.StatusBadRequest, "'unit' must not be empty")
		return
	}
	var plural []string
	if q := r.URL.Query(); q.Has("plural") {
		p := q.Get("plural")
		if !a.checkSize(w, "plural", p) {
			return
		}
		plural = append(plural, p)
	}
	a.count("quantify", 1)
	writeJSON(w, http.StatusOK, quantifyResponse{
		Count:  count,
		Unit:   unit,
		Result: a.cfg.Rules.Inflector().Quantify(count, unit, plural...),
	})
}

// style resolves the {style} path parameter, writing a 400 on failure.
func (a *api) style(w http.ResponseWriter, r *http.Request) (casing.Style, bool) {
	style, err := casing.ParseStyle(chi.URLParam(r, "style"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return "", false
	}
	return style, true
}

// queryValue returns a required query parameter, writing a 400 when it is
// absent or too large. An empty value is allowed.
func (a *api) queryValue(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	q := r.URL.Query()
	if !q.Has(name) {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("missing '%s' query parameter", name))
		return "", false
	}
	v := q.Get(name)
	return v, a.checkSize(w, name, v)
}

func (a *api) checkSize(w http.ResponseWriter, name, v string) bool {
	if len(v) > a.cfg.MaxInputBytes {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("'%s' exceeds maximum size of %d bytes", name, a.cfg.MaxInputBytes))
		return false
	}
	return true
}

func (a *api) checkBatch(w http.ResponseWriter, name string, values []string) bool {
	if len(values) > a.cfg.MaxBatch {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("too many '%s' values: %d (maximum %d)", name, len(values), a.cfg.MaxBatch))
		return false
	}
	for _, v := range values {
		if !a.checkSize(w, name, v) {
			return false
		}
	}
	return true
}

func (a *api) count(operation string, n int) {
	if a.cfg.Metrics != nil {
		a.cfg.Metrics.countTransforms(operation, n)
	}
}
