package server

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	kserr "github.com/matzehuels/knapsack/pkg/errors"
	"github.com/matzehuels/knapsack/pkg/item"
	"github.com/matzehuels/knapsack/pkg/observability"
	"github.com/matzehuels/knapsack/pkg/visit"
)

// maxSnapshotBytes caps uploaded snapshot size.
const maxSnapshotBytes = 8 << 20

// selector identifies items within a pack. Exactly one field must be set.
type selector struct {
	Name string `json:"name,omitempty"`
	Tag  string `json:"tag,omitempty"`
	ID   string `json:"id,omitempty"`
}

// predicate builds the item predicate from whichever field is set.
func (s selector) predicate() (func(*item.Item) bool, error) {
	set := 0
	for _, v := range []string{s.Name, s.Tag, s.ID} {
		if v != "" {
			set++
		}
	}
	if set != 1 {
		return nil, kserr.New(kserr.ErrCodeInvalidQuery, "exactly one of name, tag, or id is required")
	}
	switch {
	case s.Name != "":
		return item.ByName(s.Name), nil
	case s.Tag != "":
		return item.ByTag(s.Tag), nil
	default:
		return item.ByID(s.ID), nil
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	ids, err := s.store.List(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"packs": ids})
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	root, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, root)
}

func (s *Server) handlePut(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxSnapshotBytes))
	if err != nil {
		s.writeError(w, kserr.Wrap(kserr.ErrCodeInternal, err, "read body"))
		return
	}
	root, err := item.UnmarshalSnapshot(data)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.store.Set(r.Context(), chi.URLParam(r, "id"), root); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// queryRequest asks whether, where, or under what a matching item sits.
type queryRequest struct {
	Op       string   `json:"op"` // "has", "find", or "parents"
	Selector selector `json:"selector"`
}

// queryResponse carries the result of any query op. Fields irrelevant to the
// op are omitted.
type queryResponse struct {
	Matched bool         `json:"matched"`
	Item    *item.Item   `json:"item,omitempty"`
	Parent  *item.Item   `json:"parent,omitempty"`
	Parents []*item.Item `json:"parents,omitempty"`
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	packID := chi.URLParam(r, "id")

	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, kserr.Wrap(kserr.ErrCodeInvalidQuery, err, "decode query"))
		return
	}
	pred, err := req.Selector.predicate()
	if err != nil {
		s.writeError(w, err)
		return
	}

	root, err := s.store.Get(r.Context(), packID)
	if err != nil {
		s.writeError(w, err)
		return
	}

	start := time.Now()
	resp, err := runQuery(root, req.Op, pred)
	if err != nil {
		s.writeError(w, err)
		return
	}
	observability.Pack().OnQuery(r.Context(), packID, req.Op, resp.Matched, time.Since(start))

	writeJSON(w, http.StatusOK, resp)
}

// runQuery dispatches a query op against a pack.
func runQuery(root *item.Item, op string, pred func(*item.Item) bool) (*queryResponse, error) {
	switch op {
	case "has":
		return &queryResponse{Matched: visit.ContainsFunc(root, pred)}, nil
	case "find":
		found, ok := item.First(root, pred)
		if !ok {
			return &queryResponse{}, nil
		}
		resp := &queryResponse{Matched: true, Item: found}
		if parent, ok := visit.FindParent(root, found); ok {
			resp.Parent = parent
		}
		return resp, nil
	case "parents":
		target, ok := item.First(root, pred)
		if !ok {
			return &queryResponse{}, nil
		}
		return &queryResponse{Matched: true, Item: target, Parents: visit.Parents(root, target)}, nil
	default:
		return nil, kserr.New(kserr.ErrCodeInvalidQuery, "unknown op %q (want has, find, or parents)", op)
	}
}

// removeRequest removes matching items from a stored pack.
type removeRequest struct {
	Selector selector `json:"selector"`
	Limit    int      `json:"limit"` // 0 means unlimited
}

// removeResponse reports what was detached and what remains.
type removeResponse struct {
	Removed   []*item.Item `json:"removed"`
	Remaining int          `json:"remaining"`
}

func (s *Server) handleRemove(w http.ResponseWriter, r *http.Request) {
	packID := chi.URLParam(r, "id")

	var req removeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, kserr.Wrap(kserr.ErrCodeInvalidQuery, err, "decode remove"))
		return
	}
	pred, err := req.Selector.predicate()
	if err != nil {
		s.writeError(w, err)
		return
	}

	root, err := s.store.Get(r.Context(), packID)
	if err != nil {
		s.writeError(w, err)
		return
	}

	limit := req.Limit
	if limit == 0 {
		limit = -1
	}

	start := time.Now()
	removed := visit.RemoveFuncN(root, pred, limit)
	observability.Pack().OnRemove(r.Context(), packID, len(removed), time.Since(start))

	if len(removed) > 0 {
		if err := s.store.Set(r.Context(), packID, root); err != nil {
			s.writeError(w, err)
			return
		}
	}

	resp := removeResponse{Removed: removed, Remaining: item.Total(root)}
	if resp.Removed == nil {
		resp.Removed = []*item.Item{}
	}
	writeJSON(w, http.StatusOK, resp)
}
