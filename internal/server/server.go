package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"taskapi/internal/result"
	"taskapi/internal/store"
	"taskapi/internal/task"
	"taskapi/pkg/mq"

	"github.com/google/uuid"
)

type Server struct {
	store *store.Store
	pub   mq.Publisher
}

func New(st *store.Store, pub mq.Publisher) *Server {
	if pub == nil {
		pub = mq.Noop{}
	}
	return &Server{store: st, pub: pub}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/tasks", s.handleTasks)
	mux.HandleFunc("/tasks/", s.handleTaskByID)
	mux.HandleFunc("/export", s.handleExport)
	return withAccessLog(mux)
}

func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	server := &http.Server{Addr: addr, Handler: s.Handler()}
	go func() {
		<-ctx.Done()
		_ = server.Shutdown(context.Background())
	}()
	return server.ListenAndServe()
}

// errMissingDescription rejects create bodies without a description key. An
// explicit empty string is fine; only absence is an error.
var errMissingDescription = errors.New("Description is required")

// Title and description are pointers so a missing key is distinguishable
// from an empty string: both are required on create.
type createReq struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   bool    `json:"completed"`
}

func (s *Server) handleTasks(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, s.store.List(r.Context()))
	case http.MethodPost:
		var req createReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErr(w, http.StatusBadRequest, err)
			return
		}
		if req.Description == nil {
			writeErr(w, http.StatusUnprocessableEntity, errMissingDescription)
			return
		}
		var title string
		if req.Title != nil {
			title = *req.Title
		}
		t, err := s.store.Create(r.Context(), title, *req.Description, req.Completed)
		if err != nil {
			writeErr(w, http.StatusUnprocessableEntity, err)
			return
		}
		s.publish(mq.TopicTaskCreated, t)
		writeJSON(w, http.StatusCreated, t)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleTaskByID(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/tasks/")
	id, err := strconv.ParseInt(rest, 10, 64)
	if err != nil {
		writeErr(w, http.StatusBadRequest, fmt.Errorf("invalid task id %q", rest))
		return
	}
	ctx := r.Context()

	switch r.Method {
	case http.MethodGet:
		t, err := s.store.Get(ctx, id)
		if err != nil {
			writeStoreErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, t)

	case http.MethodPut:
		var p task.Patch
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			writeErr(w, http.StatusBadRequest, err)
			return
		}
		t, err := s.store.Update(ctx, id, p)
		if err != nil {
			writeStoreErr(w, err)
			return
		}
		s.publish(mq.TopicTaskUpdated, t)
		writeJSON(w, http.StatusOK, t)

	case http.MethodDelete:
		if err := s.store.Delete(ctx, id); err != nil {
			writeStoreErr(w, err)
			return
		}
		s.publish(mq.TopicTaskDeleted, map[string]int64{"id": id})
		w.WriteHeader(http.StatusNoContent)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "json"
	}
	ex := result.NewExporter(s.store)
	b, err := ex.Export(r.Context(), format)
	if err != nil {
		writeErr(w, http.StatusBadRequest, err)
		return
	}
	switch format {
	case "csv":
		w.Header().Set("Content-Type", "text/csv")
	case "pdf":
		w.Header().Set("Content-Type", "application/pdf")
	default:
		w.Header().Set("Content-Type", "application/json")
	}
	_, _ = w.Write(b)
}

func (s *Server) publish(topic string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := s.pub.Publish(topic, b); err != nil {
		log.Printf("publish %s: %v", topic, err)
	}
}

// withAccessLog tags every request with an id and logs it on completion.
func withAccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.NewString()
		w.Header().Set("X-Request-ID", reqID)
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s %s", reqID, r.Method, r.URL.Path, time.Since(start))
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

func writeStoreErr(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrNotFound) {
		writeErr(w, http.StatusNotFound, err)
		return
	}
	writeErr(w, http.StatusInternalServerError, err)
}
