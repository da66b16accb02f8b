package contact

import (
	"encoding/json"
	"errors"
	"log"
	"mime"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/cors"
)

// Response bodies
const (
	msgMissingFields = "All fields are required"
	msgSent          = "Message sent successfully! I will get back to you soon."
	msgSendFailed    = "Failed to send message. Please try again."
	msgLoadFailed    = "Failed to load messages"
	msgRunning       = "Backend server is running!"
)

// maxBodyBytes caps a submission payload
const maxBodyBytes = 1 << 20

type sendResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Handler serves the contact endpoints
type Handler struct {
	store     Store
	staticDir string
	now       func() time.Time
	newID     func() string
}

// NewHandler creates a handler persisting to store and serving files from staticDir
// An empty staticDir disables static file serving
func NewHandler(store Store, staticDir string) *Handler {
	return &Handler{
		store:     store,
		staticDir: staticDir,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// Routes returns the mux with CORS enabled for every origin
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /send-email", h.sendEmail)
	mux.HandleFunc("GET /admin/messages", h.listMessages)
	mux.HandleFunc("GET /test", h.test)
	if h.staticDir != "" {
		mux.Handle("GET /", http.FileServer(http.Dir(h.staticDir)))
	}
	return cors.AllowAll().Handler(mux)
}

func (h *Handler) sendEmail(w http.ResponseWriter, r *http.Request) {
	sub, err := decodeSubmission(w, r)
	if err == nil {
		err = sub.Validate()
	}
	if err != nil {
		writeJSON(w, http.StatusBadRequest, sendResponse{Success: false, Message: msgMissingFields})
		return
	}

	m := Message{
		ID:        h.newID(),
		Timestamp: h.now().UTC().Truncate(time.Millisecond),
		Name:      sub.Name,
		Email:     sub.Email,
		Message:   sub.Message,
		IP:        clientIP(r),
	}
	if err := h.store.Append(m); err != nil {
		log.Printf("contact: save message: %v", err)
		writeJSON(w, http.StatusInternalServerError, sendResponse{Success: false, Message: msgSendFailed})
		return
	}

	log.Printf("contact: new message from %s (%s)", m.Name, m.Email)
	writeJSON(w, http.StatusOK, sendResponse{Success: true, Message: msgSent})
}

func (h *Handler) listMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.store.List()
	if err != nil {
		log.Printf("contact: load messages: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": msgLoadFailed})
		return
	}

	if src := r.URL.Query().Get("filter"); src != "" {
		f, err := CompileFilter(src)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		if messages, err = f.Apply(messages); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
	}
	writeJSON(w, http.StatusOK, messages)
}

func (h *Handler) test(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": msgRunning})
}

var errBadBody = errors.New("unreadable body")

// decodeSubmission accepts JSON or form encoded bodies
func decodeSubmission(w http.ResponseWriter, r *http.Request) (Submission, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var sub Submission
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
			return sub, errBadBody
		}
		return sub, nil
	}

	if err := r.ParseForm(); err != nil {
		return sub, errBadBody
	}
	sub.Name = r.PostForm.Get("name")
	sub.Email = r.PostForm.Get("email")
	sub.Message = r.PostForm.Get("message")
	return sub, nil
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil || host == "" {
		return "unknown"
	}
	return host
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("contact: write response: %v", err)
	}
}
