// Package screen implements the view-model behind the gas price lookup
// screen: the input fields, the fetch lifecycle, and the rules tying
// them together. It owns all mutable state; rendering reads snapshots.
package screen

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/gaspeek/gaspeek/pkg/gasprices"
)

// Phase is the fetch lifecycle state.
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseLoading Phase = "loading"
	PhaseSuccess Phase = "success"
	PhaseError   Phase = "error"
)

// User-facing strings. These are fixed copy, not formats.
const (
	MsgEnterLocation = "Please enter a location"
	MsgFetchFailed   = "Failed to fetch gas prices"
	MsgNetworkError  = "Network error. Please check your connection."
)

// ErrLocationRequired is the validation failure surfaced as a blocking
// alert. It is raised before any request is issued.
var ErrLocationRequired = errors.New(MsgEnterLocation)

const countryCodeMaxLen = 2

// InputState holds the user-entered query fields. It is only ever
// mutated through the Screen setters.
type InputState struct {
	LocationText string
	CountryCode  string
	LocationType gasprices.LocationType
}

// FetchState describes the outcome of the latest submission. ErrMessage
// is set exactly when Phase is PhaseError, Result exactly when Phase is
// PhaseSuccess.
type FetchState struct {
	Phase      Phase
	ErrMessage string
	Result     *gasprices.Result
}

// Screen drives one lookup screen instance. Submissions run in the
// background; each carries a generation token so that a response is
// applied only if no newer submission has been issued since.
type Screen struct {
	mu    sync.Mutex
	input InputState
	fetch FetchState

	client *gasprices.Client
	log    *slog.Logger

	generation uint64
	ctx        context.Context
	cancel     context.CancelFunc
	wg         sync.WaitGroup
}

// New creates a Screen bound to the given client. The screen starts
// idle with the city location type selected.
func New(client *gasprices.Client, logger *slog.Logger) *Screen {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	ctx, cancel := context.WithCancel(context.Background())

	return &Screen{
		input:  InputState{LocationType: gasprices.LocationCity},
		fetch:  FetchState{Phase: PhaseIdle},
		client: client,
		log:    logger,
		ctx:    ctx,
		cancel: cancel,
	}
}

// NormalizePostalCode uppercases the text, strips all whitespace and,
// once at least three characters are present, inserts a single space
// after the third (l6y4v3 -> L6Y 4V3). Characters past the sixth are
// dropped. The format is Canadian; it is applied regardless of country,
// a long-standing simplification of the screen.
func NormalizePostalCode(text string) string {
	cleaned := strings.ToUpper(strings.Join(strings.Fields(text), ""))
	if len(cleaned) < 3 {
		return cleaned
	}

	tail := cleaned[3:]
	if len(tail) > 3 {
		tail = tail[:3]
	}
	return cleaned[:3] + " " + tail
}

// SetLocationType switches the input mode. The entered text is kept,
// matching the original screen.
func (s *Screen) SetLocationType(t gasprices.LocationType) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.input.LocationType = t
}

// SetLocationText stores the location text, normalizing it as a postal
// code when the postal type is selected.
func (s *Screen) SetLocationText(raw string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.input.LocationType == gasprices.LocationPostal {
		s.input.LocationText = NormalizePostalCode(raw)
		return
	}
	s.input.LocationText = raw
}

// SetCountryCode keeps at most the first two characters. The value is
// not validated against any country list; display uppercasing is the
// renderer's concern.
func (s *Screen) SetCountryCode(raw string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(raw) > countryCodeMaxLen {
		raw = raw[:countryCodeMaxLen]
	}
	s.input.CountryCode = raw
}

// Input returns a snapshot of the input fields.
func (s *Screen) Input() InputState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.input
}

// Fetch returns a snapshot of the fetch state.
func (s *Screen) Fetch() FetchState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fetch
}

// Loading reports whether a submission is in flight. The submit control
// is disabled while true.
func (s *Screen) Loading() bool {
	return s.Fetch().Phase == PhaseLoading
}

// Submit starts a lookup for the current input. A blank location fails
// with ErrLocationRequired and leaves all state untouched. Otherwise
// the screen enters the loading phase and the request proceeds in the
// background; call Wait to block until it settles.
func (s *Screen) Submit() error {
	s.mu.Lock()
	if strings.TrimSpace(s.input.LocationText) == "" {
		s.mu.Unlock()
		return ErrLocationRequired
	}

	s.generation++
	token := s.generation
	query := gasprices.Query{
		LocationType: s.input.LocationType,
		Location:     s.input.LocationText,
		Country:      s.input.CountryCode,
	}
	s.fetch = FetchState{Phase: PhaseLoading}
	s.mu.Unlock()

	s.wg.Add(1)
	go s.run(token, query)

	return nil
}

func (s *Screen) run(token uint64, query gasprices.Query) {
	defer s.wg.Done()

	result, err := s.client.Fetch(s.ctx, query)

	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.generation {
		// A newer submission superseded this one.
		s.log.Debug("discarding stale response", "token", token, "current", s.generation)
		return
	}
	if s.ctx.Err() != nil {
		// The screen was torn down while the request was in flight.
		return
	}

	if err == nil {
		s.fetch = FetchState{Phase: PhaseSuccess, Result: result}
		return
	}

	var apiErr *gasprices.APIError
	if errors.As(err, &apiErr) {
		msg := apiErr.Message
		if msg == "" {
			msg = MsgFetchFailed
		}
		s.fetch = FetchState{Phase: PhaseError, ErrMessage: msg}
		return
	}

	// Transport or decode failure. The cause is diagnostic only; the
	// user sees the generic message.
	s.log.Error("gas price request failed", "error", err)
	s.fetch = FetchState{Phase: PhaseError, ErrMessage: MsgNetworkError}
}

// Wait blocks until every issued submission has settled.
func (s *Screen) Wait() {
	s.wg.Wait()
}

// Close tears the screen down: any in-flight request is cancelled and
// its late result discarded.
func (s *Screen) Close() {
	s.cancel()
	s.wg.Wait()
}
