package api

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mapauhernandez/happy-robot-acme-demo/internal/board"
	"github.com/mapauhernandez/happy-robot-acme-demo/internal/fmcsa"
	apperrors "github.com/mapauhernandez/happy-robot-acme-demo/internal/platform/errors"
	"github.com/mapauhernandez/happy-robot-acme-demo/internal/platform/httpx"
	"github.com/mapauhernandez/happy-robot-acme-demo/internal/storage"
)

// maxRequestBody caps JSON request payload sizes.
const maxRequestBody = 1 << 20

// recommendLimitPerEquipment caps how many candidates each equipment
// preference contributes before the global best is chosen.
const recommendLimitPerEquipment = 5

// loadJSON is the wire shape for a board load.
type loadJSON struct {
	LoadID           string  `json:"load_id"`
	Origin           string  `json:"origin"`
	Destination      string  `json:"destination"`
	PickupDatetime   string  `json:"pickup_datetime"`
	DeliveryDatetime string  `json:"delivery_datetime"`
	EquipmentType    string  `json:"equipment_type"`
	LoadboardRate    float64 `json:"loadboard_rate"`
	Weight           int     `json:"weight"`
	CommodityType    string  `json:"commodity_type"`
	NumOfPieces      int     `json:"num_of_pieces"`
	Miles            int     `json:"miles"`
	Dimensions       string  `json:"dimensions"`
	Notes            string  `json:"notes,omitempty"`
}

func toLoadJSON(load board.Load) loadJSON {
	return loadJSON{
		LoadID:           load.LoadID,
		Origin:           load.Origin,
		Destination:      load.Destination,
		PickupDatetime:   load.PickupDatetime.UTC().Format(time.RFC3339),
		DeliveryDatetime: load.DeliveryDatetime.UTC().Format(time.RFC3339),
		EquipmentType:    load.EquipmentType,
		LoadboardRate:    load.LoadboardRate,
		Weight:           load.Weight,
		CommodityType:    load.CommodityType,
		NumOfPieces:      load.NumOfPieces,
		Miles:            load.Miles,
		Dimensions:       load.Dimensions,
		Notes:            load.Notes,
	}
}

func toLoadJSONs(loads []board.Load) []loadJSON {
	out := make([]loadJSON, 0, len(loads))
	for _, load := range loads {
		out = append(out, toLoadJSON(load))
	}
	return out
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	_ = httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func isNumeric(value string) bool {
	if value == "" {
		return false
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// lookupCarrier resolves an MC number and writes the error response itself
// when the lookup fails.
func (s *Server) lookupCarrier(w http.ResponseWriter, r *http.Request) (*fmcsa.Carrier, bool) {
	mc := strings.TrimSpace(r.URL.Query().Get("mc"))
	if !isNumeric(mc) {
		_ = httpx.WriteJSONError(w, http.StatusBadRequest, "Query parameter 'mc' must be a numeric docket number.")
		return nil, false
	}

	carrier, err := s.carriers.CarrierByMC(httpx.RequestContext(r), mc)
	switch {
	case err == nil:
		return carrier, true
	case errors.Is(err, fmcsa.ErrNotFound):
		httpx.WriteError(w, apperrors.E(apperrors.KindNotFound, "No carrier found for MC "+mc+"."))
	default:
		log.Printf("carrier lookup mc=%s: %v", mc, err)
		httpx.WriteError(w, apperrors.E(apperrors.KindUpstream, "Unable to reach FMCSA service."))
	}
	return nil, false
}

func (s *Server) handleVerifyCarrier(w http.ResponseWriter, r *http.Request) {
	carrier, ok := s.lookupCarrier(w, r)
	if !ok {
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, carrier)
}

func (s *Server) handleSearchLoads(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	equipment := strings.TrimSpace(query.Get("equipment_type"))
	if equipment == "" {
		_ = httpx.WriteJSONError(w, http.StatusBadRequest, "Query parameter 'equipment_type' is required.")
		return
	}

	var pickupAfter *time.Time
	if raw := strings.TrimSpace(query.Get("pickup_after")); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			_ = httpx.WriteJSONError(w, http.StatusBadRequest, "Query parameter 'pickup_after' must be an RFC 3339 timestamp.")
			return
		}
		pickupAfter = &parsed
	}

	loads := s.board.Search(equipment, query.Get("origin"), pickupAfter, s.now().UTC())
	_ = httpx.WriteJSON(w, http.StatusOK, map[string]any{"items": toLoadJSONs(loads)})
}

// recommendationGroupJSON mirrors board.RecommendationGroup on the wire.
type recommendationGroupJSON struct {
	EquipmentType      string     `json:"equipment_type"`
	MatchedOriginState string     `json:"matched_origin_state,omitempty"`
	Items              []loadJSON `json:"items"`
}

func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	carrier, ok := s.lookupCarrier(w, r)
	if !ok {
		return
	}
	if !carrier.Eligible {
		httpx.WriteError(w, apperrors.E(apperrors.KindConflict, "Carrier "+carrier.MC+" is not eligible to book loads."))
		return
	}

	prefs := board.InferEquipmentPreferences(carrier.CarrierName, carrier.AuthorityStatus)
	groups := s.board.Recommend(prefs, carrier.PhysicalState, recommendLimitPerEquipment, s.now().UTC())
	if len(groups) == 0 {
		_ = httpx.WriteJSONError(w, http.StatusNotFound, "No loads matched the carrier profile.")
		return
	}

	out := make([]recommendationGroupJSON, 0, len(groups))
	for _, group := range groups {
		out = append(out, recommendationGroupJSON{
			EquipmentType:      group.EquipmentType,
			MatchedOriginState: group.MatchLabel,
			Items:              toLoadJSONs(group.Items),
		})
	}
	_ = httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"carrier":         carrier,
		"recommendations": out,
	})
}

type matchRequest struct {
	Origin        string `json:"origin"`
	EquipmentType string `json:"equipment_type"`
}

func (s *Server) handleMatchLoad(w http.ResponseWriter, r *http.Request) {
	var req matchRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Origin) == "" {
		_ = httpx.WriteJSONError(w, http.StatusBadRequest, "Field 'origin' is required.")
		return
	}

	load, found := s.board.Match(req.Origin, req.EquipmentType, s.rng, s.now().UTC())
	if !found {
		_ = httpx.WriteJSONError(w, http.StatusNotFound, "No load available for origin "+req.Origin+".")
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, toLoadJSON(load))
}

type negotiateRequest struct {
	ListedRate   float64 `json:"listed_rate"`
	CounterOffer float64 `json:"counter_offer"`
}

func (s *Server) handleNegotiate(w http.ResponseWriter, r *http.Request) {
	var req negotiateRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}
	if req.ListedRate <= 0 || req.CounterOffer <= 0 {
		_ = httpx.WriteJSONError(w, http.StatusBadRequest, "Fields 'listed_rate' and 'counter_offer' must be greater than zero.")
		return
	}

	result := board.Negotiate(req.ListedRate, req.CounterOffer)
	_ = httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"accepted":    result.Accepted,
		"final_offer": result.FinalOffer,
	})
}

// negotiationEventRequest tolerates stringified booleans and numbers, which
// the upstream call-automation webhooks are known to send.
type negotiationEventRequest struct {
	LoadAccepted      flexBool  `json:"load_accepted"`
	PostedPrice       flexFloat `json:"posted_price"`
	FinalPrice        flexFloat `json:"final_price"`
	TotalNegotiations flexInt   `json:"total_negotiations"`
	CallSentiment     string    `json:"call_sentiment"`
	Commodity         string    `json:"commodity"`
}

func (s *Server) handleRecordNegotiation(w http.ResponseWriter, r *http.Request) {
	var req negotiationEventRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.CallSentiment) == "" {
		_ = httpx.WriteJSONError(w, http.StatusBadRequest, "Field 'call_sentiment' is required.")
		return
	}
	if strings.TrimSpace(req.Commodity) == "" {
		_ = httpx.WriteJSONError(w, http.StatusBadRequest, "Field 'commodity' is required.")
		return
	}
	if req.PostedPrice < 0 || req.FinalPrice < 0 || req.TotalNegotiations < 0 {
		_ = httpx.WriteJSONError(w, http.StatusBadRequest, "Fields 'posted_price', 'final_price' and 'total_negotiations' must not be negative.")
		return
	}

	event := storage.NegotiationEvent{
		LoadAccepted:      bool(req.LoadAccepted),
		PostedPrice:       float64(req.PostedPrice),
		FinalPrice:        float64(req.FinalPrice),
		TotalNegotiations: int(req.TotalNegotiations),
		CallSentiment:     strings.TrimSpace(req.CallSentiment),
		Commodity:         strings.TrimSpace(req.Commodity),
		CreatedAt:         s.now().UTC(),
	}
	id, err := s.store.InsertNegotiation(httpx.RequestContext(r), event)
	if err != nil {
		log.Printf("insert negotiation: %v", err)
		_ = httpx.WriteJSONError(w, http.StatusInternalServerError, "Failed to record negotiation.")
		return
	}
	event.ID = id
	_ = httpx.WriteJSON(w, http.StatusCreated, event)
}

func (s *Server) handleListNegotiations(w http.ResponseWriter, r *http.Request) {
	events, err := s.store.ListNegotiations(httpx.RequestContext(r))
	if err != nil {
		log.Printf("list negotiations: %v", err)
		_ = httpx.WriteJSONError(w, http.StatusInternalServerError, "Failed to load negotiations.")
		return
	}
	if events == nil {
		events = []storage.NegotiationEvent{}
	}
	_ = httpx.WriteJSON(w, http.StatusOK, events)
}

func (s *Server) handleLogCall(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBody))
	if err != nil {
		_ = httpx.WriteJSONError(w, http.StatusBadRequest, "Failed to read request body.")
		return
	}
	if len(body) == 0 || !json.Valid(body) {
		_ = httpx.WriteJSONError(w, http.StatusBadRequest, "Request body must be valid JSON.")
		return
	}

	record := storage.CallRecord{ID: uuid.NewString(), Payload: body, ReceivedAt: s.now().UTC()}
	if err := s.store.InsertCall(httpx.RequestContext(r), record); err != nil {
		log.Printf("insert call: %v", err)
		_ = httpx.WriteJSONError(w, http.StatusInternalServerError, "Failed to record call.")
		return
	}
	_ = httpx.WriteJSON(w, http.StatusCreated, map[string]string{"status": "saved", "id": record.ID})
}

// decodeJSONBody parses a JSON request body into target and writes the 400
// response itself on failure.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, target any) bool {
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxRequestBody))
	if err := decoder.Decode(target); err != nil {
		_ = httpx.WriteJSONError(w, http.StatusBadRequest, "Invalid request payload.")
		return false
	}
	return true
}
