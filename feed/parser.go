package feed

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/theoremus-urban-solutions/eta-digest/store"
)

// Kind classifies an inbound message by its topic.
type Kind int

const (
	KindUnknown Kind = iota
	KindStation
	KindTransport
)

// Classify recognizes the topic family by substring, per the upstream
// broker contract.
func Classify(topic string) Kind {
	switch {
	case strings.Contains(topic, "station"):
		return KindStation
	case strings.Contains(topic, "transport"):
		return KindTransport
	default:
		return KindUnknown
	}
}

// StationUpdate is one decoded station/prediction message: the ETA
// pairs reported for a single route at a single station.
type StationUpdate struct {
	StationID   int
	Route       string
	Predictions []store.Prediction
}

// ParseStationUpdate decodes a station/prediction payload:
//
//	{"station_id": 123, "eta": {"30": [[5, "3913"], [3, "1248"]]}}
//
// Only the first route entry of the eta object, in document order, is
// consumed. A payload describing several routes for one station is not
// expected to occur; if it does, the rest is dropped. The json.Decoder
// token walk keeps "first" deterministic, which a map decode would not.
func ParseStationUpdate(payload []byte) (StationUpdate, error) {
	var msg struct {
		StationID *int            `json:"station_id"`
		ETA       json.RawMessage `json:"eta"`
	}
	if err := json.Unmarshal(payload, &msg); err != nil {
		return StationUpdate{}, err
	}
	if msg.StationID == nil {
		return StationUpdate{}, errors.New("missing station_id")
	}
	if len(msg.ETA) == 0 {
		return StationUpdate{}, errors.New("missing eta object")
	}

	dec := json.NewDecoder(bytes.NewReader(msg.ETA))
	tok, err := dec.Token()
	if err != nil {
		return StationUpdate{}, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return StationUpdate{}, errors.New("eta is not an object")
	}
	if !dec.More() {
		return StationUpdate{}, errors.New("eta object is empty")
	}
	tok, err = dec.Token()
	if err != nil {
		return StationUpdate{}, err
	}
	route, ok := tok.(string)
	if !ok {
		return StationUpdate{}, errors.New("eta key is not a string")
	}

	var pairs [][]any
	if err := dec.Decode(&pairs); err != nil {
		return StationUpdate{}, fmt.Errorf("eta list for route %s: %w", route, err)
	}
	predictions := make([]store.Prediction, 0, len(pairs))
	for i, pair := range pairs {
		if len(pair) < 2 {
			return StationUpdate{}, fmt.Errorf("eta pair %d for route %s is too short", i, route)
		}
		eta, ok := pair[0].(float64)
		if !ok {
			return StationUpdate{}, fmt.Errorf("eta pair %d for route %s: minutes is not a number", i, route)
		}
		board, ok := pair[1].(string)
		if !ok {
			return StationUpdate{}, fmt.Errorf("eta pair %d for route %s: board is not a string", i, route)
		}
		predictions = append(predictions, store.Prediction{ETA: int(eta), Board: board})
	}

	return StationUpdate{
		StationID:   *msg.StationID,
		Route:       route,
		Predictions: predictions,
	}, nil
}

// ParseTransportPosition decodes a transport/position payload:
//
//	{"rtu_id": "...", "board": "3913", "route": "30", "lat": 47.02,
//	 "lon": 28.83, "speed": 34, "dir": 90, "last_station": 4}
//
// last_station is optional and stays nil when the backend does not have
// it yet.
func ParseTransportPosition(payload []byte) (store.Telemetry, error) {
	var msg struct {
		RTUID       string  `json:"rtu_id"`
		Board       string  `json:"board"`
		Route       string  `json:"route"`
		Lat         float64 `json:"lat"`
		Lon         float64 `json:"lon"`
		Speed       float64 `json:"speed"`
		Dir         float64 `json:"dir"`
		LastStation *int    `json:"last_station"`
	}
	if err := json.Unmarshal(payload, &msg); err != nil {
		return store.Telemetry{}, err
	}
	if msg.Board == "" {
		return store.Telemetry{}, errors.New("missing board")
	}
	return store.Telemetry{
		RTUID:       msg.RTUID,
		Board:       msg.Board,
		Route:       msg.Route,
		Lat:         msg.Lat,
		Lon:         msg.Lon,
		Speed:       msg.Speed,
		Dir:         msg.Dir,
		LastStation: msg.LastStation,
	}, nil
}
