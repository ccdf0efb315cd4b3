package feed

import (
	"log"

	"github.com/theoremus-urban-solutions/eta-digest/store"
)

// Pipeline is the single writer path into the prediction store and the
// vehicle tracker. Handle is safe to call concurrently with readers of
// those stores; the stores serialize updates to the same key.
type Pipeline struct {
	predictions *store.PredictionStore
	vehicles    *store.VehicleTracker
}

// NewPipeline creates a pipeline writing into the given stores.
func NewPipeline(predictions *store.PredictionStore, vehicles *store.VehicleTracker) *Pipeline {
	return &Pipeline{
		predictions: predictions,
		vehicles:    vehicles,
	}
}

// Handle classifies one inbound message by topic and folds it into the
// matching store. Undecodable payloads are dropped and logged - the
// next update for the same key supersedes the lost one, so there is
// nothing to retry. Unrecognized topics are ignored.
func (p *Pipeline) Handle(topic string, payload []byte) {
	switch Classify(topic) {
	case KindStation:
		upd, err := ParseStationUpdate(payload)
		if err != nil {
			log.Printf("feed: dropping station message on %s: %v", topic, err)
			return
		}
		p.predictions.Update(upd.Route, upd.StationID, upd.Predictions)
	case KindTransport:
		tel, err := ParseTransportPosition(payload)
		if err != nil {
			log.Printf("feed: dropping transport message on %s: %v", topic, err)
			return
		}
		p.vehicles.Update(tel)
	}
}
