package feed

import (
	"reflect"
	"testing"

	"github.com/theoremus-urban-solutions/eta-digest/store"
)

func newTestPipeline() (*Pipeline, *store.PredictionStore, *store.VehicleTracker) {
	predictions := store.NewPredictionStore()
	vehicles := store.NewVehicleTracker()
	return NewPipeline(predictions, vehicles), predictions, vehicles
}

func TestPipeline_StationMessage(t *testing.T) {
	p, predictions, _ := newTestPipeline()

	p.Handle("state/station/10101", []byte(`{"station_id": 101, "eta": {"30": [[5, "A"], [5, "B"], [3, "C"]]}}`))

	want := []int{3, 5}
	if got := predictions.Get("30", 101); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestPipeline_TransportMessage(t *testing.T) {
	p, _, vehicles := newTestPipeline()

	p.Handle("state/transport/3913", []byte(`{"rtu_id": "rtu-17", "board": "3913", "route": "30",
		"lat": 47.02, "lon": 28.83, "speed": 34, "dir": 90}`))

	v, ok := vehicles.Get("3913")
	if !ok {
		t.Fatal("vehicle should be tracked after a transport message")
	}
	if v.Route != "30" {
		t.Errorf("expected route 30, got %s", v.Route)
	}
}

func TestPipeline_UnknownTopicIgnored(t *testing.T) {
	p, predictions, vehicles := newTestPipeline()

	p.Handle("state/weather/now", []byte(`{"station_id": 101, "eta": {"30": [[5, "A"]]}}`))

	if predictions.EntryCount() != 0 {
		t.Error("unknown topics must not reach the prediction store")
	}
	if vehicles.Len() != 0 {
		t.Error("unknown topics must not reach the tracker")
	}
}

func TestPipeline_MalformedPayloadDropped(t *testing.T) {
	p, predictions, vehicles := newTestPipeline()

	p.Handle("state/station/10101", []byte(`not json`))
	p.Handle("state/transport/3913", []byte(`{"board": `))

	if predictions.EntryCount() != 0 || vehicles.Len() != 0 {
		t.Error("malformed payloads must be dropped without touching the stores")
	}
}

func TestPipeline_Idempotence(t *testing.T) {
	p, predictions, _ := newTestPipeline()
	msg := []byte(`{"station_id": 101, "eta": {"30": [[5, "A"], [3, "C"]]}}`)

	p.Handle("state/station/10101", msg)
	first := predictions.Get("30", 101)
	p.Handle("state/station/10101", msg)
	second := predictions.Get("30", 101)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("re-ingesting an identical message must not change state: %v vs %v", first, second)
	}
	if predictions.EntryCount() != 1 {
		t.Errorf("expected a single entry, got %d", predictions.EntryCount())
	}
}
