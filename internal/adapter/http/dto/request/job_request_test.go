package request

import "testing"

func TestCreateJobRequest_ResolveModel(t *testing.T) {
	t.Run("vehicle_model wins", func(t *testing.T) {
		r := CreateJobRequest{VehicleModel: " Bajaj Boxer ", MotorcycleModel: "TVS Star"}
		if got := r.ResolveModel(); got != "Bajaj Boxer" {
			t.Fatalf("expected trimmed vehicle_model, got %q", got)
		}
	})

	t.Run("falls back to motorcycle_model", func(t *testing.T) {
		r := CreateJobRequest{MotorcycleModel: "TVS Star"}
		if got := r.ResolveModel(); got != "TVS Star" {
			t.Fatalf("expected motorcycle_model fallback, got %q", got)
		}
	})

	t.Run("both empty", func(t *testing.T) {
		r := CreateJobRequest{VehicleModel: "   "}
		if got := r.ResolveModel(); got != "" {
			t.Fatalf("expected empty, got %q", got)
		}
	})
}
