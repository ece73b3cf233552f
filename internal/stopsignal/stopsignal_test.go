package stopsignal

import "testing"

func TestRequestObserveReset(t *testing.T) {
	dir := t.TempDir()

	c, err := New(dir)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if c.IsStopRequested() {
		t.Error("fresh coordinator should not report stop")
	}

	if err := c.RequestStop(); err != nil {
		t.Fatalf("RequestStop() error = %v", err)
	}
	if !c.IsStopRequested() {
		t.Error("stop not observed after RequestStop")
	}

	if err := c.Reset(); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if c.IsStopRequested() {
		t.Error("stop still reported after Reset")
	}
}

func TestVisibleAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	controller, err := New(dir)
	if err != nil {
		t.Fatal(err)
	}
	worker, err := New(dir)
	if err != nil {
		t.Fatal(err)
	}

	// The controller and worker share only the directory, the way a UI
	// process and a pipeline process would.
	if err := controller.RequestStop(); err != nil {
		t.Fatal(err)
	}
	if !worker.IsStopRequested() {
		t.Error("stop requested by controller not visible to worker")
	}

	if err := worker.Reset(); err != nil {
		t.Fatal(err)
	}
	if controller.IsStopRequested() {
		t.Error("reset by worker not visible to controller")
	}
}

func TestResetIdempotent(t *testing.T) {
	c, err := New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if err := c.Reset(); err != nil {
		t.Errorf("Reset() on clean state error = %v", err)
	}
	if err := c.Reset(); err != nil {
		t.Errorf("second Reset() error = %v", err)
	}
}
