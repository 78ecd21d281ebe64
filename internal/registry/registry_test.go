package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/liquid-cat/internal/config"
)

func TestRegisterAndCreate(t *testing.T) {
	Register(VariantInfo{ID: "test-basic", Title: "Basic"}, func(string) (config.LoaderConfig, error) {
		return config.DefaultPinwheelConfig(), nil
	})

	if !Exists("test-basic") {
		t.Fatal("test-basic should exist after Register")
	}

	v, err := Create("test-basic", "")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if v.Title != "Basic" {
		t.Errorf("Title = %q, expected %q", v.Title, "Basic")
	}
	if v.Config.Timing.StopAfter != config.StopAfterFirst {
		t.Errorf("StopAfter = %q, expected %q", v.Config.Timing.StopAfter, config.StopAfterFirst)
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("nope", "")
	if err == nil {
		t.Fatal("expected error for unknown variant")
	}
	if err.Error() != `registry: unknown variant "nope"` {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestCreateWrapsFactoryError(t *testing.T) {
	boom := errors.New("boom")
	Register(VariantInfo{ID: "test-broken"}, func(string) (config.LoaderConfig, error) {
		return config.LoaderConfig{}, boom
	})

	_, err := Create("test-broken", "")
	if !errors.Is(err, boom) {
		t.Errorf("Create() error = %v, expected to wrap %v", err, boom)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register(VariantInfo{ID: "test-dup"}, func(string) (config.LoaderConfig, error) {
		return config.DefaultLoaderConfig(), nil
	})

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register(VariantInfo{ID: "test-dup"}, func(string) (config.LoaderConfig, error) {
		return config.DefaultLoaderConfig(), nil
	})
}

func TestListSorted(t *testing.T) {
	Register(VariantInfo{ID: "test-zz"}, func(string) (config.LoaderConfig, error) {
		return config.DefaultLoaderConfig(), nil
	})
	Register(VariantInfo{ID: "test-aa"}, func(string) (config.LoaderConfig, error) {
		return config.DefaultLoaderConfig(), nil
	})

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}
