package simulation

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/lao-tseu-is-alive/go-boids-arena/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-boids-arena/pkg/geometry"
)

func newTestRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestInitializeFlock_PopulationMismatch(t *testing.T) {
	cfg := DefaultConfig()
	spawn := Volume{Min: cfg.SpawnMin, Max: cfg.SpawnMax}
	_, err := InitializeFlock(0, cfg.NumBoids+1, spawn, cfg, newTestRand())
	if !errors.Is(err, ErrPopulationMismatch) {
		t.Fatalf("InitializeFlock with wrong size: err = %v; want ErrPopulationMismatch", err)
	}
}

func TestInitializeFlock_SpawnBounds(t *testing.T) {
	cfg := DefaultConfig()
	spawn := Volume{Min: cfg.SpawnMin, Max: cfg.SpawnMax}
	f, err := InitializeFlock(3, cfg.NumBoids, spawn, cfg, newTestRand())
	if err != nil {
		t.Fatalf("InitializeFlock: %v", err)
	}
	if f.ID != 3 || f.Len() != cfg.NumBoids {
		t.Fatalf("flock id=%d len=%d; want 3 and %d", f.ID, f.Len(), cfg.NumBoids)
	}
	inside := func(v, lo, hi geometry.Vector3) bool {
		return v.X >= lo.X && v.X <= hi.X && v.Y >= lo.Y && v.Y <= hi.Y && v.Z >= lo.Z && v.Z <= hi.Z
	}
	for i := range f.Boids {
		b := &f.Boids[i]
		if !inside(b.Position(), cfg.SpawnMin, cfg.SpawnMax) {
			t.Errorf("boid %d spawned at %v outside %v..%v", i, b.Position(), cfg.SpawnMin, cfg.SpawnMax)
		}
		if !inside(b.Velocity(), cfg.VelocityMin, cfg.VelocityMax) {
			t.Errorf("boid %d velocity %v outside %v..%v", i, b.Velocity(), cfg.VelocityMin, cfg.VelocityMax)
		}
	}
}

func TestInitializeFlock_PerFlockSettings(t *testing.T) {
	cfg := DefaultConfig()
	custom := behavior.DefaultSettings()
	custom.MaxSpeed = 25
	cfg.FlockSettings = []behavior.Settings{behavior.DefaultSettings(), custom}
	spawn := Volume{Min: cfg.SpawnMin, Max: cfg.SpawnMax}

	f, err := InitializeFlock(1, cfg.NumBoids, spawn, cfg, newTestRand())
	if err != nil {
		t.Fatalf("InitializeFlock: %v", err)
	}
	if f.Settings.MaxSpeed != 25 {
		t.Errorf("flock 1 MaxSpeed = %v; want 25", f.Settings.MaxSpeed)
	}
	f, err = InitializeFlock(4, cfg.NumBoids, spawn, cfg, newTestRand())
	if err != nil {
		t.Fatalf("InitializeFlock: %v", err)
	}
	if f.Settings != cfg.Behavior {
		t.Errorf("flock 4 settings = %+v; want the shared behavior", f.Settings)
	}
}

func TestFlock_UpdateIsTwoPhase(t *testing.T) {
	s := behavior.DefaultSettings()
	mk := func(p, v geometry.Vector3) behavior.Boid {
		b, err := behavior.New(p, v, s)
		if err != nil {
			t.Fatalf("behavior.New: %v", err)
		}
		return b
	}
	boids := []behavior.Boid{
		mk(geometry.Vector3{X: 0, Y: 20, Z: 0}, geometry.Vector3{X: 10}),
		mk(geometry.Vector3{X: 8, Y: 20, Z: 0}, geometry.Vector3{Z: 12}),
		mk(geometry.Vector3{X: 3, Y: 25, Z: 4}, geometry.Vector3{X: -11}),
	}

	// expected: every force from the untouched arena, then integrate
	want := append([]behavior.Boid(nil), boids...)
	forces := make([]geometry.Vector3, len(want))
	for i := range want {
		forces[i] = behavior.ComputeForce(want, i, s)
	}
	for i := range want {
		want[i].Force = forces[i]
		want[i].Integrate(0.1, s)
	}

	f := NewFlock(0, s, boids)
	if err := f.Update(0.1); err != nil {
		t.Fatalf("Update: %v", err)
	}
	for i := range want {
		if !f.Boids[i].Position().Eq(want[i].Position()) {
			t.Errorf("boid %d at %v; want %v", i, f.Boids[i].Position(), want[i].Position())
		}
		if !f.Boids[i].Velocity().Eq(want[i].Velocity()) {
			t.Errorf("boid %d velocity %v; want %v", i, f.Boids[i].Velocity(), want[i].Velocity())
		}
	}
	if f.Rejected() != 0 {
		t.Errorf("Rejected = %d; want 0", f.Rejected())
	}
}

func TestFlock_UpdateScenario(t *testing.T) {
	s := behavior.DefaultSettings()
	f := NewFlock(0, s, nil)
	for _, p := range []geometry.Vector3{{X: 0, Y: 20}, {X: 5, Y: 20}, {X: 100, Y: 20}} {
		b, err := behavior.New(p, geometry.Vector3{}, s)
		if err != nil {
			t.Fatalf("behavior.New: %v", err)
		}
		f.Boids = append(f.Boids, b)
	}
	if err := f.Update(0.1); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if v := f.Boids[0].Velocity(); v.X <= 0 {
		t.Errorf("boid 0 velocity %v; want X > 0", v)
	}
	if v := f.Boids[1].Velocity(); v.X >= 0 {
		t.Errorf("boid 1 velocity %v; want X < 0", v)
	}
	if v := f.Boids[2].Velocity(); !v.IsZero() {
		t.Errorf("isolated boid velocity %v; want zero", v)
	}
	if !f.Boids[2].Position().Eq(geometry.Vector3{X: 100, Y: 20}) {
		t.Errorf("isolated boid moved to %v", f.Boids[2].Position())
	}
}

func TestFlock_UpdateNegativeTimeStep(t *testing.T) {
	s := behavior.DefaultSettings()
	b, _ := behavior.New(geometry.Vector3{Y: 20}, geometry.Vector3{X: 10}, s)
	f := NewFlock(0, s, []behavior.Boid{b})
	if err := f.Update(-0.1); !errors.Is(err, ErrNegativeTimeStep) {
		t.Fatalf("Update(-0.1) err = %v; want ErrNegativeTimeStep", err)
	}
	if !f.Boids[0].Position().Eq(geometry.Vector3{Y: 20}) {
		t.Errorf("boid moved on a rejected step: %v", f.Boids[0].Position())
	}
}
