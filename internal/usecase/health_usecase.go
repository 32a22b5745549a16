package usecase

import "context"

type HealthUsecase interface {
	Check(ctx context.Context) (map[string]string, bool)
}

// Pinger is any dependency that can report reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

type healthUsecase struct {
	deps map[string]Pinger
}

// NewHealthUsecase checks each named dependency; a nil entry is reported as "disabled".
func NewHealthUsecase(deps map[string]Pinger) HealthUsecase {
	return &healthUsecase{deps: deps}
}

func (u *healthUsecase) Check(ctx context.Context) (map[string]string, bool) {
	status := map[string]string{
		"status": "ok",
	}
	healthy := true
	for name, dep := range u.deps {
		if dep == nil {
			status[name] = "disabled"
			continue
		}
		if err := dep.Ping(ctx); err != nil {
			status[name] = "down"
			healthy = false
			continue
		}
		status[name] = "up"
	}
	if !healthy {
		status["status"] = "degraded"
	}
	return status, healthy
}
