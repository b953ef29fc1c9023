package microgrid

import (
	"math"

	"github.com/odelab/odelab/internal/ode"
)

// Params holds the plant constants of the microgrid model. The struct
// is copied into the System at construction and never looked up
// dynamically during integration.
type Params struct {
	MaxSolarCapacity           float64
	MaxWindCapacity            float64
	BatteryCapacity            float64
	GridConnectionLimit        float64
	SolarEfficiency            float64
	WindEfficiency             float64
	BatteryChargeEfficiency    float64
	BatteryDischargeEfficiency float64
	TemperatureSensitivity     float64
	WindVariability            float64
}

func DefaultParams() Params {
	return Params{
		MaxSolarCapacity:           150,
		MaxWindCapacity:            120,
		BatteryCapacity:            300,
		GridConnectionLimit:        100,
		SolarEfficiency:            0.20,
		WindEfficiency:             0.38,
		BatteryChargeEfficiency:    0.95,
		BatteryDischargeEfficiency: 0.92,
		TemperatureSensitivity:     0.03,
		WindVariability:            0.15,
	}
}

// Conditions are the environmental inputs, fixed for a whole run.
type Conditions struct {
	Temperature float64
	WindSpeed   float64
}

func DefaultConditions() Conditions {
	return Conditions{Temperature: 20, WindSpeed: 5}
}

// System models a small renewable installation: solar and wind
// generation with diurnal forcing, a battery, and a capped grid
// connection. State vector: [solar, wind, battery, grid draw].
// Time is in hours.
type System struct {
	params Params
	cond   Conditions
}

func New(p Params, c Conditions) *System {
	return &System{params: p, cond: c}
}

func (s *System) StateDim() int { return 4 }

func (s *System) DefaultState() ode.State {
	return ode.State{10, 10, 50, 0}
}

// Derivative is the right-hand side supplied to the integrators. The
// method value satisfies ode.Func.
func (s *System) Derivative(x ode.State, t float64) ode.State {
	solar, wind, battery := x[0], x[1], x[2]

	solarInput := s.params.MaxSolarCapacity * s.params.SolarEfficiency * s.solarFactor(t)
	windInput := s.params.MaxWindCapacity * s.params.WindEfficiency * s.windFactor(t)
	demand := s.residentialDemand(t) + s.industrialDemand(t) + s.commercialDemand(t)

	charge := 0.0
	if battery < s.params.BatteryCapacity {
		charge = 0.9
	}

	deficit := demand - (solar + wind + battery)
	gridDraw := math.Min(math.Max(deficit, 0), s.params.GridConnectionLimit)

	return ode.State{
		solarInput*(1-solar/s.params.MaxSolarCapacity) - solar,
		windInput*(1-wind/s.params.MaxWindCapacity) - wind,
		(solar + wind - demand) * charge,
		gridDraw,
	}
}

// solarFactor is the normalized diurnal solar profile scaled by
// temperature sensitivity.
func (s *System) solarFactor(t float64) float64 {
	return (math.Sin(2*math.Pi*t/24)*0.5 + 0.5) * (1 + s.params.TemperatureSensitivity*s.cond.Temperature)
}

func (s *System) windFactor(t float64) float64 {
	return (math.Cos(2*math.Pi*t/24)*0.5 + 0.5) * (1 + s.params.WindVariability*s.cond.WindSpeed)
}

func (s *System) residentialDemand(t float64) float64 {
	return 50 + 20*math.Sin(2*math.Pi*t/24)
}

func (s *System) industrialDemand(t float64) float64 {
	return 80 + 30*math.Cos(2*math.Pi*t/24)
}

func (s *System) commercialDemand(t float64) float64 {
	return 40 + 10*math.Sin(2*math.Pi*t/12)
}

// GetParams exposes the plant constants by name.
func (s *System) GetParams() map[string]float64 {
	return map[string]float64{
		"max_solar_capacity":    s.params.MaxSolarCapacity,
		"max_wind_capacity":     s.params.MaxWindCapacity,
		"battery_capacity":      s.params.BatteryCapacity,
		"grid_connection_limit": s.params.GridConnectionLimit,
		"solar_efficiency":      s.params.SolarEfficiency,
		"wind_efficiency":       s.params.WindEfficiency,
	}
}

func (s *System) SetParam(name string, value float64) {
	switch name {
	case "max_solar_capacity":
		s.params.MaxSolarCapacity = value
	case "max_wind_capacity":
		s.params.MaxWindCapacity = value
	case "battery_capacity":
		s.params.BatteryCapacity = value
	case "grid_connection_limit":
		s.params.GridConnectionLimit = value
	case "solar_efficiency":
		s.params.SolarEfficiency = value
	case "wind_efficiency":
		s.params.WindEfficiency = value
	}
}
