package robotics

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// ErrUnknownDeviceType is returned for device types without a command set
var ErrUnknownDeviceType = errors.New("unknown device type")

// ErrInvalidCommand is returned when a command isn't valid for the
// device type
var ErrInvalidCommand = errors.New("invalid command")

// ErrInvalidParams is returned when command parameters are out of range
var ErrInvalidParams = errors.New("invalid command parameters")

// commandSets maps each device type to the commands it accepts
var commandSets = map[string][]string{
	"drone": {"takeoff", "land", "hover", "move", "rotate", "return_home", "emergency_stop"},
	"robot": {"move_forward", "move_backward", "turn_left", "turn_right", "stop", "grab", "release"},
	"rover": {"drive", "stop", "turn", "scan", "deploy_sensor", "retract_sensor"},
}

// SupportedDeviceTypes lists the device types with a command set.
func SupportedDeviceTypes() []string {
	return []string{"drone", "robot", "rover"}
}

// Commands returns the command set for a device type.
func Commands(deviceType string) ([]string, error) {
	commands, ok := commandSets[deviceType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDeviceType, deviceType)
	}
	return commands, nil
}

// ValidateCommand checks that a command is valid for the device type.
func ValidateCommand(deviceType, command string) error {
	commands, err := Commands(deviceType)
	if err != nil {
		return err
	}
	for _, c := range commands {
		if c == command {
			return nil
		}
	}
	return fmt.Errorf("%w: %q for device type %q, valid commands: %v",
		ErrInvalidCommand, command, deviceType, commands)
}

// ParamKind distinguishes the parameter shapes a command can carry
type ParamKind string

const (
	KindMovement ParamKind = "movement"
	KindRotation ParamKind = "rotation"
	KindHover    ParamKind = "hover"
	KindSimple   ParamKind = "simple"
)

// Params holds the parsed parameters of a command. Only the fields for
// the command's Kind are meaningful.
type Params struct {
	Kind       ParamKind `json:"kind"`
	Speed      float64   `json:"speed,omitempty"`
	Direction  string    `json:"direction,omitempty"`
	DurationMS int64     `json:"duration_ms,omitempty"`
	Degrees    float64   `json:"degrees,omitempty"`
	Altitude   float64   `json:"altitude,omitempty"`
}

// ParseParams validates and normalizes raw command parameters, applying
// defaults for anything omitted.
func ParseParams(command string, raw map[string]interface{}) (*Params, error) {
	switch command {
	case "move", "drive":
		speed := floatParam(raw, "speed", 0.5)
		if speed < 0 || speed > 1 {
			return nil, fmt.Errorf("%w: speed must be between 0.0 and 1.0", ErrInvalidParams)
		}
		return &Params{
			Kind:       KindMovement,
			Speed:      speed,
			Direction:  stringParam(raw, "direction", "forward"),
			DurationMS: int64(floatParam(raw, "duration_ms", 1000)),
		}, nil
	case "rotate", "turn", "turn_left", "turn_right":
		return &Params{
			Kind:    KindRotation,
			Degrees: floatParam(raw, "degrees", 90),
			Speed:   floatParam(raw, "speed", 0.3),
		}, nil
	case "hover":
		return &Params{
			Kind:     KindHover,
			Altitude: floatParam(raw, "altitude", 1.0),
		}, nil
	default:
		return &Params{Kind: KindSimple}, nil
	}
}

func floatParam(raw map[string]interface{}, key string, fallback float64) float64 {
	if raw == nil {
		return fallback
	}
	switch v := raw[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return fallback
}

func stringParam(raw map[string]interface{}, key, fallback string) string {
	if raw == nil {
		return fallback
	}
	if v, ok := raw[key].(string); ok {
		return v
	}
	return fallback
}

// EstimateBatteryDrain predicts the battery cost of a command as a
// percentage of charge.
func EstimateBatteryDrain(params *Params) float64 {
	switch params.Kind {
	case KindMovement:
		return 0.1 * params.Speed * (float64(params.DurationMS) / 1000.0)
	case KindRotation:
		degrees := params.Degrees
		if degrees < 0 {
			degrees = -degrees
		}
		return 0.05 * (degrees / 360.0) * params.Speed
	case KindHover:
		return 0.2 * params.Altitude
	default:
		return 0.01
	}
}

// CommandResult reports a dispatched command back to the caller
type CommandResult struct {
	CommandID             uuid.UUID `json:"command_id"`
	Status                string    `json:"status"`
	ExecutedAt            time.Time `json:"executed_at"`
	EstimatedDurationMS   int64     `json:"estimated_duration_ms"`
	EstimatedBatteryDrain float64   `json:"estimated_battery_drain"`
}

// Position is a GPS fix. Altitude is only set for airborne devices.
type Position struct {
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Altitude  *float64 `json:"altitude,omitempty"`
}

// Velocity is a movement vector. Z is only set for airborne devices.
type Velocity struct {
	X float64  `json:"x"`
	Y float64  `json:"y"`
	Z *float64 `json:"z,omitempty"`
}

// SensorReading is a single sensor sample
type SensorReading struct {
	SensorType string  `json:"sensor_type"`
	Value      float64 `json:"value"`
	Unit       string  `json:"unit"`
}

// Telemetry is a point-in-time device report
type Telemetry struct {
	Timestamp      time.Time       `json:"timestamp"`
	BatteryLevel   int             `json:"battery_level"`
	CPUTemp        float64         `json:"cpu_temp"`
	SignalStrength int             `json:"signal_strength"`
	Position       Position        `json:"position"`
	Velocity       Velocity        `json:"velocity"`
	Sensors        []SensorReading `json:"sensors"`
}

// GenerateTelemetry produces a simulated telemetry report. Real devices
// would push readings over MQTT or a websocket instead.
func GenerateTelemetry(deviceType string) *Telemetry {
	airborne := deviceType == "drone"

	telemetry := &Telemetry{
		Timestamp:      time.Now().UTC(),
		BatteryLevel:   20 + rand.Intn(80),
		CPUTemp:        35 + rand.Float64()*40,
		SignalStrength: -80 + rand.Intn(50),
		Position: Position{
			Latitude:  -90 + rand.Float64()*180,
			Longitude: -180 + rand.Float64()*360,
		},
		Velocity: Velocity{
			X: -5 + rand.Float64()*10,
			Y: -5 + rand.Float64()*10,
		},
		Sensors: []SensorReading{
			{SensorType: "temperature", Value: 15 + rand.Float64()*20, Unit: "°C"},
			{SensorType: "humidity", Value: 30 + rand.Float64()*50, Unit: "%"},
		},
	}

	if airborne {
		altitude := rand.Float64() * 100
		z := -2 + rand.Float64()*4
		telemetry.Position.Altitude = &altitude
		telemetry.Velocity.Z = &z
	}

	return telemetry
}
