package models

// CriticalReading is one point-in-time snapshot of a machine's sensors as
// submitted by the dashboard. JSON field names match the dashboard's payload
// exactly. A reading lives only for the duration of one relay call.
type CriticalReading struct {
	Timestamp   int64  `json:"timestamp"`
	MachineID   string `json:"machineId"`
	MachineName string `json:"machineName"`

	RPM        float64 `json:"rpm"`
	Torque     float64 `json:"torque"` // Nm
	LoadWeight int     `json:"loadWeight"`

	MotorTemp   float64 `json:"motorTemp"` // °C
	WindingTemp float64 `json:"windingTemp"`
	BearingTemp float64 `json:"bearingTemp"`
	AmbientTemp float64 `json:"ambientTemp"`

	VibrationX         float64 `json:"vibrationX"` // mm/s
	VibrationY         float64 `json:"vibrationY"`
	VibrationZ         float64 `json:"vibrationZ"`
	VibrationMagnitude float64 `json:"vibrationMagnitude"`

	Voltage            float64 `json:"voltage"`
	Current            float64 `json:"current"`
	PowerConsumption   float64 `json:"powerConsumption"` // kW
	PowerFactor        float64 `json:"powerFactor"`
	HarmonicDistortion float64 `json:"harmonicDistortion"`

	Efficiency           int `json:"efficiency"` // percent
	OperatingHours       int `json:"operatingHours"`
	StartStopCycles      int `json:"startStopCycles"`
	WearLevel            int `json:"wearLevel"`
	BearingWear          int `json:"bearingWear"`
	InsulationResistance int `json:"insulationResistance"`

	Humidity  float64 `json:"humidity"`
	IsRunning bool    `json:"isRunning"`

	// TargetURL, when non-empty, overrides the configured prediction endpoint
	// and is used verbatim as the full destination URL.
	TargetURL string `json:"target_url,omitempty"`
}

// PredictionPayload is the fixed subset of a reading the prediction endpoint
// consumes. It is only ever derived from a CriticalReading; identity fields,
// load weight, wear counters, the running flag and the override never cross
// the wire.
type PredictionPayload struct {
	RPM                float64 `json:"rpm"`
	Torque             float64 `json:"torque"`
	MotorTemp          float64 `json:"motorTemp"`
	WindingTemp        float64 `json:"windingTemp"`
	BearingTemp        float64 `json:"bearingTemp"`
	AmbientTemp        float64 `json:"ambientTemp"`
	VibrationX         float64 `json:"vibrationX"`
	VibrationY         float64 `json:"vibrationY"`
	VibrationZ         float64 `json:"vibrationZ"`
	VibrationMagnitude float64 `json:"vibrationMagnitude"`
	Voltage            float64 `json:"voltage"`
	Current            float64 `json:"current"`
	PowerConsumption   float64 `json:"powerConsumption"`
	PowerFactor        float64 `json:"powerFactor"`
	HarmonicDistortion float64 `json:"harmonicDistortion"`
	Efficiency         int     `json:"efficiency"`
	OperatingHours     int     `json:"operatingHours"`
	Humidity           float64 `json:"humidity"`
}

// NewPredictionPayload projects a reading down to the prediction field set,
// copying every value unchanged.
func NewPredictionPayload(r CriticalReading) PredictionPayload {
	return PredictionPayload{
		RPM:                r.RPM,
		Torque:             r.Torque,
		MotorTemp:          r.MotorTemp,
		WindingTemp:        r.WindingTemp,
		BearingTemp:        r.BearingTemp,
		AmbientTemp:        r.AmbientTemp,
		VibrationX:         r.VibrationX,
		VibrationY:         r.VibrationY,
		VibrationZ:         r.VibrationZ,
		VibrationMagnitude: r.VibrationMagnitude,
		Voltage:            r.Voltage,
		Current:            r.Current,
		PowerConsumption:   r.PowerConsumption,
		PowerFactor:        r.PowerFactor,
		HarmonicDistortion: r.HarmonicDistortion,
		Efficiency:         r.Efficiency,
		OperatingHours:     r.OperatingHours,
		Humidity:           r.Humidity,
	}
}
