package domain

// Block is a plant component as reported by the engine.
type Block struct {
	Name        string       `json:"name"`
	Type        string       `json:"type"`
	Inputs      []Connection `json:"input_connections,omitempty"`
	OutputNames []string     `json:"output_names,omitempty"`
}

// Connection links an output of SourceBlock to an input of DestinationBlock.
type Connection struct {
	SourceBlock      string `json:"source_block"`
	SourcePort       string `json:"source_port,omitempty"`
	DestinationBlock string `json:"destination_block"`
	DestinationPort  string `json:"destination_port,omitempty"`
}

// BlockType constants used by the bundled tutorial plant and the inspect command.
const (
	BlockTypeAlarmTransmitter = "AlarmTransmitter"
	BlockTypeESV              = "EmergencyShutdownValve"
	BlockTypeMotor            = "ElectricMotor"
	BlockTypePID              = "PidController"
	BlockTypeSeparator        = "Separator"
)
