package scanner

const (
	// Flag marker the target emits when it judges the payload executed
	FlagPrefix = "Flare{"
	FlagSuffix = "}"

	// Marker for the delivery request; its reflection result is ignored
	DeliveryMarker = "1"

	// Context types
	ContextUnknown   = "unknown"
	ContextHTML      = "html"
	ContextAttribute = "attribute"
	ContextScript    = "script"
	ContextComment   = "comment"

	EngineNameXSS = "xss"
)

// Phase is a stage of the bypass state machine. Phases only ever advance.
type Phase int

const (
	PhaseContextProbe Phase = iota
	PhaseEventHandler
	PhaseObjectAccessor
	PhasePropertyAccessor
	PhasePayloadAssembly
	PhaseDelivery
	PhaseTerminal
)

func (p Phase) String() string {
	switch p {
	case PhaseContextProbe:
		return "ContextProbe"
	case PhaseEventHandler:
		return "EventHandlerResolution"
	case PhaseObjectAccessor:
		return "ObjectAccessorResolution"
	case PhasePropertyAccessor:
		return "PropertyAccessorResolution"
	case PhasePayloadAssembly:
		return "PayloadAssembly"
	case PhaseDelivery:
		return "Delivery"
	case PhaseTerminal:
		return "Terminal"
	default:
		return "Unknown"
	}
}
