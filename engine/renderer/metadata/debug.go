package metadata

/** @brief The part of the driver stack a debug message came from. */
type DebugSource uint8

const (
	DebugSourceAPI DebugSource = iota
	DebugSourceWindowSystem
	DebugSourceShaderCompiler
	DebugSourceThirdParty
	DebugSourceApplication
	DebugSourceOther
)

var debugSourceNames = []string{"API", "WindowSystem", "ShaderCompiler", "ThirdParty", "Application", "Other"}

func (s DebugSource) String() string { return nameOf(debugSourceNames, s, "DebugSource") }

/** @brief What a debug message reports. */
type DebugType uint8

const (
	DebugTypeError DebugType = iota
	DebugTypeDeprecatedBehavior
	DebugTypeUndefinedBehavior
	DebugTypePortability
	DebugTypePerformance
	DebugTypeMarker
	DebugTypePushGroup
	DebugTypePopGroup
	DebugTypeOther
)

var debugTypeNames = []string{
	"Error", "DeprecatedBehavior", "UndefinedBehavior", "Portability", "Performance",
	"Marker", "PushGroup", "PopGroup", "Other",
}

func (t DebugType) String() string { return nameOf(debugTypeNames, t, "DebugType") }

type DebugSeverity uint8

const (
	DebugSeverityHigh DebugSeverity = iota
	DebugSeverityMedium
	DebugSeverityLow
	DebugSeverityNotification
)

var debugSeverityNames = []string{"High", "Medium", "Low", "Notification"}

func (s DebugSeverity) String() string { return nameOf(debugSeverityNames, s, "DebugSeverity") }
