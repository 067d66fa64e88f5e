package renderer

import (
	"github.com/spaghettifunk/ace/engine/core"
	"github.com/spaghettifunk/ace/engine/renderer/metadata"
)

// DebugMessage is one message from the driver's debug output.
type DebugMessage struct {
	Source   metadata.DebugSource
	Type     metadata.DebugType
	Severity metadata.DebugSeverity
	ID       uint32
	Text     string
}

// Buffer placement and shader recompile notices some drivers emit every frame.
var ignoredDebugIDs = map[uint32]bool{
	131169: true,
	131185: true,
	131204: true,
	131218: true,
}

// LogDebugMessage logs m at the level matching its severity and reports
// whether it was logged.
func LogDebugMessage(m DebugMessage) bool {
	if ignoredDebugIDs[m.ID] {
		return false
	}
	args := []interface{}{"id", m.ID, "source", m.Source, "type", m.Type, "severity", m.Severity}
	switch m.Severity {
	case metadata.DebugSeverityHigh:
		core.LogError(m.Text, args...)
	case metadata.DebugSeverityMedium:
		core.LogWarn(m.Text, args...)
	case metadata.DebugSeverityLow:
		core.LogInfo(m.Text, args...)
	default:
		core.LogDebug(m.Text, args...)
	}
	return true
}
