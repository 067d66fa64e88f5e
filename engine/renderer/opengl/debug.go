package opengl

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/spaghettifunk/ace/engine/renderer"
	"github.com/spaghettifunk/ace/engine/renderer/metadata"
)

var debugSources = map[uint32]metadata.DebugSource{
	gl.DEBUG_SOURCE_API:             metadata.DebugSourceAPI,
	gl.DEBUG_SOURCE_WINDOW_SYSTEM:   metadata.DebugSourceWindowSystem,
	gl.DEBUG_SOURCE_SHADER_COMPILER: metadata.DebugSourceShaderCompiler,
	gl.DEBUG_SOURCE_THIRD_PARTY:     metadata.DebugSourceThirdParty,
	gl.DEBUG_SOURCE_APPLICATION:     metadata.DebugSourceApplication,
	gl.DEBUG_SOURCE_OTHER:           metadata.DebugSourceOther,
}

var debugTypes = map[uint32]metadata.DebugType{
	gl.DEBUG_TYPE_ERROR:               metadata.DebugTypeError,
	gl.DEBUG_TYPE_DEPRECATED_BEHAVIOR: metadata.DebugTypeDeprecatedBehavior,
	gl.DEBUG_TYPE_UNDEFINED_BEHAVIOR:  metadata.DebugTypeUndefinedBehavior,
	gl.DEBUG_TYPE_PORTABILITY:         metadata.DebugTypePortability,
	gl.DEBUG_TYPE_PERFORMANCE:         metadata.DebugTypePerformance,
	gl.DEBUG_TYPE_MARKER:              metadata.DebugTypeMarker,
	gl.DEBUG_TYPE_PUSH_GROUP:          metadata.DebugTypePushGroup,
	gl.DEBUG_TYPE_POP_GROUP:           metadata.DebugTypePopGroup,
	gl.DEBUG_TYPE_OTHER:               metadata.DebugTypeOther,
}

var debugSeverities = map[uint32]metadata.DebugSeverity{
	gl.DEBUG_SEVERITY_HIGH:         metadata.DebugSeverityHigh,
	gl.DEBUG_SEVERITY_MEDIUM:       metadata.DebugSeverityMedium,
	gl.DEBUG_SEVERITY_LOW:          metadata.DebugSeverityLow,
	gl.DEBUG_SEVERITY_NOTIFICATION: metadata.DebugSeverityNotification,
}

// EnableDebugOutput routes driver debug messages to handler. It does nothing
// and returns false unless the context is a debug context exposing KHR_debug.
// Messages are delivered synchronously on the context thread.
func (*Backend) EnableDebugOutput(handler func(renderer.DebugMessage) bool) bool {
	var flags int32
	gl.GetIntegerv(gl.CONTEXT_FLAGS, &flags)
	if uint32(flags)&gl.CONTEXT_FLAG_DEBUG_BIT == 0 || !hasExtension("GL_KHR_debug") {
		return false
	}

	gl.Enable(gl.DEBUG_OUTPUT)
	gl.Enable(gl.DEBUG_OUTPUT_SYNCHRONOUS)
	gl.DebugMessageCallback(func(source, gltype, id, severity uint32, _ int32, message string, _ unsafe.Pointer) {
		handler(renderer.DebugMessage{
			Source:   debugSources[source],
			Type:     debugTypes[gltype],
			Severity: debugSeverities[severity],
			ID:       id,
			Text:     message,
		})
	}, nil)
	gl.DebugMessageControl(gl.DONT_CARE, gl.DONT_CARE, gl.DONT_CARE, 0, nil, true)
	return true
}

func hasExtension(name string) bool {
	var n int32
	gl.GetIntegerv(gl.NUM_EXTENSIONS, &n)
	for i := int32(0); i < n; i++ {
		if gl.GoStr(gl.GetStringi(gl.EXTENSIONS, uint32(i))) == name {
			return true
		}
	}
	return false
}
